package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropRef_UnmarshalBareID(t *testing.T) {
	var v ActivityView
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"a1","description":"Weeding","date":"2025-03-01T00:00:00Z","cropId":"c1"}`), &v))

	assert.Equal(t, "c1", v.Crop.ID)
	assert.Nil(t, v.Crop.Crop)
	assert.Equal(t, "", v.Crop.Name())
}

func TestCropRef_UnmarshalExpanded(t *testing.T) {
	var v ResourceView
	body := `{"_id":"r1","name":"Urea","quantity":3,"type":"fertilizer","cropId":{"_id":"c1","name":"Tomato","variety":"Roma","status":"Growing"}}`
	require.NoError(t, json.Unmarshal([]byte(body), &v))

	assert.Equal(t, "c1", v.Crop.ID)
	require.NotNil(t, v.Crop.Crop)
	assert.Equal(t, "Tomato", v.Crop.Name())

	in := v.Input()
	assert.Equal(t, "c1", in.CropID)
	assert.Equal(t, 3.0, in.Quantity)
}

func TestCropRef_MarshalRoundTrip(t *testing.T) {
	c := &Crop{ID: "c1", Name: "Maize"}
	a := Activity{ID: "a1", Description: "Sow", CropID: "c1", Crop: c}

	b, err := json.Marshal(a.View())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"cropId":{"_id":"c1"`)

	dangling := Activity{ID: "a2", CropID: "gone"}
	b, err = json.Marshal(dangling.View())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"cropId":"gone"`)
}

func TestRefTo_MismatchedCropDropped(t *testing.T) {
	ref := RefTo("c2", &Crop{ID: "c1"})
	assert.Nil(t, ref.Crop)
	assert.Equal(t, "c2", ref.ID)
}

func TestCropRef_RejectsNumbers(t *testing.T) {
	var r CropRef
	assert.Error(t, json.Unmarshal([]byte(`42`), &r))
}

func TestDateRoundTrip(t *testing.T) {
	ts, err := ParseDateFromInput("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ts)
	assert.Equal(t, "2025-03-01", FormatDateForInput(ts))

	// a timestamp produced in a zone east of UTC still reads back as the stored UTC day
	bangkok := time.FixedZone("ICT", 7*3600)
	assert.Equal(t, "2025-03-01", FormatDateForInput(ts.In(bangkok)))

	_, err = ParseDateFromInput("03/01/2025")
	assert.Error(t, err)
	_, err = ParseDateFromInput(" ")
	assert.Error(t, err)
	assert.Equal(t, "", FormatDateForInput(time.Time{}))
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-01", Today(now, nil))
	assert.Equal(t, "2025-03-02", Today(now, time.FixedZone("ICT", 7*3600)))
}
