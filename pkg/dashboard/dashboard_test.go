package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdash/entities"
)

func TestSummarize(t *testing.T) {
	crops := []entities.Crop{
		{ID: "c1", Name: "Tomato", PlantingDate: day("2025-03-01"), HarvestDate: day("2025-03-21"), Status: entities.StatusGrowing},
		{ID: "c2", Name: "Wheat", PlantingDate: day("2024-11-01"), HarvestDate: day("2025-03-01"), Status: entities.StatusHarvesting},
		{ID: "c3", Name: "Basil", PlantingDate: day("2025-04-01"), HarvestDate: day("2025-05-01"), Status: entities.StatusPlanting},
	}
	acts := []entities.ActivityView{
		{ID: "a1", Description: "Sow", Date: day("2025-03-02"), Crop: entities.CropRef{ID: "c1"}},
		{ID: "a2", Description: "Water", Date: day("2025-03-10"), Crop: entities.RefTo("c1", &crops[0])},
		{ID: "a3", Description: "Harvest", Date: day("2025-03-21"), Crop: entities.CropRef{ID: "gone"}},
		{ID: "a4", Description: "Plough", Date: day("2025-02-20"), Crop: entities.CropRef{ID: "c2"}},
	}
	res := []entities.ResourceView{
		{ID: "r1", Name: "Seed", Quantity: 10},
		{ID: "r2", Name: "Compost", Quantity: 2.5},
	}
	// late evening in Bangkok is already the next day
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	bkk, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)

	s := Summarize(crops, acts, res, now, bkk)

	require.Len(t, s.Cards, 4)
	assert.Equal(t, Card{Title: "Total Crops", Value: "3", Trend: "1 planted this month"}, s.Cards[0])
	assert.Equal(t, Card{Title: "Active Crops", Value: "2", Trend: "1 harvesting"}, s.Cards[1])
	assert.Equal(t, Card{Title: "Activities This Month", Value: "3", Trend: "1 upcoming"}, s.Cards[2])
	assert.Equal(t, Card{Title: "Resource Units", Value: "12.5", Trend: "across 2 resources"}, s.Cards[3])

	require.Len(t, s.Progress, 3)
	assert.Equal(t, CropProgress{Name: "Tomato", Percent: 50, Status: entities.StatusGrowing}, s.Progress[0])
	assert.Equal(t, CropProgress{Name: "Wheat", Percent: 100, Status: ReadyForHarvest}, s.Progress[1])
	assert.Equal(t, CropProgress{Name: "Basil", Percent: 0, Status: entities.StatusPlanting}, s.Progress[2])

	require.Len(t, s.Upcoming, 1)
	assert.Equal(t, ActivityItem{Description: "Harvest", Crop: "gone", Date: "2025-03-21", When: "in 10 days"}, s.Upcoming[0])
	assert.Equal(t, 1, s.Pending)

	require.Len(t, s.Recent, 3)
	assert.Equal(t, "Water", s.Recent[0].Description)
	assert.Equal(t, "Tomato", s.Recent[0].Crop)
	assert.Equal(t, "yesterday", s.Recent[0].When)
	assert.Equal(t, "Tomato", s.Recent[1].Crop, "bare ids resolve through the crop list")
	assert.Equal(t, "Plough", s.Recent[2].Description)
}

func TestSummarize_CapsLists(t *testing.T) {
	var acts []entities.ActivityView
	for i := 1; i <= 8; i++ {
		acts = append(acts, entities.ActivityView{Description: "future", Date: fixedNow.AddDate(0, 0, i).Truncate(24 * time.Hour)})
	}
	s := Summarize(nil, acts, nil, fixedNow, time.UTC)
	assert.Len(t, s.Upcoming, 5)
	assert.Equal(t, 8, s.Pending)
	assert.Equal(t, "tomorrow", s.Upcoming[0].When)
	assert.Empty(t, s.Recent)
	assert.Empty(t, s.Progress)
}

func TestSummarize_ProgressOverCenturies(t *testing.T) {
	crops := []entities.Crop{
		{Name: "Oak", PlantingDate: day("1900-01-01"), HarvestDate: day("2200-01-01"), Status: entities.StatusGrowing},
	}
	acts := []entities.ActivityView{
		{Description: "Survey", Date: day("1700-01-01")},
	}
	s := Summarize(crops, acts, nil, fixedNow, time.UTC)

	require.Len(t, s.Progress, 1)
	assert.Equal(t, 41, s.Progress[0].Percent)
	require.Len(t, s.Recent, 1)
	assert.Equal(t, "118772 days ago", s.Recent[0].When)
}

func TestDashboard_RefreshRecomputes(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	cropID := api.seedCrop("Tomato", "Roma", "2025-03-01", "2025-06-01", entities.StatusPlanting)
	api.seedResource("Seed", 10, "seed", cropID)

	require.NoError(t, app.LoadAll(ctx))
	assert.Equal(t, "1", app.Dashboard.Summary().Cards[0].Value)
	assert.Equal(t, "10", app.Dashboard.Summary().Cards[3].Value)

	// repeated refreshes never accumulate
	require.NoError(t, app.Dashboard.Refresh(ctx))
	require.NoError(t, app.Dashboard.Refresh(ctx))
	assert.Equal(t, "1", app.Dashboard.Summary().Cards[0].Value)
	assert.Equal(t, "10", app.Dashboard.Summary().Cards[3].Value)

	api.seedCrop("Corn", "Sweet", "2025-02-01", "2025-07-01", entities.StatusGrowing)
	require.NoError(t, app.Dashboard.Refresh(ctx))
	assert.Equal(t, "2", app.Dashboard.Summary().Cards[0].Value)
	assert.Equal(t, 4, api.count("GET /resources"))
}

func TestDashboard_PartialFailureStillRecomputes(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	api.seedCrop("Tomato", "Roma", "2025-03-01", "2025-06-01", entities.StatusPlanting)
	api.failOn("GET /resources", 500)

	require.Error(t, app.Dashboard.Refresh(ctx))
	assert.Equal(t, "1", app.Dashboard.Summary().Cards[0].Value)
	assert.Equal(t, 1, api.count("GET /activities"), "one failure does not cancel the others")

	n, _ := app.Toasts.Latest()
	assert.Equal(t, "Failed to refresh data", n.Description)
}
