package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdash/entities"
)

func TestCropForm_CreateSendsOnePostThenRefreshes(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Crops.Load(ctx))
	getsBefore := api.count("GET /crops")

	p := app.Crops
	p.OpenCreate()
	f := p.Form()
	assert.True(t, f.IsOpen())
	assert.False(t, f.IsEdit())
	assert.Equal(t, "Add Crop", f.Title())
	assert.Equal(t, "2025-03-10", f.Value("plantingDate"))
	assert.Equal(t, "2025-03-10", f.Value("harvestDate"))
	assert.Equal(t, entities.StatusPlanting, f.Value("status"))
	assert.False(t, f.CanSubmit(), "name and variety are still empty")
	assert.Equal(t, "Name is required", f.Error("name"))

	f.Set("name", "Tomato")
	f.Set("variety", "Roma")
	require.True(t, f.CanSubmit())
	require.NoError(t, f.Submit(ctx))

	assert.Equal(t, 1, api.count("POST /crops"))
	assert.Equal(t, getsBefore+1, api.count("GET /crops"))
	assert.False(t, f.IsOpen())

	list := p.Store.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Tomato", list[0].Name)
	assert.Equal(t, day("2025-03-10"), list[0].PlantingDate.UTC())

	n, ok := app.Toasts.Latest()
	require.True(t, ok)
	assert.Equal(t, "Crop added successfully!", n.Description)
}

func TestCropForm_HarvestBeforePlantingIsClamped(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()

	f := app.Crops.Form()
	app.Crops.OpenCreate()
	f.Set("name", "Tomato")
	f.Set("variety", "Roma")
	f.Set("plantingDate", "2025-03-01")
	f.Set("harvestDate", "2025-02-15")
	assert.Equal(t, "2025-03-01", f.Value("harvestDate"))

	// moving planting past harvest drags harvest along
	f.Set("plantingDate", "2025-04-01")
	assert.Equal(t, "2025-04-01", f.Value("harvestDate"))
	f.Set("plantingDate", "2025-03-01")
	assert.Equal(t, "2025-04-01", f.Value("harvestDate"))
	f.Set("harvestDate", "2025-02-15")

	require.NoError(t, f.Submit(ctx))
	body := api.lastBody("POST /crops")
	assert.Equal(t, "2025-03-01T00:00:00Z", body["plantingDate"])
	assert.Equal(t, "2025-03-01T00:00:00Z", body["harvestDate"])
	assert.Equal(t, "Planting", body["status"])
}

func TestCropForm_EditWithoutChangesSendsNothing(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	api.seedCrop("Wheat", "Durum", "2025-01-05", "2025-06-01", entities.StatusGrowing)
	require.NoError(t, app.Crops.Load(ctx))

	require.True(t, app.Crops.EditAt(0))
	f := app.Crops.Form()
	assert.True(t, f.IsEdit())
	assert.Equal(t, "Edit Crop", f.Title())
	assert.Equal(t, "Save Changes", f.SubmitLabel())
	assert.Equal(t, "Wheat", f.Value("name"))
	assert.Equal(t, "2025-01-05", f.Value("plantingDate"))
	assert.Equal(t, "2025-06-01", f.Value("harvestDate"))
	assert.Equal(t, entities.StatusGrowing, f.Value("status"))

	assert.False(t, f.CanSubmit())
	assert.ErrorIs(t, f.Submit(ctx), ErrUnchanged)
	assert.Zero(t, api.count("PUT /crops/:id"))

	// a change then a revert is clean again
	f.Set("variety", "Spelt")
	assert.True(t, f.CanSubmit())
	f.Set("variety", "Durum")
	assert.False(t, f.CanSubmit())
}

func TestForm_EditThatSendsTheSamePayloadIsUnchanged(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	cropID := api.seedCrop("Wheat", "Durum", "2025-01-05", "2025-06-01", entities.StatusGrowing)
	api.seedResource("Seed", 3, "seed", cropID)
	require.NoError(t, app.Crops.Load(ctx))
	require.NoError(t, app.Resources.Load(ctx))

	require.True(t, app.Crops.EditAt(0))
	crop := app.Crops.Form()
	crop.Set("name", "Wheat ")
	assert.False(t, app.Crops.form.Dirty())
	assert.False(t, crop.CanSubmit())
	assert.ErrorIs(t, crop.Submit(ctx), ErrUnchanged)
	assert.Zero(t, api.count("PUT /crops/:id"))
	crop.Close()

	require.True(t, app.Resources.EditAt(0))
	res := app.Resources.Form()
	res.Set("quantity", "3.0")
	assert.False(t, res.CanSubmit())
	assert.ErrorIs(t, res.Submit(ctx), ErrUnchanged)
	assert.Zero(t, api.count("PUT /resources/:id"))

	res.Set("quantity", "4")
	assert.True(t, res.CanSubmit())
	require.NoError(t, res.Submit(ctx))
	assert.Equal(t, 1, api.count("PUT /resources/:id"))
}

func TestCropForm_EditSendsPutToCurrent(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	id := api.seedCrop("Wheat", "Durum", "2025-01-05", "2025-06-01", entities.StatusGrowing)
	require.NoError(t, app.Crops.Load(ctx))

	require.True(t, app.Crops.EditAt(0))
	cur, ok := app.Crops.Store.Current()
	require.True(t, ok)
	assert.Equal(t, id, cur.ID)

	f := app.Crops.Form()
	f.Set("status", entities.StatusHarvesting)
	require.NoError(t, f.Submit(ctx))

	assert.Equal(t, 1, api.count("PUT /crops/:id"))
	assert.Zero(t, api.count("POST /crops"))
	assert.Equal(t, entities.StatusHarvesting, app.Crops.Store.List()[0].Status)
	assert.False(t, f.IsOpen())
	assert.False(t, f.IsEdit())
	_, ok = app.Crops.Store.Current()
	assert.False(t, ok)

	n, _ := app.Toasts.Latest()
	assert.Equal(t, "Crop updated successfully!", n.Description)
}

func TestCropForm_SelectRejectsUnknownStatus(t *testing.T) {
	_, app := newTestApp(t)
	f := app.Crops.Form()
	app.Crops.OpenCreate()
	f.Set("name", "Tomato")
	f.Set("variety", "Roma")
	f.Set("status", "Dormant")
	assert.False(t, f.CanSubmit())
	assert.NotEmpty(t, f.Error("status"))
	assert.ErrorIs(t, f.Submit(context.Background()), ErrInvalid)
}

func TestForm_BackendErrorKeepsFormOpen(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	api.failOn("POST /crops", 400)

	f := app.Crops.Form()
	app.Crops.OpenCreate()
	f.Set("name", "Tomato")
	f.Set("variety", "Roma")

	err := f.Submit(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, f.IsOpen())
	assert.False(t, f.Submitting())
	assert.Equal(t, "Tomato", f.Value("name"))
	assert.Zero(t, api.count("GET /crops"), "no refresh after a failed create")

	n, ok := app.Toasts.Latest()
	require.True(t, ok)
	assert.Equal(t, VariantDestructive, n.Variant)
	assert.Contains(t, n.Description, "Failed to add crop")
}

func TestActivityForm_NoCropsCannotSubmit(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Activities.Load(ctx))

	f := app.Activities.Form()
	app.Activities.OpenCreate()
	assert.Empty(t, f.Options("cropId"))

	f.Set("description", "Irrigate")
	assert.False(t, f.CanSubmit())
	assert.Equal(t, "Crop is required", f.Error("cropId"))

	f.Set("cropId", "ghost")
	assert.False(t, f.CanSubmit())

	err := f.Submit(ctx)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Zero(t, api.count("POST /activities"))
}

func TestActivityForm_CreateWithCrop(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	cropID := api.seedCrop("Tomato", "Roma", "2025-03-01", "2025-06-01", entities.StatusPlanting)
	require.NoError(t, app.Activities.Load(ctx))
	assert.Equal(t, 1, api.count("GET /crops"), "activities page loads crops alongside")

	f := app.Activities.Form()
	app.Activities.OpenCreate()
	opts := f.Options("cropId")
	require.Len(t, opts, 1)
	assert.Equal(t, Option{Value: cropID, Label: "Tomato"}, opts[0])

	f.Set("description", "Irrigate")
	f.Set("cropId", cropID)
	require.NoError(t, f.Submit(ctx))

	body := api.lastBody("POST /activities")
	assert.Equal(t, cropID, body["cropId"], "write shape carries a bare id")
	assert.Equal(t, "2025-03-10T00:00:00Z", body["date"])

	rows := app.Activities.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Irrigate", "2025-03-10", "Tomato"}, rows[0])
}

func TestActivityForm_EditFlattensExpandedCrop(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	cropID := api.seedCrop("Tomato", "Roma", "2025-03-01", "2025-06-01", entities.StatusPlanting)
	api.seedActivity("Sow", "2025-03-02", cropID)
	require.NoError(t, app.Activities.Load(ctx))

	require.True(t, app.Activities.EditAt(0))
	f := app.Activities.Form()
	assert.Equal(t, cropID, f.Value("cropId"))
	assert.Equal(t, "2025-03-02", f.Value("date"))
	assert.False(t, f.CanSubmit())
}

func TestResourceForm_Quantity(t *testing.T) {
	api, app := newTestApp(t)
	ctx := context.Background()
	cropID := api.seedCrop("Tomato", "Roma", "2025-03-01", "2025-06-01", entities.StatusPlanting)
	require.NoError(t, app.Resources.Load(ctx))

	f := app.Resources.Form()
	app.Resources.OpenCreate()
	f.Set("name", "Compost")
	f.Set("type", "fertilizer")
	f.Set("cropId", cropID)
	assert.Equal(t, "Quantity is required", f.Error("quantity"))

	f.Set("quantity", "lots")
	assert.Equal(t, "Quantity must be a number", f.Error("quantity"))

	f.Set("quantity", "0")
	assert.Equal(t, "Quantity must be at least 1", f.Error("quantity"))

	f.Set("quantity", "12.5")
	assert.Empty(t, f.Errors())
	require.NoError(t, f.Submit(ctx))
	assert.Equal(t, 12.5, api.lastBody("POST /resources")["quantity"])
	assert.Equal(t, []string{"Compost", "12.5", "fertilizer", "Tomato"}, app.Resources.Rows()[0])
}

func TestForm_CloseResetsState(t *testing.T) {
	api, app := newTestApp(t)
	api.seedCrop("Wheat", "Durum", "2025-01-05", "2025-06-01", entities.StatusGrowing)
	require.NoError(t, app.Crops.Load(context.Background()))

	require.True(t, app.Crops.EditAt(0))
	f := app.Crops.Form()
	f.Close()
	assert.False(t, f.IsOpen())
	assert.False(t, f.IsEdit())
	assert.Equal(t, "", f.Value("name"))
	_, ok := app.Crops.Store.Current()
	assert.False(t, ok)
}
