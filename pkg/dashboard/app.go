package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"farmdash/entities"
	"farmdash/pkg/client"
)

type AppOptions struct {
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
	Notifier Notifier // defaults to a Toasts
}

// App holds every page of the dashboard. The crops store is shared: the
// activity and resource pages read it for their crop select and Crop column.
type App struct {
	Crops      *Page[entities.Crop]
	Activities *Page[entities.ActivityView]
	Resources  *Page[entities.ResourceView]
	Dashboard  *Dashboard
	Toasts     *Toasts

	client *client.Client
}

func NewApp(c *client.Client, opts AppOptions) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	toasts := NewToasts(0)
	notify := opts.Notifier
	if notify == nil {
		notify = toasts
	}
	today := func() string { return entities.Today(now(), loc) }

	cropsAPI := client.NewCollection[entities.Crop](c, "crops")
	actsAPI := client.NewCollection[entities.ActivityView](c, "activities").WithListPath("/activities/all")
	resAPI := client.NewCollection[entities.ResourceView](c, "resources")

	crops := NewStore[entities.Crop]("crops", cropsAPI, log)
	acts := NewStore[entities.ActivityView]("activities", actsAPI, log)
	res := NewStore[entities.ResourceView]("resources", resAPI, log)

	return &App{
		Crops:      NewPage(CropKind(), crops, cropsAPI, notify, today, log),
		Activities: NewPage(ActivityKind(crops), acts, actsAPI, notify, today, log, crops),
		Resources:  NewPage(ResourceKind(crops), res, resAPI, notify, today, log, crops),
		Dashboard:  NewDashboard(crops, acts, res, notify, now, loc, log),
		Toasts:     toasts,
		client:     c,
	}
}

// Pages lists the CRUD pages in tab order.
func (a *App) Pages() []CRUDView {
	return []CRUDView{a.Crops, a.Activities, a.Resources}
}

// LoadAll fetches all three collections in parallel. Every page reads from
// the stores it fills.
func (a *App) LoadAll(ctx context.Context) error { return a.Dashboard.Load(ctx) }

// Close releases idle connections held by the HTTP client.
func (a *App) Close() { a.client.CloseIdleConnections() }
