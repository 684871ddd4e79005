package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"farmdash/entities"
)

const (
	ReadyForHarvest = "Ready for Harvest"
	listLimit       = 5
)

type Card struct {
	Title string
	Value string
	Trend string
}

type CropProgress struct {
	Name    string
	Percent int
	Status  string
}

type ActivityItem struct {
	Description string
	Crop        string
	Date        string
	When        string // "today", "in 3 days", "2 days ago"
}

// Summary is everything the dashboard page shows. It is rebuilt from
// scratch on every refresh.
type Summary struct {
	Cards    []Card
	Progress []CropProgress
	Upcoming []ActivityItem
	Recent   []ActivityItem
	Pending  int // activities dated today or later
}

// Summarize derives the dashboard from the three lists. now is pinned to
// its calendar day in loc.
func Summarize(crops []entities.Crop, acts []entities.ActivityView, res []entities.ResourceView, now time.Time, loc *time.Location) Summary {
	today, _ := entities.ParseDateFromInput(entities.Today(now, loc))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	inMonth := func(t time.Time) bool { return !t.Before(monthStart) && t.Before(nextMonth) }

	names := make(map[string]string, len(crops))
	var active, harvesting, plantedThisMonth int
	for _, c := range crops {
		names[c.ID] = c.Name
		switch c.Status {
		case entities.StatusHarvesting:
			harvesting++
		default:
			active++
		}
		if inMonth(c.PlantingDate.UTC()) {
			plantedThisMonth++
		}
	}

	var actsThisMonth int
	var upcoming, recent []entities.ActivityView
	for _, a := range acts {
		d := a.Date.UTC()
		if inMonth(d) {
			actsThisMonth++
		}
		if d.Before(today) {
			recent = append(recent, a)
		} else {
			upcoming = append(upcoming, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date.Before(upcoming[j].Date) })
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })

	var units float64
	for _, r := range res {
		units += r.Quantity
	}

	s := Summary{
		Cards: []Card{
			{Title: "Total Crops", Value: strconv.Itoa(len(crops)), Trend: fmt.Sprintf("%d planted this month", plantedThisMonth)},
			{Title: "Active Crops", Value: strconv.Itoa(active), Trend: fmt.Sprintf("%d harvesting", harvesting)},
			{Title: "Activities This Month", Value: strconv.Itoa(actsThisMonth), Trend: fmt.Sprintf("%d upcoming", len(upcoming))},
			{Title: "Resource Units", Value: formatQuantity(units), Trend: fmt.Sprintf("across %d resources", len(res))},
		},
		Pending: len(upcoming),
	}
	for _, c := range crops {
		s.Progress = append(s.Progress, progress(c, today))
	}
	s.Upcoming = items(upcoming, names, today)
	s.Recent = items(recent, names, today)
	return s
}

// progress is the elapsed share of the planting-to-harvest window.
func progress(c entities.Crop, today time.Time) CropProgress {
	plant, harvest := c.PlantingDate.UTC(), c.HarvestDate.UTC()
	var pct int
	switch span := days(plant, harvest); {
	case !today.Before(harvest):
		pct = 100
	case today.Before(plant) || span <= 0:
		pct = 0
	default:
		pct = int(days(plant, today) * 100 / span)
	}
	status := c.Status
	if pct >= 100 {
		status = ReadyForHarvest
	}
	return CropProgress{Name: c.Name, Percent: pct, Status: status}
}

// days counts calendar days between two UTC dates. Durations overflow past
// about 292 years, so this works on Unix seconds instead.
func days(from, to time.Time) float64 {
	return float64(to.Unix()-from.Unix()) / 86400
}

func items(acts []entities.ActivityView, names map[string]string, today time.Time) []ActivityItem {
	if len(acts) > listLimit {
		acts = acts[:listLimit]
	}
	out := make([]ActivityItem, 0, len(acts))
	for _, a := range acts {
		crop := a.Crop.Name()
		if crop == "" {
			crop = names[a.Crop.ID]
		}
		if crop == "" {
			crop = a.Crop.ID
		}
		out = append(out, ActivityItem{
			Description: a.Description,
			Crop:        crop,
			Date:        entities.FormatDateForInput(a.Date),
			When:        relativeDay(a.Date.UTC(), today),
		})
	}
	return out
}

func relativeDay(d, today time.Time) string {
	n := int(days(today, d))
	switch {
	case n == 0:
		return "today"
	case n == 1:
		return "tomorrow"
	case n == -1:
		return "yesterday"
	case n > 0:
		return fmt.Sprintf("in %d days", n)
	}
	return fmt.Sprintf("%d days ago", -n)
}

// Dashboard is the read-only summary page over the three stores.
type Dashboard struct {
	crops  *Store[entities.Crop]
	acts   *Store[entities.ActivityView]
	res    *Store[entities.ResourceView]
	notify Notifier
	now    func() time.Time
	loc    *time.Location
	log    *zap.Logger

	mu      sync.RWMutex
	summary Summary
}

func NewDashboard(crops *Store[entities.Crop], acts *Store[entities.ActivityView], res *Store[entities.ResourceView], notify Notifier, now func() time.Time, loc *time.Location, log *zap.Logger) *Dashboard {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	d := &Dashboard{crops: crops, acts: acts, res: res, notify: notify, now: now, loc: loc, log: log.With(zap.String("page", "Dashboard"))}
	d.Recompute()
	return d
}

func (d *Dashboard) Title() string { return "Dashboard" }

func (d *Dashboard) Summary() Summary {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.summary
}

func (d *Dashboard) Loading() bool {
	return d.crops.Loading() || d.acts.Loading() || d.res.Loading()
}

// Load fetches all three collections in parallel and rebuilds the summary.
func (d *Dashboard) Load(ctx context.Context) error {
	err := d.fetch(ctx)
	if err != nil {
		d.log.Error("load failed", zap.Error(err))
	}
	return err
}

// Refresh is Load with a notice reporting the outcome.
func (d *Dashboard) Refresh(ctx context.Context) error {
	if err := d.fetch(ctx); err != nil {
		d.log.Warn("refresh failed", zap.Error(err))
		d.notify.Notify(errorNotice(refreshedFailed))
		return err
	}
	d.notify.Notify(successNotice(refreshedOK))
	return nil
}

func (d *Dashboard) fetch(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return d.crops.Refresh(ctx) })
	g.Go(func() error { return d.acts.Refresh(ctx) })
	g.Go(func() error { return d.res.Refresh(ctx) })
	err := g.Wait()
	d.Recompute()
	return err
}

// Recompute rebuilds the summary from whatever the stores hold now, e.g.
// after a CRUD page changed them.
func (d *Dashboard) Recompute() {
	s := Summarize(d.crops.List(), d.acts.List(), d.res.List(), d.now(), d.loc)
	d.mu.Lock()
	d.summary = s
	d.mu.Unlock()
}
