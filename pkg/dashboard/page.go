package dashboard

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	RefreshLabel    = "Refresh Data"
	RefreshingLabel = "Refreshing..."

	refreshedOK     = "Data refreshed successfully"
	refreshedFailed = "Failed to refresh data"
)

// Refresher is anything a page re-fetches alongside its own store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// FormView is the non-generic face of a Form, for renderers.
type FormView interface {
	Title() string
	SubmitLabel() string
	Fields() []Field
	Options(name string) []Option
	Value(name string) string
	Set(name, value string)
	Error(name string) string
	Errors() FieldErrors
	CanSubmit() bool
	Submitting() bool
	Submit(ctx context.Context) error
	Close()
	IsOpen() bool
	IsEdit() bool
}

// CRUDView is the non-generic face of a Page, for renderers.
type CRUDView interface {
	Title() string
	Headers() []string
	Rows() [][]string
	Len() int
	Loading() bool
	Err() string
	EmptyMessage() string
	EmptyHint() string
	FilterColumn() string
	Filter() string
	SetFilter(string)
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	Refreshing() bool
	RefreshLabel() string
	Form() FormView
	OpenCreate()
	EditAt(i int) bool
	DeleteAt(i int) (*ConfirmDialog, bool)
	Pending() *ConfirmDialog
}

// Page is the header, form and table for one kind.
type Page[R any] struct {
	Kind  *Kind[R]
	Store *Store[R]
	UI    *FormUI
	Table *Table[R]

	form   *Form[R]
	deps   []Refresher
	notify Notifier
	log    *zap.Logger

	mu         sync.Mutex
	refreshing int
}

var _ CRUDView = (*Page[struct{}])(nil)

// NewPage wires a store, form and table around one backend collection.
// deps are refreshed together with the page's own store, e.g. the crops a
// page's select and Crop column read from.
func NewPage[R any](kind *Kind[R], store *Store[R], backend Backend[R], notify Notifier, today func() string, log *zap.Logger, deps ...Refresher) *Page[R] {
	if log == nil {
		log = zap.NewNop()
	}
	ui := &FormUI{}
	form := NewForm(kind, backend, store, ui, notify, today, log)
	return &Page[R]{
		Kind:   kind,
		Store:  store,
		UI:     ui,
		Table:  NewTable(kind, store, backend, form, notify, log),
		form:   form,
		deps:   deps,
		notify: notify,
		log:    log.With(zap.String("page", kind.Plural)),
	}
}

func (p *Page[R]) Title() string { return p.Kind.Plural }

func (p *Page[R]) Headers() []string { return p.Table.Headers() }
func (p *Page[R]) Rows() [][]string { return p.Table.Rows() }
func (p *Page[R]) Len() int { return p.Store.Len() }
func (p *Page[R]) Loading() bool { return p.Store.Loading() }
func (p *Page[R]) Err() string { return p.Store.Err() }
func (p *Page[R]) FilterColumn() string { return p.Table.FilterColumn() }
func (p *Page[R]) Filter() string { return p.Table.Filter() }
func (p *Page[R]) SetFilter(s string) { p.Table.SetFilter(s) }
func (p *Page[R]) Form() FormView { return p.form }
func (p *Page[R]) OpenCreate() { p.form.OpenCreate() }
func (p *Page[R]) EditAt(i int) bool { return p.Table.EditAt(i) }
func (p *Page[R]) Pending() *ConfirmDialog { return p.Table.Pending() }

func (p *Page[R]) DeleteAt(i int) (*ConfirmDialog, bool) { return p.Table.DeleteAt(i) }

// EmptyMessage is shown in place of the table when the store is empty.
func (p *Page[R]) EmptyMessage() string {
	return "No " + strings.ToLower(p.Kind.Plural) + " found"
}

// EmptyHint follows EmptyMessage.
func (p *Page[R]) EmptyHint() string {
	return "Add your first " + strings.ToLower(p.Kind.Singular) + " to get started."
}

// Load fetches the page's data. An error here is fatal for the page.
func (p *Page[R]) Load(ctx context.Context) error {
	if err := p.fetchAll(ctx); err != nil {
		p.log.Error("load failed", zap.Error(err))
		return err
	}
	return nil
}

// Refresh re-fetches on demand and reports the outcome as a notice.
func (p *Page[R]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.refreshing++
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.refreshing--
		p.mu.Unlock()
	}()

	if err := p.fetchAll(ctx); err != nil {
		p.log.Warn("refresh failed", zap.Error(err))
		p.notify.Notify(errorNotice(refreshedFailed))
		return err
	}
	p.notify.Notify(successNotice(refreshedOK))
	return nil
}

func (p *Page[R]) Refreshing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshing > 0
}

func (p *Page[R]) RefreshLabel() string {
	if p.Refreshing() {
		return RefreshingLabel
	}
	return RefreshLabel
}

// fetchAll refreshes the store and its deps in parallel. Every fetch runs to
// completion; the first error is returned.
func (p *Page[R]) fetchAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return p.Store.Refresh(ctx) })
	for _, d := range p.deps {
		d := d
		g.Go(func() error { return d.Refresh(ctx) })
	}
	return g.Wait()
}
