package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Table renders a store's list through the kind's columns and owns the
// per-row Edit and Delete actions.
type Table[R any] struct {
	kind    *Kind[R]
	store   *Store[R]
	backend Backend[R]
	form    *Form[R]
	notify  Notifier
	log     *zap.Logger

	mu      sync.RWMutex
	filter  string
	pending *ConfirmDialog
}

func NewTable[R any](kind *Kind[R], store *Store[R], backend Backend[R], form *Form[R], notify Notifier, log *zap.Logger) *Table[R] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Table[R]{
		kind:    kind,
		store:   store,
		backend: backend,
		form:    form,
		notify:  notify,
		log:     log.With(zap.String("table", kind.Plural)),
	}
}

func (t *Table[R]) Headers() []string {
	out := make([]string, len(t.kind.Columns))
	for i, c := range t.kind.Columns {
		out[i] = c.Header
	}
	return out
}

// FilterColumn is the header the filter text is matched against.
func (t *Table[R]) FilterColumn() string { return t.kind.Columns[t.kind.Filter].Header }

func (t *Table[R]) SetFilter(s string) {
	t.mu.Lock()
	t.filter = strings.TrimSpace(s)
	t.mu.Unlock()
}

func (t *Table[R]) Filter() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.filter
}

// Entities is the store list after filtering, in row order.
func (t *Table[R]) Entities() []R {
	list := t.store.List()
	f := strings.ToLower(t.Filter())
	if f == "" {
		return list
	}
	cell := t.kind.Columns[t.kind.Filter].Cell
	out := list[:0]
	for _, r := range list {
		if strings.Contains(strings.ToLower(cell(r)), f) {
			out = append(out, r)
		}
	}
	return out
}

// Rows renders Entities cell by cell.
func (t *Table[R]) Rows() [][]string {
	ents := t.Entities()
	rows := make([][]string, len(ents))
	for i, r := range ents {
		row := make([]string, len(t.kind.Columns))
		for j, c := range t.kind.Columns {
			row[j] = c.Cell(r)
		}
		rows[i] = row
	}
	return rows
}

// Edit makes r current and opens the form in edit mode.
func (t *Table[R]) Edit(r R) { t.form.OpenEdit(r) }

func (t *Table[R]) EditAt(i int) bool {
	r, ok := t.at(i)
	if ok {
		t.Edit(r)
	}
	return ok
}

// RequestDelete opens a new confirmation dialog for r. Nothing is sent until
// the dialog is confirmed.
func (t *Table[R]) RequestDelete(r R) *ConfirmDialog {
	id := t.kind.ID(r)
	noun := strings.ToLower(t.kind.Singular)
	item := fmt.Sprintf("this %s", noun)
	if l := t.kind.Label(r); l != "" {
		item = fmt.Sprintf("%s %q", noun, l)
	}
	d := NewConfirmDialog(item, func(ctx context.Context) error {
		if err := t.backend.Delete(ctx, id); err != nil {
			t.log.Warn("delete failed", zap.String("id", id), zap.Error(err))
			t.notify.Notify(errorNotice(fmt.Sprintf("Failed to delete %s: %v", noun, err)))
			return err
		}
		_ = t.store.Refresh(ctx)
		t.notify.Notify(successNotice(fmt.Sprintf("%s deleted successfully!", t.kind.Singular)))
		return nil
	})
	d.Open()

	t.mu.Lock()
	t.pending = d
	t.mu.Unlock()
	return d
}

func (t *Table[R]) DeleteAt(i int) (*ConfirmDialog, bool) {
	r, ok := t.at(i)
	if !ok {
		return nil, false
	}
	return t.RequestDelete(r), true
}

// Pending is the most recently requested delete dialog while it is open.
func (t *Table[R]) Pending() *ConfirmDialog {
	t.mu.RLock()
	d := t.pending
	t.mu.RUnlock()
	if d == nil || !d.IsOpen() {
		return nil
	}
	return d
}

func (t *Table[R]) at(i int) (R, bool) {
	ents := t.Entities()
	if i < 0 || i >= len(ents) {
		var zero R
		return zero, false
	}
	return ents[i], true
}
