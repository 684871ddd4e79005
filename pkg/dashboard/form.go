package dashboard

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.uber.org/zap"

	"farmdash/pkg/schema"
)

var (
	// ErrInvalid means local validation failed; no request was sent.
	ErrInvalid = errors.New("form has validation errors")
	// ErrUnchanged means an edit had no changes; no request was sent.
	ErrUnchanged = errors.New("nothing changed")
	// ErrBusy means a submit is already in flight.
	ErrBusy = errors.New("submit already in progress")
	// ErrNoCurrent means edit mode without an entity to update.
	ErrNoCurrent = errors.New("no entity selected for editing")
)

// Form is the create/edit form for one kind. Whether it creates or updates
// is read from the shared FormUI edit flag.
type Form[R any] struct {
	kind    *Kind[R]
	backend Backend[R]
	store   *Store[R]
	ui      *FormUI
	notify  Notifier
	today   func() string
	log     *zap.Logger

	mu         sync.RWMutex
	values     Values
	initial    Values
	errs       schema.FieldErrors
	submitting bool
}

func NewForm[R any](kind *Kind[R], backend Backend[R], store *Store[R], ui *FormUI, notify Notifier, today func() string, log *zap.Logger) *Form[R] {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Form[R]{
		kind:    kind,
		backend: backend,
		store:   store,
		ui:      ui,
		notify:  notify,
		today:   today,
		log:     log.With(zap.String("form", kind.Singular)),
	}
	f.reset()
	return f
}

// OpenCreate resets to defaults and opens the form in create mode.
func (f *Form[R]) OpenCreate() {
	f.store.ClearCurrent()
	f.ui.SetEdit(false)
	f.reset()
	f.ui.Open()
}

// OpenEdit makes r the store's current entity and opens the form with its
// values.
func (f *Form[R]) OpenEdit(r R) {
	f.store.SetCurrent(r)
	f.ui.SetEdit(true)

	f.mu.Lock()
	f.values = f.kind.Values(r)
	if f.kind.Normalize != nil {
		f.kind.Normalize(f.values)
	}
	f.initial = f.values.clone()
	f.validateLocked()
	f.mu.Unlock()

	f.ui.Open()
}

// Close resets the form, clears the current entity and edit flag, and hides it.
func (f *Form[R]) Close() {
	f.reset()
	f.store.ClearCurrent()
	f.ui.SetEdit(false)
	f.ui.Close()
}

func (f *Form[R]) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = f.kind.Defaults(f.today())
	if f.kind.Normalize != nil {
		f.kind.Normalize(f.values)
	}
	f.initial = f.values.clone()
	f.validateLocked()
}

// Set changes one field and re-validates the whole form.
func (f *Form[R]) Set(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return
	}
	f.values[name] = value
	if f.kind.Normalize != nil {
		f.kind.Normalize(f.values)
	}
	f.validateLocked()
}

func (f *Form[R]) validateLocked() {
	errs := schema.FieldErrors{}
	for _, fd := range f.kind.Fields {
		if fd.Type != FieldSelect || fd.Options == nil {
			continue
		}
		v := f.values[fd.Name]
		if v == "" {
			continue
		}
		if !hasOption(fd.Options(), v) {
			errs[fd.Name] = fmt.Sprintf("%s must be one of the listed options", fd.Label)
		}
	}
	payload, perrs := f.kind.Payload(f.values)
	merge(errs, perrs)
	if err := schema.Validate(payload); err != nil {
		var fe schema.FieldErrors
		if errors.As(err, &fe) {
			merge(errs, fe)
		} else {
			errs["_"] = err.Error()
		}
	}
	f.errs = errs
}

func merge(dst, src schema.FieldErrors) {
	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
}

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

func (f *Form[R]) Fields() []Field { return f.kind.Fields }

func (f *Form[R]) Options(name string) []Option {
	fd, ok := f.kind.field(name)
	if !ok || fd.Options == nil {
		return nil
	}
	return fd.Options()
}

func (f *Form[R]) Value(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[name]
}

func (f *Form[R]) Values() Values {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values.clone()
}

// Error is the inline message for one field, or "".
func (f *Form[R]) Error(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errs[name]
}

func (f *Form[R]) Errors() schema.FieldErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(schema.FieldErrors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

func (f *Form[R]) Valid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.errs) == 0
}

// Dirty reports whether the write shape differs from what the form opened
// with. Padding a name or writing "3.0" for 3 is not a change.
func (f *Form[R]) Dirty() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return !f.unchangedLocked()
}

func (f *Form[R]) unchangedLocked() bool {
	if f.values.equal(f.initial) {
		return true
	}
	now, errs := f.kind.Payload(f.values)
	was, wasErrs := f.kind.Payload(f.initial)
	if len(errs) > 0 || len(wasErrs) > 0 {
		return false
	}
	return reflect.DeepEqual(now, was)
}

func (f *Form[R]) Submitting() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.submitting
}

func (f *Form[R]) IsOpen() bool { return f.ui.IsOpen() }
func (f *Form[R]) IsEdit() bool { return f.ui.IsEdit() }

// CanSubmit is false while invalid, while submitting, or for an edit that
// changes nothing.
func (f *Form[R]) CanSubmit() bool {
	edit := f.ui.IsEdit()
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.submitting || len(f.errs) > 0 {
		return false
	}
	return !edit || !f.unchangedLocked()
}

func (f *Form[R]) Title() string {
	if f.ui.IsEdit() {
		return "Edit " + f.kind.Singular
	}
	return "Add " + f.kind.Singular
}

func (f *Form[R]) SubmitLabel() string {
	edit := f.ui.IsEdit()
	switch {
	case f.Submitting() && edit:
		return "Saving..."
	case f.Submitting():
		return "Creating..."
	case edit:
		return "Save Changes"
	}
	return "Add " + f.kind.Singular
}

// Submit sends exactly one POST (create) or PUT (edit). On success the store
// is refreshed and the form closes; on failure the form stays open and the
// error is both notified and returned. Invalid or unchanged forms return
// ErrInvalid/ErrUnchanged without any request.
func (f *Form[R]) Submit(ctx context.Context) error {
	edit := f.ui.IsEdit()

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	f.validateLocked()
	if len(f.errs) > 0 {
		errs := f.errs
		f.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrInvalid, errs)
	}
	if edit && f.unchangedLocked() {
		f.mu.Unlock()
		return ErrUnchanged
	}
	var id string
	if edit {
		cur, ok := f.store.Current()
		if !ok {
			f.mu.Unlock()
			return ErrNoCurrent
		}
		id = f.kind.ID(cur)
	}
	payload, _ := f.kind.Payload(f.values)
	f.submitting = true
	f.mu.Unlock()

	var err error
	if edit {
		err = f.backend.Update(ctx, id, payload)
	} else {
		err = f.backend.Create(ctx, payload)
	}

	f.mu.Lock()
	f.submitting = false
	f.mu.Unlock()

	verb, done := "add", "added"
	if edit {
		verb, done = "update", "updated"
	}
	noun := strings.ToLower(f.kind.Singular)
	if err != nil {
		f.log.Warn("submit failed", zap.String("op", verb), zap.String("id", id), zap.Error(err))
		f.notify.Notify(errorNotice(fmt.Sprintf("Failed to %s %s: %v", verb, noun, err)))
		return err
	}

	// a failed refresh is reported through the store's error slot
	_ = f.store.Refresh(ctx)
	f.Close()
	f.notify.Notify(successNotice(fmt.Sprintf("%s %s successfully!", f.kind.Singular, done)))
	return nil
}
