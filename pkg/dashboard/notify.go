package dashboard

import (
	"sync"
	"time"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a transient toast shown after an action completes.
type Notice struct {
	Title       string
	Description string
	Variant     Variant
	At          time.Time
}

type Notifier interface {
	Notify(Notice)
}

func successNotice(desc string) Notice {
	return Notice{Title: "Success", Description: desc, Variant: VariantDefault, At: time.Now()}
}

func errorNotice(desc string) Notice {
	return Notice{Title: "Error", Description: desc, Variant: VariantDestructive, At: time.Now()}
}

// Toasts keeps the most recent notices in memory.
type Toasts struct {
	mu    sync.Mutex
	max   int
	items []Notice
}

func NewToasts(max int) *Toasts {
	if max <= 0 {
		max = 5
	}
	return &Toasts{max: max}
}

func (t *Toasts) Notify(n Notice) {
	if n.At.IsZero() {
		n.At = time.Now()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, n)
	if len(t.items) > t.max {
		t.items = append([]Notice(nil), t.items[len(t.items)-t.max:]...)
	}
}

func (t *Toasts) Latest() (Notice, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.items) == 0 {
		return Notice{}, false
	}
	return t.items[len(t.items)-1], true
}

func (t *Toasts) All() []Notice {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Notice(nil), t.items...)
}
