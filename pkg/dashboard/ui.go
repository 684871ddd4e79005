package dashboard

import "sync"

// FormUI is the visibility state a page's form and table share: whether the
// form is open and whether it edits the store's current entity.
type FormUI struct {
	mu   sync.RWMutex
	open bool
	edit bool
}

func (u *FormUI) Open()  { u.set(func() { u.open = true }) }
func (u *FormUI) Close() { u.set(func() { u.open = false }) }

func (u *FormUI) Toggle() { u.set(func() { u.open = !u.open }) }

func (u *FormUI) SetEdit(edit bool) { u.set(func() { u.edit = edit }) }

func (u *FormUI) IsOpen() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.open
}

func (u *FormUI) IsEdit() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.edit
}

func (u *FormUI) set(fn func()) {
	u.mu.Lock()
	fn()
	u.mu.Unlock()
}
