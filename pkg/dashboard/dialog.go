package dashboard

import (
	"context"
	"errors"
	"sync"
)

type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
	DialogConfirming
)

func (s DialogState) String() string {
	switch s {
	case DialogOpen:
		return "open"
	case DialogConfirming:
		return "confirming"
	}
	return "closed"
}

const (
	DialogTitle    = "Are you sure?"
	DialogConfirm  = "Delete"
	DialogCancel   = "Cancel"
	DialogDeleting = "Deleting..."
)

var errDialogState = errors.New("dialog is not awaiting confirmation")

// ConfirmDialog guards one destructive action. Each instance carries its own
// state; a table opens a fresh one per delete request.
type ConfirmDialog struct {
	item      string
	onConfirm func(context.Context) error

	mu    sync.RWMutex
	state DialogState
}

func NewConfirmDialog(item string, onConfirm func(context.Context) error) *ConfirmDialog {
	return &ConfirmDialog{item: item, onConfirm: onConfirm}
}

func (d *ConfirmDialog) Open() {
	d.mu.Lock()
	if d.state == DialogClosed {
		d.state = DialogOpen
	}
	d.mu.Unlock()
}

// Cancel closes the dialog. It does nothing while confirming.
func (d *ConfirmDialog) Cancel() {
	d.mu.Lock()
	if d.state == DialogOpen {
		d.state = DialogClosed
	}
	d.mu.Unlock()
}

// Confirm runs the action. Success closes the dialog; failure returns it to
// open so the user can retry or cancel.
func (d *ConfirmDialog) Confirm(ctx context.Context) error {
	d.mu.Lock()
	if d.state != DialogOpen {
		d.mu.Unlock()
		return errDialogState
	}
	d.state = DialogConfirming
	d.mu.Unlock()

	err := d.onConfirm(ctx)

	d.mu.Lock()
	if err != nil {
		d.state = DialogOpen
	} else {
		d.state = DialogClosed
	}
	d.mu.Unlock()
	return err
}

func (d *ConfirmDialog) State() DialogState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *ConfirmDialog) IsOpen() bool { return d.State() != DialogClosed }

// ButtonsEnabled is false while the action runs.
func (d *ConfirmDialog) ButtonsEnabled() bool { return d.State() == DialogOpen }

func (d *ConfirmDialog) Title() string { return DialogTitle }

func (d *ConfirmDialog) Description() string {
	return "This action cannot be undone. This will permanently delete " + d.item + "."
}

func (d *ConfirmDialog) ConfirmLabel() string {
	if d.State() == DialogConfirming {
		return DialogDeleting
	}
	return DialogConfirm
}
