package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmDialog_Transitions(t *testing.T) {
	started := make(chan struct{})
	release := make(chan error)
	d := NewConfirmDialog("crop \"Corn\"", func(context.Context) error {
		close(started)
		return <-release
	})
	assert.Equal(t, DialogClosed, d.State())
	assert.ErrorIs(t, d.Confirm(context.Background()), errDialogState)

	d.Open()
	assert.Equal(t, DialogOpen, d.State())
	assert.Equal(t, "Delete", d.ConfirmLabel())

	done := make(chan error, 1)
	go func() { done <- d.Confirm(context.Background()) }()
	<-started

	assert.Equal(t, DialogConfirming, d.State())
	assert.Equal(t, "Deleting...", d.ConfirmLabel())
	assert.False(t, d.ButtonsEnabled())
	d.Cancel()
	assert.Equal(t, DialogConfirming, d.State(), "cancel is ignored while confirming")
	assert.ErrorIs(t, d.Confirm(context.Background()), errDialogState)

	release <- errors.New("backend down")
	require.Error(t, <-done)
	assert.Equal(t, DialogOpen, d.State())
}

func TestConfirmDialog_SuccessCloses(t *testing.T) {
	calls := 0
	d := NewConfirmDialog("x", func(context.Context) error { calls++; return nil })
	d.Open()
	require.NoError(t, d.Confirm(context.Background()))
	assert.Equal(t, DialogClosed, d.State())
	assert.False(t, d.IsOpen())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "closed", d.State().String())
}
