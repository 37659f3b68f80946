package routes_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mundomaya/hoteles/model"
	"github.com/mundomaya/hoteles/ui/modal"
	"github.com/mundomaya/hoteles/web/routes"
	"github.com/stretchr/testify/assert"
)

func TestEventFromTransition(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		transition modal.Transition
		wantKind   model.ModalEventKind
		wantReason string
		wantOK     bool
	}{
		{
			name:       "shown",
			transition: modal.Transition{From: modal.Hidden, To: modal.Visible, Reason: modal.ReasonTimer},
			wantKind:   model.ModalShown,
			wantOK:     true,
		},
		{
			name:       "dismissed by backdrop",
			transition: modal.Transition{From: modal.Visible, To: modal.Dismissed, Reason: modal.ReasonBackdrop},
			wantKind:   model.ModalDismissed,
			wantReason: "backdrop",
			wantOK:     true,
		},
		{
			name:       "cancelled before shown",
			transition: modal.Transition{From: modal.Hidden, To: modal.Hidden, Reason: modal.ReasonUnmount},
			wantKind:   model.ModalCancelled,
			wantOK:     true,
		},
		{
			name:       "unmount after shown is not recorded",
			transition: modal.Transition{From: modal.Visible, To: modal.Visible, Reason: modal.ReasonUnmount},
			wantOK:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			event, ok := routes.EventFromTransition("m1", tc.transition, now)

			assert.Equal(t, tc.wantOK, ok)

			if tc.wantOK {
				assert.Equal(t, model.ModalEvent{MountID: "m1", Kind: tc.wantKind, Reason: tc.wantReason, Timestamp: now}, event)
			}
		})
	}
}

func TestRecordTransitionsIgnoresStorageErrors(t *testing.T) {
	storage := &MemoryStorage{ReturnError: errors.New("disk full")}
	listener := routes.RecordTransitions(storage)

	assert.NotPanics(t, func() {
		listener("m1", modal.Transition{From: modal.Hidden, To: modal.Visible, Reason: modal.ReasonTimer})
	})
	assert.Empty(t, storage.Events)
}
