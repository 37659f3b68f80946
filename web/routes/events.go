package routes

import (
	"log/slog"
	"time"

	"github.com/mundomaya/hoteles/db"
	"github.com/mundomaya/hoteles/logging"
	"github.com/mundomaya/hoteles/model"
	"github.com/mundomaya/hoteles/mount"
	"github.com/mundomaya/hoteles/ui/modal"
)

// EventFromTransition maps a modal transition to an impression log entry.
// Transitions that are not worth recording return false.
func EventFromTransition(mountID string, t modal.Transition, now time.Time) (model.ModalEvent, bool) {
	event := model.ModalEvent{MountID: mountID, Timestamp: now}

	switch {
	case t.To == modal.Visible && t.From == modal.Hidden:
		event.Kind = model.ModalShown
	case t.To == modal.Dismissed && t.From == modal.Visible:
		event.Kind = model.ModalDismissed
		event.Reason = string(t.Reason)
	case t.Cancelled():
		event.Kind = model.ModalCancelled
	default:
		return model.ModalEvent{}, false
	}

	return event, true
}

// RecordTransitions logs every modal transition and stores it in the impression log.
// Storage failures are logged and otherwise ignored.
func RecordTransitions(storage db.Storage) mount.Listener {
	return func(mountID string, t modal.Transition) {
		ctx := logging.MountCtx(logging.PackageCtx("routes"), mountID)

		slog.InfoContext(ctx, "Modal transition", "from", t.From.String(), "to", t.To.String(), "reason", string(t.Reason))

		event, ok := EventFromTransition(mountID, t, time.Now())
		if !ok {
			return
		}

		if err := storage.Store(&event); err != nil {
			slog.ErrorContext(ctx, "Failed to store modal event", "error", err)
		}
	}
}
