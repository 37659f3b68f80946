package routes

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mundomaya/hoteles/logging"
	"github.com/mundomaya/hoteles/ui/modal"
	cs "github.com/mundomaya/hoteles/web/components"
)

// ModalHandle answers the promo slot's delayed request with the dialog,
// another poll, or an empty slot.
func (s *ServerHandler) ModalHandle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctx := logging.MountCtx(logging.AppendCtx(r.Context(), slog.String(logging.PackageName, "routes")), id)

	m, err := s.Mounts.Get(id)
	if err != nil {
		// htmx does not swap error responses, so answer 200 with an inert slot.
		slog.DebugContext(ctx, "Modal requested for unknown mount")
		renderOrFail(ctx, cs.EmptySlot(), w)

		return
	}

	switch m.Modal.State() {
	case modal.Visible:
		renderOrFail(ctx, cs.PromoDialog(m.ID, &s.Content.Promo), w)
	case modal.Hidden:
		if !m.Modal.Mounted() {
			renderOrFail(ctx, cs.EmptySlot(), w)

			return
		}

		renderOrFail(ctx, cs.ModalSlot(m.ID, cs.PollTrigger()), w)
	default:
		renderOrFail(ctx, cs.EmptySlot(), w)
	}
}

// DismissHandle closes the dialog from the close control or the backdrop.
func (s *ServerHandler) DismissHandle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctx := logging.MountCtx(logging.AppendCtx(r.Context(), slog.String(logging.PackageName, "routes")), id)

	m, err := s.Mounts.Get(id)
	if err != nil {
		// The mount may have been reaped while the dialog was open. The dialog
		// still has to go away, so answer like a successful dismissal.
		slog.DebugContext(ctx, "Dismiss for unknown mount", "error", err)
		dismissed(ctx, w, r)

		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	reason := modal.ParseReason(r.PostForm.Get("reason"))
	if !m.Modal.Dismiss(reason) {
		slog.DebugContext(ctx, "Dismiss ignored", "state", m.Modal.State().String())
	}

	dismissed(ctx, w, r)
}

// dismissed swaps the slot empty for htmx and sends plain forms back to the page.
func dismissed(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if !IsHTMXRequest(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)

		return
	}

	renderOrFail(ctx, cs.EmptySlot(), w)
}

// UnmountHandle receives the page's pagehide beacon.
func (s *ServerHandler) UnmountHandle(w http.ResponseWriter, r *http.Request) {
	s.Mounts.Unmount(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
