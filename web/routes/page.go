package routes

import (
	"log/slog"
	"net/http"

	"github.com/mundomaya/hoteles/logging"
	"github.com/mundomaya/hoteles/ui/menu"
	cs "github.com/mundomaya/hoteles/web/components"
)

// BuildPageRenderContext builds the render context for one page view.
func (s *ServerHandler) BuildPageRenderContext(state menu.State, mountID string) cs.RenderContext {
	return cs.RenderContext{
		Content:    s.Content,
		Menu:       state,
		MountID:    mountID,
		ModalDelay: s.ModalDelay,
	}
}

// PageHandle serves the landing page. htmx requests only get the navigation
// bar back, so toggling a menu does not start a new mount.
func (s *ServerHandler) PageHandle(w http.ResponseWriter, r *http.Request) {
	ctx := logging.AppendCtx(r.Context(), slog.String(logging.PackageName, "routes"))
	state := menu.FromQuery(r.URL.Query())

	if IsHTMXRequest(r) {
		slog.DebugContext(ctx, "Handling navbar fragment request", "mobile", state.Mobile.Open(), "hotels", state.Hotels.Open())
		renderOrFail(ctx, cs.Navbar(&s.Content.Navigation, state), w)

		return
	}

	m := s.Mounts.Mount()
	ctx = logging.MountCtx(ctx, m.ID)

	slog.InfoContext(ctx, "Handling page request")

	renderContext := s.BuildPageRenderContext(state, m.ID)
	if !renderOrFail(ctx, cs.Page(&renderContext), w) {
		s.Mounts.Unmount(m.ID)
	}
}
