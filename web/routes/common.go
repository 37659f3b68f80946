package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/mundomaya/hoteles/model"
	"github.com/mundomaya/hoteles/mount"
)

// HTMXHeader is set by htmx on every request it issues.
const HTMXHeader = "HX-Request"

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Content    *model.Content
	Mounts     *mount.Registry
	ModalDelay time.Duration
}

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(HTMXHeader), "true")
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(ctx context.Context, component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// renderOrFail renders component, answering 500 when rendering fails.
func renderOrFail(ctx context.Context, component templ.Component, w http.ResponseWriter) bool {
	if err := SafeRenderTemplate(ctx, component, w); err != nil {
		slog.ErrorContext(ctx, "Failed to render", "error", err)
		http.Error(w, "could not render page", http.StatusInternalServerError)

		return false
	}

	return true
}
