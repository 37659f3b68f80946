package routes_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mundomaya/hoteles/model"
	"github.com/mundomaya/hoteles/web/routes"
	"github.com/stretchr/testify/assert"
)

const emptySlot = `<div id="promo-modal"></div>`

func getModal(h *routes.ServerHandler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/mounts/"+id+"/modal", nil)
	req.Header.Set(routes.HTMXHeader, "true")
	req.SetPathValue("id", id)

	w := httptest.NewRecorder()
	h.ModalHandle(w, req)

	return w
}

func postDismiss(h *routes.ServerHandler, id, reason string, htmx bool) *httptest.ResponseRecorder {
	form := url.Values{"reason": {reason}}
	req := httptest.NewRequest(http.MethodPost, "/mounts/"+id+"/modal/dismiss", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", id)

	if htmx {
		req.Header.Set(routes.HTMXHeader, "true")
	}

	w := httptest.NewRecorder()
	h.DismissHandle(w, req)

	return w
}

func postUnmount(h *routes.ServerHandler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/mounts/"+id+"/unmount", nil)
	req.SetPathValue("id", id)

	w := httptest.NewRecorder()
	h.UnmountHandle(w, req)

	return w
}

func TestModalScenario(t *testing.T) {
	for _, reason := range []string{"backdrop", "close"} {
		t.Run(reason, func(t *testing.T) {
			srv := newTestServer()
			id := mountIDFrom(t, getPage(t, srv.Handler, "/", false).Body.String())

			// Before the delay: another poll, no dialog.
			w := getModal(srv.Handler, id)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotContains(t, w.Body.String(), `role="dialog"`)
			assert.Contains(t, w.Body.String(), `hx-trigger="load delay:200ms"`)

			srv.Clock.Advance()

			w = getModal(srv.Handler, id)
			assert.Contains(t, w.Body.String(), `role="dialog"`)
			assert.Contains(t, w.Body.String(), `aria-modal="true"`)

			w = postDismiss(srv.Handler, id, reason, true)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, emptySlot, w.Body.String())

			srv.Clock.Advance()

			w = getModal(srv.Handler, id)
			assert.Equal(t, emptySlot, w.Body.String(), "dismissal is terminal for the mount")

			assert.Equal(t, []model.ModalEventKind{model.ModalShown, model.ModalDismissed}, srv.Storage.Kinds())
			assert.Equal(t, reason, srv.Storage.Events[1].Reason)
			assert.Equal(t, id, srv.Storage.Events[1].MountID)
		})
	}
}

func TestModalHandleUnknownMount(t *testing.T) {
	srv := newTestServer()

	w := getModal(srv.Handler, "missing")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, emptySlot, w.Body.String())
}

func TestDismissHandle(t *testing.T) {
	t.Run("unknown mount", func(t *testing.T) {
		srv := newTestServer()

		w := postDismiss(srv.Handler, "missing", "close", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, emptySlot, w.Body.String())

		w = postDismiss(srv.Handler, "missing", "close", false)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("mount gone while the dialog is open", func(t *testing.T) {
		srv := newTestServer()
		id := mountIDFrom(t, getPage(t, srv.Handler, "/", false).Body.String())
		srv.Clock.Advance()

		assert.Contains(t, getModal(srv.Handler, id).Body.String(), `role="dialog"`)

		srv.Handler.Mounts.Unmount(id)

		w := postDismiss(srv.Handler, id, "close", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, emptySlot, w.Body.String())
		assert.NotContains(t, w.Body.String(), `role="dialog"`)
	})

	t.Run("plain form redirects home", func(t *testing.T) {
		srv := newTestServer()
		id := mountIDFrom(t, getPage(t, srv.Handler, "/", false).Body.String())
		srv.Clock.Advance()

		w := postDismiss(srv.Handler, id, "close", false)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Equal(t, emptySlot, getModal(srv.Handler, id).Body.String())
	})

	t.Run("dismiss before shown is ignored", func(t *testing.T) {
		srv := newTestServer()
		id := mountIDFrom(t, getPage(t, srv.Handler, "/", false).Body.String())

		w := postDismiss(srv.Handler, id, "close", true)
		assert.Equal(t, http.StatusOK, w.Code)

		srv.Clock.Advance()

		assert.Contains(t, getModal(srv.Handler, id).Body.String(), `role="dialog"`)
	})
}

func TestUnmountHandle(t *testing.T) {
	t.Run("unmount before delay cancels the popup", func(t *testing.T) {
		srv := newTestServer()
		id := mountIDFrom(t, getPage(t, srv.Handler, "/", false).Body.String())

		w := postUnmount(srv.Handler, id)
		assert.Equal(t, http.StatusNoContent, w.Code)

		srv.Clock.Advance()

		assert.Equal(t, 0, srv.Handler.Mounts.Len())
		assert.Equal(t, emptySlot, getModal(srv.Handler, id).Body.String())
		assert.Equal(t, []model.ModalEventKind{model.ModalCancelled}, srv.Storage.Kinds())
	})

	t.Run("unknown mount is fine", func(t *testing.T) {
		srv := newTestServer()

		assert.Equal(t, http.StatusNoContent, postUnmount(srv.Handler, "missing").Code)
	})
}
