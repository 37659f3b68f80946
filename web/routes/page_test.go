package routes_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/mundomaya/hoteles/ui/menu"
	"github.com/mundomaya/hoteles/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mountAttr = regexp.MustCompile(`data-mount="([^"]+)"`)

func getPage(t *testing.T, h *routes.ServerHandler, target string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if htmx {
		req.Header.Set(routes.HTMXHeader, "true")
	}

	w := httptest.NewRecorder()
	h.PageHandle(w, req)

	return w
}

func mountIDFrom(t *testing.T, body string) string {
	t.Helper()

	match := mountAttr.FindStringSubmatch(body)
	require.Len(t, match, 2, "page should carry its mount id")

	return match[1]
}

func TestBuildPageRenderContext(t *testing.T) {
	srv := newTestServer()

	rc := srv.Handler.BuildPageRenderContext(menu.State{Mobile: menu.Opened}, "abc")

	assert.Equal(t, "abc", rc.MountID)
	assert.True(t, rc.Menu.Mobile.Open())
	assert.Same(t, srv.Handler.Content, rc.Content)
	assert.Equal(t, "load delay:800ms", rc.ModalTrigger())
}

func TestPageHandle(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		wantMobileMenu bool
		wantHotelsOpen bool
	}{
		{name: "initial render", target: "/", wantMobileMenu: false},
		{name: "mobile menu open", target: "/?menu=open", wantMobileMenu: true},
		{name: "hotels submenu open", target: "/?hoteles=open", wantHotelsOpen: true},
		{name: "garbage value is closed", target: "/?menu=yes", wantMobileMenu: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer()

			w := getPage(t, srv.Handler, tc.target, false)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=UTF-8", w.Header().Get("Content-Type"))

			body := w.Body.String()
			assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
			assert.Equal(t, tc.wantMobileMenu, strings.Contains(body, `id="mobile-menu"`))
			assert.Equal(t, tc.wantHotelsOpen, !strings.Contains(body, `class="hidden absolute`))

			assert.Equal(t, 1, srv.Handler.Mounts.Len())
			mountIDFrom(t, body)
			assert.NotContains(t, body, `role="dialog"`)
		})
	}
}

func TestPageHandleHTMX(t *testing.T) {
	srv := newTestServer()

	w := getPage(t, srv.Handler, "/?menu=open", true)

	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<header id="site-header"`))
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, `id="mobile-menu"`)
	assert.Equal(t, 0, srv.Handler.Mounts.Len(), "menu toggles must not create mounts")
}

func TestPageHandleEachViewIsOneMount(t *testing.T) {
	srv := newTestServer()

	first := mountIDFrom(t, getPage(t, srv.Handler, "/", false).Body.String())
	second := mountIDFrom(t, getPage(t, srv.Handler, "/", false).Body.String())

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, srv.Handler.Mounts.Len())
}
