package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mundomaya/hoteles/content"
	"github.com/mundomaya/hoteles/mount"
	"github.com/mundomaya/hoteles/ui/modal"
	"github.com/mundomaya/hoteles/web"
	"github.com/mundomaya/hoteles/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pendingTimer struct {
	fn      func()
	stopped bool
}

func (t *pendingTimer) Stop() bool {
	t.stopped = true

	return true
}

// steppedClock fires pending modal timers only on advance.
type steppedClock struct {
	lock   sync.Mutex
	timers []*pendingTimer
}

func (c *steppedClock) AfterFunc(_ time.Duration, f func()) modal.Timer {
	c.lock.Lock()
	defer c.lock.Unlock()

	t := &pendingTimer{fn: f}
	c.timers = append(c.timers, t)

	return t
}

func (c *steppedClock) advance() {
	c.lock.Lock()
	due := make([]*pendingTimer, 0)

	for _, t := range c.timers {
		if !t.stopped {
			t.stopped = true
			due = append(due, t)
		}
	}
	c.lock.Unlock()

	for _, t := range due {
		t.fn()
	}
}

func buildTestServer(t *testing.T) (http.Handler, *mount.Registry, *steppedClock) {
	t.Helper()

	clock := &steppedClock{}
	registry := mount.NewRegistry(mount.DefaultConfig(), mount.WithModalOptions(modal.WithAfterFunc(clock.AfterFunc)))
	t.Cleanup(registry.Close)

	return web.BuildServer(content.Default(""), registry, modal.DefaultDelay, true), registry, clock
}

func do(handler http.Handler, method, target string, body string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if htmx {
		req.Header.Set(routes.HTMXHeader, "true")
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	return w
}

var mountAttr = regexp.MustCompile(`data-mount="([^"]+)"`)

func TestExampleScenario(t *testing.T) {
	handler, _, clock := buildTestServer(t)

	page := do(handler, http.MethodGet, "/", "", false)
	require.Equal(t, http.StatusOK, page.Code)
	assert.NotContains(t, page.Body.String(), `role="dialog"`)

	match := mountAttr.FindStringSubmatch(page.Body.String())
	require.Len(t, match, 2)

	modalPath := "/mounts/" + match[1] + "/modal"

	assert.NotContains(t, do(handler, http.MethodGet, modalPath, "", true).Body.String(), `role="dialog"`)

	clock.advance()

	shown := do(handler, http.MethodGet, modalPath, "", true)
	assert.Contains(t, shown.Body.String(), `role="dialog"`)

	dismissed := do(handler, http.MethodPost, modalPath+"/dismiss", "reason=backdrop", true)
	assert.Equal(t, http.StatusOK, dismissed.Code)
	assert.NotContains(t, dismissed.Body.String(), `role="dialog"`)

	clock.advance()

	assert.NotContains(t, do(handler, http.MethodGet, modalPath, "", true).Body.String(), `role="dialog"`)
}

func TestUnmountBeacon(t *testing.T) {
	handler, registry, clock := buildTestServer(t)

	page := do(handler, http.MethodGet, "/", "", false)
	match := mountAttr.FindStringSubmatch(page.Body.String())
	require.Len(t, match, 2)

	w := do(handler, http.MethodPost, "/mounts/"+match[1]+"/unmount", "", false)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, registry.Len())

	clock.advance()

	assert.NotContains(t, do(handler, http.MethodGet, "/mounts/"+match[1]+"/modal", "", true).Body.String(), `role="dialog"`)
}

func TestRouting(t *testing.T) {
	handler, _, _ := buildTestServer(t)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "page", method: http.MethodGet, target: "/", wantStatus: http.StatusOK},
		{name: "page with menu", method: http.MethodGet, target: "/?menu=open", wantStatus: http.StatusOK},
		{name: "no other pages", method: http.MethodGet, target: "/about", wantStatus: http.StatusNotFound},
		{name: "post page", method: http.MethodPost, target: "/", wantStatus: http.StatusMethodNotAllowed},
		{name: "get dismiss", method: http.MethodGet, target: "/mounts/x/modal/dismiss", wantStatus: http.StatusMethodNotAllowed},
		{name: "health", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK},
		{name: "stylesheet", method: http.MethodGet, target: "/assets/site.css", wantStatus: http.StatusOK},
		{name: "script", method: http.MethodGet, target: "/assets/site.js", wantStatus: http.StatusOK},
		{name: "missing asset", method: http.MethodGet, target: "/assets/nope.js", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(handler, tc.method, tc.target, "", false)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestAssetsDevMode(t *testing.T) {
	handler, _, _ := buildTestServer(t)

	w := do(handler, http.MethodGet, "/assets/site.js", "", false)

	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), "sendBeacon")
}

func TestSiteScriptRemountsRestoredPages(t *testing.T) {
	handler, _, _ := buildTestServer(t)

	body := do(handler, http.MethodGet, "/assets/site.js", "", false).Body.String()

	require.Contains(t, body, `addEventListener("pageshow"`)
	assert.Contains(t, body, "e.persisted")
	assert.Contains(t, body, "location.reload()")
	assert.Less(t, strings.Index(body, `"pagehide"`), strings.Index(body, `"pageshow"`))
}

func TestStartServerStopsOnCancel(t *testing.T) {
	registry := mount.NewRegistry(mount.DefaultConfig())
	registry.Mount()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		errCh <- web.StartServer(ctx, 0, http.NotFoundHandler(), registry)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Eventually(t, func() bool { return registry.Len() == 0 }, time.Second, 10*time.Millisecond)
}
