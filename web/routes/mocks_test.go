package routes_test

import (
	"context"
	"io"
	"iter"
	"sync"
	"time"

	"github.com/mundomaya/hoteles/content"
	"github.com/mundomaya/hoteles/model"
	"github.com/mundomaya/hoteles/mount"
	"github.com/mundomaya/hoteles/ui/modal"
	"github.com/mundomaya/hoteles/web/routes"
)

// MockComponent implements the templ.Component interface for testing.
type MockComponent struct {
	RenderFunc func(ctx context.Context, w io.Writer) error
}

func (m MockComponent) Render(ctx context.Context, w io.Writer) error {
	return m.RenderFunc(ctx, w)
}

// manualTimer only fires when the test says so.
type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.stopped = true

	return true
}

type ManualClock struct {
	lock   sync.Mutex
	timers []*manualTimer
}

func (c *ManualClock) AfterFunc(_ time.Duration, f func()) modal.Timer {
	c.lock.Lock()
	defer c.lock.Unlock()

	t := &manualTimer{fn: f}
	c.timers = append(c.timers, t)

	return t
}

// Advance fires every pending timer, like letting the modal delay elapse.
func (c *ManualClock) Advance() {
	c.lock.Lock()
	pending := make([]*manualTimer, 0, len(c.timers))

	for _, t := range c.timers {
		if !t.stopped {
			t.stopped = true
			pending = append(pending, t)
		}
	}
	c.lock.Unlock()

	for _, t := range pending {
		t.fn()
	}
}

// MemoryStorage is a simple manual mock implementation of the db.Storage interface
type MemoryStorage struct {
	lock        sync.Mutex
	Events      []model.ModalEvent
	ReturnError error
}

func (m *MemoryStorage) Store(event *model.ModalEvent) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.ReturnError != nil {
		return m.ReturnError
	}

	m.Events = append(m.Events, *event)

	return nil
}

func (m *MemoryStorage) GatherCounts() ([]model.EventCount, error) {
	return nil, nil
}

func (m *MemoryStorage) AllIterator() iter.Seq2[model.ModalEvent, error] {
	return func(yield func(model.ModalEvent, error) bool) {
		for _, e := range m.Events {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (m *MemoryStorage) Close() {}

func (m *MemoryStorage) Kinds() []model.ModalEventKind {
	m.lock.Lock()
	defer m.lock.Unlock()

	kinds := make([]model.ModalEventKind, 0, len(m.Events))
	for _, e := range m.Events {
		kinds = append(kinds, e.Kind)
	}

	return kinds
}

type testServer struct {
	Handler *routes.ServerHandler
	Clock   *ManualClock
	Storage *MemoryStorage
}

func newTestServer() testServer {
	clock := &ManualClock{}
	storage := &MemoryStorage{}

	registry := mount.NewRegistry(mount.DefaultConfig(),
		mount.WithModalOptions(modal.WithAfterFunc(clock.AfterFunc)),
		mount.WithListener(routes.RecordTransitions(storage)))

	return testServer{
		Handler: &routes.ServerHandler{
			Content:    content.Default(""),
			Mounts:     registry,
			ModalDelay: modal.DefaultDelay,
		},
		Clock:   clock,
		Storage: storage,
	}
}
