// Package mount tracks live page views. Every full page render is one mount
// owning its own promo modal; the mount's lifetime bounds the modal's timer.
package mount

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mundomaya/hoteles/logging"
	"github.com/mundomaya/hoteles/ui/modal"
)

var ErrNotFound = errors.New("mount not found")

type Mount struct {
	ID        string
	CreatedAt time.Time
	Modal     *modal.Modal
}

// Listener observes the modal transitions of every mount.
type Listener func(mountID string, t modal.Transition)

type Config struct {
	ModalDelay time.Duration
	// TTL bounds how long a mount lives without an explicit unmount.
	TTL time.Duration
	// ReapInterval is how often Run looks for expired mounts.
	ReapInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		ModalDelay:   modal.DefaultDelay,
		TTL:          30 * time.Minute,
		ReapInterval: time.Minute,
	}
}

type Registry struct {
	config   Config
	listener Listener
	now      func() time.Time
	options  []modal.Option

	mounts map[string]*Mount
	lock   sync.RWMutex
}

type Option func(*Registry)

func WithListener(l Listener) Option {
	return func(r *Registry) {
		r.listener = l
	}
}

// WithClock replaces time.Now, used for TTL bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithModalOptions passes extra options to every modal the registry creates.
func WithModalOptions(opts ...modal.Option) Option {
	return func(r *Registry) {
		r.options = append(r.options, opts...)
	}
}

func NewRegistry(config Config, opts ...Option) *Registry {
	r := &Registry{
		config: config,
		now:    time.Now,
		mounts: make(map[string]*Mount),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Mount creates a page mount and starts its modal timer.
func (r *Registry) Mount() *Mount {
	id := uuid.NewString()

	opts := append([]modal.Option{}, r.options...)
	if r.listener != nil {
		listener := r.listener
		opts = append(opts, modal.WithListener(func(t modal.Transition) {
			listener(id, t)
		}))
	}

	m := &Mount{
		ID:        id,
		CreatedAt: r.now(),
		Modal:     modal.New(r.config.ModalDelay, opts...),
	}

	r.lock.Lock()
	r.mounts[id] = m
	r.lock.Unlock()

	m.Modal.Mount()

	slog.DebugContext(logging.MountCtx(logging.PackageCtx("mount"), id), "Page mounted")

	return m
}

func (r *Registry) Get(id string) (*Mount, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	m, ok := r.mounts[id]
	if !ok {
		return nil, ErrNotFound
	}

	return m, nil
}

// Unmount releases the mount. Unknown ids are ignored; it reports whether a mount was removed.
func (r *Registry) Unmount(id string) bool {
	r.lock.Lock()
	m, ok := r.mounts[id]
	delete(r.mounts, id)
	r.lock.Unlock()

	if !ok {
		return false
	}

	m.Modal.Unmount()

	slog.DebugContext(logging.MountCtx(logging.PackageCtx("mount"), id), "Page unmounted")

	return true
}

func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.mounts)
}

// Reap unmounts every mount older than the TTL and returns how many were removed.
func (r *Registry) Reap() int {
	cutoff := r.now().Add(-r.config.TTL)

	r.lock.Lock()
	expired := make([]*Mount, 0)

	for id, m := range r.mounts {
		if m.CreatedAt.Before(cutoff) {
			expired = append(expired, m)
			delete(r.mounts, id)
		}
	}
	r.lock.Unlock()

	for _, m := range expired {
		m.Modal.Unmount()
	}

	if len(expired) > 0 {
		slog.Info("Reaped expired mounts", "count", len(expired))
	}

	return len(expired)
}

// Run reaps expired mounts until ctx is done, then unmounts everything.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.config.ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Close()

			return
		case <-ticker.C:
			r.Reap()
		}
	}
}

// Close unmounts all live mounts.
func (r *Registry) Close() {
	r.lock.Lock()
	mounts := r.mounts
	r.mounts = make(map[string]*Mount)
	r.lock.Unlock()

	for _, m := range mounts {
		m.Modal.Unmount()
	}
}
