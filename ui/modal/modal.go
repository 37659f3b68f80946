// Package modal implements the promo popup's lifecycle: hidden on mount,
// shown once after a fixed delay, closed for good once dismissed.
package modal

import (
	"sync"
	"time"
)

// DefaultDelay between mount and the popup becoming visible.
const DefaultDelay = 800 * time.Millisecond

type State int

const (
	Hidden State = iota
	Visible
	Dismissed
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case Dismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Reason names what caused a transition.
type Reason string

const (
	ReasonTimer    Reason = "timer"
	ReasonClose    Reason = "close"
	ReasonBackdrop Reason = "backdrop"
	ReasonUnmount  Reason = "unmount"
)

// ParseReason accepts the two user dismissal controls. Anything else is ReasonClose.
func ParseReason(value string) Reason {
	if Reason(value) == ReasonBackdrop {
		return ReasonBackdrop
	}

	return ReasonClose
}

type Transition struct {
	From   State
	To     State
	Reason Reason
}

// Cancelled reports an unmount that happened before the popup was shown.
func (t Transition) Cancelled() bool {
	return t.Reason == ReasonUnmount && t.From == Hidden
}

// Timer is the handle of a pending deferred callback.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Option func(*Modal)

// WithAfterFunc replaces the timer used to schedule the popup.
func WithAfterFunc(fn AfterFunc) Option {
	return func(m *Modal) {
		m.afterFunc = fn
	}
}

// WithListener registers fn to observe every transition. fn is called
// without the modal's lock held.
func WithListener(fn func(Transition)) Option {
	return func(m *Modal) {
		m.listener = fn
	}
}

type Modal struct {
	delay     time.Duration
	afterFunc AfterFunc
	listener  func(Transition)

	lock    sync.Mutex
	state   State
	mounted bool
	started bool
	timer   Timer
}

func New(delay time.Duration, opts ...Option) *Modal {
	m := &Modal{
		delay:     delay,
		afterFunc: realAfterFunc,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Mount schedules the popup. Only the first call has an effect; a modal
// cannot be mounted again after Unmount.
func (m *Modal) Mount() {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.started {
		return
	}

	m.started = true
	m.mounted = true
	m.timer = m.afterFunc(m.delay, m.show)
}

func (m *Modal) show() {
	m.lock.Lock()

	// The timer may have fired while Unmount or Dismiss held the lock.
	if !m.mounted || m.state != Hidden {
		m.lock.Unlock()

		return
	}

	m.state = Visible
	m.timer = nil
	m.lock.Unlock()

	m.notify(Transition{From: Hidden, To: Visible, Reason: ReasonTimer})
}

// Dismiss closes a visible popup. It reports whether a transition happened.
func (m *Modal) Dismiss(reason Reason) bool {
	m.lock.Lock()

	if !m.mounted || m.state != Visible {
		m.lock.Unlock()

		return false
	}

	m.state = Dismissed
	m.lock.Unlock()

	m.notify(Transition{From: Visible, To: Dismissed, Reason: reason})

	return true
}

// Unmount releases the pending timer. No state changes happen afterwards.
func (m *Modal) Unmount() {
	m.lock.Lock()

	if !m.mounted {
		m.lock.Unlock()

		return
	}

	m.mounted = false

	from := m.state
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.lock.Unlock()

	m.notify(Transition{From: from, To: from, Reason: ReasonUnmount})
}

func (m *Modal) State() State {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.state
}

// IsOpen reports whether the dialog should be rendered.
func (m *Modal) IsOpen() bool {
	return m.State() == Visible
}

func (m *Modal) Mounted() bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.mounted
}

func (m *Modal) notify(t Transition) {
	if m.listener != nil {
		m.listener(t)
	}
}
