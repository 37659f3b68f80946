package modal_test

import (
	"sync"
	"testing"
	"time"

	"github.com/mundomaya/hoteles/ui/modal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimer records the scheduled callback so tests decide when time passes.
type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasPending := !t.stopped
	t.stopped = true

	return wasPending
}

// advance fires the callback the way a runtime timer would, unless stopped.
func (t *fakeTimer) advance() {
	if !t.stopped {
		t.stopped = true
		t.fn()
	}
}

type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) modal.Timer {
	t := &fakeTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)

	return t
}

type recorder struct {
	lock        sync.Mutex
	transitions []modal.Transition
}

func (r *recorder) record(t modal.Transition) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.transitions = append(r.transitions, t)
}

func (r *recorder) all() []modal.Transition {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]modal.Transition(nil), r.transitions...)
}

func newModal(t *testing.T) (*modal.Modal, *fakeClock, *recorder) {
	t.Helper()

	clock := &fakeClock{}
	rec := &recorder{}
	m := modal.New(modal.DefaultDelay, modal.WithAfterFunc(clock.AfterFunc), modal.WithListener(rec.record))

	return m, clock, rec
}

func TestModalLifecycle(t *testing.T) {
	t.Run("hidden until the delay elapses", func(t *testing.T) {
		m, clock, _ := newModal(t)

		assert.Equal(t, modal.Hidden, m.State())
		assert.False(t, m.IsOpen())

		m.Mount()

		require.Len(t, clock.timers, 1)
		assert.Equal(t, 800*time.Millisecond, clock.timers[0].delay)
		assert.False(t, m.IsOpen())

		clock.timers[0].advance()

		assert.True(t, m.IsOpen())
		assert.Equal(t, modal.Visible, m.State())
	})

	t.Run("mount schedules once", func(t *testing.T) {
		m, clock, _ := newModal(t)

		m.Mount()
		m.Mount()

		assert.Len(t, clock.timers, 1)
	})

	t.Run("unmount before delay cancels the timer", func(t *testing.T) {
		m, clock, rec := newModal(t)

		m.Mount()
		m.Unmount()

		require.Len(t, clock.timers, 1)
		assert.True(t, clock.timers[0].stopped)

		clock.timers[0].advance()

		assert.Equal(t, modal.Hidden, m.State())
		assert.False(t, m.Mounted())

		transitions := rec.all()
		require.Len(t, transitions, 1)
		assert.True(t, transitions[0].Cancelled())
	})

	t.Run("late timer callback after unmount is a no-op", func(t *testing.T) {
		m, clock, rec := newModal(t)

		m.Mount()
		m.Unmount()

		// Simulate a callback that already fired and was waiting on the lock.
		clock.timers[0].fn()

		assert.Equal(t, modal.Hidden, m.State())
		assert.Len(t, rec.all(), 1)
	})

	t.Run("unmount is idempotent", func(t *testing.T) {
		m, _, rec := newModal(t)

		m.Mount()
		m.Unmount()
		m.Unmount()

		assert.Len(t, rec.all(), 1)
	})

	t.Run("cannot mount again after unmount", func(t *testing.T) {
		m, clock, _ := newModal(t)

		m.Mount()
		m.Unmount()
		m.Mount()

		assert.Len(t, clock.timers, 1)
		assert.False(t, m.Mounted())
	})
}

func TestModalDismiss(t *testing.T) {
	for _, reason := range []modal.Reason{modal.ReasonClose, modal.ReasonBackdrop} {
		t.Run(string(reason), func(t *testing.T) {
			m, clock, rec := newModal(t)

			m.Mount()
			clock.timers[0].advance()
			require.True(t, m.IsOpen())

			assert.True(t, m.Dismiss(reason))
			assert.False(t, m.IsOpen())
			assert.Equal(t, modal.Dismissed, m.State())

			// Terminal: nothing re-opens it within this mount.
			clock.timers[0].advance()
			m.Mount()
			assert.False(t, m.Dismiss(reason))
			assert.Equal(t, modal.Dismissed, m.State())
			assert.Len(t, clock.timers, 1)

			assert.Equal(t, []modal.Transition{
				{From: modal.Hidden, To: modal.Visible, Reason: modal.ReasonTimer},
				{From: modal.Visible, To: modal.Dismissed, Reason: reason},
			}, rec.all())
		})
	}

	t.Run("dismiss while hidden does nothing", func(t *testing.T) {
		m, clock, _ := newModal(t)

		m.Mount()

		assert.False(t, m.Dismiss(modal.ReasonClose))
		assert.Equal(t, modal.Hidden, m.State())

		clock.timers[0].advance()
		assert.True(t, m.IsOpen())
	})

	t.Run("dismiss after unmount does nothing", func(t *testing.T) {
		m, clock, _ := newModal(t)

		m.Mount()
		clock.timers[0].advance()
		m.Unmount()

		assert.False(t, m.Dismiss(modal.ReasonBackdrop))
		assert.Equal(t, modal.Visible, m.State())
	})

	t.Run("fresh modal starts over", func(t *testing.T) {
		first, clock, _ := newModal(t)
		first.Mount()
		clock.timers[0].advance()
		first.Dismiss(modal.ReasonClose)
		first.Unmount()

		second, clock2, _ := newModal(t)
		second.Mount()

		assert.Equal(t, modal.Hidden, second.State())
		clock2.timers[0].advance()
		assert.True(t, second.IsOpen())
	})
}

func TestModalRealTimer(t *testing.T) {
	t.Run("shows after the delay", func(t *testing.T) {
		m := modal.New(10 * time.Millisecond)
		m.Mount()
		defer m.Unmount()

		assert.Eventually(t, m.IsOpen, time.Second, 5*time.Millisecond)
	})

	t.Run("no show after unmount", func(t *testing.T) {
		m := modal.New(20 * time.Millisecond)
		m.Mount()
		m.Unmount()

		time.Sleep(60 * time.Millisecond)

		assert.Equal(t, modal.Hidden, m.State())
	})
}

func TestParseReason(t *testing.T) {
	assert.Equal(t, modal.ReasonBackdrop, modal.ParseReason("backdrop"))
	assert.Equal(t, modal.ReasonClose, modal.ParseReason("close"))
	assert.Equal(t, modal.ReasonClose, modal.ParseReason(""))
	assert.Equal(t, "visible", modal.Visible.String())
}
