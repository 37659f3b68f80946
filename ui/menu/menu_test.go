package menu_test

import (
	"net/url"
	"testing"

	"github.com/mundomaya/hoteles/ui/menu"
	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	t.Run("starts closed", func(t *testing.T) {
		var s menu.State

		assert.False(t, s.Mobile.Open())
		assert.False(t, s.Hotels.Open())
	})

	t.Run("flip is its own inverse", func(t *testing.T) {
		for _, tg := range []menu.Toggle{menu.Closed, menu.Opened} {
			assert.Equal(t, tg, tg.Flip().Flip())
			assert.NotEqual(t, tg, tg.Flip())
		}
	})

	t.Run("odd flips open, even flips close", func(t *testing.T) {
		for n := range 7 {
			s := menu.State{}
			for range n {
				s = s.ToggleMobile()
			}

			assert.Equal(t, n%2 == 1, s.Mobile.Open(), "after %d toggles", n)
			assert.False(t, s.Hotels.Open(), "mobile toggle must not affect hotels")
		}
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		value string
		want  menu.Toggle
	}{
		{value: "open", want: menu.Opened},
		{value: "", want: menu.Closed},
		{value: "1", want: menu.Closed},
		{value: "OPEN", want: menu.Closed},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.want, menu.Parse(tc.value))
		})
	}
}

func TestStateQuery(t *testing.T) {
	t.Run("closed state has empty query", func(t *testing.T) {
		assert.Empty(t, menu.State{}.Query())
		assert.Equal(t, "/", menu.State{}.URL("/"))
	})

	t.Run("round trips through query", func(t *testing.T) {
		s := menu.State{Mobile: menu.Opened, Hotels: menu.Opened}

		assert.Equal(t, s, menu.FromQuery(s.Query()))
		assert.Equal(t, "/?hoteles=open&menu=open", s.URL("/"))
	})

	t.Run("toggle url flips only one control", func(t *testing.T) {
		s := menu.FromQuery(url.Values{"hoteles": {"open"}})

		assert.Equal(t, "/?hoteles=open&menu=open", s.ToggleMobile().URL("/"))
		assert.Equal(t, "/", s.ToggleHotels().URL("/"))
	})
}
