package menu

import (
	"net/url"
)

const (
	// MobileParam carries the mobile menu state in the page URL.
	MobileParam = "menu"
	// HotelsParam carries the hotels submenu state in the page URL.
	HotelsParam = "hoteles"

	openValue = "open"
)

// Toggle is a two-state open/closed flag.
type Toggle bool

const (
	Closed Toggle = false
	Opened Toggle = true
)

// Flip returns the opposite state. Flip(Flip(t)) == t.
func (t Toggle) Flip() Toggle {
	return !t
}

func (t Toggle) Open() bool {
	return bool(t)
}

// Param is the query value for t. Closed encodes as the empty string.
func (t Toggle) Param() string {
	if t {
		return openValue
	}

	return ""
}

// Parse reads a query value. Anything but "open" is closed.
func Parse(value string) Toggle {
	return Toggle(value == openValue)
}

// State is the navigation bar's interactive state.
type State struct {
	Mobile Toggle
	Hotels Toggle
}

func FromQuery(q url.Values) State {
	return State{
		Mobile: Parse(q.Get(MobileParam)),
		Hotels: Parse(q.Get(HotelsParam)),
	}
}

// Query encodes s, leaving closed toggles out.
func (s State) Query() url.Values {
	q := url.Values{}

	if s.Mobile.Open() {
		q.Set(MobileParam, s.Mobile.Param())
	}

	if s.Hotels.Open() {
		q.Set(HotelsParam, s.Hotels.Param())
	}

	return q
}

// URL is the page path carrying s.
func (s State) URL(path string) string {
	u := url.URL{Path: path, RawQuery: s.Query().Encode()}

	return u.String()
}

// ToggleMobile is the state reached by activating the mobile menu control.
func (s State) ToggleMobile() State {
	s.Mobile = s.Mobile.Flip()

	return s
}

// ToggleHotels is the state reached by activating the hotels submenu control.
func (s State) ToggleHotels() State {
	s.Hotels = s.Hotels.Flip()

	return s
}
