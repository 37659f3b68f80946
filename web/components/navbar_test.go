package components_test

import (
	"strings"
	"testing"

	"github.com/mundomaya/hoteles/content"
	"github.com/mundomaya/hoteles/ui/menu"
	"github.com/mundomaya/hoteles/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func mobileToggle(t *testing.T, doc *html.Node) *html.Node {
	t.Helper()

	toggles := findAll(doc, func(n *html.Node) bool {
		v, ok := attr(n, "aria-controls")

		return n.Data == "a" && ok && v == components.MobileMenuID
	})
	require.Len(t, toggles, 1)

	return toggles[0]
}

func TestNavbarMobileMenu(t *testing.T) {
	nav := &content.Default("").Navigation

	t.Run("closed on initial render", func(t *testing.T) {
		doc := parse(t, components.Navbar(nav, menu.State{}))

		assert.Empty(t, findAll(doc, byAttr("id", components.MobileMenuID)))

		toggle := mobileToggle(t, doc)
		expanded, _ := attr(toggle, "aria-expanded")
		href, _ := attr(toggle, "href")
		hxGet, _ := attr(toggle, "hx-get")
		target, _ := attr(toggle, "hx-target")

		assert.Equal(t, "false", expanded)
		assert.Equal(t, "/?menu=open", href)
		assert.Equal(t, href, hxGet)
		assert.Equal(t, "#"+components.HeaderID, target)
	})

	t.Run("following the toggle n times", func(t *testing.T) {
		for n := range 5 {
			state := menu.State{}

			for range n {
				doc := parse(t, components.Navbar(nav, state))
				href, _ := attr(mobileToggle(t, doc), "href")

				req, err := parseQuery(href)
				require.NoError(t, err)

				state = menu.FromQuery(req)
			}

			doc := parse(t, components.Navbar(nav, state))
			present := len(findAll(doc, byAttr("id", components.MobileMenuID))) == 1

			assert.Equal(t, n%2 == 1, present, "after %d toggles", n)
		}
	})

	t.Run("open menu lists every link", func(t *testing.T) {
		doc := parse(t, components.Navbar(nav, menu.State{Mobile: menu.Opened}))

		blocks := findAll(doc, byAttr("id", components.MobileMenuID))
		require.Len(t, blocks, 1)

		links := findAll(blocks[0], byTag("a"))
		assert.Len(t, links, len(nav.Links)+len(nav.Hotels)+1)

		expanded, _ := attr(mobileToggle(t, doc), "aria-expanded")
		assert.Equal(t, "true", expanded)
	})
}

func TestNavbarHotelsSubmenu(t *testing.T) {
	nav := &content.Default("").Navigation

	tests := []struct {
		name         string
		state        menu.State
		wantHidden   bool
		wantExpanded string
		wantHref     string
	}{
		{name: "closed", state: menu.State{}, wantHidden: true, wantExpanded: "false", wantHref: "/?hoteles=open"},
		{name: "open", state: menu.State{Hotels: menu.Opened}, wantHidden: false, wantExpanded: "true", wantHref: "/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := parse(t, components.Navbar(nav, tc.state))

			submenus := findAll(doc, byAttr("id", components.HotelsMenuID))
			require.Len(t, submenus, 1)

			class, _ := attr(submenus[0], "class")
			assert.Equal(t, tc.wantHidden, strings.HasPrefix(class, "hidden "))
			assert.Contains(t, class, "group-focus-within:block")
			assert.Len(t, findAll(submenus[0], byTag("a")), 7)

			toggles := findAll(doc, byAttr("aria-controls", components.HotelsMenuID))
			require.Len(t, toggles, 1)

			expanded, _ := attr(toggles[0], "aria-expanded")
			href, _ := attr(toggles[0], "href")
			assert.Equal(t, tc.wantExpanded, expanded)
			assert.Equal(t, tc.wantHref, href)
		})
	}
}
