package components_test

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))

	return buf.String()
}

func parse(t *testing.T, c templ.Component) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(render(t, c)))
	require.NoError(t, err)

	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	found := make([]*html.Node, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			found = append(found, n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return found
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func byAttr(key, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, key)

		return n.Type == html.ElementNode && ok && v == value
	}
}

func textOf(n *html.Node) string {
	var sb strings.Builder

	for _, t := range findAll(n, func(n *html.Node) bool { return n.Type == html.TextNode }) {
		sb.WriteString(t.Data)
	}

	return strings.TrimSpace(sb.String())
}

// bodyChildren lists the element children of <body> in document order.
func bodyChildren(t *testing.T, doc *html.Node) []*html.Node {
	t.Helper()

	bodies := findAll(doc, byTag("body"))
	require.Len(t, bodies, 1)

	children := make([]*html.Node, 0)

	for c := bodies[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}

	return children
}

func parseQuery(href string) (url.Values, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, err
	}

	return u.Query(), nil
}
