package shell_test

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongoflow/web/internal/shell"
)

const (
	dashboardMarker = `data-view="dashboard"`
	itemsMarker     = `data-view="items"`
)

var linkRe = regexp.MustCompile(`<a href="([^"]*)"[^>]*>([^<]*)</a>`)

func defaultShell(t *testing.T) *shell.Shell {
	t.Helper()
	s, err := shell.Default("MongoFlow")
	require.NoError(t, err)
	return s
}

func renderPath(t *testing.T, s *shell.Shell, path string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Component(path).Render(context.Background(), &buf))
	return buf.String()
}

// assertLayout checks the header and footer appear exactly once and the
// header carries the two navigation links.
func assertLayout(t *testing.T, html string) {
	t.Helper()

	assert.Equal(t, 1, strings.Count(html, "<header"), "header count")
	assert.Equal(t, 1, strings.Count(html, "</header>"), "header close count")
	assert.Equal(t, 1, strings.Count(html, "<footer"), "footer count")
	assert.Equal(t, 1, strings.Count(html, "<main"), "main count")

	start := strings.Index(html, "<header")
	end := strings.Index(html, "</header>")
	require.True(t, start >= 0 && end > start)

	links := linkRe.FindAllStringSubmatch(html[start:end], -1)
	require.Len(t, links, 2)
	assert.Equal(t, "/", links[0][1])
	assert.Equal(t, "Dashboard", links[0][2])
	assert.Equal(t, "/items", links[1][1])
	assert.Equal(t, "Items", links[1][2])

	assert.Less(t, strings.Index(html, "</header>"), strings.Index(html, "<main"))
	assert.Less(t, strings.Index(html, "</main>"), strings.Index(html, "<footer"))
}

func TestShell_RootRendersDashboard(t *testing.T) {
	html := renderPath(t, defaultShell(t), "/")

	assertLayout(t, html)
	assert.Contains(t, html, dashboardMarker)
	assert.NotContains(t, html, itemsMarker)
	assert.Contains(t, html, "<title>Dashboard | MongoFlow</title>")
	assert.Contains(t, html, `<a href="/" aria-current="page">Dashboard</a>`)
	assert.Contains(t, html, `<a href="/items">Items</a>`)
}

func TestShell_ItemsRendersItemsList(t *testing.T) {
	html := renderPath(t, defaultShell(t), "/items")

	assertLayout(t, html)
	assert.Contains(t, html, itemsMarker)
	assert.NotContains(t, html, dashboardMarker)
	assert.Contains(t, html, "<title>Items | MongoFlow</title>")
	assert.Contains(t, html, `<a href="/items" aria-current="page">Items</a>`)
	assert.Contains(t, html, `<a href="/">Dashboard</a>`)
}

func TestShell_UnmatchedRendersEmptyContent(t *testing.T) {
	s := defaultShell(t)

	for _, path := range []string{"/missing", "/items/", "/ITEMS", "/items/42", ""} {
		t.Run(path, func(t *testing.T) {
			html := renderPath(t, s, path)

			assertLayout(t, html)
			assert.Contains(t, html, `<main class="app-main"></main>`)
			assert.NotContains(t, html, dashboardMarker)
			assert.NotContains(t, html, itemsMarker)
			assert.NotContains(t, html, "aria-current")
			assert.Contains(t, html, "<title>MongoFlow</title>")
		})
	}
}

func TestShell_NavigationKeepsLayoutStable(t *testing.T) {
	s := defaultShell(t)

	for _, path := range []string{"/", "/items", "/", "/missing", "/items", "/"} {
		assertLayout(t, renderPath(t, s, path))
	}
}

func TestShell_ConcurrentRenders(t *testing.T) {
	s := defaultShell(t)

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 20)
	for i := 0; i < 20; i++ {
		path := "/"
		if i%2 == 1 {
			path = "/items"
		}
		go func(p string) {
			var buf bytes.Buffer
			err := s.Component(p).Render(context.Background(), &buf)
			done <- result{html: buf.String(), err: err}
		}(path)
	}

	for i := 0; i < 20; i++ {
		res := <-done
		require.NoError(t, res.err)
		html := res.html
		assert.Equal(t, 1, strings.Count(html, "<header"))
		assert.Equal(t, 1, strings.Count(html, "<footer"))
	}
}

func TestShell_Resolve(t *testing.T) {
	s := defaultShell(t)

	page := s.Resolve("/items")
	assert.True(t, page.Matched)
	assert.Equal(t, "items", page.Route.Name)
	assert.Equal(t, "/items", page.Path)
	assert.Equal(t, "Items | MongoFlow", page.Title())

	page = s.Resolve("/nope")
	assert.False(t, page.Matched)
	assert.Empty(t, page.Route.Name)
	assert.Equal(t, "MongoFlow", page.Title())
}

func TestShell_Accessors(t *testing.T) {
	s := defaultShell(t)

	assert.Equal(t, "MongoFlow", s.Brand())
	assert.Equal(t, []shell.NavLink{
		{Label: "Dashboard", Target: "/"},
		{Label: "Items", Target: "/items"},
	}, s.Links())

	routes := s.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/", routes[0].Pattern)
	assert.Equal(t, "/items", routes[1].Pattern)

	links := s.Links()
	links[0].Target = "/elsewhere"
	assert.Equal(t, "/", s.Links()[0].Target)
}

func TestShell_ResolveLinksAreCopied(t *testing.T) {
	s := defaultShell(t)

	page := s.Resolve("/")
	page.Links[1].Label = "Hijacked"

	assert.Equal(t, "Items", s.Links()[1].Label)
	html := renderPath(t, s, "/items")
	assert.Contains(t, html, `<a href="/items" aria-current="page">Items</a>`)
	assert.NotContains(t, html, "Hijacked")
}

func TestNew_Errors(t *testing.T) {
	table, err := shell.NewRouteTable(shell.Route{Pattern: "/", Title: "Dashboard", View: view("d")})
	require.NoError(t, err)

	_, err = shell.New("", table, nil)
	assert.ErrorIs(t, err, shell.ErrEmptyBrand)

	_, err = shell.New("MongoFlow", nil, nil)
	assert.ErrorIs(t, err, shell.ErrEmptyTable)

	_, err = shell.New("MongoFlow", table, []shell.NavLink{{Label: "Items", Target: "/items"}})
	assert.ErrorIs(t, err, shell.ErrUnknownNavTarget)
}

func TestShell_EscapesBrand(t *testing.T) {
	s, err := shell.Default("<Flow>")
	require.NoError(t, err)

	html := renderPath(t, s, "/")
	assert.NotContains(t, html, "<Flow>")
	assert.Contains(t, html, "&lt;Flow&gt;")
}
