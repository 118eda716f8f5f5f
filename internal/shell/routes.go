package shell

import (
	"fmt"
	"path"
	"strings"

	"github.com/a-h/templ"
)

// Route binds an exact path pattern to a view.
type Route struct {
	Pattern string
	// Name identifies the route in markup and metrics. Derived from Title when empty.
	Name  string
	Title string
	View  templ.Component
}

// RouteTable is an ordered, immutable set of routes matched by exact path.
type RouteTable struct {
	routes []Route
	index  map[string]int
}

// NewRouteTable validates the routes and freezes them in the given order.
func NewRouteTable(routes ...Route) (*RouteTable, error) {
	if len(routes) == 0 {
		return nil, ErrEmptyTable
	}

	t := &RouteTable{
		routes: make([]Route, 0, len(routes)),
		index:  make(map[string]int, len(routes)),
	}
	names := make(map[string]string, len(routes))

	for _, r := range routes {
		if err := validatePattern(r.Pattern); err != nil {
			return nil, err
		}
		if _, dup := t.index[r.Pattern]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePattern, r.Pattern)
		}
		if r.View == nil {
			return nil, fmt.Errorf("route %s: %w", r.Pattern, ErrNilView)
		}

		if r.Name == "" {
			r.Name = Slugify(r.Title)
		}
		if err := ValidateName(r.Name); err != nil {
			return nil, fmt.Errorf("route %s: %w", r.Pattern, err)
		}
		if other, dup := names[r.Name]; dup {
			return nil, fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateName, r.Name, other, r.Pattern)
		}
		names[r.Name] = r.Pattern

		t.index[r.Pattern] = len(t.routes)
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// Match returns the route whose pattern equals p exactly.
// There is no prefix matching, trailing-slash folding or catch-all.
func (t *RouteTable) Match(p string) (Route, bool) {
	i, ok := t.index[p]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns a copy of the routes in registration order.
func (t *RouteTable) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes.
func (t *RouteTable) Len() int {
	return len(t.routes)
}

// validatePattern accepts clean, absolute, literal paths only.
func validatePattern(p string) error {
	switch {
	case p == "":
		return fmt.Errorf("%w: empty", ErrInvalidPattern)
	case !strings.HasPrefix(p, "/"):
		return fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, p)
	case strings.ContainsAny(p, "*{}:?# \t\n"):
		return fmt.Errorf("%w: %q must be a literal path", ErrInvalidPattern, p)
	case path.Clean(p) != p:
		return fmt.Errorf("%w: %q is not a clean path", ErrInvalidPattern, p)
	}
	return nil
}
