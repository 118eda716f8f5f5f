// Package shell composes every page from a fixed layout: the header with its
// navigation, the view selected by the route table and the footer. Header and
// footer are rendered for every path; the content region is left empty when
// no route matches.
package shell

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/mongoflow/web/internal/templates"
)

// NavLink is a header link. It carries no state.
type NavLink struct {
	Label  string
	Target string
}

// Shell owns the layout and the route table. It is immutable and safe for
// concurrent use.
type Shell struct {
	brand string
	table *RouteTable
	links []NavLink
}

// New creates a shell. Every link must target a registered pattern.
func New(brand string, table *RouteTable, links []NavLink) (*Shell, error) {
	if brand == "" {
		return nil, ErrEmptyBrand
	}
	if table == nil || table.Len() == 0 {
		return nil, ErrEmptyTable
	}

	for _, l := range links {
		if _, ok := table.Match(l.Target); !ok {
			return nil, fmt.Errorf("%w: %q -> %s", ErrUnknownNavTarget, l.Label, l.Target)
		}
	}

	return &Shell{
		brand: brand,
		table: table,
		links: append([]NavLink(nil), links...),
	}, nil
}

// Brand returns the name shown in the header and footer.
func (s *Shell) Brand() string {
	return s.brand
}

// Routes returns the route table in registration order.
func (s *Shell) Routes() []Route {
	return s.table.Routes()
}

// Links returns the header navigation links.
func (s *Shell) Links() []NavLink {
	return append([]NavLink(nil), s.links...)
}

// Resolve selects the view for a path.
func (s *Shell) Resolve(path string) Page {
	route, ok := s.table.Match(path)
	return Page{
		Brand:   s.brand,
		Path:    path,
		Route:   route,
		Matched: ok,
		Links:   s.Links(),
	}
}

// Component renders the full document for a path.
func (s *Shell) Component(path string) templ.Component {
	return s.Resolve(path).Component()
}

// Page is the composition for one path.
type Page struct {
	Brand   string
	Path    string
	Route   Route
	Matched bool
	Links   []NavLink
}

// Title is the document title: "<route title> | <brand>", or the brand alone.
func (p Page) Title() string {
	if !p.Matched || p.Route.Title == "" {
		return p.Brand
	}
	return p.Route.Title + " | " + p.Brand
}

// Component renders Header + (view | nothing) + Footer inside the document.
func (p Page) Component() templ.Component {
	header := templates.HeaderData{
		Brand: p.Brand,
		Links: make([]templates.LinkView, 0, len(p.Links)),
	}
	for _, l := range p.Links {
		header.Links = append(header.Links, templates.LinkView{
			Label:  l.Label,
			Href:   l.Target,
			Active: l.Target == p.Path,
		})
	}

	var content templ.Component
	if p.Matched {
		content = p.Route.View
	}

	return templates.Document(p.Title(),
		templates.Header(header),
		templates.Main(p.Route.Name, content),
		templates.Footer(p.Brand),
	)
}
