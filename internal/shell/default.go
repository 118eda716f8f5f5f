package shell

import "github.com/mongoflow/web/internal/templates/pages"

// Default builds the MongoFlow shell: "/" shows the dashboard and "/items"
// the items list, with one header link to each.
func Default(brand string) (*Shell, error) {
	table, err := NewRouteTable(
		Route{Pattern: "/", Title: "Dashboard", View: pages.Dashboard()},
		Route{Pattern: "/items", Title: "Items", View: pages.ItemsList()},
	)
	if err != nil {
		return nil, err
	}

	return New(brand, table, []NavLink{
		{Label: "Dashboard", Target: "/"},
		{Label: "Items", Target: "/items"},
	})
}
