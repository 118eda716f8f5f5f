// Package templates holds the templ components that make up the shell layout:
// the HTML document, the header with its navigation, the main content region
// and the footer.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.960 generate
