// Package views renders the site's HTML as templ components written in
// plain Go. Components are methods on Renderer, which is constructed once
// with the immutable site configuration and the icon renderer; rendering is
// a pure function of the injected configuration and the arguments, so the
// same inputs always produce the same bytes.
package views

import (
	"html"

	"github.com/simtran/portfolio/icons"
	"github.com/simtran/portfolio/site"
)

// Renderer builds page and fragment components from the site configuration.
type Renderer struct {
	site  *site.Site
	icons *icons.Renderer
}

// NewRenderer returns a Renderer bound to the given configuration.
func NewRenderer(s *site.Site, ic *icons.Renderer) *Renderer {
	return &Renderer{site: s, icons: ic}
}

// Site exposes the bound configuration to handlers that need it.
func (r *Renderer) Site() *site.Site {
	return r.site
}

func esc(s string) string {
	return html.EscapeString(s)
}
