package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Header renders the top-of-page navigation: the site title linking home,
// CV / Blog / Projects links, the search trigger, and the social links in
// authored order.
//
// The search button is a stateless trigger. It carries data-search-trigger
// for the search overlay script and exposes "Search" to assistive
// technology; the icon itself is decorative.
func (r *Renderer) Header() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<header class="site-header"><nav class="site-nav" aria-label="Main">`)
		b.WriteString(`<a class="site-title" href="/">` + esc(r.site.Title()) + `</a>`)

		b.WriteString(`<div class="site-links">`)
		b.WriteString(`<a href="/public/cv.pdf" download>CV</a>`)
		b.WriteString(`<a href="/blog/">Blog</a>`)
		b.WriteString(`<a href="/projects/">Projects</a>`)
		b.WriteString(`</div>`)

		b.WriteString(`<button type="button" class="search-trigger" data-search-trigger aria-label="Search">`)
		if err := r.icons.Icon("search").Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`<span class="sr-only">Search</span>`)
		b.WriteString(`</button>`)

		if err := r.writeSocialLinks(ctx, &b); err != nil {
			return err
		}

		b.WriteString(`</nav></header>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// SocialLinks renders the configured social links as a standalone list,
// used by the footer.
func (r *Renderer) SocialLinks() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if err := r.writeSocialLinks(ctx, &b); err != nil {
			return err
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func (r *Renderer) writeSocialLinks(ctx context.Context, b *strings.Builder) error {
	b.WriteString(`<ul class="social-links">`)
	for _, l := range r.site.Social() {
		cls := "social-link"
		if l.IsLastInGroup {
			cls += " group-end"
		}
		b.WriteString(`<li class="` + cls + `">`)
		b.WriteString(`<a href="` + esc(l.Href) + `" rel="me noopener" target="_blank">`)
		if err := r.icons.Icon(l.Icon).Render(ctx, b); err != nil {
			return err
		}
		b.WriteString(`<span class="sr-only">` + esc(l.DisplayName) + `</span>`)
		b.WriteString(`</a></li>`)
	}
	b.WriteString(`</ul>`)
	return nil
}
