package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/simtran/portfolio/icons"
)

// ComposePageTitle joins a page title with the site title, unless the page
// title already is the site title (or empty).
func (r *Renderer) ComposePageTitle(title string) string {
	siteTitle := r.site.Title()
	if title == "" || title == siteTitle {
		return siteTitle
	}
	return title + " | " + siteTitle
}

// Page wraps body in the full document shell: head metadata, header,
// main content, and footer.
func (r *Renderer) Page(meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if err := r.writeHead(&b, meta); err != nil {
			return err
		}
		b.WriteString(`<body>`)
		if err := r.Header().Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`<main id="content">`)
		if err := body.Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`</main>`)
		if err := r.writeFooter(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`</body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func (r *Renderer) writeHead(b *strings.Builder, meta PageMeta) error {
	title := r.ComposePageTitle(meta.Title)
	desc := meta.Description
	if desc == "" {
		desc = r.site.Description()
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	b.WriteString("<!doctype html>")
	b.WriteString(`<html lang="en"><head>`)
	b.WriteString(`<meta charset="utf-8"/>`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0"/>`)
	b.WriteString(`<title>` + esc(title) + `</title>`)
	if desc != "" {
		b.WriteString(`<meta name="description" content="` + esc(desc) + `"/>`)
	}
	if meta.URL != "" {
		b.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
		b.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
	}
	b.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
	if desc != "" {
		b.WriteString(`<meta property="og:description" content="` + esc(desc) + `"/>`)
	}
	b.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
	b.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
	b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(r.site.Title()) + `" href="/feed.xml"/>`)
	b.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
	// The icon stylesheet is linked here, up front, so icons are sized on
	// first paint; the icon renderer's auto-injection stays disabled.
	if !r.icons.Config().AutoInjectStylesheet {
		b.WriteString(`<link rel="stylesheet" href="` + icons.StylesheetPath + `"/>`)
	}
	b.WriteString(`<script type="application/ld+json">` + WebsiteJsonLD(r.site) + `</script>`)
	b.WriteString(`</head>`)
	return nil
}

func (r *Renderer) writeFooter(ctx context.Context, b *strings.Builder) error {
	b.WriteString(`<footer class="site-footer">`)
	if email := r.site.ContactEmail(); email != "" {
		b.WriteString(`<a class="contact" href="mailto:` + esc(email) + `">` + esc(email) + `</a>`)
	}
	if err := r.writeSocialLinks(ctx, b); err != nil {
		return err
	}
	b.WriteString(`<p class="colophon">&copy; ` + esc(r.site.Author()) + `</p>`)
	b.WriteString(`</footer>`)
	return nil
}

// Meta builds the PageMeta for a configured logical page.
func (r *Renderer) Meta(pageKey string, pathSegments ...string) PageMeta {
	p := r.site.Page(pageKey)
	return PageMeta{
		Title:       p.Title,
		Description: p.Description,
		URL:         buildURL(r.site.URL(), pathSegments...),
		OGType:      "website",
	}
}
