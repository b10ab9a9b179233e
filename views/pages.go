package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/simtran/portfolio/markdown"
	"github.com/simtran/portfolio/site"
)

// Home renders the landing page: avatar, intro, and the most recent posts.
func (r *Renderer) Home(posts []BlogPost) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="intro">`)
		if err := Avatar("/public/avatar.jpg", r.site.Author(), defaultAvatarSize).Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`<h1>` + esc(r.site.Title()) + `</h1>`)
		if d := r.site.Description(); d != "" {
			b.WriteString(`<p class="tagline">` + esc(d) + `</p>`)
		}
		b.WriteString(`</section>`)

		b.WriteString(`<section class="recent-posts"><h2>Recent posts</h2>`)
		writePostList(&b, posts)
		b.WriteString(`<p><a href="/blog/">All posts</a></p>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// BlogIndex renders the paginated blog listing, optionally filtered by tag.
func (r *Renderer) BlogIndex(posts []BlogPost, activeTag string, tags []string, page, totalPages int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="blog-index"><h1>` + esc(r.pageTitleOr(site.PageBlog, "Blog")) + `</h1>`)
		writeTagFilter(&b, activeTag, tags)
		writePostList(&b, posts)
		writePagination(&b, "/blog/", activeTag, page, totalPages)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Post renders one blog post with its markdown body and related posts.
func (r *Renderer) Post(post BlogPost, related []BlogPost) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<article class="post">`)
		b.WriteString(`<h1>` + esc(post.Title) + `</h1>`)
		b.WriteString(`<p class="post-meta"><time datetime="` + esc(post.Date) + `">` + esc(FormatDate(post.Date)) + `</time>`)
		if len(post.Tags) > 0 {
			b.WriteString(` &middot; ` + esc(JoinTags(post.Tags)))
		}
		b.WriteString(`</p>`)
		if err := markdown.Markdown(post.Content).Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`</article>`)
		b.WriteString(`<script type="application/ld+json">` + BlogPostingJsonLD(r.site, post) + `</script>`)

		if len(related) > 0 {
			b.WriteString(`<aside class="related"><h2>Related posts</h2>`)
			writePostList(&b, related)
			b.WriteString(`</aside>`)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Projects renders the paginated projects listing, featured entries first.
func (r *Renderer) Projects(projects []Project, page, totalPages int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="projects"><h1>` + esc(r.pageTitleOr(site.PageProjects, "Projects")) + `</h1>`)
		b.WriteString(`<ul class="project-list">`)
		for _, p := range projects {
			b.WriteString(`<li class="project">`)
			b.WriteString(`<h2>` + esc(p.Title) + `</h2>`)
			if p.Year > 0 {
				b.WriteString(`<span class="project-year">` + strconv.Itoa(p.Year) + `</span>`)
			}
			if p.Description != "" {
				b.WriteString(`<p>` + esc(p.Description) + `</p>`)
			}
			if len(p.TechStack) > 0 {
				b.WriteString(`<p class="tech-stack">` + esc(strings.Join(p.TechStack, " · ")) + `</p>`)
			}
			if p.RepoURL != "" {
				b.WriteString(`<a href="` + esc(p.RepoURL) + `" rel="noopener" target="_blank">Source</a>`)
			}
			if p.LiveURL != "" {
				b.WriteString(`<a href="` + esc(p.LiveURL) + `" rel="noopener" target="_blank">Live</a>`)
			}
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
		writePagination(&b, "/projects/", "", page, totalPages)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func (r *Renderer) pageTitleOr(key, fallback string) string {
	if t := r.site.Page(key).Title; t != "" {
		return t
	}
	return fallback
}

func writePostList(b *strings.Builder, posts []BlogPost) {
	if len(posts) == 0 {
		b.WriteString(`<p class="empty">Nothing here yet.</p>`)
		return
	}
	b.WriteString(`<ul class="post-list">`)
	for _, p := range posts {
		b.WriteString(`<li class="post-item">`)
		b.WriteString(`<a href="` + esc(p.Link) + `">` + esc(p.Title) + `</a>`)
		b.WriteString(`<time datetime="` + esc(p.Date) + `">` + esc(FormatDate(p.Date)) + `</time>`)
		if p.Summary != "" {
			b.WriteString(`<p>` + esc(p.Summary) + `</p>`)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

func writeTagFilter(b *strings.Builder, activeTag string, tags []string) {
	if len(tags) == 0 {
		return
	}
	b.WriteString(`<nav class="tags" aria-label="Filter by tag">`)
	for _, t := range tags {
		cls := "tag"
		if t == activeTag {
			cls += " tag-active"
		}
		b.WriteString(`<a class="` + cls + `" href="/blog/?tag=` + PathEscape(t) + `">` + esc(t) + `</a>`)
	}
	b.WriteString(`</nav>`)
}

func writePagination(b *strings.Builder, basePath, tag string, page, totalPages int) {
	if totalPages <= 1 {
		return
	}
	href := func(p int) string {
		s := basePath + "?page=" + strconv.Itoa(p)
		if tag != "" {
			s += "&tag=" + PathEscape(tag)
		}
		return s
	}
	b.WriteString(`<nav class="pagination" aria-label="Pagination">`)
	if page > 1 {
		b.WriteString(`<a rel="prev" href="` + href(page-1) + `">Newer</a>`)
	}
	b.WriteString(`<span class="page-indicator">` + strconv.Itoa(page) + ` / ` + strconv.Itoa(totalPages) + `</span>`)
	if page < totalPages {
		b.WriteString(`<a rel="next" href="` + href(page+1) + `">Older</a>`)
	}
	b.WriteString(`</nav>`)
}
