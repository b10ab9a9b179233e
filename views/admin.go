package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// AdminLogin renders the password form, with an error notice on failure.
func (r *Renderer) AdminLogin(showError bool, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="admin-login"><h1>Admin</h1>`)
		if showError {
			b.WriteString(`<p class="error" role="alert">Wrong password.</p>`)
		}
		b.WriteString(`<form method="post" action="/admin/login/">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<label>Password <input type="password" name="password" autocomplete="current-password" required/></label>`)
		b.WriteString(`<button type="submit">Sign in</button>`)
		b.WriteString(`</form></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AdminDashboard lists every post and project with edit/delete controls and
// the avatar upload form.
func (r *Renderer) AdminDashboard(posts []BlogPost, projects []Project, message, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="admin"><h1>Dashboard</h1>`)
		if message != "" {
			b.WriteString(`<p class="notice" role="status">` + esc(message) + `</p>`)
		}

		b.WriteString(`<h2>Posts</h2><ul class="admin-posts">`)
		for _, p := range posts {
			b.WriteString(`<li>`)
			b.WriteString(`<a href="/admin/post/` + PathEscape(p.Slug) + `/">` + esc(p.Title) + `</a>`)
			b.WriteString(` <time datetime="` + esc(p.Date) + `">` + esc(p.Date) + `</time>`)
			if !p.Published {
				b.WriteString(` <em class="draft">draft</em>`)
			}
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
		if err := r.AdminPostForm(BlogPost{}, csrfToken).Render(ctx, &b); err != nil {
			return err
		}

		b.WriteString(`<h2>Projects</h2><ul class="admin-projects">`)
		for _, p := range projects {
			b.WriteString(`<li>` + esc(p.Title))
			b.WriteString(`<form method="post" action="/admin/project/` + PathEscape(p.Slug) + `/delete/">`)
			b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
			b.WriteString(`<button type="submit">Delete</button></form></li>`)
		}
		b.WriteString(`</ul>`)

		b.WriteString(`<h2>Avatar</h2>`)
		b.WriteString(`<form method="post" action="/admin/avatar/" enctype="multipart/form-data">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<input type="file" name="avatar" accept="image/*" required/>`)
		b.WriteString(`<button type="submit">Upload</button></form>`)

		b.WriteString(`<form method="post" action="/admin/logout/">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<button type="submit">Sign out</button></form>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AdminPostForm renders the post editor, empty for a new post.
func (r *Renderer) AdminPostForm(post BlogPost, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<form class="post-form" method="post" action="/admin/save/">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<label>Title <input type="text" name="title" value="` + esc(post.Title) + `"/></label>`)
		b.WriteString(`<label>Slug <input type="text" name="slug" value="` + esc(post.Slug) + `"/></label>`)
		b.WriteString(`<label>Date <input type="date" name="date" value="` + esc(post.Date) + `"/></label>`)
		b.WriteString(`<label>Tags <input type="text" name="tags" value="` + esc(JoinTags(post.Tags)) + `"/></label>`)
		b.WriteString(`<label>Summary <textarea name="summary">` + esc(post.Summary) + `</textarea></label>`)
		b.WriteString(`<label>Content <textarea name="content">` + esc(post.Content) + `</textarea></label>`)
		checked := ""
		if post.Published {
			checked = ` checked`
		}
		b.WriteString(`<label><input type="checkbox" name="published"` + checked + `/> Published</label>`)
		b.WriteString(`<button type="submit">Save</button>`)
		b.WriteString(`</form>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
