package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page body.
func (r *Renderer) NotFound() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<section class="error-page"><h1>Page not found</h1>`+
				`<p>The page you are looking for does not exist.</p>`+
				`<p><a href="/">Back home</a></p></section>`)
		return err
	})
}

// ServerError renders the 500 page body.
func (r *Renderer) ServerError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<section class="error-page"><h1>Something went wrong</h1>`+
				`<p>Try again in a moment.</p></section>`)
		return err
	})
}
