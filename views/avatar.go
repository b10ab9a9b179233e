package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const defaultAvatarSize = 96

// Avatar renders the portrait image with explicit dimensions so the layout
// never shifts while the image loads. A non-positive size falls back to the
// default.
func Avatar(src, alt string, size int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if size <= 0 {
			size = defaultAvatarSize
		}
		px := strconv.Itoa(size)
		_, err := io.WriteString(w,
			`<img class="avatar" src="`+esc(src)+`" alt="`+esc(alt)+
				`" width="`+px+`" height="`+px+`" loading="lazy" decoding="async"/>`)
		return err
	})
}
