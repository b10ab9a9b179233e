// Package markdown converts blog post Markdown to HTML as a templ component.
// It covers the subset the posts on this site use: headings, paragraphs,
// unordered and ordered lists, blockquotes, horizontal rules, fenced code
// blocks with a language badge, and inline bold/italic/code/links.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reLink       = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
	reOrdered    = regexp.MustCompile(`^\d+\.\s+`)
	reHeading    = regexp.MustCompile(`^(#{1,4}) (.*)$`)
)

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		Render(&buf, md)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Render writes the HTML representation of md to buf.
func Render(buf *bytes.Buffer, md string) {
	var open string // open block element: "p", "ul", "ol" or "blockquote"
	inCode := false
	codeBadge := false

	closeBlock := func() {
		switch open {
		case "p":
			buf.WriteString("</p>")
		case "ul":
			buf.WriteString("</ul>")
		case "ol":
			buf.WriteString("</ol>")
		case "blockquote":
			buf.WriteString("</blockquote>")
		}
		open = ""
	}
	ensure := func(tag string) {
		if open != tag {
			closeBlock()
			buf.WriteString("<" + tag + ">")
			open = tag
		}
	}

	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimRight(raw, "\r")

		if strings.HasPrefix(line, "```") {
			if inCode {
				buf.WriteString("</code></pre>")
				if codeBadge {
					buf.WriteString("</div>")
					codeBadge = false
				}
				inCode = false
			} else {
				closeBlock()
				lang := strings.TrimSpace(line[3:])
				if lang != "" {
					escaped := html.EscapeString(lang)
					buf.WriteString(`<div class="code-block-wrapper"><span class="code-lang">` + escaped + `</span>`)
					buf.WriteString(`<pre class="code-block"><code class="language-` + escaped + `">`)
					codeBadge = true
				} else {
					buf.WriteString(`<pre class="code-block"><code>`)
				}
				inCode = true
			}
			continue
		}
		if inCode {
			buf.WriteString(html.EscapeString(line))
			buf.WriteString("\n")
			continue
		}

		if strings.TrimSpace(line) == "" {
			closeBlock()
			continue
		}

		switch {
		case strings.HasPrefix(line, "---"):
			closeBlock()
			buf.WriteString("<hr/>")
		case reHeading.MatchString(line):
			closeBlock()
			m := reHeading.FindStringSubmatch(line)
			level := len(m[1])
			tag := "h" + string(rune('0'+level))
			buf.WriteString("<" + tag + ">" + RenderInline(strings.TrimSpace(m[2])) + "</" + tag + ">")
		case strings.HasPrefix(line, "- "):
			ensure("ul")
			buf.WriteString("<li>" + RenderInline(strings.TrimSpace(line[2:])) + "</li>")
		case reOrdered.MatchString(line):
			ensure("ol")
			buf.WriteString("<li>" + RenderInline(strings.TrimSpace(reOrdered.ReplaceAllString(line, ""))) + "</li>")
		case strings.HasPrefix(line, "> "):
			ensure("blockquote")
			buf.WriteString(RenderInline(strings.TrimSpace(line[2:])))
		default:
			if open == "p" {
				buf.WriteString(" ")
			} else {
				ensure("p")
			}
			buf.WriteString(RenderInline(strings.TrimSpace(line)))
		}
	}
	closeBlock()
	if inCode {
		buf.WriteString("</code></pre>")
		if codeBadge {
			buf.WriteString("</div>")
		}
	}
}

// RenderInline applies inline formatting (links, code, bold, italic) to one
// line of already-unformatted text.
func RenderInline(s string) string {
	escaped := html.EscapeString(s)

	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `href="` + href + `"`
		if match[3] == "^" {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a ` + attrs + `>` + match[1] + `</a>`
	})

	// Split on inline code spans so emphasis never formats code content,
	// and apply emphasis only outside HTML tags so hrefs stay intact.
	var out strings.Builder
	last := 0
	for _, loc := range reInlineCode.FindAllStringSubmatchIndex(escaped, -1) {
		out.WriteString(emphasizeOutsideTags(escaped[last:loc[0]]))
		out.WriteString("<code>" + escaped[loc[2]:loc[3]] + "</code>")
		last = loc[1]
	}
	out.WriteString(emphasizeOutsideTags(escaped[last:]))
	return out.String()
}

func emphasizeOutsideTags(s string) string {
	var out strings.Builder
	for {
		lt := strings.IndexByte(s, '<')
		if lt < 0 {
			out.WriteString(emphasize(s))
			return out.String()
		}
		out.WriteString(emphasize(s[:lt]))
		gt := strings.IndexByte(s[lt:], '>')
		if gt < 0 {
			out.WriteString(s[lt:])
			return out.String()
		}
		out.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
}

func emphasize(s string) string {
	s = reBold.ReplaceAllString(s, "<strong>$1</strong>")
	return reItalic.ReplaceAllString(s, "<em>$1</em>")
}

// SafeURL validates and escapes a URL for use in an href attribute.
// Relative paths, fragments, and http/https/mailto URLs pass; everything
// else is dropped.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto":
		return html.EscapeString(val)
	default:
		return ""
	}
}
