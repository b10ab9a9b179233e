package views

import (
	"strings"
	"testing"

	"github.com/simtran/portfolio/icons"
)

func TestComposePageTitle(t *testing.T) {
	r := testRenderer(t)
	tests := []struct {
		input string
		want  string
	}{
		{"Blog", "Blog | Simeon Tran"},
		{"", "Simeon Tran"},
		{"Simeon Tran", "Simeon Tran"},
	}
	for _, tt := range tests {
		if got := r.ComposePageTitle(tt.input); got != tt.want {
			t.Errorf("ComposePageTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPageRendersFullDocument(t *testing.T) {
	r := testRenderer(t)
	got := renderComponent(t, r.Page(r.Meta("home"), r.NotFound()))
	for _, want := range []string{
		"<!doctype html>",
		`<html lang="en">`,
		"<title>Simeon Tran</title>",
		`<meta property="og:type" content="website"/>`,
		"</body></html>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPageLinksIconStylesheetWhenAutoInjectOff(t *testing.T) {
	r := testRenderer(t)
	got := renderComponent(t, r.Page(r.Meta("home"), r.NotFound()))
	if !strings.Contains(got, `<link rel="stylesheet" href="`+icons.StylesheetPath+`"/>`) {
		t.Errorf("layout must link the icon stylesheet explicitly: %q", got)
	}
	if strings.Contains(got, "<style>") {
		t.Errorf("no inline icon styles expected when the layout links the stylesheet: %q", got)
	}
}

func TestPageIncludesWebsiteJsonLD(t *testing.T) {
	r := testRenderer(t)
	got := renderComponent(t, r.Page(r.Meta("home"), r.NotFound()))
	if !strings.Contains(got, `"@type":"WebSite"`) {
		t.Errorf("page missing WebSite JSON-LD: %q", got)
	}
	if !strings.Contains(got, `"name":"Simeon Tran"`) {
		t.Errorf("JSON-LD missing site name: %q", got)
	}
}

func TestPageFooterContainsContactAndSocial(t *testing.T) {
	r := testRenderer(t)
	got := renderComponent(t, r.Page(r.Meta("home"), r.NotFound()))
	if !strings.Contains(got, `href="mailto:hello@simeontran.dev"`) {
		t.Errorf("footer missing contact email: %q", got)
	}
	if strings.Count(got, "github.com/simtran") != 2 {
		t.Errorf("social links should appear in header and footer: %q", got)
	}
}

func TestPageRenderIsIdempotent(t *testing.T) {
	r := testRenderer(t)
	a := renderComponent(t, r.Page(r.Meta("blog", "blog"), r.NotFound()))
	b := renderComponent(t, r.Page(r.Meta("blog", "blog"), r.NotFound()))
	if a != b {
		t.Error("identical inputs must produce byte-identical pages")
	}
}

func TestMetaUsesConfiguredPageData(t *testing.T) {
	r := testRenderer(t)
	meta := r.Meta("blog", "blog")
	if meta.Title != "Blog" {
		t.Errorf("Title = %q, want Blog", meta.Title)
	}
	if meta.URL != "https://simeontran.dev/blog/" {
		t.Errorf("URL = %q", meta.URL)
	}
}

func TestMetaUnknownPageRendersEmptyStrings(t *testing.T) {
	r := testRenderer(t)
	meta := r.Meta("missing")
	if meta.Title != "" || meta.Description != "" {
		t.Errorf("unknown page should yield empty metadata, got %+v", meta)
	}
	// An empty title falls back to the site title in the rendered head.
	got := renderComponent(t, r.Page(meta, r.NotFound()))
	if !strings.Contains(got, "<title>Simeon Tran</title>") {
		t.Errorf("empty page title should fall back to site title: %q", got)
	}
}
