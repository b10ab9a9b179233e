package icons

import (
	"context"
	"strings"
	"testing"
)

func renderIcon(t *testing.T, r *Renderer, name string) string {
	t.Helper()
	var b strings.Builder
	if err := r.Icon(name).Render(context.Background(), &b); err != nil {
		t.Fatalf("render %q: %v", name, err)
	}
	return b.String()
}

func TestNewRendererParsesRegistry(t *testing.T) {
	r, err := NewRenderer(Config{})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	for _, name := range []string{"github", "linkedin", "search", "mail", "rss"} {
		if !r.Has(name) {
			t.Errorf("registry missing icon %q", name)
		}
	}
}

func TestRendererKeepsConfiguredFlag(t *testing.T) {
	r, err := NewRenderer(Config{AutoInjectStylesheet: false})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if r.Config().AutoInjectStylesheet {
		t.Error("AutoInjectStylesheet should be false after initialization")
	}
}

func TestIconRendersInlineSVG(t *testing.T) {
	r, err := NewRenderer(Config{})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	got := renderIcon(t, r, "github")
	if !strings.Contains(got, "<svg") {
		t.Errorf("icon output missing svg: %q", got)
	}
	if !strings.Contains(got, `class="icon"`) {
		t.Errorf("icon output missing sized wrapper: %q", got)
	}
	if !strings.Contains(got, `aria-hidden="true"`) {
		t.Errorf("decorative icon must be aria-hidden: %q", got)
	}
	if strings.Contains(got, "<style>") {
		t.Errorf("no inline style expected when auto-injection is off: %q", got)
	}
}

func TestIconUnknownNameRendersPlaceholder(t *testing.T) {
	r, err := NewRenderer(Config{})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	got := renderIcon(t, r, "no-such-icon")
	if !strings.Contains(got, "icon-missing") {
		t.Errorf("expected placeholder span, got %q", got)
	}
	if strings.Contains(got, "<svg") {
		t.Errorf("unknown icon must not render svg: %q", got)
	}
}

func TestAutoInjectEmitsStylesheetExactlyOnce(t *testing.T) {
	r, err := NewRenderer(Config{AutoInjectStylesheet: true})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	first := renderIcon(t, r, "search")
	if !strings.Contains(first, "<style>") {
		t.Errorf("first render should inject stylesheet: %q", first)
	}
	second := renderIcon(t, r, "search")
	if strings.Contains(second, "<style>") {
		t.Errorf("second render must not inject again: %q", second)
	}
}

func TestIconRenderIsDeterministic(t *testing.T) {
	r, err := NewRenderer(Config{})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	a := renderIcon(t, r, "linkedin")
	b := renderIcon(t, r, "linkedin")
	if a != b {
		t.Error("identical inputs should render byte-identical output")
	}
}

func TestStylesheetNonEmpty(t *testing.T) {
	if len(Stylesheet()) == 0 {
		t.Fatal("embedded stylesheet is empty")
	}
	if !strings.Contains(string(Stylesheet()), ".icon") {
		t.Error("stylesheet should size the .icon class")
	}
}
