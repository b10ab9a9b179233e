// Package icons renders inline SVG icons from an embedded registry.
//
// A Renderer is constructed exactly once at application bootstrap via
// NewRenderer; components receive it by injection, so no icon can render
// before the registry is initialized. The stylesheet that sizes the icons is
// either linked explicitly by the page layout (the default here, which avoids
// a large-icon flash on first paint) or injected inline by the first rendered
// icon when Config.AutoInjectStylesheet is set.
package icons

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/a-h/templ"
)

//go:embed icons.json
var registryJSON []byte

//go:embed icons.css
var stylesheet []byte

// StylesheetPath is where the application serves the icon stylesheet.
const StylesheetPath = "/public/icons.css"

// Config controls one-time renderer behavior.
type Config struct {
	// AutoInjectStylesheet makes the first rendered icon emit the icon
	// stylesheet inline. Leave false when the layout links the stylesheet
	// itself.
	AutoInjectStylesheet bool
}

// Renderer looks up icons by name and renders them as templ components.
type Renderer struct {
	cfg        Config
	icons      map[string]string
	injectOnce sync.Once
}

// NewRenderer parses the embedded registry and returns a ready Renderer.
// Call it once at startup, before any component renders.
func NewRenderer(cfg Config) (*Renderer, error) {
	var m map[string]string
	if err := json.Unmarshal(registryJSON, &m); err != nil {
		return nil, fmt.Errorf("icons: parse embedded registry: %w", err)
	}
	return &Renderer{cfg: cfg, icons: m}, nil
}

// Config returns the configuration the renderer was initialized with.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Has reports whether name exists in the registry.
func (r *Renderer) Has(name string) bool {
	_, ok := r.icons[name]
	return ok
}

// Names returns all registered icon names, sorted.
func (r *Renderer) Names() []string {
	names := make([]string, 0, len(r.icons))
	for n := range r.icons {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Stylesheet returns the raw CSS that sizes rendered icons.
func Stylesheet() []byte {
	return stylesheet
}

// Icon returns a component rendering the named icon as inline SVG wrapped in
// a sized span. An unknown name renders an empty placeholder span; a missing
// icon is an authoring defect, not a runtime failure.
func (r *Renderer) Icon(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if r.cfg.AutoInjectStylesheet {
			var injectErr error
			r.injectOnce.Do(func() {
				_, injectErr = fmt.Fprintf(w, "<style>%s</style>", stylesheet)
			})
			if injectErr != nil {
				return injectErr
			}
		}
		svg, ok := r.icons[name]
		if !ok {
			_, err := io.WriteString(w, `<span class="icon icon-missing" aria-hidden="true"></span>`)
			return err
		}
		_, err := io.WriteString(w, `<span class="icon" aria-hidden="true">`+svg+`</span>`)
		return err
	})
}
