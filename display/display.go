// Package display turns serialized Gosling documents into embeddable HTML
// and holds the renderer and theme registries. Registries are explicit
// values: construct them (or a Display) and pass them where needed. They are
// meant for single-threaded interactive use and provide no locking.
package display

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/manzt/gos"
)

// Renderer produces a display artifact from a serialized document.
type Renderer interface {
	Render(doc map[string]any, opts Options) (string, error)
}

// HTMLRenderer renders documents as standalone HTML with a unique output div
// per call.
type HTMLRenderer struct {
	// OutputDivPrefix prefixes the generated div id. Defaults to
	// "jupyter-gosling-".
	OutputDivPrefix string
}

// Render implements Renderer.
func (r HTMLRenderer) Render(doc map[string]any, opts Options) (string, error) {
	opts.OutputDiv = r.outputDiv()
	return SpecToHTML(doc, opts)
}

func (r HTMLRenderer) outputDiv() string {
	prefix := r.OutputDivPrefix
	if prefix == "" {
		prefix = "jupyter-gosling-"
	}
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// RendererRegistry is a named-slot table of renderers with one active slot.
type RendererRegistry struct {
	renderers map[string]Renderer
	active    string
}

// NewRendererRegistry returns an empty registry with nothing enabled.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{renderers: map[string]Renderer{}}
}

// Register binds a renderer to a name, overwriting any previous binding.
func (r *RendererRegistry) Register(name string, renderer Renderer) {
	r.renderers[name] = renderer
}

// Enable selects the active renderer; the name must be registered.
func (r *RendererRegistry) Enable(name string) error {
	if _, ok := r.renderers[name]; !ok {
		return gos.Issues{{
			Path:    "/" + name,
			Code:    gos.CodeRegistry,
			Message: fmt.Sprintf("renderer %q is not registered", name),
		}}
	}
	r.active = name
	return nil
}

// Get returns the active renderer; it fails when nothing is enabled.
func (r *RendererRegistry) Get() (Renderer, error) {
	if r.active == "" {
		return nil, gos.Issues{{
			Path:    "/",
			Code:    gos.CodeRegistry,
			Message: "no renderer enabled",
		}}
	}
	return r.renderers[r.active], nil
}

// Active returns the name of the active renderer, or "".
func (r *RendererRegistry) Active() string { return r.active }

// BuiltinThemes are the theme names shipped with gosling.js.
var BuiltinThemes = []string{
	"dark", "ensembl", "excel", "ggplot", "google", "igv",
	"jbrowse", "light", "ucsc", "warm", "washu",
}

// Theme is a custom theme definition passed through to the renderer.
type Theme = map[string]any

// ThemeRegistry tracks built-in theme names, registered custom themes and
// the active selection.
type ThemeRegistry struct {
	builtin map[string]struct{}
	custom  map[string]Theme
	active  string
}

// NewThemeRegistry returns a registry seeded with the given built-in names,
// defaulting to BuiltinThemes. Nothing is enabled initially.
func NewThemeRegistry(builtins ...string) *ThemeRegistry {
	if len(builtins) == 0 {
		builtins = BuiltinThemes
	}
	t := &ThemeRegistry{
		builtin: make(map[string]struct{}, len(builtins)),
		custom:  map[string]Theme{},
	}
	for _, name := range builtins {
		t.builtin[name] = struct{}{}
	}
	return t
}

// Register adds a custom theme. Built-in names cannot be overridden.
func (t *ThemeRegistry) Register(name string, theme Theme) error {
	if _, ok := t.builtin[name]; ok {
		return gos.Issues{{
			Path:    "/" + name,
			Code:    gos.CodeRegistry,
			Message: fmt.Sprintf("cannot override built-in theme %q", name),
		}}
	}
	t.custom[name] = theme
	return nil
}

// Enable selects the active theme from the built-in or custom names.
func (t *ThemeRegistry) Enable(name string) error {
	_, builtin := t.builtin[name]
	_, custom := t.custom[name]
	if !builtin && !custom {
		return gos.Issues{{
			Path:    "/" + name,
			Code:    gos.CodeRegistry,
			Message: fmt.Sprintf("theme %q is neither built-in nor registered", name),
		}}
	}
	t.active = name
	return nil
}

// Get returns the active theme: the name itself for a built-in, the
// registered definition for a custom theme. It fails when nothing is
// enabled.
func (t *ThemeRegistry) Get() (any, error) {
	if t.active == "" {
		return nil, gos.Issues{{
			Path:    "/",
			Code:    gos.CodeRegistry,
			Message: "no theme enabled",
		}}
	}
	if _, ok := t.builtin[t.active]; ok {
		return t.active, nil
	}
	return t.custom[t.active], nil
}

// Display bundles the registries the embedding layer needs.
type Display struct {
	Renderers *RendererRegistry
	Themes    *ThemeRegistry
}

// New returns a Display with the stock HTML renderer registered under the
// usual front-end names and "default" enabled. No theme is enabled.
func New() *Display {
	r := NewRendererRegistry()
	html := HTMLRenderer{}
	for _, name := range []string{"default", "html", "colab", "kaggle", "zeppelin"} {
		r.Register(name, html)
	}
	if err := r.Enable("default"); err != nil {
		panic(err)
	}
	return &Display{Renderers: r, Themes: NewThemeRegistry()}
}

// HTML renders a document with the active renderer. When opts.EmbedOptions
// is nil the default embed options are used, picking up the active theme if
// one is enabled.
func (d *Display) HTML(doc map[string]any, opts Options) (string, error) {
	renderer, err := d.Renderers.Get()
	if err != nil {
		return "", err
	}
	if opts.EmbedOptions == nil {
		embed := map[string]any{"padding": 0}
		if theme, err := d.Themes.Get(); err == nil {
			embed["theme"] = theme
		}
		opts.EmbedOptions = embed
	}
	return renderer.Render(doc, opts)
}
