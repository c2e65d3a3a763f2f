package display

import (
	"embed"
	"html/template"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/manzt/gos"
)

//go:embed gosling.html.tmpl
var templateFS embed.FS

var loadTemplate = sync.OnceValues(func() (*template.Template, error) {
	content, err := templateFS.ReadFile("gosling.html.tmpl")
	if err != nil {
		return nil, err
	}
	return template.New("gosling").Parse(string(content))
})

// Options configures HTML embedding. Zero values fall back to the pinned
// front-end dependency versions.
type Options struct {
	GoslingVersion string // gosling.js version, default gos.SchemaVersion without the "v"
	HiglassVersion string // default "1.11"
	ReactVersion   string // default "17"
	PixijsVersion  string // default "6"
	BaseURL        string // asset host, default "https://unpkg.com"
	OutputDiv      string // DOM target id, default "vis"
	EmbedOptions   map[string]any
}

func (o Options) withDefaults() Options {
	if o.GoslingVersion == "" {
		o.GoslingVersion = strings.TrimPrefix(gos.SchemaVersion, "v")
	}
	if o.HiglassVersion == "" {
		o.HiglassVersion = "1.11"
	}
	if o.ReactVersion == "" {
		o.ReactVersion = "17"
	}
	if o.PixijsVersion == "" {
		o.PixijsVersion = "6"
	}
	if o.BaseURL == "" {
		o.BaseURL = "https://unpkg.com"
	}
	if o.OutputDiv == "" {
		o.OutputDiv = "vis"
	}
	if o.EmbedOptions == nil {
		o.EmbedOptions = map[string]any{"padding": 0}
	}
	return o
}

type templateData struct {
	Options
	Spec         template.JS
	EmbedOptions template.JS
	Sources      template.JS
}

// scriptSources lists the runtime dependency bundles in load order.
func (o Options) scriptSources() []string {
	return []string{
		o.BaseURL + "/react@" + o.ReactVersion + "/umd/react.production.min.js",
		o.BaseURL + "/react-dom@" + o.ReactVersion + "/umd/react-dom.production.min.js",
		o.BaseURL + "/pixi.js@" + o.PixijsVersion + "/dist/browser/pixi.min.js",
		o.BaseURL + "/gosling.js@" + o.GoslingVersion + "/dist/gosling.js",
	}
}

// SpecToHTML embeds a serialized document into a standalone HTML page that
// loads the gosling.js runtime and its dependencies, then calls embed on the
// output div.
func SpecToHTML(doc map[string]any, opts Options) (string, error) {
	opts = opts.withDefaults()
	tmpl, err := loadTemplate()
	if err != nil {
		return "", err
	}
	spec, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	embedOpts, err := json.Marshal(opts.EmbedOptions)
	if err != nil {
		return "", err
	}
	sources, err := json.Marshal(opts.scriptSources())
	if err != nil {
		return "", err
	}
	var b strings.Builder
	data := templateData{
		Options:      opts,
		Spec:         template.JS(spec),
		EmbedOptions: template.JS(embedOpts),
		Sources:      template.JS(sources),
	}
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
