package display_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manzt/gos/display"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"tracks": []any{map[string]any{
			"data": map[string]any{"type": "bigwig", "url": "http://x/sig.bw"},
			"mark": "bar",
			"x":    map[string]any{"field": "position", "type": "genomic"},
		}},
	}
}

func TestSpecToHTML_EmbedsSpecAndDependencies(t *testing.T) {
	html, err := display.SpecToHTML(sampleDoc(), display.Options{})
	require.NoError(t, err)

	require.Contains(t, html, `<div id="vis"></div>`)
	require.Contains(t, html, `"tracks":[`)
	require.Contains(t, html, "https://unpkg.com/higlass@1.11/dist/hglib.css")
	require.Contains(t, html, "react@17")
	require.Contains(t, html, "pixi.js@6")
	require.Contains(t, html, "gosling.js@0.17.0")
	require.Contains(t, html, `"padding":0`)
}

func TestSpecToHTML_HonorsOverrides(t *testing.T) {
	html, err := display.SpecToHTML(sampleDoc(), display.Options{
		GoslingVersion: "0.9.8",
		BaseURL:        "https://cdn.example.com",
		OutputDiv:      "target",
		EmbedOptions:   map[string]any{"padding": 10, "theme": "dark"},
	})
	require.NoError(t, err)

	require.Contains(t, html, `<div id="target"></div>`)
	require.Contains(t, html, "https://cdn.example.com/gosling.js@0.9.8/dist/gosling.js")
	require.Contains(t, html, `"theme":"dark"`)
	require.NotContains(t, html, "unpkg.com")
}

func TestHTMLRenderer_UniqueOutputDivPerRender(t *testing.T) {
	r := display.HTMLRenderer{}
	first, err := r.Render(sampleDoc(), display.Options{})
	require.NoError(t, err)
	second, err := r.Render(sampleDoc(), display.Options{})
	require.NoError(t, err)

	require.Contains(t, first, "jupyter-gosling-")
	require.NotEqual(t, divID(t, first), divID(t, second))
}

func divID(t *testing.T, html string) string {
	t.Helper()
	_, rest, ok := strings.Cut(html, `<div id="`)
	require.True(t, ok, "no output div in %s", html)
	id, _, ok := strings.Cut(rest, `"`)
	require.True(t, ok)
	return id
}

func TestDisplay_HTMLUsesActiveThemeByDefault(t *testing.T) {
	d := display.New()
	require.NoError(t, d.Themes.Enable("dark"))

	html, err := d.HTML(sampleDoc(), display.Options{})
	require.NoError(t, err)
	require.Contains(t, html, `"theme":"dark"`)
	require.Contains(t, html, `"padding":0`)
}

func TestDisplay_HTMLFailsWithoutActiveRenderer(t *testing.T) {
	d := &display.Display{Renderers: display.NewRendererRegistry(), Themes: display.NewThemeRegistry()}
	_, err := d.HTML(sampleDoc(), display.Options{})
	require.Error(t, err)
}
