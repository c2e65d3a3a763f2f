package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gos "github.com/manzt/gos"
	"github.com/manzt/gos/display"
)

func TestRendererRegistry_EnableGet(t *testing.T) {
	reg := display.NewRendererRegistry()
	reg.Register("html", display.HTMLRenderer{})

	require.NoError(t, reg.Enable("html"))
	r, err := reg.Get()
	require.NoError(t, err)
	assert.IsType(t, display.HTMLRenderer{}, r)
	assert.Equal(t, "html", reg.Active())
}

func TestRendererRegistry_EnableUnknownFails(t *testing.T) {
	reg := display.NewRendererRegistry()
	err := reg.Enable("not-a-renderer")
	require.True(t, gos.HasCode(err, gos.CodeRegistry), "err = %v", err)
}

func TestRendererRegistry_GetWithNothingEnabledFails(t *testing.T) {
	reg := display.NewRendererRegistry()
	_, err := reg.Get()
	require.True(t, gos.HasCode(err, gos.CodeRegistry), "err = %v", err)
}

func TestRendererRegistry_RegisterOverwrites(t *testing.T) {
	reg := display.NewRendererRegistry()
	reg.Register("html", display.HTMLRenderer{})
	reg.Register("html", display.HTMLRenderer{OutputDivPrefix: "p-"})
	require.NoError(t, reg.Enable("html"))

	r, err := reg.Get()
	require.NoError(t, err)
	assert.Equal(t, "p-", r.(display.HTMLRenderer).OutputDivPrefix)
}

func TestThemeRegistry_EnableGetBuiltin(t *testing.T) {
	themes := display.NewThemeRegistry()
	require.NoError(t, themes.Enable("dark"))

	got, err := themes.Get()
	require.NoError(t, err)
	assert.Equal(t, "dark", got)
}

func TestThemeRegistry_EnableUnknownFails(t *testing.T) {
	themes := display.NewThemeRegistry()
	err := themes.Enable("not-a-theme")
	require.True(t, gos.HasCode(err, gos.CodeRegistry), "err = %v", err)
}

func TestThemeRegistry_GetWithNothingEnabledFails(t *testing.T) {
	themes := display.NewThemeRegistry()
	_, err := themes.Get()
	require.True(t, gos.HasCode(err, gos.CodeRegistry), "err = %v", err)
}

func TestThemeRegistry_CustomTheme(t *testing.T) {
	themes := display.NewThemeRegistry()
	custom := display.Theme{"base": "light", "axis": map[string]any{"labelColor": "gray"}}
	require.NoError(t, themes.Register("corporate", custom))
	require.NoError(t, themes.Enable("corporate"))

	got, err := themes.Get()
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestThemeRegistry_CannotOverrideBuiltin(t *testing.T) {
	themes := display.NewThemeRegistry()
	err := themes.Register("dark", display.Theme{})
	require.True(t, gos.HasCode(err, gos.CodeRegistry), "err = %v", err)
}

func TestNew_StockRenderers(t *testing.T) {
	d := display.New()
	assert.Equal(t, "default", d.Renderers.Active())
	for _, name := range []string{"default", "html", "colab", "kaggle", "zeppelin"} {
		require.NoError(t, d.Renderers.Enable(name))
	}
}
