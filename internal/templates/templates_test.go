// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/bigfanoftim/blog/internal/assets"
	"github.com/bigfanoftim/blog/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func production(t *testing.T) context.Context {
	t.Helper()
	dc, err := assetpath.New(assetpath.Production, "https://bigfanoftim.github.io/")
	require.NoError(t, err)
	return templates.WithDeployment(context.Background(), dc)
}

func render(t *testing.T, ctx context.Context, c templ.Component) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := c.Render(ctx, &buf)
	return buf.String(), err
}

func TestDeployment_DefaultsToDevelopment(t *testing.T) {
	dc := templates.Deployment(context.Background())

	assert.Equal(t, assetpath.Development, dc.Environment())
}

func TestAssetPath(t *testing.T) {
	path, err := templates.AssetPath(context.Background(), "/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "/logo.png", path)

	path, err = templates.AssetPath(production(t), "/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "https://bigfanoftim.github.io/logo.png", path)
}

func TestImage_Development(t *testing.T) {
	out, err := render(t, context.Background(), templates.Image(templates.ImageProps{
		Src: "/logo.png",
		Alt: "logo",
	}))

	require.NoError(t, err)
	assert.Equal(t, `<img src="/logo.png" alt="logo" decoding="async" loading="lazy">`, out)
}

func TestImage_Production(t *testing.T) {
	out, err := render(t, production(t), templates.Image(templates.ImageProps{
		Src:    "/logo.png",
		Alt:    "logo",
		Class:  "avatar",
		Width:  32,
		Height: 16,
	}))

	require.NoError(t, err)
	assert.Equal(t,
		`<img src="https://bigfanoftim.github.io/logo.png" alt="logo" class="avatar" decoding="async" height="16" loading="lazy" width="32">`,
		out)
}

func TestImage_ForwardsAttributes(t *testing.T) {
	out, err := render(t, context.Background(), templates.Image(templates.ImageProps{
		Src: "/logo.png",
		Attrs: templ.Attributes{
			"loading":   "eager",
			"hidden":    true,
			"draggable": false,
			"data-id":   7,
			"title":     `"quoted" & <tagged>`,
			"src":       "/ignored.png",
		},
	}))

	require.NoError(t, err)
	assert.Contains(t, out, `src="/logo.png"`)
	assert.NotContains(t, out, "ignored")
	assert.Contains(t, out, `loading="eager"`)
	assert.Contains(t, out, ` hidden`)
	assert.NotContains(t, out, "draggable")
	assert.Contains(t, out, `data-id="7"`)
	assert.Contains(t, out, `title="&#34;quoted&#34; &amp; &lt;tagged&gt;"`)
}

func TestImage_TypedPropsWinOverAttrs(t *testing.T) {
	out, err := render(t, context.Background(), templates.Image(templates.ImageProps{
		Src:   "/logo.png",
		Class: "x",
		Width: 10,
		Attrs: templ.Attributes{"class": "y", "WIDTH": 20, "height": 5, "Loading": "eager"},
	}))

	require.NoError(t, err)
	assert.Equal(t,
		`<img src="/logo.png" alt="" class="x" decoding="async" height="5" loading="eager" width="10">`,
		out)
}

func TestImage_InvalidAttributeName(t *testing.T) {
	for _, name := range []string{"", "on click", `x"y`, "a>b", "a/b", "a=b", "a\x00b", "'"} {
		t.Run(name, func(t *testing.T) {
			out, err := render(t, context.Background(), templates.Image(templates.ImageProps{
				Src:   "/logo.png",
				Attrs: templ.Attributes{name: "v"},
			}))

			require.ErrorIs(t, err, templates.ErrInvalidAttributeName)
			assert.Empty(t, out)
		})
	}
}

func TestImage_EscapesAlt(t *testing.T) {
	out, err := render(t, context.Background(), templates.Image(templates.ImageProps{
		Src: "/logo.png",
		Alt: `<script>`,
	}))

	require.NoError(t, err)
	assert.Contains(t, out, `alt="&lt;script&gt;"`)
}

func TestImage_InvalidReference(t *testing.T) {
	out, err := render(t, production(t), templates.Image(templates.ImageProps{Src: "logo.png"}))

	require.ErrorIs(t, err, assetpath.ErrInvalidReference)
	assert.Empty(t, out)
}

func TestHome_Development(t *testing.T) {
	out, err := render(t, context.Background(), templates.Home(templates.SiteData{
		Title:       "bigfanoftim",
		Description: "notes",
	}))

	require.NoError(t, err)
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, `<link rel="stylesheet" href="`+assets.StylesheetRef+`">`)
	assert.Contains(t, out, `<img src="`+assets.LogoRef+`"`)
	assert.Contains(t, out, `loading="eager"`)
	assert.Contains(t, out, "<h1>bigfanoftim</h1>")
}

func TestHome_Production(t *testing.T) {
	out, err := render(t, production(t), templates.Home(templates.SiteData{Title: "bigfanoftim"}))

	require.NoError(t, err)
	assert.Contains(t, out, `href="https://bigfanoftim.github.io`+assets.StylesheetRef+`"`)
	assert.Contains(t, out, `href="https://bigfanoftim.github.io`+assets.FaviconRef+`"`)
	assert.Contains(t, out, `src="https://bigfanoftim.github.io`+assets.LogoRef+`"`)
}

func TestHome_EscapesTitle(t *testing.T) {
	out, err := render(t, context.Background(), templates.Home(templates.SiteData{Title: "a & b"}))

	require.NoError(t, err)
	assert.Contains(t, out, "<title>a &amp; b</title>")
}
