// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/bigfanoftim/blog/internal/assets"
)

// SiteData is what the home page shows.
type SiteData struct {
	Title       string
	Description string
}

// Home renders the landing page. Every asset URL on it goes through AssetPath.
func Home(site SiteData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		css := mustAssetPath(ctx, assets.StylesheetRef)
		favicon := mustAssetPath(ctx, assets.FaviconRef)

		title := templ.EscapeString(site.Title)
		if _, err := fmt.Fprintf(w, `<!doctype html>
<html lang="ko">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="icon" href="%s" type="image/svg+xml">
<link rel="stylesheet" href="%s">
</head>
<body>
<header>
`, title, templ.EscapeString(favicon), templ.EscapeString(css)); err != nil {
			return err
		}

		logo := Image(ImageProps{
			Src:    assets.LogoRef,
			Alt:    site.Title,
			Width:  64,
			Height: 64,
			Attrs:  templ.Attributes{"loading": "eager"},
		})
		if err := logo.Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `
<h1>%s</h1>
</header>
<main>
<p>%s</p>
</main>
</body>
</html>
`, title, templ.EscapeString(site.Description))
		return err
	})
}
