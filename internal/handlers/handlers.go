// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"

	"github.com/bigfanoftim/blog/internal/appcontext"
	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/bigfanoftim/blog/internal/templates"
	"github.com/labstack/echo/v4"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	site templates.SiteData
}

// New creates a new Handlers instance.
func New(site templates.SiteData) *Handlers {
	return &Handlers{site: site}
}

// Health returns the health status and the deployment environment.
func (h *Handlers) Health(c echo.Context) error {
	env := assetpath.Development
	if cc, ok := appcontext.From(c); ok {
		env = cc.Environment()
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":      "ok",
		"environment": env.String(),
	})
}

// Home renders the home page.
func (h *Handlers) Home(c echo.Context) error {
	return Render(c, http.StatusOK, templates.Home(h.site))
}
