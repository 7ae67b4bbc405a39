// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"github.com/bigfanoftim/blog/internal/appcontext"
	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/bigfanoftim/blog/internal/templates"
	"github.com/labstack/echo/v4"
)

// customContext wraps the Echo context with appcontext.Context.
// It also puts the deployment on request.Context for template access.
func customContext(dc assetpath.DeploymentContext) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := templates.WithDeployment(c.Request().Context(), dc)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(&appcontext.Context{
				Context:    c,
				Deployment: dc,
			})
		}
	}
}
