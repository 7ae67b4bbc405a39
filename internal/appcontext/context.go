// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package appcontext provides the custom Echo context.
package appcontext

import (
	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/labstack/echo/v4"
)

// Context is a custom Echo context carrying the deployment context.
type Context struct {
	echo.Context
	Deployment assetpath.DeploymentContext
}

// Environment returns the deployment environment.
func (c *Context) Environment() assetpath.Environment {
	return c.Deployment.Environment()
}

// From returns the custom context if c is one.
func From(c echo.Context) (*Context, bool) {
	cc, ok := c.(*Context)
	return cc, ok
}
