// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// Production returns a production deployment context for prefix.
func Production(t *testing.T, prefix string) assetpath.DeploymentContext {
	t.Helper()
	dc, err := assetpath.New(assetpath.Production, prefix)
	require.NoError(t, err)
	return dc
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// Serve runs a request through e and returns the recorder.
func Serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
