// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/bigfanoftim/blog/internal/appcontext"
	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/bigfanoftim/blog/internal/ctxkeys"
	"github.com/bigfanoftim/blog/internal/handlers"
	"github.com/bigfanoftim/blog/internal/templates"
	"github.com/bigfanoftim/blog/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var site = templates.SiteData{Title: "bigfanoftim", Description: "notes"}

func TestNew(t *testing.T) {
	h := handlers.New(site)

	assert.NotNil(t, h)
}

func TestHealth(t *testing.T) {
	h := handlers.New(site)

	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/health", nil)

	err := h.Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"development"}`, rec.Body.String())
}

func TestHealth_Production(t *testing.T) {
	h := handlers.New(site)
	dc := testutil.Production(t, "https://example.org")

	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/health", nil)

	err := h.Health(&appcontext.Context{Context: c, Deployment: dc})

	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","environment":"production"}`, rec.Body.String())
}

func TestHome(t *testing.T) {
	h := handlers.New(site)

	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/", nil)

	err := h.Home(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!doctype html>")
	assert.Contains(t, rec.Body.String(), `src="/static/images/logo.svg"`)
}

func TestHome_Production(t *testing.T) {
	h := handlers.New(site)
	dc := testutil.Production(t, "https://bigfanoftim.github.io/")

	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/", nil)
	c.SetRequest(c.Request().WithContext(templates.WithDeployment(c.Request().Context(), dc)))

	err := h.Home(c)

	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `src="https://bigfanoftim.github.io/static/images/logo.svg"`)
}

func TestRender_ErrorWritesNothing(t *testing.T) {
	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/broken", nil)

	err := handlers.Render(c, http.StatusOK, templates.Image(templates.ImageProps{Src: "logo.png"}))

	require.ErrorIs(t, err, assetpath.ErrInvalidReference)
	assert.Contains(t, err.Error(), "/broken")
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		method       string
		expectedCode int
		expectedBody string
	}{
		{"http error", echo.NewHTTPError(http.StatusNotFound, "no such page"), http.MethodGet, http.StatusNotFound, "no such page"},
		{"plain error", errors.New("boom"), http.MethodGet, http.StatusInternalServerError, "Internal Server Error"},
		{"invalid reference", fmt.Errorf("render: %w", assetpath.ErrInvalidReference), http.MethodGet, http.StatusInternalServerError, "Internal Server Error"},
		{"head request", echo.ErrNotFound, http.MethodHead, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			c, rec := testutil.NewEchoContext(e, tt.method, "/", nil)

			handlers.ErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody == "" {
				assert.Empty(t, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestErrorHandler_LogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	e := echo.New()
	c, _ := testutil.NewEchoContext(e, http.MethodGet, "/", nil)
	req := c.Request()
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), ctxkeys.RequestID{}, "req-123")))

	handlers.ErrorHandler(fmt.Errorf("render: %w", assetpath.ErrInvalidReference), c)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request failed", entry["msg"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "invalid_asset_reference", entry["kind"])
	assert.Equal(t, "/", entry["path"])
}

func TestErrorHandler_Committed(t *testing.T) {
	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/", nil)
	require.NoError(t, c.String(http.StatusOK, "done"))

	handlers.ErrorHandler(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestRender_Component(t *testing.T) {
	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/", nil)
	component := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hi</p>")
		return err
	})

	require.NoError(t, handlers.Render(c, http.StatusCreated, component))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "<p>hi</p>", rec.Body.String())
}
