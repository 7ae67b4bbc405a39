// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/bigfanoftim/blog/internal/ctxkeys"
	"github.com/labstack/echo/v4"
)

const errorPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>%d %s</title></head>
<body><h1>%d</h1><p>%s</p></body>
</html>
`

// ErrorHandler is the echo HTTPErrorHandler.
// Errors that are not *echo.HTTPError become 500s and are logged.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		attrs := []any{"error", err, "path", c.Request().URL.Path}
		if id, ok := c.Request().Context().Value(ctxkeys.RequestID{}).(string); ok {
			attrs = append(attrs, "request_id", id)
		}
		if errors.Is(err, assetpath.ErrInvalidReference) {
			attrs = append(attrs, "kind", "invalid_asset_reference")
		}
		slog.Error("request failed", attrs...)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	title := http.StatusText(code)
	if title == "" {
		title = "Error"
	}

	body := fmt.Sprintf(errorPage, code, html.EscapeString(title), code, html.EscapeString(message))
	if writeErr := c.HTML(code, body); writeErr != nil {
		slog.Error("failed to write error page", "error", writeErr)
	}
}
