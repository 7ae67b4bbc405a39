// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package assets provides the site's static assets and their references.
//
// References are rooted at the site root ("/static/..."); pass them through
// assetpath before emitting them into a page.
package assets

import (
	"io/fs"
	"net/http"
)

// URLPrefix is the path static assets are served under.
const URLPrefix = "/static/"

// Asset references used by the templates.
const (
	StylesheetRef = URLPrefix + "css/styles.css"
	LogoRef       = URLPrefix + "images/logo.svg"
	FaviconRef    = URLPrefix + "favicon.svg"
)

// FileServer returns an http.Handler that serves the static files.
// Mount it behind http.StripPrefix(URLPrefix, ...).
func FileServer() http.Handler {
	return http.FileServer(http.FS(FS()))
}

// Walk calls fn for every regular file in fsys, usually FS().
// Paths are slash-separated and relative to the root of fsys.
func Walk(fsys fs.FS, fn func(path string) error) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		return fn(path)
	})
}
