// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

//go:build dev

package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// staticDir is the on-disk static tree, located next to this source file
// so the dev build works from any working directory.
var staticDir = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("internal", "assets", "static")
	}
	return filepath.Join(filepath.Dir(file), "static")
}()

// FS returns the static files straight from disk so edits show up without a rebuild.
func FS() fs.FS {
	return os.DirFS(staticDir)
}
