// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package export writes the site as a set of static files.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/bigfanoftim/blog/internal/assets"
	"github.com/bigfanoftim/blog/internal/templates"
)

// ErrNoOutputDir is returned when no output directory is given.
var ErrNoOutputDir = errors.New("output directory is required")

// ErrForeignOutputDir is returned when the output directory holds files
// that an earlier export did not write. Such a directory is never replaced.
var ErrForeignOutputDir = errors.New("output directory is not an export")

// marker is written into every export and identifies a directory as one.
// GitHub Pages also skips Jekyll when it is present.
const marker = ".nojekyll"

// Options configures an export.
type Options struct {
	OutputDir  string
	Deployment assetpath.DeploymentContext
	Site       templates.SiteData
	// Static is the asset tree copied under /static. Defaults to assets.FS().
	Static fs.FS
}

// Result lists what an export wrote.
type Result struct {
	// Files are slash-separated paths relative to the output directory.
	Files []string
}

// Site renders the pages and copies the static assets into opts.OutputDir.
//
// The site is built in a sibling temporary directory and swapped in only
// when every file was written, so a failed export leaves the previous
// output untouched and a successful one leaves no stale files behind.
func Site(ctx context.Context, opts Options) (*Result, error) {
	if opts.OutputDir == "" {
		return nil, ErrNoOutputDir
	}
	if opts.Static == nil {
		opts.Static = assets.FS()
	}

	out := filepath.Clean(opts.OutputDir)
	if err := checkOutputDir(out); err != nil {
		return nil, err
	}

	parent := filepath.Dir(out)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.MkdirTemp(parent, "."+filepath.Base(out)+"-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmp) }()
	if err := os.Chmod(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}

	res, err := build(ctx, tmp, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.RemoveAll(out); err != nil {
		return nil, fmt.Errorf("failed to remove previous export: %w", err)
	}
	if err := os.Rename(tmp, out); err != nil {
		return nil, fmt.Errorf("failed to move export into place: %w", err)
	}

	slog.Info("site exported",
		"out", out,
		"files", len(res.Files),
		"environment", opts.Deployment.Environment(),
		"asset_prefix", opts.Deployment.BasePrefix(),
	)

	return res, nil
}

// build writes the whole site into dir.
func build(ctx context.Context, dir string, opts Options) (*Result, error) {
	res := &Result{}
	ctx = templates.WithDeployment(ctx, opts.Deployment)

	if err := writePage(ctx, dir, "index.html", templates.Home(opts.Site)); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, "index.html")

	staticDir := path.Clean(assets.URLPrefix)[1:]
	err := assets.Walk(opts.Static, func(p string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		rel := path.Join(staticDir, p)
		if err := copyFile(opts.Static, p, filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			return err
		}
		res.Files = append(res.Files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy static assets: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, marker), nil, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", marker, err)
	}
	res.Files = append(res.Files, marker)

	return res, nil
}

// checkOutputDir accepts a missing or empty directory, or one that an
// earlier export produced.
func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read output directory: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, marker)); err != nil {
		return fmt.Errorf("%w: %s has no %s", ErrForeignOutputDir, dir, marker)
	}
	return nil
}

// writePage renders component into dir/name. The file is only created
// when rendering succeeds.
func writePage(ctx context.Context, dir, name string, component templ.Component) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := component.Render(ctx, buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func copyFile(fsys fs.FS, src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
