// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bigfanoftim/blog/internal/config"
	"github.com/bigfanoftim/blog/internal/export"
	"github.com/bigfanoftim/blog/internal/server"
	"github.com/bigfanoftim/blog/internal/templates"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the development server",
		Flags:  config.ServerFlags(),
		Action: server.Run,
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:   "export",
		Usage:  "Write the site as static files",
		Flags:  config.ExportFlags(),
		Action: runExport,
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print an example config.toml",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return config.WriteExample(cmd.Root().Writer, config.Example())
		},
	}
}

func runExport(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	server.SetupLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	dc, err := cfg.Deployment()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	res, err := export.Site(ctx, export.Options{
		OutputDir:  cfg.Export.OutputDir,
		Deployment: dc,
		Site: templates.SiteData{
			Title:       cfg.Site.Title,
			Description: "A personal blog.",
		},
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	for _, f := range res.Files {
		fmt.Fprintln(cmd.Root().Writer, f)
	}
	return nil
}
