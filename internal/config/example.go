// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/bigfanoftim/blog/internal/assetpath"
)

const exampleHeader = `# Blog configuration
# Copy this file to config.toml and adjust as needed.
# Every key can be overridden by its environment variable or command line flag.

`

type exampleFile struct {
	Server exampleServer `toml:"server"`
	Log    exampleLog    `toml:"log"`
	Site   exampleSite   `toml:"site"`
	Export exampleExport `toml:"export"`
}

type exampleServer struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type exampleLog struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type exampleSite struct {
	Title       string `toml:"title"`
	Environment string `toml:"environment"`
	AssetPrefix string `toml:"asset_prefix"`
}

type exampleExport struct {
	Out string `toml:"out"`
}

// Example returns a config populated with the flag defaults.
func Example() *Config {
	return &Config{
		Server: ServerConfig{Host: "localhost", Port: 8080},
		Log:    LogConfig{Level: "info", Format: "text"},
		Site: SiteConfig{
			Title:       "bigfanoftim",
			Environment: string(assetpath.Development),
			AssetPrefix: DefaultAssetPrefix,
		},
		Export: ExportConfig{OutputDir: "out"},
	}
}

// WriteExample writes cfg as a config.toml document.
func WriteExample(w io.Writer, cfg *Config) error {
	if _, err := io.WriteString(w, exampleHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	doc := exampleFile{
		Server: exampleServer{Host: cfg.Server.Host, Port: cfg.Server.Port},
		Log:    exampleLog{Level: cfg.Log.Level, Format: cfg.Log.Format},
		Site: exampleSite{
			Title:       cfg.Site.Title,
			Environment: cfg.Site.Environment,
			AssetPrefix: cfg.Site.AssetPrefix,
		},
		Export: exampleExport{Out: cfg.Export.OutputDir},
	}

	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
