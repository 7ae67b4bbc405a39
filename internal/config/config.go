// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package config

import (
	"fmt"

	"github.com/bigfanoftim/blog/internal/assetpath"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

// FileName is the TOML config file read by every flag's value source chain.
const FileName = "config.toml"

// DefaultAssetPrefix is where the exported site is hosted.
const DefaultAssetPrefix = "https://bigfanoftim.github.io"

var configFile = altsrc.StringSourcer(FileName)

type Config struct { //nolint:govet // fieldalignment not critical for config structs
	Server ServerConfig
	Log    LogConfig
	Site   SiteConfig
	Export ExportConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

type SiteConfig struct {
	Title       string
	Environment string // development, production
	AssetPrefix string // absolute base URL used in production
}

type ExportConfig struct {
	OutputDir string
}

func NewFromCLI(cmd *cli.Command) *Config {
	return &Config{
		Server: ServerConfig{
			Host: cmd.String("host"),
			Port: int(cmd.Int("port")),
		},
		Log: LogConfig{
			Level:  cmd.String("log-level"),
			Format: cmd.String("log-format"),
		},
		Site: SiteConfig{
			Title:       cmd.String("site-title"),
			Environment: cmd.String("env"),
			AssetPrefix: cmd.String("asset-prefix"),
		},
		Export: ExportConfig{
			OutputDir: cmd.String("out"),
		},
	}
}

// Deployment builds the deployment context asset paths are resolved against.
// Call it once at startup and pass the result around.
func (c *Config) Deployment() (assetpath.DeploymentContext, error) {
	env, err := assetpath.ParseEnvironment(c.Site.Environment)
	if err != nil {
		return assetpath.DeploymentContext{}, fmt.Errorf("site.environment: %w", err)
	}
	dc, err := assetpath.New(env, c.Site.AssetPrefix)
	if err != nil {
		return assetpath.DeploymentContext{}, fmt.Errorf("site.asset_prefix: %w", err)
	}
	return dc, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// BaseURL returns the URL the development server is reachable at.
func (c *Config) BaseURL() string {
	host := c.Server.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	if c.Server.Port == 80 {
		return fmt.Sprintf("http://%s", host)
	}
	return fmt.Sprintf("http://%s:%d", host, c.Server.Port)
}

// ServerFlags returns the flags used by the serve command.
func ServerFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "Host to bind to",
			Sources: cli.NewValueSourceChain(cli.EnvVar("HOST"), toml.TOML("server.host", configFile)),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   8080,
			Usage:   "Port to listen on",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PORT"), toml.TOML("server.port", configFile)),
		},
	)
}

// ExportFlags returns the flags used by the export command.
func ExportFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   "out",
			Usage:   "Directory the static site is written to",
			Sources: cli.NewValueSourceChain(cli.EnvVar("EXPORT_OUT"), toml.TOML("export.out", configFile)),
		},
	)
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Value: string(assetpath.Development),
			Usage: "Deployment environment (development, production)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("BLOG_ENV"),
				cli.EnvVar("NODE_ENV"),
				toml.TOML("site.environment", configFile),
			),
		},
		&cli.StringFlag{
			Name:    "asset-prefix",
			Value:   DefaultAssetPrefix,
			Usage:   "Absolute base URL prepended to asset paths in production",
			Sources: cli.NewValueSourceChain(cli.EnvVar("ASSET_PREFIX"), toml.TOML("site.asset_prefix", configFile)),
		},
		&cli.StringFlag{
			Name:    "site-title",
			Value:   "bigfanoftim",
			Usage:   "Site title",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SITE_TITLE"), toml.TOML("site.title", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_LEVEL"), toml.TOML("log.level", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "Log format (text, json)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_FORMAT"), toml.TOML("log.format", configFile)),
		},
	}
}
