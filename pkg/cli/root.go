/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-bypass/pkg/bypass"
	"github.com/NVIDIA/version-bypass/pkg/defaults"
	"github.com/NVIDIA/version-bypass/pkg/logging"
	"github.com/NVIDIA/version-bypass/pkg/manifest"
	"github.com/NVIDIA/version-bypass/pkg/product"
	"github.com/NVIDIA/version-bypass/pkg/report"
	"github.com/NVIDIA/version-bypass/pkg/settings"
)

const (
	name           = "bypass"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// ErrBypassFailed is returned when a run ended without updating or
// confirming product.json. The failure has already been reported.
var ErrBypassFailed = errors.New("version bypass failed")

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Usage:   "Path to config.ini with path overrides (default: <Documents>/.cursor-free-vip/config.ini)",
		Sources: cli.EnvVars("BYPASS_CONFIG"),
	}
}

func manifestURLFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "manifest-url",
		Usage:   "Version history used to find the latest Cursor version",
		Sources: cli.EnvVars("BYPASS_MANIFEST_URL"),
		Value:   defaults.ManifestURL,
	}
}

func noFetchFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "no-fetch",
		Usage: "Do not fetch the version history; only enforce the minimum version",
	}
}

func hintFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "hint",
		Usage: "Use this version as the latest instead of fetching the version history",
	}
}

func timeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Total timeout for the version history request",
		Value: defaults.ManifestFetchTimeout,
	}
}

func langFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "lang",
		Usage:   "Message language (en, zh_cn, zh_tw; default from LANG)",
		Sources: cli.EnvVars("BYPASS_LANG"),
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Structured log level on stderr (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvLogLevel),
		Value:   "warn",
	}
}

func noColorFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "no-color",
		Usage:   "Disable coloured console output",
		Sources: cli.EnvVars(report.EnvNoColor),
	}
}

func metricsFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "metrics-file",
		Usage: "Write run metrics in Prometheus text format to this file",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Output format (json, yaml, table)",
		Value:   "yaml",
	}
}

// Execute runs the bypass CLI with os.Args and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		if !errors.Is(err, ErrBypassFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Cursor version bypass",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Locates Cursor's product.json and raises the recorded version to the
latest published release, or to 1.5.4 when no release information is available.
A timestamped backup is written next to product.json before it is changed.`,
		Flags: []cli.Flag{
			configFlag(),
			manifestURLFlag(),
			noFetchFlag(),
			hintFlag(),
			timeoutFlag(),
			langFlag(),
			logLevelFlag(),
			noColorFlag(),
			metricsFileFlag(),
		},
		Before:   initLogger,
		Action:   runAction,
		Commands: []*cli.Command{runCmd(), checkCmd(), pathsCmd(), compareCmd()},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String("log-level")
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
	return ctx, nil
}

// loadSettings reads --config, or the default config.ini location.
func loadSettings(cmd *cli.Command) (settings.Settings, error) {
	path := cmd.String("config")
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			slog.Debug("no default settings location", "error", err)
			return settings.Empty(), nil
		}
		path = p
	}
	return settings.Load(path)
}

func newResolver(cmd *cli.Command) (*product.Resolver, error) {
	st, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	return product.NewResolver(product.WithSettings(st)), nil
}

// hintSource picks where the latest version comes from. Nil disables the lookup.
func hintSource(cmd *cli.Command) manifest.Source {
	if hint := cmd.String("hint"); hint != "" {
		return manifest.Static(hint)
	}
	if cmd.Bool("no-fetch") {
		return nil
	}
	reader := manifest.NewHTTPReader(
		manifest.WithTotalTimeout(cmd.Duration("timeout")),
		manifest.WithUserAgent(name+"/"+version),
	)
	return manifest.NewClient(
		manifest.WithURL(cmd.String("manifest-url")),
		manifest.WithReader(reader),
	)
}

func newFormatter(cmd *cli.Command) *report.Formatter {
	cat, err := report.LoadCatalog(cmd.String("lang"))
	if err != nil {
		slog.Warn("failed to load messages, using English", "error", err)
		return report.NewFormatter(nil)
	}
	return report.NewFormatter(cat)
}

func newConsole(cmd *cli.Command) *report.Console {
	opts := []report.ConsoleOption{report.WithFormatter(newFormatter(cmd))}
	if cmd.Bool("no-color") {
		opts = append(opts, report.WithColor(false))
	}
	return report.NewConsole(cmd.Root().Writer, opts...)
}

func newOperation(cmd *cli.Command, rep report.Reporter) (*bypass.Operation, error) {
	resolver, err := newResolver(cmd)
	if err != nil {
		return nil, err
	}
	return bypass.New(
		bypass.WithResolver(resolver),
		bypass.WithHintSource(hintSource(cmd)),
		bypass.WithReporter(rep),
	), nil
}

func writeMetrics(cmd *cli.Command) {
	path := cmd.String("metrics-file")
	if path == "" {
		return
	}
	start := time.Now()
	if err := bypass.WriteMetricsFile(path); err != nil {
		slog.Warn("failed to write metrics file", "path", path, "error", err)
		return
	}
	slog.Debug("metrics written", "path", path, "took", time.Since(start))
}
