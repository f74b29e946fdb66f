// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/slackwire/slackwire/cmd/slackwire/cli"
	"github.com/slackwire/slackwire/lib/capture"
	"github.com/slackwire/slackwire/lib/config"
	"github.com/slackwire/slackwire/lib/timestamp"
)

type checkParams struct {
	cli.JSONOutput
	Config          string `flag:"config" desc:"configuration file (default: $SLACKWIRE_CONFIG, then built-in defaults)"`
	UnknownVariants string `flag:"unknown-variants" desc:"warn or fail on unknown variants (default: check.unknown_variants from config)"`
	NoDedupe        bool   `flag:"no-dedupe" desc:"check every record even when its payload was already seen"`
	Out             string `flag:"out,o" desc:"write the report as CBOR to this file (relative names resolve under paths.reports)"`
	All             bool   `flag:"all,a" desc:"list ok records too"`
	Width           int    `flag:"width" desc:"table width (default: terminal width, or 100)"`
}

func checkCommand(streams Streams) *cli.Command {
	var params checkParams
	return &cli.Command{
		Name:    "check",
		Summary: "Check capture files against the schema",
		Description: `Decode every record in one or more capture files and report which
records no longer match the schema.

With no arguments, every capture under paths.captures is checked.
Capture files are JSON or JSONC, optionally compressed (.zst, .lz4).
The exit code is 1 when any record is malformed, or when any record has
an unknown variant and the policy is "fail".`,
		Usage: "slackwire check [flags] [capture-file...]",
		Examples: []cli.Example{
			{
				Description: "Check recorded captures, failing on new variants",
				Command:     "slackwire check --unknown-variants fail captures/*.jsonc",
			},
			{
				Description: "Keep a CBOR copy of the report",
				Command:     "slackwire check --out nightly.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("check", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			cfg, err := config.Resolve(params.Config)
			if err != nil {
				return err
			}

			policyName := cfg.Check.UnknownVariants
			if params.UnknownVariants != "" {
				policyName = params.UnknownVariants
			}
			policy, err := capture.ParsePolicy(policyName)
			if err != nil {
				return err
			}

			paths := args
			if len(paths) == 0 {
				paths, err = capture.Find(cfg.Paths.Captures)
				if err != nil {
					return err
				}
				if len(paths) == 0 {
					return fmt.Errorf("no capture files in %s", cfg.Paths.Captures)
				}
			}
			logger.Debug("loading captures", "files", len(paths))

			records, err := capture.LoadAll(paths)
			if err != nil {
				return err
			}

			report, err := capture.Check(ctx, records, capture.Options{
				UnknownVariants: policy,
				Dedupe:          cfg.Check.Dedupe && !params.NoDedupe,
				Timestamps:      timestamp.Parser{MaxLength: cfg.Timestamp.MaxLength},
				Logger:          logger,
			})
			if err != nil {
				return err
			}

			if params.Out != "" {
				if err := writeReport(cfg.ReportPath(params.Out), report); err != nil {
					return err
				}
			}

			if done, err := params.EmitJSON(streams.Out, report); done {
				if err != nil {
					return err
				}
			} else {
				err := capture.Render(streams.Out, report, capture.RenderOptions{
					Width:   outputWidth(streams, params.Width),
					Profile: termenv.NewOutput(streams.Out).EnvColorProfile(),
					All:     params.All,
				})
				if err != nil {
					return err
				}
			}

			if report.Failed() {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

func writeReport(path string, report *capture.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.WriteCBOR(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// outputWidth prefers an explicit width, then the terminal's.
func outputWidth(streams Streams, explicit int) int {
	if explicit > 0 {
		return explicit
	}
	if file, ok := streams.Out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil {
			return width
		}
	}
	return 0
}
