// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/slackwire/slackwire/cmd/slackwire/cli"
	"github.com/slackwire/slackwire/lib/config"
	"github.com/slackwire/slackwire/lib/timestamp"
)

type tsParams struct {
	cli.JSONOutput
	Config    string `flag:"config" desc:"configuration file (default: $SLACKWIRE_CONFIG, then built-in defaults)"`
	MaxLength int    `flag:"max-length" desc:"longest accepted string timestamp (default: timestamp.max_length from config)"`
}

type tsResult struct {
	Input  string `json:"input"`
	TS     string `json:"ts,omitempty"`
	Micros uint64 `json:"micros,omitempty"`
	Time   string `json:"time,omitempty"`
	Error  string `json:"error,omitempty"`
}

func tsCommand(streams Streams) *cli.Command {
	var params tsParams
	return &cli.Command{
		Name:    "ts",
		Summary: "Parse wire timestamps",
		Description: `Parse wire timestamps and print the canonical form, the microsecond
count, and the UTC time.

Arguments in the "<seconds>.<fraction>" form are message timestamps;
bare integers are whole seconds, as Slack sends for "created" fields.`,
		Usage: "slackwire ts [flags] <ts>...",
		Examples: []cli.Example{
			{
				Description: "Show the time of a message timestamp",
				Command:     "slackwire ts 1355517523.000005",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("ts", &params)
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one timestamp is required")
			}

			cfg, err := config.Resolve(params.Config)
			if err != nil {
				return err
			}
			parser := timestamp.Parser{MaxLength: cfg.Timestamp.MaxLength}
			if params.MaxLength > 0 {
				parser.MaxLength = params.MaxLength
			}

			results := make([]tsResult, 0, len(args))
			failed := false
			for _, raw := range args {
				result := parseTimestamp(parser, raw)
				failed = failed || result.Error != ""
				results = append(results, result)
			}

			if done, err := params.EmitJSON(streams.Out, results); done {
				if err == nil && failed {
					err = &cli.ExitError{Code: 1}
				}
				return err
			}

			tw := tabwriter.NewWriter(streams.Out, 2, 0, 2, ' ', 0)
			for _, result := range results {
				if result.Error != "" {
					fmt.Fprintf(tw, "%s\tinvalid\t%s\n", result.Input, result.Error)
					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\n", result.TS, result.Micros, result.Time)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if failed {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// parseTimestamp treats raw as a JSON number when it starts like one
// and as a string timestamp otherwise.
func parseTimestamp(parser timestamp.Parser, raw string) tsResult {
	result := tsResult{Input: raw}

	var (
		ts  timestamp.Timestamp
		err error
	)
	if isWholeNumber(raw) {
		ts, err = parser.Decode([]byte(raw))
	} else {
		ts, err = parser.Parse(raw)
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.TS = ts.String()
	result.Micros = ts.Micros()
	when, err := ts.Time()
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Time = when.Format(time.RFC3339Nano)
	return result
}

func isWholeNumber(raw string) bool {
	if raw == "" {
		return false
	}
	for i := range len(raw) {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}
