// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/slackwire/slackwire/cmd/slackwire/cli"
	"github.com/slackwire/slackwire/lib/ref"
)

type idParams struct {
	cli.JSONOutput
	Namespace string `flag:"namespace,n" desc:"identifier namespace (user, channel, ..., or conversation); inferred from the prefix when empty"`
}

type idResult struct {
	Input     string `json:"input"`
	Namespace string `json:"namespace,omitempty"`
	ID        string `json:"id,omitempty"`
	Error     string `json:"error,omitempty"`
}

func idCommand(streams Streams) *cli.Command {
	var params idParams
	return &cli.Command{
		Name:    "id",
		Summary: "Parse identifiers and print their namespace",
		Usage:   "slackwire id [flags] <id>...",
		Examples: []cli.Example{
			{
				Description: "Check that an ID is a valid user ID",
				Command:     "slackwire id --namespace user U024BE7LH",
			},
			{
				Description: "Identify the namespace of several IDs",
				Command:     "slackwire id C024BE91L D024BE91L T024BE7LD",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("id", &params)
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one identifier is required")
			}

			results := make([]idResult, 0, len(args))
			failed := false
			for _, raw := range args {
				result := parseIdentifier(params.Namespace, raw)
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
				fmt.Fprintf(tw, "%s\t%s\n", result.ID, result.Namespace)
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

// parseIdentifier parses raw in namespace, or in the first namespace
// that accepts it when namespace is empty.
func parseIdentifier(namespace, raw string) idResult {
	result := idResult{Input: raw}
	if namespace != "" {
		id, err := ref.ParseNamed(namespace, raw)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		result.Namespace, result.ID = id.Namespace(), id.String()
		return result
	}

	for _, info := range ref.Namespaces() {
		id, err := ref.ParseNamed(info.Name, raw)
		if err == nil {
			result.Namespace, result.ID = id.Namespace(), id.String()
			return result
		}
		if errors.Is(err, ref.ErrInvalidLength) {
			result.Error = err.Error()
			return result
		}
	}
	result.Error = fmt.Sprintf("no namespace uses the prefix %q", raw[:1])
	return result
}
