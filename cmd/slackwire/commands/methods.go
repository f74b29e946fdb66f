// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/slackwire/slackwire/cmd/slackwire/cli"
	"github.com/slackwire/slackwire/lib/webapi"
)

type methodsParams struct {
	cli.JSONOutput
	Prefix string `flag:"prefix" desc:"only list methods whose name starts with this (e.g. users.)"`
}

type methodEntry struct {
	Name     string `json:"name"`
	Response string `json:"response"`
}

func methodsCommand(streams Streams) *cli.Command {
	var params methodsParams
	return &cli.Command{
		Name:    "methods",
		Summary: "List web API methods with a response schema",
		Usage:   "slackwire methods [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("methods", &params)
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %v", args)
			}

			methods := lo.Filter(webapi.Methods(), func(m webapi.Method, _ int) bool {
				return strings.HasPrefix(m.Name, params.Prefix)
			})
			entries := lo.Map(methods, func(m webapi.Method, _ int) methodEntry {
				return methodEntry{Name: m.Name, Response: m.Response.Name()}
			})

			if done, err := params.EmitJSON(streams.Out, entries); done {
				return err
			}

			tw := tabwriter.NewWriter(streams.Out, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "METHOD\tRESPONSE\n")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", entry.Name, entry.Response)
			}
			return tw.Flush()
		},
	}
}
