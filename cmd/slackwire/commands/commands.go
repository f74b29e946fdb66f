// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the slackwire command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/slackwire/slackwire/cmd/slackwire/cli"
	"github.com/slackwire/slackwire/lib/version"
)

// Streams are the standard streams a command reads and writes. Tests
// substitute buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StandardStreams returns the process's stdin, stdout, and stderr.
func StandardStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Root builds the complete slackwire command tree.
func Root(streams Streams) *cli.Command {
	return &cli.Command{
		Name: "slackwire",
		Description: `slackwire: strict decoding for Slack web API payloads.

Decode events, messages, and method responses into typed values,
inspect identifiers and timestamps, and check recorded captures for
schema drift.`,
		Stderr: streams.Err,
		Subcommands: []*cli.Command{
			decodeCommand(streams),
			idCommand(streams),
			tsCommand(streams),
			checkCommand(streams),
			methodsCommand(streams),
			versionCommand(streams),
		},
		Examples: []cli.Example{
			{
				Description: "Decode an event read from stdin",
				Command:     "slackwire decode --kind event < event.json",
			},
			{
				Description: "Check every capture in the configured directory",
				Command:     "slackwire check",
			},
		},
	}
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand(streams Streams) *cli.Command {
	var params versionParams
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
			if done, err := params.EmitJSON(streams.Out, version.Current()); done {
				return err
			}
			_, err := fmt.Fprintf(streams.Out, "slackwire %s\n", version.Full())
			return err
		},
	}
}
