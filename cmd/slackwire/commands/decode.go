// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/pflag"

	"github.com/slackwire/slackwire/cmd/slackwire/cli"
	"github.com/slackwire/slackwire/lib/schema"
	"github.com/slackwire/slackwire/lib/union"
	"github.com/slackwire/slackwire/lib/webapi"
)

type decodeParams struct {
	Kind   string `flag:"kind" desc:"payload kind: event, message, or method" default:"event"`
	Method string `flag:"method,m" desc:"web API method name (with --kind method)"`
	JSONC  bool   `flag:"jsonc" desc:"accept comments and trailing commas in the input"`
}

// decodeResult is printed for a payload that decoded.
type decodeResult struct {
	Kind    string `json:"kind"`
	Variant string `json:"variant"`
	Value   any    `json:"value"`
}

// decodeFailure is printed for a payload that did not.
type decodeFailure struct {
	Outcome string   `json:"outcome"`
	Message string   `json:"error"`
	Kind    string   `json:"error_kind,omitempty"`
	Field   string   `json:"field,omitempty"`
	Tag     string   `json:"tag,omitempty"`
	Known   []string `json:"known,omitempty"`
	Code    string   `json:"code,omitempty"`
}

func decodeCommand(streams Streams) *cli.Command {
	var params decodeParams
	return &cli.Command{
		Name:    "decode",
		Summary: "Decode one payload into its typed value",
		Description: `Decode a JSON payload from a file or stdin and print the typed value.

The payload is an RTM event (--kind event), a message (--kind message),
or a web API response (--kind method --method NAME). On failure the
structured error is printed instead and the exit code is 1.`,
		Usage: "slackwire decode [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Decode a users.info response",
				Command:     "slackwire decode --kind method --method users.info response.json",
			},
			{
				Description: "Decode a message from a JSONC fixture",
				Command:     "slackwire decode --kind message --jsonc message.jsonc",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &params)
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			data, remaining, err := readInput(args, streams.In, params.JSONC)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return fmt.Errorf("unexpected arguments: %v", remaining)
			}

			result, err := decodePayload(params.Kind, params.Method, data)
			if err != nil {
				var failure *decodeFailure
				if !errors.As(err, &failure) {
					return err
				}
				logger.Debug("payload did not decode", "outcome", failure.Outcome, "error", failure.Message)
				if err := writeJSON(streams.Out, failure); err != nil {
					return err
				}
				return &cli.ExitError{Code: 1}
			}
			return writeJSON(streams.Out, result)
		},
	}
}

func (f *decodeFailure) Error() string { return f.Message }

// decodePayload returns a *decodeFailure when the payload itself is at
// fault and a plain error for bad flags.
func decodePayload(kind, method string, data []byte) (*decodeResult, error) {
	var (
		variant string
		value   any
		err     error
	)
	switch kind {
	case "event":
		var event schema.Event
		event, err = schema.DecodeEvent(data)
		variant, value = event.Type(), event
	case "message":
		var message schema.Message
		message, err = schema.DecodeMessage(data)
		variant, value = message.Subtype(), message
	case "method":
		if method == "" {
			return nil, fmt.Errorf("--kind method requires --method")
		}
		if _, ok := webapi.Lookup(method); !ok {
			return nil, fmt.Errorf("unknown web API method %q (run 'slackwire methods' for the list)", method)
		}
		variant = method
		value, err = webapi.DecodeMethod(method, data)
	default:
		return nil, fmt.Errorf("unknown kind %q (want event, message, or method)", kind)
	}
	if err != nil {
		return nil, describeFailure(err)
	}
	return &decodeResult{Kind: kind, Variant: variant, Value: value}, nil
}

// describeFailure flattens a decode error into its printable parts.
func describeFailure(err error) *decodeFailure {
	failure := &decodeFailure{Outcome: "malformed", Message: err.Error()}

	var apiErr *webapi.APIError
	var unknown *union.UnknownVariantError
	var missing *union.MissingTagError
	switch {
	case errors.As(err, &apiErr):
		failure.Outcome = "api_error"
		failure.Code = apiErr.Code
		return failure
	case errors.As(err, &unknown):
		failure.Outcome = "unknown_variant"
		failure.Tag = unknown.Tag
		failure.Known = unknown.Known
	case errors.As(err, &missing):
		failure.Outcome = "missing_tag"
	}

	var fieldErr *union.FieldError
	if errors.As(err, &fieldErr) {
		failure.Kind = string(fieldErr.Kind)
		failure.Field = fieldErr.Field
	}
	return failure
}

// writeJSON prints value as indented JSON, highlighted when w is a
// terminal.
func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	data = append(data, '\n')
	if cli.IsTerminal(w) {
		return quick.Highlight(w, string(data), "json", "terminal256", "monokai")
	}
	_, err = w.Write(data)
	return err
}
