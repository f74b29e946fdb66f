// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Method   string   `flag:"method" desc:"web API method"`
		Verbose  bool     `flag:"verbose,v" desc:"enable verbose output"`
		Width    int      `flag:"width" desc:"table width"`
		Kinds    []string `flag:"kinds" desc:"record kinds"`
		Untagged string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--method", "users.info",
		"-v",
		"--width", "120",
		"--kinds", "event,message",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Method != "users.info" {
		t.Errorf("Method = %q, want %q", p.Method, "users.info")
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Width != 120 {
		t.Errorf("Width = %d, want 120", p.Width)
	}
	if len(p.Kinds) != 2 || p.Kinds[0] != "event" || p.Kinds[1] != "message" {
		t.Errorf("Kinds = %v, want [event message]", p.Kinds)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Kind   string   `flag:"kind" desc:"record kind" default:"event"`
		Width  int      `flag:"width" desc:"table width" default:"100"`
		Dedupe bool     `flag:"dedupe" desc:"dedupe" default:"true"`
		Kinds  []string `flag:"kinds" desc:"kinds" default:"event,message"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Kind != "event" || p.Width != 100 || !p.Dedupe {
		t.Errorf("defaults = %+v", p)
	}
	if len(p.Kinds) != 2 {
		t.Errorf("Kinds = %v, want 2 entries", p.Kinds)
	}
}

func TestBindFlags_EmbeddedJSONOutput(t *testing.T) {
	type params struct {
		JSONOutput
		Method string `flag:"method" desc:"method"`
	}

	var p params
	flagSet := FlagsFromParams("test", &p)
	if err := flagSet.Parse([]string{"--json", "--method", "auth.test"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.Method != "auth.test" {
		t.Errorf("Method = %q", p.Method)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	tests := []struct {
		name   string
		params any
		want   string
	}{
		{
			name:   "not a pointer",
			params: struct{}{},
			want:   "pointer to a struct",
		},
		{
			name: "bad bool default",
			params: &struct {
				Flag bool `flag:"flag" default:"maybe"`
			}{},
			want: "default for --flag",
		},
		{
			name: "bad int default",
			params: &struct {
				Width int `flag:"width" default:"wide"`
			}{},
			want: "default for --width",
		},
		{
			name: "unsupported type",
			params: &struct {
				Rate float32 `flag:"rate"`
			}{},
			want: "unsupported type",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := BindFlags(test.params, pflag.NewFlagSet("test", pflag.ContinueOnError))
			if err == nil {
				t.Fatal("BindFlags() = nil, want error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error = %q, want substring %q", err.Error(), test.want)
			}
		})
	}
}

func TestFlagsFromParams_PanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic")
		}
	}()
	FlagsFromParams("test", "not a struct")
}
