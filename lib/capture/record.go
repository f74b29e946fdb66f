// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"encoding/json"
	"fmt"
)

// Kind says how a record's payload is decoded.
type Kind string

const (
	// KindEvent payloads decode as schema.Event.
	KindEvent Kind = "event"
	// KindMessage payloads decode as schema.Message.
	KindMessage Kind = "message"
	// KindMethod payloads decode as the response to Record.Method.
	KindMethod Kind = "method"
	// KindTimestamp payloads are a bare wire timestamp (string or
	// integer).
	KindTimestamp Kind = "timestamp"
)

// Record is one captured payload.
type Record struct {
	Kind Kind `json:"kind" validate:"required,oneof=event message method timestamp"`
	// Method names the web API method for KindMethod records.
	Method  string          `json:"method,omitempty"`
	Note    string          `json:"note,omitempty"`
	Payload json.RawMessage `json:"payload" validate:"required"`

	// Source locates the record for reports, as "file#index". Set by
	// Load; never serialized.
	Source string `json:"-"`
}

// validate checks what struct tags cannot express.
func (r Record) validate() error {
	switch r.Kind {
	case KindEvent, KindMessage, KindMethod, KindTimestamp:
	default:
		return fmt.Errorf("unknown record kind %q", r.Kind)
	}
	if r.Kind == KindMethod && r.Method == "" {
		return fmt.Errorf("record of kind %q has no method", r.Kind)
	}
	if r.Kind != KindMethod && r.Method != "" {
		return fmt.Errorf("record of kind %q names method %q", r.Kind, r.Method)
	}
	return nil
}

// document is the top level of a capture file.
type document struct {
	Description string   `json:"description,omitempty"`
	Records     []Record `json:"records" validate:"dive"`
}
