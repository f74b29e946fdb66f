// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds slackwire's CBOR configuration.
//
// JSON is the wire format slackwire decodes. CBOR is the format it
// writes for machine consumers: check reports saved with
// "slackwire check --out" are deterministic CBOR, so two runs over the
// same captures with the same clock produce identical bytes.
//
// Types carry json struct tags only. fxamacker/cbor falls back to
// json tags when cbor tags are absent, so one tag controls field names
// and omitempty in both formats. Identifiers and timestamps encode as
// their canonical wire text.
//
//	data, err := codec.Marshal(report)
//	err = codec.Unmarshal(data, &report)
package codec
