// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

// CompactJSON strips insignificant whitespace from a JSON document.
func CompactJSON(t testing.TB, document string) []byte {
	t.Helper()
	var buffer bytes.Buffer
	if err := json.Compact(&buffer, []byte(document)); err != nil {
		t.Fatalf("compacting JSON: %v\n%s", err, document)
	}
	return buffer.Bytes()
}

// RequireJSONEqual fails the test unless got and want hold the same
// JSON value. Object key order and whitespace are ignored.
func RequireJSONEqual(t testing.TB, got, want []byte) {
	t.Helper()
	var gotValue, wantValue any
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Fatalf("got is not JSON: %v\n%s", err, got)
	}
	if err := json.Unmarshal(want, &wantValue); err != nil {
		t.Fatalf("want is not JSON: %v\n%s", err, want)
	}
	if !reflect.DeepEqual(gotValue, wantValue) {
		t.Fatalf("JSON mismatch:\n got: %s\nwant: %s", got, want)
	}
}
