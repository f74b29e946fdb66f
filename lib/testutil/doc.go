// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for slackwire packages.
//
// [WriteFile] places a fixture in a test's temporary directory.
// [CompactJSON] and [RequireJSONEqual] compare JSON by value so tests
// can write payloads with readable indentation.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no slackwire-internal dependencies.
package testutil
