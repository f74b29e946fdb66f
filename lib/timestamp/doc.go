// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package timestamp decodes Slack's dual-representation timestamps.
//
// The web API sends message and event timestamps as decimal strings
// ("1525306421.000207") and creation times as integer seconds
// (1525306421). Both decode to [Timestamp], a microsecond count since
// the Unix epoch, and a Timestamp always renders back to the
// six-digit string form, so a value read from the wire re-encodes to
// the same bytes.
//
// The 17-byte bound on string timestamps comes from observed payloads
// rather than any published contract. [Parser] makes it adjustable.
package timestamp
