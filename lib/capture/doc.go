// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package capture checks recorded Slack payloads against the decoding
// layer.
//
// A capture file is a JSON (or JSONC) document holding a list of
// records, each a raw payload plus what it is: an RTM event, a
// message, a web API response for a named method, or a bare wire
// timestamp. Files ending in .zst or .lz4 are decompressed first.
//
//	{
//	  // recorded from the nightly workspace
//	  "records": [
//	    {"kind": "event", "payload": {"type": "hello"}},
//	    {"kind": "method", "method": "users.info", "payload": {"ok": true, ...}}
//	  ]
//	}
//
// [Check] decodes every record and sorts the outcomes into four
// buckets. An unknown event type or message subtype is reported as
// [OutcomeUnknownVariant]: Slack added something, which a deployment
// may treat as a warning or a failure. Anything else that fails to
// decode is [OutcomeMalformed] and always fails the report. Captured
// "ok": false responses are [OutcomeAPIError] and are not failures.
//
// Reports serialize to JSON, to deterministic CBOR via lib/codec, and
// render as a terminal table with [Render].
package capture
