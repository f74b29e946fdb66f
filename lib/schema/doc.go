// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the Slack records, messages, and events that
// the web API and RTM stream send.
//
// [Message] and [Event] are sum types: each wraps one variant struct
// selected by the payload's "subtype" or "type" key, decoded through
// a table in lib/union. Untagged messages are [MessageStandard].
// Events always carry their type.
//
// Strictness follows observed stability. Events, [MessageStandard],
// the join/leave message subtypes, [Channel], and [User] reject keys
// they do not declare, so a schema change surfaces as a decode error
// instead of silently dropped data. Everything else ignores unknown
// keys. Lenient records nested inside strict ones carry their own
// UnmarshalJSON so strictness stops at their boundary.
//
// Required keys are marked validate:"required". Optional identifiers
// and timestamps are pointers, because Slack sends null for them as
// often as it omits them.
package schema
