// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides compact, validated identifier types for Slack
// entities.
//
// Slack identifiers are short ASCII strings whose first character names
// the kind of entity: "U024BE7LH" is a user, "C024BE91L" a channel,
// "T024BE7LD" a team. Every identifier observed on the wire fits in nine
// bytes, so [ID] stores the text inline in a fixed array rather than
// behind a string header. An ID is a plain value: copying it copies the
// bytes, comparing two IDs with == compares their text, and an ID can
// be used directly as a map key.
//
// The namespace is part of the type. A [UserID] and a [ChannelID] are
// distinct Go types even though they share a representation, so passing
// a channel where a user is expected is a compile error rather than a
// runtime surprise. Namespaces form a closed set declared in this
// package; the unexported method on [Namespace] prevents other packages
// from adding their own.
//
// Construction always goes through validation:
//
//   - [Parse] (and the per-namespace ParseUserID, ParseChannelID, ...)
//     checks that the input is 1 to [MaxLength] bytes and starts with
//     the namespace's prefix character.
//   - UnmarshalText performs the same check, so a JSON, YAML, or CBOR
//     decode of a struct containing an ID field rejects malformed input
//     at decode time.
//   - [MustParse] panics on invalid input and exists for tests and
//     static initialization.
//
// [ConversationID] covers the fields where Slack sends "some kind of
// conversation" without saying which: channels, private groups, and
// direct messages. It keeps the same inline representation and
// remembers which namespace matched.
//
// Validation failures are [*IdentifierError] values wrapping one of the
// sentinels [ErrInvalidLength], [ErrInvalidPrefix], or
// [ErrUnrecognizedConversationPrefix]. Use errors.Is to branch on the
// kind and errors.As to get the namespace and offending value.
package ref
