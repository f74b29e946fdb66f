// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package union decodes JSON objects whose shape is chosen by a tag
// field ("type", "subtype") into a closed Go sum type.
//
// A sum type is an interface with one struct per case. A [Decoder] is
// a table from tag value to decode function, built once with [New]
// from [Strict], [Lenient], and [Func] variants. Decoding is
// dispatch-then-validate: the tag is read from the generic object
// first, and only then is the rest of the payload checked against
// the selected variant's schema. That ordering is what lets callers
// tell an unknown tag ([*UnknownVariantError], usually a new API
// feature) apart from a malformed payload for a known tag
// ([*VariantError], a contract break).
//
// Two policies exist. [RequiredTag] strips the tag before strict
// decoding and fails with [*MissingTagError] when it is absent.
// [DefaultVariant] leaves the tag in place and routes untagged
// payloads to the variant marked [Variant.AsDefault].
//
// [DecodeStrict] and [DecodeLenient] apply the same decode and
// required-field checks to plain records. Required fields carry a
// validate:"required" struct tag (go-playground/validator).
package union
