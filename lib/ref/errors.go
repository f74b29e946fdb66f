// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength reports an identifier that is empty or longer
	// than MaxLength bytes.
	ErrInvalidLength = errors.New("invalid identifier length")

	// ErrInvalidPrefix reports an identifier whose first byte is not
	// the namespace's prefix.
	ErrInvalidPrefix = errors.New("invalid identifier prefix")

	// ErrUnrecognizedConversationPrefix reports a conversation
	// identifier whose first byte matches none of the channel, group,
	// or direct message prefixes.
	ErrUnrecognizedConversationPrefix = errors.New("unrecognized conversation prefix")
)

// IdentifierError describes a rejected identifier. Err is one of the
// package sentinels.
type IdentifierError struct {
	Err       error
	Namespace string
	Value     string

	// Expected and Found are set for ErrInvalidPrefix. For
	// conversation identifiers Expected holds every accepted prefix.
	Expected string
	Found    byte
}

func (e *IdentifierError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidLength):
		return fmt.Sprintf("%s ID must be 1 to %d bytes, got %d: %q",
			e.Namespace, MaxLength, len(e.Value), e.Value)
	case errors.Is(e.Err, ErrInvalidPrefix):
		return fmt.Sprintf("%s ID must start with %q, found %q: %q",
			e.Namespace, e.Expected, string(e.Found), e.Value)
	case errors.Is(e.Err, ErrUnrecognizedConversationPrefix):
		return fmt.Sprintf("conversation ID must start with one of %q: %q",
			e.Expected, e.Value)
	default:
		return fmt.Sprintf("%s ID %q: %v", e.Namespace, e.Value, e.Err)
	}
}

func (e *IdentifierError) Unwrap() error { return e.Err }
