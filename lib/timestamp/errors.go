// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package timestamp

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFractionalSeparator reports a string timestamp with no
	// '.' between seconds and microseconds.
	ErrMissingFractionalSeparator = errors.New("missing fractional separator")

	// ErrNotANumber reports a half of the timestamp that is not an
	// unsigned decimal integer. Error.Part names the half.
	ErrNotANumber = errors.New("not a number")

	// ErrTimestampTooLong reports a string longer than the parser's
	// MaxLength.
	ErrTimestampTooLong = errors.New("timestamp too long")

	// ErrUnsupportedShape reports a JSON value that is neither a number
	// nor a string.
	ErrUnsupportedShape = errors.New("unsupported timestamp shape")

	// ErrOutOfRange reports a value that does not fit the microsecond
	// counter or the calendar.
	ErrOutOfRange = errors.New("timestamp out of range")
)

// Part names which half of a "seconds.fraction" string failed.
type Part string

const (
	PartSeconds  Part = "seconds"
	PartFraction Part = "fraction"
)

// Error describes a rejected timestamp. Err is one of the package
// sentinels.
type Error struct {
	Err   error
	Input string
	// Part is set for ErrNotANumber and for OutOfRange failures caused
	// by one half.
	Part Part
}

func (e *Error) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("timestamp %q: %s: %v", e.Input, e.Part, e.Err)
	}
	return fmt.Sprintf("timestamp %q: %v", e.Input, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
