// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package timestamp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultMaxLength is the longest string timestamp the default
	// parser accepts: ten digits of seconds, the separator, and six
	// digits of microseconds.
	DefaultMaxLength = 17

	// FractionDigits is the fixed precision of the wire form.
	FractionDigits = 6

	microsPerSecond = 1_000_000

	// maxCalendarSeconds is 9999-12-31T23:59:59Z, the last second
	// RFC 3339 can express.
	maxCalendarSeconds = 253402300799
)

// Timestamp is a point in time as microseconds since the Unix epoch.
// It is a value type; the zero value is the epoch itself.
type Timestamp struct {
	micros uint64
}

// FromMicros returns the timestamp micros microseconds after the
// epoch.
func FromMicros(micros uint64) Timestamp { return Timestamp{micros: micros} }

// FromSeconds returns the timestamp for whole seconds since the epoch.
func FromSeconds(seconds uint64) (Timestamp, error) {
	if seconds > math.MaxUint64/microsPerSecond {
		return Timestamp{}, &Error{
			Err:   ErrOutOfRange,
			Input: strconv.FormatUint(seconds, 10),
			Part:  PartSeconds,
		}
	}
	return Timestamp{micros: seconds * microsPerSecond}, nil
}

// FromTime converts t, truncated to microseconds. Times before the
// epoch are out of range.
func FromTime(t time.Time) (Timestamp, error) {
	micros := t.UnixMicro()
	if micros < 0 {
		return Timestamp{}, &Error{Err: ErrOutOfRange, Input: t.Format(time.RFC3339Nano)}
	}
	return Timestamp{micros: uint64(micros)}, nil
}

// Micros returns microseconds since the epoch.
func (t Timestamp) Micros() uint64 { return t.micros }

// Seconds returns whole seconds since the epoch.
func (t Timestamp) Seconds() uint64 { return t.micros / microsPerSecond }

// Fraction returns the microseconds past Seconds.
func (t Timestamp) Fraction() uint32 { return uint32(t.micros % microsPerSecond) }

// IsZero reports whether t is the epoch.
func (t Timestamp) IsZero() bool { return t.micros == 0 }

// Compare returns -1, 0, or +1 as t is before, equal to, or after u.
func (t Timestamp) Compare(u Timestamp) int {
	switch {
	case t.micros < u.micros:
		return -1
	case t.micros > u.micros:
		return 1
	default:
		return 0
	}
}

// String returns the canonical wire form "<seconds>.<6 digits>".
func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%06d", t.Seconds(), t.Fraction())
}

// Time converts t to a UTC time.Time. Timestamps past the year 9999
// fail with ErrOutOfRange.
func (t Timestamp) Time() (time.Time, error) {
	seconds := t.Seconds()
	if seconds > maxCalendarSeconds {
		return time.Time{}, &Error{Err: ErrOutOfRange, Input: t.String()}
	}
	return time.Unix(int64(seconds), int64(t.Fraction())*1000).UTC(), nil
}

// Parser decodes wire timestamps. The zero Parser uses
// DefaultMaxLength.
type Parser struct {
	// MaxLength bounds the byte length of string timestamps. Zero
	// means DefaultMaxLength.
	MaxLength int
}

func (p Parser) maxLength() int {
	if p.MaxLength <= 0 {
		return DefaultMaxLength
	}
	return p.MaxLength
}

// Parse decodes the string form "<seconds>.<fraction>". The fraction
// is fixed-point: "5" means 500000 microseconds, and digits past the
// sixth are truncated.
func (p Parser) Parse(s string) (Timestamp, error) {
	if len(s) > p.maxLength() {
		return Timestamp{}, &Error{Err: ErrTimestampTooLong, Input: s}
	}
	secondsText, fractionText, found := strings.Cut(s, ".")
	if !found {
		return Timestamp{}, &Error{Err: ErrMissingFractionalSeparator, Input: s}
	}

	seconds, err := strconv.ParseUint(secondsText, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Timestamp{}, &Error{Err: ErrOutOfRange, Input: s, Part: PartSeconds}
		}
		return Timestamp{}, &Error{Err: ErrNotANumber, Input: s, Part: PartSeconds}
	}

	fraction, ok := parseFraction(fractionText)
	if !ok {
		return Timestamp{}, &Error{Err: ErrNotANumber, Input: s, Part: PartFraction}
	}

	if seconds > (math.MaxUint64-fraction)/microsPerSecond {
		return Timestamp{}, &Error{Err: ErrOutOfRange, Input: s, Part: PartSeconds}
	}
	return Timestamp{micros: seconds*microsPerSecond + fraction}, nil
}

// parseFraction reads a non-empty run of decimal digits as a
// six-digit fixed-point fraction.
func parseFraction(text string) (uint64, bool) {
	if text == "" {
		return 0, false
	}
	var value uint64
	for index := range len(text) {
		digit := text[index]
		if digit < '0' || digit > '9' {
			return 0, false
		}
		if index < FractionDigits {
			value = value*10 + uint64(digit-'0')
		}
	}
	for range FractionDigits - min(len(text), FractionDigits) {
		value *= 10
	}
	return value, true
}

// Decode decodes a raw JSON value: a non-negative integer count of
// seconds or a string in the "<seconds>.<fraction>" form.
func (p Parser) Decode(data []byte) (Timestamp, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Timestamp{}, &Error{Err: ErrUnsupportedShape}
	}

	switch first := data[0]; {
	case first == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Timestamp{}, &Error{Err: ErrUnsupportedShape, Input: string(data)}
		}
		return p.Parse(s)

	case first == '-' || (first >= '0' && first <= '9'):
		text := string(data)
		seconds, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Timestamp{}, &Error{Err: ErrOutOfRange, Input: text, Part: PartSeconds}
			}
			// Negative, fractional, and exponent forms are valid JSON
			// numbers but not whole seconds.
			return Timestamp{}, &Error{Err: ErrNotANumber, Input: text, Part: PartSeconds}
		}
		return FromSeconds(seconds)

	default:
		return Timestamp{}, &Error{Err: ErrUnsupportedShape, Input: string(data)}
	}
}

var defaultParser Parser

// Parse decodes a string timestamp with the default parser.
func Parse(s string) (Timestamp, error) { return defaultParser.Parse(s) }

// Decode decodes a raw JSON timestamp with the default parser.
func Decode(data []byte) (Timestamp, error) { return defaultParser.Decode(data) }

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(s string) Timestamp {
	t, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("timestamp.MustParse(%q): %v", s, err))
	}
	return t
}

// MarshalJSON emits the canonical string form, which is what the web
// API sends for message timestamps.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, t.String()), nil
}

// UnmarshalJSON accepts either wire shape. JSON null is rejected;
// optional timestamps are declared as pointers.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical
// string form.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the string
// form is accepted.
func (t *Timestamp) UnmarshalText(data []byte) error {
	decoded, err := Parse(string(data))
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}
