// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package union

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrNotAnObject reports a union payload that is valid JSON but not an
// object.
var ErrNotAnObject = errors.New("not a JSON object")

// MissingTagError reports a payload without a tag for a union that has
// no default variant.
type MissingTagError struct {
	Union    string
	TagField string
}

func (e *MissingTagError) Error() string {
	return fmt.Sprintf("cannot decode %s without a %q tag", e.Union, e.TagField)
}

// UnknownVariantError reports a tag value that names no known variant.
// This is the forward-compatibility signal: the payload may be
// well-formed for a variant added to the API after this code was
// written.
type UnknownVariantError struct {
	Union    string
	TagField string
	// Tag is the tag value. Non-string tags hold their raw JSON text.
	Tag   string
	Known []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %s=%q (known: %s)",
		e.Union, e.TagField, e.Tag, strings.Join(e.Known, ", "))
}

// VariantError reports a recognized variant whose payload did not
// decode. Err is usually a *FieldError.
type VariantError struct {
	Union   string
	Variant string
	Err     error
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%s variant %q: %v", e.Union, e.Variant, e.Err)
}

func (e *VariantError) Unwrap() error { return e.Err }

// FieldErrorKind classifies a structural decode failure.
type FieldErrorKind string

const (
	// UnknownField: the object has a key the strict schema does not
	// declare.
	UnknownField FieldErrorKind = "unknown_field"
	// MissingField: a required key is absent or null.
	MissingField FieldErrorKind = "missing_field"
	// TypeMismatch: a value has the wrong JSON type for its field.
	TypeMismatch FieldErrorKind = "type_mismatch"
	// InvalidValue: a value has the right JSON type but failed
	// validation (identifier prefix, timestamp format, nested union).
	InvalidValue FieldErrorKind = "invalid_value"
	// Malformed: the input is not well-formed JSON.
	Malformed FieldErrorKind = "malformed"
)

// FieldError is a classified structural decode failure. Field is the
// dotted JSON path when the underlying decoder reports one.
type FieldError struct {
	Kind  FieldErrorKind
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field %q: %s: %v", e.Field, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// IsUnknownVariant reports whether err, at any depth, is an unknown
// tag rather than a malformed payload.
func IsUnknownVariant(err error) bool {
	var unknown *UnknownVariantError
	return errors.As(err, &unknown)
}

// IsVariantDecodeFailed reports whether err is a recognized variant
// whose payload failed to decode.
func IsVariantDecodeFailed(err error) bool {
	var variant *VariantError
	return errors.As(err, &variant)
}

const unknownFieldPrefix = "json: unknown field "

// classify turns an error from encoding/json or the validator into a
// *FieldError. Errors that are already classified, or that come from
// a nested union, pass through with their structure intact.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var fieldError *FieldError
	if errors.As(err, &fieldError) {
		return err
	}
	var (
		variantError *VariantError
		unknownError *UnknownVariantError
		missingError *MissingTagError
	)
	if errors.As(err, &variantError) || errors.As(err, &unknownError) || errors.As(err, &missingError) {
		return &FieldError{Kind: InvalidValue, Err: err}
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		return &FieldError{Kind: TypeMismatch, Field: typeError.Field, Err: err}
	}

	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return &FieldError{Kind: Malformed, Err: err}
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		kind := InvalidValue
		if first.Tag() == "required" {
			kind = MissingField
		}
		return &FieldError{Kind: kind, Field: fieldPath(first.Namespace()), Err: err}
	}

	if message := err.Error(); strings.HasPrefix(message, unknownFieldPrefix) {
		field := strings.TrimPrefix(message, unknownFieldPrefix)
		if unquoted, unquoteErr := strconv.Unquote(field); unquoteErr == nil {
			field = unquoted
		}
		return &FieldError{Kind: UnknownField, Field: field, Err: err}
	}

	return &FieldError{Kind: InvalidValue, Err: err}
}

// fieldPath drops the leading struct name from a validator namespace
// ("channelJoin.user" becomes "user").
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

// isNull reports whether a raw JSON value is the literal null.
func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
