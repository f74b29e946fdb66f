// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package union

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// validate checks `validate:"..."` struct tags after JSON decoding.
// Field names in errors are the JSON names. The validator's required
// rule tests for a zero value, so its failures are dropped: presence
// is decided from the raw object keys by checkPresence instead.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})
	return v
}

// DecodeStrict decodes a single JSON object into V, rejecting keys V
// does not declare, then checks required fields. Errors are
// *FieldError values.
func DecodeStrict[V any](data []byte) (V, error) {
	var value V
	err := decodeInto(data, &value, true)
	return value, err
}

// DecodeLenient is DecodeStrict without the unknown-key check.
func DecodeLenient[V any](data []byte) (V, error) {
	var value V
	err := decodeInto(data, &value, false)
	return value, err
}

// decodeInto decodes data into target (a pointer) and runs field
// validation on struct targets. Strictness applies to every nested
// struct that does not carry its own UnmarshalJSON.
func decodeInto(data []byte, target any, strict bool) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(target); err != nil {
		return classify(err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return &FieldError{Kind: Malformed, Err: fmt.Errorf("trailing data after JSON value")}
	}

	if reflect.Indirect(reflect.ValueOf(target)).Kind() != reflect.Struct {
		return nil
	}
	if err := checkPresence(reflect.TypeOf(target), data, ""); err != nil {
		return err
	}
	if err := validate.Struct(target); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return classify(err)
		}
		remaining := lo.Reject(validationErrors, func(fieldError validator.FieldError, _ int) bool {
			return fieldError.Tag() == "required"
		})
		if len(remaining) > 0 {
			return classify(validator.ValidationErrors(remaining))
		}
	}
	return nil
}

var (
	jsonUnmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// checkPresence reports the first field tagged validate:"required"
// whose key is absent from raw or holds null. A present zero value
// ("0.000000", 0, false, {}) satisfies it. The walk descends into
// nested structs decoded in the same pass and into the elements of
// slices and maps tagged dive; types with their own UnmarshalJSON
// check their own fields when they decode.
func checkPresence(t reflect.Type, raw json.RawMessage, prefix string) error {
	t = indirectType(t)
	if t.Kind() != reflect.Struct || isNull(raw) {
		return nil
	}
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		// Not an object; the decoder has already reported that.
		return nil
	}
	return checkFields(t, object, prefix)
}

func checkFields(t reflect.Type, object map[string]json.RawMessage, prefix string) error {
	for i := range t.NumField() {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if field.Anonymous && name == "" {
			// Embedded struct fields are promoted into the outer object.
			if embedded := indirectType(field.Type); embedded.Kind() == reflect.Struct && !decodesItself(embedded) {
				if err := checkFields(embedded, object, prefix); err != nil {
					return err
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		if name == "" {
			name = field.Name
		}

		rules := strings.Split(field.Tag.Get("validate"), ",")
		path := prefix + name
		value, present := lookupKey(object, name)
		if !present || isNull(value) {
			if slices.Contains(rules, "required") {
				return &FieldError{Kind: MissingField, Field: path,
					Err: fmt.Errorf("required key %q is absent or null", name)}
			}
			continue
		}

		fieldType := indirectType(field.Type)
		if decodesItself(fieldType) {
			continue
		}
		switch fieldType.Kind() {
		case reflect.Struct:
			if err := checkPresence(fieldType, value, path+"."); err != nil {
				return err
			}
		case reflect.Slice, reflect.Array:
			element := indirectType(fieldType.Elem())
			if !slices.Contains(rules, "dive") || element.Kind() != reflect.Struct || decodesItself(element) {
				continue
			}
			var items []json.RawMessage
			if err := json.Unmarshal(value, &items); err != nil {
				continue
			}
			for index, item := range items {
				if err := checkPresence(element, item, fmt.Sprintf("%s[%d].", path, index)); err != nil {
					return err
				}
			}
		case reflect.Map:
			element := indirectType(fieldType.Elem())
			if !slices.Contains(rules, "dive") || element.Kind() != reflect.Struct || decodesItself(element) {
				continue
			}
			var entries map[string]json.RawMessage
			if err := json.Unmarshal(value, &entries); err != nil {
				continue
			}
			for _, key := range slices.Sorted(maps.Keys(entries)) {
				if err := checkPresence(element, entries[key], fmt.Sprintf("%s[%s].", path, key)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// lookupKey finds name in object the way encoding/json matches keys:
// an exact match first, then a case-insensitive one.
func lookupKey(object map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if value, ok := object[name]; ok {
		return value, true
	}
	for key, value := range object {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}
	return nil, false
}

// decodesItself reports whether t carries its own JSON or text
// decoding, which runs its own checks.
func decodesItself(t reflect.Type) bool {
	pointer := reflect.PointerTo(t)
	return t.Implements(jsonUnmarshalerType) || pointer.Implements(jsonUnmarshalerType) ||
		t.Implements(textUnmarshalerType) || pointer.Implements(textUnmarshalerType)
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
