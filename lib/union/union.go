// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package union

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
)

// Policy selects how a Decoder treats the tag field.
type Policy int

const (
	// RequiredTag: every payload carries the tag, the tag names the
	// variant, and the tag is removed before the variant's schema is
	// checked.
	RequiredTag Policy = iota

	// DefaultVariant: a payload without the tag (or with a null tag)
	// decodes as the default variant. The tag is left in place, so
	// strict variants must declare it.
	DefaultVariant
)

func (p Policy) String() string {
	switch p {
	case RequiredTag:
		return "required_tag"
	case DefaultVariant:
		return "default_variant"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Variant is one entry in a Decoder's table: a tag name and the
// function that decodes that variant's payload into T.
type Variant[T any] struct {
	name      string
	goType    reflect.Type
	decode    func(data []byte) (T, error)
	isDefault bool
}

// Name returns the tag value that selects this variant.
func (v Variant[T]) Name() string { return v.name }

// AsDefault marks v as the variant used when the tag is absent.
func (v Variant[T]) AsDefault() Variant[T] {
	v.isDefault = true
	return v
}

// Strict declares a variant decoded into V with unknown keys
// rejected. V or *V must implement T; the decoded value is stored as
// whichever does.
func Strict[T, V any](name string) Variant[T] {
	return structVariant[T, V](name, true)
}

// Lenient declares a variant decoded into V with unknown keys ignored.
func Lenient[T, V any](name string) Variant[T] {
	return structVariant[T, V](name, false)
}

func structVariant[T, V any](name string, strict bool) Variant[T] {
	var zero V
	if _, ok := any(zero).(T); ok {
		return Variant[T]{
			name:   name,
			goType: reflect.TypeFor[V](),
			decode: func(data []byte) (T, error) {
				var value V
				if err := decodeInto(data, &value, strict); err != nil {
					var none T
					return none, err
				}
				return any(value).(T), nil
			},
		}
	}
	if _, ok := any(&zero).(T); ok {
		return Variant[T]{
			name:   name,
			goType: reflect.TypeFor[*V](),
			decode: func(data []byte) (T, error) {
				value := new(V)
				if err := decodeInto(data, value, strict); err != nil {
					var none T
					return none, err
				}
				return any(value).(T), nil
			},
		}
	}
	panic(fmt.Sprintf("union: variant %q: neither %s nor *%s implements %s",
		name, reflect.TypeFor[V](), reflect.TypeFor[V](), reflect.TypeFor[T]()))
}

// Func declares a variant with a hand-written decoder, for payloads
// that are not a plain struct (a wrapper around another union, for
// instance). V must implement T.
func Func[T, V any](name string, decode func(data []byte) (V, error)) Variant[T] {
	var zero V
	if _, ok := any(zero).(T); !ok {
		panic(fmt.Sprintf("union: variant %q: %s does not implement %s",
			name, reflect.TypeFor[V](), reflect.TypeFor[T]()))
	}
	return Variant[T]{
		name:   name,
		goType: reflect.TypeFor[V](),
		decode: func(data []byte) (T, error) {
			value, err := decode(data)
			if err != nil {
				var none T
				return none, err
			}
			return any(value).(T), nil
		},
	}
}

// Decoder decodes JSON objects into one of a closed set of variants
// selected by a tag field. A Decoder is immutable after New and safe
// for concurrent use.
type Decoder[T any] struct {
	union    string
	tagField string
	policy   Policy

	variants map[string]Variant[T]
	names    []string
	byType   map[reflect.Type]string
	fallback *Variant[T]
}

// New builds a Decoder for the union named union (used in error
// messages), dispatching on tagField. Under DefaultVariant exactly one
// variant must be marked AsDefault; under RequiredTag none may be.
// Table mistakes panic: they are programming errors, not bad input.
func New[T any](union, tagField string, policy Policy, variants ...Variant[T]) *Decoder[T] {
	decoder := &Decoder[T]{
		union:    union,
		tagField: tagField,
		policy:   policy,
		variants: make(map[string]Variant[T], len(variants)),
		byType:   make(map[reflect.Type]string, len(variants)),
	}

	for _, variant := range variants {
		if _, exists := decoder.variants[variant.name]; exists {
			panic(fmt.Sprintf("union: %s: duplicate variant %q", union, variant.name))
		}
		if other, exists := decoder.byType[variant.goType]; exists {
			panic(fmt.Sprintf("union: %s: variants %q and %q share Go type %s",
				union, other, variant.name, variant.goType))
		}
		decoder.variants[variant.name] = variant
		decoder.byType[variant.goType] = variant.name
		decoder.names = append(decoder.names, variant.name)

		if variant.isDefault {
			if policy != DefaultVariant {
				panic(fmt.Sprintf("union: %s: default variant %q under %s policy", union, variant.name, policy))
			}
			if decoder.fallback != nil {
				panic(fmt.Sprintf("union: %s: two default variants %q and %q",
					union, decoder.fallback.name, variant.name))
			}
			decoder.fallback = &variant
		}
	}

	if policy == DefaultVariant && decoder.fallback == nil {
		panic(fmt.Sprintf("union: %s: %s policy without a default variant", union, policy))
	}
	return decoder
}

// Union returns the union's name.
func (d *Decoder[T]) Union() string { return d.union }

// TagField returns the name of the discriminator key.
func (d *Decoder[T]) TagField() string { return d.tagField }

// Variants returns the known tag values in registration order.
func (d *Decoder[T]) Variants() []string { return slices.Clone(d.names) }

// Default returns the default variant's tag value, or "" under
// RequiredTag.
func (d *Decoder[T]) Default() string {
	if d.fallback == nil {
		return ""
	}
	return d.fallback.name
}

// Decode dispatches on the tag, then decodes the selected variant.
// Dispatch always happens before the variant's schema is checked, so
// an unrecognized tag is reported as *UnknownVariantError and a bad
// payload for a recognized tag as *VariantError.
func (d *Decoder[T]) Decode(data []byte) (T, error) {
	var none T

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if !json.Valid(trimmed) {
			return none, fmt.Errorf("decoding %s: %w", d.union,
				&FieldError{Kind: Malformed, Err: fmt.Errorf("invalid JSON")})
		}
		return none, fmt.Errorf("decoding %s: %w", d.union, ErrNotAnObject)
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &object); err != nil {
		return none, fmt.Errorf("decoding %s: %w", d.union, classify(err))
	}

	rawTag, present := object[d.tagField]
	if !present || isNull(rawTag) {
		if d.fallback == nil {
			return none, &MissingTagError{Union: d.union, TagField: d.tagField}
		}
		return d.decodeVariant(*d.fallback, trimmed)
	}

	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil {
		return none, &UnknownVariantError{
			Union:    d.union,
			TagField: d.tagField,
			Tag:      string(rawTag),
			Known:    d.Variants(),
		}
	}
	variant, known := d.variants[tag]
	if !known {
		return none, &UnknownVariantError{
			Union:    d.union,
			TagField: d.tagField,
			Tag:      tag,
			Known:    d.Variants(),
		}
	}

	payload := trimmed
	if d.policy == RequiredTag {
		delete(object, d.tagField)
		stripped, err := json.Marshal(object)
		if err != nil {
			return none, fmt.Errorf("decoding %s: re-encoding %q payload: %w", d.union, tag, err)
		}
		payload = stripped
	}
	return d.decodeVariant(variant, payload)
}

func (d *Decoder[T]) decodeVariant(variant Variant[T], payload []byte) (T, error) {
	value, err := variant.decode(payload)
	if err != nil {
		var none T
		return none, &VariantError{Union: d.union, Variant: variant.name, Err: classify(err)}
	}
	return value, nil
}

// VariantOf returns the tag value for a decoded (or constructed)
// variant value.
func (d *Decoder[T]) VariantOf(value T) (string, bool) {
	name, ok := d.byType[reflect.TypeOf(value)]
	return name, ok
}

// Encode marshals value and writes the tag back into the object, so
// Decode(Encode(v)) reproduces v. Default variants under
// DefaultVariant are written without a tag.
func (d *Decoder[T]) Encode(value T) ([]byte, error) {
	name, ok := d.VariantOf(value)
	if !ok {
		return nil, fmt.Errorf("encoding %s: %T is not a registered variant", d.union, value)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding %s variant %q: %w", d.union, name, err)
	}
	if d.fallback != nil && name == d.fallback.name {
		return data, nil
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return nil, fmt.Errorf("encoding %s variant %q: %w", d.union, name, err)
	}
	if object == nil {
		return nil, fmt.Errorf("encoding %s variant %q: %w", d.union, name, ErrNotAnObject)
	}
	tag, err := json.Marshal(name)
	if err != nil {
		return nil, err
	}
	object[d.tagField] = tag
	return json.Marshal(object)
}
