// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"fmt"

	"github.com/slackwire/slackwire/lib/union"
)

// Response is the envelope every web API response carries. Response
// types embed it so the envelope keys pass strict decoding.
type Response struct {
	OK               bool              `json:"ok"`
	Error            string            `json:"error,omitempty"`
	Warning          string            `json:"warning,omitempty"`
	ResponseMetadata *ResponseMetadata `json:"response_metadata,omitempty"`
}

// ResponseMetadata carries cursor pagination and warnings.
type ResponseMetadata struct {
	NextCursor string   `json:"next_cursor,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
	Messages   []string `json:"messages,omitempty"`
}

// failure is the subset of an error response read before the body is
// trusted.
type failure struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error"`
	Warning  string `json:"warning"`
	Needed   string `json:"needed"`
	Provided string `json:"provided"`
}

// Decode reads a response to method. An "ok": false envelope returns
// *APIError without looking at the rest of the body. Otherwise the
// whole body is decoded strictly into T; structural errors are
// *union.FieldError.
func Decode[T any](method string, data []byte) (T, error) {
	var none T

	envelope, err := union.DecodeLenient[failure](data)
	if err != nil {
		return none, fmt.Errorf("decoding %s response envelope: %w", method, err)
	}
	if !envelope.OK {
		return none, &APIError{
			Method:   method,
			Code:     envelope.Error,
			Warning:  envelope.Warning,
			Needed:   envelope.Needed,
			Provided: envelope.Provided,
		}
	}

	response, err := union.DecodeStrict[T](data)
	if err != nil {
		return none, fmt.Errorf("decoding %s response: %w", method, err)
	}
	return response, nil
}
