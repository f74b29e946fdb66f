// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"errors"
	"fmt"
)

// APIError is a response whose envelope says "ok": false. Callers use
// errors.As to get at the code:
//
//	var apiErr *APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.Code == ErrCodeRateLimited { ... }
//	}
type APIError struct {
	// Method is the web API method that produced the response.
	Method string
	// Code is Slack's machine-readable error string, for example
	// "channel_not_found". Empty when the response omitted it.
	Code string
	// Warning is the comma-separated warning list, if any.
	Warning string
	// Needed and Provided are the OAuth scopes reported with
	// missing_scope.
	Needed   string
	Provided string
}

func (e *APIError) Error() string {
	code := e.Code
	if code == "" {
		code = "unspecified error"
	}
	if e.Needed != "" {
		return fmt.Sprintf("slack %s: %s (needed %s, provided %s)", e.Method, code, e.Needed, e.Provided)
	}
	return fmt.Sprintf("slack %s: %s", e.Method, code)
}

// Common Slack error codes.
const (
	ErrCodeNotAuthed        = "not_authed"
	ErrCodeInvalidAuth      = "invalid_auth"
	ErrCodeAccountInactive  = "account_inactive"
	ErrCodeTokenRevoked     = "token_revoked"
	ErrCodeMissingScope     = "missing_scope"
	ErrCodeNoPermission     = "no_permission"
	ErrCodeChannelNotFound  = "channel_not_found"
	ErrCodeUserNotFound     = "user_not_found"
	ErrCodeMessageNotFound  = "message_not_found"
	ErrCodeFileNotFound     = "file_not_found"
	ErrCodeNotInChannel     = "not_in_channel"
	ErrCodeIsArchived       = "is_archived"
	ErrCodeInvalidArguments = "invalid_arguments"
	ErrCodeInvalidCursor    = "invalid_cursor"
	ErrCodeRateLimited      = "ratelimited"
	ErrCodeFatalError       = "fatal_error"
)

// IsAPIError reports whether err is an *APIError with the given code.
func IsAPIError(err error, code string) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
