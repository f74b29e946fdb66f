// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package webapi decodes Slack web API responses.
//
// Every response shares the envelope in [Response]. [Decode] checks
// "ok" first: a failed call becomes an [*APIError] carrying Slack's
// error code, and a successful one is decoded strictly into the
// method's response type. Method-specific types live in responses.go;
// [Lookup] and [Methods] expose the same set by name for callers that
// only know the method at runtime.
//
// Records inside a response (messages, users, channels) are the
// lib/schema types and keep their own strictness policy.
package webapi
