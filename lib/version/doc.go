// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for slackwire.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//	go build -ldflags "-X github.com/slackwire/slackwire/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// They default to "unknown" / "0.1.0-dev" when not injected, in which
// case [Current] falls back to the VCS stamp the Go toolchain embeds.
package version
