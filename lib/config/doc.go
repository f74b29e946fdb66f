// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for slackwire.
//
// Configuration is loaded from a single file specified by either the
// SLACKWIRE_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no ~/.config discovery and no
// automatic file search. [Resolve] is what commands call: a named
// file, then SLACKWIRE_CONFIG, then [Default].
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches. Production defaults are stricter:
// unknown event types and message subtypes fail a capture check
// instead of warning.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${SLACKWIRE_ROOT}, and ${VAR:-default} patterns are
// expanded. No other environment variables override config values.
//
// This package depends on no other slackwire packages.
package config
