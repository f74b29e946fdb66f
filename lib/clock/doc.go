// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// Code that stamps or times its output accepts a Clock instead of
// calling time.Now directly. In production, Real() reads the system
// clock. In tests, Fake() returns a clock that moves only when told
// to:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	c.SetStep(time.Millisecond) // each Now() call moves 1ms forward
//	report, err := capture.Check(ctx, records, capture.Options{Clock: c})
package clock
