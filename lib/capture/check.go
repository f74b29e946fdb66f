// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/slackwire/slackwire/lib/clock"
	"github.com/slackwire/slackwire/lib/schema"
	"github.com/slackwire/slackwire/lib/timestamp"
	"github.com/slackwire/slackwire/lib/union"
	"github.com/slackwire/slackwire/lib/webapi"
)

// Outcome classifies one record's decode.
type Outcome string

const (
	// OutcomeOK: the payload decoded.
	OutcomeOK Outcome = "ok"
	// OutcomeUnknownVariant: the event type or message subtype is not
	// one the schema knows.
	OutcomeUnknownVariant Outcome = "unknown_variant"
	// OutcomeMalformed: the payload does not match the schema.
	OutcomeMalformed Outcome = "malformed"
	// OutcomeAPIError: a method response with "ok": false.
	OutcomeAPIError Outcome = "api_error"
)

// Outcomes lists every outcome in display order.
var Outcomes = []Outcome{OutcomeOK, OutcomeUnknownVariant, OutcomeMalformed, OutcomeAPIError}

// Policy decides whether unknown variants fail a report.
type Policy string

const (
	PolicyWarn Policy = "warn"
	PolicyFail Policy = "fail"
)

// ParsePolicy accepts "warn" and "fail".
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case PolicyWarn, PolicyFail:
		return Policy(name), nil
	default:
		return "", fmt.Errorf("unknown variant policy %q (want warn or fail)", name)
	}
}

// Options configures Check. The zero value warns on unknown variants,
// keeps duplicates, uses the default timestamp parser and the system
// clock, and does not log.
type Options struct {
	UnknownVariants Policy
	Dedupe          bool
	// Timestamps parses KindTimestamp records.
	Timestamps timestamp.Parser
	Clock      clock.Clock
	Logger     *slog.Logger
	// RunID identifies the report. A random UUID when zero.
	RunID uuid.UUID
}

// Result is the outcome for one record.
type Result struct {
	Source      string  `json:"source,omitempty"`
	Kind        Kind    `json:"kind"`
	Method      string  `json:"method,omitempty"`
	Note        string  `json:"note,omitempty"`
	Fingerprint string  `json:"fingerprint"`
	Outcome     Outcome `json:"outcome"`
	// Variant is the decoded event type, message subtype, or method.
	// For unknown variants it is the unrecognized tag.
	Variant string `json:"variant,omitempty"`
	// ErrorKind and Field come from a *union.FieldError, when the
	// failure is one.
	ErrorKind string `json:"error_kind,omitempty"`
	Field     string `json:"field,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report is the result of a Check run.
type Report struct {
	RunID           string          `json:"run_id"`
	Started         time.Time       `json:"started"`
	Duration        time.Duration   `json:"duration_ns"`
	UnknownVariants Policy          `json:"unknown_variants"`
	Deduplicated    int             `json:"deduplicated"`
	Counts          map[Outcome]int `json:"counts"`
	Results         []Result        `json:"results"`
}

// Failed reports whether the run should fail: any malformed record,
// or any unknown variant under PolicyFail.
func (r *Report) Failed() bool {
	if r.Counts[OutcomeMalformed] > 0 {
		return true
	}
	return r.UnknownVariants == PolicyFail && r.Counts[OutcomeUnknownVariant] > 0
}

// Total is the number of records checked.
func (r *Report) Total() int {
	return len(r.Results)
}

// Check decodes every record and classifies the outcome. It stops
// between records when ctx is cancelled and returns ctx's error.
func Check(ctx context.Context, records []Record, options Options) (*Report, error) {
	if options.UnknownVariants == "" {
		options.UnknownVariants = PolicyWarn
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	runID := options.RunID
	if runID == uuid.Nil {
		runID = uuid.New()
	}

	report := &Report{
		RunID:           runID.String(),
		Started:         options.Clock.Now(),
		UnknownVariants: options.UnknownVariants,
	}
	if options.Dedupe {
		records, report.Deduplicated = Dedupe(records)
	}

	report.Results = make([]Result, 0, len(records))
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result := checkRecord(record, options.Timestamps)
		if result.Outcome != OutcomeOK {
			logger.Debug("capture record did not decode",
				"source", result.Source,
				"kind", result.Kind,
				"outcome", result.Outcome,
				"variant", result.Variant,
				"error", result.Error,
			)
		}
		report.Results = append(report.Results, result)
	}

	report.Counts = lo.CountValuesBy(report.Results, func(result Result) Outcome { return result.Outcome })
	if report.Counts == nil {
		report.Counts = make(map[Outcome]int, len(Outcomes))
	}
	for _, outcome := range Outcomes {
		if _, present := report.Counts[outcome]; !present {
			report.Counts[outcome] = 0
		}
	}
	report.Duration = clock.Since(options.Clock, report.Started)

	logger.Info("capture check complete",
		"run_id", report.RunID,
		"records", report.Total(),
		"deduplicated", report.Deduplicated,
		"ok", report.Counts[OutcomeOK],
		"unknown_variant", report.Counts[OutcomeUnknownVariant],
		"malformed", report.Counts[OutcomeMalformed],
		"api_error", report.Counts[OutcomeAPIError],
		"failed", report.Failed(),
		"duration", report.Duration,
	)
	return report, nil
}

func checkRecord(record Record, timestamps timestamp.Parser) Result {
	result := Result{
		Source:      record.Source,
		Kind:        record.Kind,
		Method:      record.Method,
		Note:        record.Note,
		Fingerprint: FingerprintPayload(record.Payload).String(),
	}

	variant, err := decodeRecord(record, timestamps)
	if err == nil {
		result.Outcome = OutcomeOK
		result.Variant = variant
		return result
	}

	result.Error = err.Error()
	var (
		apiErr     *webapi.APIError
		unknownErr *union.UnknownVariantError
		fieldErr   *union.FieldError
	)
	switch {
	case errors.As(err, &apiErr):
		result.Outcome = OutcomeAPIError
		result.Variant = apiErr.Code
	case errors.As(err, &unknownErr):
		result.Outcome = OutcomeUnknownVariant
		result.Variant = unknownErr.Tag
	default:
		result.Outcome = OutcomeMalformed
	}
	if errors.As(err, &fieldErr) {
		result.ErrorKind = string(fieldErr.Kind)
		result.Field = fieldErr.Field
	}
	return result
}

// decodeRecord returns the variant name the payload decoded as.
func decodeRecord(record Record, timestamps timestamp.Parser) (string, error) {
	switch record.Kind {
	case KindEvent:
		event, err := schema.DecodeEvent(record.Payload)
		if err != nil {
			return "", err
		}
		return event.Type(), nil

	case KindMessage:
		message, err := schema.DecodeMessage(record.Payload)
		if err != nil {
			return "", err
		}
		return message.Subtype(), nil

	case KindMethod:
		if _, err := webapi.DecodeMethod(record.Method, record.Payload); err != nil {
			return "", err
		}
		return record.Method, nil

	case KindTimestamp:
		ts, err := timestamps.Decode(record.Payload)
		if err != nil {
			return "", err
		}
		return ts.String(), nil

	default:
		return "", fmt.Errorf("unknown record kind %q", record.Kind)
	}
}
