// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/slackwire/slackwire/lib/codec"
)

// WriteCBOR writes the report as one deterministic CBOR item.
func (r *Report) WriteCBOR(w io.Writer) error {
	if err := codec.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// ReadReport reads a report written by WriteCBOR.
func ReadReport(reader io.Reader) (*Report, error) {
	var report Report
	if err := codec.NewDecoder(reader).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &report, nil
}

// RenderOptions controls Render.
type RenderOptions struct {
	// Width is the terminal width. Rows are truncated to fit. Zero
	// means 100.
	Width int
	// Profile is the color profile; termenv.Ascii disables styling.
	Profile termenv.Profile
	// All includes ok results. By default only problems are listed.
	All bool
}

type reportStyles struct {
	header   lipgloss.Style
	faint    lipgloss.Style
	outcomes map[Outcome]lipgloss.Style
	pass     lipgloss.Style
	fail     lipgloss.Style
}

func newReportStyles(renderer *lipgloss.Renderer) reportStyles {
	return reportStyles{
		header: renderer.NewStyle().Bold(true).Underline(true),
		faint:  renderer.NewStyle().Faint(true),
		outcomes: map[Outcome]lipgloss.Style{
			OutcomeOK:             renderer.NewStyle().Foreground(lipgloss.Color("2")),
			OutcomeUnknownVariant: renderer.NewStyle().Foreground(lipgloss.Color("3")),
			OutcomeMalformed:      renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			OutcomeAPIError:       renderer.NewStyle().Foreground(lipgloss.Color("4")),
		},
		pass: renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail: renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Render writes the report as a table followed by a summary line.
func Render(w io.Writer, report *Report, options RenderOptions) error {
	width := options.Width
	if width <= 0 {
		width = 100
	}
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(options.Profile))
	renderer.SetColorProfile(options.Profile)
	styles := newReportStyles(renderer)

	columns := []string{"OUTCOME", "KIND", "VARIANT", "SOURCE", "DETAIL"}
	var rows [][]string
	for _, result := range report.Results {
		if result.Outcome == OutcomeOK && !options.All {
			continue
		}
		rows = append(rows, []string{
			string(result.Outcome),
			string(result.Kind),
			result.Variant,
			result.Source,
			detail(result),
		})
	}

	var output strings.Builder
	if len(rows) > 0 {
		widths := make([]int, len(columns))
		for i, column := range columns {
			widths[i] = lipgloss.Width(column)
		}
		for _, row := range rows {
			// DETAIL takes whatever is left.
			for i := 0; i < len(row)-1; i++ {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}

		writeRow := func(cells []string, style func(column int, cell string) string) {
			var line strings.Builder
			for i, cell := range cells {
				if i > 0 {
					line.WriteString("  ")
				}
				if i < len(cells)-1 {
					padding := widths[i] - lipgloss.Width(cell)
					line.WriteString(style(i, cell))
					line.WriteString(strings.Repeat(" ", padding))
					continue
				}
				used := lipgloss.Width(line.String())
				remaining := width - used
				if remaining < 1 {
					break
				}
				line.WriteString(style(i, ansi.Truncate(cell, remaining, "…")))
			}
			output.WriteString(strings.TrimRight(line.String(), " "))
			output.WriteByte('\n')
		}

		writeRow(columns, func(_ int, cell string) string { return styles.header.Render(cell) })
		for _, row := range rows {
			writeRow(row, func(column int, cell string) string {
				if column == 0 {
					return styles.outcomes[Outcome(cell)].Render(cell)
				}
				if column == len(columns)-1 {
					return styles.faint.Render(cell)
				}
				return cell
			})
		}
		output.WriteByte('\n')
	}

	output.WriteString(summary(report, styles))
	output.WriteByte('\n')

	_, err := io.WriteString(w, output.String())
	return err
}

func detail(result Result) string {
	var parts []string
	if result.Note != "" {
		parts = append(parts, result.Note)
	}
	if result.Field != "" {
		parts = append(parts, fmt.Sprintf("[%s %s]", result.ErrorKind, result.Field))
	}
	if result.Error != "" {
		parts = append(parts, result.Error)
	}
	return strings.Join(parts, " ")
}

func summary(report *Report, styles reportStyles) string {
	counts := make([]string, 0, len(Outcomes))
	for _, outcome := range Outcomes {
		counts = append(counts, fmt.Sprintf("%d %s", report.Counts[outcome], outcome))
	}

	verdict := styles.pass.Render("PASS")
	if report.Failed() {
		verdict = styles.fail.Render("FAIL")
	}

	line := fmt.Sprintf("%s  %d records: %s", verdict, report.Total(), strings.Join(counts, ", "))
	if report.Deduplicated > 0 {
		line += fmt.Sprintf(" (%d duplicates skipped)", report.Deduplicated)
	}
	line += styles.faint.Render(fmt.Sprintf("  run %s in %s", report.RunID, report.Duration.Round(time.Microsecond)))
	return line
}
