// Package report renders check results and derives the process exit code.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/hazz-dev/svccheck/internal/checker"
)

const ruleWidth = 70

// Summary holds per-status counts for a run.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
}

// Summarize tallies results by status.
func Summarize(results []checker.Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case checker.StatusPass:
			s.Passed++
		case checker.StatusFail:
			s.Failed++
		case checker.StatusSkip:
			s.Skipped++
		}
	}
	return s
}

// ExitCode is 1 when any check failed. Skips never affect it.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

func (s Summary) String() string {
	return fmt.Sprintf("Summary: %d passed, %d failed, %d skipped", s.Passed, s.Failed, s.Skipped)
}

type style struct {
	glyph  string
	colors text.Colors
}

var styles = map[checker.Status]style{
	checker.StatusPass: {glyph: "✓", colors: text.Colors{text.FgGreen}},
	checker.StatusFail: {glyph: "✗", colors: text.Colors{text.FgRed}},
	checker.StatusSkip: {glyph: "⊘", colors: text.Colors{text.FgYellow}},
}

// Glyph returns the marker printed for a status, or "?" for unknown values.
func Glyph(s checker.Status) string {
	if st, ok := styles[s]; ok {
		return st.glyph
	}
	return "?"
}

// Printer writes the console report.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter returns a Printer writing to out. When color is true, result
// lines are wrapped in ANSI color sequences.
func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

func (p *Printer) rule() {
	fmt.Fprintln(p.out, strings.Repeat("=", ruleWidth))
}

// Banner prints the report header.
func (p *Printer) Banner() {
	p.rule()
	fmt.Fprintln(p.out, "Service Connectivity Checks")
	p.rule()
}

// Line formats a single result without a trailing newline.
func (p *Printer) Line(r checker.Result) string {
	line := fmt.Sprintf("[%s] %-15s via %-20s (%4d ms) -> %s",
		Glyph(r.Status), r.Service, r.Client, r.DurationMs(), r.Detail)
	if st, ok := styles[r.Status]; ok && p.color {
		return st.colors.Sprint(line)
	}
	return line
}

// Result prints one result line.
func (p *Printer) Result(r checker.Result) {
	fmt.Fprintln(p.out, p.Line(r))
}

// Summary prints the tally between rules.
func (p *Printer) Summary(s Summary) {
	p.rule()
	fmt.Fprintln(p.out, s.String())
	p.rule()
}

// Print renders a complete report and returns its summary.
func (p *Printer) Print(results []checker.Result) Summary {
	p.Banner()
	for _, r := range results {
		p.Result(r)
	}
	s := Summarize(results)
	p.Summary(s)
	return s
}
