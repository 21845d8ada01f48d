// Package output prints check results for the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/edatcheck/pkg/check"
)

// ColorMode selects when ANSI colors are used.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

// Printer writes results with a colored status tag.
type Printer struct {
	w     io.Writer
	color bool
}

// New creates a Printer. In auto mode colors are used only when stdout
// supports them.
func New(w io.Writer, mode ColorMode) *Printer {
	var color bool
	switch mode {
	case ColorAlways:
		color = true
	case ColorNever:
		color = false
	default:
		color = w == os.Stdout && supportscolor.Stdout().SupportsColor
	}
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + reset
}

// PrintResult outputs a check result as "[STATUS] message" followed by
// indented details.
func (p *Printer) PrintResult(r check.Result) {
	code := green
	if r.Severity() == check.SeverityError {
		code = red
	}
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.paint(code, "["+string(r.Status)+"]"), r.Message)
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(p.w, "      %s\n", p.formatLabel(d))
	}
}

// PrintResults outputs each result separated by a blank line.
func (p *Printer) PrintResults(results []check.Result) {
	for i, r := range results {
		if i > 0 {
			_, _ = fmt.Fprintln(p.w)
		}
		p.PrintResult(r)
	}
}

// PrintSummary outputs the "found/total" line.
func (p *Printer) PrintSummary(found, total int) {
	code := green
	if found != total {
		code = red
	}
	_, _ = fmt.Fprintf(p.w, "\n%s\n", p.paint(code, fmt.Sprintf("%d/%d checks passed", found, total)))
}

// formatLabel dims the "label:" prefix of a detail line.
func (p *Printer) formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	return p.paint(dim, label+":") + rest
}
