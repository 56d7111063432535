// Package observability provides formatted output utilities for CLI diagnostics.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/daniel/resume-mcp/internal/providers"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxModelsToShow is the number of models listed per provider
	maxModelsToShow = 3
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProviders outputs the availability report for all chat providers.
func (p *Printer) PrintProviders(statuses []providers.Status) {
	if len(statuses) == 0 {
		return
	}

	available := 0
	for _, st := range statuses {
		if st.Available {
			available++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d of %d providers available\n", available, len(statuses)))

	for _, st := range statuses {
		sb.WriteString("\n")
		if st.Available {
			sb.WriteString(fmt.Sprintf("✓ %s\n", st.Name))
			models := st.Models
			more := 0
			if len(models) > maxModelsToShow {
				more = len(models) - maxModelsToShow
				models = models[:maxModelsToShow]
			}
			sb.WriteString(fmt.Sprintf("  Models: %s", strings.Join(models, ", ")))
			if more > 0 {
				sb.WriteString(fmt.Sprintf(" (+%d more)", more))
			}
			sb.WriteString("\n")
			if st.Default != "" {
				sb.WriteString(fmt.Sprintf("  Default: %s\n", st.Default))
			}
		} else {
			sb.WriteString(fmt.Sprintf("✗ %s\n", st.Name))
			reason := st.Error
			if reason == "" {
				reason = "unavailable"
			}
			sb.WriteString(fmt.Sprintf("  %s\n", reason))
		}
	}

	p.printBox("PROVIDER AVAILABILITY", strings.TrimSuffix(sb.String(), "\n"))
}
