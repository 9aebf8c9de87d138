// Package observability provides formatted output utilities for the one-shot CLI commands.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/cv-tailor/internal/notify"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/jonathan/cv-tailor/internal/workflow"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxPreviewLines is the number of buffer lines shown in a document preview
	maxPreviewLines = 12
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out     io.Writer
	box     lipgloss.Style
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	verbose bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// Colors are used only when the writer is a color-capable terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(boxWidth - 2),
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// SetVerbose makes PrintDocument show the whole buffer
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// printBox prints a bordered box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	body := p.title.Render(title) + "\n\n" + strings.TrimRight(content, "\n")
	fmt.Fprintln(p.out, p.box.Render(body))
}

// PrintJobDetails outputs the extracted job fields
func (p *Printer) PrintJobDetails(details *types.JobDetails) {
	if details == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("Company Profile:\n")
	sb.WriteString(orNotFound(details.CompanyProfile))
	sb.WriteString("\n\nJob Description:\n")
	sb.WriteString(orNotFound(details.JobDescription))
	sb.WriteString("\n\n")
	sb.WriteString(details.OtherDetails())

	p.printBox("JOB DETAILS", sb.String())
}

// PrintDocument outputs a buffer, shortened unless verbose
func (p *Printer) PrintDocument(buf types.Buffer) {
	content := strings.TrimSpace(buf.Content)
	if content == "" {
		content = "(empty)"
	}

	if !p.verbose {
		lines := strings.Split(content, "\n")
		if len(lines) > maxPreviewLines {
			content = strings.Join(lines[:maxPreviewLines], "\n") +
				fmt.Sprintf("\n... and %d more lines", len(lines)-maxPreviewLines)
		}
	}

	p.printBox(strings.ToUpper(buf.Kind.Title()), content)
}

// PrintNotifications outputs notifications in insertion order, one per line
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNotifications(items []notify.Notification) {
	for _, n := range items {
		fmt.Fprintln(p.out, p.notificationLine(n))
	}
}

func (p *Printer) notificationLine(n notify.Notification) string {
	switch n.Severity {
	case notify.SeveritySuccess:
		return p.success.Render("✓ " + n.Text)
	case notify.SeverityError:
		return p.failure.Render("✗ " + n.Text)
	default:
		return p.info.Render("• " + n.Text)
	}
}

// PrintResult outputs a one-line summary of an operation outcome
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResult(res workflow.Result) {
	if res.OK() {
		line := fmt.Sprintf("%s: ok", res.Op)
		if res.Path != "" {
			line += " → " + res.Path
		}
		fmt.Fprintln(p.out, p.success.Render(line))
		return
	}
	fmt.Fprintln(p.out, p.failure.Render(fmt.Sprintf("%s: %s", res.Op, workflow.UserMessage(res.Err))))
}

func orNotFound(s string) string {
	if strings.TrimSpace(s) == "" {
		return types.NotFound
	}
	return s
}
