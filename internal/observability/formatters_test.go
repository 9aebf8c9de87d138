package observability

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-tailor/internal/notify"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/jonathan/cv-tailor/internal/workflow"
)

func TestPrintJobDetails(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobDetails(&types.JobDetails{
		CompanyProfile: "Acme Corp",
		JobDescription: "Senior Engineer",
		HRContact:      "Dana",
	})
	output := buf.String()

	assert.Contains(t, output, "JOB DETAILS")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Dana")
	assert.Contains(t, output, "Not found")
}

func TestPrintJobDetails_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobDetails(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDocument_Truncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	lines := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	p.PrintDocument(types.Buffer{Kind: types.KindResume, Content: strings.Join(lines, "\n")})
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "line 12")
	assert.NotContains(t, output, "line 13")
	assert.Contains(t, output, "and 8 more lines")
}

func TestPrintDocument_Verbose(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.SetVerbose(true)

	lines := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	p.PrintDocument(types.Buffer{Kind: types.KindCoverLetter, Content: strings.Join(lines, "\n")})

	assert.Contains(t, buf.String(), "COVER LETTER")
	assert.Contains(t, buf.String(), "line 20")
}

func TestPrintDocument_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(types.Buffer{Kind: types.KindResume})

	assert.Contains(t, buf.String(), "(empty)")
}

func TestPrintNotifications(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNotifications([]notify.Notification{
		{ID: "1", Severity: notify.SeveritySuccess, Text: "Saved", CreatedAt: time.Now()},
		{ID: "2", Severity: notify.SeverityError, Text: "Failed"},
		{ID: "3", Severity: notify.SeverityInfo, Text: "Note"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "✓ Saved")
	assert.Contains(t, lines[1], "✗ Failed")
	assert.Contains(t, lines[2], "• Note")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(workflow.Result{Op: workflow.OpExportFile, Path: "out/optimized_cv.md"})
	p.PrintResult(workflow.Result{Op: workflow.OpOptimizeResume, Err: errors.New("boom")})

	output := buf.String()
	assert.Contains(t, output, "export_file: ok → out/optimized_cv.md")
	assert.Contains(t, output, "optimize_resume: Something went wrong")
}
