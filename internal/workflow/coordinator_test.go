package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jonathan/cv-tailor/internal/clipboard"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/types"
)

func TestCoordinator_RejectsConcurrentOperation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	client := &MockLLMClient{GenerateFunc: func(context.Context, llm.Request) (*llm.Response, error) {
		blocked := false
		once.Do(func() { blocked = true })
		if blocked {
			close(started)
			<-release
		}
		return &llm.Response{Text: "optimized"}, nil
	}}
	f := newFixture(t, client, WithLogger(zaptest.NewLogger(t))).withJob()

	first := make(chan Result, 1)
	go func() { first <- f.coord.OptimizeResume(context.Background()) }()
	<-started

	assert.True(t, f.coord.Busy())
	assert.Equal(t, types.StatusOptimizing, f.session.Status())

	second := f.coord.ExtractJobDetails(context.Background(), "https://acme.example/job")
	assert.ErrorIs(t, second.Err, ErrOperationInProgress)
	var preconditionErr *PreconditionError
	assert.True(t, errors.As(second.Err, &preconditionErr))

	third := f.coord.ImportResumeFile(context.Background(), ingestion.FileInput{Name: "cv.pdf", MIMEType: ingestion.MIMEPDF, Data: pdfBytes})
	assert.ErrorIs(t, third.Err, ErrOperationInProgress)

	assert.Equal(t, 1, client.Calls(), "rejected operations never reach the client")
	assert.Equal(t, types.StatusOptimizing, f.session.Status(), "rejection does not disturb the running operation")

	close(release)
	select {
	case res := <-first:
		require.NoError(t, res.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("first operation did not finish")
	}

	assert.Equal(t, types.StatusIdle, f.session.Status())
	assert.Equal(t, "optimized", f.session.Buffer(types.KindResume).Content)
	assert.Equal(t, 3, f.notifier.Len())

	// the slot is free again
	require.NoError(t, f.coord.GenerateCoverLetter(context.Background()).Err)
}

func TestCoordinator_ExactlyOneOutcomePerOperation(t *testing.T) {
	ops := []struct {
		name string
		run  func(*fixture) Result
	}{
		{name: "extract", run: func(f *fixture) Result {
			return f.coord.ExtractJobDetails(context.Background(), "https://acme.example/job")
		}},
		{name: "optimize", run: func(f *fixture) Result { return f.coord.OptimizeResume(context.Background()) }},
		{name: "cover letter", run: func(f *fixture) Result { return f.coord.GenerateCoverLetter(context.Background()) }},
		{name: "import file", run: func(f *fixture) Result {
			return f.coord.ImportResumeFile(context.Background(), ingestion.FileInput{Name: "cv.pdf", MIMEType: ingestion.MIMEPDF, Data: pdfBytes})
		}},
		{name: "import clipboard", run: func(f *fixture) Result {
			f.clipboard.WriteText("Jane Doe") //nolint:errcheck
			return f.coord.ImportResumeClipboard(context.Background())
		}},
		{name: "export file", run: func(f *fixture) Result { return f.coord.ExportFile(types.KindResume) }},
		{name: "export clipboard", run: func(f *fixture) Result { return f.coord.ExportClipboard(types.KindResume) }},
	}

	outcomes := map[string]func(context.Context, llm.Request) (*llm.Response, error){
		"success": respond(jobDetailsJSON),
		"failure": failWith(errNetwork),
	}

	for _, op := range ops {
		for outcome, generate := range outcomes {
			t.Run(op.name+"/"+outcome, func(t *testing.T) {
				f := newFixture(t, &MockLLMClient{GenerateFunc: generate}).withJob()

				res := op.run(f)

				assert.Equal(t, 1, f.notifier.Len())
				assert.NotEmpty(t, res.NotificationID)
				assert.Equal(t, types.StatusIdle, f.session.Status())
				statuses := f.statuses.all()
				if len(statuses) > 0 {
					assert.Equal(t, types.StatusIdle, statuses[len(statuses)-1])
				}
			})
		}
	}
}

func TestCoordinator_NilClientFailsCleanly(t *testing.T) {
	f := newFixture(t, nil).withJob()
	f.coord.client = nil

	res := f.coord.OptimizeResume(context.Background())

	var transportErr *llm.TransportError
	assert.True(t, errors.As(res.Err, &transportErr))
	assert.Equal(t, types.StatusIdle, f.session.Status())
}

func TestCoordinator_ViewAndTab(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, types.KindResume, f.session.ActiveTab())
	assert.Equal(t, types.ViewEditing, f.session.ViewMode())

	assert.True(t, f.coord.SetActiveTab(types.KindCoverLetter))
	assert.False(t, f.coord.SetActiveTab(types.DocumentKind("unknown")))
	assert.Equal(t, types.KindCoverLetter, f.session.ActiveTab())

	assert.Equal(t, types.ViewPreviewing, f.coord.ToggleViewMode())
	assert.Equal(t, types.ViewEditing, f.coord.ToggleViewMode())

	f.coord.SetViewMode(types.ViewPreviewing)
	assert.Equal(t, types.ViewPreviewing, f.session.ViewMode())
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "in progress", err: &PreconditionError{Message: "x", Cause: ErrOperationInProgress}, want: "Please wait for the current operation to finish."},
		{name: "validation", err: &ValidationError{Field: "url", Message: "Please enter a job posting URL."}, want: "Please enter a job posting URL."},
		{name: "format", err: &ingestion.UnsupportedFormatError{MIMEType: "application/zip"}, want: "Unsupported file type. Please upload a PDF or an image."},
		{name: "empty clipboard", err: clipboard.ErrEmpty, want: "The clipboard is empty. Copy your resume text first."},
		{name: "clipboard write", err: &ExportError{Message: "m", Cause: &clipboard.Error{Op: "write"}}, want: "Could not copy to the clipboard. Please select the text and copy it manually."},
		{name: "cover letter", err: &GenerationError{Op: OpGenerateCoverLetter, Cause: errNetwork}, want: "Failed to generate the cover letter. Please try again."},
		{name: "bare transport", err: &llm.TransportError{Message: "boom"}, want: "The generation service failed. Please try again."},
		{name: "unknown", err: errors.New("boom"), want: "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
