package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-tailor/internal/clipboard"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/notify"
	"github.com/jonathan/cv-tailor/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateFunc func(ctx context.Context, req llm.Request) (*llm.Response, error)
	GetModelFunc func(tier llm.ModelTier) string
	CloseFunc    func() error

	mu       sync.Mutex
	requests []llm.Request
}

func (m *MockLLMClient) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return &llm.Response{Text: "mock output", Model: "mock-model"}, nil
}

func (m *MockLLMClient) GetModel(tier llm.ModelTier) string {
	if m.GetModelFunc != nil {
		return m.GetModelFunc(tier)
	}
	return "mock-model"
}

func (m *MockLLMClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Calls returns how many requests reached the client
func (m *MockLLMClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastRequest returns the most recent request
func (m *MockLLMClient) LastRequest() llm.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return llm.Request{}
	}
	return m.requests[len(m.requests)-1]
}

func respond(text string) func(context.Context, llm.Request) (*llm.Response, error) {
	return func(context.Context, llm.Request) (*llm.Response, error) {
		return &llm.Response{Text: text, Model: "mock-model"}, nil
	}
}

func failWith(err error) func(context.Context, llm.Request) (*llm.Response, error) {
	return func(context.Context, llm.Request) (*llm.Response, error) {
		return nil, err
	}
}

type stubPages struct {
	text string
	err  error
}

func (s *stubPages) PageText(context.Context, string) (string, error) {
	return s.text, s.err
}

type stubPrinter struct {
	path string
	err  error
	got  types.Buffer
}

func (p *stubPrinter) Print(_ context.Context, buf types.Buffer, _ string) (string, error) {
	p.got = buf
	return p.path, p.err
}

// statusRecorder collects every status transition
type statusRecorder struct {
	mu       sync.Mutex
	statuses []types.OperationStatus
}

func (r *statusRecorder) record(s types.OperationStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s)
}

func (r *statusRecorder) all() []types.OperationStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.OperationStatus(nil), r.statuses...)
}

type fixture struct {
	coord     *Coordinator
	session   *Session
	client    *MockLLMClient
	notifier  *notify.Manager
	clipboard *clipboard.Memory
	statuses  *statusRecorder
}

func newFixture(t *testing.T, client *MockLLMClient, opts ...Option) *fixture {
	t.Helper()

	if client == nil {
		client = &MockLLMClient{}
	}
	notifier := notify.NewManager(notify.WithTTL(time.Minute))
	t.Cleanup(notifier.Close)

	f := &fixture{
		session:   NewSession(),
		client:    client,
		notifier:  notifier,
		clipboard: clipboard.NewMemory(""),
		statuses:  &statusRecorder{},
	}
	base := []Option{
		WithClipboard(f.clipboard),
		WithOutputDir(t.TempDir()),
		WithStatusListener(f.statuses.record),
	}
	f.coord = NewCoordinator(f.session, client, notifier, append(base, opts...)...)
	return f
}

// withJob fills the fields required by optimize and cover-letter generation
func (f *fixture) withJob() *fixture {
	f.session.SetCompanyProfile("Acme builds rockets.")
	f.session.SetJobDescription("Senior Go engineer.")
	f.session.SetBuffer(types.KindResume, "# Jane Doe\n- Built Go services")
	return f
}

// requireSingleNotification checks that res produced exactly one notification of severity
func (f *fixture) requireSingleNotification(t *testing.T, res Result, severity notify.Severity) notify.Notification {
	t.Helper()

	items := f.notifier.List()
	require.Len(t, items, 1)
	require.Equal(t, res.NotificationID, items[0].ID)
	require.Equal(t, severity, items[0].Severity)
	return items[0]
}

var errNetwork = errors.New("connection reset")
