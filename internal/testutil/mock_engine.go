// Package testutil provides test utilities and helpers for ergorun tests.
package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/accordproject/ergorun/internal/engine"
)

// CallRecord records a single engine call with metadata.
type CallRecord struct {
	Method    string
	Request   any
	Timestamp time.Time
	Result    engine.Result
	Error     error
}

// MockEngineBuilder provides a fluent API for configuring mock engine behavior.
type MockEngineBuilder struct {
	responses    []mockResponse
	currentIndex int
	calls        []CallRecord
	mu           sync.Mutex
	t            *testing.T
}

type mockResponse struct {
	result engine.Result
	err    error
	delay  time.Duration
}

// NewMockEngineBuilder creates a new MockEngineBuilder for configuring mock behavior.
func NewMockEngineBuilder(t *testing.T) *MockEngineBuilder {
	t.Helper()

	return &MockEngineBuilder{
		responses: make([]mockResponse, 0),
		calls:     make([]CallRecord, 0),
		t:         t,
	}
}

// WithResult queues a successful result given as JSON text.
func (b *MockEngineBuilder) WithResult(jsonText string) *MockEngineBuilder {
	b.t.Helper()
	if !json.Valid([]byte(jsonText)) {
		b.t.Fatalf("testutil: invalid JSON result %q", jsonText)
	}
	b.responses = append(b.responses, mockResponse{result: engine.Result(jsonText)})
	return b
}

// WithError queues an error response.
func (b *MockEngineBuilder) WithError(err error) *MockEngineBuilder {
	b.responses = append(b.responses, mockResponse{err: err})
	return b
}

// WithEngineError queues an engine.Error built from a JSON error value.
func (b *MockEngineBuilder) WithEngineError(detail string) *MockEngineBuilder {
	return b.WithError(engine.NewError(json.RawMessage(detail)))
}

// WithDelay adds a delay before returning the last queued response.
func (b *MockEngineBuilder) WithDelay(d time.Duration) *MockEngineBuilder {
	if len(b.responses) > 0 {
		b.responses[len(b.responses)-1].delay = d
	}
	return b
}

// Build returns the configured MockEngine.
func (b *MockEngineBuilder) Build() *MockEngine {
	return &MockEngine{builder: b}
}

// MockEngine implements engine.Engine, recording every request it receives.
type MockEngine struct {
	builder *MockEngineBuilder
}

var _ engine.Engine = (*MockEngine)(nil)

// Execute records req and returns the next queued response.
func (m *MockEngine) Execute(ctx context.Context, req engine.ExecuteRequest) (engine.Result, error) {
	return m.recordAndRespond(ctx, string(engine.OpExecute), req)
}

// Invoke records req and returns the next queued response.
func (m *MockEngine) Invoke(ctx context.Context, req engine.InvokeRequest) (engine.Result, error) {
	return m.recordAndRespond(ctx, string(engine.OpInvoke), req)
}

// Init records req and returns the next queued response.
func (m *MockEngine) Init(ctx context.Context, req engine.InitRequest) (engine.Result, error) {
	return m.recordAndRespond(ctx, string(engine.OpInit), req)
}

// GenerateText records req and returns the next queued response.
func (m *MockEngine) GenerateText(ctx context.Context, req engine.GenerateTextRequest) (engine.Result, error) {
	return m.recordAndRespond(ctx, string(engine.OpGenerateText), req)
}

func (m *MockEngine) recordAndRespond(ctx context.Context, method string, req any) (engine.Result, error) {
	m.builder.mu.Lock()
	defer m.builder.mu.Unlock()

	record := CallRecord{
		Method:    method,
		Request:   req,
		Timestamp: time.Now(),
	}

	if m.builder.currentIndex >= len(m.builder.responses) {
		// No more responses configured, resolve with an empty object
		record.Result = engine.Result("{}")
		m.builder.calls = append(m.builder.calls, record)
		return record.Result, nil
	}

	resp := m.builder.responses[m.builder.currentIndex]
	m.builder.currentIndex++

	if resp.delay > 0 {
		select {
		case <-time.After(resp.delay):
		case <-ctx.Done():
			record.Error = ctx.Err()
			m.builder.calls = append(m.builder.calls, record)
			return nil, ctx.Err()
		}
	}

	record.Result = resp.result
	record.Error = resp.err
	m.builder.calls = append(m.builder.calls, record)
	return resp.result, resp.err
}

// GetCalls returns all recorded calls.
func (m *MockEngine) GetCalls() []CallRecord {
	m.builder.mu.Lock()
	defer m.builder.mu.Unlock()
	return append([]CallRecord{}, m.builder.calls...)
}

// GetCallCount returns the number of recorded calls.
func (m *MockEngine) GetCallCount() int {
	m.builder.mu.Lock()
	defer m.builder.mu.Unlock()
	return len(m.builder.calls)
}

// LastRequest returns the request of the most recent call, or nil.
func (m *MockEngine) LastRequest() any {
	m.builder.mu.Lock()
	defer m.builder.mu.Unlock()
	if len(m.builder.calls) == 0 {
		return nil
	}
	return m.builder.calls[len(m.builder.calls)-1].Request
}

// AssertCalled fails the test unless method was called at least once.
func (m *MockEngine) AssertCalled(t *testing.T, method string) {
	t.Helper()
	for _, c := range m.GetCalls() {
		if c.Method == method {
			return
		}
	}
	t.Errorf("expected engine method %s to be called", method)
}

// AssertNotCalled fails the test if the engine received any call.
func (m *MockEngine) AssertNotCalled(t *testing.T) {
	t.Helper()
	if calls := m.GetCalls(); len(calls) > 0 {
		t.Errorf("expected no engine calls, got %d (first: %s)", len(calls), calls[0].Method)
	}
}

// AssertCallCount fails the test unless the engine received exactly expected calls.
func (m *MockEngine) AssertCallCount(t *testing.T, expected int) {
	t.Helper()
	if got := m.GetCallCount(); got != expected {
		t.Errorf("expected %d engine calls, got %d", expected, got)
	}
}
