// Package lifecycle_test tests lifecycle wrapper for command execution timing and notifications.
// Related: internal/lifecycle/lifecycle.go, internal/lifecycle/handler.go
// Tags: lifecycle, timing, notification, error-handling

package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHandler records notification calls for testing.
type mockHandler struct {
	mu            sync.Mutex
	starts        []string
	completes     []completeCall
	panicOnStart  bool
	panicOnFinish bool
}

type completeCall struct {
	name     string
	success  bool
	duration time.Duration
}

func (m *mockHandler) OnCommandStart(name string) {
	if m.panicOnStart {
		panic("handler panic")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts = append(m.starts, name)
}

func (m *mockHandler) OnCommandComplete(name string, success bool, duration time.Duration) {
	if m.panicOnFinish {
		panic("handler panic")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completes = append(m.completes, completeCall{name, success, duration})
}

func (m *mockHandler) getCompletes() []completeCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]completeCall{}, m.completes...)
}

func TestRun(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := map[string]struct {
		fnErr       error
		wantSuccess bool
	}{
		"success": {fnErr: nil, wantSuccess: true},
		"failure": {fnErr: errBoom, wantSuccess: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h := &mockHandler{}
			called := false

			err := Run(h, "execute", func() error {
				called = true
				return tt.fnErr
			})

			assert.True(t, called)
			assert.Equal(t, tt.fnErr, err)
			assert.Equal(t, []string{"execute"}, h.starts)
			calls := h.getCompletes()
			require.Len(t, calls, 1)
			assert.Equal(t, "execute", calls[0].name)
			assert.Equal(t, tt.wantSuccess, calls[0].success)
		})
	}
}

func TestRun_MeasuresDuration(t *testing.T) {
	t.Parallel()

	h := &mockHandler{}
	_ = Run(h, "init", func() error {
		time.Sleep(20 * time.Millisecond)
		return nil
	})

	calls := h.getCompletes()
	require.Len(t, calls, 1)
	assert.GreaterOrEqual(t, calls[0].duration, 20*time.Millisecond)
}

func TestRun_NilHandler(t *testing.T) {
	t.Parallel()

	called := false
	err := Run(nil, "invoke", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRun_HandlerPanicsAreRecovered(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	h := &mockHandler{panicOnStart: true, panicOnFinish: true}

	err := Run(h, "execute", func() error { return errBoom })
	assert.Equal(t, errBoom, err)
}

func TestRunWithContext(t *testing.T) {
	t.Parallel()

	t.Run("runs fn with the context", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		h := &mockHandler{}

		err := RunWithContext(ctx, h, "generateText", func(ctx context.Context) error {
			assert.Equal(t, "v", ctx.Value(key{}))
			return nil
		})
		assert.NoError(t, err)
		assert.Len(t, h.getCompletes(), 1)
	})

	t.Run("cancelled context skips fn", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		h := &mockHandler{}

		err := RunWithContext(ctx, h, "execute", func(context.Context) error {
			t.Error("fn must not run")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, h.starts)
		calls := h.getCompletes()
		require.Len(t, calls, 1)
		assert.False(t, calls[0].success)
	})
}

func TestHandlers(t *testing.T) {
	t.Parallel()

	a, b := &mockHandler{}, &mockHandler{panicOnStart: true}
	hs := Handlers{a, nil, b}

	err := Run(hs, "execute", func() error { return nil })
	require.NoError(t, err)

	assert.Equal(t, []string{"execute"}, a.starts)
	assert.Len(t, a.getCompletes(), 1)
	assert.Len(t, b.getCompletes(), 1, "a panicking start must not skip completion")
}
