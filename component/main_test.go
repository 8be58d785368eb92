package component

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// testDeps returns a dependency set with a fresh registry so tests never see
// each other's registrations.
func testDeps() Dependencies {
	return Dependencies{Registry: NewRegistry()}
}

// newTestRoot constructs a root component of an anonymous test definition.
func newTestRoot(t *testing.T, opts Options) *Component {
	t.Helper()
	c, err := Define(Traits{Name: "TestRoot"}).NewRoot(opts, nil, testDeps())
	require.NoError(t, err)
	t.Cleanup(func() {
		if !c.Disposed() {
			_ = c.Dispose()
		}
	})
	return c
}

// recordingHandler captures warning-channel records for assertions.
type recordingHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) all() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.messages))
	copy(out, h.messages)
	return out
}

func (h *recordingHandler) contains(substr string) bool {
	for _, m := range h.all() {
		if m == substr {
			return true
		}
	}
	return false
}

// captureWarnings routes the package warning channel into a recorder for the
// duration of the test.
func captureWarnings(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	SetWarningLogger(slog.New(h))
	t.Cleanup(func() { SetWarningLogger(nil) })
	return h
}
