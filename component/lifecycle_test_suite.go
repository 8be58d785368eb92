package component

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/playerkit/dom"
	"github.com/c360/playerkit/errors"
)

// LifecycleFactory builds a fresh root component for testing. Each call must
// return an independent instance.
type LifecycleFactory func() (*Component, error)

// StandardLifecycleTests runs the shared construct/ready/dispose test battery
// against any component definition. Every definition shipped with the toolkit
// is expected to pass it unchanged.
func StandardLifecycleTests(t *testing.T, factory LifecycleFactory) {
	t.Run("Compliance", func(t *testing.T) {
		testLifecycleCompliance(t, factory)
	})
	t.Run("ErrorPaths", func(t *testing.T) {
		testLifecycleErrorPaths(t, factory)
	})
	t.Run("Concurrent", func(t *testing.T) {
		testConcurrentLifecycle(t, factory)
	})
	t.Run("NoLeaks", func(t *testing.T) {
		testNoResourceLeaks(t, factory)
	})
}

func newSuiteComponent(t *testing.T, factory LifecycleFactory) *Component {
	t.Helper()
	comp, err := factory()
	require.NoError(t, err, "component factory failed")
	require.NotNil(t, comp, "component factory returned nil")
	return comp
}

func testLifecycleCompliance(t *testing.T, factory LifecycleFactory) {
	tests := []struct {
		name string
		test func(t *testing.T, comp *Component)
	}{
		{"Construct", testConstruct},
		{"ReadyQueue", testReadyQueue},
		{"ReadyAfterReady", testReadyAfterReady},
		{"TriggerReadyIdempotent", testTriggerReadyIdempotent},
		{"Dispose", testDispose},
		{"DoubleDispose", testDoubleDispose},
		{"DisposeReleasesTimers", testDisposeReleasesTimers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.test(t, newSuiteComponent(t, factory))
		})
	}
}

func testConstruct(t *testing.T, comp *Component) {
	assert.NotEmpty(t, comp.ID())
	assert.NotEmpty(t, comp.Name())
	assert.NotNil(t, comp.El(), "root components carry an element")
	assert.False(t, comp.Disposed())
	assert.NoError(t, comp.Dispose())
}

func testReadyQueue(t *testing.T, comp *Component) {
	defer func() { _ = comp.Dispose() }()

	var order []int
	require.NoError(t, comp.Ready(func(*Component) { order = append(order, 1) }))
	require.NoError(t, comp.Ready(func(*Component) { order = append(order, 2) }))
	assert.Empty(t, order, "callbacks queue until the ready transition")

	require.NoError(t, comp.TriggerReady())
	assert.Equal(t, []int{1, 2}, order)
	assert.True(t, comp.IsReady())
}

func testReadyAfterReady(t *testing.T, comp *Component) {
	defer func() { _ = comp.Dispose() }()

	require.NoError(t, comp.TriggerReady())

	ran := false
	require.NoError(t, comp.Ready(func(*Component) { ran = true }))
	assert.True(t, ran, "callbacks run synchronously once ready")
}

func testTriggerReadyIdempotent(t *testing.T, comp *Component) {
	defer func() { _ = comp.Dispose() }()

	calls := 0
	require.NoError(t, comp.Ready(func(*Component) { calls++ }))
	require.NoError(t, comp.TriggerReady())
	require.NoError(t, comp.TriggerReady())
	assert.Equal(t, 1, calls)
}

func testDispose(t *testing.T, comp *Component) {
	require.NoError(t, comp.Dispose())

	assert.True(t, comp.Disposed())
	assert.Nil(t, comp.El())
	assert.Empty(t, comp.Children())
	assert.Equal(t, 0, comp.ActiveTimers())
}

func testDoubleDispose(t *testing.T, comp *Component) {
	require.NoError(t, comp.Dispose())

	err := comp.Dispose()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDisposed))
}

func testDisposeReleasesTimers(t *testing.T, comp *Component) {
	_, err := comp.SetTimeout(time.Hour, func(*Component) {})
	require.NoError(t, err)
	_, err = comp.SetInterval(time.Hour, func(*Component) {})
	require.NoError(t, err)
	require.Equal(t, 2, comp.ActiveTimers())

	require.NoError(t, comp.Dispose())
	assert.Equal(t, 0, comp.ActiveTimers())
}

func testLifecycleErrorPaths(t *testing.T, factory LifecycleFactory) {
	tests := []struct {
		name      string
		operation func(*Component) error
	}{
		{"ready_after_dispose", func(c *Component) error {
			return c.Ready(func(*Component) {})
		}},
		{"trigger_ready_after_dispose", func(c *Component) error {
			return c.TriggerReady()
		}},
		{"on_after_dispose", func(c *Component) error {
			_, err := c.On("tick", func(*Component, *dom.Event) {})
			return err
		}},
		{"trigger_after_dispose", func(c *Component) error {
			return c.Trigger("tick", nil)
		}},
		{"set_timeout_after_dispose", func(c *Component) error {
			_, err := c.SetTimeout(time.Millisecond, func(*Component) {})
			return err
		}},
		{"set_width_after_dispose", func(c *Component) error {
			return c.SetWidth(100)
		}},
		{"add_child_after_dispose", func(c *Component) error {
			_, err := c.AddChildNamed("anything", nil)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := newSuiteComponent(t, factory)
			require.NoError(t, comp.Dispose())

			err := tt.operation(comp)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrDisposed),
				"disposed components must fail fast: %v", err)
		})
	}
}

func testConcurrentLifecycle(t *testing.T, factory LifecycleFactory) {
	t.Run("ConcurrentDispose", func(t *testing.T) {
		comp := newSuiteComponent(t, factory)

		const callers = 20
		results := make([]error, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx] = comp.Dispose()
			}(i)
		}
		wg.Wait()

		wins := 0
		for _, err := range results {
			if err == nil {
				wins++
			} else {
				assert.True(t, errors.Is(err, errors.ErrDisposed))
			}
		}
		assert.Equal(t, 1, wins, "exactly one Dispose call wins")
	})

	t.Run("ConcurrentListenAndTrigger", func(t *testing.T) {
		comp := newSuiteComponent(t, factory)
		defer func() { _ = comp.Dispose() }()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = comp.On("tick", func(*Component, *dom.Event) {})
			}()
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = comp.Trigger("tick", nil)
			}()
		}
		wg.Wait()

		assert.Equal(t, 10, comp.El().ListenerCount("tick"))
	})

	t.Run("StressTest", func(t *testing.T) {
		if testing.Short() {
			t.Skip("skipping stress test in short mode")
		}

		const iterations = 50
		const concurrency = 8

		var wg sync.WaitGroup
		for i := 0; i < concurrency; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < iterations; j++ {
					comp, err := factory()
					if err != nil {
						t.Error(err)
						return
					}
					_ = comp.Ready(func(*Component) {})
					_ = comp.TriggerReady()
					_, _ = comp.SetTimeout(time.Hour, func(*Component) {})
					_ = comp.Dispose()
				}
			}()
		}
		wg.Wait()
	})
}

func testNoResourceLeaks(t *testing.T, factory LifecycleFactory) {
	if testing.Short() {
		t.Skip("skipping resource leak test in short mode")
	}

	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	initialGoroutines := runtime.NumGoroutine()

	const iterations = 500
	for i := 0; i < iterations; i++ {
		comp, err := factory()
		require.NoError(t, err)

		_, err = comp.On("tick", func(*Component, *dom.Event) {})
		require.NoError(t, err)
		_, err = comp.SetInterval(time.Hour, func(*Component) {})
		require.NoError(t, err)
		require.NoError(t, comp.TriggerReady())
		require.NoError(t, comp.Dispose())

		if i%100 == 99 {
			runtime.GC()
		}
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	finalGoroutines := runtime.NumGoroutine()
	growth := finalGoroutines - initialGoroutines
	if growth > 5 {
		t.Errorf("goroutine count grew by %d (initial: %d, final: %d)",
			growth, initialGoroutines, finalGoroutines)
	}
}
