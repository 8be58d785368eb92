package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/playerkit/dom"
)

func touchCoords(x, y float64) map[string]any {
	return map[string]any{"pageX": x, "pageY": y}
}

func TestEmitTapEvents_QuickTouchSynthesizesTap(t *testing.T) {
	root := newTestRoot(t, Options{"emitTapEvents": true})

	taps := 0
	_, err := root.On(EventTap, func(*Component, *dom.Event) { taps++ })
	require.NoError(t, err)

	require.NoError(t, root.Trigger(EventTouchStart, touchCoords(100, 100)))
	require.NoError(t, root.Trigger(EventTouchEnd, nil))

	assert.Equal(t, 1, taps)
}

func TestEmitTapEvents_MovementCancelsTap(t *testing.T) {
	root := newTestRoot(t, Options{"emitTapEvents": true})

	taps := 0
	_, err := root.On(EventTap, func(*Component, *dom.Event) { taps++ })
	require.NoError(t, err)

	require.NoError(t, root.Trigger(EventTouchStart, touchCoords(100, 100)))
	require.NoError(t, root.Trigger(EventTouchMove, touchCoords(150, 100)))
	require.NoError(t, root.Trigger(EventTouchEnd, nil))

	assert.Equal(t, 0, taps)
}

func TestEmitTapEvents_SmallMovementStillTaps(t *testing.T) {
	root := newTestRoot(t, Options{"emitTapEvents": true})

	taps := 0
	_, err := root.On(EventTap, func(*Component, *dom.Event) { taps++ })
	require.NoError(t, err)

	require.NoError(t, root.Trigger(EventTouchStart, touchCoords(100, 100)))
	require.NoError(t, root.Trigger(EventTouchMove, touchCoords(104, 103)))
	require.NoError(t, root.Trigger(EventTouchEnd, nil))

	assert.Equal(t, 1, taps)
}

func TestEmitTapEvents_SlowTouchIsNotATap(t *testing.T) {
	root := newTestRoot(t, Options{"emitTapEvents": true})

	taps := 0
	_, err := root.On(EventTap, func(*Component, *dom.Event) { taps++ })
	require.NoError(t, err)

	require.NoError(t, root.Trigger(EventTouchStart, touchCoords(100, 100)))
	time.Sleep(touchTimeThreshold + 50*time.Millisecond)
	require.NoError(t, root.Trigger(EventTouchEnd, nil))

	assert.Equal(t, 0, taps)
}

func TestEmitTapEvents_EndWithoutStart(t *testing.T) {
	root := newTestRoot(t, Options{"emitTapEvents": true})

	taps := 0
	_, err := root.On(EventTap, func(*Component, *dom.Event) { taps++ })
	require.NoError(t, err)

	require.NoError(t, root.Trigger(EventTouchEnd, nil))
	assert.Equal(t, 0, taps)
}

func TestReportUserActivity_ReachesRoot(t *testing.T) {
	root := newTestRoot(t, nil)
	child, err := Define(Traits{Name: "Inner"}).New(root, nil, nil)
	require.NoError(t, err)
	_, err = root.AddChild(child)
	require.NoError(t, err)

	var source any
	_, err = root.On(EventUserActivity, func(_ *Component, ev *dom.Event) {
		source = ev.Data["source"]
	})
	require.NoError(t, err)

	child.ReportUserActivity()
	assert.Equal(t, child.ID(), source)
}

func TestTouchActivity_ForwardedByDefault(t *testing.T) {
	root := newTestRoot(t, nil)

	reports := 0
	_, err := root.On(EventUserActivity, func(*Component, *dom.Event) { reports++ })
	require.NoError(t, err)

	require.NoError(t, root.Trigger(EventTouchStart, nil))
	require.NoError(t, root.Trigger(EventTouchEnd, nil))
	assert.Equal(t, 2, reports)
}

func TestTouchActivity_Suppressible(t *testing.T) {
	root := newTestRoot(t, Options{"reportTouchActivity": false})

	reports := 0
	_, err := root.On(EventUserActivity, func(*Component, *dom.Event) { reports++ })
	require.NoError(t, err)

	require.NoError(t, root.Trigger(EventTouchStart, nil))
	assert.Equal(t, 0, reports)
}
