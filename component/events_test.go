package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/playerkit/dom"
	"github.com/c360/playerkit/errors"
)

func TestOn_ReceiverCapturedExplicitly(t *testing.T) {
	root := newTestRoot(t, nil)

	var receiver *Component
	var payload any
	_, err := root.On("play", func(c *Component, ev *dom.Event) {
		receiver = c
		payload = ev.Data["speed"]
	})
	require.NoError(t, err)

	require.NoError(t, root.Trigger("play", map[string]any{"speed": 2}))
	assert.Same(t, root, receiver)
	assert.Equal(t, 2, payload)
}

func TestOn_Validation(t *testing.T) {
	root := newTestRoot(t, nil)

	_, err := root.On("", func(*Component, *dom.Event) {})
	assert.True(t, errors.Is(err, errors.ErrEmptyEventType))

	_, err = root.On("x", nil)
	assert.True(t, errors.Is(err, errors.ErrNilHandler))

	assert.True(t, errors.Is(root.Trigger("", nil), errors.ErrEmptyEventType))
	assert.True(t, errors.Is(root.TriggerEvent(nil), errors.ErrEmptyEventType))
}

func TestOne_FiresExactlyOnce(t *testing.T) {
	root := newTestRoot(t, nil)

	count := 0
	sub, err := root.One("tick", func(*Component, *dom.Event) { count++ })
	require.NoError(t, err)
	assert.True(t, sub.Active())

	require.NoError(t, root.Trigger("tick", nil))
	require.NoError(t, root.Trigger("tick", nil))

	assert.Equal(t, 1, count)
	assert.False(t, sub.Active())
}

func TestOne_ReentrantTriggerStillOnce(t *testing.T) {
	root := newTestRoot(t, nil)

	count := 0
	_, err := root.One("tick", func(c *Component, _ *dom.Event) {
		count++
		// Re-triggering from inside the handler must not re-enter it.
		_ = c.Trigger("tick", nil)
	})
	require.NoError(t, err)

	require.NoError(t, root.Trigger("tick", nil))
	assert.Equal(t, 1, count)
}

func TestOne_CancelBeforeFire(t *testing.T) {
	root := newTestRoot(t, nil)

	count := 0
	sub, err := root.One("tick", func(*Component, *dom.Event) { count++ })
	require.NoError(t, err)

	sub.Cancel()
	require.NoError(t, root.Trigger("tick", nil))
	assert.Equal(t, 0, count)
}

func TestOff_RemovesSubscription(t *testing.T) {
	root := newTestRoot(t, nil)

	count := 0
	sub, err := root.On("tick", func(*Component, *dom.Event) { count++ })
	require.NoError(t, err)

	require.NoError(t, root.Trigger("tick", nil))
	root.Off(sub)
	root.Off(sub) // repeated cancel is a no-op
	root.Off(nil)
	require.NoError(t, root.Trigger("tick", nil))

	assert.Equal(t, 1, count)
}

func TestOnTarget_CrossComponentDelivery(t *testing.T) {
	listenerC := newTestRoot(t, nil)
	target := newTestRoot(t, nil)

	var receiver *Component
	sub, err := listenerC.OnTarget(target, "timeupdate", func(c *Component, _ *dom.Event) {
		receiver = c
	})
	require.NoError(t, err)
	assert.True(t, sub.Active())

	require.NoError(t, target.Trigger("timeupdate", nil))
	// The receiver is the component that subscribed, not the dispatcher.
	assert.Same(t, listenerC, receiver)
}

func TestOnTarget_OwnerDisposeDetaches(t *testing.T) {
	owner := newTestRoot(t, nil)
	target := newTestRoot(t, nil)

	fired := 0
	sub, err := owner.OnTarget(target, "timeupdate", func(*Component, *dom.Event) { fired++ })
	require.NoError(t, err)

	targetEl := target.El()
	before := targetEl.ListenerCount("timeupdate")

	require.NoError(t, owner.Dispose())

	// The forwarded listener and the mirror hook are both gone from the
	// still-alive target.
	assert.Equal(t, before-1, targetEl.ListenerCount("timeupdate"))
	assert.Equal(t, 0, targetEl.ListenerCount(EventDispose))
	assert.False(t, sub.Active())

	require.NoError(t, target.Trigger("timeupdate", nil))
	assert.Equal(t, 0, fired)

	// Target disposes cleanly afterwards.
	require.NoError(t, target.Dispose())
}

func TestOnTarget_TargetDisposeFirstThenOwner(t *testing.T) {
	owner := newTestRoot(t, nil)
	target := newTestRoot(t, nil)

	sub, err := owner.OnTarget(target, "timeupdate", func(*Component, *dom.Event) {})
	require.NoError(t, err)

	ownEl := owner.El()
	require.NoError(t, target.Dispose())

	// The target's dispose retired the subscription and removed the owner's
	// cleanup hook, so the owner carries no stale dispose listeners.
	assert.False(t, sub.Active())
	assert.Equal(t, 0, ownEl.ListenerCount(EventDispose))

	require.NoError(t, owner.Dispose())
}

func TestOnTarget_CancelRemovesAllThreeListeners(t *testing.T) {
	owner := newTestRoot(t, nil)
	target := newTestRoot(t, nil)

	sub, err := owner.OnTarget(target, "seek", func(*Component, *dom.Event) {})
	require.NoError(t, err)

	sub.Cancel()

	assert.Equal(t, 0, target.El().ListenerCount("seek"))
	assert.Equal(t, 0, target.El().ListenerCount(EventDispose))
	assert.Equal(t, 0, owner.El().ListenerCount(EventDispose))
}

func TestOnTarget_RawElementTarget(t *testing.T) {
	owner := newTestRoot(t, nil)
	el := dom.NewElement("div")

	fired := 0
	_, err := owner.OnTarget(ElementTarget(el), "custom", func(*Component, *dom.Event) { fired++ })
	require.NoError(t, err)

	el.DispatchEvent(dom.NewEvent("custom"))
	assert.Equal(t, 1, fired)
}

func TestOnTarget_Validation(t *testing.T) {
	owner := newTestRoot(t, nil)

	_, err := owner.OnTarget(nil, "x", func(*Component, *dom.Event) {})
	assert.True(t, errors.Is(err, errors.ErrNilTarget))

	headless, err := Define(Traits{Name: "Headless"}).NewRoot(Options{"createEl": false}, nil, testDeps())
	require.NoError(t, err)
	_, err = owner.OnTarget(headless, "x", func(*Component, *dom.Event) {})
	assert.True(t, errors.Is(err, errors.ErrNilTarget))
}

func TestOneTarget_FiresOnceAndCleansUp(t *testing.T) {
	owner := newTestRoot(t, nil)
	target := newTestRoot(t, nil)

	count := 0
	_, err := owner.OneTarget(target, "loaded", func(*Component, *dom.Event) { count++ })
	require.NoError(t, err)

	require.NoError(t, target.Trigger("loaded", nil))
	require.NoError(t, target.Trigger("loaded", nil))

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, target.El().ListenerCount("loaded"))
	assert.Equal(t, 0, owner.El().ListenerCount(EventDispose))
}

func TestOffAll_LocalOnly(t *testing.T) {
	owner := newTestRoot(t, nil)
	target := newTestRoot(t, nil)

	local, foreign := 0, 0
	_, err := owner.On("tick", func(*Component, *dom.Event) { local++ })
	require.NoError(t, err)
	fsub, err := owner.OnTarget(target, "tock", func(*Component, *dom.Event) { foreign++ })
	require.NoError(t, err)

	owner.OffAll()

	require.NoError(t, owner.Trigger("tick", nil))
	require.NoError(t, target.Trigger("tock", nil))

	assert.Equal(t, 0, local)
	assert.Equal(t, 1, foreign, "foreign subscriptions survive OffAll")
	assert.True(t, fsub.Active())
}

func TestTrigger_BubblesThroughComponentTree(t *testing.T) {
	root := newTestRoot(t, nil)
	child, err := Define(Traits{Name: "Inner"}).New(root, nil, nil)
	require.NoError(t, err)
	_, err = root.AddChild(child)
	require.NoError(t, err)

	var sawAtRoot int
	_, err = root.On("bubbled", func(*Component, *dom.Event) { sawAtRoot++ })
	require.NoError(t, err)

	require.NoError(t, child.Trigger("bubbled", nil))
	assert.Equal(t, 1, sawAtRoot)

	// Non-bubbling events stay on the child.
	ev := dom.NewEvent("bubbled")
	ev.Bubbles = false
	require.NoError(t, child.TriggerEvent(ev))
	assert.Equal(t, 1, sawAtRoot)
}

func TestSubscription_StaleHandleAfterOwnerDispose(t *testing.T) {
	owner := newTestRoot(t, nil)
	sub, err := owner.On("tick", func(*Component, *dom.Event) {})
	require.NoError(t, err)

	require.NoError(t, owner.Dispose())

	assert.False(t, sub.Active())
	sub.Cancel() // must be inert, not panic
}
