package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_RegistrationOrder(t *testing.T) {
	el := NewElement("div")

	var order []int
	el.AddEventListener("play", func(*Event) { order = append(order, 1) })
	el.AddEventListener("play", func(*Event) { order = append(order, 2) })
	el.AddEventListener("play", func(*Event) { order = append(order, 3) })

	el.DispatchEvent(NewEvent("play"))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestDispatch_TargetAndCurrentTarget(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("div")
	parent.AppendChild(child)

	var atChild, atParent *Element
	var target *Element
	child.AddEventListener("play", func(ev *Event) { atChild = ev.CurrentTarget })
	parent.AddEventListener("play", func(ev *Event) {
		atParent = ev.CurrentTarget
		target = ev.Target
	})

	child.DispatchEvent(NewEvent("play"))

	assert.Same(t, child, atChild)
	assert.Same(t, parent, atParent)
	assert.Same(t, child, target, "Target stays the dispatching element while bubbling")
}

func TestDispatch_BubblesThroughAncestors(t *testing.T) {
	root := NewElement("div")
	mid := NewElement("div")
	leaf := NewElement("div")
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	var path []string
	listen := func(el *Element, name string) {
		el.AddEventListener("seek", func(*Event) { path = append(path, name) })
	}
	listen(leaf, "leaf")
	listen(mid, "mid")
	listen(root, "root")

	leaf.DispatchEvent(NewEvent("seek"))
	assert.Equal(t, []string{"leaf", "mid", "root"}, path)
}

func TestDispatch_NonBubbling(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("div")
	parent.AppendChild(child)

	reached := false
	parent.AddEventListener("seek", func(*Event) { reached = true })

	ev := NewEvent("seek")
	ev.Bubbles = false
	child.DispatchEvent(ev)

	assert.False(t, reached)
}

func TestStopPropagation(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("div")
	parent.AppendChild(child)

	var childHits, parentHits int
	child.AddEventListener("seek", func(ev *Event) {
		childHits++
		ev.StopPropagation()
	})
	// A sibling listener on the same element still runs.
	child.AddEventListener("seek", func(*Event) { childHits++ })
	parent.AddEventListener("seek", func(*Event) { parentHits++ })

	child.DispatchEvent(NewEvent("seek"))

	assert.Equal(t, 2, childHits)
	assert.Equal(t, 0, parentHits)
}

func TestStopImmediatePropagation(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("div")
	parent.AppendChild(child)

	var childHits, parentHits int
	child.AddEventListener("seek", func(ev *Event) {
		childHits++
		ev.StopImmediatePropagation()
	})
	child.AddEventListener("seek", func(*Event) { childHits++ })
	parent.AddEventListener("seek", func(*Event) { parentHits++ })

	child.DispatchEvent(NewEvent("seek"))

	assert.Equal(t, 1, childHits, "later listeners on the same element are skipped")
	assert.Equal(t, 0, parentHits)
}

func TestPreventDefault(t *testing.T) {
	el := NewElement("div")
	el.AddEventListener("tap", func(ev *Event) { ev.PreventDefault() })

	ev := NewEvent("tap")
	el.DispatchEvent(ev)
	assert.True(t, ev.DefaultPrevented())
}

func TestOnceListener(t *testing.T) {
	el := NewElement("div")

	count := 0
	el.AddEventListenerOnce("tick", func(*Event) { count++ })
	assert.Equal(t, 1, el.ListenerCount("tick"))

	el.DispatchEvent(NewEvent("tick"))
	el.DispatchEvent(NewEvent("tick"))

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, el.ListenerCount("tick"))
}

func TestOnceListener_ReentrantDispatch(t *testing.T) {
	el := NewElement("div")

	count := 0
	el.AddEventListenerOnce("tick", func(*Event) {
		count++
		el.DispatchEvent(NewEvent("tick"))
	})

	el.DispatchEvent(NewEvent("tick"))
	assert.Equal(t, 1, count)
}

func TestRemoveEventListener(t *testing.T) {
	el := NewElement("div")

	count := 0
	id := el.AddEventListener("tick", func(*Event) { count++ })

	assert.True(t, el.RemoveEventListener("tick", id))
	assert.False(t, el.RemoveEventListener("tick", id), "second removal reports false")
	assert.False(t, el.RemoveEventListener("tick", ""))

	el.DispatchEvent(NewEvent("tick"))
	assert.Equal(t, 0, count)
}

func TestRemoveDuringDispatch(t *testing.T) {
	el := NewElement("div")

	var secondRan bool
	var secondID string
	el.AddEventListener("tick", func(*Event) {
		el.RemoveEventListener("tick", secondID)
	})
	secondID = el.AddEventListener("tick", func(*Event) { secondRan = true })

	// Dispatch works on a snapshot, so the second listener still runs this
	// round and is gone the next.
	el.DispatchEvent(NewEvent("tick"))
	assert.True(t, secondRan)

	secondRan = false
	el.DispatchEvent(NewEvent("tick"))
	assert.False(t, secondRan)
}

func TestRemoveAllListeners(t *testing.T) {
	el := NewElement("div")
	el.AddEventListener("a", func(*Event) {})
	el.AddEventListener("a", func(*Event) {})
	el.AddEventListener("b", func(*Event) {})

	el.RemoveAllListeners()
	assert.Equal(t, 0, el.ListenerCount("a"))
	assert.Equal(t, 0, el.ListenerCount("b"))
}

func TestDispatch_DegenerateEvents(t *testing.T) {
	el := NewElement("div")
	hit := false
	el.AddEventListener("", func(*Event) { hit = true })

	el.DispatchEvent(nil)
	el.DispatchEvent(NewEvent(""))
	assert.False(t, hit)
}

func TestMergeData(t *testing.T) {
	ev := NewEvent("tap")
	ev.MergeData(nil)
	assert.Nil(t, ev.Data)

	ev.MergeData(map[string]any{"x": 1})
	ev.MergeData(map[string]any{"x": 2, "y": 3})
	assert.Equal(t, 2, ev.Data["x"])
	assert.Equal(t, 3, ev.Data["y"])

	require.True(t, NewEvent("tap").Bubbles, "events bubble by default")
}

func TestNilHandlerIgnored(t *testing.T) {
	el := NewElement("div")
	id := el.AddEventListener("tick", nil)
	assert.Empty(t, id)
	assert.Equal(t, 0, el.ListenerCount("tick"))
}
