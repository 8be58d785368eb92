package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/playerkit/dom"
	"github.com/c360/playerkit/errors"
)

func TestClassHelpers(t *testing.T) {
	root := newTestRoot(t, nil)

	require.NoError(t, root.AddClass("pk-fluid"))
	assert.True(t, root.HasClass("pk-fluid"))

	require.NoError(t, root.RemoveClass("pk-fluid"))
	assert.False(t, root.HasClass("pk-fluid"))

	on, err := root.ToggleClass("pk-big")
	require.NoError(t, err)
	assert.True(t, on)
	on, err = root.ToggleClass("pk-big")
	require.NoError(t, err)
	assert.False(t, on)
}

func TestShowHideVisible(t *testing.T) {
	root := newTestRoot(t, nil)

	assert.True(t, root.Visible())
	require.NoError(t, root.Hide())
	assert.False(t, root.Visible())
	assert.True(t, root.HasClass("pk-hidden"))
	require.NoError(t, root.Show())
	assert.True(t, root.Visible())
}

func TestDimensions(t *testing.T) {
	root := newTestRoot(t, nil)

	assert.Equal(t, 0, root.Width())
	assert.Equal(t, 0, root.Height())

	var resizes int
	_, err := root.On(EventResize, func(*Component, *dom.Event) { resizes++ })
	require.NoError(t, err)

	require.NoError(t, root.SetWidth(640))
	require.NoError(t, root.SetHeight(360))
	assert.Equal(t, 640, root.Width())
	assert.Equal(t, 360, root.Height())
	assert.Equal(t, 2, resizes)

	require.NoError(t, root.SetDimensions(1280, 720))
	w, h := root.Dimensions()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
	assert.Equal(t, 3, resizes, "SetDimensions fires a single resize")

	require.NoError(t, root.SetDimensionsQuiet(320, 240))
	assert.Equal(t, 3, resizes, "quiet form fires no resize")
	assert.Equal(t, 320, root.Width())
}

func TestDimensions_DisposedComponent(t *testing.T) {
	root := newTestRoot(t, nil)
	require.NoError(t, root.Dispose())

	assert.False(t, root.Visible())
	assert.False(t, root.HasClass("anything"))
	assert.Equal(t, 0, root.Width())

	err := root.SetWidth(10)
	assert.True(t, errors.Is(err, errors.ErrDisposed))
	assert.True(t, errors.Is(root.Hide(), errors.ErrDisposed))
}
