package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/playerkit/errors"
)

func registryWith(t *testing.T, names ...string) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, name := range names {
		require.NoError(t, reg.Register(name, Define(Traits{Name: name})))
	}
	return reg
}

func TestAddChildNamed(t *testing.T) {
	deps := Dependencies{Registry: registryWith(t, "ControlBar")}
	root, err := Define(Traits{Name: "Root"}).NewRoot(nil, nil, deps)
	require.NoError(t, err)
	defer func() { _ = root.Dispose() }()

	child, err := root.AddChildNamed("controlBar", Options{"width": 200})
	require.NoError(t, err)

	assert.Equal(t, "controlBar", child.Name())
	assert.Equal(t, "ControlBar", child.Definition().Name())
	assert.Same(t, child, root.GetChild("controlBar"))
	assert.Same(t, child, root.GetChildByID(child.ID()))
	assert.Same(t, root.ContentEl(), child.El().Parent())

	opts, err := child.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, 200, opts.GetInt("width", 0))
}

func TestAddChildNamed_ComponentClassOverride(t *testing.T) {
	deps := Dependencies{Registry: registryWith(t, "FancyBar")}
	root, err := Define(Traits{Name: "Root"}).NewRoot(nil, nil, deps)
	require.NoError(t, err)
	defer func() { _ = root.Dispose() }()

	child, err := root.AddChildNamed("myBar", Options{"componentClass": "FancyBar"})
	require.NoError(t, err)
	assert.Equal(t, "FancyBar", child.Definition().Name())
	assert.Equal(t, "myBar", child.Name())
}

func TestAddChildNamed_UnknownType(t *testing.T) {
	root := newTestRoot(t, nil)

	_, err := root.AddChildNamed("nothing", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownComponent))
}

func TestAddChildNamed_InvalidName(t *testing.T) {
	root := newTestRoot(t, nil)
	_, err := root.AddChildNamed("bad name", nil)
	assert.Error(t, err)
}

func TestInitChildren_OrderedSlice(t *testing.T) {
	deps := Dependencies{Registry: registryWith(t, "Alpha", "Beta", "Gamma")}

	opts := Options{"children": []any{
		"beta",
		map[string]any{"name": "alpha", "volume": 3},
		"gamma",
	}}
	root, err := Define(Traits{Name: "Root"}).NewRoot(opts, nil, deps)
	require.NoError(t, err)
	defer func() { _ = root.Dispose() }()

	kids := root.Children()
	require.Len(t, kids, 3)
	assert.Equal(t, "beta", kids[0].Name())
	assert.Equal(t, "alpha", kids[1].Name())
	assert.Equal(t, "gamma", kids[2].Name())

	alphaOpts, err := kids[1].Options(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, alphaOpts.GetInt("volume", 0))
}

func TestInitChildren_MapFormSortedAndOptOut(t *testing.T) {
	deps := Dependencies{Registry: registryWith(t, "Alpha", "Beta", "Gamma")}

	opts := Options{"children": Options{
		"gamma": Options{},
		"alpha": Options{"volume": 1},
		"beta":  false, // explicit opt-out
	}}
	root, err := Define(Traits{Name: "Root"}).NewRoot(opts, nil, deps)
	require.NoError(t, err)
	defer func() { _ = root.Dispose() }()

	kids := root.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "alpha", kids[0].Name())
	assert.Equal(t, "gamma", kids[1].Name())
	assert.Nil(t, root.GetChild("beta"))
}

func TestInitChildren_UnknownChildSkippedWithWarning(t *testing.T) {
	warnings := captureWarnings(t)
	deps := Dependencies{Registry: registryWith(t, "Alpha")}

	opts := Options{"children": []any{"alpha", "ghost"}}
	root, err := Define(Traits{Name: "Root"}).NewRoot(opts, nil, deps)
	require.NoError(t, err)
	defer func() { _ = root.Dispose() }()

	require.Len(t, root.Children(), 1)
	assert.True(t, warnings.contains("skipping unregistered child component"))
}

func TestInitChildren_DisabledViaOption(t *testing.T) {
	deps := Dependencies{Registry: registryWith(t, "Alpha")}

	opts := Options{
		"children":     []any{"alpha"},
		"initChildren": false,
	}
	root, err := Define(Traits{Name: "Root"}).NewRoot(opts, nil, deps)
	require.NoError(t, err)
	defer func() { _ = root.Dispose() }()

	assert.Empty(t, root.Children())
}

func TestAddChild_Validation(t *testing.T) {
	root := newTestRoot(t, nil)

	_, err := root.AddChild(nil)
	assert.Error(t, err)

	_, err = root.AddChild(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSelfAdoption))

	dead, err := Define(Traits{Name: "Dead"}).New(root, nil, nil)
	require.NoError(t, err)
	require.NoError(t, dead.Dispose())
	_, err = root.AddChild(dead)
	assert.True(t, errors.Is(err, errors.ErrDisposed))
}

func TestAddChild_LeafWarning(t *testing.T) {
	warnings := captureWarnings(t)

	leaf := newTestRoot(t, nil)
	leaf.El().SetData(LeafDataKey, true)

	child, err := Define(Traits{Name: "Extra"}).New(leaf, nil, nil)
	require.NoError(t, err)
	_, err = leaf.AddChild(child)
	require.NoError(t, err)

	assert.True(t, warnings.contains("adding a child to a leaf-style component"))
}

func TestRemoveChild_TransfersWithoutDisposing(t *testing.T) {
	root := newTestRoot(t, nil)

	child, err := Define(Traits{Name: "Movable"}).New(root, Options{"name": "mv"}, nil)
	require.NoError(t, err)
	_, err = root.AddChild(child)
	require.NoError(t, err)

	root.RemoveChild(child)

	assert.False(t, child.Disposed())
	assert.Nil(t, root.GetChild("mv"))
	assert.Nil(t, root.GetChildByID(child.ID()))
	assert.Nil(t, child.El().Parent())
	assert.Empty(t, root.Children())
}

func TestRemoveChild_DuplicateNamesRemovesNewest(t *testing.T) {
	root := newTestRoot(t, nil)

	older, err := Define(Traits{Name: "Dup"}).New(root, Options{"name": "dup"}, nil)
	require.NoError(t, err)
	newer, err := Define(Traits{Name: "Dup"}).New(root, Options{"name": "dup"}, nil)
	require.NoError(t, err)

	_, err = root.AddChild(older)
	require.NoError(t, err)
	_, err = root.AddChild(newer)
	require.NoError(t, err)

	// The name index points at the most recently added duplicate; removing by
	// name therefore takes the newest instance and leaves the older one.
	root.RemoveChildNamed("dup")

	kids := root.Children()
	require.Len(t, kids, 1)
	assert.Same(t, older, kids[0])
	assert.False(t, newer.Disposed())
}

func TestRemoveChild_NonChildNoOp(t *testing.T) {
	root := newTestRoot(t, nil)
	stranger := newTestRoot(t, nil)

	root.RemoveChild(stranger)
	root.RemoveChild(nil)
	root.RemoveChildNamed("ghost")

	assert.Empty(t, root.Children())
}

func TestRemoveChild_ForeignElementNotDetached(t *testing.T) {
	root := newTestRoot(t, nil)

	child, err := Define(Traits{Name: "Wanderer"}).New(root, nil, nil)
	require.NoError(t, err)
	_, err = root.AddChild(child)
	require.NoError(t, err)

	// The element has since been re-homed; removal must not rip it out of its
	// new parent.
	elsewhere := newTestRoot(t, nil)
	elsewhere.ContentEl().AppendChild(child.El())

	root.RemoveChild(child)
	assert.Same(t, elsewhere.ContentEl(), child.El().Parent())
}

func TestRemoveChild_AfterDisposeNoOp(t *testing.T) {
	root := newTestRoot(t, nil)
	child, err := Define(Traits{Name: "Kid"}).New(root, nil, nil)
	require.NoError(t, err)
	_, err = root.AddChild(child)
	require.NoError(t, err)

	require.NoError(t, root.Dispose())
	root.RemoveChild(child) // must not panic
}
