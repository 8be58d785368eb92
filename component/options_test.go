package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_OverrideWins(t *testing.T) {
	base := Options{"a": 1, "b": "base"}
	over := Options{"b": "override", "c": true}

	got := Merge(base, over)

	assert.Equal(t, 1, got["a"])
	assert.Equal(t, "override", got["b"])
	assert.Equal(t, true, got["c"])
}

func TestMerge_RecursesIntoMaps(t *testing.T) {
	base := Options{"nested": Options{"keep": 1, "replace": "old"}}
	over := Options{"nested": map[string]any{"replace": "new", "add": 2}}

	got := Merge(base, over)

	nested := got.GetOptions("nested")
	require.NotNil(t, nested)
	assert.Equal(t, 1, nested["keep"])
	assert.Equal(t, "new", nested["replace"])
	assert.Equal(t, 2, nested["add"])
}

func TestMerge_NonMapReplacesWholesale(t *testing.T) {
	base := Options{"list": []any{"a", "b"}, "m": Options{"x": 1}}
	over := Options{"list": []any{"c"}, "m": false}

	got := Merge(base, over)

	assert.Equal(t, []any{"c"}, got["list"])
	// A falsey override replaces a map entirely; that is the opt-out shape.
	assert.Equal(t, false, got["m"])
}

func TestMerge_NeverAliasesInputs(t *testing.T) {
	base := Options{"nested": Options{"k": "base"}, "list": []any{1, 2}}
	over := Options{"nested": Options{"k": "over"}, "list": []any{3}}

	got := Merge(base, over)

	// Mutating the inputs afterwards must not leak into the result.
	base["nested"].(Options)["k"] = "mutated"
	over["nested"].(Options)["k"] = "mutated"
	over["list"].([]any)[0] = 99

	assert.Equal(t, "over", got.GetOptions("nested")["k"])
	assert.Equal(t, []any{3}, got["list"])

	// And mutating the result must not leak back.
	got.GetOptions("nested")["k"] = "changed"
	assert.Equal(t, "mutated", over["nested"].(Options)["k"])
}

func TestMerge_AssociativeOnDisjointPaths(t *testing.T) {
	a := Options{
		"volume":   5,
		"children": Options{"controlBar": Options{"width": 300}},
	}
	b := Options{
		"muted":    true,
		"children": Options{"bigPlayButton": Options{"label": "play"}},
	}
	c := Options{
		"width":    640,
		"children": Options{"loadingSpinner": Options{"delay": 100}},
	}

	// b and c touch disjoint paths, so folding them in one at a time must
	// produce the same tree as merging a pre-combined override set.
	folded := Merge(Merge(a, b), c)
	combined := Merge(a, Merge(b, c))

	assert.Equal(t, folded, combined)

	children := folded.GetOptions("children")
	require.NotNil(t, children)
	assert.Equal(t, 300, children.GetOptions("controlBar").GetInt("width", 0))
	assert.Equal(t, "play", children.GetOptions("bigPlayButton").GetString("label", ""))
	assert.Equal(t, 100, children.GetOptions("loadingSpinner").GetInt("delay", 0))
}

func TestMerge_NilSides(t *testing.T) {
	over := Options{"a": 1}
	assert.Equal(t, 1, Merge(nil, over)["a"])

	base := Options{"b": 2}
	got := Merge(base, nil)
	assert.Equal(t, 2, got["b"])
}

func TestMerge_ChildDisableScenario(t *testing.T) {
	defaults := Options{
		"children": Options{
			"foo": Options{"volume": 11},
			"bar": Options{},
		},
	}
	overrides := Options{
		"children": Options{
			"foo": false,
			"bar": Options{"width": 100},
		},
	}

	got := Merge(defaults, overrides)

	children := got.GetOptions("children")
	require.NotNil(t, children)
	assert.True(t, children.IsExplicitlyDisabled("foo"))
	assert.False(t, children.IsExplicitlyDisabled("bar"))
	assert.Equal(t, 100, children.GetOptions("bar").GetInt("width", 0))
}

func TestClone_DeepCopies(t *testing.T) {
	src := Options{"nested": map[string]any{"k": []any{1, 2}}}

	clone := src.Clone()
	clone.GetOptions("nested")["k"].([]any)[0] = 99

	assert.Equal(t, 1, src.GetOptions("nested")["k"].([]any)[0])
	assert.Nil(t, Options(nil).Clone())
}

func TestOptions_Getters(t *testing.T) {
	o := Options{
		"s":     "text",
		"b":     true,
		"i":     3,
		"i64":   int64(4),
		"f":     float64(5),
		"m":     map[string]any{"k": 1},
		"nilV":  nil,
		"false": false,
	}

	assert.Equal(t, "text", o.GetString("s", "d"))
	assert.Equal(t, "d", o.GetString("b", "d"))
	assert.True(t, o.GetBool("b", false))
	assert.True(t, o.GetBool("missing", true))
	assert.Equal(t, 3, o.GetInt("i", 0))
	assert.Equal(t, 4, o.GetInt("i64", 0))
	assert.Equal(t, 5, o.GetInt("f", 0))
	assert.Equal(t, 9, o.GetInt("s", 9))
	require.NotNil(t, o.GetOptions("m"))
	assert.Nil(t, o.GetOptions("s"))

	assert.True(t, o.IsExplicitlyDisabled("nilV"))
	assert.True(t, o.IsExplicitlyDisabled("false"))
	assert.False(t, o.IsExplicitlyDisabled("b"))
	assert.False(t, o.IsExplicitlyDisabled("missing"))
}
