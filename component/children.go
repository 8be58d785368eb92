package component

import (
	"sort"

	"github.com/c360/playerkit/errors"
)

// childDecl is one entry from a `children` option, normalized from either
// the ordered-slice or the map form.
type childDecl struct {
	name     string
	opts     Options
	disabled bool
}

// initChildren walks the merged `children` option and constructs each
// declared child in order. Two shapes are accepted: an ordered []any of
// names or {name: ..., option...} maps, and a map of name → options. The map
// form is constructed in sorted-name order so tree construction is
// deterministic. A child whose value is explicitly falsey is an opt-out and
// is skipped.
//
// An unresolvable child name is a configuration error, not a fatal one: the
// child is skipped with a warning and construction continues, matching the
// declarative contract that the host validates configuration upstream.
func (c *Component) initChildren() error {
	decls := childDeclarations(c.opts["children"])
	for _, decl := range decls {
		if decl.disabled {
			continue
		}
		if _, err := c.AddChildNamed(decl.name, decl.opts); err != nil {
			if errors.Is(err, errors.ErrUnknownComponent) {
				warningLogger().Warn("skipping unregistered child component",
					"parent", c.def.Name(), "child", decl.name)
				continue
			}
			return errors.Wrap(err, c.def.Name(), "initChildren", "child construction")
		}
	}
	return nil
}

func childDeclarations(v any) []childDecl {
	switch children := v.(type) {
	case []any:
		decls := make([]childDecl, 0, len(children))
		for _, entry := range children {
			switch e := entry.(type) {
			case string:
				decls = append(decls, childDecl{name: e})
			case Options:
				decls = append(decls, declFromMap(e))
			case map[string]any:
				decls = append(decls, declFromMap(Options(e)))
			}
		}
		return decls
	case Options:
		return declsFromNamedMap(children)
	case map[string]any:
		return declsFromNamedMap(Options(children))
	default:
		return nil
	}
}

func declFromMap(m Options) childDecl {
	name := m.GetString("name", "")
	opts := m.Clone()
	delete(opts, "name")
	return childDecl{name: name, opts: opts, disabled: name == ""}
}

func declsFromNamedMap(m Options) []childDecl {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	decls := make([]childDecl, 0, len(names))
	for _, name := range names {
		if m.IsExplicitlyDisabled(name) {
			decls = append(decls, childDecl{name: name, disabled: true})
			continue
		}
		opts, _ := asOptions(m[name])
		decls = append(decls, childDecl{name: name, opts: opts.Clone()})
	}
	return decls
}

// AddChildNamed resolves name through the registry and constructs a new
// child under this component. The registry key is the title-cased name
// unless opts carries a componentClass override. The child's owner is this
// component's player (or this component itself, for a root), and its `name`
// option is forced to name so the child is addressable through the name
// index. Returns the constructed child.
func (c *Component) AddChildNamed(name string, opts Options) (*Component, error) {
	if c.Disposed() {
		return nil, errors.WrapFatal(errors.ErrDisposed, c.def.Name(), "AddChildNamed", "child construction")
	}
	if err := ValidateComponentName(name); err != nil {
		return nil, errors.Wrap(err, c.def.Name(), "AddChildNamed", "name validation")
	}

	typeName := TitleCase(name)
	if opts != nil {
		typeName = opts.GetString("componentClass", typeName)
	}

	def, ok := c.deps.GetRegistry().Get(typeName)
	if !ok {
		return nil, errors.WrapInvalid(errors.ErrUnknownComponent, c.def.Name(), "AddChildNamed", "registry lookup of "+typeName)
	}

	childOpts := Merge(Options{"name": name}, opts)
	child, err := def.New(c.ownerForChildren(), childOpts, nil)
	if err != nil {
		return nil, errors.Wrap(err, c.def.Name(), "AddChildNamed", "child construction")
	}
	return c.adopt(child)
}

// AddChild adopts an already-constructed component as the last child of this
// one. The child keeps its identity; its element, when present, is appended
// to this component's content element. Returns the child.
func (c *Component) AddChild(child *Component) (*Component, error) {
	return c.adopt(child)
}

// ownerForChildren is the owner reference passed to children constructed
// under this component: the player, or this component when it is the root.
func (c *Component) ownerForChildren() *Component {
	if p := c.Player(); p != nil {
		return p
	}
	return c
}

func (c *Component) adopt(child *Component) (*Component, error) {
	if child == nil {
		return nil, errors.WrapInvalid(errors.ErrNilTarget, c.def.Name(), "AddChild", "child validation")
	}
	if child == c {
		return nil, errors.WrapFatal(errors.ErrSelfAdoption, c.def.Name(), "AddChild", "child validation")
	}
	if child.Disposed() {
		return nil, errors.WrapFatal(errors.ErrDisposed, c.def.Name(), "AddChild", "child validation")
	}

	// Leaf-style components (buttons and the like) mark their element; adding
	// children under one still works but is almost always a mistake.
	if el := c.El(); el != nil {
		if _, leaf := el.Data(LeafDataKey); leaf {
			warningLogger().Warn("adding a child to a leaf-style component",
				"parent", c.def.Name(), "child", child.def.Name())
		}
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return nil, errors.WrapFatal(errors.ErrDisposed, c.def.Name(), "AddChild", "child adoption")
	}
	c.children = append(c.children, child)
	c.childByID[child.ID()] = child
	if name := child.Name(); name != "" {
		c.childByName[name] = child
	}
	contentEl := c.contentEl
	c.mu.Unlock()

	if el := child.El(); el != nil && contentEl != nil {
		contentEl.AppendChild(el)
	}
	return child, nil
}

// RemoveChild removes child from this component without disposing it, so
// ownership can transfer without destruction. Scanning runs from
// the end of the child list and removes only the first match, so when
// duplicate instances share a name the most recently added one is removed;
// this asymmetry with name-index resolution is deliberate and mirrors the
// established removal contract. The child's element is detached only when it
// is actually attached to this component's content element.
//
// Removing a component that is not a child, or removing from an already
// torn-down tree, is a no-op.
func (c *Component) RemoveChild(child *Component) {
	if child == nil {
		return
	}

	c.mu.Lock()
	if c.children == nil {
		c.mu.Unlock()
		return
	}
	found := false
	for i := len(c.children) - 1; i >= 0; i-- {
		if c.children[i] == child {
			c.children = append(c.children[:i:i], c.children[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		c.mu.Unlock()
		return
	}
	delete(c.childByID, child.ID())
	if name := child.Name(); name != "" && c.childByName[name] == child {
		delete(c.childByName, name)
	}
	contentEl := c.contentEl
	c.mu.Unlock()

	if el := child.El(); el != nil && contentEl != nil && el.Parent() == contentEl {
		contentEl.RemoveChild(el)
	}
}

// RemoveChildNamed resolves name through the name index and removes that
// child. Unknown names are a no-op.
func (c *Component) RemoveChildNamed(name string) {
	c.RemoveChild(c.GetChild(name))
}

// Children returns a copy of the ordered child list. After disposal it
// returns nil.
func (c *Component) Children() []*Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.children == nil {
		return nil
	}
	out := make([]*Component, len(c.children))
	copy(out, c.children)
	return out
}

// GetChild returns the child registered under name, or nil.
func (c *Component) GetChild(name string) *Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.childByName[name]
}

// GetChildByID returns the child with the given id, or nil.
func (c *Component) GetChildByID(id string) *Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.childByID[id]
}
