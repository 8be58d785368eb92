package component

import (
	"strings"

	"github.com/c360/playerkit/dom"
)

// ElementFactory builds the backing element for a component during
// construction. The component is partially constructed when the factory
// runs: id, name, and merged options are set, the element is not.
type ElementFactory func(c *Component) *dom.Element

// InitFunc is a definition's constructor body, run after the element is
// acquired and before declared children are constructed. Init hooks run
// base-first along the extension chain.
type InitFunc func(c *Component) error

// ReadyFunc is a deferred callback invoked when the component transitions to
// ready, or synchronously if it already has.
type ReadyFunc func(c *Component)

// Traits is the property set copied onto a new Definition by Define and
// Extend. Zero-valued fields are inherited from the parent definition at use
// time, the way a prototype chain resolves missing properties.
type Traits struct {
	// Name is the class-style type name ("ControlBar"). Required for
	// registration; optional for anonymous intermediate types.
	Name string
	// Defaults are prototype-level default options, deep-merged over the
	// parent chain's defaults (derived keys win).
	Defaults Options
	// CreateElement overrides the backing element factory.
	CreateElement ElementFactory
	// CreateContent overrides the content element, the element children
	// render into when it differs from the component's own element.
	CreateContent ElementFactory
	// Init is the per-type constructor body.
	Init InitFunc
}

// Definition is a component type represented as data: defaults, an element
// factory, and init hooks, chained to a parent Definition. Definitions are
// immutable once created and may be shared freely.
type Definition struct {
	name          string
	base          *Definition
	defaults      Options
	createElement ElementFactory
	createContent ElementFactory
	init          InitFunc
}

// componentBase is the root of every extension chain.
var componentBase = &Definition{
	name:     "Component",
	defaults: Options{},
}

// Base returns the root Definition all component types extend. Its element
// factory creates a plain "div" element carrying the standard component
// class names.
func Base() *Definition {
	return componentBase
}

// Define creates a new Definition extending Base with the given traits.
func Define(t Traits) *Definition {
	return componentBase.Extend(t)
}

// Extend produces a derived Definition whose chain links back to d. Traits
// set on the new definition shadow the parent's; unset traits resolve
// through the chain at use time, so extension chains of arbitrary depth
// behave like prototype chains. Defaults are not flattened at Extend time:
// they merge lazily, parent-first, when a component is constructed.
func (d *Definition) Extend(t Traits) *Definition {
	name := t.Name
	if name == "" {
		name = d.Name()
	}
	return &Definition{
		name:          name,
		base:          d,
		defaults:      t.Defaults.Clone(),
		createElement: t.CreateElement,
		createContent: t.CreateContent,
		init:          t.Init,
	}
}

// Name returns the definition's type name, inherited from the chain when the
// definition itself is anonymous.
func (d *Definition) Name() string {
	for cur := d; cur != nil; cur = cur.base {
		if cur.name != "" {
			return cur.name
		}
	}
	return "Component"
}

// defaultOptions merges the chain's defaults parent-first, so a derived
// definition's keys override its base's on conflict and unmatched base keys
// survive. The result is freshly allocated on every call.
func (d *Definition) defaultOptions() Options {
	chain := d.lineage()
	merged := Options{}
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].defaults != nil {
			merged = Merge(merged, chain[i].defaults)
		}
	}
	return merged
}

// lineage returns the chain from d up to the base, derived-first.
func (d *Definition) lineage() []*Definition {
	var chain []*Definition
	for cur := d; cur != nil; cur = cur.base {
		chain = append(chain, cur)
	}
	return chain
}

// elementFactory resolves the nearest CreateElement up the chain, falling
// back to the default div factory.
func (d *Definition) elementFactory() ElementFactory {
	for cur := d; cur != nil; cur = cur.base {
		if cur.createElement != nil {
			return cur.createElement
		}
	}
	return defaultCreateElement
}

// contentFactory resolves the nearest CreateContent up the chain, or nil
// when the content element is the component's own element.
func (d *Definition) contentFactory() ElementFactory {
	for cur := d; cur != nil; cur = cur.base {
		if cur.createContent != nil {
			return cur.createContent
		}
	}
	return nil
}

// runInit invokes the chain's init hooks base-first, mirroring constructor
// chaining: a derived type's hook sees whatever its bases set up.
func (d *Definition) runInit(c *Component) error {
	chain := d.lineage()
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].init != nil {
			if err := chain[i].init(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// defaultCreateElement builds a plain div carrying the shared component
// class and a per-type class derived from the definition name
// ("ControlBar" -> "pk-control-bar").
func defaultCreateElement(c *Component) *dom.Element {
	el := dom.NewElement("div")
	el.AddClass("pk-component")
	if name := c.def.Name(); name != "Component" {
		el.AddClass("pk-" + kebabCase(name))
	}
	if cls := c.opts.GetString("className", ""); cls != "" {
		el.AddClass(cls)
	}
	return el
}

// kebabCase converts a class-style type name to its CSS form.
func kebabCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
