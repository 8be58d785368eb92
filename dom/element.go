package dom

import (
	"slices"
	"strings"
	"sync"
)

// Element is a single node in the render tree. Exactly one component owns any
// given element; the component core enforces that ownership, the element itself
// only maintains structure.
type Element struct {
	mu        sync.RWMutex
	tag       string
	attrs     map[string]string
	classes   []string
	style     map[string]string
	data      map[string]any
	parent    *Element
	children  []*Element
	listeners map[string][]*listener
}

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{
		tag:       tag,
		attrs:     make(map[string]string),
		style:     make(map[string]string),
		data:      make(map[string]any),
		listeners: make(map[string][]*listener),
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// ID returns the element's id attribute, or "" if unset.
func (e *Element) ID() string {
	return e.Attribute("id")
}

// SetID sets the element's id attribute.
func (e *Element) SetID(id string) {
	e.SetAttribute("id", id)
}

// SetAttribute sets a single attribute value.
func (e *Element) SetAttribute(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
}

// Attribute returns the value of an attribute, or "" if unset.
func (e *Element) Attribute(name string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.attrs[name]
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.attrs, name)
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Contains(e.classes, name)
}

// AddClass appends name to the class list if not already present.
func (e *Element) AddClass(name string) {
	if name == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !slices.Contains(e.classes, name) {
		e.classes = append(e.classes, name)
	}
}

// RemoveClass removes name from the class list.
func (e *Element) RemoveClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := slices.Index(e.classes, name); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}

// ToggleClass adds name when absent and removes it when present, returning
// whether the class is present afterward.
func (e *Element) ToggleClass(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := slices.Index(e.classes, name); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
		return false
	}
	e.classes = append(e.classes, name)
	return true
}

// ClassName returns the space-joined class list.
func (e *Element) ClassName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return strings.Join(e.classes, " ")
}

// SetStyle sets an inline style property.
func (e *Element) SetStyle(property, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.style[property] = value
}

// Style returns an inline style property, or "" if unset.
func (e *Element) Style(property string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.style[property]
}

// RemoveStyle deletes an inline style property.
func (e *Element) RemoveStyle(property string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.style, property)
}

// SetData stores an auxiliary bookkeeping value on the element. Hosts use this
// for per-element state that must be released when the owning component is
// torn down.
func (e *Element) SetData(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data[key] = value
}

// Data returns an auxiliary bookkeeping value stored on the element.
func (e *Element) Data(key string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.data[key]
	return v, ok
}

// ClearData drops all auxiliary bookkeeping stored on the element.
func (e *Element) ClearData() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data = make(map[string]any)
}

// Parent returns the element's current parent, or nil when detached.
func (e *Element) Parent() *Element {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.parent
}

// Children returns a copy of the element's child list in document order.
func (e *Element) Children() []*Element {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.children)
}

// AppendChild attaches child as the last child of e, detaching it from any
// previous parent first. Appending an element to itself or to one of its
// own descendants is a no-op; a parent cycle would make bubbling dispatch
// loop forever.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	for anc := e.Parent(); anc != nil; anc = anc.Parent() {
		if anc == child {
			return
		}
	}
	child.Detach()

	e.mu.Lock()
	e.children = append(e.children, child)
	e.mu.Unlock()

	child.mu.Lock()
	child.parent = e
	child.mu.Unlock()
}

// RemoveChild detaches child from e, reporting whether child was actually a
// child of e. A child attached elsewhere is left untouched.
func (e *Element) RemoveChild(child *Element) bool {
	if child == nil {
		return false
	}

	e.mu.Lock()
	i := slices.Index(e.children, child)
	if i < 0 {
		e.mu.Unlock()
		return false
	}
	e.children = slices.Delete(e.children, i, i+1)
	e.mu.Unlock()

	child.mu.Lock()
	child.parent = nil
	child.mu.Unlock()
	return true
}

// Detach removes the element from its parent, if any.
func (e *Element) Detach() {
	e.mu.RLock()
	parent := e.parent
	e.mu.RUnlock()
	if parent != nil {
		parent.RemoveChild(e)
	}
}
