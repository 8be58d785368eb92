package component

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360/playerkit/dom"
	"github.com/c360/playerkit/errors"
)

// hiddenClass is the class toggled by Show/Hide.
const hiddenClass = "pk-hidden"

// HasClass reports whether the component's element carries the class. A
// disposed component reports false.
func (c *Component) HasClass(name string) bool {
	if el := c.El(); el != nil {
		return el.HasClass(name)
	}
	return false
}

// AddClass adds a class to the component's element.
func (c *Component) AddClass(name string) error {
	el, err := c.styleTarget("AddClass")
	if err != nil {
		return err
	}
	el.AddClass(name)
	return nil
}

// RemoveClass removes a class from the component's element.
func (c *Component) RemoveClass(name string) error {
	el, err := c.styleTarget("RemoveClass")
	if err != nil {
		return err
	}
	el.RemoveClass(name)
	return nil
}

// ToggleClass flips a class on the component's element, reporting whether
// the class is present afterward.
func (c *Component) ToggleClass(name string) (bool, error) {
	el, err := c.styleTarget("ToggleClass")
	if err != nil {
		return false, err
	}
	return el.ToggleClass(name), nil
}

// Show reveals the component's element by clearing the hidden class.
func (c *Component) Show() error {
	return c.RemoveClass(hiddenClass)
}

// Hide conceals the component's element with the hidden class.
func (c *Component) Hide() error {
	return c.AddClass(hiddenClass)
}

// Visible reports whether the component is not hidden. A disposed component
// reports false.
func (c *Component) Visible() bool {
	if el := c.El(); el != nil {
		return !el.HasClass(hiddenClass)
	}
	return false
}

// Width returns the component's width in pixels, or 0 when unset.
func (c *Component) Width() int {
	return c.dimension("width")
}

// Height returns the component's height in pixels, or 0 when unset.
func (c *Component) Height() int {
	return c.dimension("height")
}

// Dimensions returns the component's width and height in pixels.
func (c *Component) Dimensions() (width, height int) {
	return c.Width(), c.Height()
}

// SetWidth sets the width in pixels and fires a resize event.
func (c *Component) SetWidth(px int) error {
	return c.setDimensions(map[string]int{"width": px}, true)
}

// SetHeight sets the height in pixels and fires a resize event.
func (c *Component) SetHeight(px int) error {
	return c.setDimensions(map[string]int{"height": px}, true)
}

// SetDimensions sets width and height together, firing a single resize
// event.
func (c *Component) SetDimensions(width, height int) error {
	return c.setDimensions(map[string]int{"width": width, "height": height}, true)
}

// SetDimensionsQuiet sets width and height without firing resize, for hosts
// that batch layout changes and emit their own notification.
func (c *Component) SetDimensionsQuiet(width, height int) error {
	return c.setDimensions(map[string]int{"width": width, "height": height}, false)
}

func (c *Component) setDimensions(dims map[string]int, notify bool) error {
	el, err := c.styleTarget("SetDimensions")
	if err != nil {
		return err
	}
	for prop, px := range dims {
		el.SetStyle(prop, fmt.Sprintf("%dpx", px))
	}
	if notify {
		return c.Trigger(EventResize, nil)
	}
	return nil
}

func (c *Component) dimension(prop string) int {
	el := c.El()
	if el == nil {
		return 0
	}
	v := strings.TrimSuffix(el.Style(prop), "px")
	if v == "" {
		return 0
	}
	px, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return px
}

func (c *Component) styleTarget(method string) (*dom.Element, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return nil, errors.WrapFatal(errors.ErrDisposed, c.def.Name(), method, "element access")
	}
	if c.el == nil {
		return nil, errors.WrapFatal(errors.ErrNilElement, c.def.Name(), method, "element access")
	}
	return c.el, nil
}
