package player

import (
	"github.com/c360/playerkit/component"
	"github.com/c360/playerkit/dom"
)

// Standard component types shipped with the toolkit. Hosts extend these with
// Definition.Extend or replace them wholesale by registering their own types
// under the same names.

var controlBarDefinition = component.Define(component.Traits{
	Name: "ControlBar",
	Defaults: component.Options{
		"children": []any{"playToggle", "volumeControl"},
	},
})

var buttonDefinition = component.Define(component.Traits{
	Name: "Button",
	Defaults: component.Options{
		"emitTapEvents": true,
	},
	CreateElement: func(c *component.Component) *dom.Element {
		el := dom.NewElement("button")
		el.AddClass("pk-component")
		el.AddClass("pk-button")
		el.SetAttribute("type", "button")
		return el
	},
	Init: func(c *component.Component) error {
		if el := c.El(); el != nil {
			el.SetData(component.LeafDataKey, true)
		}
		return nil
	},
})

var playToggleDefinition = buttonDefinition.Extend(component.Traits{
	Name: "PlayToggle",
	Init: func(c *component.Component) error {
		if el := c.El(); el != nil {
			el.AddClass("pk-play-toggle")
		}
		return nil
	},
})

var volumeControlDefinition = component.Define(component.Traits{
	Name: "VolumeControl",
	Defaults: component.Options{
		"children": []any{"muteToggle"},
	},
})

var muteToggleDefinition = buttonDefinition.Extend(component.Traits{
	Name: "MuteToggle",
	Init: func(c *component.Component) error {
		if el := c.El(); el != nil {
			el.AddClass("pk-mute-toggle")
		}
		return nil
	},
})

var bigPlayButtonDefinition = buttonDefinition.Extend(component.Traits{
	Name: "BigPlayButton",
	Init: func(c *component.Component) error {
		if el := c.El(); el != nil {
			el.AddClass("pk-big-play-button")
		}
		return nil
	},
})

// errorDisplayDefinition starts hidden; hosts reveal it on failure.
var errorDisplayDefinition = component.Define(component.Traits{
	Name: "ErrorDisplay",
	Init: func(c *component.Component) error {
		return c.Hide()
	},
})

// RegisterBuiltins registers the standard component types with the given
// registry (the process default when nil). Call once during host startup,
// before constructing a player; re-registration replaces and warns.
func RegisterBuiltins(reg *component.Registry) error {
	if reg == nil {
		reg = component.DefaultRegistry()
	}
	defs := map[string]*component.Definition{
		"Player":        playerDefinition,
		"ControlBar":    controlBarDefinition,
		"Button":        buttonDefinition,
		"PlayToggle":    playToggleDefinition,
		"VolumeControl": volumeControlDefinition,
		"MuteToggle":    muteToggleDefinition,
		"BigPlayButton": bigPlayButtonDefinition,
		"ErrorDisplay":  errorDisplayDefinition,
	}
	for name, def := range defs {
		if err := reg.Register(name, def); err != nil {
			return err
		}
	}
	return nil
}
