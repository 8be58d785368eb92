package player

import (
	"fmt"
	"strings"

	"github.com/c360/playerkit/component"
)

// DumpTree renders the component tree as an indented listing, one component
// per line with its type, id, and element class list. Diagnostic helper for
// hosts and the demo binary.
func DumpTree(root *component.Component) string {
	var b strings.Builder
	dumpInto(&b, root, 0)
	return b.String()
}

func dumpInto(b *strings.Builder, c *component.Component, depth int) {
	if c == nil {
		return
	}
	classes := ""
	if el := c.El(); el != nil {
		classes = el.ClassName()
	}
	fmt.Fprintf(b, "%s%s#%s [%s]\n", strings.Repeat("  ", depth), c.Definition().Name(), c.ID(), classes)
	for _, child := range c.Children() {
		dumpInto(b, child, depth+1)
	}
}
