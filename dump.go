package spatialmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Dump writes the structure of the map's tree to w (for debugging purposes).
//
// Every node is rendered as a block labeled by its key and the quadrant it
// has been reached from. Leaves are rendered as empty elements:
//
//	<(0,0)-ROOT>
//	  <leaf-NW/>
//	  <(3,2)-NE>
//	  …
//	</(0,0)-ROOT>
func (m *Map[T, U, V]) Dump(w io.Writer) {
	m.Walk(&blockDumper[T, U, V]{w: w})
}

// blockDumper renders nested blocks. Colors are optional.
type blockDumper[T, U, V any] struct {
	w          io.Writer
	keyColor   *color.Color
	leafColor  *color.Color
	labelColor *color.Color
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func (d *blockDumper[T, U, V]) Enter(e Entry[T, U, V], from string, depth int) {
	fmt.Fprintf(d.w, "%s<%s-%s>\n", indent(depth),
		paint(d.keyColor, e.Key.String()), paint(d.labelColor, from))
}

func (d *blockDumper[T, U, V]) Leaf(from string, depth int) {
	fmt.Fprintf(d.w, "%s<%s-%s/>\n", indent(depth),
		paint(d.leafColor, "leaf"), paint(d.labelColor, from))
}

func (d *blockDumper[T, U, V]) Exit(e Entry[T, U, V], from string, depth int) {
	fmt.Fprintf(d.w, "%s</%s-%s>\n", indent(depth),
		paint(d.keyColor, e.Key.String()), paint(d.labelColor, from))
}
