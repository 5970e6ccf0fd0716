package spatialmap

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Print writes a dump of the map's tree to stdout. Keys, leaves and quadrant
// labels are colored if stdout is a terminal.
func (m *Map[T, U, V]) Print() {
	m.Fprint(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

// Fprint writes the same block structure as Dump, optionally colored.
func (m *Map[T, U, V]) Fprint(w io.Writer, colored bool) {
	if !colored {
		m.Dump(w)
		return
	}
	d := &blockDumper[T, U, V]{
		w:          w,
		keyColor:   color.New(color.FgBlue, color.Bold),
		leafColor:  color.New(color.FgHiBlack),
		labelColor: color.New(color.FgGreen),
	}
	// color output is decided by the caller, not by color.NoColor
	for _, c := range []*color.Color{d.keyColor, d.leafColor, d.labelColor} {
		c.EnableColor()
	}
	m.Walk(d)
}
