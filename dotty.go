package spatialmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/spatialmap/quadtree"
)

type nodeids map[quadtree.Handle]int

func (ids nodeids) alloc(h quadtree.Handle) int {
	if id, ok := ids[h]; ok {
		return id
	}
	ids[h] = len(ids) + 1
	return ids[h]
}

// Map2Dot outputs the internal structure of a map in Graphviz DOT format
// (for debugging purposes).
func Map2Dot[T, U, V any](m *Map[T, U, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := make(nodeids)
	var nodelist, edgelist strings.Builder
	for h := range m.tree.BreadthFirst() {
		ID := ids.alloc(h)
		e := must(m.tree.Element(h))
		if e == nil {
			fmt.Fprintf(&nodelist, "\"%d\" %s;\n", ID, emptyNode())
			continue
		}
		label := dotEscape(e.Key.String()) + "\\n" + dotEscape(fmt.Sprint(e.Value))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles())
		for _, q := range quadtree.Quadrants {
			child := must(m.tree.Child(h, q))
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=%s];\n", ID, ids.alloc(child), q)
		}
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

// dotEscape quotes backslashes and double quotes for a DOT string.
func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles() string {
	return ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=box"
}
