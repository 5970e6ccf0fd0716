package spatialmap

import (
	"github.com/npillmayer/spatialmap/quadtree"
)

// RootLabel is the label a Visitor receives for the root node.
const RootLabel = "ROOT"

// Visitor receives callbacks during Walk. from is the quadrant a node has been
// reached from (or RootLabel), depth is the node's distance from the root.
type Visitor[T, U, V any] interface {
	Enter(e Entry[T, U, V], from string, depth int)
	Leaf(from string, depth int)
	Exit(e Entry[T, U, V], from string, depth int)
}

// Walk visits the tree depth-first. For an internal node, Enter is called,
// then its children are visited in order NW, NE, SW, SE, then Exit is called.
// Leaves result in a single call to Leaf.
func (m *Map[T, U, V]) Walk(v Visitor[T, U, V]) {
	type frame struct {
		h     quadtree.Handle
		from  string
		depth int
		exit  bool
	}
	stack := []frame{{h: m.tree.Root(), from: RootLabel}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := must(m.tree.Element(f.h))
		switch {
		case e == nil:
			v.Leaf(f.from, f.depth)
		case f.exit:
			v.Exit(*e, f.from, f.depth)
		default:
			v.Enter(*e, f.from, f.depth)
			f.exit = true
			stack = append(stack, f)
			for i := len(quadtree.Quadrants) - 1; i >= 0; i-- {
				q := quadtree.Quadrants[i]
				stack = append(stack, frame{
					h:     must(m.tree.Child(f.h, q)),
					from:  q.String(),
					depth: f.depth + 1,
				})
			}
		}
	}
}
