package quadtree

import "iter"

// BreadthFirst returns a sequence of all nodes in breadth-first order: the
// root first, then each level with siblings in slot order NW, NE, SW, SE.
//
// The sequence is lazy and may be iterated more than once. The tree must not
// be modified during iteration.
func (t *Tree[E]) BreadthFirst() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		if t.IsEmpty() {
			return
		}
		queue := make([]int, 0, len(t.nodes))
		queue = append(queue, t.root)
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(t.handle(n)) {
				return
			}
			for _, c := range t.nodes[n].children {
				if c != none {
					queue = append(queue, c)
				}
			}
		}
	}
}

// Height returns the length of the longest downward path from h to a leaf,
// counted in edges. A leaf has height 0.
func (t *Tree[E]) Height(h Handle) (int, error) {
	n, err := t.validate(h)
	if err != nil {
		return 0, err
	}
	// explicit stack, degenerate trees may be deep
	type frame struct {
		node, depth int
	}
	height := 0
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > height {
			height = f.depth
		}
		for _, c := range t.nodes[f.node].children {
			if c != none {
				stack = append(stack, frame{node: c, depth: f.depth + 1})
			}
		}
	}
	return height, nil
}

// Depth returns the number of edges between h and the root.
func (t *Tree[E]) Depth(h Handle) (int, error) {
	n, err := t.validate(h)
	if err != nil {
		return 0, err
	}
	depth := 0
	for p := t.nodes[n].parent; p != none; p = t.nodes[p].parent {
		depth++
		assert(depth <= len(t.nodes), "parent chain contains a cycle")
	}
	return depth, nil
}
