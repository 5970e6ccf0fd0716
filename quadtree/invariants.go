package quadtree

import "fmt"

// Check validates structural tree invariants: parent and child links agree,
// every node is reachable from the root and the node count matches Len.
//
// Check is meant to be used in tests.
func (t *Tree[E]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.IsEmpty() {
		if t.root != none {
			return fmt.Errorf("%w: empty tree must not have a root", ErrCorrupted)
		}
		return nil
	}
	if t.root < 0 || t.root >= len(t.nodes) {
		return fmt.Errorf("%w: root index %d out of range", ErrCorrupted, t.root)
	}
	if t.nodes[t.root].parent != none {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	seen := make([]bool, len(t.nodes))
	count := 0
	queue := []int{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if seen[n] {
			return fmt.Errorf("%w: node #%d reachable twice", ErrCorrupted, n)
		}
		seen[n] = true
		count++
		if !t.nodes[n].live {
			return fmt.Errorf("%w: node #%d reachable but not live", ErrCorrupted, n)
		}
		for _, q := range Quadrants {
			c := t.nodes[n].children[q]
			if c == none {
				continue
			}
			if c < 0 || c >= len(t.nodes) {
				return fmt.Errorf("%w: %s child of #%d out of range", ErrCorrupted, q, n)
			}
			if t.nodes[c].parent != n {
				return fmt.Errorf("%w: %s child #%d of #%d has parent #%d",
					ErrCorrupted, q, c, n, t.nodes[c].parent)
			}
			queue = append(queue, c)
		}
	}
	if count != t.Len() {
		tracer().Errorf("quadtree: %d nodes reachable, %d allocated", count, t.Len())
		return fmt.Errorf("%w: node count mismatch (%d != %d)", ErrCorrupted, count, t.Len())
	}
	return nil
}
