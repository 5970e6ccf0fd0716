package spatialmap

import (
	"fmt"

	"github.com/npillmayer/spatialmap/quadtree"
)

// Check validates the map's invariants:
//
//   - the underlying tree is structurally sound and never empty,
//   - leaves carry no entry, internal nodes carry one entry and four children,
//   - the node count is 1 + 4*Size(),
//   - every entry lies in the correct quadrant relative to each of its ancestors.
//
// Check is meant to be used in tests.
func (m *Map[T, U, V]) Check() error {
	if m == nil || m.tree == nil {
		return fmt.Errorf("%w: nil map", ErrCorruptedMap)
	}
	if m.tree.IsEmpty() {
		return fmt.Errorf("%w: tree has no root sentinel", ErrCorruptedMap)
	}
	if err := m.tree.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptedMap, err)
	}
	if (m.tree.Len()-1)%4 != 0 {
		return fmt.Errorf("%w: node count %d is not 1+4n", ErrCorruptedMap, m.tree.Len())
	}
	internal := 0
	for h := range m.tree.BreadthFirst() {
		leaf := must(m.tree.IsLeaf(h))
		e := must(m.tree.Element(h))
		if leaf {
			if e != nil {
				return fmt.Errorf("%w: leaf %s carries entry %s", ErrCorruptedMap, h, e)
			}
			continue
		}
		internal++
		if e == nil {
			return fmt.Errorf("%w: internal node %s carries no entry", ErrCorruptedMap, h)
		}
		for _, q := range quadtree.Quadrants {
			if must(m.tree.Child(h, q)).IsNil() {
				return fmt.Errorf("%w: internal node %s lacks %s child", ErrCorruptedMap, h, q)
			}
		}
		if err := m.checkAncestors(h, e.Key); err != nil {
			return err
		}
	}
	if internal != m.Size() {
		return fmt.Errorf("%w: %d entries, size is %d", ErrCorruptedMap, internal, m.Size())
	}
	return nil
}

// checkAncestors climbs from h to the root and verifies that key lies in the
// quadrant of each ancestor which the path passes through.
func (m *Map[T, U, V]) checkAncestors(h quadtree.Handle, key Point[T, U]) error {
	for {
		q, ok := must2(m.tree.QuadrantOf(h))
		if !ok {
			return nil
		}
		h = must(m.tree.Parent(h))
		anc := must(m.tree.Element(h))
		cx := m.compX(key.X, anc.Key.X)
		cy := m.compY(key.Y, anc.Key.Y)
		if cx == 0 && cy == 0 {
			return fmt.Errorf("%w: duplicate key %v", ErrCorruptedMap, key)
		}
		if route(cx, cy) != q {
			return fmt.Errorf("%w: key %v in %s subtree of %v", ErrCorruptedMap, key, q, anc.Key)
		}
	}
}

func must2[R, S any](r R, s S, err error) (R, S) {
	if err != nil {
		panic(fmt.Sprintf("spatialmap: internal tree error: %v", err))
	}
	return r, s
}
