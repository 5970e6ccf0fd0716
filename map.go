package spatialmap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/spatialmap/quadtree"
)

// Map is a map from two-dimensional points to values of type V, organized as
// a point quad tree. T and U are the types of the x- and y-axis.
//
// The tree is never empty: a fresh map consists of a single sentinel leaf. Every
// internal node of the tree carries exactly one entry, every leaf carries none.
//
// A Map is not safe for concurrent use; see Locked.
type Map[T, U, V any] struct {
	tree  *quadtree.Tree[*Entry[T, U, V]]
	compX Comparator[T]
	compY Comparator[U]
}

// New creates an empty map ordering both axes by their natural order.
func New[T, U cmp.Ordered, V any]() *Map[T, U, V] {
	return newMap[T, U, V](Natural[T](), Natural[U]())
}

// NewWithComparators creates an empty map with an explicit total order for each
// axis. Both comparators are required.
func NewWithComparators[T, U, V any](cx Comparator[T], cy Comparator[U]) (*Map[T, U, V], error) {
	if cx == nil || cy == nil {
		return nil, fmt.Errorf("%w: comparators for both axes are required", ErrIllegalArguments)
	}
	return newMap[T, U, V](cx, cy), nil
}

func newMap[T, U, V any](cx Comparator[T], cy Comparator[U]) *Map[T, U, V] {
	m := &Map[T, U, V]{
		tree:  quadtree.New[*Entry[T, U, V]](),
		compX: cx,
		compY: cy,
	}
	must(m.tree.AddRoot(nil)) // sentinel leaf as root
	return m
}

// must unwraps the result of a tree operation on a handle obtained from the
// tree itself. Such operations fail only if the tree is corrupted.
func must[R any](r R, err error) R {
	if err != nil {
		panic(fmt.Sprintf("spatialmap: internal tree error: %v", err))
	}
	return r
}

// checkKey makes sure a key can be compared to itself on both axes.
// Comparators which panic are treated as incompatible with the key.
func (m *Map[T, U, V]) checkKey(key Point[T, U]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: incompatible key %v: %v", ErrIllegalArguments, key, r)
		}
	}()
	if m.compX(key.X, key.X) != 0 || m.compY(key.Y, key.Y) != 0 {
		return fmt.Errorf("%w: key %v does not compare equal to itself", ErrIllegalArguments, key)
	}
	return nil
}

// route selects the quadrant to descend into, given the comparison results of
// a target key against a node's key. Ties go east and north.
func route(cx, cy int) quadtree.Quadrant {
	switch {
	case cx >= 0 && cy >= 0:
		return quadtree.NE
	case cx < 0 && cy >= 0:
		return quadtree.NW
	case cx >= 0 && cy < 0:
		return quadtree.SE
	}
	return quadtree.SW
}

// locate returns the node holding key, or else the leaf where the search for
// key terminated.
func (m *Map[T, U, V]) locate(key Point[T, U]) (h quadtree.Handle, err error) {
	defer func() {
		if r := recover(); r != nil {
			h, err = quadtree.Nil, fmt.Errorf("%w: cannot compare key %v: %v", ErrIllegalArguments, key, r)
		}
	}()
	h = m.tree.Root()
	for {
		leaf, err := m.tree.IsLeaf(h)
		if err != nil {
			return quadtree.Nil, err
		}
		if leaf {
			return h, nil
		}
		e, err := m.tree.Element(h)
		if err != nil {
			return quadtree.Nil, err
		}
		cx := m.compX(key.X, e.Key.X)
		cy := m.compY(key.Y, e.Key.Y)
		if cx == 0 && cy == 0 {
			return h, nil
		}
		if h, err = m.tree.Child(h, route(cx, cy)); err != nil {
			return quadtree.Nil, err
		}
	}
}

// expand converts leaf h into an internal node holding entry, with four
// fresh leaves as children.
func (m *Map[T, U, V]) expand(h quadtree.Handle, entry *Entry[T, U, V]) error {
	if _, err := m.tree.Set(h, entry); err != nil {
		return err
	}
	for _, q := range quadtree.Quadrants {
		if _, err := m.tree.Attach(h, q, nil); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value stored for key. If there is no entry for key, found
// is false. An error is returned only for keys which are illegal for this map.
func (m *Map[T, U, V]) Get(key Point[T, U]) (value V, found bool, err error) {
	if err = m.checkKey(key); err != nil {
		return
	}
	h, err := m.locate(key)
	if err != nil {
		return
	}
	e, err := m.tree.Element(h)
	if err != nil || e == nil {
		return
	}
	return e.Value, true, nil
}

// Put associates value with key. If an entry for key already exists, its value
// is replaced and the previous value is returned with replaced set to true.
func (m *Map[T, U, V]) Put(key Point[T, U], value V) (old V, replaced bool, err error) {
	if err = m.checkKey(key); err != nil {
		return
	}
	h, err := m.locate(key)
	if err != nil {
		return
	}
	entry := &Entry[T, U, V]{Key: key, Value: value}
	leaf, err := m.tree.IsLeaf(h)
	if err != nil {
		return
	}
	if leaf {
		tracer().Debugf("spatialmap: new entry %s at %s", entry, h)
		err = m.expand(h, entry)
		return
	}
	prev, err := m.tree.Set(h, entry)
	if err != nil {
		return
	}
	tracer().Debugf("spatialmap: replaced %s with %s at %s", prev, entry, h)
	return prev.Value, true, nil
}

// Remove is not supported and will always return ErrUnsupportedOperation.
// The map is left untouched.
func (m *Map[T, U, V]) Remove(key Point[T, U]) (V, error) {
	var zero V
	return zero, fmt.Errorf("%w: remove %v: spatial maps support adding, not removing",
		ErrUnsupportedOperation, key)
}

// Size returns the number of entries in the map.
//
// Each new entry adds four leaves to the tree, and there is one
// leaf to start with.
func (m *Map[T, U, V]) Size() int {
	return (m.tree.Len() - 1) / 4
}

// IsEmpty reports whether the map has no entries.
func (m *Map[T, U, V]) IsEmpty() bool {
	return m.Size() == 0
}

// Entries returns all entries of the map in breadth-first order of the
// underlying tree. Entries are not sorted by key.
func (m *Map[T, U, V]) Entries() []Entry[T, U, V] {
	entries := make([]Entry[T, U, V], 0, m.Size())
	for key, value := range m.All() {
		entries = append(entries, Entry[T, U, V]{Key: key, Value: value})
	}
	return entries
}

// All returns a sequence of all key/value pairs, in the same order as Entries.
// The map must not be modified during iteration.
func (m *Map[T, U, V]) All() iter.Seq2[Point[T, U], V] {
	return func(yield func(Point[T, U], V) bool) {
		for h := range m.tree.BreadthFirst() {
			if e := must(m.tree.Element(h)); e != nil {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}

// Height returns the height of the underlying tree, i.e., the number of edges
// on the longest path from the root to a leaf. An empty map has height 0.
func (m *Map[T, U, V]) Height() int {
	return must(m.tree.Height(m.tree.Root()))
}
