package quadtree

import (
	"fmt"
	"sync/atomic"
)

// none marks an absent parent or child link.
const none = -1

// treeIDs hands out identities for trees, so handles of foreign trees can be
// told apart. 0 is never used; it marks the nil handle.
var treeIDs atomic.Uint64

// Handle is a stable reference to a node of a Tree.
//
// The zero value is the nil handle, which does not resolve to any node.
// Handles stay valid for the lifetime of their tree.
type Handle struct {
	tree  uint64
	index int
}

// Nil is the nil handle.
var Nil = Handle{}

// IsNil reports whether h is the nil handle.
func (h Handle) IsNil() bool {
	return h.tree == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("#%d", h.index)
}

type node[E any] struct {
	element  E
	parent   int
	children [4]int
	// live is cleared for nodes no longer part of the tree. Nodes are never
	// detached by this package, but handle validation honors the tag.
	live bool
}

func (n *node[E]) isLeaf() bool {
	for _, c := range n.children {
		if c != none {
			return false
		}
	}
	return true
}

// Tree is a four-way branching tree holding elements of type E.
//
// The empty instance is not usable; clients must call New.
// A Tree is not safe for concurrent use.
type Tree[E any] struct {
	id    uint64
	nodes []node[E]
	root  int
}

// New creates an empty tree.
func New[E any]() *Tree[E] {
	return &Tree[E]{
		id:   treeIDs.Add(1),
		root: none,
	}
}

// validate resolves a handle to a node index. It rejects nil handles, handles
// of other trees and handles of nodes which are no longer live.
func (t *Tree[E]) validate(h Handle) (int, error) {
	if h.IsNil() {
		return none, fmt.Errorf("%w: nil handle", ErrInvalidArgument)
	}
	if h.tree != t.id {
		return none, fmt.Errorf("%w: handle %s does not belong to this tree", ErrInvalidArgument, h)
	}
	if h.index < 0 || h.index >= len(t.nodes) {
		return none, fmt.Errorf("%w: handle %s out of range", ErrInvalidArgument, h)
	}
	if !t.nodes[h.index].live {
		return none, fmt.Errorf("%w: node %s is no longer in the tree", ErrInvalidArgument, h)
	}
	return h.index, nil
}

func (t *Tree[E]) handle(index int) Handle {
	if index == none {
		return Nil
	}
	return Handle{tree: t.id, index: index}
}

func (t *Tree[E]) newNode(e E, parent int) int {
	t.nodes = append(t.nodes, node[E]{
		element:  e,
		parent:   parent,
		children: [4]int{none, none, none, none},
		live:     true,
	})
	return len(t.nodes) - 1
}

// Len returns the number of nodes in the tree.
func (t *Tree[E]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[E]) IsEmpty() bool {
	return t.Len() == 0
}

// Root returns the root node of the tree, or Nil for an empty tree.
func (t *Tree[E]) Root() Handle {
	if t == nil {
		return Nil
	}
	return t.handle(t.root)
}

// AddRoot places element e at the root of an empty tree and returns its handle.
// It is an error to call AddRoot on a non-empty tree.
func (t *Tree[E]) AddRoot(e E) (Handle, error) {
	if !t.IsEmpty() {
		return Nil, fmt.Errorf("%w: tree is not empty", ErrInvalidState)
	}
	t.root = t.newNode(e, none)
	return t.handle(t.root), nil
}

// Attach creates a new childless node holding e in child slot q of p and
// returns its handle. The slot must be free.
func (t *Tree[E]) Attach(p Handle, q Quadrant, e E) (Handle, error) {
	parent, err := t.validate(p)
	if err != nil {
		return Nil, err
	}
	if !q.Valid() {
		return Nil, fmt.Errorf("%w: invalid quadrant %d", ErrInvalidArgument, q)
	}
	if t.nodes[parent].children[q] != none {
		return Nil, fmt.Errorf("%w: %s already has a %s child", ErrInvalidArgument, p, q)
	}
	child := t.newNode(e, parent)
	t.nodes[parent].children[q] = child
	return t.handle(child), nil
}

// Child returns the child of h in slot q, or Nil if the slot is empty.
func (t *Tree[E]) Child(h Handle, q Quadrant) (Handle, error) {
	n, err := t.validate(h)
	if err != nil {
		return Nil, err
	}
	if !q.Valid() {
		return Nil, fmt.Errorf("%w: invalid quadrant %d", ErrInvalidArgument, q)
	}
	return t.handle(t.nodes[n].children[q]), nil
}

// Parent returns the parent of h, or Nil if h is the root.
func (t *Tree[E]) Parent(h Handle) (Handle, error) {
	n, err := t.validate(h)
	if err != nil {
		return Nil, err
	}
	return t.handle(t.nodes[n].parent), nil
}

// QuadrantOf returns the child slot of its parent that h occupies. For the
// root, ok is false.
func (t *Tree[E]) QuadrantOf(h Handle) (q Quadrant, ok bool, err error) {
	n, err := t.validate(h)
	if err != nil {
		return 0, false, err
	}
	parent := t.nodes[n].parent
	if parent == none {
		return 0, false, nil
	}
	for _, q := range Quadrants {
		if t.nodes[parent].children[q] == n {
			return q, true, nil
		}
	}
	return 0, false, fmt.Errorf("%w: %s not linked from its parent", ErrCorrupted, h)
}

// Element returns the element stored at h.
func (t *Tree[E]) Element(h Handle) (E, error) {
	n, err := t.validate(h)
	if err != nil {
		var zero E
		return zero, err
	}
	return t.nodes[n].element, nil
}

// Set replaces the element at h with e and returns the replaced element.
func (t *Tree[E]) Set(h Handle, e E) (E, error) {
	n, err := t.validate(h)
	if err != nil {
		var zero E
		return zero, err
	}
	old := t.nodes[n].element
	t.nodes[n].element = e
	return old, nil
}

// IsLeaf reports whether h has no children.
func (t *Tree[E]) IsLeaf(h Handle) (bool, error) {
	n, err := t.validate(h)
	if err != nil {
		return false, err
	}
	return t.nodes[n].isLeaf(), nil
}

// IsInternal reports whether h has at least one child.
func (t *Tree[E]) IsInternal(h Handle) (bool, error) {
	leaf, err := t.IsLeaf(h)
	if err != nil {
		return false, err
	}
	return !leaf, nil
}

// Remove is not supported by this tree and will always return ErrUnsupported.
// General deletion would have to re-link up to four orphaned subtrees.
func (t *Tree[E]) Remove(h Handle) (E, error) {
	var zero E
	return zero, fmt.Errorf("%w: this quad tree supports adding, not removing", ErrUnsupported)
}
