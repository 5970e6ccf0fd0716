package quadtree

import "errors"

var (
	// ErrInvalidArgument signals a stale, foreign or nil handle, an invalid
	// quadrant, or an occupied child slot.
	ErrInvalidArgument = errors.New("quadtree: invalid argument")
	// ErrInvalidState signals an operation which is illegal in the tree's
	// current state, e.g., adding a second root.
	ErrInvalidState = errors.New("quadtree: invalid state")
	// ErrUnsupported marks operations which this tree does not provide.
	ErrUnsupported = errors.New("quadtree: operation not supported")
	// ErrCorrupted signals a violated structural invariant.
	ErrCorrupted = errors.New("quadtree: corrupted tree")
)
