package spatialmap

import (
	"cmp"
	"fmt"
)

// Point is a two-dimensional key. The axes may have different types.
type Point[T, U any] struct {
	X T
	Y U
}

// P is a shortcut to create a point.
func P[T, U any](x T, y U) Point[T, U] {
	return Point[T, U]{X: x, Y: y}
}

func (p Point[T, U]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Comparator is a total order on values of type T. It returns a negative
// number if a < b, 0 if a == b, and a positive number if a > b.
type Comparator[T any] func(a, b T) int

// Natural returns the natural order of an ordered type.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Entry is a key/value pair stored in a map.
type Entry[T, U, V any] struct {
	Key   Point[T, U]
	Value V
}

func (e Entry[T, U, V]) String() string {
	return fmt.Sprintf("%s=%v", e.Key, e.Value)
}
