package spatialmap

import (
	"io"
	"sync"
)

// Locked guards a map with a single lock around every operation, making it
// safe for concurrent use. Readers share the lock.
type Locked[T, U, V any] struct {
	mtx sync.RWMutex
	m   *Map[T, U, V]
}

// NewLocked wraps m. Clients must not access m directly afterwards.
func NewLocked[T, U, V any](m *Map[T, U, V]) *Locked[T, U, V] {
	return &Locked[T, U, V]{m: m}
}

// Get is the locked version of Map.Get.
func (l *Locked[T, U, V]) Get(key Point[T, U]) (V, bool, error) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.m.Get(key)
}

// Put is the locked version of Map.Put.
func (l *Locked[T, U, V]) Put(key Point[T, U], value V) (V, bool, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.m.Put(key, value)
}

// Remove always fails with ErrUnsupportedOperation.
func (l *Locked[T, U, V]) Remove(key Point[T, U]) (V, error) {
	return l.m.Remove(key)
}

func (l *Locked[T, U, V]) Size() int {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.m.Size()
}

func (l *Locked[T, U, V]) Entries() []Entry[T, U, V] {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.m.Entries()
}

func (l *Locked[T, U, V]) Height() int {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.m.Height()
}

// Dump holds the read lock while writing to w.
func (l *Locked[T, U, V]) Dump(w io.Writer) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	l.m.Dump(w)
}
