package spatialmap

import (
	"errors"
	"math/rand/v2"
	"os"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spatialmap/quadtree"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gotestingadapter.New()
	os.Exit(m.Run())
}

func put[T, U, V any](t *testing.T, m *Map[T, U, V], key Point[T, U], value V) {
	t.Helper()
	if _, replaced, err := m.Put(key, value); err != nil {
		t.Fatalf("put %v: %v", key, err)
	} else if replaced {
		t.Fatalf("put %v: expected new entry, replaced existing one", key)
	}
}

func small(t *testing.T) *Map[int, int, int] {
	m := New[int, int, int]()
	put(t, m, P(0, 0), 0)
	put(t, m, P(-3, 4), 1)
	put(t, m, P(3, 2), 2)
	put(t, m, P(-5, -6), 3)
	put(t, m, P(6, -5), 4)
	put(t, m, P(10, 12), 5)
	put(t, m, P(7, 7), 6)
	return m
}

func TestEmptyMap(t *testing.T) {
	m := New[int, int, string]()
	if m.Size() != 0 || !m.IsEmpty() {
		t.Fatalf("expected empty map, size=%d", m.Size())
	}
	if m.tree.Len() != 1 {
		t.Errorf("expected sentinel root leaf, tree has %d nodes", m.tree.Len())
	}
	if m.Height() != 0 {
		t.Errorf("expected height 0, got %d", m.Height())
	}
	if _, found, err := m.Get(P(1, 2)); found || err != nil {
		t.Errorf("expected absent key, got found=%v err=%v", found, err)
	}
	if len(m.Entries()) != 0 {
		t.Errorf("expected no entries")
	}
	if err := m.Check(); err != nil {
		t.Errorf("expected empty map to be valid, got %v", err)
	}
}

func TestSmallPut(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m := small(t)
	if m.Size() != 7 {
		t.Errorf("expected size 7, got %d", m.Size())
	}
	if m.Height() != 4 {
		t.Errorf("expected tree height 4, got %d", m.Height())
	}
	if m.Size() != (m.tree.Len()-1)/4 || m.tree.Len() != 29 {
		t.Errorf("size does not match node count %d", m.tree.Len())
	}
	if err := m.Check(); err != nil {
		t.Errorf("expected valid map, got %v", err)
	}
}

func TestSmallGet(t *testing.T) {
	m := small(t)
	cases := []struct {
		key   Point[int, int]
		value int
		found bool
	}{
		{P(0, 2), 0, false},
		{P(-6, -5), 0, false},
		{P(-5, -6), 3, true},
		{P(7, 7), 6, true},
		{P(0, 0), 0, true},
		{P(10, 12), 5, true},
	}
	for _, c := range cases {
		v, found, err := m.Get(c.key)
		if err != nil {
			t.Fatalf("get %v: %v", c.key, err)
		}
		if found != c.found || v != c.value {
			t.Errorf("get %v: expected (%d, %v), got (%d, %v)", c.key, c.value, c.found, v, found)
		}
	}
}

func TestGetIsIdempotent(t *testing.T) {
	m := small(t)
	nodes, height := m.tree.Len(), m.Height()
	for _, key := range []Point[int, int]{P(7, 7), P(1, 1)} {
		v1, f1, _ := m.Get(key)
		v2, f2, _ := m.Get(key)
		if v1 != v2 || f1 != f2 {
			t.Errorf("repeated get %v differs: (%d,%v) vs (%d,%v)", key, v1, f1, v2, f2)
		}
	}
	if m.tree.Len() != nodes || m.Height() != height || m.Size() != 7 {
		t.Errorf("get must not alter the tree")
	}
}

func TestPutReplaces(t *testing.T) {
	m := small(t)
	nodes := m.tree.Len()
	old, replaced, err := m.Put(P(3, 2), 42)
	if err != nil {
		t.Fatal(err)
	}
	if !replaced || old != 2 {
		t.Errorf("expected to replace value 2, got (%d, %v)", old, replaced)
	}
	if v, _, _ := m.Get(P(3, 2)); v != 42 {
		t.Errorf("expected updated value 42, got %d", v)
	}
	if m.tree.Len() != nodes || m.Size() != 7 {
		t.Errorf("update must not change node count")
	}
	old, replaced, _ = m.Put(P(3, 2), 43)
	if !replaced || old != 42 {
		t.Errorf("expected to replace value 42, got (%d, %v)", old, replaced)
	}
}

func TestPutTracesNewAndReplacedEntries(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m := New[int, int, string]()
	put(t, m, P(1, 1), "new")
	old, replaced, err := m.Put(P(1, 1), "newer")
	if err != nil || !replaced || old != "new" {
		t.Fatalf("expected traced replacement of 'new', got %q, %v, %v", old, replaced, err)
	}
	if v, _, _ := m.Get(P(1, 1)); v != "newer" {
		t.Errorf("expected 'newer', got %q", v)
	}
}

func TestEntriesBreadthFirst(t *testing.T) {
	m := small(t)
	var values []int
	for _, e := range m.Entries() {
		values = append(values, e.Value)
	}
	if !slices.Equal(values, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Errorf("unexpected entry order %v", values)
	}
	keys := 0
	for key := range m.All() {
		if key == P(10, 12) {
			break
		}
		keys++
	}
	if keys != 5 {
		t.Errorf("expected (10,12) to be the 6th key, got position %d", keys)
	}
}

func TestRemoveUnsupported(t *testing.T) {
	for _, m := range []*Map[int, int, int]{New[int, int, int](), small(t)} {
		size, nodes := m.Size(), m.tree.Len()
		for _, key := range []Point[int, int]{P(0, 0), P(99, 99)} {
			if _, err := m.Remove(key); !errors.Is(err, ErrUnsupportedOperation) {
				t.Errorf("remove %v: expected ErrUnsupportedOperation, got %v", key, err)
			}
		}
		if m.Size() != size || m.tree.Len() != nodes {
			t.Errorf("remove must not alter the map")
		}
	}
}

// keyAt follows a sequence of quadrants from the root and returns the key
// found there.
func keyAt(t *testing.T, m *Map[int, int, string], qs ...quadtree.Quadrant) (Point[int, int], bool) {
	t.Helper()
	h := m.tree.Root()
	for _, q := range qs {
		h = must(m.tree.Child(h, q))
		if h.IsNil() {
			t.Fatalf("no node at %v", qs)
		}
	}
	e := must(m.tree.Element(h))
	if e == nil {
		return Point[int, int]{}, false
	}
	return e.Key, true
}

func TestTieBreakRoutesEastAndNorth(t *testing.T) {
	m := New[int, int, string]()
	put(t, m, P(0, 0), "a")
	put(t, m, P(0, 5), "b")  // x tie, y above: NE, not NW
	put(t, m, P(0, 7), "c")  // ties with both ancestors on x
	put(t, m, P(0, -3), "d") // x tie, y below: SE, not SW
	put(t, m, P(-1, 0), "e") // y tie, x left: NW, not SW
	cases := []struct {
		path []quadtree.Quadrant
		key  Point[int, int]
	}{
		{[]quadtree.Quadrant{quadtree.NE}, P(0, 5)},
		{[]quadtree.Quadrant{quadtree.NE, quadtree.NE}, P(0, 7)},
		{[]quadtree.Quadrant{quadtree.SE}, P(0, -3)},
		{[]quadtree.Quadrant{quadtree.NW}, P(-1, 0)},
	}
	for _, c := range cases {
		key, ok := keyAt(t, m, c.path...)
		if !ok || key != c.key {
			t.Errorf("at %v: expected %v, got %v (ok=%v)", c.path, c.key, key, ok)
		}
	}
	if _, ok := keyAt(t, m, quadtree.NE, quadtree.NW); ok {
		t.Errorf("expected NE/NW to be a leaf")
	}
	if err := m.Check(); err != nil {
		t.Errorf("expected valid map, got %v", err)
	}
}

func TestRandomPuts(t *testing.T) {
	m := New[int, int, int]()
	reference := make(map[Point[int, int]]int)
	r := rand.New(rand.NewPCG(2230, 0)) // deterministic
	for n := range 500 {
		key := P(r.IntN(25), r.IntN(25))
		old, replaced, err := m.Put(key, n)
		if err != nil {
			t.Fatal(err)
		}
		prev, exists := reference[key]
		if replaced != exists || (exists && old != prev) {
			t.Fatalf("put %v: got (%d, %v), want (%d, %v)", key, old, replaced, prev, exists)
		}
		reference[key] = n
		if m.Size() != len(reference) {
			t.Fatalf("after %d puts: size %d, want %d", n+1, m.Size(), len(reference))
		}
	}
	if err := m.Check(); err != nil {
		t.Fatalf("expected valid map, got %v", err)
	}
	for key, want := range reference {
		if v, found, _ := m.Get(key); !found || v != want {
			t.Errorf("get %v: got (%d, %v), want %d", key, v, found, want)
		}
	}
	for x := 25; x < 30; x++ {
		if _, found, _ := m.Get(P(x, x)); found {
			t.Errorf("get (%d,%d): expected absent", x, x)
		}
	}
	if len(m.Entries()) != len(reference) {
		t.Errorf("expected %d entries, got %d", len(reference), len(m.Entries()))
	}
}

func TestDegenerateInsertionOrder(t *testing.T) {
	m := New[int, int, int]()
	for i := range 2000 {
		put(t, m, P(i, i), i)
	}
	if m.Height() != 2000 {
		t.Errorf("expected height 2000 for diagonal insertion, got %d", m.Height())
	}
	if v, found, _ := m.Get(P(1999, 1999)); !found || v != 1999 {
		t.Errorf("expected to find deepest entry")
	}
}

func TestMixedAxisTypes(t *testing.T) {
	m := New[string, float64, bool]()
	put(t, m, P("m", 0.5), true)
	put(t, m, P("a", 0.5), false)
	put(t, m, P("z", -1.0), true)
	if v, found, _ := m.Get(P("a", 0.5)); !found || v {
		t.Errorf("expected (a,0.5) -> false, got %v, %v", v, found)
	}
	if err := m.Check(); err != nil {
		t.Errorf("expected valid map, got %v", err)
	}
}

func TestCustomComparators(t *testing.T) {
	reverse := func(a, b int) int { return b - a }
	m, err := NewWithComparators[int, int, string](reverse, Natural[int]())
	if err != nil {
		t.Fatal(err)
	}
	put(t, m, P(0, 0), "root")
	put(t, m, P(5, 1), "west") // x order reversed: 5 is "less" than 0
	key, ok := keyAt(t, m, quadtree.NW)
	if !ok || key != P(5, 1) {
		t.Errorf("expected (5,1) in NW under reversed x order, got %v", key)
	}
	if _, err := NewWithComparators[int, int, string](nil, reverse); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil comparator, got %v", err)
	}
}

func TestIncomparableKeys(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	strict := func(a, b float64) int { // NaN is not equal to itself
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		case a == b:
			return 0
		}
		return 1
	}
	picky := func(a, b int) int {
		if a == 13 || b == 13 {
			panic("unlucky number")
		}
		return a - b
	}
	m, _ := NewWithComparators[float64, int, string](strict, picky)
	put(t, m, P(1.0, 1), "one")
	nan := 0.0
	nan = nan / nan
	if _, _, err := m.Put(P(nan, 2), "nan"); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for NaN key, got %v", err)
	}
	if _, _, err := m.Get(P(nan, 2)); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for NaN lookup, got %v", err)
	}
	if _, _, err := m.Put(P(2.0, 13), "13"); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for panicking comparator, got %v", err)
	}
	if m.Size() != 1 {
		t.Errorf("rejected keys must not alter the map, size=%d", m.Size())
	}
}

func TestCheckDetectsMisplacedEntry(t *testing.T) {
	m := small(t)
	h := must(m.tree.Child(m.tree.Root(), quadtree.NW))
	if _, err := m.tree.Set(h, &Entry[int, int, int]{Key: P(5, 5), Value: 1}); err != nil {
		t.Fatal(err)
	}
	if err := m.Check(); !errors.Is(err, ErrCorruptedMap) {
		t.Errorf("expected ErrCorruptedMap, got %v", err)
	}
}
