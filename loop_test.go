package jtkparallel

import (
	"sync"
	"testing"
)

// coverage records, for each index visited by a Loop, how many times it
// was visited; every test in this file that cares about completeness and
// disjointness shares this helper.
type coverage struct {
	mu   sync.Mutex
	seen map[int]int
}

func newCoverage() *coverage { return &coverage{seen: make(map[int]int)} }

func (c *coverage) mark(i int) {
	c.mu.Lock()
	c.seen[i]++
	c.mu.Unlock()
}

func (c *coverage) check(t *testing.T, begin, end, step int) {
	t.Helper()
	for i := begin; i < end; i += step {
		switch n := c.seen[i]; n {
		case 0:
			t.Errorf("index %d was never visited", i)
		case 1:
			// ok
		default:
			t.Errorf("index %d was visited %d times", i, n)
		}
	}
	for i := range c.seen {
		if (i-begin)%step != 0 || i < begin || i >= end {
			t.Errorf("index %d is outside [%d,%d) step %d but was visited", i, begin, end, step)
		}
	}
}

func TestLoopCompletenessAndDisjointness(t *testing.T) {
	cases := []struct{ begin, end, step, chunk int }{
		{0, 1000, 1, chunkDefault},
		{0, 1000, 1, 1},
		{0, 1000, 1, 7},
		{0, 1000, 1, 10000},
		{17, 983, 3, chunkDefault},
		{-50, 50, 1, 4},
	}
	for _, c := range cases {
		cov := newCoverage()
		LoopChunked(c.begin, c.end, c.step, c.chunk, LoopFunc(func(i int) {
			cov.mark(i)
		}))
		cov.check(t, c.begin, c.end, c.step)
	}
}

func TestLoopChunkIndependence(t *testing.T) {
	const begin, end, step = 0, 5000, 3
	want := newCoverage()
	LoopChunked(begin, end, step, chunkDefault, LoopFunc(func(i int) { want.mark(i) }))

	for _, chunk := range []int{1, 2, 5, 17, 100, 1 << 20} {
		got := newCoverage()
		LoopChunked(begin, end, step, chunk, LoopFunc(func(i int) { got.mark(i) }))
		got.check(t, begin, end, step)
	}
	want.check(t, begin, end, step)
}

func TestLoopArgumentValidation(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			p := recover()
			if p == nil {
				t.Errorf("%s: expected panic, got none", name)
				return
			}
			if _, ok := p.(*ArgumentError); !ok {
				t.Errorf("%s: expected *ArgumentError, got %T (%v)", name, p, p)
			}
		}()
		f()
	}

	noop := LoopFunc(func(int) {})
	mustPanic("begin==end", func() { Loop(0, noop) })
	mustPanic("begin>end", func() { LoopFrom(5, 3, noop) })
	mustPanic("step==0", func() { LoopBy(0, 10, 0, noop) })
	mustPanic("step<0", func() { LoopBy(0, 10, -1, noop) })
	mustPanic("chunk<=0", func() { LoopChunked(0, 10, 1, 0, noop) })
}

func TestLoopNestedLiveness(t *testing.T) {
	// A Loop body that itself calls Loop, nested well past the pool's
	// parallelism, must still terminate: the nested-execution guard
	// keeps a nested call from ever blocking waiting on a worker slot
	// that can only be freed by itself. Each level visits a single
	// index so the total work stays linear in depth; what's being
	// tested is the nesting depth itself.
	const depth = 256
	var recurse func(d int)
	recurse = func(d int) {
		if d == 0 {
			return
		}
		LoopBy(0, 1, 1, LoopFunc(func(int) { recurse(d - 1) }))
	}
	recurse(depth)
}
