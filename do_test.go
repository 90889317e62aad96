package jtkparallel

import (
	"sync/atomic"
	"testing"
)

func TestDoRunsEveryThunk(t *testing.T) {
	var n int32
	thunks := make([]func(), 37)
	for i := range thunks {
		thunks[i] = func() { atomic.AddInt32(&n, 1) }
	}
	Do(thunks...)
	if got := atomic.LoadInt32(&n); got != 37 {
		t.Fatalf("ran %d thunks, want 37", got)
	}
}

func TestDoZeroAndOneThunk(t *testing.T) {
	Do() // must not panic or block

	var ran bool
	Do(func() { ran = true })
	if !ran {
		t.Fatal("single thunk was not run")
	}
}

func TestDoPanicPropagation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	Do(
		func() {},
		func() { panic("boom") },
		func() {},
	)
}

func TestDoNestedLiveness(t *testing.T) {
	// Nests Do calls far past any plausible pool parallelism. Only one
	// branch recurses so the total work stays linear in depth; the
	// point is the nesting depth itself, not the amount of work done at
	// each level.
	const depth = 256
	var recurse func(d int)
	recurse = func(d int) {
		if d == 0 {
			return
		}
		Do(
			func() { recurse(d - 1) },
			func() {},
		)
	}
	recurse(depth)
}
