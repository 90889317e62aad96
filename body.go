package jtkparallel

// A LoopBody computes something for a loop index, for side effects only.
// Compute must be safe to call concurrently for disjoint indices; Loop
// assumes no ordering between invocations for different indices.
type LoopBody interface {
	Compute(i int)
}

// LoopFunc adapts an ordinary function to a LoopBody, the same way
// http.HandlerFunc adapts a function to an http.Handler.
type LoopFunc func(i int)

// Compute calls f(i).
func (f LoopFunc) Compute(i int) { f(i) }

// A ReduceBody computes a value for a loop index and knows how to combine
// two such values into one. Combine must be associative; it need not be
// commutative, and Reduce never reorders its arguments (see Reduce's
// documentation for the exact combine order it guarantees). Compute may
// be called for disjoint indices on many workers; Combine is always
// called on values this same invocation produced.
type ReduceBody[V any] interface {
	Compute(i int) V
	Combine(v1, v2 V) V
}

// ReduceFuncs adapts a pair of ordinary functions to a ReduceBody.
type ReduceFuncs[V any] struct {
	ComputeFunc func(i int) V
	CombineFunc func(v1, v2 V) V
}

// Compute calls r.ComputeFunc(i).
func (r ReduceFuncs[V]) Compute(i int) V { return r.ComputeFunc(i) }

// Combine calls r.CombineFunc(v1, v2).
func (r ReduceFuncs[V]) Combine(v1, v2 V) V { return r.CombineFunc(v1, v2) }
