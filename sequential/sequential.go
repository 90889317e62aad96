// Package sequential provides single-threaded reference implementations
// of jtkparallel's Loop and Reduce, for testing and debugging the parallel
// engine itself: any difference between jtkparallel.Reduce's result and
// sequential.Reduce's, for the same body and range, is a bug in the
// parallel engine's splitting or combine order, not in the body.
//
// It is not recommended to use the implementations of this package for
// any other purpose, because they are almost certainly too inefficient
// for regular sequential programs -- they exist purely as an oracle.
package sequential

import "github.com/exascience/jtkparallel"

// Loop performs a loop over the half-open range [0, end), calling
// body.Compute once per index, in order, on the calling goroutine.
func Loop(end int, body jtkparallel.LoopBody) {
	LoopChunked(0, end, 1, body)
}

// LoopFrom performs a loop over [begin, end).
func LoopFrom(begin, end int, body jtkparallel.LoopBody) {
	LoopChunked(begin, end, 1, body)
}

// LoopBy performs a loop over [begin, end) with the given stride.
func LoopBy(begin, end, step int, body jtkparallel.LoopBody) {
	LoopChunked(begin, end, step, body)
}

// LoopChunked performs a loop over [begin, end) with the given stride.
// There is no chunk parameter: sequential execution never splits, so
// chunking would have no observable effect.
func LoopChunked(begin, end, step int, body jtkparallel.LoopBody) {
	if begin >= end {
		panic(&jtkparallel.ArgumentError{Predicate: "begin<end"})
	}
	if step <= 0 {
		panic(&jtkparallel.ArgumentError{Predicate: "step>0"})
	}
	for i := begin; i < end; i += step {
		body.Compute(i)
	}
}

// Reduce performs a reduction over the half-open range [0, end), equal by
// definition to the left-to-right fold of body.Compute(i) under
// body.Combine.
func Reduce[V any](end int, body jtkparallel.ReduceBody[V]) V {
	return ReduceBy(0, end, 1, body)
}

// ReduceFrom performs a reduction over [begin, end).
func ReduceFrom[V any](begin, end int, body jtkparallel.ReduceBody[V]) V {
	return ReduceBy(begin, end, 1, body)
}

// ReduceBy performs a reduction over [begin, end) with the given stride.
func ReduceBy[V any](begin, end, step int, body jtkparallel.ReduceBody[V]) V {
	if begin >= end {
		panic(&jtkparallel.ArgumentError{Predicate: "begin<end"})
	}
	if step <= 0 {
		panic(&jtkparallel.ArgumentError{Predicate: "step>0"})
	}
	v := body.Compute(begin)
	for i := begin + step; i < end; i += step {
		v = body.Combine(v, body.Compute(i))
	}
	return v
}
