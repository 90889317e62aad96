package jtkparallel

import "github.com/exascience/jtkparallel/internal/pool"

// Reduce performs a reduction over the half-open range [0, end).
func Reduce[V any](end int, body ReduceBody[V]) V {
	return reduce(0, end, 1, chunkDefault, body)
}

// ReduceFrom performs a reduction over the half-open range [begin, end).
func ReduceFrom[V any](begin, end int, body ReduceBody[V]) V {
	return reduce(begin, end, 1, chunkDefault, body)
}

// ReduceBy performs a reduction over [begin, end) with the given stride.
func ReduceBy[V any](begin, end, step int, body ReduceBody[V]) V {
	return reduce(begin, end, step, chunkDefault, body)
}

// ReduceChunked performs a reduction over [begin, end) with the given
// stride, forking parallel tasks for sets of indices larger than chunk
// and processing smaller sets sequentially.
//
// The result equals the sequential left-to-right fold of
// body.Compute(i) for i = begin, begin+step, ... under body.Combine, for
// any chunk and any pool parallelism: the splitter always puts lower
// indices in the left half, leaves combine lower indices first, and a
// branch always combines its left subtree's result before its right
// subtree's, so this holds regardless of scheduling -- body.Combine need
// only be associative, never commutative, and its arguments are never
// reordered.
func ReduceChunked[V any](begin, end, step, chunk int, body ReduceBody[V]) V {
	return reduce(begin, end, step, chunk, body)
}

func reduce[V any](begin, end, step, chunk int, body ReduceBody[V]) V {
	checkArgument(begin < end, "begin<end")
	checkArgument(step > 0, "step>0")
	chunk = effectiveChunk(begin, end, step, chunk)
	root := &reduceTask[V]{begin: begin, end: end, step: step, chunk: chunk, body: body, state: newState()}
	dispatch(root)
	root.checkPanic()
	return root.result
}

// reduceTask is the divide-and-conquer range task for Reduce: each leaf
// produces a value, and each branch combines its children's values in
// left-to-right order.
type reduceTask[V any] struct {
	state
	begin, end, step, chunk int
	body                    ReduceBody[V]
	result                  V
}

func (t *reduceTask[V]) Run(w *pool.Worker) {
	defer func() { t.finish(wrapPanic(recover())) }()
	t.result = t.exec(w)
}

func (t *reduceTask[V]) exec(w *pool.Worker) V {
	if t.end-t.begin <= splitChunk(t.chunk)*t.step {
		v := t.body.Compute(t.begin)
		for i := t.begin + t.step; i < t.end; i += t.step {
			v = t.body.Combine(v, t.body.Compute(i))
		}
		return v
	}
	m := midpoint(t.begin, t.end, t.step)
	left := &reduceTask[V]{begin: t.begin, end: m, step: t.step, chunk: t.chunk, body: t.body}
	var right *reduceTask[V]
	if m < t.end {
		right = &reduceTask[V]{begin: m, end: t.end, step: t.step, chunk: t.chunk, body: t.body, state: newState()}
		w.Fork(right)
	}
	v := left.exec(w)
	if right != nil {
		w.Join(right)
		right.checkPanic()
		v = t.body.Combine(v, right.result)
	}
	return v
}
