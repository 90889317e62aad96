package jtkparallel

import "github.com/exascience/jtkparallel/internal/pool"

// Loop performs a loop over the half-open range [0, end).
func Loop(end int, body LoopBody) {
	loop(0, end, 1, chunkDefault, body)
}

// LoopFrom performs a loop over the half-open range [begin, end).
func LoopFrom(begin, end int, body LoopBody) {
	loop(begin, end, 1, chunkDefault, body)
}

// LoopBy performs a loop over [begin, end), visiting begin, begin+step,
// begin+2*step, and so on while less than end.
func LoopBy(begin, end, step int, body LoopBody) {
	loop(begin, end, step, chunkDefault, body)
}

// LoopChunked performs a loop over [begin, end) with the given stride,
// forking parallel tasks for sets of indices larger than chunk and
// processing smaller sets sequentially.
func LoopChunked(begin, end, step, chunk int, body LoopBody) {
	loop(begin, end, step, chunk, body)
}

func loop(begin, end, step, chunk int, body LoopBody) {
	checkArgument(begin < end, "begin<end")
	checkArgument(step > 0, "step>0")
	chunk = effectiveChunk(begin, end, step, chunk)
	root := &actionTask{begin: begin, end: end, step: step, chunk: chunk, body: body, state: newState()}
	dispatch(root)
	root.checkPanic()
}

// actionTask is the divide-and-conquer range task for Loop: no result,
// purely side-effecting, split recursively until each leaf's span is at
// or below the chunk threshold.
type actionTask struct {
	state
	begin, end, step, chunk int
	body                    LoopBody
}

func (t *actionTask) Run(w *pool.Worker) {
	defer func() { t.finish(wrapPanic(recover())) }()
	t.exec(w)
}

func (t *actionTask) exec(w *pool.Worker) {
	if t.end-t.begin <= splitChunk(t.chunk)*t.step {
		for i := t.begin; i < t.end; i += t.step {
			t.body.Compute(i)
		}
		return
	}
	m := midpoint(t.begin, t.end, t.step)
	left := &actionTask{begin: t.begin, end: m, step: t.step, chunk: t.chunk, body: t.body}
	var right *actionTask
	if m < t.end {
		right = &actionTask{begin: m, end: t.end, step: t.step, chunk: t.chunk, body: t.body, state: newState()}
		w.Fork(right)
	}
	left.exec(w)
	if right != nil {
		w.Join(right)
		right.checkPanic()
	}
}
