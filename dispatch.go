package jtkparallel

import "github.com/exascience/jtkparallel/internal/pool"

// dispatch is the nested-call dispatch rule: a body that itself calls
// Loop, Reduce, or Do must never submit-and-block, because the goroutine
// it is running on may be a worker the pool needs to make progress, and
// the pool could be entirely occupied by callers blocked the same way.
// So if the calling goroutine is already a pool worker, the root task
// runs directly on it (it still forks its right child onto the pool as
// usual; only the top-level dispatch decision changes). Otherwise the
// task is submitted to the pool and the caller blocks until it
// completes.
func dispatch(t pool.Task) {
	if w, ok := pool.CurrentWorker(); ok {
		t.Run(w)
	} else {
		pool.Global().SubmitAndWait(t)
	}
}
