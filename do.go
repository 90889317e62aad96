package jtkparallel

import "github.com/exascience/jtkparallel/internal/pool"

// Do receives zero or more thunks and executes them in parallel on the
// shared worker pool, returning only once all of them have completed.
//
// If one or more thunks panic, Do eventually panics with the left-most
// recovered panic value. It is built on top of the pool that backs Loop
// and Reduce so that callers needing plain fan-out (jtkparallel/sort
// does) share the same worker pool rather than spawning their own
// goroutines.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	root := newThunkTask(thunks)
	dispatch(root)
	root.checkPanic()
}

type thunkTask struct {
	state
	leaf        func()
	left, right *thunkTask
}

func newThunkTask(thunks []func()) *thunkTask {
	t := &thunkTask{state: newState()}
	if len(thunks) == 1 {
		t.leaf = thunks[0]
		return t
	}
	half := len(thunks) / 2
	t.left = newThunkTask(thunks[:half])
	t.right = newThunkTask(thunks[half:])
	return t
}

func (t *thunkTask) Run(w *pool.Worker) {
	defer func() { t.finish(wrapPanic(recover())) }()
	t.exec(w)
}

func (t *thunkTask) exec(w *pool.Worker) {
	if t.leaf != nil {
		t.leaf()
		return
	}
	w.Fork(t.right)
	t.left.exec(w)
	w.Join(t.right)
	t.right.checkPanic()
}
