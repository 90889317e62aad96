package jtkparallel

import "github.com/exascience/jtkparallel/internal"

// state is embedded by every task type in this package (actionTask,
// reduceTask, thunkTask) to provide the bookkeeping internal/pool.Task
// needs: a completion signal, and a place to stash a panic that occurred
// while producing the result so it can be re-thrown by whoever joins on
// the task, on whatever goroutine that join happens to run on.
type state struct {
	done     chan struct{}
	panicVal interface{}
}

func newState() state {
	return state{done: make(chan struct{})}
}

// finish records p (which may be nil) as this task's panic, if any, and
// marks it done. p should already have passed through internal.WrapPanic.
func (s *state) finish(p interface{}) {
	s.panicVal = p
	close(s.done)
}

func (s *state) Done() <-chan struct{} { return s.done }

func (s *state) IsDone() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// checkPanic re-throws the panic this task's body produced, if any. Call
// after Done() has been observed to be closed.
func (s *state) checkPanic() {
	if s.panicVal != nil {
		panic(s.panicVal)
	}
}

func wrapPanic(p interface{}) interface{} {
	return internal.WrapPanic(p)
}
