package pool

import (
	"sync"
	"sync/atomic"
	"testing"
)

type countingTask struct {
	done chan struct{}
	ran  *int32
	fn   func(w *Worker)
}

func (t *countingTask) Run(w *Worker) {
	defer close(t.done)
	atomic.AddInt32(t.ran, 1)
	if t.fn != nil {
		t.fn(w)
	}
}

func (t *countingTask) Done() <-chan struct{} { return t.done }

func (t *countingTask) IsDone() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func newCountingTask(ran *int32, fn func(w *Worker)) *countingTask {
	return &countingTask{done: make(chan struct{}), ran: ran, fn: fn}
}

func TestPoolRunsSubmittedTasksExactlyOnce(t *testing.T) {
	p := New(4)
	var ran int32
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		task := newCountingTask(&ran, nil)
		go func() {
			defer wg.Done()
			p.SubmitAndWait(task)
		}()
	}
	wg.Wait()
	if got := atomic.LoadInt32(&ran); got != 200 {
		t.Fatalf("ran %d tasks, want 200", got)
	}
}

func TestWorkerJoinRunsForkedChildren(t *testing.T) {
	p := New(2)
	var ran int32

	root := newCountingTask(&ran, func(w *Worker) {
		children := make([]*countingTask, 50)
		for i := range children {
			children[i] = newCountingTask(&ran, nil)
			w.Fork(children[i])
		}
		for _, c := range children {
			w.Join(c)
		}
	})
	p.SubmitAndWait(root)

	if got := atomic.LoadInt32(&ran); got != 51 {
		t.Fatalf("ran %d tasks, want 51", got)
	}
}

func TestCurrentWorkerOnlyInsidePool(t *testing.T) {
	if _, ok := CurrentWorker(); ok {
		t.Fatal("CurrentWorker reported true outside any pool")
	}

	p := New(2)
	var sawSelf bool
	task := newCountingTask(new(int32), func(w *Worker) {
		cur, ok := CurrentWorker()
		sawSelf = ok && cur == w
	})
	p.SubmitAndWait(task)
	if !sawSelf {
		t.Fatal("CurrentWorker did not report the running worker from inside a task")
	}
}

func TestSetTestParallelismBeforeFirstUse(t *testing.T) {
	// Global is process-wide and lazily initialized; exercising
	// SetTestParallelism against it here (rather than introducing a
	// second singleton) would make this test order-dependent with every
	// other test in the package that happens to touch Global first, so
	// this test skips itself when Global is already initialized, and
	// otherwise checks that Global's first initialization uses the
	// override.
	overrideMu.Lock()
	wasInitialized := globalPoolInitialized
	overrideMu.Unlock()
	if wasInitialized {
		t.Skip("global pool already initialized by an earlier test in this run")
	}
	SetTestParallelism(3)
	if got := Global().Parallelism(); got != 3 {
		t.Fatalf("Global().Parallelism() = %d, want 3", got)
	}
}
