/*
Package pool implements the process-wide worker pool that backs
jtkparallel's Loop and Reduce families: a fixed number of long-lived
worker goroutines, each with its own deque of pending tasks, stealing
from one another when idle.

The pool only knows about the Task interface; it has no notion of index
ranges, chunk sizes, or reduction values. Those live in the jtkparallel
package, one level up, which is what keeps this package reusable for
the plain fan-out primitive (Do) as well as the indexed-loop tasks.
*/
package pool

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/exascience/jtkparallel/internal/workerid"
)

// A Task is a unit of work the pool can run. Run executes it to
// completion (synchronously, on whichever goroutine calls it) and must
// arrange for Done to become readable afterwards. IsDone lets a joiner
// poll without blocking.
type Task interface {
	Run(w *Worker)
	Done() <-chan struct{}
	IsDone() bool
}

// Worker is one of the pool's fixed P goroutines. Only code running on a
// worker's own goroutine may Fork or Join; see CurrentWorker.
type Worker struct {
	pool  *Pool
	index int

	mu    sync.Mutex
	deque []Task
}

// Fork enqueues t on the current worker's own deque without blocking. It
// may be executed later by this worker or stolen by another.
func (w *Worker) Fork(t Task) {
	w.mu.Lock()
	w.deque = append(w.deque, t)
	w.mu.Unlock()
	atomic.AddInt64(&w.pool.queued, 1)
}

// Join waits for t to complete, executing other available tasks
// (popped from the worker's own deque, then stolen from others) while it
// waits, and falling back to a blocking wait on t's completion channel
// once there is nothing left to help with.
func (w *Worker) Join(t Task) {
	for {
		if t.IsDone() {
			return
		}
		if nt, ok := w.popOwn(); ok {
			nt.Run(w)
			continue
		}
		if nt, ok := w.pool.steal(w); ok {
			nt.Run(w)
			continue
		}
		<-t.Done()
		return
	}
}

func (w *Worker) popOwn() (Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := len(w.deque)
	if n == 0 {
		return nil, false
	}
	t := w.deque[n-1]
	w.deque[n-1] = nil
	w.deque = w.deque[:n-1]
	atomic.AddInt64(&w.pool.queued, -1)
	return t, true
}

func (w *Worker) stealFrom() (Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.deque) == 0 {
		return nil, false
	}
	t := w.deque[0]
	w.deque[0] = nil
	w.deque = w.deque[1:]
	atomic.AddInt64(&w.pool.queued, -1)
	return t, true
}

func (w *Worker) run() {
	workerid.Mark(w)
	backoff := minBackoff
	for {
		if t, ok := w.popOwn(); ok {
			t.Run(w)
			backoff = minBackoff
			continue
		}
		if t, ok := w.pool.steal(w); ok {
			t.Run(w)
			backoff = minBackoff
			continue
		}
		time.Sleep(backoff)
		if backoff < maxBackoff {
			backoff *= 2
		}
	}
}

const (
	minBackoff = time.Microsecond
	maxBackoff = time.Millisecond
)

// Pool is the fixed-parallelism worker pool itself. The zero value is not
// valid; use New or Global.
type Pool struct {
	workers []*Worker
	queued  int64
	rr      uint64
}

// New creates an independent pool with the given parallelism, starting its
// worker goroutines immediately. Most callers want Global; New exists so
// tests can exercise specific parallelism values without perturbing the
// process-wide singleton.
func New(parallelism int) *Pool {
	if parallelism < 1 {
		parallelism = 1
	}
	p := &Pool{workers: make([]*Worker, parallelism)}
	for i := range p.workers {
		w := &Worker{pool: p, index: i}
		p.workers[i] = w
		go w.run()
	}
	return p
}

var (
	globalOnce sync.Once
	globalPool *Pool

	overrideMu            sync.Mutex
	overrideParallelism   int
	globalPoolInitialized bool
)

// SetTestParallelism overrides the parallelism Global will use the first
// time it is called. It has no effect once Global has already initialized
// the singleton: the process-wide pool has no shutdown API, so its
// parallelism, like its existence, is fixed for the life of the process
// once chosen.
func SetTestParallelism(n int) {
	overrideMu.Lock()
	if !globalPoolInitialized {
		overrideParallelism = n
	}
	overrideMu.Unlock()
}

// Global returns the process-wide pool, creating it (with
// runtime.GOMAXPROCS(0) parallelism, unless overridden by
// SetTestParallelism before this first call) on first use.
func Global() *Pool {
	globalOnce.Do(func() {
		overrideMu.Lock()
		p := overrideParallelism
		globalPoolInitialized = true
		overrideMu.Unlock()
		if p <= 0 {
			p = runtime.GOMAXPROCS(0)
		}
		globalPool = New(p)
	})
	return globalPool
}

// Parallelism returns the pool's fixed worker count.
func (p *Pool) Parallelism() int {
	return len(p.workers)
}

// QueuedTaskCount returns an approximate count of tasks currently sitting
// in worker deques. It races with concurrent forks and steals by design:
// an exact count would require a lock shared across all workers, which
// would turn this into a contention point on every fork.
func (p *Pool) QueuedTaskCount() int {
	n := atomic.LoadInt64(&p.queued)
	if n < 0 {
		return 0
	}
	return int(n)
}

// SubmitAndWait is the entry point for top-level invocation from a
// goroutine that is not itself a pool worker: it hands t to one of the
// workers and blocks until t completes.
func (p *Pool) SubmitAndWait(t Task) {
	idx := atomic.AddUint64(&p.rr, 1) % uint64(len(p.workers))
	w := p.workers[idx]
	w.mu.Lock()
	w.deque = append(w.deque, t)
	w.mu.Unlock()
	atomic.AddInt64(&p.queued, 1)
	<-t.Done()
}

func (p *Pool) steal(self *Worker) (Task, bool) {
	n := len(p.workers)
	if n <= 1 {
		return nil, false
	}
	start := rand.Intn(n)
	for i := 0; i < n; i++ {
		w := p.workers[(start+i)%n]
		if w == self {
			continue
		}
		if t, ok := w.stealFrom(); ok {
			return t, true
		}
	}
	return nil, false
}

// CurrentWorker reports whether the calling goroutine is one of this
// pool's own workers, and if so, which one. Entry points use this to
// decide between direct invocation (a nested call, already running on a
// worker) and submit-and-block (a top-level call).
func CurrentWorker() (*Worker, bool) {
	v, ok := workerid.Current()
	if !ok {
		return nil, false
	}
	w, ok := v.(*Worker)
	return w, ok
}
