/*
Package jtkparallel provides a parallel indexed-loop engine: Loop and
Reduce families of functions that execute a loop body over an integer
index range [begin, end) with positive stride step, distributing disjoint
sub-ranges across a shared worker pool, and -- in the Reduce family --
combining per-sub-range results into a single value via a user-supplied
associative combiner.

As a simple example, consider squaring the floats in one array into a
second array:

	func sqrParallel(a, b []float64) {
		jtkparallel.Loop(len(a), jtkparallel.LoopFunc(func(i int) {
			b[i] = a[i] * a[i]
		}))
	}

The body (here wrapped in a LoopFunc) is invoked once per index in the
range. The order of invocations is both indeterminate and irrelevant
because the computation for each index is independent -- bodies must not
share mutable state that requires synchronization.

A similar facility reduces a sequence of indexed values to one:

	func sumParallel(a []float64) float64 {
		return jtkparallel.Reduce[float64](len(a), jtkparallel.ReduceFuncs[float64]{
			ComputeFunc: func(i int) float64 { return a[i] },
			CombineFunc: func(v1, v2 float64) float64 { return v1 + v2 },
		})
	}

More general loops are supported and are equivalent to the following
serial code:

	for i := begin; i < end; i += step {
		// some computation that depends on i
	}

Loop and Reduce require that begin is less than end and that step is
positive. Begin less than end ensures Reduce is always well defined for
at least one index; step positive ensures the loop terminates.

Loop and Reduce submit tasks to a worker pool shared by all callers of
these functions in the process. They recursively split a range into two
roughly equal halves so that disjoint sets of indices are processed in
parallel on different workers, down to a threshold called chunk below
which a set of indices is processed sequentially on a single worker.
Increasing chunk therefore reduces the number of tasks (and task-creation
overhead) but limits parallelism; decreasing it does the opposite. When
chunk is not supplied, a default is computed from the pool's parallelism
and its currently queued task count, aiming for roughly eight tasks per
worker.

Loop and Reduce bodies may themselves call Loop, Reduce, or Do: such
nested calls are detected and run directly on the calling worker rather
than being resubmitted to the pool, so nesting to arbitrary depth does
not deadlock even when the pool's workers are all already busy with
outer calls.

jtkparallel provides the following subpackages:

jtkparallel/sequential provides single-threaded reference implementations
of Loop and Reduce, for testing and debugging.

jtkparallel/sort provides parallel sorting algorithms built on top of
Do and ReduceBy.

jtkparallel/psync provides a sharded parallel map whose parallel range
operation is built on Loop.

Reference: this package's approach is modeled on Dave Hale's
edu.mines.jtk.util.Parallel (Colorado School of Mines), itself influenced
by Doug Lea's Java fork/join framework; see "A Java Fork/Join Framework"
for theoretical background.
*/
package jtkparallel
