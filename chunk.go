package jtkparallel

import "github.com/exascience/jtkparallel/internal/pool"

// midpoint computes the split point for [begin, end) with the given step,
// guaranteed to satisfy begin < m <= end, (m-begin)%step == 0, and
// m-begin >= end-m: the left half is never empty and never smaller than
// the right half, which is what makes the recursion terminate (the left
// half always makes progress) and keeps the thread that dives straight
// into the left half from starving.
func midpoint(begin, end, step int) int {
	return begin + step + ((end-begin-1)/2/step)*step
}

// chunkDefault is a sentinel value no caller could plausibly pass
// explicitly, used internally to mean "compute the chunk size from the
// chunk policy". It lets LoopChunked/ReduceChunked share their
// implementation with the unchunked Loop/LoopBy/Reduce/ReduceBy
// entry points, which have no chunk parameter to default.
const chunkDefault = -(1<<31 - 1)

// effectiveChunk resolves the user-requested chunk (or chunkDefault) into
// the chunk size a task should actually use, consulting the chunk policy
// when no explicit value was given.
//
// The pool's ntasks figure can be zero or negative once its queued-task
// count exceeds roughly 8x its parallelism. Rather than clamp ntasks to
// be positive in that case, this falls back to treating the whole range
// as one chunk (sequential execution for this invocation): the pool is
// already oversubscribed by a wide margin, so forcing yet more splitting
// would only add task-creation overhead without improving throughput.
func effectiveChunk(begin, end, step, chunk int) int {
	if chunk != chunkDefault {
		checkArgument(chunk > 0, "chunk>0")
		return chunk
	}
	p := pool.Global()
	ni := 1 + (end-begin-1)/step
	nthread := p.Parallelism()
	nqueued := p.QueuedTaskCount()
	var ntasks int
	if nthread > 1 {
		ntasks = nthread*8 - nqueued
	} else {
		ntasks = 1
	}
	if ntasks > 0 {
		return ni / ntasks
	}
	return ni
}

// splitChunk clamps a task's chunk to the minimum of 1 for the purpose of
// the split decision: a chunk of 0, which effectiveChunk can legitimately
// return when the range is smaller than the pool's target task count,
// behaves exactly like a chunk of 1 (every leaf ends up a single index).
func splitChunk(chunk int) int {
	if chunk < 1 {
		return 1
	}
	return chunk
}
