// Package workerid provides the goroutine-local marker that lets the pool
// package answer "is the calling goroutine one of my own workers?".
//
// Go has no thread-local storage, and a worker's identity must be visible
// deep inside a recursive call chain that the pool package did not itself
// place there (a loop body may call back into jtkparallel.Loop or
// jtkparallel.Reduce without passing any worker handle through). A worker
// goroutine never hands off the body of a task to another goroutine except
// by forking a child task onto a deque, so the goroutine that is executing
// a worker's run loop is, for as long as that run loop lives, always the
// same goroutine -- marking it once at bootstrap is enough.
package workerid

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

var (
	mu    sync.RWMutex
	marks = make(map[uint64]interface{})
)

// id parses the numeric goroutine id out of the header line produced by
// runtime.Stack. This is the same family of runtime introspection
// internal.WrapPanic already relies on (runtime and runtime/debug); the
// goroutine id itself has no exported accessor, so parsing the stack
// header is the minimal way to recover it.
func id() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n64, _ := strconv.ParseUint(string(b), 10, 64)
	return n64
}

// Mark records that the calling goroutine carries the given value for as
// long as it lives. Intended to be called exactly once, by a worker
// goroutine immediately after it starts.
func Mark(v interface{}) {
	mu.Lock()
	marks[id()] = v
	mu.Unlock()
}

// Current returns the value previously associated with the calling
// goroutine by Mark, if any.
func Current() (interface{}, bool) {
	mu.RLock()
	v, ok := marks[id()]
	mu.RUnlock()
	return v, ok
}
