// Package internal holds the handful of mechanisms shared across
// jtkparallel's subpackages that are not part of the public API.
//
// There is no default-batch-count helper here for a goroutine-per-batch
// Range family: jtkparallel drives its splitting with recursive division
// down to a chunk threshold instead (see the chunk policy and splitter in
// the jtkparallel package), so the one function this file keeps is
// WrapPanic, used to add stack context to a panic before it crosses a
// fork/join boundary.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic, so that a
// panic which crosses a fork/join boundary (and is re-thrown from a
// different goroutine than the one where it originated) still carries
// something useful about where it came from.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
