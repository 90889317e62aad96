package jtkparallel

import "fmt"

// An ArgumentError reports that a Loop or Reduce call violated one of its
// preconditions (begin<end, step>0, or, when explicitly supplied,
// chunk>0). It is produced synchronously, before any task is created, and
// surfaces to the caller as a panic, naming the predicate that failed --
// Loop and Reduce have no error return value to carry it otherwise.
type ArgumentError struct {
	// Predicate names the precondition that failed, e.g. "begin<end",
	// "step>0", or "chunk>0".
	Predicate string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("jtkparallel: invalid argument: %s", e.Predicate)
}

func checkArgument(cond bool, predicate string) {
	if !cond {
		panic(&ArgumentError{Predicate: predicate})
	}
}
