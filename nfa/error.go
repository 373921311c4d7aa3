package nfa

import "fmt"

// CompileError wraps a failure to build an NFA for one pattern, carrying
// its index so fail-fast compilation (§7) can report which pattern failed.
type CompileError struct {
	PatternIndex int
	Err          error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern %d: NFA compilation failed: %v", e.PatternIndex, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
