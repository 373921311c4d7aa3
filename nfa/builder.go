package nfa

import (
	"github.com/coregx/lexgen/classes"
	"github.com/coregx/lexgen/internal/conv"
)

// Builder constructs an NFA incrementally via Thompson's algorithm.
// Fragments are built bottom-up: each Add* call returns the ID of the new
// state, and every fragment carries exactly one dangling outgoing
// reference (tracked by the caller as that fragment's "end") until Patch
// points it at whatever comes next.
//
// By convention, a KindSplit state's Left branch is always filled in at
// construction time and Right is the dangling slot Patch fills in later;
// this lets Patch treat KindClass/KindEpsilon's Next and KindSplit's Right
// uniformly.
type Builder struct {
	states []State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddMatch appends the (unique, §3) accepting state.
func (b *Builder) AddMatch() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{Kind: KindMatch})
	return id
}

// AddClass appends a state that consumes one scalar in class and moves to
// next (InvalidState if not yet known).
func (b *Builder) AddClass(class classes.ID, next StateID) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{Kind: KindClass, Class: class, Next: next})
	return id
}

// AddEpsilon appends a state that moves to next without consuming input.
func (b *Builder) AddEpsilon(next StateID) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{Kind: KindEpsilon, Next: next})
	return id
}

// AddSplit appends a state that epsilon-transitions to both left and
// right. Pass InvalidState for right to mark it as the dangling slot a
// later Patch call will fill.
func (b *Builder) AddSplit(left, right StateID) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{Kind: KindSplit, Left: left, Right: right})
	return id
}

// Patch fills in the dangling outgoing reference of the state at ref:
// Next for KindClass/KindEpsilon, Right for KindSplit.
func (b *Builder) Patch(ref StateID, target StateID) {
	switch b.states[ref].Kind {
	case KindClass, KindEpsilon:
		b.states[ref].Next = target
	case KindSplit:
		b.states[ref].Right = target
	}
}

// Finish freezes the builder into an NFA with the given entry and
// accepting states.
func (b *Builder) Finish(start, accept StateID, reg *classes.Registry) *NFA {
	return &NFA{States: b.states, Start: start, Accept: accept, Classes: reg}
}
