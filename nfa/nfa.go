// Package nfa implements the Thompson-style NFA builder (C2): AST nodes,
// over class IDs from a shared classes.Registry, become an epsilon-NFA with
// a single entry state and a single accepting state (§3, §4.2).
package nfa

import (
	"github.com/coregx/lexgen/classes"
	"github.com/coregx/lexgen/internal/conv"
	"github.com/coregx/lexgen/internal/sparse"
)

// StateID identifies an NFA state within one NFA's state array.
type StateID uint32

// InvalidState marks an unset or not-yet-patched state reference.
const InvalidState StateID = 0xFFFFFFFF

// Kind identifies what shape of transitions a State carries.
type Kind uint8

const (
	// KindMatch is the NFA's single accepting state; it has no outgoing
	// edges.
	KindMatch Kind = iota
	// KindClass consumes one scalar matching Class and moves to Next.
	KindClass
	// KindEpsilon moves to Next without consuming input.
	KindEpsilon
	// KindSplit moves to either Left or Right without consuming input
	// (alternation and quantifiers).
	KindSplit
)

// State is one NFA node. Field validity depends on Kind, matching the §3
// invariant that every class ID referenced by any edge is present in the
// registry that produced it.
type State struct {
	Kind  Kind
	Class classes.ID // KindClass
	Next  StateID    // KindClass, KindEpsilon
	Left  StateID    // KindSplit
	Right StateID    // KindSplit
}

// NFA is a directed graph with exactly one entry state and one accepting
// state (§3).
type NFA struct {
	States  []State
	Start   StateID
	Accept  StateID
	Classes *classes.Registry
}

// EpsilonClosure returns the set of states reachable from any state in
// start without consuming input, including start itself. The result is
// sorted ascending, matching the canonicalization the Subset Constructor
// (C3) relies on to deduplicate DFA states (§4.3).
func (n *NFA) EpsilonClosure(start []StateID) []StateID {
	seen := sparse.NewSparseSet(conv.IntToUint32(len(n.States)))
	var stack, out []StateID
	for _, s := range start {
		if !seen.Contains(uint32(s)) {
			seen.Insert(uint32(s))
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, id)
		st := n.States[id]
		switch st.Kind {
		case KindEpsilon:
			if !seen.Contains(uint32(st.Next)) {
				seen.Insert(uint32(st.Next))
				stack = append(stack, st.Next)
			}
		case KindSplit:
			if !seen.Contains(uint32(st.Left)) {
				seen.Insert(uint32(st.Left))
				stack = append(stack, st.Left)
			}
			if !seen.Contains(uint32(st.Right)) {
				seen.Insert(uint32(st.Right))
				stack = append(stack, st.Right)
			}
		}
	}
	return sortStates(out)
}

func sortStates(ids []StateID) []StateID {
	// Small, construction-time-only sets: insertion sort avoids pulling in
	// sort.Slice's reflection overhead for what is almost always under a
	// few dozen states.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
