// Package dfa implements subset construction (C3) and Hopcroft
// minimization (C4) over the disjoint atomic alphabet computed by package
// classes from the class IDs produced by package nfa.
package dfa

import "github.com/coregx/lexgen/classes"

// StateID identifies a DFA state; state 0 is always the entry (§3).
type StateID uint32

// Edge is one outgoing transition: consuming a scalar in Class moves to
// Target. Class is an atom of the DFA's Alphabet, not a raw classes.ID —
// atoms are pairwise disjoint by construction, so per state at most one
// Edge exists per distinct Class (§3 determinism invariant) and that
// invariant holds for real, not just by assumption.
type Edge struct {
	Class  classes.AtomID
	Target StateID
}

// DFA is the tuple (States, Transitions, Edges, Accepting) of §3. States
// are numbered 0..len(Transitions)-1; Transitions[s] is a half-open range
// into Edges holding state s's outgoing edges. Totality is not required: a
// state with no edge for a given class simply has no transition.
type DFA struct {
	NumStates   int
	Transitions []Range // indexed by StateID
	Edges       []Edge
	Accepting   []StateID // sorted ascending
	Alphabet    *classes.Alphabet
}

// Range is a half-open [Lo, Hi) slice into DFA.Edges.
type Range struct {
	Lo, Hi int
}

// EdgesFor returns state s's outgoing edges.
func (d *DFA) EdgesFor(s StateID) []Edge {
	r := d.Transitions[s]
	return d.Edges[r.Lo:r.Hi]
}

// Step returns the target of state s's edge for atom a, and whether one
// exists.
func (d *DFA) Step(s StateID, a classes.AtomID) (StateID, bool) {
	for _, e := range d.EdgesFor(s) {
		if e.Class == a {
			return e.Target, true
		}
	}
	return 0, false
}

// StepRune is the matching engine's per-scalar transition (§4.6.2): it
// resolves r to its atom in d.Alphabet and steps on that atom. Atoms
// partition the scalar domain disjointly, so a state has at most one edge
// whose atom contains any given r, and Step's linear scan finds it without
// ambiguity.
func (d *DFA) StepRune(s StateID, r rune) (StateID, bool) {
	a, ok := d.Alphabet.AtomFor(r)
	if !ok {
		return 0, false
	}
	return d.Step(s, a)
}

// IsAccepting reports whether s is an accepting state.
func (d *DFA) IsAccepting(s StateID) bool {
	lo, hi := 0, len(d.Accepting)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case d.Accepting[mid] < s:
			lo = mid + 1
		case d.Accepting[mid] > s:
			hi = mid
		default:
			return true
		}
	}
	return false
}

// AcceptsEmpty reports whether state 0's language contains the empty
// string, i.e. the entry state is itself accepting. Compilation rejects
// such patterns (§7 EmptyPattern) since they would force zero-length
// winners.
func (d *DFA) AcceptsEmpty() bool {
	return d.IsAccepting(0)
}
