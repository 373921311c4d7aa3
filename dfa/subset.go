package dfa

import (
	"github.com/coregx/lexgen/classes"
	"github.com/coregx/lexgen/internal/conv"
	"github.com/coregx/lexgen/nfa"
)

// Build performs the classical ε-closure + powerset construction (§4.3),
// keyed by alphabet atom rather than by class ID or input symbol directly.
// Moving over atoms instead of raw classes.ID values is what makes the
// result deterministic: two classes interned in the same registry can
// overlap (e.g. "." and a literal it also matches), so grouping NFA edges
// by class ID directly can merge moves that should be kept apart, or split
// moves that should stay together, depending on which overlapping class a
// state happens to test first. atoms is the disjoint partition of every
// class in alphabet; walking it instead guarantees that each DFA edge
// corresponds to an input set no other edge of the same state also
// matches. Each DFA state corresponds to a canonicalized (sorted) set of
// NFA states; accept propagation holds a DFA state accepting iff its
// NFA-state set contains n.Accept.
func Build(n *nfa.NFA, alphabet *classes.Alphabet) *DFA {
	numAtoms := alphabet.NumAtoms()

	b := &subsetBuilder{n: n, index: make(map[string]StateID)}
	start := b.intern(n.EpsilonClosure([]nfa.StateID{n.Start}))

	edgesByState := [][]Edge{nil}
	queue := []StateID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		set := b.sets[cur]

		movedByAtom := make([][]nfa.StateID, numAtoms)
		for _, s := range set {
			st := n.States[s]
			if st.Kind != nfa.KindClass {
				continue
			}
			for _, atom := range alphabet.AtomsForClass(st.Class) {
				movedByAtom[atom] = append(movedByAtom[atom], st.Next)
			}
		}

		var edges []Edge
		for atom := 0; atom < numAtoms; atom++ {
			moved := movedByAtom[atom]
			if len(moved) == 0 {
				continue
			}
			closure := n.EpsilonClosure(moved)
			target, isNew := b.internNew(closure)
			if isNew {
				edgesByState = append(edgesByState, nil)
				queue = append(queue, target)
			}
			edges = append(edges, Edge{Class: classes.AtomID(atom), Target: target})
		}
		edgesByState[cur] = edges
	}

	d := &DFA{NumStates: len(b.sets), Alphabet: alphabet}
	for s := StateID(0); int(s) < len(b.sets); s++ {
		lo := len(d.Edges)
		d.Edges = append(d.Edges, edgesByState[s]...)
		d.Transitions = append(d.Transitions, Range{Lo: lo, Hi: len(d.Edges)})
		if b.containsAccept(b.sets[s]) {
			d.Accepting = append(d.Accepting, s)
		}
	}
	return d
}

type subsetBuilder struct {
	n     *nfa.NFA
	index map[string]StateID
	sets  [][]nfa.StateID
}

// intern assigns (or reuses) a StateID for set, which must already be
// canonicalized (sorted) by the caller.
func (b *subsetBuilder) intern(set []nfa.StateID) StateID {
	id, _ := b.internNew(set)
	return id
}

func (b *subsetBuilder) internNew(set []nfa.StateID) (id StateID, isNew bool) {
	k := setKey(set)
	if id, ok := b.index[k]; ok {
		return id, false
	}
	id = StateID(conv.IntToUint32(len(b.sets)))
	b.sets = append(b.sets, set)
	b.index[k] = id
	return id, true
}

func (b *subsetBuilder) containsAccept(set []nfa.StateID) bool {
	for _, s := range set {
		if s == b.n.Accept {
			return true
		}
	}
	return false
}

func setKey(set []nfa.StateID) string {
	buf := make([]byte, 0, len(set)*5)
	for _, s := range set {
		buf = appendUint(buf, uint32(s))
		buf = append(buf, ',')
	}
	return string(buf)
}

func appendUint(buf []byte, v uint32) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	var tmp [10]byte
	n := len(tmp)
	for v > 0 {
		n--
		tmp[n] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[n:]...)
}
