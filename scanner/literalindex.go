package scanner

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/lexgen/ast"
	"github.com/coregx/lexgen/literal"
)

// literalIndex is a cursor-jump optimization (§10 DOMAIN STACK) built over
// an Aho-Corasick automaton. It exists only when every compiled pattern is
// a pure concatenation of literal scalars — in that case, any start
// position that doesn't begin a full literal occurrence cannot start a
// match of ANY pattern, so the automaton's next-occurrence answer is an
// exact, not approximate, lower bound on the next candidate position.
//
// The automaton never decides which pattern wins or how long a match is —
// matchAt still runs the full lockstep DFA scan from the candidate
// position it returns. This keeps the engine's correctness independent of
// the automaton's internal tie-breaking.
type literalIndex struct {
	automaton *ahocorasick.Automaton
}

// buildLiteralIndex returns nil unless every node in nodes is a pure
// literal of at least minLen scalars; a single non-literal pattern (a
// class, repetition, or alternation) disqualifies the whole scanner from
// the fast path, since then some match could start where no literal does.
func buildLiteralIndex(nodes []*ast.Node, minLen int) *literalIndex {
	lits := make([]literal.Literal, 0, len(nodes))
	for _, n := range nodes {
		runes, ok := pureLiteral(n)
		if !ok || len(runes) < minLen {
			return nil
		}
		lits = append(lits, literal.NewLiteral([]byte(string(runes)), true))
	}
	if len(lits) == 0 {
		return nil
	}

	seq := literal.NewSeq(lits...)
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &literalIndex{automaton: automaton}
}

// pureLiteral reports whether n matches exactly one fixed scalar sequence:
// a Literal, a transparent Group around one, or a Concat built entirely
// from such nodes.
func pureLiteral(n *ast.Node) ([]rune, bool) {
	switch n.Kind {
	case ast.KindLiteral:
		return []rune{n.Rune}, true
	case ast.KindGroup:
		return pureLiteral(n.Kids[0])
	case ast.KindConcat:
		var out []rune
		for _, k := range n.Kids {
			sub, ok := pureLiteral(k)
			if !ok {
				return nil, false
			}
			out = append(out, sub...)
		}
		return out, true
	default:
		return nil, false
	}
}

// nextCandidate returns the byte offset of the next position at or after
// at where some literal pattern begins, or ok=false if none remain.
func (li *literalIndex) nextCandidate(data []byte, at int) (int, bool) {
	if at >= len(data) {
		return 0, false
	}
	m := li.automaton.Find(data, at)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}
