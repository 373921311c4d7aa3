// Package scanner assembles compiled patterns into a single CompiledScanner
// (C5) and runs the multi-DFA matching engine (C6) implementing
// leftmost-longest, lowest-pattern-index-wins semantics over Unicode
// scalars.
package scanner

import (
	"errors"
	"unicode/utf8"

	"github.com/coregx/lexgen/ast"
	"github.com/coregx/lexgen/classes"
	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/nfa"
)

// CompiledScanner holds one minimized DFA per pattern. Every DFA shares a
// single alphabet (§5: classes are immutable and shared across every DFA
// built from the same compile call), so an edge's Class means the same
// atom no matter which pattern's DFA it belongs to.
type CompiledScanner struct {
	patterns []string
	dfas     []*dfa.DFA
	alphabet *classes.Alphabet
	literals *literalIndex
}

// Compile builds a scanner from patterns using DefaultConfig.
func Compile(patterns []string) (*CompiledScanner, error) {
	return CompileWithConfig(patterns, DefaultConfig())
}

// CompileWithConfig runs the full pipeline in two phases, failing fast on
// the first error (§7). Phase one Thompson-constructs every pattern's NFA
// into one shared classes.Registry, so identical character classes across
// patterns collapse to one class ID. Phase two computes a single
// classes.Alphabet from the now-complete registry and only then runs
// subset construction and minimization, so every DFA's Edge.Class atoms
// come from the same partition — a class interned by pattern 0 and reused
// by pattern 3 resolves to identical atom IDs in both DFAs.
func CompileWithConfig(patterns []string, cfg Config) (*CompiledScanner, error) {
	if len(patterns) == 0 {
		return nil, &InternalInvariantError{Detail: "Compile requires at least one pattern"}
	}

	reg := classes.NewRegistry()
	nodes := make([]*ast.Node, len(patterns))
	nfas := make([]*nfa.NFA, len(patterns))

	for i, pattern := range patterns {
		node, err := ast.FromSyntax(pattern, i)
		if err != nil {
			var unsupported *ast.UnsupportedError
			if errors.As(err, &unsupported) {
				return nil, &UnsupportedError{PatternIndex: unsupported.PatternIndex, Construct: unsupported.Construct}
			}
			return nil, &ParseError{PatternIndex: i, Err: err}
		}
		nodes[i] = node

		n, err := nfa.Compile(node, reg, i)
		if err != nil {
			return nil, err
		}
		nfas[i] = n
	}

	alphabet := classes.NewAlphabet(reg)
	dfas := make([]*dfa.DFA, len(patterns))
	for i, n := range nfas {
		d := dfa.Minimize(dfa.Build(n, alphabet))
		if d.AcceptsEmpty() {
			return nil, &EmptyPatternError{PatternIndex: i}
		}
		dfas[i] = d
	}

	cs := &CompiledScanner{
		patterns: append([]string(nil), patterns...),
		dfas:     dfas,
		alphabet: alphabet,
	}
	if cfg.EnableLiteralPrefilter {
		cs.literals = buildLiteralIndex(nodes, cfg.MinLiteralLen)
	}
	return cs, nil
}

// NumPatterns returns the number of compiled patterns.
func (s *CompiledScanner) NumPatterns() int { return len(s.patterns) }

// Pattern returns the source text of the pattern at index i.
func (s *CompiledScanner) Pattern(i int) string { return s.patterns[i] }

// smState is the per-pattern status the matching engine tracks while
// stepping every DFA in lockstep (§4.6.1): smDead once a pattern can no
// longer extend its match, smStart before any scalar has been consumed,
// smAccepting while sitting on an accepting state, smLongest while alive
// but currently between accepts (hunting for a longer one).
type smState uint8

const (
	smDead smState = iota
	smStart
	smAccepting
	smLongest
)

type patternRun struct {
	state smState
	cur   dfa.StateID
}

// matchAt runs every pattern's DFA in lockstep starting at byte offset at,
// implementing leftmost-longest-lowest-index resolution (§4.6.3): among
// all patterns that reach an accepting state, the longest match wins; ties
// at the same length go to the lowest pattern index, which falls out for
// free from scanning patterns in ascending order and only overwriting the
// running winner on a strictly longer match.
func (s *CompiledScanner) matchAt(input string, at int) (Match, bool) {
	runs := make([]patternRun, len(s.dfas))
	for i := range runs {
		runs[i] = patternRun{state: smStart, cur: 0}
	}
	alive := len(runs)

	haveBest := false
	var bestEnd int
	var bestPattern int

	pos := at
	for pos < len(input) {
		if alive == 0 {
			break
		}
		c, width := utf8.DecodeRuneInString(input[pos:])
		next := pos + width
		for i := range runs {
			r := &runs[i]
			if r.state == smDead {
				continue
			}
			t, ok := s.dfas[i].StepRune(r.cur, c)
			if !ok {
				r.state = smDead
				alive--
				continue
			}
			r.cur = t
			if s.dfas[i].IsAccepting(t) {
				r.state = smAccepting
				if !haveBest || next > bestEnd {
					haveBest = true
					bestEnd = next
					bestPattern = i
				}
			} else {
				r.state = smLongest
			}
		}
		pos = next
	}

	if !haveBest {
		return Match{}, false
	}
	return Match{Start: at, End: bestEnd, Pattern: bestPattern}, true
}
