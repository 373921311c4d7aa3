package ast

import (
	"fmt"
	"regexp/syntax"

	"github.com/coregx/lexgen/classes"
)

// UnsupportedError reports that a pattern used a construct outside the
// fixed AST contract (§6): anchors, back-references, captures, or the
// (?i) and (?s) inline flags. The (?m) and (?U) flags are accepted; they
// only affect anchors (rejected anyway) and greediness (ignored by the
// longest-match engine). It names the offending construct and the
// pattern's index so the caller can report it the way §7's Unsupported
// error requires.
type UnsupportedError struct {
	PatternIndex int
	Construct    string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("pattern %d: unsupported construct %q", e.PatternIndex, e.Construct)
}

// FromSyntax parses pattern with the standard library's regexp/syntax
// parser (the external parser §1 assumes is available) and lowers the
// result into the fixed AST contract. index is recorded on any returned
// error so fail-fast compilation (§7) can report which pattern failed.
func FromSyntax(pattern string, index int) (*Node, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		// regexp/syntax refuses back-references (\1..\9) as invalid escapes.
		if serr, ok := err.(*syntax.Error); ok && serr.Code == syntax.ErrInvalidEscape &&
			len(serr.Expr) == 2 && serr.Expr[1] >= '1' && serr.Expr[1] <= '9' {
			return nil, &UnsupportedError{PatternIndex: index, Construct: "back-reference " + serr.Expr}
		}
		return nil, fmt.Errorf("pattern %d: parse error: %w", index, err)
	}
	return lower(re, index)
}

func lower(re *syntax.Regexp, index int) (*Node, error) {
	if re.Flags&syntax.FoldCase != 0 {
		return nil, &UnsupportedError{PatternIndex: index, Construct: "(?i) case-insensitive flag"}
	}
	if re.Flags&syntax.DotNL != 0 {
		return nil, &UnsupportedError{PatternIndex: index, Construct: "(?s) dot-matches-newline flag"}
	}
	switch re.Op {
	case syntax.OpLiteral:
		return lowerLiteral(re), nil

	case syntax.OpCharClass:
		return lowerCharClass(re), nil

	case syntax.OpAnyChar:
		return Class(classes.NewRangeSet(classes.Range{Lo: 0, Hi: classes.MaxScalar})), nil

	case syntax.OpAnyCharNotNL:
		all := classes.NewRangeSet(classes.Range{Lo: 0, Hi: classes.MaxScalar})
		nl := classes.NewRangeSet(classes.Range{Lo: '\n', Hi: '\n'})
		return Class(classes.Difference(all, nl)), nil

	case syntax.OpEmptyMatch:
		return Concat(), nil

	case syntax.OpConcat:
		kids, err := lowerAll(re.Sub, index)
		if err != nil {
			return nil, err
		}
		return Concat(kids...), nil

	case syntax.OpAlternate:
		kids, err := lowerAll(re.Sub, index)
		if err != nil {
			return nil, err
		}
		return Alt(kids...), nil

	case syntax.OpStar:
		kid, err := lower(re.Sub[0], index)
		if err != nil {
			return nil, err
		}
		return Repeat(kid, 0, Unbounded), nil

	case syntax.OpPlus:
		kid, err := lower(re.Sub[0], index)
		if err != nil {
			return nil, err
		}
		return Repeat(kid, 1, Unbounded), nil

	case syntax.OpQuest:
		kid, err := lower(re.Sub[0], index)
		if err != nil {
			return nil, err
		}
		return Repeat(kid, 0, 1), nil

	case syntax.OpRepeat:
		kid, err := lower(re.Sub[0], index)
		if err != nil {
			return nil, err
		}
		max := re.Max
		if max < 0 {
			max = Unbounded
		}
		return Repeat(kid, re.Min, max), nil

	default:
		return nil, &UnsupportedError{PatternIndex: index, Construct: opName(re.Op)}
	}
}

func lowerAll(subs []*syntax.Regexp, index int) ([]*Node, error) {
	kids := make([]*Node, 0, len(subs))
	for _, s := range subs {
		n, err := lower(s, index)
		if err != nil {
			return nil, err
		}
		kids = append(kids, n)
	}
	return kids, nil
}

// lowerLiteral turns a (possibly multi-rune) OpLiteral into a Concat of
// single-rune Literal nodes, since the AST contract's Literal carries
// exactly one scalar.
func lowerLiteral(re *syntax.Regexp) *Node {
	if len(re.Rune) == 1 {
		return Literal(re.Rune[0])
	}
	kids := make([]*Node, len(re.Rune))
	for i, r := range re.Rune {
		kids[i] = Literal(r)
	}
	return Concat(kids...)
}

// lowerCharClass converts a syntax.Regexp with Op == OpCharClass. re.Rune
// holds sorted (lo, hi) pairs that regexp/syntax has already fully
// resolved — negated classes like \D arrive as their expanded positive
// complement, matching §4.1's "negation is materialized" requirement.
func lowerCharClass(re *syntax.Regexp) *Node {
	ranges := make([]classes.Range, 0, len(re.Rune)/2)
	for i := 0; i+1 < len(re.Rune); i += 2 {
		ranges = append(ranges, classes.Range{Lo: re.Rune[i], Hi: re.Rune[i+1]})
	}
	return Class(classes.NewRangeSet(ranges...))
}

func opName(op syntax.Op) string {
	switch op {
	case syntax.OpBeginLine:
		return "^ (begin line)"
	case syntax.OpEndLine:
		return "$ (end line)"
	case syntax.OpBeginText:
		return `\A (begin text)`
	case syntax.OpEndText:
		return `\z (end text)`
	case syntax.OpWordBoundary:
		return `\b (word boundary)`
	case syntax.OpNoWordBoundary:
		return `\B (non-word boundary)`
	case syntax.OpCapture:
		return "capture group"
	default:
		return op.String()
	}
}
