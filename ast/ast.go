// Package ast defines the fixed AST contract the compile pipeline consumes
// (§6): Literal, Class, Concat, Alt, Repeat, and Group nodes. Nothing else
// is valid input to the NFA builder; any other surface-syntax construct
// must be rejected before it reaches this package.
package ast

import "github.com/coregx/lexgen/classes"

// Kind identifies which of the six supported node shapes a Node carries.
type Kind int

const (
	// KindLiteral matches exactly one scalar.
	KindLiteral Kind = iota
	// KindClass matches one scalar against a character class.
	KindClass
	// KindConcat matches its children in sequence.
	KindConcat
	// KindAlt matches any one of its children.
	KindAlt
	// KindRepeat matches its single child between Min and Max times
	// (Max == Unbounded for no upper bound).
	KindRepeat
	// KindGroup wraps a single child with non-capturing semantics only;
	// it exists purely for surface-syntax fidelity and contributes no
	// behavior beyond its child's.
	KindGroup
)

// Unbounded marks a Repeat node with no upper bound ({m,}).
const Unbounded = -1

// Node is one AST node. Field validity depends on Kind:
//
//	KindLiteral: Rune
//	KindClass:   Ranges (already fully resolved: negation and set
//	             difference applied, per §4.1)
//	KindConcat:  Kids (zero or more)
//	KindAlt:     Kids (two or more)
//	KindRepeat:  Kids[0], Min, Max
//	KindGroup:   Kids[0]
type Node struct {
	Kind   Kind
	Rune   rune
	Ranges classes.RangeSet
	Kids   []*Node
	Min    int
	Max    int
}

// Literal returns a node matching exactly the scalar r.
func Literal(r rune) *Node {
	return &Node{Kind: KindLiteral, Rune: r}
}

// Class returns a node matching any scalar in ranges.
func Class(ranges classes.RangeSet) *Node {
	return &Node{Kind: KindClass, Ranges: ranges}
}

// Concat returns a node matching kids in sequence.
func Concat(kids ...*Node) *Node {
	return &Node{Kind: KindConcat, Kids: kids}
}

// Alt returns a node matching any one of kids.
func Alt(kids ...*Node) *Node {
	return &Node{Kind: KindAlt, Kids: kids}
}

// Repeat returns a node matching kid between min and max times.
func Repeat(kid *Node, min, max int) *Node {
	return &Node{Kind: KindRepeat, Kids: []*Node{kid}, Min: min, Max: max}
}

// Group returns a node wrapping kid with non-capturing semantics.
func Group(kid *Node) *Node {
	return &Node{Kind: KindGroup, Kids: []*Node{kid}}
}
