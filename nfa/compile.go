package nfa

import (
	"fmt"

	"github.com/coregx/lexgen/ast"
	"github.com/coregx/lexgen/classes"
)

// Compile builds an NFA for root, interning every character class it uses
// into reg (§4.9: "the registry must be built before any NFA edges are
// finalized so IDs are consistent" — reg is shared across every pattern
// compiled into the same scanner). index identifies the source pattern for
// error reporting.
func Compile(root *ast.Node, reg *classes.Registry, index int) (*NFA, error) {
	c := &compiler{b: NewBuilder(), reg: reg, index: index}
	start, end, err := c.compile(root)
	if err != nil {
		return nil, err
	}
	accept := c.b.AddMatch()
	c.b.Patch(end, accept)
	return c.b.Finish(start, accept, reg), nil
}

type compiler struct {
	b     *Builder
	reg   *classes.Registry
	index int
}

// compile lowers n into a fragment (start, end), where end is a dangling
// reference the caller must Patch to whatever follows.
func (c *compiler) compile(n *ast.Node) (start, end StateID, err error) {
	switch n.Kind {
	case ast.KindLiteral:
		class := c.reg.Intern(classes.Single(n.Rune))
		id := c.b.AddClass(class, InvalidState)
		return id, id, nil

	case ast.KindClass:
		class := c.reg.Intern(n.Ranges)
		id := c.b.AddClass(class, InvalidState)
		return id, id, nil

	case ast.KindConcat:
		return c.compileConcat(n.Kids)

	case ast.KindAlt:
		return c.compileAlt(n.Kids)

	case ast.KindRepeat:
		return c.compileRepeat(n.Kids[0], n.Min, n.Max)

	case ast.KindGroup:
		// Non-capturing by contract (§6): a Group contributes no behavior
		// beyond its child's, so it compiles to nothing of its own.
		return c.compile(n.Kids[0])

	default:
		return InvalidState, InvalidState, &CompileError{
			PatternIndex: c.index,
			Err:          fmt.Errorf("unrecognized AST node kind %d", n.Kind),
		}
	}
}

// compileEmpty returns a fragment matching the empty string: a single
// epsilon hop with a dangling end, used for empty Concat and the zero
// copies left over when a Repeat's minimum is 0.
func (c *compiler) compileEmpty() (start, end StateID) {
	id := c.b.AddEpsilon(InvalidState)
	return id, id
}

func (c *compiler) compileConcat(kids []*ast.Node) (start, end StateID, err error) {
	if len(kids) == 0 {
		s, e := c.compileEmpty()
		return s, e, nil
	}
	start, end, err = c.compile(kids[0])
	if err != nil {
		return InvalidState, InvalidState, err
	}
	for _, k := range kids[1:] {
		ks, ke, kerr := c.compile(k)
		if kerr != nil {
			return InvalidState, InvalidState, kerr
		}
		c.b.Patch(end, ks)
		end = ke
	}
	return start, end, nil
}

// compileAlt lowers an n-ary alternation as right-nested binary
// alternations: each pair shares one join epsilon state so both branches'
// dangling ends converge to a single fragment end.
func (c *compiler) compileAlt(kids []*ast.Node) (start, end StateID, err error) {
	if len(kids) == 1 {
		return c.compile(kids[0])
	}
	lstart, lend, err := c.compile(kids[0])
	if err != nil {
		return InvalidState, InvalidState, err
	}
	rstart, rend, err := c.compileAlt(kids[1:])
	if err != nil {
		return InvalidState, InvalidState, err
	}
	join := c.b.AddEpsilon(InvalidState)
	c.b.Patch(lend, join)
	c.b.Patch(rend, join)
	split := c.b.AddSplit(lstart, rstart)
	return split, join, nil
}

// compileRepeat unrolls {min,max} exactly as §4.2 describes: min mandatory
// copies followed by (max-min) optional, epsilon-bypassed copies when max
// is finite, or a trailing star/plus loop when max is unbounded.
func (c *compiler) compileRepeat(sub *ast.Node, min, max int) (start, end StateID, err error) {
	if max == ast.Unbounded {
		if min == 0 {
			return c.compileStar(sub)
		}
		mandatory := make([]*ast.Node, min-1)
		for i := range mandatory {
			mandatory[i] = sub
		}
		mstart, mend, err := c.compileConcat(mandatory)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		pstart, pend, err := c.compilePlus(sub)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		if min == 1 {
			return pstart, pend, nil
		}
		c.b.Patch(mend, pstart)
		return mstart, pend, nil
	}

	if max == 0 {
		s, e := c.compileEmpty()
		return s, e, nil
	}

	mandatory := make([]*ast.Node, min)
	for i := range mandatory {
		mandatory[i] = sub
	}
	start, end, err = c.compileConcat(mandatory)
	if err != nil {
		return InvalidState, InvalidState, err
	}

	for i := 0; i < max-min; i++ {
		qstart, qend, qerr := c.compileQuest(sub)
		if qerr != nil {
			return InvalidState, InvalidState, qerr
		}
		if min == 0 && i == 0 {
			start, end = qstart, qend
			continue
		}
		c.b.Patch(end, qstart)
		end = qend
	}
	return start, end, nil
}

// compileStar builds Thompson's classic a* fragment: a split that either
// enters the body (looping back to itself) or skips it entirely.
func (c *compiler) compileStar(sub *ast.Node) (start, end StateID, err error) {
	astart, aend, err := c.compile(sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	split := c.b.AddSplit(astart, InvalidState)
	c.b.Patch(aend, split)
	return split, split, nil
}

// compilePlus builds a+: the body must run once, then the same
// skip-or-loop split as star.
func (c *compiler) compilePlus(sub *ast.Node) (start, end StateID, err error) {
	astart, aend, err := c.compile(sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	split := c.b.AddSplit(astart, InvalidState)
	c.b.Patch(aend, split)
	return astart, split, nil
}

// compileQuest builds a?: a split between the body and a join that the
// body's end also feeds into.
func (c *compiler) compileQuest(sub *ast.Node) (start, end StateID, err error) {
	astart, aend, err := c.compile(sub)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	join := c.b.AddEpsilon(InvalidState)
	c.b.Patch(aend, join)
	split := c.b.AddSplit(astart, join)
	return split, join, nil
}
