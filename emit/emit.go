// Package emit renders a compiled scanner (§4.5/§6 "serialized compiled
// form") as Go source: one package-level variable per component of the
// per-DFA quadruple (source text, accepting states, state ranges, edges)
// plus the shared class-predicate table. It knows only the serialized
// shape scanner.CompiledScanner.Records/ClassTable expose — nothing about
// NFA or DFA construction — matching the boundary a real code-generator
// backend would occupy (§4.7, NEW).
package emit

import (
	"io"
	"strconv"

	"github.com/coregx/lexgen/scanner"
	"github.com/dave/jennifer/jen"
)

// Scanner renders s as a Go source file in package pkg and writes it to w.
func Scanner(w io.Writer, pkg string, s *scanner.CompiledScanner) error {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by lexgen. DO NOT EDIT.")

	records := s.Records()
	f.Var().Id("patternSource").Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, r := range records {
			g.Lit(r.SourceText)
		}
	})

	for i, r := range records {
		emitDFARecord(f, i, r)
	}

	emitClassTable(f, s.ClassTable())

	return f.Render(w)
}

func emitDFARecord(f *jen.File, index int, r scanner.DFARecord) {
	accepting := jen.Id(acceptingName(index)).Op("=").Index().Uint32().ValuesFunc(func(g *jen.Group) {
		for _, a := range r.Accepting {
			g.Lit(int(a))
		}
	})
	f.Var().Add(accepting)

	ranges := jen.Id(stateRangesName(index)).Op("=").Index().Index(jen.Lit(2)).Int().ValuesFunc(func(g *jen.Group) {
		for _, sr := range r.StateRanges {
			g.Values(jen.Lit(sr[0]), jen.Lit(sr[1]))
		}
	})
	f.Var().Add(ranges)

	edges := jen.Id(edgesName(index)).Op("=").Index().Id("edgeRecord").ValuesFunc(func(g *jen.Group) {
		for _, e := range r.Edges {
			g.Values(jen.Dict{
				jen.Id("Class"):  jen.Lit(int(e.Class)),
				jen.Id("Target"): jen.Lit(int(e.Target)),
			})
		}
	})
	f.Var().Add(edges)
}

func emitClassTable(f *jen.File, t scanner.ClassTable) {
	f.Type().Id("classRange").Struct(
		jen.Id("Lo").Int32(),
		jen.Id("Hi").Int32(),
	)
	f.Type().Id("edgeRecord").Struct(
		jen.Id("Class").Uint32(),
		jen.Id("Target").Uint32(),
	)

	f.Var().Id("classRanges").Op("=").Index().Id("classRange").ValuesFunc(func(g *jen.Group) {
		for _, r := range t.Ranges {
			g.Values(jen.Dict{
				jen.Id("Lo"): jen.Lit(int(r[0])),
				jen.Id("Hi"): jen.Lit(int(r[1])),
			})
		}
	})

	f.Var().Id("classSpans").Op("=").Index().Index(jen.Lit(2)).Int().ValuesFunc(func(g *jen.Group) {
		for _, span := range t.Spans {
			g.Values(jen.Lit(span[0]), jen.Lit(span[1]))
		}
	})
}

func acceptingName(i int) string   { return "acceptingPattern" + strconv.Itoa(i) }
func stateRangesName(i int) string { return "stateRangesPattern" + strconv.Itoa(i) }
func edgesName(i int) string       { return "edgesPattern" + strconv.Itoa(i) }
