package scanner

import (
	"github.com/coregx/lexgen/classes"
	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/internal/conv"
)

// EdgeRecord is one serialized DFA transition: consuming a scalar in Class
// moves to Target. Class indexes the scanner's shared alphabet atoms, not
// the original per-pattern class IDs (see ClassTable).
type EdgeRecord struct {
	Class  uint32
	Target uint32
}

// DFARecord is the serialized per-pattern quadruple of §4.5/§6: the
// pattern's source text, its minimized DFA's accepting states, the
// half-open [Lo, Hi) ranges into Edges indexed by state, and the flattened
// edge list itself. This is the bit-exact contract between C5's assembly
// and any external consumer (§6 "Serialized compiled form") — package
// emit renders it, and a hand-written runtime could reconstruct a DFA
// from it without this module's construction code.
type DFARecord struct {
	SourceText  string
	NumStates   int
	Accepting   []uint32
	StateRanges [][2]int
	Edges       []EdgeRecord
}

// Records returns one DFARecord per compiled pattern, in pattern order.
func (s *CompiledScanner) Records() []DFARecord {
	out := make([]DFARecord, len(s.dfas))
	for i, d := range s.dfas {
		r := DFARecord{
			SourceText:  s.patterns[i],
			NumStates:   d.NumStates,
			StateRanges: make([][2]int, d.NumStates),
		}
		for st := 0; st < d.NumStates; st++ {
			edges := d.EdgesFor(dfa.StateID(st))
			lo := len(r.Edges)
			for _, e := range edges {
				r.Edges = append(r.Edges, EdgeRecord{
					Class:  conv.IntToUint32(int(e.Class)),
					Target: uint32(e.Target),
				})
			}
			r.StateRanges[st] = [2]int{lo, len(r.Edges)}
		}
		for _, a := range d.Accepting {
			r.Accepting = append(r.Accepting, uint32(a))
		}
		out[i] = r
	}
	return out
}

// ClassRange is one [Lo, Hi] inclusive scalar range belonging to a class.
type ClassRange struct {
	Lo, Hi int32
}

// ClassTable is the serialized alphabet returned by
// CompiledScanner.ClassTable: Ranges holds inclusive [Lo, Hi] scalar
// ranges and Spans[k] is the half-open range into Ranges for atom k.
type ClassTable struct {
	Ranges [][2]int32
	Spans  [][2]int
}

// ClassTable returns the serialized alphabet of §6: Spans[k] is the half-open
// range into Ranges holding atom k's constituent scalar ranges. Every
// EdgeRecord.Class across every pattern's DFARecord indexes this same
// table, since every DFA in a CompiledScanner shares one alphabet. Each
// atom is a single contiguous range by construction, so every Spans entry
// covers exactly one Ranges entry; Spans is still emitted as half-open
// [lo,hi) pairs to keep the table's shape uniform with a class-predicate
// vector that could, in principle, need more than one range per entry.
func (s *CompiledScanner) ClassTable() ClassTable {
	n := s.alphabet.NumAtoms()
	t := ClassTable{Ranges: make([][2]int32, n), Spans: make([][2]int, n)}
	for id := 0; id < n; id++ {
		r := s.alphabet.AtomRange(classes.AtomID(id))
		t.Ranges[id] = [2]int32{int32(r.Lo), int32(r.Hi)}
		t.Spans[id] = [2]int{id, id + 1}
	}
	return t
}
