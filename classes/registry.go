package classes

import "github.com/coregx/lexgen/internal/conv"

// ID identifies an interned character class. IDs are assigned sequentially
// starting at 0 and are stable for the lifetime of the Registry that issued
// them; the class-ID space is shared across every DFA built from the same
// Registry (§3, §4.9: "the registry must be built before any NFA edges are
// finalized so IDs are consistent").
type ID int32

// Registry canonicalizes and interns character classes. It is a
// construction-time value: build it, intern every class a pattern set
// needs, then freeze it into predicate form for the matching engine.
//
// Registry is not safe for concurrent use; a scanner compile owns exactly
// one Registry.
type Registry struct {
	sets  []RangeSet
	index map[string]ID
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]ID)}
}

// Intern canonicalizes rs and returns its class ID, reusing an existing ID
// if an equal canonical form was interned before.
func (r *Registry) Intern(rs RangeSet) ID {
	k := rs.key()
	if id, ok := r.index[k]; ok {
		return id
	}
	id := ID(conv.IntToInt32(len(r.sets)))
	r.sets = append(r.sets, rs)
	r.index[k] = id
	return id
}

// Count returns the number of distinct classes interned so far.
func (r *Registry) Count() int {
	return len(r.sets)
}

// RangeSet returns the canonical range set backing id. The caller must not
// mutate the returned slice.
func (r *Registry) RangeSet(id ID) RangeSet {
	return r.sets[id]
}

// Predicate returns a total function testing membership in class id.
func (r *Registry) Predicate(id ID) func(rune) bool {
	rs := r.sets[id]
	return func(c rune) bool { return rs.Contains(c) }
}

// Predicates returns one predicate per interned class, indexed by class ID.
// This is the "class predicate vector" of §6's serialized compiled form.
func (r *Registry) Predicates() []func(rune) bool {
	out := make([]func(rune) bool, len(r.sets))
	for id := range r.sets {
		out[id] = r.Predicate(ID(id))
	}
	return out
}
