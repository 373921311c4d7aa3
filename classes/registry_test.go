package classes

import "testing"

func TestInternIsIdempotent(t *testing.T) {
	r := NewRegistry()
	a := r.Intern(NewRangeSet(Range{'a', 'z'}))
	b := r.Intern(NewRangeSet(Range{'z', 'a'})) // same set, swapped bounds
	c := r.Intern(NewRangeSet(Range{'a', 'm'}, Range{'n', 'z'}))
	if a != b || a != c {
		t.Fatalf("equal canonical forms got different IDs: %d %d %d", a, b, c)
	}

	d := r.Intern(NewRangeSet(Range{'0', '9'}))
	if d == a {
		t.Fatalf("distinct canonical forms got the same ID: %d", d)
	}
	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}
}

func TestPredicateMatchesCanonicalForm(t *testing.T) {
	r := NewRegistry()
	id := r.Intern(NewRangeSet(Range{'0', '9'}))
	pred := r.Predicate(id)
	for c := rune('0'); c <= '9'; c++ {
		if !pred(c) {
			t.Errorf("predicate(%q) = false, want true", c)
		}
	}
	if pred('a') {
		t.Errorf("predicate('a') = true, want false")
	}
}

func TestPredicatesIndexedByClassID(t *testing.T) {
	r := NewRegistry()
	digits := r.Intern(NewRangeSet(Range{'0', '9'}))
	letters := r.Intern(NewRangeSet(Range{'a', 'z'}))

	preds := r.Predicates()
	if len(preds) != 2 {
		t.Fatalf("len(Predicates()) = %d, want 2", len(preds))
	}
	if !preds[digits]('5') || preds[digits]('x') {
		t.Errorf("predicate vector mismatch for digits class")
	}
	if !preds[letters]('x') || preds[letters]('5') {
		t.Errorf("predicate vector mismatch for letters class")
	}
}
