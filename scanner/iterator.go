package scanner

import "unicode/utf8"

// Iterator yields successive non-overlapping matches over one input
// string, advancing left to right. It is lazy and non-restartable (§4.6.4):
// each call to Next resumes exactly where the previous one left off, and
// an Iterator must not be shared across goroutines.
type Iterator struct {
	s     *CompiledScanner
	input string
	data  []byte // lazily populated only when a literal fast path exists
	pos   int
	done  bool
}

// FindIter returns an Iterator over input.
func (s *CompiledScanner) FindIter(input string) *Iterator {
	it := &Iterator{s: s, input: input}
	if s.literals != nil {
		it.data = []byte(input)
	}
	return it
}

// Next returns the next match, scanning forward from the end of the
// previous one (or the start of input on the first call). It returns
// ok=false once no further match exists; subsequent calls keep returning
// false.
func (it *Iterator) Next() (Match, bool) {
	if it.done {
		return Match{}, false
	}
	for {
		start := it.pos
		if it.s.literals != nil {
			cand, ok := it.s.literals.nextCandidate(it.data, it.pos)
			if !ok {
				it.done = true
				return Match{}, false
			}
			start = cand
		}
		if start >= len(it.input) {
			it.done = true
			return Match{}, false
		}

		if m, ok := it.s.matchAt(it.input, start); ok {
			it.pos = m.End
			return m, true
		}

		_, width := utf8.DecodeRuneInString(it.input[start:])
		it.pos = start + width
	}
}
