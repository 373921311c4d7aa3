package scanner

// Match is one scanned token: the half-open byte range [Start, End) of
// input that Pattern (an index into the slice Compile was given) matched.
type Match struct {
	Start, End int
	Pattern    int
}

// Text returns the matched substring of input. Callers must pass the same
// string given to the FindIter call that produced m.
func (m Match) Text(input string) string {
	return input[m.Start:m.End]
}
