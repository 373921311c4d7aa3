package nfa

import (
	"testing"

	"github.com/coregx/lexgen/ast"
	"github.com/coregx/lexgen/classes"
)

func compileSrc(t *testing.T, src string) *NFA {
	t.Helper()
	n, err := ast.FromSyntax(src, 0)
	if err != nil {
		t.Fatalf("ast.FromSyntax(%q) error = %v", src, err)
	}
	reg := classes.NewRegistry()
	got, err := Compile(n, reg, 0)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", src, err)
	}
	return got
}

// run walks the NFA exactly like the matching engine's per-scalar step
// (§4.6.2) so the tests exercise the construction rules without depending
// on the DFA layer.
func run(n *NFA, input string) bool {
	cur := n.EpsilonClosure([]StateID{n.Start})
	for _, c := range input {
		var next []StateID
		for _, s := range cur {
			st := n.States[s]
			if st.Kind == KindClass && n.Classes.Predicate(st.Class)(c) {
				next = append(next, st.Next)
			}
		}
		cur = n.EpsilonClosure(next)
		if len(cur) == 0 {
			return false
		}
	}
	for _, s := range cur {
		if s == n.Accept {
			return true
		}
	}
	return false
}

func TestCompileLiteral(t *testing.T) {
	n := compileSrc(t, "abc")
	cases := map[string]bool{"abc": true, "ab": false, "abcd": false, "": false}
	for in, want := range cases {
		if got := run(n, in); got != want {
			t.Errorf("run(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCompileAlternation(t *testing.T) {
	n := compileSrc(t, "cat|dog|bird")
	for _, in := range []string{"cat", "dog", "bird"} {
		if !run(n, in) {
			t.Errorf("run(%q) = false, want true", in)
		}
	}
	if run(n, "fish") {
		t.Errorf("run(\"fish\") = true, want false")
	}
}

func TestCompileStarPlusQuest(t *testing.T) {
	star := compileSrc(t, "a*")
	for in, want := range map[string]bool{"": true, "a": true, "aaaa": true, "b": false} {
		if got := run(star, in); got != want {
			t.Errorf("a* run(%q) = %v, want %v", in, got, want)
		}
	}

	plus := compileSrc(t, "a+")
	for in, want := range map[string]bool{"": false, "a": true, "aaaa": true} {
		if got := run(plus, in); got != want {
			t.Errorf("a+ run(%q) = %v, want %v", in, got, want)
		}
	}

	quest := compileSrc(t, "ab?c")
	for in, want := range map[string]bool{"ac": true, "abc": true, "abbc": false} {
		if got := run(quest, in); got != want {
			t.Errorf("ab?c run(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCompileBoundedRepeat(t *testing.T) {
	n := compileSrc(t, "a{2,4}")
	for in, want := range map[string]bool{
		"":      false,
		"a":     false,
		"aa":    true,
		"aaa":   true,
		"aaaa":  true,
		"aaaaa": false,
	} {
		if got := run(n, in); got != want {
			t.Errorf("a{2,4} run(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCompileUnboundedRepeatWithMinimum(t *testing.T) {
	n := compileSrc(t, "a{2,}")
	for in, want := range map[string]bool{"": false, "a": false, "aa": true, "aaaaaa": true} {
		if got := run(n, in); got != want {
			t.Errorf("a{2,} run(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCompileCharClass(t *testing.T) {
	n := compileSrc(t, "[a-c]+")
	for in, want := range map[string]bool{"a": true, "abcba": true, "d": false, "": false} {
		if got := run(n, in); got != want {
			t.Errorf("[a-c]+ run(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCompileGroupTransparent(t *testing.T) {
	grouped := compileSrc(t, "(?:ab)+")
	plain := compileSrc(t, "ab(?:ab)*")
	for _, in := range []string{"ab", "abab", "a", ""} {
		if run(grouped, in+in) != run(plain, in+in) {
			t.Errorf("(?:ab)+ vs ab(?:ab)* mismatch on input %q", in+in)
		}
	}
	if !run(grouped, "abab") {
		t.Errorf("(?:ab)+ run(\"abab\") = false, want true")
	}
	if run(grouped, "a") {
		t.Errorf("(?:ab)+ run(\"a\") = true, want false")
	}
}

func TestCompileSharesClassIDsAcrossPatterns(t *testing.T) {
	reg := classes.NewRegistry()
	a, err := ast.FromSyntax("[a-z]+", 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ast.FromSyntax("[a-z]*", 1)
	if err != nil {
		t.Fatal(err)
	}
	nfaA, err := Compile(a, reg, 0)
	if err != nil {
		t.Fatal(err)
	}
	nfaB, err := Compile(b, reg, 1)
	if err != nil {
		t.Fatal(err)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (same class reused)", reg.Count())
	}
	if nfaA.States[nfaA.Start].Class != nfaB.States[nfaB.States[nfaB.Start].Left].Class {
		t.Errorf("identical character classes across patterns got different class IDs")
	}
}
