package ast

import (
	"strings"
	"testing"
)

func TestFromSyntaxLiteral(t *testing.T) {
	n, err := FromSyntax("ab", 0)
	if err != nil {
		t.Fatalf("FromSyntax() error = %v", err)
	}
	if n.Kind != KindConcat || len(n.Kids) != 2 {
		t.Fatalf("got %+v, want Concat of 2 literals", n)
	}
	if n.Kids[0].Kind != KindLiteral || n.Kids[0].Rune != 'a' {
		t.Errorf("Kids[0] = %+v, want Literal('a')", n.Kids[0])
	}
	if n.Kids[1].Kind != KindLiteral || n.Kids[1].Rune != 'b' {
		t.Errorf("Kids[1] = %+v, want Literal('b')", n.Kids[1])
	}
}

func TestFromSyntaxCharClassNegationMaterialized(t *testing.T) {
	n, err := FromSyntax(`\D`, 0)
	if err != nil {
		t.Fatalf("FromSyntax() error = %v", err)
	}
	if n.Kind != KindClass {
		t.Fatalf("got Kind %v, want KindClass", n.Kind)
	}
	if n.Ranges.Contains('5') {
		t.Errorf("\\D class contains '5'")
	}
	if !n.Ranges.Contains('x') {
		t.Errorf("\\D class does not contain 'x'")
	}
}

func TestFromSyntaxDotExcludesNewlineExplicitly(t *testing.T) {
	// Open question §9/§12: '.' is lowered exactly as regexp/syntax parses
	// it. Its default dot (OpAnyCharNotNL) excludes only \n, so the class
	// keeps \r; FromSyntax adds no richer notion of "line comment dot".
	n, err := FromSyntax(".", 0)
	if err != nil {
		t.Fatalf("FromSyntax() error = %v", err)
	}
	if n.Kind != KindClass {
		t.Fatalf("got Kind %v, want KindClass", n.Kind)
	}
	if n.Ranges.Contains('\n') {
		t.Errorf(". class contains \\n")
	}
	if !n.Ranges.Contains('\r') {
		t.Errorf(". class (regexp/syntax default) unexpectedly excludes \\r")
	}
}

func TestFromSyntaxRepeatBounded(t *testing.T) {
	n, err := FromSyntax("a{2,4}", 0)
	if err != nil {
		t.Fatalf("FromSyntax() error = %v", err)
	}
	if n.Kind != KindRepeat || n.Min != 2 || n.Max != 4 {
		t.Fatalf("got %+v, want Repeat{Min:2,Max:4}", n)
	}
}

func TestFromSyntaxRepeatUnbounded(t *testing.T) {
	n, err := FromSyntax("a{2,}", 0)
	if err != nil {
		t.Fatalf("FromSyntax() error = %v", err)
	}
	if n.Kind != KindRepeat || n.Min != 2 || n.Max != Unbounded {
		t.Fatalf("got %+v, want Repeat{Min:2,Max:Unbounded}", n)
	}
}

func TestFromSyntaxAlternationAndStar(t *testing.T) {
	n, err := FromSyntax("(?:foo|bar)*", 0)
	if err != nil {
		t.Fatalf("FromSyntax() error = %v", err)
	}
	if n.Kind != KindRepeat || n.Min != 0 || n.Max != Unbounded {
		t.Fatalf("got %+v, want Repeat{Min:0,Max:Unbounded}", n)
	}
	if n.Kids[0].Kind != KindAlt || len(n.Kids[0].Kids) != 2 {
		t.Fatalf("repeated node = %+v, want Alt of 2", n.Kids[0])
	}
}

func TestFromSyntaxRejectsAnchors(t *testing.T) {
	tests := []string{"^a", "a$", `\ba`, `\Ba`}
	for _, p := range tests {
		_, err := FromSyntax(p, 7)
		var uerr *UnsupportedError
		if err == nil {
			t.Errorf("FromSyntax(%q) error = nil, want UnsupportedError", p)
			continue
		}
		if !errorsAs(err, &uerr) {
			t.Errorf("FromSyntax(%q) error = %v, want *UnsupportedError", p, err)
			continue
		}
		if uerr.PatternIndex != 7 {
			t.Errorf("PatternIndex = %d, want 7", uerr.PatternIndex)
		}
	}
}

func TestFromSyntaxRejectsCaptureGroups(t *testing.T) {
	_, err := FromSyntax("(a)", 3)
	var uerr *UnsupportedError
	if !errorsAs(err, &uerr) {
		t.Fatalf("FromSyntax(\"(a)\") error = %v, want *UnsupportedError", err)
	}
}

func TestFromSyntaxParseErrorCarriesIndex(t *testing.T) {
	_, err := FromSyntax("(", 2)
	if err == nil {
		t.Fatalf("FromSyntax(\"(\") error = nil, want parse error")
	}
	if !strings.Contains(err.Error(), "pattern 2") {
		t.Errorf("FromSyntax(\"(\") error = %v, want it to name pattern 2", err)
	}
}

// errorsAs avoids importing errors in every test just to call As once.
func errorsAs(err error, target **UnsupportedError) bool {
	if e, ok := err.(*UnsupportedError); ok {
		*target = e
		return true
	}
	return false
}
