package lexgen

import (
	"bytes"
	"go/parser"
	"go/token"
	"testing"
)

func TestCompileAndFindIter(t *testing.T) {
	lex, err := Compile([]string{`[0-9]+`, `[A-Za-z_][A-Za-z0-9_]*`, `\+`})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	const input = "12+abc"
	it := lex.FindIter(input)

	want := []Match{
		{Start: 0, End: 2, Pattern: 0},
		{Start: 2, End: 3, Pattern: 2},
		{Start: 3, End: 6, Pattern: 1},
	}
	for i, w := range want {
		m, ok := it.Next()
		if !ok {
			t.Fatalf("match %d: Next() = false, want %+v", i, w)
		}
		if m != w {
			t.Fatalf("match %d = %+v, want %+v", i, m, w)
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected no further matches")
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty-matching pattern")
		}
	}()
	MustCompile([]string{`a*`})
}

func TestEmitProducesParseableGo(t *testing.T) {
	lex, err := Compile([]string{`[0-9]+`})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	var buf bytes.Buffer
	if err := Emit(&buf, "generated", lex); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "generated.go", buf.Bytes(), parser.AllErrors); err != nil {
		t.Fatalf("emitted source does not parse: %v", err)
	}
}

func TestNumPatternsAndPattern(t *testing.T) {
	patterns := []string{`[0-9]+`, `[a-z]+`}
	lex, err := Compile(patterns)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := lex.NumPatterns(); got != len(patterns) {
		t.Fatalf("NumPatterns() = %d, want %d", got, len(patterns))
	}
	for i, p := range patterns {
		if got := lex.Pattern(i); got != p {
			t.Fatalf("Pattern(%d) = %q, want %q", i, got, p)
		}
	}
}
