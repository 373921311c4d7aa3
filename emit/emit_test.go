package emit

import (
	"bytes"
	"go/parser"
	"go/token"
	"testing"

	"github.com/coregx/lexgen/scanner"
)

func TestScannerEmitsParseableGo(t *testing.T) {
	s, err := scanner.Compile([]string{"[0-9]+", "[A-Za-z_][A-Za-z0-9_]*", "\\+"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	var buf bytes.Buffer
	if err := Scanner(&buf, "generated", s); err != nil {
		t.Fatalf("Scanner: %v", err)
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "generated.go", buf.Bytes(), parser.AllErrors); err != nil {
		t.Fatalf("emitted source does not parse: %v\n%s", err, buf.String())
	}
}

func TestScannerEmitsOnePatternSet(t *testing.T) {
	s, err := scanner.Compile([]string{"a", "b"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	var buf bytes.Buffer
	if err := Scanner(&buf, "generated", s); err != nil {
		t.Fatalf("Scanner: %v", err)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "generated.go", buf.Bytes(), parser.AllErrors)
	if err != nil {
		t.Fatalf("emitted source does not parse: %v", err)
	}
	if f.Name.Name != "generated" {
		t.Fatalf("package name = %q, want generated", f.Name.Name)
	}
}

func TestScannerEmitsSinglePattern(t *testing.T) {
	s, err := scanner.Compile([]string{"[ \\t]+"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	var buf bytes.Buffer
	if err := Scanner(&buf, "generated", s); err != nil {
		t.Fatalf("Scanner: %v", err)
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "generated.go", buf.Bytes(), parser.AllErrors); err != nil {
		t.Fatalf("emitted source does not parse: %v\n%s", err, buf.String())
	}
}
