// Package lexgen builds multi-pattern scanners: compile a set of patterns
// once, then scan any number of inputs against all of them at once,
// resolving overlaps with leftmost-longest, lowest-pattern-index-wins
// semantics — the behavior a hand-written lexer's longest-match rule
// normally requires hand-tuned ordering to get right.
//
// Patterns use the same syntax as the standard library's regexp package
// (Perl-compatible, via regexp/syntax), with these restrictions: no capture
// groups, no anchors or word boundaries, no back-references, no (?i) or
// (?s) flags, and no pattern may match the empty string.
//
// Basic usage:
//
//	lex, err := lexgen.Compile([]string{
//	    `[0-9]+`,
//	    `[A-Za-z_][A-Za-z0-9_]*`,
//	    `\+|-|\*|/`,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	it := lex.FindIter("12 + abc")
//	for {
//	    m, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(m.Pattern, m.Text("12 + abc"))
//	}
//
// Generating a standalone scanner:
//
//	var buf bytes.Buffer
//	if err := lexgen.Emit(&buf, "mylexer", lex); err != nil {
//	    log.Fatal(err)
//	}
package lexgen

import (
	"io"

	"github.com/coregx/lexgen/emit"
	"github.com/coregx/lexgen/scanner"
)

// Lexer is a compiled set of patterns ready to scan input.
//
// A Lexer is safe for concurrent use: compilation produces immutable DFAs
// and a read-only shared alphabet, and FindIter returns an independent
// Iterator per call.
type Lexer struct {
	scanner *scanner.CompiledScanner
}

// Match is one scan result: the half-open byte range [Start, End) of the
// winning pattern at index Pattern.
type Match = scanner.Match

// Config tunes the compilation pipeline. See scanner.Config.
type Config = scanner.Config

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return scanner.DefaultConfig()
}

// Compile builds a Lexer from patterns using DefaultConfig.
//
// Patterns are tried in the given order whenever two matches tie in length
// at the same start position; the earlier pattern in the slice wins.
func Compile(patterns []string) (*Lexer, error) {
	return CompileWithConfig(patterns, DefaultConfig())
}

// MustCompile compiles patterns and panics if compilation fails.
func MustCompile(patterns []string) *Lexer {
	lex, err := Compile(patterns)
	if err != nil {
		panic("lexgen: Compile: " + err.Error())
	}
	return lex
}

// CompileWithConfig builds a Lexer from patterns with a custom Config.
func CompileWithConfig(patterns []string, cfg Config) (*Lexer, error) {
	cs, err := scanner.CompileWithConfig(patterns, cfg)
	if err != nil {
		return nil, err
	}
	return &Lexer{scanner: cs}, nil
}

// NumPatterns returns the number of compiled patterns.
func (l *Lexer) NumPatterns() int { return l.scanner.NumPatterns() }

// Pattern returns the source text of the pattern at index i.
func (l *Lexer) Pattern(i int) string { return l.scanner.Pattern(i) }

// FindIter returns an iterator over non-overlapping matches in input,
// scanning left to right.
func (l *Lexer) FindIter(input string) *scanner.Iterator {
	return l.scanner.FindIter(input)
}

// Emit renders lex as a standalone Go source file in package pkg,
// declaring the compiled DFA tables as package-level variables.
func Emit(w io.Writer, pkg string, lex *Lexer) error {
	return emit.Scanner(w, pkg, lex.scanner)
}
