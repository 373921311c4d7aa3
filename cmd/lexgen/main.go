// Command lexgen compiles a pattern set and either scans an input file
// against it or emits the compiled scanner as standalone Go source.
package main

import (
	"os"

	"github.com/coregx/lexgen"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

type options struct {
	Patterns    goflags.StringSlice
	Input       string
	EmitOutput  string
	EmitPackage string
	Verbose     bool
	Silent      bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`lexgen compiles regex patterns into a multi-pattern scanner.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Patterns, "patterns", "p", nil, "patterns to compile (comma-separated or file, one per line)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("run", "Run",
		flagSet.StringVarP(&opts.Input, "run", "r", "", "scan this file against the compiled patterns and print matches"),
	)

	flagSet.CreateGroup("emit", "Emit",
		flagSet.StringVarP(&opts.EmitOutput, "emit", "e", "", "write the compiled scanner as Go source to this file"),
		flagSet.StringVar(&opts.EmitPackage, "package", "generated", "package name for -emit output"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not parse flags: %s", err)
	}
	return opts
}

func main() {
	opts := parseFlags()

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	patterns := []string(opts.Patterns)
	if len(patterns) == 0 {
		gologger.Fatal().Msgf("at least one pattern is required (-patterns)")
	}

	lex, err := lexgen.Compile(patterns)
	if err != nil {
		gologger.Fatal().Msgf("compile failed: %v", err)
	}
	gologger.Info().Msgf("compiled %d pattern(s)", lex.NumPatterns())

	if opts.EmitOutput != "" {
		runEmit(lex, opts)
	}
	if opts.Input != "" {
		runScan(lex, opts)
	}
	if opts.EmitOutput == "" && opts.Input == "" {
		gologger.Fatal().Msgf("nothing to do: pass -run or -emit")
	}
}

func runEmit(lex *lexgen.Lexer, opts *options) {
	f, err := os.Create(opts.EmitOutput)
	if err != nil {
		gologger.Fatal().Msgf("could not create %s: %v", opts.EmitOutput, err)
	}
	defer f.Close()

	if err := lexgen.Emit(f, opts.EmitPackage, lex); err != nil {
		gologger.Fatal().Msgf("emit failed: %v", err)
	}
	gologger.Info().Msgf("wrote generated scanner to %s", opts.EmitOutput)
}

func runScan(lex *lexgen.Lexer, opts *options) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		gologger.Fatal().Msgf("could not read %s: %v", opts.Input, err)
	}
	input := string(data)

	it := lex.FindIter(input)
	count := 0
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		count++
		gologger.Print().Msgf("%d\t%d\t%d\t%q", m.Pattern, m.Start, m.End, m.Text(input))
	}
	gologger.Info().Msgf("%d match(es)", count)
}
