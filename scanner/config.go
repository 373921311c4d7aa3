package scanner

// Config controls scanner compilation behavior.
//
// Example:
//
//	config := scanner.DefaultConfig()
//	config.EnableLiteralPrefilter = false
//	s, err := scanner.CompileWithConfig(patterns, config)
type Config struct {
	// EnableLiteralPrefilter builds an Aho-Corasick index (§10 DOMAIN
	// STACK) over patterns whose AST is a pure concatenation of literal
	// scalars, so FindIter can jump the cursor to the next possible match
	// start instead of stepping every DFA at every position. It never
	// changes which match wins — only how fast the scanner gets there.
	// Default: true
	EnableLiteralPrefilter bool

	// MinLiteralLen is the minimum literal length, in scalars, for the
	// prefilter index. If any pattern's literal is shorter, no index is
	// built at all and every position is scanned.
	// Default: 2
	MinLiteralLen int
}

// DefaultConfig returns the default scanner configuration.
func DefaultConfig() Config {
	return Config{
		EnableLiteralPrefilter: true,
		MinLiteralLen:          2,
	}
}
