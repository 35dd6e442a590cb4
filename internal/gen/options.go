package gen

// Options are the tunable knobs of the generator. The zero value is not
// usable; start from Defaults().
type Options struct {
	// IdentLen is the default identifier length.
	IdentLen int
	// DeclIdentLen is the identifier length used in declarations and
	// parameter lists.
	DeclIdentLen int
	// MaxExprDepth bounds expression recursion. Output grows with up to
	// 2^depth terminals, so this is the combinatorial-explosion control:
	// callers asking for more get clamped, not honored.
	MaxExprDepth int
	// MaxArgs bounds the randomized argument count of call statements.
	MaxArgs int
	// MaxSectionCount bounds the random count drawn for declaration and
	// statement sections (drawn from 1..MaxSectionCount).
	MaxSectionCount int
	// MaxNestDepth bounds block nesting. Past it the dispatcher stops
	// handing out if/if-else/while statements so generation always
	// terminates.
	MaxNestDepth int
	// ParenProb is the probability of parenthesizing each subexpression
	// and each whole expression independently.
	ParenProb float64
}

// Defaults returns the option values of the reference generator.
func Defaults() Options {
	return Options{
		IdentLen:        5,
		DeclIdentLen:    3,
		MaxExprDepth:    4,
		MaxArgs:         4,
		MaxSectionCount: 4,
		MaxNestDepth:    3,
		ParenProb:       0.2,
	}
}

// clamp repairs out-of-range knobs in place. The generator has no error
// path; bad configuration degrades to the nearest usable value.
func (o *Options) clamp() {
	if o.IdentLen < 1 {
		o.IdentLen = 1
	}
	if o.DeclIdentLen < 1 {
		o.DeclIdentLen = 1
	}
	if o.MaxExprDepth < 0 {
		o.MaxExprDepth = 0
	}
	if o.MaxArgs < 0 {
		o.MaxArgs = 0
	}
	if o.MaxSectionCount < 1 {
		o.MaxSectionCount = 1
	}
	if o.MaxNestDepth < 1 {
		o.MaxNestDepth = 1
	}
	if o.ParenProb < 0 || o.ParenProb > 1 {
		o.ParenProb = 0.2
	}
}
