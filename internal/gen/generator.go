// Package gen produces randomized, syntactically valid programs in the
// "base" toy language for fuzz-testing the compiler under development.
// Validity is guaranteed by construction: every generator composes complete
// grammar fragments, so no output ever needs re-parsing or repair.
package gen

import "math/rand"

// Generator generates random base code. It is not safe for concurrent use;
// give each goroutine its own instance.
type Generator struct {
	src  RandomSource
	opts Options
	nest int
}

// New creates a seeded Generator with default options.
func New(seed int64) *Generator {
	return NewWithOptions(seed, Defaults())
}

// NewWithOptions creates a seeded Generator. Out-of-range option values are
// clamped rather than rejected.
func NewWithOptions(seed int64, opts Options) *Generator {
	opts.clamp()
	return &Generator{
		src:  &RandSource{rand.New(rand.NewSource(seed))},
		opts: opts,
	}
}

// NewFromData creates a Generator driven by a byte slice, for use under the
// go fuzzing engine.
func NewFromData(data []byte) *Generator {
	opts := Defaults()
	return &Generator{
		src:  &ByteSource{data: data},
		opts: opts,
	}
}

// NewFromSource creates a Generator over a caller-owned randomness source.
func NewFromSource(src RandomSource) *Generator {
	return &Generator{src: src, opts: Defaults()}
}

// Intn exposes the random source's Intn method.
func (g *Generator) Intn(n int) int {
	return g.src.Intn(n)
}

// Src returns the random source of the generator.
func (g *Generator) Src() RandomSource {
	return g.src
}

// Options returns a copy of the generator's effective (clamped) options.
func (g *Generator) Options() Options {
	return g.opts
}

func (g *Generator) coin() bool {
	return g.src.Intn(2) == 0
}

func (g *Generator) chance(p float64) bool {
	return g.src.Float64() < p
}
