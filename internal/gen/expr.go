package gen

import (
	"fmt"

	"github.com/mkpro118/basegen/internal/lang"
)

// TermSet configures one variant of the shared expression builder: where its
// leaves come from and which operators join them.
type TermSet struct {
	Term func(g *Generator) string
	Ops  []string
}

// Arithmetic builds +-*/ trees over identifiers, tuple references and small
// integer literals.
var Arithmetic = TermSet{
	Term: (*Generator).ArithTerm,
	Ops:  lang.MathOps,
}

// Logical builds &| trees over boolean literals and relational comparisons.
var Logical = TermSet{
	Term: (*Generator).LogicalTerm,
	Ops:  lang.LogicOps,
}

// Expression builds a random binary expression tree of the given depth over
// the term set. A tree of depth d has up to 2^d terminals; depth is clamped
// to [0, MaxExprDepth] to keep output size bounded. Each subexpression and
// the whole expression are independently parenthesized with probability
// ParenProb.
func (g *Generator) Expression(set TermSet, depth int) string {
	if depth < 0 {
		depth = 0
	}
	if depth > g.opts.MaxExprDepth {
		depth = g.opts.MaxExprDepth
	}
	return g.expr(set, depth)
}

func (g *Generator) expr(set TermSet, depth int) string {
	if depth <= 0 {
		return set.Term(g)
	}

	left := g.expr(set, depth-1)
	right := g.expr(set, depth-1)
	if g.chance(g.opts.ParenProb) {
		left = "(" + left + ")"
	}
	if g.chance(g.opts.ParenProb) {
		right = "(" + right + ")"
	}

	op := set.Ops[g.src.Intn(len(set.Ops))]
	out := fmt.Sprintf("%s %s %s", left, op, right)
	if g.chance(g.opts.ParenProb) {
		out = "(" + out + ")"
	}
	return out
}
