package gen

import (
	"fmt"
	"strings"

	"github.com/mkpro118/basegen/internal/lang"
)

// Identifier returns a random identifier of length n: a letter or underscore
// followed by letters, digits and underscores. n < 1 is treated as 1.
func (g *Generator) Identifier(n int) string {
	if n < 1 {
		n = 1
	}
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteByte(lang.IdentFirstChars[g.src.Intn(len(lang.IdentFirstChars))])
	for i := 1; i < n; i++ {
		sb.WriteByte(lang.IdentChars[g.src.Intn(len(lang.IdentChars))])
	}
	return sb.String()
}

// TupleRef returns a random name:member tuple reference. The two identifiers
// are joined without spaces; the reference is a single lexical unit.
func (g *Generator) TupleRef(nameLen, memberLen int) string {
	return g.Identifier(nameLen) + lang.TupleSep + g.Identifier(memberLen)
}

// Literal returns a random literal: 25% a full-range signed 32-bit integer,
// 25% True, 25% False, otherwise a quoted identifier-like string.
func (g *Generator) Literal() string {
	switch n := g.src.Float64(); {
	case n < 0.25:
		return fmt.Sprintf("%d", g.src.Intn(1<<32+1)-(1<<31))
	case n < 0.5:
		return lang.TrueLit
	case n < 0.75:
		return lang.FalseLit
	default:
		return fmt.Sprintf("%q", g.Identifier(10))
	}
}

// Type returns one of the declared data types, uniformly.
func (g *Generator) Type() string {
	return lang.DataTypes[g.src.Intn(len(lang.DataTypes))]
}

// Whitespace returns a single whitespace character, newline or space. It is
// injected liberally between grammar sections so formatting varies across
// outputs without ever breaking validity.
func (g *Generator) Whitespace() string {
	return string(lang.WhitespaceChars[g.src.Intn(len(lang.WhitespaceChars))])
}

// ArithTerm returns an arithmetic expression terminal: a tuple reference, an
// identifier, or a small integer literal, uniformly.
func (g *Generator) ArithTerm() string {
	switch g.src.Intn(3) {
	case 0:
		return g.TupleRef(g.opts.IdentLen, g.opts.IdentLen)
	case 1:
		return g.Identifier(g.opts.IdentLen)
	default:
		return fmt.Sprintf("%d", 1+g.src.Intn(10))
	}
}

// LogicalTerm returns a logical expression terminal: a boolean literal or a
// relational comparison between two arithmetic terminals.
func (g *Generator) LogicalTerm() string {
	switch g.src.Intn(3) {
	case 0:
		return lang.TrueLit
	case 1:
		return lang.FalseLit
	default:
		op := lang.RelOps[g.src.Intn(len(lang.RelOps))]
		return fmt.Sprintf("%s %s %s", g.ArithTerm(), op, g.ArithTerm())
	}
}
