package gen

import (
	"strconv"
	"strings"

	"github.com/mkpro118/basegen/internal/lang"
)

type sectionMode int

const (
	sectionOmit sectionMode = iota
	sectionRandom
	sectionExact
)

// SectionCount says whether a block section is present and how many items it
// holds: omitted, a random count in 1..MaxSectionCount, or an exact count
// (zero and below yield an empty section).
type SectionCount struct {
	mode sectionMode
	n    int
}

// Omit drops the section entirely.
func Omit() SectionCount { return SectionCount{mode: sectionOmit} }

// RandomCount fills the section with a random number of items.
func RandomCount() SectionCount { return SectionCount{mode: sectionRandom} }

// Exact fills the section with exactly n items.
func Exact(n int) SectionCount { return SectionCount{mode: sectionExact, n: n} }

// Coin maps a coin flip onto the original boolean flag behavior: present
// with a random count, or omitted.
func Coin(present bool) SectionCount {
	if present {
		return RandomCount()
	}
	return Omit()
}

func (c SectionCount) resolve(g *Generator) int {
	switch c.mode {
	case sectionRandom:
		return 1 + g.src.Intn(g.opts.MaxSectionCount)
	case sectionExact:
		if c.n < 0 {
			return 0
		}
		return c.n
	default:
		return 0
	}
}

// ReturnOption controls the return section of a block. Valued is consulted
// only when Include is set: the language allows a valued return only in
// non-void functions, so the two degrees of freedom stay separate.
type ReturnOption struct {
	Include bool
	Valued  bool
}

// BlockOptions parameterizes the shared block composer.
type BlockOptions struct {
	// Simple selects a depth-0 condition term; otherwise the condition is
	// a logical tree of depth 1..3. Ignored for condition-less blocks.
	Simple bool
	Decls  SectionCount
	Stmts  SectionCount
	Return ReturnOption
}

// declsSection emits count declarations, each "<type> <id>", separated and
// terminated by the declaration terminator. Every declaration starts with a
// random whitespace character.
func (g *Generator) declsSection(count int) string {
	if count <= 0 {
		return ""
	}
	parts := make([]string, count)
	for i := range parts {
		parts[i] = g.Whitespace() + g.Type() + " " + g.Identifier(g.opts.DeclIdentLen)
	}
	return strings.Join(parts, lang.Terminator) + lang.Terminator
}

// stmtsSection emits count random statements, newline-joined.
func (g *Generator) stmtsSection(count int) string {
	if count <= 0 {
		return ""
	}
	parts := make([]string, count)
	for i := range parts {
		parts[i] = g.RandomStatement()
	}
	return strings.Join(parts, "\n")
}

// returnSection emits the return section: empty when omitted, "return." when
// bare, "return <value>." when valued. The value is 30% a small integer, 30%
// an identifier, otherwise a boolean literal.
func (g *Generator) returnSection(o ReturnOption) string {
	if !o.Include {
		return ""
	}
	if !o.Valued {
		return "return" + lang.Terminator
	}

	var val string
	switch n := g.src.Float64(); {
	case n < 0.3:
		val = strconv.Itoa(1 + g.src.Intn(5))
	case n < 0.6:
		val = g.Identifier(4)
	default:
		if g.coin() {
			val = lang.TrueLit
		} else {
			val = lang.FalseLit
		}
	}
	return "return " + val + lang.Terminator
}

// Block assembles "<keyword> [<condition>] [ <decls> <stmts> <return> ]"
// with a random whitespace character injected between every section. The
// whitespace is cosmetic but deliberate: it makes output formatting vary
// while staying valid.
func (g *Generator) Block(keyword string, withCond bool, o BlockOptions) string {
	g.nest++
	defer func() { g.nest-- }()

	cond := ""
	if withCond {
		depth := 0
		if !o.Simple {
			depth = 1 + g.src.Intn(3)
		}
		cond = g.Expression(Logical, depth)
	}

	var sb strings.Builder
	sb.WriteString(keyword)
	sb.WriteString(" ")
	sb.WriteString(cond)
	sb.WriteString(g.Whitespace())
	sb.WriteString(lang.BlockOpen)
	sb.WriteString(g.Whitespace())
	sb.WriteString(g.declsSection(o.Decls.resolve(g)))
	sb.WriteString(g.Whitespace())
	sb.WriteString(g.stmtsSection(o.Stmts.resolve(g)))
	sb.WriteString(g.Whitespace())
	sb.WriteString(g.returnSection(o.Return))
	sb.WriteString(g.Whitespace())
	sb.WriteString(lang.BlockClose)
	sb.WriteString(g.Whitespace())
	return sb.String()
}

// IfStmt returns an if statement with a condition and a composed body.
func (g *Generator) IfStmt(o BlockOptions) string {
	return g.Block("if", true, o)
}

// WhileStmt returns a while statement with a condition and a composed body.
func (g *Generator) WhileStmt(o BlockOptions) string {
	return g.Block("while", true, o)
}

// ElseStmt returns a condition-less else block.
func (g *Generator) ElseStmt(o BlockOptions) string {
	return g.Block("else", false, o)
}

// IfElseStmt returns an if block immediately followed by an else block, each
// independently parameterized.
func (g *Generator) IfElseStmt(ifOpts, elseOpts BlockOptions) string {
	return g.IfStmt(ifOpts) + g.Whitespace() + g.ElseStmt(elseOpts)
}
