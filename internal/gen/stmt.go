package gen

import (
	"fmt"
	"strings"

	"github.com/mkpro118/basegen/internal/lang"
)

// target returns an assignment/IO target: a tuple reference when tuple is
// set, a plain identifier otherwise.
func (g *Generator) target(tuple bool) string {
	if tuple {
		return g.TupleRef(g.opts.IdentLen, g.opts.IdentLen)
	}
	return g.Identifier(g.opts.IdentLen)
}

func (g *Generator) postfix(op string, tuple bool) string {
	return g.target(tuple) + op + lang.Terminator
}

// PostIncr returns a post-increment statement, e.g. "x++." or "t:m++.".
func (g *Generator) PostIncr(tuple bool) string {
	return g.postfix("++", tuple)
}

// PostDecr returns a post-decrement statement.
func (g *Generator) PostDecr(tuple bool) string {
	return g.postfix("--", tuple)
}

func (g *Generator) ioStmt(keyword string, tuple bool) string {
	return keyword + " " + g.target(tuple) + lang.Terminator
}

// ReadStmt returns a "read >> x." statement.
func (g *Generator) ReadStmt(tuple bool) string {
	return g.ioStmt(lang.ReadKeyword, tuple)
}

// WriteStmt returns a "write << x." statement.
func (g *Generator) WriteStmt(tuple bool) string {
	return g.ioStmt(lang.WriteKeyword, tuple)
}

// CallStmt returns a function-call statement with the given number of
// arguments, each independently a random identifier or literal. A negative
// count is treated as zero.
func (g *Generator) CallStmt(args int) string {
	var list []string
	for i := 0; i < args; i++ {
		if g.coin() {
			list = append(list, g.Identifier(g.opts.IdentLen))
		} else {
			list = append(list, g.Literal())
		}
	}
	return fmt.Sprintf("%s(%s)%s", g.Identifier(g.opts.IdentLen), strings.Join(list, ", "), lang.Terminator)
}

// AssignStmt returns an assignment statement. The target is a tuple
// reference when tupleLHS is set. A simple right-hand side is a bare term or
// two terms joined by one random operator drawn from the full operator set;
// otherwise the right-hand side is an arithmetic expression tree of the
// given depth.
func (g *Generator) AssignStmt(tupleLHS, simple bool, depth int) string {
	lhs := g.target(tupleLHS)

	var rhs string
	if simple {
		if g.coin() {
			ops := lang.AllOps()
			op := ops[g.src.Intn(len(ops))]
			rhs = fmt.Sprintf("%s %s %s", g.ArithTerm(), op, g.ArithTerm())
		} else {
			rhs = g.ArithTerm()
		}
	} else {
		rhs = g.Expression(Arithmetic, depth)
	}

	return fmt.Sprintf("%s = %s%s", lhs, rhs, lang.Terminator)
}
