package gen

import (
	"fmt"
	"strconv"

	"github.com/mkpro118/basegen/internal/lang"
)

// OperatorCase is one annotated operator-matrix program: an assignment
// exercising one operator with one combination of operand kinds, wrapped in
// a void function.
type OperatorCase struct {
	Operator string
	LHSKind  string
	RHSKind  string
	Program  string
}

// Banner returns the annotation line identifying the case in a test bundle.
func (c OperatorCase) Banner() string {
	return fmt.Sprintf("!! %s operator, LHS: %s, RHS: %s", c.Operator, c.LHSKind, c.RHSKind)
}

var opTermKinds = []struct {
	name string
	gen  func(g *Generator) string
}{
	{"Integer", func(g *Generator) string { return strconv.Itoa(g.src.Intn(11)) }},
	{"Identifier", func(g *Generator) string { return g.Identifier(g.opts.IdentLen) }},
	{"Tuple Member", func(g *Generator) string { return g.TupleRef(2, 1) }},
}

// OperatorTests enumerates every operator against every ordered pair of
// operand kinds (10 operators x 3 x 3 = 90 cases), so a compiler's operator
// type checking can be exercised exhaustively from one bundle.
func (g *Generator) OperatorTests() []OperatorCase {
	cases := make([]OperatorCase, 0, len(lang.Operators)*len(opTermKinds)*len(opTermKinds))
	for _, op := range lang.Operators {
		for _, lhs := range opTermKinds {
			for _, rhs := range opTermKinds {
				prog := fmt.Sprintf("void test_func {} [_ = %s %s %s%s]",
					lhs.gen(g), op.Sign, rhs.gen(g), lang.Terminator)
				cases = append(cases, OperatorCase{
					Operator: op.Name,
					LHSKind:  lhs.name,
					RHSKind:  rhs.name,
					Program:  prog,
				})
			}
		}
	}
	return cases
}
