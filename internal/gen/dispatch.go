package gen

import "strings"

// statement kinds, indexed by the dispatcher draw.
const (
	kindPostIncr = iota
	kindPostDecr
	kindRead
	kindWrite
	kindCall
	kindAssign
	kindIf
	kindIfElse
	kindWhile
	numKinds
)

// numFlatKinds counts the statement kinds that never open a nested block.
// Order matters: the first numFlatKinds entries of the dispatch below must
// be the non-block kinds.
const numFlatKinds = 6

func (g *Generator) randBlockOptions() BlockOptions {
	return BlockOptions{
		Simple: g.coin(),
		Decls:  Coin(g.coin()),
		Stmts:  Coin(g.coin()),
		Return: ReturnOption{Include: g.coin(), Valued: g.coin()},
	}
}

// RandomStatement draws one of the nine statement kinds uniformly and
// instantiates it with independently randomized parameters. Past the nesting
// bound only the non-block kinds are drawn, so recursive generation always
// terminates.
func (g *Generator) RandomStatement() string {
	n := numKinds
	if g.nest >= g.opts.MaxNestDepth {
		n = numFlatKinds
	}

	switch g.src.Intn(n) {
	case kindPostIncr:
		return g.PostIncr(g.coin())
	case kindPostDecr:
		return g.PostDecr(g.coin())
	case kindRead:
		return g.ReadStmt(g.coin())
	case kindWrite:
		return g.WriteStmt(g.coin())
	case kindCall:
		return g.CallStmt(g.src.Intn(g.opts.MaxArgs + 1))
	case kindAssign:
		return g.AssignStmt(g.coin(), g.coin(), g.src.Intn(3))
	case kindIf:
		return g.IfStmt(g.randBlockOptions())
	case kindIfElse:
		return g.IfElseStmt(g.randBlockOptions(), g.randBlockOptions())
	default: // kindWhile
		return g.WhileStmt(g.randBlockOptions())
	}
}

// Statements returns n independent random statements, newline-joined.
func (g *Generator) Statements(n int) string {
	if n <= 0 {
		return ""
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = g.RandomStatement()
	}
	return strings.Join(parts, "\n")
}
