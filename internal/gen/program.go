package gen

import (
	"strings"

	"github.com/mkpro118/basegen/internal/lang"
)

// FunctionOptions parameterizes full function generation.
type FunctionOptions struct {
	Params SectionCount
	Decls  SectionCount
	Stmts  SectionCount
	Return ReturnOption
}

// paramList emits count comma-separated typed parameters. Same declaration
// machinery as block declarations, different separators.
func (g *Generator) paramList(count int) string {
	if count <= 0 {
		return ""
	}
	parts := make([]string, count)
	for i := range parts {
		parts[i] = g.Type() + " " + g.Identifier(g.opts.DeclIdentLen)
	}
	return strings.Join(parts, ", ")
}

// Function returns a complete top-level function declaration
// "<type> <name> {<params>} [ <body> ]".
func (g *Generator) Function(o FunctionOptions) string {
	var sb strings.Builder
	sb.WriteString(g.Type())
	sb.WriteString(" ")
	sb.WriteString(g.Identifier(g.opts.IdentLen))
	sb.WriteString(" ")
	sb.WriteString(lang.ParamOpen)
	sb.WriteString(g.paramList(o.Params.resolve(g)))
	sb.WriteString(lang.ParamClose)
	sb.WriteString(" ")
	sb.WriteString(lang.BlockOpen)
	sb.WriteString(g.Whitespace())
	sb.WriteString(g.declsSection(o.Decls.resolve(g)))
	sb.WriteString(g.Whitespace())
	sb.WriteString(g.stmtsSection(o.Stmts.resolve(g)))
	sb.WriteString(g.Whitespace())
	sb.WriteString(g.returnSection(o.Return))
	sb.WriteString("\n")
	sb.WriteString(lang.BlockClose)
	return sb.String()
}

// WrapStatement nests a statement (or already-composed body) inside a
// parameterless function declaration. The language has no top-level
// statements, so this is how single statements become compilable programs.
func (g *Generator) WrapStatement(stmt string) string {
	var sb strings.Builder
	sb.WriteString(g.Type())
	sb.WriteString(" ")
	sb.WriteString(g.Identifier(g.opts.IdentLen))
	sb.WriteString(" ")
	sb.WriteString(lang.ParamOpen)
	sb.WriteString(lang.ParamClose)
	sb.WriteString(" ")
	sb.WriteString(lang.BlockOpen)
	sb.WriteString(g.Whitespace())
	sb.WriteString(stmt)
	sb.WriteString("\n")
	sb.WriteString(lang.BlockClose)
	return sb.String()
}

// RandomProgram wraps one random statement into a complete program.
func (g *Generator) RandomProgram() string {
	return g.WrapStatement(g.RandomStatement())
}
