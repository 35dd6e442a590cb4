package lang

// Grammar constants for the "base" toy language. Everything the generator
// emits and the grader parses is defined here so the two sides cannot drift.

const (
	// Terminator ends every statement and declaration.
	Terminator = "."

	// TupleSep joins a tuple name and a member name into one lexical unit.
	TupleSep = ":"

	// Block brackets. Function parameter lists use braces instead.
	BlockOpen  = "["
	BlockClose = "]"
	ParamOpen  = "{"
	ParamClose = "}"

	ReadKeyword  = "read >>"
	WriteKeyword = "write <<"
)

// Declared data types
const (
	TypeInteger = "integer"
	TypeLogical = "logical"
	TypeVoid    = "void"
)

// DataTypes lists every declarable type, in declaration order.
var DataTypes = []string{TypeInteger, TypeLogical, TypeVoid}

// Operator sets, grouped the way expression generation draws from them.
var (
	MathOps  = []string{"+", "-", "*", "/"}
	RelOps   = []string{"==", ">", ">=", "<", "<=", "~="}
	LogicOps = []string{"&", "|"}
)

// Operators maps the mnemonic used in operator-matrix test banners to the
// concrete sign.
var Operators = []struct {
	Name string
	Sign string
}{
	{"Plus", "+"},
	{"Minus", "-"},
	{"Times", "*"},
	{"Divide", "/"},
	{"Equals", "=="},
	{"Greater", ">"},
	{"GreaterEq", ">="},
	{"Lesser", "<"},
	{"LesserEq", "<="},
	{"NotEquals", "~="},
}

// AllOps flattens Operators into the signs alone.
func AllOps() []string {
	ops := make([]string, len(Operators))
	for i, op := range Operators {
		ops[i] = op.Sign
	}
	return ops
}

// Identifier alphabets.
const (
	IdentFirstChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	IdentChars      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"
	WhitespaceChars = "\n "
)

// Boolean literal spellings.
const (
	TrueLit  = "True"
	FalseLit = "False"
)
