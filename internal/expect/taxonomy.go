package expect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Taxonomy maps numeric annotation codes to the compiler's diagnostic
// messages. Codes are what graders type into expectation files; messages are
// what the compiler actually prints.
type Taxonomy map[int]string

// Message resolves a code.
func (t Taxonomy) Message(code int) (string, bool) {
	msg, ok := t[code]
	return msg, ok
}

// DefaultTaxonomy returns the semantic-error taxonomy of the base compiler.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		1:  "Write attempt of function name",
		2:  "Write attempt of tuple name",
		3:  "Write attempt of tuple variable",
		4:  "Write attempt of void",
		5:  "Read attempt of function name",
		6:  "Read attempt of tuple name",
		7:  "Read attempt of tuple variable",
		8:  "Call attempt on non-function",
		9:  "Function call with wrong # of args",
		10: "Actual type does not match formal type",
		11: "Return value missing",
		12: "Return with value in void function",
		13: "Return value wrong type",
		14: "Arithmetic operator used with non-integer operand",
		15: "Relational operator used with non-integer operand",
		16: "Logical operator used with non-logical operand",
		17: "Non-logical expression used in if condition",
		18: "Non-logical expression used in while condition",
		19: "Mismatched type",
		20: "Equality operator used with void function calls",
		21: "Equality operator used with function names",
		22: "Equality operator used with tuple names",
		23: "Equality operator used with tuple variables",
		24: "Assignment to function name",
		25: "Assignment to tuple name",
		26: "Assignment to tuple variable",
	}
}

// LoadTaxonomy reads a YAML file mapping codes to messages, for grading
// against a compiler whose diagnostics differ from the default taxonomy.
func LoadTaxonomy(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy: %w", err)
	}
	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("parsing taxonomy: %w", err)
	}
	if len(tax) == 0 {
		return nil, fmt.Errorf("taxonomy %s defines no error codes", path)
	}
	return tax, nil
}
