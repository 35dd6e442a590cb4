package gen

import "fmt"

// CheckBalanced verifies the structural well-formedness contract of
// generated text: block brackets, parameter braces and parentheses are
// balanced and never close before opening. It is a counter, not a parser;
// the generator's outputs contain no string escapes that could hide
// brackets, and quoted literals hold only identifier characters.
func CheckBalanced(s string) error {
	var block, param, paren int
	inString := false
	for i, r := range s {
		if r == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch r {
		case '[':
			block++
		case ']':
			block--
		case '{':
			param++
		case '}':
			param--
		case '(':
			paren++
		case ')':
			paren--
		}
		if block < 0 || param < 0 || paren < 0 {
			return fmt.Errorf("close before open at byte %d in %q", i, s)
		}
	}
	if inString {
		return fmt.Errorf("unterminated string literal in %q", s)
	}
	if block != 0 || param != 0 || paren != 0 {
		return fmt.Errorf("unbalanced delimiters (blocks=%d, params=%d, parens=%d) in %q",
			block, param, paren, s)
	}
	return nil
}
