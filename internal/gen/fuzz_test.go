package gen

import "testing"

// FuzzRandomStatement drives the dispatcher with fuzzer-chosen randomness.
// Whatever bytes come in, every statement must stay structurally balanced.
func FuzzRandomStatement(f *testing.F) {
	f.Add([]byte{0})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	f.Add([]byte{255, 0, 255, 0, 255, 0, 255, 0, 13, 37})

	f.Fuzz(func(t *testing.T, data []byte) {
		g := NewFromData(data)
		stmt := g.RandomStatement()
		if err := CheckBalanced(stmt); err != nil {
			t.Errorf("unbalanced statement: %v", err)
		}
	})
}

// FuzzRandomProgram does the same for whole wrapped programs.
func FuzzRandomProgram(f *testing.F) {
	f.Add([]byte{0})
	f.Add([]byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		g := NewFromData(data)
		prog := g.RandomProgram()
		if err := CheckBalanced(prog); err != nil {
			t.Errorf("unbalanced program: %v", err)
		}
	})
}
