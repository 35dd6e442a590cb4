package expect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const annotated = `integer main {} [
integer x.
x = True + 1. !! 14,19 |
write << main. !! 1 |
return.
]
`

func TestParse(t *testing.T) {
	expected, err := Parse(strings.NewReader(annotated), DefaultTaxonomy())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(expected) != 2 {
		t.Fatalf("got expectations on %d lines, want 2", len(expected))
	}
	want3 := []string{
		"Arithmetic operator used with non-integer operand",
		"Mismatched type",
	}
	if len(expected[3]) != 2 || expected[3][0] != want3[0] || expected[3][1] != want3[1] {
		t.Errorf("line 3 expectations = %v, want %v", expected[3], want3)
	}
	if len(expected[4]) != 1 || expected[4][0] != "Write attempt of function name" {
		t.Errorf("line 4 expectations = %v", expected[4])
	}
}

func TestParse_UnknownCode(t *testing.T) {
	_, err := Parse(strings.NewReader("x = 1. !! 99 |\n"), DefaultTaxonomy())
	if err == nil || !strings.Contains(err.Error(), "unknown error code 99") {
		t.Fatalf("Parse = %v, want unknown code error", err)
	}
}

func TestParse_MultipleCodes(t *testing.T) {
	expected, err := Parse(strings.NewReader("y = f(). !! 8,9,10 |\n"), DefaultTaxonomy())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(expected[1]) != 3 {
		t.Errorf("line 1 expectations = %v, want three messages", expected[1])
	}
}

func TestMarkedLines(t *testing.T) {
	marked, err := MarkedLines(strings.NewReader(annotated))
	if err != nil {
		t.Fatalf("MarkedLines failed: %v", err)
	}
	if len(marked) != 2 || !marked[3] || !marked[4] {
		t.Errorf("MarkedLines = %v, want lines 3 and 4", marked)
	}
}

func TestDefaultTaxonomy(t *testing.T) {
	tax := DefaultTaxonomy()
	if len(tax) != 26 {
		t.Fatalf("default taxonomy has %d codes, want 26", len(tax))
	}
	if msg, ok := tax.Message(14); !ok || msg != "Arithmetic operator used with non-integer operand" {
		t.Errorf("code 14 = %q, %v", msg, ok)
	}
	if _, ok := tax.Message(0); ok {
		t.Error("code 0 should not resolve")
	}
}

func TestLoadTaxonomy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	content := "1: First kind of error\n2: Second kind of error\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tax, err := LoadTaxonomy(path)
	if err != nil {
		t.Fatalf("LoadTaxonomy failed: %v", err)
	}
	if msg, _ := tax.Message(2); msg != "Second kind of error" {
		t.Errorf("code 2 = %q", msg)
	}
}

func TestLoadTaxonomy_Errors(t *testing.T) {
	if _, err := LoadTaxonomy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("want error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTaxonomy(empty); err == nil {
		t.Error("want error for empty taxonomy")
	}
}
