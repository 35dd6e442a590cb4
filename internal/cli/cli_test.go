package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkpro118/basegen/internal/gen"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_Deterministic(t *testing.T) {
	out1, err := runCommand(t, "generate", "--seed", "42", "-n", "3")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	out2, err := runCommand(t, "generate", "--seed", "42", "-n", "3")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out1 != out2 {
		t.Error("generate with fixed seed is not deterministic")
	}
	if err := gen.CheckBalanced(out1); err != nil {
		t.Errorf("generated program unbalanced: %v", err)
	}
}

func TestGenerate_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.base")
	if _, err := runCommand(t, "generate", "--seed", "7", "-o", path); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := gen.CheckBalanced(string(data)); err != nil {
		t.Errorf("written program unbalanced: %v", err)
	}
}

func TestBatch(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fixtures")
	if _, err := runCommand(t, "batch", "--seed", "9", "-c", "5", "-d", dir); err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		t.Fatalf("batch wrote %d files, want 5", len(entries))
	}
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		if err := gen.CheckBalanced(string(data)); err != nil {
			t.Errorf("%s unbalanced: %v", e.Name(), err)
		}
	}
}

func TestBatch_DeterministicPerSeed(t *testing.T) {
	dir1 := filepath.Join(t.TempDir(), "a")
	dir2 := filepath.Join(t.TempDir(), "b")
	if _, err := runCommand(t, "batch", "--seed", "11", "-c", "3", "-d", dir1); err != nil {
		t.Fatal(err)
	}
	if _, err := runCommand(t, "batch", "--seed", "11", "-c", "3", "-d", dir2); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		name := filepath.Join(dir1, "fixture_000"+string(rune('0'+i))+".base")
		other := filepath.Join(dir2, filepath.Base(name))
		d1, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		d2, err := os.ReadFile(other)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(d1, d2) {
			t.Errorf("batch output %s differs between identical runs", filepath.Base(name))
		}
	}
}

func TestCheck_Pass(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "compiler.log")
	expectPath := filepath.Join(dir, "typeErrors.base")

	logContent := "3:5 ****ERROR**** Mismatched type\n"
	expectContent := "integer main {} [\ninteger x.\nx = True. !! 19 |\nreturn.\n]\n"
	if err := os.WriteFile(logPath, []byte(logContent), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(expectPath, []byte(expectContent), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "check", "-l", logPath, "-e", expectPath)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All expected errors found!") {
		t.Errorf("check output lacks pass verdict:\n%s", out)
	}
}

func TestCheck_Fail(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "compiler.log")
	expectPath := filepath.Join(dir, "typeErrors.base")

	if err := os.WriteFile(logPath, []byte("9:1 ****ERROR**** Return value missing\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(expectPath, []byte("x = True. !! 19 |\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "check", "-l", logPath, "-e", expectPath)
	if err == nil {
		t.Fatalf("check passed on mismatched log:\n%s", out)
	}
	if !strings.Contains(out, "MISSING") || !strings.Contains(out, "UNEXPECTED") {
		t.Errorf("check output lacks diff detail:\n%s", out)
	}
}

func TestCheck_LinesOnly(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "compiler.log")
	expectPath := filepath.Join(dir, "nameErrors.base")

	if err := os.WriteFile(logPath, []byte("2:4 ****ERROR**** Undeclared identifier\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(expectPath, []byte("integer main {} [\nx++. !! |\n]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if out, err := runCommand(t, "check", "-l", logPath, "-e", expectPath, "--lines-only"); err != nil {
		t.Fatalf("lines-only check failed: %v\n%s", err, out)
	}
}

func TestOpTests(t *testing.T) {
	out, err := runCommand(t, "optests", "--seed", "3")
	if err != nil {
		t.Fatalf("optests failed: %v", err)
	}
	if got := strings.Count(out, "!! "); got != 90 {
		t.Errorf("optests emitted %d banners, want 90", got)
	}
	if !strings.Contains(out, "void test_func {} [_ = ") {
		t.Errorf("optests output lacks test programs:\n%s", out[:200])
	}
}

func TestCorpus_SaveAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corpus.db")
	if _, err := runCommand(t, "generate", "--seed", "4", "--save", dbPath); err != nil {
		t.Fatalf("generate --save failed: %v", err)
	}

	out, err := runCommand(t, "corpus", "list", "--db", dbPath)
	if err != nil {
		t.Fatalf("corpus list failed: %v", err)
	}
	if !strings.Contains(out, "generate") {
		t.Errorf("corpus list lacks saved fixture:\n%s", out)
	}
}
