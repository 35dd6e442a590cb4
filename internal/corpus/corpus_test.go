package corpus

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, Fixture{
		Seed:    42,
		Profile: "default",
		Program: "void main {} [ return. ]",
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == "" {
		t.Fatal("Save returned empty id")
	}

	f, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if f.Seed != 42 || f.Profile != "default" || f.Program != "void main {} [ return. ]" {
		t.Errorf("round-tripped fixture = %+v", f)
	}
	if f.CreatedAt.IsZero() {
		t.Error("fixture has no creation time")
	}
}

func TestList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for seed := int64(0); seed < 3; seed++ {
		if _, err := s.Save(ctx, Fixture{Seed: seed, Profile: "p", Program: "x++."}); err != nil {
			t.Fatal(err)
		}
	}

	fixtures, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(fixtures) != 3 {
		t.Errorf("List returned %d fixtures, want 3", len(fixtures))
	}
}

func TestSetVerdict(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, Fixture{Seed: 1, Profile: "p", Program: "x++."})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.SetVerdict(ctx, id, "pass"); err != nil {
		t.Fatalf("SetVerdict failed: %v", err)
	}
	f, err := s.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if f.Verdict != "pass" {
		t.Errorf("verdict = %q, want pass", f.Verdict)
	}
}

func TestSetVerdict_MissingFixture(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetVerdict(context.Background(), "no-such-id", "pass"); err == nil {
		t.Error("SetVerdict on missing fixture should fail")
	}
}
