package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMissingFileReadsZero(t *testing.T) {
	f := Open(filepath.Join(t.TempDir(), "scores.json"))

	best, err := f.Entry(DefaultKey).Best()
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if best != 0 {
		t.Fatalf("best = %f, want 0", best)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")

	if err := Open(path).Entry(DefaultKey).SaveBest(12.34); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}

	best, err := Open(path).Entry(DefaultKey).Best()
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if best != 12.34 {
		t.Fatalf("best = %f, want 12.34", best)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	f := Open(filepath.Join(t.TempDir(), "scores.json"))
	alice := f.Entry(UserKey("alice"))
	bob := f.Entry(UserKey("bob"))

	if err := alice.SaveBest(5); err != nil {
		t.Fatal(err)
	}
	if err := bob.SaveBest(7); err != nil {
		t.Fatal(err)
	}

	if got, _ := alice.Best(); got != 5 {
		t.Errorf("alice = %f, want 5", got)
	}
	if got, _ := bob.Best(); got != 7 {
		t.Errorf("bob = %f, want 7", got)
	}

	scores, err := f.Scores()
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("scores = %v, want two keys", scores)
	}
}

func TestUserKey(t *testing.T) {
	if UserKey("") != DefaultKey {
		t.Errorf("empty user should map to the default key")
	}
	if UserKey("alice") != "bullet-dodge-best:alice" {
		t.Errorf("UserKey(alice) = %q", UserKey("alice"))
	}
}

func TestBadValuesReadZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte(`{"bullet-dodge-best": -3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	best, err := Open(path).Entry(DefaultKey).Best()
	if err != nil || best != 0 {
		t.Fatalf("best = %f err = %v, want 0 and no error", best, err)
	}
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := Open(path).Entry(DefaultKey)
	if _, err := e.Best(); err == nil {
		t.Fatal("expected decode error")
	}

	// Saving replaces the unreadable file.
	if err := e.SaveBest(3); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}
	if best, err := e.Best(); err != nil || best != 3 {
		t.Fatalf("best = %f err = %v after rewrite", best, err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	e := Open(filepath.Join(dir, "scores.json")).Entry(DefaultKey)
	for i := 1; i <= 3; i++ {
		if err := e.SaveBest(float64(i)); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want only the score file", len(entries))
	}
}

func TestMemory(t *testing.T) {
	var m Memory
	if best, _ := m.Best(); best != 0 {
		t.Fatalf("fresh memory best = %f", best)
	}
	m.SaveBest(4.5)
	if best, _ := m.Best(); best != 4.5 {
		t.Fatalf("best = %f, want 4.5", best)
	}
}
