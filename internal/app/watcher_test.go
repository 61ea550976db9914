package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcherChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewFileWatcher(time.Second, path, "")
	if w.Paths() != 1 {
		t.Fatalf("Paths() = %d, want 1", w.Paths())
	}
	if changed := w.Changed(); len(changed) != 0 {
		t.Fatalf("unexpected change %v", changed)
	}

	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	changed := w.Changed()
	if len(changed) != 1 || changed[0] != path {
		t.Fatalf("Changed() = %v, want [%s]", changed, path)
	}
	if again := w.Changed(); len(again) != 0 {
		t.Errorf("change reported twice: %v", again)
	}
}

func TestFileWatcherMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.json")
	w := NewFileWatcher(time.Second, path)
	if changed := w.Changed(); len(changed) != 0 {
		t.Errorf("missing file reported as changed: %v", changed)
	}

	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if changed := w.Changed(); len(changed) != 1 {
		t.Errorf("created file not reported: %v", changed)
	}
}
