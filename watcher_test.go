package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestWatcherReloadsOnWrite tests that saving the source file delivers a re-parse
func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.html")
	if err := os.WriteFile(path, []byte(salesHTML), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := newTableWatcher(path)
	if err != nil {
		t.Fatalf("newTableWatcher() error = %v", err)
	}
	defer w.Close()

	// writes to other files in the directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.html"), []byte("<p>x</p>"), 0o644); err != nil {
		t.Fatal(err)
	}
	updated := `<table><tr><th>Name</th></tr><tr><td>only</td></tr></table>`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan any, 1)
	go func() { got <- w.waitCmd()() }()

	select {
	case msg := <-got:
		reloaded, ok := msg.(tableReloadedMsg)
		if !ok {
			t.Fatalf("waitCmd() = %T, want tableReloadedMsg", msg)
		}
		if reloaded.err != nil {
			t.Fatalf("reload error = %v", reloaded.err)
		}
		if !reloaded.watched {
			t.Error("reload not marked as coming from the watcher")
		}
		if n := reloaded.table.Len(); n != 1 {
			t.Errorf("reloaded table has %d rows, want 1", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after writing the file")
	}
}

// TestWatcherClose tests that closing ends pending waits and can be repeated
func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.html")
	if err := os.WriteFile(path, []byte(salesHTML), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := newTableWatcher(path)
	if err != nil {
		t.Fatalf("newTableWatcher() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	done := make(chan any, 1)
	go func() { done <- w.waitCmd()() }()
	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("waitCmd() after Close = %v, want nil", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("waitCmd() blocked after Close")
	}
}

// TestWatcherMissingDirectory tests watching a path that cannot exist
func TestWatcherMissingDirectory(t *testing.T) {
	if _, err := newTableWatcher(filepath.Join(t.TempDir(), "gone", "sales.html")); err == nil {
		t.Error("newTableWatcher() accepted a missing directory")
	}
}
