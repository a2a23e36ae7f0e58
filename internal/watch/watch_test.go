// SPDX-License-Identifier: MIT
package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWatchesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "src"), 0755)

	w, err := New([]string{
		filepath.Join(dir, "src", "style.css"),
		filepath.Join(dir, "src", "index.css"),
		filepath.Join(dir, "missing", "globals.css"),
	}, 0, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	dirs := w.Dirs()
	if len(dirs) != 1 || dirs[0] != filepath.Join(dir, "src") {
		t.Errorf("expected only the existing src directory, got %v", dirs)
	}
}

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "style.css")
	other := filepath.Join(dir, "other.css")

	changed := make(chan string, 4)
	w, err := New([]string{target}, 20*time.Millisecond, func(path string) {
		changed <- path
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	os.WriteFile(other, []byte(".a{}"), 0644)
	os.WriteFile(target, []byte("@theme static { --color-red-500: #f00; }"), 0644)

	select {
	case path := <-changed:
		if filepath.Base(path) != "style.css" {
			t.Errorf("unexpected path %s", path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never fired")
	}
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "style.css")

	changed := make(chan string, 16)
	w, err := New([]string{target}, 200*time.Millisecond, func(path string) {
		changed <- path
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	for i := 0; i < 5; i++ {
		os.WriteFile(target, []byte{byte('a' + i)}, 0644)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never fired")
	}
	select {
	case <-changed:
		t.Error("burst of writes should fire once")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestStopWithoutStart(t *testing.T) {
	w, err := New(nil, 0, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Stop()
}
