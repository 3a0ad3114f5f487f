package fswatcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventClassification(t *testing.T) {
	tests := []struct {
		op      fsnotify.Op
		content bool
		create  bool
	}{
		{fsnotify.Write, true, false},
		{fsnotify.Create, true, true},
		{fsnotify.Remove, true, false},
		{fsnotify.Rename, true, false},
		{fsnotify.Chmod, false, false},
		{fsnotify.Write | fsnotify.Chmod, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.op.String(), func(t *testing.T) {
			ev := Event{Name: "x", Op: tc.op}
			assert.Equal(t, tc.content, IsContentChange(ev))
			assert.Equal(t, tc.create, IsCreate(ev))
		})
	}
}

func TestWatcherSeesWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(dir))

	target := filepath.Join(dir, "project.yaml")
	require.NoError(t, os.WriteFile(target, []byte("excluded: []\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-w.Events:
			if filepath.Clean(ev.Name) == target && IsContentChange(ev) {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatal("no event for write")
		}
	}
}
