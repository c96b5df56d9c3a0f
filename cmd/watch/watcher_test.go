package watch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRelevantChange_SourceExtensions(t *testing.T) {
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "main.c", Op: fsnotify.Write}))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "config.h", Op: fsnotify.Create}))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "app.cpp", Op: fsnotify.Remove}))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "startup.S", Op: fsnotify.Write}))
}

func TestIsRelevantChange_OtherExtensions(t *testing.T) {
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "README.md", Op: fsnotify.Write}))
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "Makefile", Op: fsnotify.Write}))
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "CONFIG.H", Op: fsnotify.Write}))
}

func TestIsRelevantChange_ChmodIgnored(t *testing.T) {
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "main.c", Op: fsnotify.Chmod}))
}

func TestAddWatchDirs_SkipsHiddenToolDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "objects"), 0o755))

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, addWatchDirs(watcher, root))

	for _, watched := range watcher.WatchList() {
		assert.NotContains(t, watched, ".git")
	}
}
