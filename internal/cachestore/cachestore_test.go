package cachestore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")

	snap := &Snapshot{
		Root: "/project",
		Files: []FileEntry{
			{RelPath: "main.go", Language: model.LangGo, ModTime: 1, Size: 100},
		},
		Symbols: []model.Symbol{
			{Name: "main", Kind: model.KindFunction, RelativePath: "main.go"},
		},
	}
	require.NoError(t, Save(path, snap))

	loaded, ok := Load(path)
	require.True(t, ok)
	assert.Equal(t, CurrentVersion, loaded.Version)
	assert.Equal(t, "/project", loaded.Root)
	assert.Len(t, loaded.Files, 1)
	assert.Equal(t, "main", loaded.Symbols[0].Name)
}

func TestLoadRejectsVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Version":1}`), 0o644))

	_, ok := Load(path)
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, ok := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.False(t, ok)
}

func TestPathIsUnderDotUcn(t *testing.T) {
	assert.Equal(t, filepath.Join("/root/proj", ".ucn", "index.json"), Path("/root/proj"))
}

func TestIsStaleDetectsChangedFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(f, []byte("package a"), 0o644))
	info, err := os.Stat(f)
	require.NoError(t, err)

	snap := &Snapshot{Files: []FileEntry{
		{RelPath: "a.go", ModTime: info.ModTime().UnixNano(), Size: info.Size()},
	}}
	current := map[string]os.FileInfo{"a.go": info}
	assert.False(t, IsStale(snap, current))

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, os.WriteFile(f, []byte("package a\nfunc main() {}"), 0o644))
	info2, err := os.Stat(f)
	require.NoError(t, err)
	current2 := map[string]os.FileInfo{"a.go": info2}
	assert.True(t, IsStale(snap, current2))
}

func TestIsStaleDetectsAddedOrRemovedFile(t *testing.T) {
	snap := &Snapshot{Files: []FileEntry{{RelPath: "a.go", ModTime: 1, Size: 10}}}
	assert.True(t, IsStale(snap, map[string]os.FileInfo{}))
}
