// Package cachestore implements C7: an on-disk, versioned JSON snapshot of
// the project index, with mtime+size staleness checks and an atomic
// (write-temp, rename) save, grounded on the teacher's ruleset cache file
// format.
package cachestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mleoca/ucn/internal/model"
)

// CurrentVersion is bumped whenever the snapshot shape changes; Load
// rejects any other version and callers fall back to a full rebuild.
const CurrentVersion = 4

// FileEntry is the persisted form of a model.File plus the mtime/size pair
// used for the staleness check.
type FileEntry struct {
	RelPath      string
	AbsPath      string
	Language     model.Language
	ContentHash  string
	ModTime      int64
	Size         int64
	StringRanges []model.LineRange
	CommentRanges []model.LineRange
}

// CallsCacheEntry is one `callsCache` row (spec.md §4.7): a per-file record
// keyed by (mtime,size,hash) so an unchanged file skips re-parsing its call
// sites entirely.
type CallsCacheEntry struct {
	FilePath string
	ModTime  int64
	Size     int64
	Hash     string
	Calls    []model.CallRecord
}

// Snapshot is the full persisted shape of the index.
type Snapshot struct {
	Version      int
	Root         string
	Files        []FileEntry
	Symbols      []model.Symbol
	ImportGraph  map[string][]model.ImportRecord
	ExportGraph  map[string][]model.Importer
	CallsCache   []CallsCacheEntry
}

// Path returns the cache file location for a project root, inside a
// `.ucn` directory at the project root so it can be gitignored like other
// tool caches.
func Path(root string) string {
	return filepath.Join(root, ".ucn", "index.json")
}

// Load reads and validates the snapshot at path. A version mismatch or
// unparsable file returns (nil, false), signaling the caller to rebuild
// rather than treating it as a hard error.
func Load(path string) (*Snapshot, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false
	}
	if snap.Version != CurrentVersion {
		return nil, false
	}
	return &snap, true
}

// Save writes snap to path atomically: serialize to a temp file in the same
// directory, then rename over the destination, so a crash mid-write never
// leaves a truncated cache behind.
func Save(path string, snap *Snapshot) error {
	snap.Version = CurrentVersion
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".index-*.json.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cachestore: rename temp snapshot: %w", err)
	}
	return nil
}

// IsStale reports whether the snapshot no longer matches the file list: any
// indexed file whose (mtime,size) differs, or any new/deleted file, marks
// the whole snapshot stale.
func IsStale(snap *Snapshot, current map[string]os.FileInfo) bool {
	cached := make(map[string]FileEntry, len(snap.Files))
	for _, f := range snap.Files {
		cached[f.RelPath] = f
	}
	if len(cached) != len(current) {
		return true
	}
	for rel, info := range current {
		entry, ok := cached[rel]
		if !ok {
			return true
		}
		if entry.ModTime != info.ModTime().UnixNano() || entry.Size != info.Size() {
			return true
		}
	}
	return false
}
