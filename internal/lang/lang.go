// Package lang maps file extensions to the language tags the rest of the
// index uses (C1). It is deliberately small: a single lookup table and one
// function, so the "legacy bug" spec.md §4.1 warns against — running the
// plain JavaScript grammar on a .ts file and silently dropping type
// annotations — cannot creep back in through a second code path.
package lang

import (
	"path/filepath"
	"strings"

	"github.com/mleoca/ucn/internal/model"
)

var extensions = map[string]model.Language{
	".js":  model.LangJavaScript,
	".jsx": model.LangJavaScript,
	".mjs": model.LangJavaScript,
	".cjs": model.LangJavaScript,
	".ts":  model.LangTypeScript,
	".tsx": model.LangTSX,
	".py":  model.LangPython,
	".go":  model.LangGo,
	".rs":  model.LangRust,
	".java": model.LangJava,
}

// Detect returns the language tag for path's extension, and false when the
// extension is not indexable.
func Detect(path string) (model.Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := extensions[ext]
	return l, ok
}

// IsIndexable reports whether path's extension is one of the supported
// languages.
func IsIndexable(path string) bool {
	_, ok := Detect(path)
	return ok
}
