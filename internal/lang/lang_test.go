package lang

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDetectEverySupportedExtension(t *testing.T) {
	cases := map[string]model.Language{
		"widget.js":     model.LangJavaScript,
		"widget.jsx":    model.LangJavaScript,
		"widget.mjs":    model.LangJavaScript,
		"widget.cjs":    model.LangJavaScript,
		"widget.ts":     model.LangTypeScript,
		"widget.tsx":    model.LangTSX,
		"widget.py":     model.LangPython,
		"widget.go":     model.LangGo,
		"widget.rs":     model.LangRust,
		"Widget.java":   model.LangJava,
		"src/Widget.JS": model.LangJavaScript, // extension match is case-insensitive
	}
	for path, want := range cases {
		got, ok := Detect(path)
		assert.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
}

func TestDetectRejectsUnsupportedExtensions(t *testing.T) {
	for _, path := range []string{"readme.md", "data.json", "Makefile", "script.sh"} {
		_, ok := Detect(path)
		assert.False(t, ok, path)
	}
}

func TestIsIndexableMirrorsDetect(t *testing.T) {
	assert.True(t, IsIndexable("main.go"))
	assert.False(t, IsIndexable("main.exe"))
}
