// Package parser implements C2: one tree-sitter-backed adapter per language,
// behind a single Adapter interface. New languages are added by implementing
// the interface and registering it in registry — no caller outside this
// package branches on language tag.
package parser

import (
	"github.com/mleoca/ucn/internal/model"
)

// Adapter is the uniform per-language parsing surface spec.md §4.2 requires.
type Adapter interface {
	Language() model.Language

	FindFunctions(src []byte) []model.Symbol
	FindClasses(src []byte) []model.Symbol
	FindImports(src []byte) []model.ImportRecord
	FindExports(src []byte) []model.ExportRecord
	FindCallsInCode(src []byte) []model.CallRecord
	FindUsagesInCode(src []byte, name string) []model.Usage

	// StringAndCommentRanges returns the line ranges occupied by string
	// literals and comments, used for File.StringRanges/CommentRanges and by
	// the call resolver's comment/string filter (C5 step 6).
	StringAndCommentRanges(src []byte) (strings, comments []model.LineRange)
}

// InstanceAttributeAdapter is implemented only by adapters whose language
// supports Python-style `self.x = T(...)` this-tracking (currently Python).
type InstanceAttributeAdapter interface {
	FindInstanceAttributeTypes(src []byte) model.ClassAttrTypes
}

// registry maps a language tag to its adapter. Built once at init time.
var registry = map[model.Language]Adapter{}

func register(a Adapter) {
	registry[a.Language()] = a
}

// For returns the adapter for lang, or nil if unsupported.
func For(l model.Language) Adapter {
	return registry[l]
}

func init() {
	register(newJavaScriptAdapter())
	register(newTypeScriptAdapter(false))
	register(newTypeScriptAdapter(true))
	register(newPythonAdapter())
	register(newGoAdapter())
	register(newRustAdapter())
	register(newJavaAdapter())
}
