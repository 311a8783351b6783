// Package model defines the shared data entities of the code index: files,
// symbols, bindings, import/export edges, and call records. Every other
// package builds on these types instead of defining its own shapes, so that
// the query layer and the call resolver agree on what a "symbol" is.
package model

import "fmt"

// Language is a detected source language tag (C1).
type Language string

const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangPython     Language = "python"
	LangGo         Language = "go"
	LangRust       Language = "rust"
	LangJava       Language = "java"
)

// SymbolKind is the canonical kind of a declaration.
type SymbolKind string

const (
	KindFunction    SymbolKind = "function"
	KindMethod      SymbolKind = "method"
	KindConstructor SymbolKind = "constructor"
	KindClass       SymbolKind = "class"
	KindInterface   SymbolKind = "interface"
	KindType        SymbolKind = "type"
	KindEnum        SymbolKind = "enum"
	KindStruct      SymbolKind = "struct"
	KindTrait       SymbolKind = "trait"
	KindImpl        SymbolKind = "impl"
	KindVariable    SymbolKind = "variable"
)

// IsClassLike reports whether kind is a class-like (type-defining) kind, used
// by pickBestDefinition's scoring and by the deadcode/typedef operators.
func (k SymbolKind) IsClassLike() bool {
	switch k {
	case KindClass, KindInterface, KindEnum, KindStruct, KindTrait, KindImpl:
		return true
	}
	return false
}

// IsCallable reports whether kind is a function/method-like kind that can
// have callers, used by the deadcode and verify operators.
func (k SymbolKind) IsCallable() bool {
	switch k {
	case KindFunction, KindMethod, KindConstructor:
		return true
	}
	return false
}

// LineRange is an inclusive [Start,End] 1-based line range, used both for
// symbol bodies and for the string/comment ranges recorded on a File.
type LineRange struct {
	Start int
	End   int
}

// Contains reports whether line falls within the range, inclusive.
func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// File is the per-file record described in spec §3.1.
type File struct {
	AbsPath      string
	RelPath      string
	Language     Language
	ContentHash  string
	ModTime      int64 // unix nanos
	Size         int64
	StringRanges []LineRange
	CommentRanges []LineRange
	// Per-file counts of dynamic/reflection patterns by kind (e.g.
	// "dynamic-import", "eval", "reflection"). The index initializes it
	// empty; C10 counts these patterns from import and call records instead.
	DynamicPatterns map[string]int
}

// InCommentOrString reports whether the given 1-based line sits fully inside
// a recorded comment or string-literal range.
func (f *File) InCommentOrString(line int) bool {
	for _, r := range f.CommentRanges {
		if r.Contains(line) {
			return true
		}
	}
	for _, r := range f.StringRanges {
		if r.Contains(line) {
			return true
		}
	}
	return false
}

// Symbol is a named, locatable declaration (spec §3.1).
type Symbol struct {
	Name          string
	Kind          SymbolKind
	File          string // absolute path
	RelativePath  string
	StartLine     int
	EndLine       int
	Indent        int
	Params        string // full parameter-list text, never truncated
	ReturnType    string
	Generics      string
	Modifiers     []string
	Decorators    []string // Python decorator exprs / Java annotation names, ordered
	IsMethod      bool
	ClassName     string // set when IsMethod or when a member of a class-like symbol
	Receiver      string // Go/Rust receiver text
	Extends       string // raw text, keyword stripped
	Implements    string
	Docstring     string
	BindingID     string
	IsExported    bool
	Members       []string // names of member symbols, for class-like symbols
	Code          string   // source text of [StartLine,EndLine], lazily attached by callers that need it
}

// MakeBindingID builds the stable `<relativePath>:<type>:<startLine>` id
// described in spec §3.1. It is unique within a project by construction as
// long as (relativePath, startLine) pairs are not duplicated for the same
// kind, which the index enforces on insert.
func MakeBindingID(relativePath string, kind SymbolKind, startLine int) string {
	return fmt.Sprintf("%s:%s:%d", relativePath, kind, startLine)
}

// BindingTargetKind discriminates what a binding table entry points at.
type BindingTargetKind int

const (
	BindsToFile BindingTargetKind = iota
	BindsToSymbol
	BindsToClassName
)

// Binding is one entry of a file's local binding table (spec §3.1): an
// association from a local identifier to another file (import alias), a
// concrete symbol, or a bare class-name string used to type `self`/`this`.
type Binding struct {
	Kind       BindingTargetKind
	FilePath   string  // valid when Kind == BindsToFile
	Symbol     *Symbol // valid when Kind == BindsToSymbol
	ClassName  string  // valid when Kind == BindsToClassName
}

// ImportRecord is one import statement observed in a file, pre-resolution.
type ImportRecord struct {
	Module    string
	Names     []string
	Type      string // esm | cjs | commonjs-variable | dynamic | from-import | include | mod | use | java-import | java-static-import
	IsDynamic bool
	Line      int
	Resolved  string // absolute path, empty if external/dynamic/unresolved
}

// ExportRecord is a single exported declaration observed in a file.
type ExportRecord struct {
	Name           string
	Kind           SymbolKind
	Line           int
	TypeAnnotation string
	DeclKind       string // const|let|var, for `export const X = ...: T`
	IsTypeExport   bool
	IsReExport     bool
	ReExportFrom   string // module spec for `export { x } from './other'`
}

// Importer identifies one file importing another, attached to ExportGraph
// entries (spec's `exportGraph[file] = list of {file, importLine, names[]}`).
type Importer struct {
	File       string
	ImportLine int
	Names      []string
}

// CallRecord is a single call expression observed in a file (spec §3.1).
type CallRecord struct {
	Name                 string
	Line                 int
	Column               int
	Content              string // source text of the line the call occurs on
	Receiver             string
	SelfAttribute        string
	ResolvedName         string
	IsMethod             bool
	IsFunctionReference  bool
	IsPotentialCallback  bool
	Uncertain            bool
	EnclosingFunction    string // bindingId of the enclosing function symbol, if any
	ArgCount             int
}

// UsageKind classifies a findUsagesInCode hit.
type UsageKind string

const (
	UsageDefinition UsageKind = "definition"
	UsageCall       UsageKind = "call"
	UsageImport     UsageKind = "import"
	UsageReference  UsageKind = "reference"
	UsageStringRef  UsageKind = "string-ref"
)

// Usage is one hit returned by findUsagesInCode / the `usages` operator.
type Usage struct {
	File    string
	Line    int
	Column  int
	Content string
	Kind    UsageKind
}

// ClassAttrTypes maps className -> (attrName -> className-of-init-value), the
// Python/TS this-tracking table described in spec §3.1.
type ClassAttrTypes map[string]map[string]string
