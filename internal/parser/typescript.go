package parser

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/mleoca/ucn/internal/model"
	"github.com/mleoca/ucn/internal/tsutil"
)

// typescriptAdapter reuses every JS walker in javascript.go but always
// parses with the TypeScript (or TSX) grammar instead of the plain
// JavaScript one. This is the fix spec.md §4.1 calls out by name: the
// "legacy bug" of running the JS grammar on a .ts file, which silently
// drops type annotations because the JS grammar has no node types for
// them, must never recur. Every exported method here routes through
// grammar(), never javascript.GetLanguage().
type typescriptAdapter struct {
	tsx bool
}

func newTypeScriptAdapter(isTSX bool) *typescriptAdapter {
	return &typescriptAdapter{tsx: isTSX}
}

func (a *typescriptAdapter) Language() model.Language {
	if a.tsx {
		return model.LangTSX
	}
	return model.LangTypeScript
}

func (a *typescriptAdapter) grammar() *sitter.Language {
	if a.tsx {
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}

func (a *typescriptAdapter) parse(src []byte) (*sitter.Node, func(), error) {
	return tsutil.Parse(context.Background(), src, a.grammar())
}

func (a *typescriptAdapter) FindFunctions(src []byte) []model.Symbol {
	return findJSFunctions(src, a.parse)
}

func (a *typescriptAdapter) FindClasses(src []byte) []model.Symbol {
	return findJSClasses(src, a.parse)
}

func (a *typescriptAdapter) FindImports(src []byte) []model.ImportRecord {
	return findJSImports(src, a.parse)
}

func (a *typescriptAdapter) FindExports(src []byte) []model.ExportRecord {
	return findJSExports(src, a.parse)
}

func (a *typescriptAdapter) FindCallsInCode(src []byte) []model.CallRecord {
	return findJSCalls(src, a.parse)
}

func (a *typescriptAdapter) FindUsagesInCode(src []byte, name string) []model.Usage {
	return findJSUsages(src, name, a.parse)
}

func (a *typescriptAdapter) StringAndCommentRanges(src []byte) ([]model.LineRange, []model.LineRange) {
	return jsStringAndCommentRanges(src, a.parse)
}
