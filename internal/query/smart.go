package query

import (
	"os"
	"strings"

	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/index"
	"github.com/mleoca/ucn/internal/model"
)

// CodeBlock is a symbol's source text, sliced from its file by line range.
type CodeBlock struct {
	Code         string
	RelativePath string
	StartLine    int
	EndLine      int
	Name         string
	Kind         model.SymbolKind
}

// SmartResult is `smart`'s return shape: a target's source plus the source
// of everything it directly calls.
type SmartResult struct {
	Target       CodeBlock
	Dependencies []CodeBlock
}

// Smart implements `smart(name)`. Nil if name is not defined in the project.
func (e *Engine) Smart(name string) *SmartResult {
	sym, _ := e.Idx.ResolveSymbol(name, index.ResolveOptions{})
	if sym == nil {
		return nil
	}

	target := blockFor(sym)
	includeMethods := callgraph.DefaultIncludeMethods(e.symbolLanguage(sym), nil)
	callees := e.Resolver.FindCallees(sym, callgraph.Options{IncludeMethods: includeMethods})

	seen := map[string]bool{}
	var deps []CodeBlock
	for _, res := range callees {
		if res.Callee == nil {
			continue
		}
		if res.Callee.BindingID == sym.BindingID {
			continue // never include the target itself unless truly recursive
		}
		if seen[res.Callee.BindingID] {
			continue
		}
		seen[res.Callee.BindingID] = true
		deps = append(deps, blockFor(res.Callee))
	}

	// A genuinely recursive target (calls itself) is included in its own
	// dependency list, per spec.
	for _, res := range callees {
		if res.Callee != nil && res.Callee.BindingID == sym.BindingID && !seen[sym.BindingID] {
			seen[sym.BindingID] = true
			deps = append(deps, target)
		}
	}

	return &SmartResult{Target: target, Dependencies: deps}
}

func blockFor(sym *model.Symbol) CodeBlock {
	block := CodeBlock{
		RelativePath: sym.RelativePath,
		StartLine:    sym.StartLine,
		EndLine:      sym.EndLine,
		Name:         sym.Name,
		Kind:         sym.Kind,
	}
	src, err := os.ReadFile(sym.AbsPath)
	if err != nil {
		return block
	}
	lines := strings.Split(string(src), "\n")
	if sym.StartLine-1 >= 0 && sym.EndLine <= len(lines) && sym.StartLine <= sym.EndLine {
		block.Code = strings.Join(lines[sym.StartLine-1:sym.EndLine], "\n")
	}
	return block
}
