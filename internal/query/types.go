// Package query implements C6: the structured query operators consumed by
// the CLI/MCP front ends (out of scope here; only the shapes below are the
// contract, per spec.md §6).
package query

import (
	"strings"

	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/index"
	"github.com/mleoca/ucn/internal/model"
)

// Engine bundles an Index with the call resolver every multi-symbol
// operator needs, so callers construct it once per index lifetime.
type Engine struct {
	Idx      *index.Index
	Resolver *callgraph.Resolver
}

func New(idx *index.Index) *Engine {
	return &Engine{Idx: idx, Resolver: callgraph.New(idx)}
}

// FileNotFound is the error sentinel spec.md §6 mandates for file-keyed
// operators.
type FileNotFound struct {
	FilePath string
}

// FindResult is one entry of the `find` operator's result list.
type FindResult struct {
	Symbol     *model.Symbol
	UsageCount int
}

// UsageHit is one entry of the `usages` operator's result list.
type UsageHit struct {
	File         string
	Line         int
	Column       int
	Content      string
	IsDefinition bool
	UsageType    model.UsageKind
	Before       []string
	After        []string
}

// FindOptions is `find`'s option bag.
type FindOptions struct {
	Exact   bool
	File    string
	Type    model.SymbolKind
	Exclude []string
	In      string
}

// Find implements `find(name, {exact?, file?, type?, exclude?, in?})`.
func (e *Engine) Find(name string, opts FindOptions) []FindResult {
	var out []FindResult
	for _, s := range e.Idx.Symbols {
		if s.Name != name {
			continue
		}
		if opts.File != "" && !strings.Contains(s.RelativePath, opts.File) {
			continue
		}
		if opts.Type != "" && s.Kind != opts.Type {
			continue
		}
		if !index.MatchesFilters(s.RelativePath, index.MatchesOptions{Exclude: opts.Exclude, In: opts.In, IncludeTests: true}) {
			continue
		}
		out = append(out, FindResult{Symbol: s, UsageCount: e.usageCount(s)})
	}
	return out
}

// usageCount counts the call records, across every file, whose name equals
// sym's name. Non-call references are not counted, and a re-export under a
// different name is not traced.
func (e *Engine) usageCount(sym *model.Symbol) int {
	count := 0
	for _, calls := range e.Idx.Calls {
		for _, c := range calls {
			if c.Name == sym.Name {
				count++
			}
		}
	}
	return count
}

