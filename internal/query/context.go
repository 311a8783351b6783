package query

import (
	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/completeness"
	"github.com/mleoca/ucn/internal/index"
	"github.com/mleoca/ucn/internal/model"
)

// ContextMeta is the `meta` sub-object of `context`'s result.
type ContextMeta struct {
	Complete       bool
	Skipped        bool
	DynamicImports int
	Uncertain      bool
	IncludeMethods bool
	IsMethod       bool
	ClassName      string
}

// ContextResult is `context`'s return shape.
type ContextResult struct {
	Function  string
	File      string
	StartLine int
	EndLine   int
	Type      model.SymbolKind
	Name      string
	Methods   []string
	Callers   []callgraph.Resolution
	Callees   []callgraph.Resolution
	Meta      ContextMeta
}

// ContextOptions is `context`'s option bag.
type ContextOptions struct {
	File           string
	IncludeMethods *bool
	ExcludeTests   bool
	Exclude        []string
}

// Context implements `context(name, {...})`. Returns nil if name is not
// defined in the project.
func (e *Engine) Context(name string, opts ContextOptions) *ContextResult {
	sym, _ := e.Idx.ResolveSymbol(name, index.ResolveOptions{File: opts.File})
	if sym == nil {
		return nil
	}

	includeMethods := callgraph.DefaultIncludeMethods(e.symbolLanguage(sym), opts.IncludeMethods)
	report := e.Idx.DetectCompleteness()

	result := &ContextResult{
		Function:  sym.Name,
		File:      sym.RelativePath,
		StartLine: sym.StartLine,
		EndLine:   sym.EndLine,
		Type:      sym.Kind,
		Name:      sym.Name,
		Meta: ContextMeta{
			Complete:       report.Complete,
			DynamicImports: countType(report, "dynamic-import"),
			IncludeMethods: includeMethods,
			IsMethod:       sym.IsMethod,
			ClassName:      sym.ClassName,
		},
	}

	if sym.Kind.IsClassLike() {
		result.Methods = sym.Members
		return result
	}

	callOpts := callgraph.Options{IncludeMethods: includeMethods, IncludeUncertain: true}
	callers := e.Resolver.FindCallers(sym, callOpts)
	callees := e.Resolver.FindCallees(sym, callOpts)
	if opts.ExcludeTests || len(opts.Exclude) > 0 {
		callers = filterResolutions(callers, opts.Exclude, opts.ExcludeTests)
		callees = filterResolutions(callees, opts.Exclude, opts.ExcludeTests)
	}
	result.Callers = callers
	result.Callees = callees
	for _, c := range callers {
		if c.Uncertain {
			result.Meta.Uncertain = true
		}
	}
	return result
}

func filterResolutions(res []callgraph.Resolution, exclude []string, excludeTests bool) []callgraph.Resolution {
	var out []callgraph.Resolution
	for _, r := range res {
		if !index.MatchesFilters(r.File, index.MatchesOptions{Exclude: exclude, IncludeTests: !excludeTests}) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (e *Engine) symbolLanguage(sym *model.Symbol) model.Language {
	if f := e.Idx.File(sym.RelativePath); f != nil {
		return f.Language
	}
	return ""
}

func countType(report completeness.Report, typ string) int {
	for _, w := range report.Warnings {
		if w.Type == typ {
			return w.Count
		}
	}
	return 0
}
