package query

import (
	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/index"
)

// AboutResult is `about`'s consolidated return shape.
type AboutResult struct {
	Find    []FindResult
	Usages  []UsageHit
	Callers []callgraph.Resolution
	Callees []callgraph.Resolution
	Tests   []TestFileMatches
	Types   []TypedefEntry
}

// AboutOptions is `about`'s option bag.
type AboutOptions struct {
	IncludeMethods *bool
}

// About implements `about(name, {includeMethods?})`: a consolidated report
// combining find, usages, callers, callees, tests, and types.
func (e *Engine) About(name string, opts AboutOptions) *AboutResult {
	result := &AboutResult{
		Find:   e.Find(name, FindOptions{}),
		Usages: e.Usages(name, UsagesOptions{IncludeTests: true}),
		Tests:  e.Tests(name, TestsOptions{}),
		Types:  e.Typedef(name),
	}

	sym, _ := e.Idx.ResolveSymbol(name, index.ResolveOptions{})
	if sym == nil {
		return result
	}
	includeMethods := callgraph.DefaultIncludeMethods(e.symbolLanguage(sym), opts.IncludeMethods)
	callOpts := callgraph.Options{IncludeMethods: includeMethods, IncludeUncertain: true}
	result.Callers = e.Resolver.FindCallers(sym, callOpts)
	result.Callees = e.Resolver.FindCallees(sym, callOpts)
	return result
}
