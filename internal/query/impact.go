package query

import (
	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/index"
)

// CallSite is one resolved call to the target, as reported by `impact`.
type CallSite struct {
	File     string
	Line     int
	Column   int
	Content  string
	Function string // enclosing function's binding ID, if any
}

// ImpactFile groups `impact`'s call sites by the file they occur in.
type ImpactFile struct {
	File      string
	CallSites []CallSite
}

// ImpactResult is `impact`'s return shape.
type ImpactResult struct {
	Found          bool
	Files          []ImpactFile
	TotalCallSites int
}

// ImpactOptions is `impact`'s option bag.
type ImpactOptions struct {
	File string
}

// Impact implements `impact(name, {file?})`. A file that declares its own
// same-named override of name has its call sites excluded entirely, to
// avoid attributing a local shadow's calls to the resolved target.
func (e *Engine) Impact(name string, opts ImpactOptions) *ImpactResult {
	sym, allDefs := e.Idx.ResolveSymbol(name, index.ResolveOptions{File: opts.File})
	if sym == nil {
		return &ImpactResult{Found: false}
	}

	shadowedFiles := map[string]bool{}
	for _, d := range allDefs {
		if d.BindingID != sym.BindingID {
			shadowedFiles[d.RelativePath] = true
		}
	}

	lang := e.symbolLanguage(sym)
	includeMethods := callgraph.DefaultIncludeMethods(lang, nil)
	callers := e.Resolver.FindCallers(sym, callgraph.Options{IncludeMethods: includeMethods})

	byFile := map[string][]CallSite{}
	var order []string
	for _, res := range callers {
		if shadowedFiles[res.File] {
			continue
		}
		if _, ok := byFile[res.File]; !ok {
			order = append(order, res.File)
		}
		fnID := ""
		if enclosing := e.Resolver.EnclosingFunction(res.File, res.Call.Line); enclosing != nil {
			fnID = enclosing.BindingID
		}
		byFile[res.File] = append(byFile[res.File], CallSite{
			File:     res.File,
			Line:     res.Call.Line,
			Column:   res.Call.Column,
			Content:  res.Call.Content,
			Function: fnID,
		})
	}

	result := &ImpactResult{Found: true}
	for _, f := range order {
		result.Files = append(result.Files, ImpactFile{File: f, CallSites: byFile[f]})
		result.TotalCallSites += len(byFile[f])
	}
	return result
}
