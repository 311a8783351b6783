package query

import "github.com/mleoca/ucn/internal/index"

// RewriteSite is one call site annotated with the edit `plan` proposes.
type RewriteSite struct {
	CallSite
	Rewrite string
}

// PlanResult is `plan`'s return shape: the resolved symbol plus every call
// site impact() found, each annotated with its proposed rewrite.
type PlanResult struct {
	Found          bool
	TargetFile     string
	TargetLine     int
	RenameTo       string
	AddParam       string
	Sites          []RewriteSite
	TotalCallSites int
}

// PlanOptions is `plan`'s option bag.
type PlanOptions struct {
	RenameTo string
	AddParam string
	File     string
}

// Plan implements `plan(name, {renameTo?, addParam?, file?})`: combines
// resolveSymbol with impact(), annotating each call site with the rewrite
// that renameTo/addParam implies.
func (e *Engine) Plan(name string, opts PlanOptions) *PlanResult {
	sym, _ := e.Idx.ResolveSymbol(name, index.ResolveOptions{File: opts.File})
	if sym == nil {
		return &PlanResult{Found: false}
	}

	impact := e.Impact(name, ImpactOptions{File: opts.File})
	result := &PlanResult{
		Found:      true,
		TargetFile: sym.RelativePath,
		TargetLine: sym.StartLine,
		RenameTo:   opts.RenameTo,
		AddParam:   opts.AddParam,
	}

	for _, f := range impact.Files {
		for _, site := range f.CallSites {
			result.Sites = append(result.Sites, RewriteSite{
				CallSite: site,
				Rewrite:  rewriteFor(site.Content, name, opts),
			})
		}
	}
	result.TotalCallSites = impact.TotalCallSites
	return result
}

// rewriteFor describes, in prose, what the call site's rewritten form would
// need to become; actual source rewriting is left to the caller, per
// spec.md's plan() returning annotations rather than performing edits.
func rewriteFor(content, name string, opts PlanOptions) string {
	switch {
	case opts.RenameTo != "" && opts.AddParam != "":
		return "rename `" + name + "` to `" + opts.RenameTo + "` and add argument `" + opts.AddParam + "`"
	case opts.RenameTo != "":
		return "rename `" + name + "` to `" + opts.RenameTo + "`"
	case opts.AddParam != "":
		return "add argument `" + opts.AddParam + "`"
	default:
		return content
	}
}
