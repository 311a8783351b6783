package query

import (
	"fmt"

	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/index"
	"github.com/mleoca/ucn/internal/model"
)

// TraceDirection selects whether trace follows calls outward or inward.
type TraceDirection string

const (
	TraceCallees TraceDirection = "callees"
	TraceCallers TraceDirection = "callers"
)

// TraceNode is one function in the trace tree.
type TraceNode struct {
	Name      string
	File      string
	Line      int
	Uncertain bool
	Recursive bool // true when this node closes a cycle back to an ancestor
	Children  []TraceNode
}

// TraceResult is `trace`'s return shape.
type TraceResult struct {
	Root     TraceNode
	Warnings []string
}

// TraceOptions is `trace`'s option bag.
type TraceOptions struct {
	Depth            int
	Direction        TraceDirection
	IncludeMethods   *bool
	IncludeUncertain bool
}

// Trace implements `trace(root, {depth?, direction?, includeMethods?,
// includeUncertain?})`: a recursion-protected call tree rooted at root. Nil
// if root is not defined in the project.
func (e *Engine) Trace(root string, opts TraceOptions) *TraceResult {
	sym, _ := e.Idx.ResolveSymbol(root, index.ResolveOptions{})
	if sym == nil {
		return nil
	}
	return e.traceSymbol(sym, opts)
}

func (e *Engine) traceSymbol(sym *model.Symbol, opts TraceOptions) *TraceResult {
	if opts.Depth <= 0 {
		opts.Depth = 5
	}
	if opts.Direction == "" {
		opts.Direction = TraceCallees
	}
	includeMethods := callgraph.DefaultIncludeMethods(e.symbolLanguage(sym), opts.IncludeMethods)
	callOpts := callgraph.Options{IncludeMethods: includeMethods, IncludeUncertain: opts.IncludeUncertain}

	var warnings []string
	visited := map[string]bool{sym.BindingID: true}

	var build func(s *model.Symbol, depth int, ancestry map[string]bool) TraceNode
	build = func(s *model.Symbol, depth int, ancestry map[string]bool) TraceNode {
		node := TraceNode{Name: s.Name, File: s.RelativePath, Line: s.StartLine}
		if depth >= opts.Depth {
			return node
		}

		var resolutions []callgraph.Resolution
		if opts.Direction == TraceCallers {
			resolutions = e.Resolver.FindCallers(s, callOpts)
		} else {
			resolutions = e.Resolver.FindCallees(s, callOpts)
		}

		hadUncertain := false
		for _, res := range resolutions {
			if res.Uncertain {
				hadUncertain = true
				continue
			}
			next := res.Callee
			if opts.Direction == TraceCallers {
				next = e.Resolver.EnclosingFunction(res.File, res.Call.Line)
			}
			if next == nil {
				continue
			}
			if ancestry[next.BindingID] {
				node.Children = append(node.Children, TraceNode{
					Name: next.Name, File: next.RelativePath, Line: next.StartLine, Recursive: true,
				})
				continue
			}
			nextAncestry := map[string]bool{}
			for k := range ancestry {
				nextAncestry[k] = true
			}
			nextAncestry[next.BindingID] = true
			visited[next.BindingID] = true
			node.Children = append(node.Children, build(next, depth+1, nextAncestry))
		}

		if len(node.Children) == 0 && hadUncertain {
			_, alternatives := e.Idx.ResolveSymbol(s.Name, index.ResolveOptions{})
			if len(alternatives) > 1 {
				warnings = append(warnings, fmt.Sprintf(
					"%s: callees could not be resolved with confidence, though %d other definitions named %q exist",
					s.Name, len(alternatives)-1, s.Name))
			}
		}
		return node
	}

	root := build(sym, 0, map[string]bool{sym.BindingID: true})
	return &TraceResult{Root: root, Warnings: warnings}
}
