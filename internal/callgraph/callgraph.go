// Package callgraph implements C5: per-call classification and resolution.
// Each step in Resolve mirrors one numbered rule in spec.md §4.5, run in the
// same order the spec prescribes, so that the classification a call
// receives never depends on map/slice iteration order.
package callgraph

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mleoca/ucn/internal/index"
	"github.com/mleoca/ucn/internal/model"
)

// enclosingCacheSize bounds the EnclosingFunction memo; resolving every
// call site in a large project repeats the same (file, line) lookups many
// times over during findCallers/findCallees, so a small LRU pays for itself.
const enclosingCacheSize = 4096

// entryReceivers are receivers that resolve via same-class resolution and
// must never surface as uncertain (spec rule 1) nor leak into cross-file
// method-call sets unless includeMethods=true (rule 8).
var entryReceivers = map[string]bool{"self": true, "this": true, "cls": true}

// Options controls findCallers/findCallees's inclusion rules (spec rules
// 4, 7, 8).
type Options struct {
	IncludeMethods   bool
	IncludeUncertain bool
}

// Resolution is one call site after classification, carrying enough to
// answer both findCallers (who calls target) and findCallees (what target
// calls).
type Resolution struct {
	Call       model.CallRecord
	File       string
	Callee     *model.Symbol // nil if unresolved/uncertain
	Uncertain  bool
	SameClass  bool
}

// autoIncludeMethods are the languages where findCallers/findCallees
// default to treating method calls like function calls (spec rule 7).
var autoIncludeMethods = map[model.Language]bool{
	model.LangGo: true, model.LangJava: true, model.LangRust: true,
}

// DefaultIncludeMethods reports the include-methods default for lang,
// honoring an explicit override from the caller.
func DefaultIncludeMethods(lang model.Language, explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	return autoIncludeMethods[lang] || lang == model.LangJavaScript ||
		lang == model.LangTypeScript || lang == model.LangTSX || lang == model.LangPython
}

// Resolver classifies and resolves calls against an Index.
type Resolver struct {
	idx       *index.Index
	enclosing *lru.Cache[string, *model.Symbol]
}

func New(idx *index.Index) *Resolver {
	cache, _ := lru.New[string, *model.Symbol](enclosingCacheSize)
	return &Resolver{idx: idx, enclosing: cache}
}

// EnclosingFunction implements spec rule 9: the innermost function whose
// [startLine,endLine] contains the call's line, not merely the first match.
func (r *Resolver) EnclosingFunction(relPath string, line int) *model.Symbol {
	key := fmt.Sprintf("%s:%d", relPath, line)
	if sym, ok := r.enclosing.Get(key); ok {
		return sym
	}
	sym := r.findEnclosingFunction(relPath, line)
	r.enclosing.Add(key, sym)
	return sym
}

// findEnclosingFunction does the actual scan EnclosingFunction memoizes.
func (r *Resolver) findEnclosingFunction(relPath string, line int) *model.Symbol {
	var best *model.Symbol
	for _, s := range r.idx.SymbolsInFile(relPath) {
		if s.Kind == model.KindClass || s.Kind == model.KindInterface || s.Kind == model.KindStruct ||
			s.Kind == model.KindEnum || s.Kind == model.KindTrait || s.Kind == model.KindImpl {
			continue
		}
		if !(model.LineRange{Start: s.StartLine, End: s.EndLine}).Contains(line) {
			continue
		}
		if best == nil || (s.EndLine-s.StartLine) < (best.EndLine-best.StartLine) {
			best = s
		}
	}
	return best
}

// ResolveCall classifies a single call observed in relPath against the
// index, applying spec rules 1-6,8-9 in order.
func (r *Resolver) ResolveCall(relPath string, call model.CallRecord, opts Options) Resolution {
	file := r.idx.File(relPath)
	if file != nil && file.InCommentOrString(call.Line) {
		// Rule 6: comment/string filter drops the site entirely.
		return Resolution{Call: call, File: relPath, Uncertain: false, Callee: nil}
	}

	enclosing := r.EnclosingFunction(relPath, call.Line)

	// Rule 1: self-class resolution. self/this/cls receivers (or a bare
	// SelfAttribute-style Python `self.attr.method()`) resolve within the
	// enclosing symbol's class, and are never uncertain.
	if call.IsMethod && entryReceivers[call.Receiver] && enclosing != nil && enclosing.ClassName != "" {
		if callee := r.findMethodOnClass(enclosing.ClassName, call.Name); callee != nil {
			return Resolution{Call: call, File: relPath, Callee: callee, SameClass: true}
		}
		if !opts.IncludeMethods {
			return Resolution{Call: call, File: relPath}
		}
		return Resolution{Call: call, File: relPath, Uncertain: false}
	}

	// Rule 2: known receiver-type resolution.
	if call.IsMethod && call.Receiver != "" {
		if className := r.receiverClassName(relPath, enclosing, call); className != "" {
			if callee := r.findMethodOnClass(className, call.Name); callee != nil {
				return Resolution{Call: call, File: relPath, Callee: callee}
			}
		}
	}

	// JS builtin filter (rule 5) already removed known builtins in the
	// parser adapter; remaining bare-name calls resolve by name.
	if !call.IsMethod {
		callee := r.resolveBareName(relPath, call.Name)
		if callee == nil {
			return Resolution{Call: call, File: relPath}
		}
		return Resolution{Call: call, File: relPath, Callee: callee}
	}

	// Rule 4: cross-type untyped method calls. No binding evidence for the
	// receiver: either dropped or included as uncertain.
	if !opts.IncludeMethods {
		return Resolution{Call: call, File: relPath}
	}
	if !opts.IncludeUncertain {
		return Resolution{Call: call, File: relPath}
	}
	return Resolution{Call: call, File: relPath, Uncertain: true}
}

// findMethodOnClass looks up a method named name on className and returns
// the first match in the index's symbol order. When several files define
// such a method (e.g. Go multi-file packages, or Rust methods spread across
// several impl blocks), a definition in the calling file is not preferred.
func (r *Resolver) findMethodOnClass(className, name string) *model.Symbol {
	_, all := r.idx.ResolveSymbol(name, index.ResolveOptions{})
	var best *model.Symbol
	for _, s := range all {
		if s.ClassName != className && s.Receiver != className {
			continue
		}
		if !s.IsMethod {
			continue
		}
		if best == nil {
			best = s
		}
	}
	return best
}

// resolveBareName resolves a non-method call by name, preferring a
// same-file / same-package definition over any other project match (rule
// 3).
func (r *Resolver) resolveBareName(relPath, name string) *model.Symbol {
	def, all := r.idx.ResolveSymbol(name, index.ResolveOptions{})
	if def == nil {
		return nil
	}
	samePkg := packageDir(relPath)
	for _, s := range all {
		if s.IsMethod {
			continue
		}
		if s.RelativePath == relPath || packageDir(s.RelativePath) == samePkg {
			return s
		}
	}
	for _, s := range all {
		if !s.IsMethod {
			return s
		}
	}
	return def
}

func packageDir(relPath string) string {
	idx := strings.LastIndex(relPath, "/")
	if idx < 0 {
		return ""
	}
	return relPath[:idx]
}

// receiverClassName determines the static class of call.Receiver using
// (in order) the Python this-tracking table, the enclosing method's own
// receiver variable (typed as the method's class), or — for a parameter
// receiver typed like Go's `t *T` — the enclosing function's own parameter
// text.
func (r *Resolver) receiverClassName(relPath string, enclosing *model.Symbol, call model.CallRecord) string {
	if attrs, ok := r.idx.AttrTypes[relPath]; ok && enclosing != nil {
		if byAttr, ok := attrs[enclosing.ClassName]; ok {
			if t, ok := byAttr[call.Receiver]; ok && t != "" {
				return t
			}
		}
	}
	if enclosing != nil && enclosing.Receiver != "" && call.Receiver == receiverVarName(enclosing.Receiver) {
		return enclosing.ClassName
	}
	if enclosing != nil {
		if t := findParamType(enclosing.Params, call.Receiver); t != "" {
			return t
		}
	}
	return ""
}

// receiverVarName extracts the bound variable name from a Go receiver text
// like "c *Client" (its first whitespace-separated field).
func receiverVarName(receiver string) string {
	fields := strings.Fields(receiver)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// findParamType does a best-effort scan of a Go-style parameter list text
// for `name *Type`/`name Type` to back known-receiver-type resolution for
// parameters (spec rule 2's "Go parameter `t *T`" case).
func findParamType(params, name string) string {
	for _, part := range strings.Split(params, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 2 && fields[0] == name {
			return strings.TrimPrefix(fields[1], "*")
		}
	}
	return ""
}

// FindCallees returns every call made from within the given symbol's body,
// classified and filtered per opts.
func (r *Resolver) FindCallees(sym *model.Symbol, opts Options) []Resolution {
	var out []Resolution
	for _, call := range r.idx.Calls[sym.RelativePath] {
		if call.Line < sym.StartLine || call.Line > sym.EndLine {
			continue
		}
		res := r.ResolveCall(sym.RelativePath, call, opts)
		if res.Callee == nil && !res.Uncertain {
			continue
		}
		if entryReceivers[call.Receiver] && !opts.IncludeMethods && !res.SameClass {
			continue
		}
		out = append(out, res)
	}
	return out
}

// FindCallers returns every call site across the project that resolves to
// target, classified and filtered per opts.
func (r *Resolver) FindCallers(target *model.Symbol, opts Options) []Resolution {
	var out []Resolution
	for relPath, calls := range r.idx.Calls {
		for _, call := range calls {
			if call.Name != target.Name {
				continue
			}
			res := r.ResolveCall(relPath, call, opts)
			if res.Callee == nil || res.Callee.BindingID != target.BindingID {
				continue
			}
			out = append(out, res)
		}
	}
	return out
}
