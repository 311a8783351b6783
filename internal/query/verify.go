package query

import (
	"strings"

	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/index"
	"github.com/mleoca/ucn/internal/model"
)

// ArgRange is `verify`'s expected-argument-count window.
type ArgRange struct {
	Min int
	Max int
}

// VerifyResult is `verify`'s return shape.
type VerifyResult struct {
	Found        bool
	ExpectedArgs ArgRange
	Params       []string
	Valid        int
	Mismatches   int
	Uncertain    int
	TotalCalls   int
}

// VerifyOptions is `verify`'s option bag.
type VerifyOptions struct {
	File string
}

// Verify implements `verify(name, {file?})`: checks call-site argument
// counts against the resolved definition's parameter list.
func (e *Engine) Verify(name string, opts VerifyOptions) *VerifyResult {
	sym, _ := e.Idx.ResolveSymbol(name, index.ResolveOptions{File: opts.File})
	if sym == nil {
		return &VerifyResult{Found: false}
	}

	params := splitParams(sym.Params)
	lang := e.symbolLanguage(sym)
	minArgs, maxArgs := expectedArgRange(params, lang)

	result := &VerifyResult{
		Found:        true,
		ExpectedArgs: ArgRange{Min: minArgs, Max: maxArgs},
		Params:       params,
	}

	includeMethods := callgraph.DefaultIncludeMethods(lang, nil)
	callers := e.Resolver.FindCallers(sym, callgraph.Options{IncludeMethods: includeMethods, IncludeUncertain: true})
	for _, res := range callers {
		result.TotalCalls++
		if res.Uncertain {
			result.Uncertain++
			continue
		}
		argCount := res.Call.ArgCount
		if argCount >= minArgs && argCount <= maxArgs {
			result.Valid++
		} else {
			result.Mismatches++
		}
	}
	return result
}

// splitParams splits a raw parameter-list text on top-level commas, so
// generics/brackets/defaults containing commas aren't miscounted.
func splitParams(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var params []string
	depth := 0
	start := 0
	for i, r := range raw {
		switch r {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(raw[start:i]))
				start = i + 1
			}
		}
	}
	params = append(params, strings.TrimSpace(raw[start:]))
	return params
}

// expectedArgRange derives {min,max} from a parameter list, excluding
// Python's implicit self/cls. Every param without a default/optional marker
// counts toward min; a variadic param makes max unbounded.
func expectedArgRange(params []string, lang model.Language) (int, int) {
	filtered := params[:0:0]
	for _, p := range params {
		name := strings.TrimSpace(strings.SplitN(p, ":", 2)[0])
		name = strings.SplitN(name, "=", 2)[0]
		name = strings.TrimSpace(name)
		if lang == model.LangPython && (name == "self" || name == "cls") {
			continue
		}
		filtered = append(filtered, p)
	}
	if len(filtered) == 0 {
		return 0, 0
	}

	variadic := false
	min := 0
	for _, p := range filtered {
		optional := strings.Contains(p, "=") || strings.Contains(p, "?") ||
			strings.HasPrefix(strings.TrimSpace(p), "...") || strings.Contains(p, "...")
		if strings.Contains(p, "...") {
			variadic = true
			continue
		}
		if !optional {
			min++
		}
	}
	max := len(filtered)
	if variadic {
		max = 1 << 30
	}
	if min > max {
		min = max
	}
	return min, max
}
