package query

import (
	"os"
	"strings"

	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/index"
)

// ExampleResult is `example`'s return shape: the best-scored call site of
// name, plus the total number of calls found.
type ExampleResult struct {
	Found      bool
	File       string
	Line       int
	Content    string
	Before     []string
	After      []string
	TotalCalls int
}

// Example implements `example(name)`: picks the call site whose context
// best demonstrates real usage — preferring a typed-assignment context and
// higher branching (an enclosing if/for/switch) over a bare statement.
func (e *Engine) Example(name string) *ExampleResult {
	sym, _ := e.Idx.ResolveSymbol(name, index.ResolveOptions{})
	if sym == nil {
		return &ExampleResult{Found: false}
	}

	lang := e.symbolLanguage(sym)
	includeMethods := callgraph.DefaultIncludeMethods(lang, nil)
	callers := e.Resolver.FindCallers(sym, callgraph.Options{IncludeMethods: includeMethods})

	type scored struct {
		res   callgraph.Resolution
		score int
	}
	var candidates []scored
	srcCache := map[string][]string{}
	for _, res := range callers {
		lines, ok := srcCache[res.File]
		if !ok {
			if file := e.Idx.File(res.File); file != nil {
				if raw, err := os.ReadFile(file.AbsPath); err == nil {
					lines = strings.Split(string(raw), "\n")
				}
			}
			srcCache[res.File] = lines
		}
		candidates = append(candidates, scored{res: res, score: scoreExample(lines, res.Call.Line)})
	}
	if len(candidates) == 0 {
		return &ExampleResult{Found: false, TotalCalls: 0}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}

	result := &ExampleResult{
		Found:      true,
		File:       best.res.File,
		Line:       best.res.Call.Line,
		Content:    best.res.Call.Content,
		TotalCalls: len(candidates),
	}
	if lines := srcCache[best.res.File]; lines != nil {
		result.Before = sliceLines(lines, best.res.Call.Line-3, best.res.Call.Line-1)
		result.After = sliceLines(lines, best.res.Call.Line+1, best.res.Call.Line+3)
	}
	return result
}

// scoreExample rates how demonstrative a call site is: a preceding typed
// assignment (`x := `, `const x =`, `let x: T =`) scores highest; an
// enclosing branch (if/for/switch/match within 3 lines) adds a point.
func scoreExample(lines []string, line int) int {
	score := 0
	if line-1 >= 1 && line-1 <= len(lines) {
		prev := strings.TrimSpace(lines[line-1-1])
		if strings.Contains(prev, ":=") || strings.Contains(prev, "const ") || strings.Contains(prev, "let ") {
			score += 2
		}
	}
	for i := line - 3; i < line; i++ {
		if i-1 < 0 || i-1 >= len(lines) {
			continue
		}
		t := strings.TrimSpace(lines[i-1])
		if strings.HasPrefix(t, "if ") || strings.HasPrefix(t, "for ") ||
			strings.HasPrefix(t, "switch ") || strings.HasPrefix(t, "match ") {
			score++
		}
	}
	return score
}
