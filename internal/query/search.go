package query

import (
	"os"
	"regexp"
	"strings"
)

// SearchMatch is one line matching the search pattern.
type SearchMatch struct {
	Line      int
	Content   string
	Before    []string
	After     []string
	MatchType string // "code" | "comment" | "string", set when codeOnly classification applies
}

// SearchFileResult groups search's matches by file.
type SearchFileResult struct {
	File    string
	Matches []SearchMatch
}

// SearchOptions is `search`'s option bag.
type SearchOptions struct {
	CaseSensitive bool
	Context       int
	CodeOnly      bool
}

// Search implements `search(pattern, {caseSensitive?, context?, codeOnly?})`.
// pattern is always treated as literal text: regex metacharacters are
// escaped before matching, per spec.md.
func (e *Engine) Search(pattern string, opts SearchOptions) []SearchFileResult {
	flags := ""
	if !opts.CaseSensitive {
		flags = "(?i)"
	}
	re := regexp.MustCompile(flags + regexp.QuoteMeta(pattern))

	var out []SearchFileResult
	for _, relPath := range e.Idx.AllFiles() {
		file := e.Idx.File(relPath)
		if file == nil {
			continue
		}
		src, err := os.ReadFile(file.AbsPath)
		if err != nil {
			continue
		}
		lines := strings.Split(string(src), "\n")

		var matches []SearchMatch
		for i, line := range lines {
			if !re.MatchString(line) {
				continue
			}
			lineNo := i + 1
			if opts.CodeOnly && file.InCommentOrString(lineNo) {
				continue
			}
			m := SearchMatch{Line: lineNo, Content: line}
			if opts.CodeOnly {
				m.MatchType = "code"
			}
			if opts.Context > 0 {
				m.Before = sliceLines(lines, lineNo-opts.Context, lineNo-1)
				m.After = sliceLines(lines, lineNo+1, lineNo+opts.Context)
			}
			matches = append(matches, m)
		}
		if len(matches) > 0 {
			out = append(out, SearchFileResult{File: relPath, Matches: matches})
		}
	}
	return out
}
