package query

import (
	"os"
	"strings"

	"github.com/mleoca/ucn/internal/discover"
)

// TestMatchType classifies one `tests` hit.
type TestMatchType string

const (
	TestMatchCase      TestMatchType = "test-case"
	TestMatchCall      TestMatchType = "call"
	TestMatchStringRef TestMatchType = "string-ref"
)

// TestMatch is one line in a test file referencing name.
type TestMatch struct {
	Line    int
	Content string
	Type    TestMatchType
}

// TestFileMatches groups tests's matches by file.
type TestFileMatches struct {
	File    string
	Matches []TestMatch
}

// TestsOptions is `tests`'s option bag.
type TestsOptions struct {
	CallsOnly bool
}

var testCaseMarkers = []string{"it(", "test(", "describe(", "def test_", "@Test", "#[test]"}

// Tests implements `tests(name, {callsOnly?})`: every reference to name
// inside files discover.IsTestFile recognizes, categorized by line shape.
func (e *Engine) Tests(name string, opts TestsOptions) []TestFileMatches {
	var out []TestFileMatches
	for _, relPath := range e.Idx.AllFiles() {
		file := e.Idx.File(relPath)
		if file == nil || !discover.IsTestFile(relPath, file.Language) {
			continue
		}
		src, err := os.ReadFile(file.AbsPath)
		if err != nil {
			continue
		}
		var matches []TestMatch
		for i, line := range strings.Split(string(src), "\n") {
			if !strings.Contains(line, name) {
				continue
			}
			typ := classifyTestLine(line, name)
			if opts.CallsOnly && typ != TestMatchCall {
				continue
			}
			matches = append(matches, TestMatch{Line: i + 1, Content: line, Type: typ})
		}
		if len(matches) > 0 {
			out = append(out, TestFileMatches{File: relPath, Matches: matches})
		}
	}
	return out
}

func classifyTestLine(line, name string) TestMatchType {
	trimmed := strings.TrimSpace(line)
	for _, marker := range testCaseMarkers {
		if strings.Contains(trimmed, marker) {
			return TestMatchCase
		}
	}
	if idx := strings.Index(line, name); idx >= 0 {
		rest := strings.TrimSpace(line[idx+len(name):])
		if strings.HasPrefix(rest, "(") {
			return TestMatchCall
		}
	}
	return TestMatchStringRef
}
