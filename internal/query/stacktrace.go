package query

import (
	"regexp"
	"strconv"
	"strings"
)

// StackFrame is one parsed line of a stack trace, resolved against the
// index where possible.
type StackFrame struct {
	Raw          string
	Function     string
	FilePath     string
	Line         int
	Column       int
	Found        bool
	ResolvedFile string
}

// nodeFrameRe matches Node-style `at Fn (path:line:col)` or
// `at path:line:col`, with an optional `async` prefix.
var nodeFrameRe = regexp.MustCompile(`^\s*at\s+(?:(async)\s+)?(?:([^\s(]+)\s+\()?([^():]+):(\d+):(\d+)\)?\s*$`)

// firefoxFrameRe matches `Fn@path:line:col`.
var firefoxFrameRe = regexp.MustCompile(`^([^@]*)@([^:]+):(\d+):(\d+)$`)

// ParseStackTrace implements `parseStackTrace(text)`: parses each line as a
// Node or Firefox-style stack frame, then resolves its file path against
// the index by path similarity.
func (e *Engine) ParseStackTrace(text string) []StackFrame {
	var out []StackFrame
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		frame, ok := parseFrameLine(line)
		if !ok {
			continue
		}
		resolved := e.resolveStackFile(frame.FilePath)
		frame.Found = resolved != ""
		frame.ResolvedFile = resolved
		out = append(out, frame)
	}
	return out
}

func parseFrameLine(line string) (StackFrame, bool) {
	if m := nodeFrameRe.FindStringSubmatch(line); m != nil {
		ln, _ := strconv.Atoi(m[4])
		col, _ := strconv.Atoi(m[5])
		return StackFrame{Raw: line, Function: m[2], FilePath: m[3], Line: ln, Column: col}, true
	}
	if m := firefoxFrameRe.FindStringSubmatch(line); m != nil {
		ln, _ := strconv.Atoi(m[3])
		col, _ := strconv.Atoi(m[4])
		return StackFrame{Raw: line, Function: m[1], FilePath: m[2], Line: ln, Column: col}, true
	}
	return StackFrame{}, false
}

// resolveStackFile picks the indexed file whose path shares the longest
// trailing-segment run with target, favoring exact suffix matches.
func (e *Engine) resolveStackFile(target string) string {
	if target == "" {
		return ""
	}
	targetSegs := strings.Split(strings.ReplaceAll(target, "\\", "/"), "/")

	best := ""
	bestScore := 0
	for _, relPath := range e.Idx.AllFiles() {
		if relPath == target || strings.HasSuffix(target, relPath) || strings.HasSuffix(relPath, target) {
			return relPath
		}
		segs := strings.Split(relPath, "/")
		score := commonSuffixLen(targetSegs, segs)
		if score > bestScore {
			bestScore = score
			best = relPath
		}
	}
	if bestScore == 0 {
		return ""
	}
	return best
}

func commonSuffixLen(a, b []string) int {
	i, j, n := len(a)-1, len(b)-1, 0
	for i >= 0 && j >= 0 && a[i] == b[j] {
		n++
		i--
		j--
	}
	return n
}
