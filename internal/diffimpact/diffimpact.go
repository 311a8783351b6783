// Package diffimpact implements C9: parsing a unified diff, mapping changed
// lines to their enclosing functions, and attaching callers — grounded on
// the teacher's git.GitDiffProvider shelling out to `git diff`.
package diffimpact

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/index"
	"github.com/mleoca/ucn/internal/model"
)

// FunctionImpact is one changed function in the result, with its resolved
// callers attached.
type FunctionImpact struct {
	Name     string
	FilePath string
	Line     int
	Callers  []string // bindingIds
}

// Result is diffImpact's return shape (spec.md §4.6).
type Result struct {
	Base              string
	Functions         []FunctionImpact
	NewFunctions      []FunctionImpact
	ModuleLevelChanges []string
	Summary           string
}

// Options selects the diff range: Staged runs `git diff --cached`;
// otherwise Base (default "HEAD") is diffed against the working tree.
type Options struct {
	Base   string
	Staged bool
}

// gitDiff runs `git diff` in root and returns its raw unified-diff text.
// A non-zero exit is reported as "not a git repo" per spec.md §6.
func gitDiff(root string, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	args := []string{"diff"}
	if opts.Staged {
		args = append(args, "--cached")
	} else if opts.Base != "" {
		args = append(args, opts.Base)
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not a git repo (or git diff failed): %w", err)
	}
	return string(out), nil
}

// fileDiffHeader matches `+++ b/path/to/file`.
var fileDiffHeader = regexp.MustCompile(`^\+\+\+ b/(.+)$`)

// hunkHeader matches `@@ -a,b +c,d @@` and captures the new-file start line.
var hunkHeader = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// changedLine is one added/modified line in the new file, by (file, line).
type changedLine struct {
	file string
	line int
}

// ParseDiff parses unified diff text into the set of changed lines in the
// post-change file, keyed by project-relative path.
func ParseDiff(diffText string) []changedLine {
	var out []changedLine
	var currentFile string
	var newLine int

	for _, raw := range strings.Split(diffText, "\n") {
		if m := fileDiffHeader.FindStringSubmatch(raw); m != nil {
			currentFile = m[1]
			continue
		}
		if m := hunkHeader.FindStringSubmatch(raw); m != nil {
			newLine, _ = strconv.Atoi(m[1])
			continue
		}
		if currentFile == "" || newLine == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(raw, "+") && !strings.HasPrefix(raw, "+++"):
			out = append(out, changedLine{file: currentFile, line: newLine})
			newLine++
		case strings.HasPrefix(raw, "-") && !strings.HasPrefix(raw, "---"):
			// Deleted line: doesn't advance the new-file line counter.
		default:
			newLine++
		}
	}
	return out
}

// Run computes diffImpact against idx, shelling out to git in idx.Root.
func Run(idx *index.Index, opts Options) (*Result, error) {
	base := opts.Base
	if base == "" && !opts.Staged {
		base = "HEAD"
	}
	diffText, err := gitDiff(idx.Root, Options{Base: base, Staged: opts.Staged})
	if err != nil {
		return nil, err
	}

	changed := ParseDiff(diffText)
	resolver := callgraph.New(idx)

	seen := map[string]bool{}
	var functions []FunctionImpact
	var newFunctions []FunctionImpact
	var moduleChanges []string

	for _, cl := range changed {
		enclosing := resolver.EnclosingFunction(cl.file, cl.line)
		if enclosing == nil {
			key := cl.file
			if !seen["module:"+key] {
				seen["module:"+key] = true
				moduleChanges = append(moduleChanges, key)
			}
			continue
		}
		if seen[enclosing.BindingID] {
			continue
		}
		seen[enclosing.BindingID] = true

		callers := resolver.FindCallers(enclosing, callgraph.Options{IncludeMethods: true})
		callerIDs := make([]string, 0, len(callers))
		for _, c := range callers {
			callerIDs = append(callerIDs, enclosingCallerID(resolver, c))
		}

		fi := FunctionImpact{
			Name:     enclosing.Name,
			FilePath: enclosing.RelativePath,
			Line:     enclosing.StartLine,
			Callers:  callerIDs,
		}
		if isWhollyWithin(enclosing, changed) {
			newFunctions = append(newFunctions, fi)
		} else {
			functions = append(functions, fi)
		}
	}

	summary := fmt.Sprintf("%d function(s) changed, %d new, %d module-level change(s)",
		len(functions), len(newFunctions), len(moduleChanges))

	return &Result{
		Base:              base,
		Functions:         functions,
		NewFunctions:      newFunctions,
		ModuleLevelChanges: moduleChanges,
		Summary:           summary,
	}, nil
}

func enclosingCallerID(resolver *callgraph.Resolver, res callgraph.Resolution) string {
	caller := resolver.EnclosingFunction(res.File, res.Call.Line)
	if caller == nil {
		return res.File
	}
	return caller.BindingID
}

// isWhollyWithin reports whether a function's own declaration line was
// added by the diff, marking it as a new function rather than a merely
// touched one.
func isWhollyWithin(sym *model.Symbol, changed []changedLine) bool {
	for _, cl := range changed {
		if cl.file == sym.RelativePath && cl.line == sym.StartLine {
			return true
		}
	}
	return false
}
