package query

import (
	"fmt"
	"os"
	"strings"

	"github.com/mleoca/ucn/internal/discover"
	"github.com/mleoca/ucn/internal/model"
	"github.com/mleoca/ucn/internal/parser"
)

// UsagesOptions is `usages`'s option bag.
type UsagesOptions struct {
	CodeOnly     bool
	IncludeTests bool
	Context      int
}

// Usages implements `usages(name, {codeOnly?, includeTests?, context?})`.
func (e *Engine) Usages(name string, opts UsagesOptions) []UsageHit {
	seen := map[string]bool{}
	var out []UsageHit

	for _, relPath := range e.Idx.AllFiles() {
		file := e.Idx.File(relPath)
		if file == nil {
			continue
		}
		if !opts.IncludeTests && discover.IsTestFile(relPath, file.Language) {
			continue
		}
		adapter := parser.For(file.Language)
		if adapter == nil {
			continue
		}
		src, err := os.ReadFile(file.AbsPath)
		if err != nil {
			continue
		}
		lines := strings.Split(string(src), "\n")
		for _, u := range adapter.FindUsagesInCode(src, name) {
			if opts.CodeOnly && file.InCommentOrString(u.Line) {
				continue
			}
			isDef := u.Kind == model.UsageDefinition
			key := fmt.Sprintf("%s:%d:%s:%t", relPath, u.Line, u.Kind, isDef)
			if seen[key] {
				continue
			}
			seen[key] = true

			hit := UsageHit{
				File:         relPath,
				Line:         u.Line,
				Column:       u.Column,
				Content:      u.Content,
				IsDefinition: isDef,
				UsageType:    u.Kind,
			}
			if opts.Context > 0 {
				hit.Before = sliceLines(lines, u.Line-opts.Context, u.Line-1)
				hit.After = sliceLines(lines, u.Line+1, u.Line+opts.Context)
			}
			out = append(out, hit)
		}
	}
	return out
}

func sliceLines(lines []string, from, to int) []string {
	var out []string
	for i := from; i <= to; i++ {
		if i-1 >= 0 && i-1 < len(lines) {
			out = append(out, lines[i-1])
		}
	}
	return out
}
