// Package completeness implements C10: scanning parsed call/import records
// for dynamic-language patterns (dynamic imports, eval, reflection) that the
// static index cannot see through, and reporting the index as complete or
// partial with per-pattern counts.
package completeness

import "github.com/mleoca/ucn/internal/model"

// Example is one file+line sample attached to a Warning.
type Example struct {
	File string
	Line int
}

// Warning is one non-zero pattern family found during the scan.
type Warning struct {
	Type     string
	Count    int
	Examples []Example
}

// Report is detectCompleteness()'s return value (spec.md §4.4).
type Report struct {
	Complete bool
	Warnings []Warning
}

const maxExamples = 3

// reflectionNames are the Python reflection builtins counted as one pattern
// family, per spec.md §4.10.
var reflectionNames = map[string]bool{
	"getattr": true, "hasattr": true, "setattr": true, "__getattr__": true,
}

// Scanner accumulates dynamic-pattern hits across a build, then produces a
// Report. Counts are additive across the whole project, never per-file.
type Scanner struct {
	dynamicImports []Example
	evalCalls      []Example
	reflection     []Example
}

func New() *Scanner { return &Scanner{} }

// ObserveImport records a dynamic import/require hit from one file's parsed
// ImportRecords.
func (s *Scanner) ObserveImport(file string, rec model.ImportRecord) {
	if rec.IsDynamic {
		s.dynamicImports = append(s.dynamicImports, Example{File: file, Line: rec.Line})
	}
}

// ObserveCall records an eval/new Function or reflection-builtin hit from
// one file's parsed CallRecords.
func (s *Scanner) ObserveCall(file string, rec model.CallRecord) {
	switch rec.Name {
	case "eval", "Function":
		s.evalCalls = append(s.evalCalls, Example{File: file, Line: rec.Line})
	}
	if reflectionNames[rec.Name] {
		s.reflection = append(s.reflection, Example{File: file, Line: rec.Line})
	}
}

// Report produces the final {complete, warnings} summary. Any non-zero
// family marks the index partial.
func (s *Scanner) Report() Report {
	var warnings []Warning
	addIfAny := func(typ string, hits []Example) {
		if len(hits) == 0 {
			return
		}
		examples := hits
		if len(examples) > maxExamples {
			examples = examples[:maxExamples]
		}
		warnings = append(warnings, Warning{Type: typ, Count: len(hits), Examples: examples})
	}
	addIfAny("dynamic-import", s.dynamicImports)
	addIfAny("eval", s.evalCalls)
	addIfAny("reflection", s.reflection)

	return Report{Complete: len(warnings) == 0, Warnings: warnings}
}
