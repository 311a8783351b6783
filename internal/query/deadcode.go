package query

import (
	"os"
	"strings"

	"github.com/mleoca/ucn/internal/callgraph"
	"github.com/mleoca/ucn/internal/discover"
	"github.com/mleoca/ucn/internal/model"
)

// DeadcodeEntry is one symbol `deadcode` reports as having zero callers.
type DeadcodeEntry struct {
	Name         string
	File         string
	Line         int
	Kind         model.SymbolKind
	IsExported   bool
}

// DeadcodeResult is `deadcode`'s return shape.
type DeadcodeResult struct {
	Entries          []DeadcodeEntry
	ExcludedExported int
}

// DeadcodeOptions is `deadcode`'s option bag.
type DeadcodeOptions struct {
	IncludeTests     bool
	IncludeExported  bool
	IncludeDecorated bool
}

var pythonEntryPoints = map[string]bool{
	"__init__": true, "__call__": true, "__enter__": true, "__exit__": true,
	"setUp": true, "tearDown": true,
}

// Deadcode implements `deadcode(options)`: symbols with zero resolved
// callers, after excluding test files, exported symbols, decorated/
// annotated symbols, entry points, and bundled/minified files.
func (e *Engine) Deadcode(opts DeadcodeOptions) *DeadcodeResult {
	result := &DeadcodeResult{}
	bundled := map[string]bool{}

	for _, s := range e.Idx.Symbols {
		if !s.Kind.IsCallable() {
			continue
		}
		file := e.Idx.File(s.RelativePath)
		if file == nil {
			continue
		}
		if !opts.IncludeTests && discover.IsTestFile(s.RelativePath, file.Language) {
			continue
		}
		if isBundledFile(file.AbsPath, s.RelativePath, bundled) {
			continue
		}
		if isEntryPoint(s, file.Language) {
			continue
		}
		if !opts.IncludeDecorated && isDecorated(s, file.Language) {
			continue
		}
		if !opts.IncludeDecorated && file.Language == model.LangRust && s.IsMethod {
			traitImpl := false
			for _, c := range e.Idx.SymbolsInFile(s.RelativePath) {
				if c.Kind == model.KindImpl && c.Implements != "" && c.StartLine <= s.StartLine && s.EndLine <= c.EndLine {
					traitImpl = true
				}
			}
			if traitImpl {
				continue
			}
		}
		if s.IsExported {
			if !opts.IncludeExported {
				result.ExcludedExported++
				continue
			}
		}

		includeMethods := callgraph.DefaultIncludeMethods(file.Language, nil)
		callers := e.Resolver.FindCallers(s, callgraph.Options{IncludeMethods: includeMethods, IncludeUncertain: true})
		if len(callers) > 0 {
			continue
		}

		result.Entries = append(result.Entries, DeadcodeEntry{
			Name:       s.Name,
			File:       s.RelativePath,
			Line:       s.StartLine,
			Kind:       s.Kind,
			IsExported: s.IsExported,
		})
	}
	return result
}

// isBundledFile detects webpack/minified bundles: presence of
// __webpack_require__ or any line over ~500 chars. Cached per file.
func isBundledFile(absPath, relPath string, cache map[string]bool) bool {
	if v, ok := cache[relPath]; ok {
		return v
	}
	src, err := os.ReadFile(absPath)
	if err != nil {
		cache[relPath] = false
		return false
	}
	bundled := strings.Contains(string(src), "__webpack_require__")
	if !bundled {
		for _, line := range strings.Split(string(src), "\n") {
			if len(line) > 500 {
				bundled = true
				break
			}
		}
	}
	cache[relPath] = bundled
	return bundled
}

func isEntryPoint(s *model.Symbol, lang model.Language) bool {
	switch lang {
	case model.LangGo:
		return s.Name == "main" || s.Name == "init"
	case model.LangPython:
		if pythonEntryPoints[s.Name] {
			return true
		}
		return strings.HasPrefix(s.Name, "pytest_") || strings.HasPrefix(s.Name, "test_")
	case model.LangJava:
		if s.Name == "main" && contains(s.Modifiers, "public") && contains(s.Modifiers, "static") {
			return true
		}
		return contains(s.Decorators, "Override") || contains(s.Decorators, "override")
	case model.LangRust:
		if s.Name == "main" {
			return true
		}
		for _, d := range s.Decorators {
			d = strings.TrimSuffix(strings.TrimPrefix(d, "#["), "]")
			if d == "test" || d == "bench" {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// isDecorated reports whether s carries a decorator/annotation that exempts
// it from deadcode reporting: any Python decorator containing a `.`
// (framework hooks like @app.route), any Java annotation, or any Rust
// attribute. Rust methods inside an `impl Trait for Type` block are exempted
// separately in Deadcode, by looking up the enclosing impl symbol.
func isDecorated(s *model.Symbol, lang model.Language) bool {
	switch lang {
	case model.LangPython:
		for _, d := range s.Decorators {
			if strings.Contains(d, ".") {
				return true
			}
		}
		return false
	case model.LangJava:
		return len(s.Decorators) > 0
	case model.LangRust:
		if len(s.Decorators) > 0 {
			return true
		}
		return s.IsMethod && strings.Contains(s.ClassName, " for ")
	default:
		return false
	}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
