// Package discover implements C8: the file-discovery ignore set (default
// ignores, conditional vendor/Pods ignores, a reduced .gitignore parse) and
// the isTestFile classifier used by matchesFilters/pickBestDefinition.
package discover

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mleoca/ucn/internal/model"
)

// defaultIgnores is the base ignore set, independent of project markers.
var defaultIgnores = []string{
	"node_modules", ".git", "dist", "build", "target",
	"__pycache__", ".venv", "venv", ".tox", ".pytest_cache",
	".eggs", ".idea", ".vscode", "coverage", ".next", ".nuxt",
}

// IgnoreSet is the compiled set of directory/file-name ignores for one
// project root.
type IgnoreSet struct {
	names []string // exact directory/file names to skip
	globs []*regexp.Regexp
}

// Build constructs the ignore set for root: DEFAULT_IGNORES, plus vendor/
// (iff go.mod or composer.json exists), plus Pods/ (iff Podfile exists),
// plus a reduced parse of .gitignore.
func Build(root string) *IgnoreSet {
	set := &IgnoreSet{names: append([]string(nil), defaultIgnores...)}

	if fileExists(filepath.Join(root, "go.mod")) || fileExists(filepath.Join(root, "composer.json")) {
		set.names = append(set.names, "vendor")
	}
	if fileExists(filepath.Join(root, "Podfile")) {
		set.names = append(set.names, "Pods")
	}

	if lines, ok := readLines(filepath.Join(root, ".gitignore")); ok {
		set.addGitignoreLines(lines)
	}
	return set
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func readLines(p string) ([]string, bool) {
	f, err := os.Open(p)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, true
}

// addGitignoreLines applies spec.md §4.8's reduced .gitignore semantics:
// blank/comment lines, negations, and path-qualified patterns (containing
// an interior `/`) are skipped entirely; leading/trailing `/` are stripped;
// patterns already in DEFAULT_IGNORES are dropped; everything else becomes
// a name-level ignore, honoring `*` as a filename glob.
func (s *IgnoreSet) addGitignoreLines(lines []string) {
	already := map[string]bool{}
	for _, n := range s.names {
		already[n] = true
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		line = strings.TrimPrefix(line, "/")
		line = strings.TrimSuffix(line, "/")
		if line == "" {
			continue
		}
		if strings.Contains(line, "/") {
			continue // path-qualified, out of scope for the reduced parser
		}
		if already[line] {
			continue
		}
		if strings.ContainsAny(line, "*?[") {
			s.globs = append(s.globs, compileGlob(line))
			continue
		}
		s.names = append(s.names, line)
		already[line] = true
	}
}

func compileGlob(pattern string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(pattern)
	escaped = strings.ReplaceAll(escaped, `\*`, `.*`)
	escaped = strings.ReplaceAll(escaped, `\?`, `.`)
	return regexp.MustCompile("^" + escaped + "$")
}

// ShouldSkipDir reports whether a directory with this base name should be
// pruned from the walk.
func (s *IgnoreSet) ShouldSkipDir(name string) bool {
	return s.matches(name)
}

// ShouldSkipFile reports whether a file with this base name should be
// skipped.
func (s *IgnoreSet) ShouldSkipFile(name string) bool {
	return s.matches(name)
}

func (s *IgnoreSet) matches(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	for _, g := range s.globs {
		if g.MatchString(name) {
			return true
		}
	}
	return false
}

// Walk walks root, invoking fn for every file not pruned by the ignore
// set; whether a file is indexable is not checked here. Directory pruning happens before descent, so an ignored
// directory's contents are never visited (and never content-hashed).
func Walk(root string, set *IgnoreSet, fn func(absPath, relPath string) error) error {
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		if rel == "." {
			return nil
		}
		base := d.Name()
		if d.IsDir() {
			if set.ShouldSkipDir(base) {
				return filepath.SkipDir
			}
			return nil
		}
		if set.ShouldSkipFile(base) {
			return nil
		}
		return fn(p, filepath.ToSlash(rel))
	})
}

var testFilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(^|/)__tests__/`),
	regexp.MustCompile(`\.(test|spec)\.[jt]sx?$`),
	regexp.MustCompile(`(^|/)test_[^/]+\.py$`),
	regexp.MustCompile(`(^|/)[^/]+_test\.py$`),
	regexp.MustCompile(`(^|/)[^/]+_test\.go$`),
	regexp.MustCompile(`(^|/)tests/[^/]+\.rs$`),
	regexp.MustCompile(`(^|/)src/test/`),
	regexp.MustCompile(`(^|/)[^/]+Test\.java$`),
	regexp.MustCompile(`(^|/)[^/]+Tests\.java$`),
}

// IsTestFile matches relativePath (never the absolute path, per spec.md
// §4.8) against language-agnostic test-file conventions.
func IsTestFile(relativePath string, lang model.Language) bool {
	rel := path.Clean(filepath.ToSlash(relativePath))
	for _, re := range testFilePatterns {
		if re.MatchString(rel) {
			return true
		}
	}
	return false
}
