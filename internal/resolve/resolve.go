// Package resolve implements C3: turning a raw import specifier observed by
// a parser adapter into an absolute file path inside the project, or "" when
// the specifier is external/dynamic and cannot be resolved to a project file.
package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mleoca/ucn/internal/config"
	"github.com/mleoca/ucn/internal/model"
)

// jsExtensions is the order spec.md §4.3 requires: bare specifier first,
// then each extension, then the directory index forms.
var jsExtensions = []string{"", ".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}
var jsIndexFiles = []string{
	"/index.ts", "/index.tsx", "/index.js", "/index.jsx", "/index.mjs", "/index.cjs",
}

// Resolve resolves a single import record observed in fromFile, written in
// language lang, against the project rooted at root with config cfg. It
// returns the absolute path of the resolved file (a package directory for Go
// imports and Java wildcard imports), or "" if the specifier is external,
// dynamic, or could not be matched to a project path.
func Resolve(rec model.ImportRecord, fromFile string, lang model.Language, root string, cfg *config.Config) string {
	if rec.IsDynamic || rec.Module == "" {
		return ""
	}
	switch lang {
	case model.LangJavaScript, model.LangTypeScript, model.LangTSX:
		return resolveJS(rec.Module, fromFile, root, cfg)
	case model.LangPython:
		return resolvePython(rec, fromFile, root)
	case model.LangGo:
		return resolveGo(rec.Module, root, cfg)
	case model.LangRust:
		return resolveRust(rec, fromFile, root)
	case model.LangJava:
		return resolveJava(rec, root)
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// --- JS/TS -----------------------------------------------------------------

func resolveJS(spec, fromFile, root string, cfg *config.Config) string {
	if strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") {
		base := filepath.Join(filepath.Dir(fromFile), spec)
		if p := tryJSCandidates(base); p != "" {
			return p
		}
		return ""
	}

	if cfg != nil {
		for _, alias := range cfg.Aliases {
			if strings.HasPrefix(spec, alias.Prefix) {
				rest := strings.TrimPrefix(spec, alias.Prefix)
				base := filepath.Join(root, alias.Target, rest)
				if p := tryJSCandidates(base); p != "" {
					return p
				}
			}
		}
		for _, rule := range cfg.TSPaths {
			m := rule.Regex.FindStringSubmatch(spec)
			if m == nil {
				continue
			}
			wildcard := ""
			if len(m) > 1 {
				wildcard = m[1]
			}
			for _, target := range rule.Targets {
				resolvedTarget := strings.Replace(target, "*", wildcard, 1)
				base := filepath.Join(root, resolvedTarget)
				if p := tryJSCandidates(base); p != "" {
					return p
				}
			}
		}
	}
	return ""
}

func tryJSCandidates(base string) string {
	for _, ext := range jsExtensions {
		if fileExists(base + ext) {
			return base + ext
		}
	}
	for _, idx := range jsIndexFiles {
		if fileExists(base + idx) {
			return base + idx
		}
	}
	return ""
}

// --- Python ------------------------------------------------------------------

func resolvePython(rec model.ImportRecord, fromFile, root string) string {
	module := rec.Module
	dotCount := 0
	for dotCount < len(module) && module[dotCount] == '.' {
		dotCount++
	}
	if dotCount > 0 {
		suffix := strings.TrimPrefix(module[dotCount:], ".")
		dir := filepath.Dir(fromFile)
		for i := 1; i < dotCount; i++ {
			dir = filepath.Dir(dir)
		}
		return tryPythonCandidates(dir, suffix)
	}

	parts := strings.Split(module, ".")
	base := filepath.Join(root, filepath.Join(parts...))
	if p := tryPythonCandidates(root, module); p != "" {
		return p
	}
	if fileExists(base + ".py") {
		return base + ".py"
	}
	if fileExists(filepath.Join(base, "__init__.py")) {
		return filepath.Join(base, "__init__.py")
	}

	// `from pkg import sub`: also try pkg/sub.py and pkg/sub/__init__.py
	// using names[] as the final path segment.
	for _, name := range rec.Names {
		subBase := filepath.Join(base, name)
		if fileExists(subBase + ".py") {
			return subBase + ".py"
		}
		if fileExists(filepath.Join(subBase, "__init__.py")) {
			return filepath.Join(subBase, "__init__.py")
		}
	}
	return ""
}

func tryPythonCandidates(dir, dotted string) string {
	if dotted == "" {
		return filepath.Join(dir, "__init__.py")
	}
	parts := strings.Split(dotted, ".")
	base := filepath.Join(dir, filepath.Join(parts...))
	if fileExists(base + ".py") {
		return base + ".py"
	}
	if fileExists(filepath.Join(base, "__init__.py")) {
		return filepath.Join(base, "__init__.py")
	}
	return ""
}

// --- Go ----------------------------------------------------------------------

func resolveGo(importPath, root string, cfg *config.Config) string {
	if cfg == nil || cfg.GoModule == "" {
		return ""
	}
	if importPath != cfg.GoModule && !strings.HasPrefix(importPath, cfg.GoModule+"/") {
		return "" // external package
	}
	rel := strings.TrimPrefix(importPath, cfg.GoModule)
	rel = strings.TrimPrefix(rel, "/")
	dir := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

// --- Rust ----------------------------------------------------------------------

func resolveRust(rec model.ImportRecord, fromFile, root string) string {
	switch rec.Type {
	case "mod":
		dir := rustParentDir(fromFile)
		if fileExists(filepath.Join(dir, rec.Module+".rs")) {
			return filepath.Join(dir, rec.Module+".rs")
		}
		if fileExists(filepath.Join(dir, rec.Module, "mod.rs")) {
			return filepath.Join(dir, rec.Module, "mod.rs")
		}
		return ""
	case "include":
		dir := filepath.Dir(fromFile)
		p := filepath.Join(dir, rec.Module)
		if fileExists(p) {
			return p
		}
		return ""
	case "use":
		return resolveRustUse(rec.Module, fromFile, root)
	}
	return ""
}

// rustParentDir returns the directory containing fromFile, which is where
// `self::` paths resolve for both `mod.rs` and a regular `X.rs`. The
// mod.rs/X.rs distinction of spec.md §4.3 applies to `super::` and is made in
// resolveRustUse: from `mod.rs` it goes up past the containing directory,
// from `X.rs` it resolves to the directory containing X.rs itself.
func rustParentDir(fromFile string) string {
	return filepath.Dir(fromFile)
}

func resolveRustUse(path, fromFile, root string) string {
	segments := strings.Split(path, "::")
	if len(segments) == 0 {
		return ""
	}
	srcDir := filepath.Join(root, "src")
	var dir string
	switch segments[0] {
	case "crate":
		dir = srcDir
		segments = segments[1:]
	case "super":
		dir = rustParentDir(fromFile)
		if filepath.Base(fromFile) == "mod.rs" {
			dir = filepath.Dir(dir)
		}
		segments = segments[1:]
	case "self":
		dir = rustParentDir(fromFile)
		segments = segments[1:]
	default:
		dir = srcDir
	}
	for i, seg := range segments {
		if seg == "" || seg[0] >= 'A' && seg[0] <= 'Z' {
			// Item name, not a module path segment (Type/Item import tail).
			break
		}
		if i == len(segments)-1 {
			if fileExists(filepath.Join(dir, seg+".rs")) {
				return filepath.Join(dir, seg+".rs")
			}
			if fileExists(filepath.Join(dir, seg, "mod.rs")) {
				return filepath.Join(dir, seg, "mod.rs")
			}
			return ""
		}
		dir = filepath.Join(dir, seg)
	}
	return ""
}

// --- Java ----------------------------------------------------------------------

func resolveJava(rec model.ImportRecord, root string) string {
	pkgPath := rec.Module
	className := ""
	isWildcard := strings.HasSuffix(pkgPath, ".*")
	if isWildcard {
		pkgPath = strings.TrimSuffix(pkgPath, ".*")
	} else {
		idx := strings.LastIndex(pkgPath, ".")
		if idx < 0 {
			return ""
		}
		className = pkgPath[idx+1:]
		pkgPath = pkgPath[:idx]
	}

	if rec.Type == "java-static-import" {
		// import static com.x.Y.method / com.x.Y.Inner.CONST: walk back
		// to the first segment that is capitalized to find the class name.
		segs := strings.Split(pkgPath+"."+className, ".")
		classIdx := -1
		for i, s := range segs {
			if s != "" && s[0] >= 'A' && s[0] <= 'Z' {
				classIdx = i
			}
		}
		if classIdx < 0 {
			return ""
		}
		className = segs[classIdx]
		pkgPath = strings.Join(segs[:classIdx], ".")
	}

	return findJavaClassFile(root, pkgPath, className, isWildcard)
}

func findJavaClassFile(root, pkgPath, className string, wildcard bool) string {
	var result string
	filepathWalk(root, func(path string, isDir bool) bool {
		if result != "" {
			return false
		}
		if isDir {
			return true
		}
		if !strings.HasSuffix(path, ".java") {
			return true
		}
		if wildcard {
			if declaresPackage(path, pkgPath) {
				result = filepath.Dir(path)
				return false
			}
			return true
		}
		if filepath.Base(path) == className+".java" && declaresPackage(path, pkgPath) {
			result = path
			return false
		}
		return true
	})
	return result
}

func declaresPackage(javaFile, pkgPath string) bool {
	src, err := os.ReadFile(javaFile)
	if err != nil {
		return false
	}
	needle := "package " + pkgPath + ";"
	return strings.Contains(string(src), needle)
}

func filepathWalk(root string, visit func(path string, isDir bool) bool) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}
	for _, e := range entries {
		full := filepath.Join(root, e.Name())
		if e.IsDir() {
			if e.Name() == "node_modules" || e.Name() == ".git" || e.Name() == "target" || e.Name() == "vendor" {
				continue
			}
			if !visit(full, true) {
				return
			}
			filepathWalk(full, visit)
			continue
		}
		if !visit(full, false) {
			return
		}
	}
}
