// Package config loads the project-level configuration consumed by the
// import resolver (C3): `.ucn.json` aliases/excludes, `tsconfig.json`
// compilerOptions.paths, and the Go module path declared in `go.mod`.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/mod/modfile"
)

// Config is the merged project configuration, read once per build.
type Config struct {
	Root string

	Aliases []AliasRule // from .ucn.json; built from a JSON object, so their order is not defined
	Exclude []string    // from .ucn.json

	TSPaths []TSPathRule // from tsconfig.json compilerOptions.paths

	GoModule string // module path declared by go.mod, "" if absent
}

// AliasRule is one `.ucn.json` `aliases` entry: a bare-specifier prefix
// mapped to a directory relative to the project root.
type AliasRule struct {
	Prefix string
	Target string
}

// TSPathRule is one compiled `tsconfig.json` `paths` entry. Pattern is the
// literal pattern with `*` intact (for prefix/suffix splitting); Regex
// matches a candidate specifier and captures the wildcard text.
type TSPathRule struct {
	Pattern string
	Regex   *regexp.Regexp
	Targets []string
}

type ucnJSON struct {
	Aliases map[string]string `json:"aliases"`
	Exclude []string          `json:"exclude"`
}

type tsconfigJSON struct {
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// Load reads `.ucn.json`, `tsconfig.json`, and `go.mod` from root, tolerating
// the absence of any of them. It never fails on a missing file; malformed
// `.ucn.json`/`tsconfig.json` content is reported via err, while a go.mod
// that does not parse leaves GoModule empty.
func Load(root string) (*Config, error) {
	cfg := &Config{Root: root}

	if raw, ok := readFile(filepath.Join(root, ".ucn.json")); ok {
		var doc ucnJSON
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		for prefix, target := range doc.Aliases {
			cfg.Aliases = append(cfg.Aliases, AliasRule{Prefix: prefix, Target: target})
		}
		cfg.Exclude = doc.Exclude
	}

	if raw, ok := readFile(filepath.Join(root, "tsconfig.json")); ok {
		stripped := stripJSONComments(raw)
		var doc tsconfigJSON
		if err := json.Unmarshal(stripped, &doc); err != nil {
			return nil, err
		}
		for pattern, targets := range doc.CompilerOptions.Paths {
			cfg.TSPaths = append(cfg.TSPaths, compileTSPath(pattern, targets))
		}
	}

	if raw, ok := readFile(filepath.Join(root, "go.mod")); ok {
		f, err := modfile.Parse("go.mod", raw, nil)
		if err == nil && f.Module != nil {
			cfg.GoModule = f.Module.Mod.Path
		}
	}

	return cfg, nil
}

func readFile(path string) ([]byte, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return b, true
}

// compileTSPath turns a tsconfig `paths` pattern like `@app/*` into a regex
// that matches candidate specifiers and captures the `*` text, per spec.md
// §4.3: `.` is escaped before `*` is replaced with `(.*)`.
func compileTSPath(pattern string, targets []string) TSPathRule {
	escaped := regexp.QuoteMeta(pattern)
	escaped = strings.ReplaceAll(escaped, `\*`, `(.*)`)
	re := regexp.MustCompile("^" + escaped + "$")
	return TSPathRule{Pattern: pattern, Regex: re, Targets: targets}
}

// stripJSONComments removes `//` and `/* */` comments from tsconfig.json
// text while leaving `//`/`/*` sequences that occur inside string literals
// untouched, since tsconfig.json is JSONC, not strict JSON.
func stripJSONComments(src []byte) []byte {
	var out []byte
	inString := false
	escaped := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			out = append(out, c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
			out = append(out, c)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			out = append(out, '\n')
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i+1 < len(src) && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i++
		default:
			out = append(out, c)
		}
	}
	return out
}
