package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripJSONCommentsLineAndBlock(t *testing.T) {
	src := []byte(`{
  // a line comment
  "a": 1, /* a block
  comment */ "b": "keeps // this" /* trailing */
}`)
	stripped := stripJSONComments(src)
	assert.Contains(t, string(stripped), `"a": 1`)
	assert.Contains(t, string(stripped), `"b": "keeps // this"`)
	assert.NotContains(t, string(stripped), "a line comment")
	assert.NotContains(t, string(stripped), "a block")
}

func TestCompileTSPathWildcard(t *testing.T) {
	rule := compileTSPath("@app/*", []string{"src/*"})
	m := rule.Regex.FindStringSubmatch("@app/widgets/button")
	require.NotNil(t, m)
	assert.Equal(t, "widgets/button", m[1])
}

func TestLoadMergesAllThreeSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ucn.json"),
		[]byte(`{"aliases": {"@lib": "src/lib"}, "exclude": ["dist/**"]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsconfig.json"),
		[]byte(`{
  // comment
  "compilerOptions": { "paths": { "@app/*": ["src/*"] } }
}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"),
		[]byte("module example.com/widget\n\ngo 1.22\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, cfg.Aliases, 1)
	assert.Equal(t, "@lib", cfg.Aliases[0].Prefix)
	assert.Equal(t, []string{"dist/**"}, cfg.Exclude)
	require.Len(t, cfg.TSPaths, 1)
	assert.Equal(t, "example.com/widget", cfg.GoModule)
}

func TestLoadToleratesMissingFiles(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Aliases)
	assert.Empty(t, cfg.GoModule)
}
