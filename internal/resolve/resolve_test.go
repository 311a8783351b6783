package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mleoca/ucn/internal/config"
	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveJSRelativeImport grounds spec.md §8 property #3 (import
// resolver fidelity): a relative import must resolve to the file it
// actually names.
func TestResolveJSRelativeImport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.ts"), []byte("export const x = 1;\n"), 0o644))
	fromFile := filepath.Join(dir, "main.ts")

	got := Resolve(model.ImportRecord{Module: "./util"}, fromFile, model.LangTypeScript, dir, nil)
	assert.Equal(t, filepath.Join(dir, "util.ts"), got)
}

func TestResolveJSIndexFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "widgets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widgets", "index.ts"), []byte("export {};\n"), 0o644))
	fromFile := filepath.Join(dir, "main.ts")

	got := Resolve(model.ImportRecord{Module: "./widgets"}, fromFile, model.LangTypeScript, dir, nil)
	assert.Equal(t, filepath.Join(dir, "widgets", "index.ts"), got)
}

func TestResolveJSAliasViaTSPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "lib", "widget.ts"), []byte("export {};\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsconfig.json"),
		[]byte(`{"compilerOptions": {"paths": {"@app/*": ["src/lib/*"]}}}`), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	fromFile := filepath.Join(dir, "main.ts")
	got := Resolve(model.ImportRecord{Module: "@app/widget"}, fromFile, model.LangTypeScript, dir, cfg)
	assert.Equal(t, filepath.Join(dir, "src", "lib", "widget.ts"), got)
}

func TestResolveJSExternalModuleUnresolved(t *testing.T) {
	dir := t.TempDir()
	fromFile := filepath.Join(dir, "main.ts")
	got := Resolve(model.ImportRecord{Module: "react"}, fromFile, model.LangTypeScript, dir, nil)
	assert.Empty(t, got)
}

func TestResolveGoModulePackage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "internal", "widget"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/proj\n\ngo 1.22\n"), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	got := Resolve(model.ImportRecord{Module: "example.com/proj/internal/widget"}, "", model.LangGo, dir, cfg)
	assert.Equal(t, filepath.Join(dir, "internal", "widget"), got)
}

func TestResolveGoExternalModuleUnresolved(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/proj\n\ngo 1.22\n"), 0o644))
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	got := Resolve(model.ImportRecord{Module: "github.com/spf13/cobra"}, "", model.LangGo, dir, cfg)
	assert.Empty(t, got)
}

func TestResolveDynamicImportAlwaysUnresolved(t *testing.T) {
	got := Resolve(model.ImportRecord{Module: "whatever", IsDynamic: true}, "", model.LangJavaScript, t.TempDir(), nil)
	assert.Empty(t, got)
}
