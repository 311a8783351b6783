package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mleoca/ucn/internal/index"
	"github.com/stretchr/testify/require"
)

// writeProject materializes files under a fresh temp dir and builds an
// Engine over it, for tests that need a real parsed+resolved index rather
// than hand-built fixtures.
func writeProject(t *testing.T, files map[string]string) *Engine {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	idx, err := index.Build(dir)
	require.NoError(t, err)
	return New(idx)
}
