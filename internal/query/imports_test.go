package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportsReturnsFileNotFoundForUnknownFile(t *testing.T) {
	e := writeProject(t, map[string]string{"a.go": "package widget\n"})
	records, notFound := e.Imports("missing.go")
	assert.Nil(t, records)
	require.NotNil(t, notFound)
	assert.Equal(t, "missing.go", notFound.FilePath)
}

func TestImportsAndExportersAreInverseViews(t *testing.T) {
	e := writeProject(t, map[string]string{
		"util.ts": "export const helper = 1;\n",
		"main.ts": "import { helper } from './util';\n\nconsole.log(helper);\n",
	})

	records, notFound := e.Imports("main.ts")
	require.Nil(t, notFound)
	require.Len(t, records, 1)
	assert.Equal(t, "./util", records[0].Module)

	importers, notFound2 := e.Exporters("util.ts")
	require.Nil(t, notFound2)
	require.Len(t, importers, 1)
	assert.Equal(t, "main.ts", importers[0].File)
}

func TestFileExportsOnlyReturnsExportedSymbols(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go": "package widget\n\nfunc Exported() {}\n\nfunc unexported() {}\n",
	})
	syms, notFound := e.FileExports("a.go")
	require.Nil(t, notFound)
	var names []string
	for _, s := range syms {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Exported")
	assert.NotContains(t, names, "unexported")
}
