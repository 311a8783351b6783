package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTocSortsBySymbolCountDescending(t *testing.T) {
	e := writeProject(t, map[string]string{
		"busy.go": "package widget\n\nfunc A() {}\n\nfunc B() {}\n",
		"quiet.go": "package widget\n\nfunc C() {}\n",
	})
	toc := e.GetToc(TocOptions{})
	require.Len(t, toc.Files, 2)
	assert.Equal(t, "busy.go", toc.Files[0].File)
	assert.Equal(t, 2, toc.Files[0].SymbolCount)
	assert.Equal(t, 0, toc.HiddenFiles)
}

func TestGetTocDetailedIncludesSymbolNames(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go": "package widget\n\nfunc Greet() {}\n",
	})
	toc := e.GetToc(TocOptions{Detailed: true})
	require.Len(t, toc.Files, 1)
	assert.Contains(t, toc.Files[0].Symbols, "Greet")
}

func TestGetTocTruncatesToTop(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go": "package widget\n\nfunc A() {}\n",
		"b.go": "package widget\n\nfunc B() {}\n",
		"c.go": "package widget\n\nfunc C() {}\n",
	})
	toc := e.GetToc(TocOptions{Top: 2})
	assert.Len(t, toc.Files, 2)
	assert.Equal(t, 1, toc.HiddenFiles)
	assert.Equal(t, 3, toc.TotalFiles)
}
