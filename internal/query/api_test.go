package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiReturnsOnlyExportedNonTestSymbols(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go":      "package widget\n\nfunc Exported() {}\n\nfunc unexported() {}\n",
		"a_test.go": "package widget\n\nfunc ExportedTestHelper() {}\n",
	})
	syms := e.Api(ApiOptions{})
	var names []string
	for _, s := range syms {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Exported")
	assert.NotContains(t, names, "unexported")
	assert.NotContains(t, names, "ExportedTestHelper")
}

func TestApiIncludeTestsAddsTestFileSymbols(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a_test.go": "package widget\n\nfunc ExportedTestHelper() {}\n",
	})
	syms := e.Api(ApiOptions{IncludeTests: true})
	var names []string
	for _, s := range syms {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "ExportedTestHelper")
}
