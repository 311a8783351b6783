package query

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindReturnsEveryDefinitionAcrossFiles(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"b.go": "package widget\n\nfunc Other() {\n\tGreet()\n}\n",
	})
	results := e.Find("Greet", FindOptions{})
	require.Len(t, results, 1)
	assert.Equal(t, "a.go", results[0].Symbol.RelativePath)
	assert.Equal(t, 1, results[0].UsageCount)
}

func TestFindFiltersByFileSubstring(t *testing.T) {
	e := writeProject(t, map[string]string{
		"pkg/a.go": "package pkg\n\nfunc Widget() {}\n",
		"pkg/b.go": "package pkg\n\nfunc Widget2() {}\n",
	})
	results := e.Find("Widget", FindOptions{File: "a.go"})
	require.Len(t, results, 1)
	assert.Equal(t, "pkg/a.go", results[0].Symbol.RelativePath)
}

func TestFindFiltersByType(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go": "package widget\n\ntype Widget struct{}\n\nfunc Widget2() {}\n",
	})
	results := e.Find("Widget", FindOptions{Type: model.KindStruct})
	require.Len(t, results, 1)
	assert.True(t, results[0].Symbol.Kind.IsClassLike())
}

func TestFindExcludeFilterDropsMatchingFiles(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go":            "package widget\n\nfunc Widget() {}\n",
		"vendor/dep/b.go": "package dep\n\nfunc Widget() {}\n",
	})
	results := e.Find("Widget", FindOptions{Exclude: []string{"vendor"}})
	for _, r := range results {
		assert.NotContains(t, r.Symbol.RelativePath, "vendor")
	}
}
