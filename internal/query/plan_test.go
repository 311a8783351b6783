package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanNotFoundForUnknownSymbol(t *testing.T) {
	e := writeProject(t, map[string]string{"a.go": "package widget\n"})
	result := e.Plan("Nonexistent", PlanOptions{})
	assert.False(t, result.Found)
}

func TestPlanAnnotatesEachCallSiteWithRename(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"a.go":     "package widget\n\nfunc A() {\n\tGreet()\n}\n",
	})
	result := e.Plan("Greet", PlanOptions{RenameTo: "Hello"})
	require.True(t, result.Found)
	require.Len(t, result.Sites, 1)
	assert.Contains(t, result.Sites[0].Rewrite, "Hello")
	assert.Equal(t, 1, result.TotalCallSites)
}

func TestPlanWithNoRewriteOptionsReturnsOriginalContent(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"a.go":     "package widget\n\nfunc A() {\n\tGreet()\n}\n",
	})
	result := e.Plan("Greet", PlanOptions{})
	require.True(t, result.Found)
	require.Len(t, result.Sites, 1)
	assert.Equal(t, result.Sites[0].Content, result.Sites[0].Rewrite)
}
