package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboutCombinesFindUsagesCallersAndCallees(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"main.go": "package widget\n\nfunc Main() {\n\tGreet()\n}\n",
	})
	result := e.About("Greet", AboutOptions{})
	require.Len(t, result.Find, 1)
	require.NotEmpty(t, result.Usages)
	require.Len(t, result.Callers, 1)
	assert.Equal(t, "main.go", result.Callers[0].File)
}

func TestAboutUnknownSymbolStillReturnsFindAndUsages(t *testing.T) {
	e := writeProject(t, map[string]string{"a.go": "package widget\n"})
	result := e.About("Nonexistent", AboutOptions{})
	assert.Empty(t, result.Find)
	assert.Empty(t, result.Callers)
}
