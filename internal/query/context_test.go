package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextNilForUnknownSymbol(t *testing.T) {
	e := writeProject(t, map[string]string{"a.go": "package widget\n"})
	assert.Nil(t, e.Context("Nonexistent", ContextOptions{}))
}

func TestContextReportsCallersAndCallees(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"main.go": "package widget\n\nfunc Main() {\n\tGreet()\n}\n",
	})
	result := e.Context("Main", ContextOptions{})
	require.NotNil(t, result)
	require.Len(t, result.Callees, 1)
	assert.Equal(t, "Greet", result.Callees[0].Callee.Name)
}

func TestContextClassLikeReturnsMethodsOnly(t *testing.T) {
	e := writeProject(t, map[string]string{
		"widget.go": "package widget\n\ntype Widget struct{}\n\nfunc (w *Widget) Run() {}\n",
	})
	result := e.Context("Widget", ContextOptions{})
	require.NotNil(t, result)
	assert.Contains(t, result.Methods, "Run")
	assert.Empty(t, result.Callers)
	assert.Empty(t, result.Callees)
}
