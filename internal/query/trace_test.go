package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceNilForUnknownRoot(t *testing.T) {
	e := writeProject(t, map[string]string{"a.go": "package widget\n"})
	assert.Nil(t, e.Trace("Nonexistent", TraceOptions{}))
}

func TestTraceCalleesBuildsTree(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"main.go": "package widget\n\nfunc Main() {\n\tGreet()\n}\n",
	})
	result := e.Trace("Main", TraceOptions{Direction: TraceCallees})
	require.NotNil(t, result)
	assert.Equal(t, "Main", result.Root.Name)
	require.Len(t, result.Root.Children, 1)
	assert.Equal(t, "Greet", result.Root.Children[0].Name)
}

func TestTraceDetectsRecursionAsCycleNotInfiniteLoop(t *testing.T) {
	e := writeProject(t, map[string]string{
		"fact.go": "package widget\n\nfunc Factorial(n int) int {\n\tif n <= 1 {\n\t\treturn 1\n\t}\n\treturn n * Factorial(n-1)\n}\n",
	})
	result := e.Trace("Factorial", TraceOptions{Direction: TraceCallees, Depth: 5})
	require.NotNil(t, result)
	require.NotEmpty(t, result.Root.Children)
	assert.True(t, result.Root.Children[0].Recursive)
}

func TestTraceCallersDirectionWalksInward(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"main.go": "package widget\n\nfunc Main() {\n\tGreet()\n}\n",
	})
	result := e.Trace("Greet", TraceOptions{Direction: TraceCallers})
	require.NotNil(t, result)
	require.Len(t, result.Root.Children, 1)
	assert.Equal(t, "Main", result.Root.Children[0].Name)
}
