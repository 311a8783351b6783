package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmartNilForUnknownSymbol(t *testing.T) {
	e := writeProject(t, map[string]string{"a.go": "package widget\n"})
	assert.Nil(t, e.Smart("Nonexistent"))
}

func TestSmartReturnsTargetSourceAndDependencySource(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"main.go": "package widget\n\nfunc Main() {\n\tGreet()\n}\n",
	})
	result := e.Smart("Main")
	require.NotNil(t, result)
	assert.Equal(t, "Main", result.Target.Name)
	assert.Contains(t, result.Target.Code, "func Main")

	require.Len(t, result.Dependencies, 1)
	assert.Equal(t, "Greet", result.Dependencies[0].Name)
	assert.Contains(t, result.Dependencies[0].Code, "return \"hi\"")
}

func TestSmartDedupesRepeatedCallee(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"main.go": "package widget\n\nfunc Main() {\n\tGreet()\n\tGreet()\n}\n",
	})
	result := e.Smart("Main")
	require.NotNil(t, result)
	assert.Len(t, result.Dependencies, 1)
}
