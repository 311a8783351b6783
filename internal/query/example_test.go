package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleNotFoundForUnknownSymbol(t *testing.T) {
	e := writeProject(t, map[string]string{"a.go": "package widget\n"})
	result := e.Example("Nonexistent")
	assert.False(t, result.Found)
}

func TestExamplePrefersTypedAssignmentOverBareStatement(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"bare.go": "package widget\n\nfunc Bare() {\n\tGreet()\n}\n",
		"typed.go": "package widget\n\nfunc Typed() {\n\tx := 0\n\tGreet()\n\t_ = x\n}\n",
	})
	result := e.Example("Greet")
	require.True(t, result.Found)
	assert.Equal(t, 2, result.TotalCalls)
	assert.Equal(t, "typed.go", result.File)
}
