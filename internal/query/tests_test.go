package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestsFindsCallInTestFile(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"greet_test.go": "package widget\n\nimport \"testing\"\n\n" +
			"func TestGreet(t *testing.T) {\n\tGreet()\n\t// Greet should say hi\n}\n",
	})
	matches := e.Tests("Greet", TestsOptions{})
	require.Len(t, matches, 1)
	assert.Equal(t, "greet_test.go", matches[0].File)

	var types []TestMatchType
	for _, m := range matches[0].Matches {
		types = append(types, m.Type)
	}
	assert.Contains(t, types, TestMatchCall)
}

func TestTestsCallsOnlyFiltersNonCallReferences(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet_test.go": "package widget\n\nimport \"testing\"\n\n" +
			"func TestSomethingElse(t *testing.T) {\n\t// Greet is covered elsewhere\n}\n",
	})
	matches := e.Tests("Greet", TestsOptions{CallsOnly: true})
	assert.Empty(t, matches)
}

func TestTestsIgnoresNonTestFiles(t *testing.T) {
	e := writeProject(t, map[string]string{
		"greet.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
	})
	assert.Empty(t, e.Tests("Greet", TestsOptions{}))
}
