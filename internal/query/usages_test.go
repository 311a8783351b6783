package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsagesFindsDefinitionAndCallSites(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"b.go": "package widget\n\nfunc Other() {\n\tGreet()\n}\n",
	})
	hits := e.Usages("Greet", UsagesOptions{})
	require.GreaterOrEqual(t, len(hits), 2)

	var sawDef, sawCall bool
	for _, h := range hits {
		if h.IsDefinition {
			sawDef = true
		} else {
			sawCall = true
		}
	}
	assert.True(t, sawDef)
	assert.True(t, sawCall)
}

func TestUsagesExcludesTestFilesByDefault(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go":      "package widget\n\nfunc Greet() string { return \"hi\" }\n",
		"a_test.go": "package widget\n\nimport \"testing\"\n\nfunc TestGreet(t *testing.T) {\n\tGreet()\n}\n",
	})
	hits := e.Usages("Greet", UsagesOptions{IncludeTests: false})
	for _, h := range hits {
		assert.NotEqual(t, "a_test.go", h.File)
	}

	withTests := e.Usages("Greet", UsagesOptions{IncludeTests: true})
	found := false
	for _, h := range withTests {
		if h.File == "a_test.go" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestUsagesAttachesContextLines(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.go": "package widget\n\nfunc Greet() string { return \"hi\" }\n\nfunc Call() {\n\tGreet()\n}\n",
	})
	hits := e.Usages("Greet", UsagesOptions{Context: 1})
	require.NotEmpty(t, hits)
	for _, h := range hits {
		if !h.IsDefinition {
			assert.NotEmpty(t, h.Before)
		}
	}
}
