package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphReturnsFileNotFoundForUnknownFile(t *testing.T) {
	e := writeProject(t, map[string]string{"a.ts": "export {};\n"})
	result, both, notFound := e.Graph("missing.ts", GraphOptions{})
	assert.Nil(t, result)
	assert.Nil(t, both)
	require.NotNil(t, notFound)
}

func TestGraphForwardFollowsImports(t *testing.T) {
	e := writeProject(t, map[string]string{
		"util.ts": "export const helper = 1;\n",
		"main.ts": "import { helper } from './util';\n\nconsole.log(helper);\n",
	})
	result, both, notFound := e.Graph("main.ts", GraphOptions{Direction: DirImports})
	require.Nil(t, notFound)
	require.Nil(t, both)
	require.NotNil(t, result)
	assert.Contains(t, result.Nodes, "util.ts")
}

func TestGraphBothDirectionsReturnsBothSides(t *testing.T) {
	e := writeProject(t, map[string]string{
		"util.ts": "export const helper = 1;\n",
		"main.ts": "import { helper } from './util';\n\nconsole.log(helper);\n",
	})
	result, both, notFound := e.Graph("util.ts", GraphOptions{Direction: DirBoth})
	require.Nil(t, notFound)
	require.Nil(t, result)
	require.NotNil(t, both)
	assert.Contains(t, both.Importers.Nodes, "main.ts")
}

func TestGraphDetectsCircularImport(t *testing.T) {
	e := writeProject(t, map[string]string{
		"a.ts": "import './b';\nexport const a = 1;\n",
		"b.ts": "import './a';\nexport const b = 1;\n",
	})
	result, _, notFound := e.Graph("a.ts", GraphOptions{Direction: DirImports, MaxDepth: 4})
	require.Nil(t, notFound)
	require.NotNil(t, result)

	var sawCircular bool
	for _, edge := range result.Edges {
		if edge.Label == "circular" {
			sawCircular = true
		}
	}
	assert.True(t, sawCircular)
}
