package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedefReturnsClassLikeMatchesOnly(t *testing.T) {
	e := writeProject(t, map[string]string{
		"widget.go": "package widget\n\ntype Widget struct{}\n\nfunc Widget2() {}\n",
	})
	entries := e.Typedef("Widget")
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Symbol.Kind.IsClassLike())
	assert.Contains(t, entries[0].Code, "struct")
}

func TestTypedefEmptyForUnknownName(t *testing.T) {
	e := writeProject(t, map[string]string{"a.go": "package widget\n"})
	assert.Empty(t, e.Typedef("Nonexistent"))
}
