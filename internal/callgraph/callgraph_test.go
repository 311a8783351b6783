package callgraph

import (
	"testing"

	"github.com/mleoca/ucn/internal/index"
	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex() *index.Index {
	return &index.Index{}
}

func TestEnclosingFunctionInnermostWins(t *testing.T) {
	idx := newTestIndex()
	idx.Symbols = []*model.Symbol{
		{Name: "Outer", Kind: model.KindClass, RelativePath: "a.go", StartLine: 1, EndLine: 20},
		{Name: "Inner", Kind: model.KindMethod, RelativePath: "a.go", StartLine: 5, EndLine: 10},
	}

	r := New(idx)
	sym := r.EnclosingFunction("a.go", 7)
	require.NotNil(t, sym)
	assert.Equal(t, "Inner", sym.Name)
}

func TestEnclosingFunctionNoMatch(t *testing.T) {
	idx := newTestIndex()
	idx.Symbols = []*model.Symbol{
		{Name: "f", Kind: model.KindFunction, RelativePath: "a.go", StartLine: 1, EndLine: 5},
	}
	r := New(idx)
	assert.Nil(t, r.EnclosingFunction("a.go", 100))
}

func TestEnclosingFunctionIsCached(t *testing.T) {
	idx := newTestIndex()
	idx.Symbols = []*model.Symbol{
		{Name: "f", Kind: model.KindFunction, RelativePath: "a.go", StartLine: 1, EndLine: 5},
	}
	r := New(idx)

	first := r.EnclosingFunction("a.go", 3)
	require.NotNil(t, first)

	// Mutate the index after the first lookup; a cached second lookup must
	// still return the original answer rather than re-scanning.
	idx.Symbols = nil
	second := r.EnclosingFunction("a.go", 3)
	assert.Same(t, first, second)
}

func TestDefaultIncludeMethods(t *testing.T) {
	assert.True(t, DefaultIncludeMethods(model.LangGo, nil))
	assert.True(t, DefaultIncludeMethods(model.LangPython, nil))

	explicitFalse := false
	assert.False(t, DefaultIncludeMethods(model.LangGo, &explicitFalse))
}
