package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolKindIsClassLike(t *testing.T) {
	assert.True(t, KindClass.IsClassLike())
	assert.True(t, KindStruct.IsClassLike())
	assert.True(t, KindTrait.IsClassLike())
	assert.False(t, KindFunction.IsClassLike())
	assert.False(t, KindVariable.IsClassLike())
}

func TestSymbolKindIsCallable(t *testing.T) {
	assert.True(t, KindFunction.IsCallable())
	assert.True(t, KindMethod.IsCallable())
	assert.True(t, KindConstructor.IsCallable())
	assert.False(t, KindClass.IsCallable())
	assert.False(t, KindVariable.IsCallable())
}

func TestLineRangeContains(t *testing.T) {
	r := LineRange{Start: 10, End: 20}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.True(t, r.Contains(15))
	assert.False(t, r.Contains(9))
	assert.False(t, r.Contains(21))
}

func TestFileInCommentOrString(t *testing.T) {
	f := &File{
		CommentRanges: []LineRange{{Start: 1, End: 3}},
		StringRanges:  []LineRange{{Start: 10, End: 10}},
	}
	assert.True(t, f.InCommentOrString(2))
	assert.True(t, f.InCommentOrString(10))
	assert.False(t, f.InCommentOrString(5))
}

func TestMakeBindingID(t *testing.T) {
	id := MakeBindingID("src/foo.go", KindFunction, 42)
	assert.Equal(t, "src/foo.go:function:42", id)
}
