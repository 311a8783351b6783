package query

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSplitParamsTopLevelCommasOnly(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitParams("a, b, c"))
	assert.Equal(t, []string{"a Map[string, int]", "b"}, splitParams("a Map[string, int], b"))
	assert.Nil(t, splitParams(""))
	assert.Equal(t, []string{"x"}, splitParams("x"))
}

func TestExpectedArgRangeBasic(t *testing.T) {
	min, max := expectedArgRange(splitParams("a, b, c"), model.LangGo)
	assert.Equal(t, 3, min)
	assert.Equal(t, 3, max)
}

func TestExpectedArgRangeOptionalParams(t *testing.T) {
	min, max := expectedArgRange(splitParams("a, b=1, c=2"), model.LangPython)
	assert.Equal(t, 1, min)
	assert.Equal(t, 3, max)
}

func TestExpectedArgRangePythonSelfExcluded(t *testing.T) {
	min, max := expectedArgRange(splitParams("self, a, b"), model.LangPython)
	assert.Equal(t, 2, min)
	assert.Equal(t, 2, max)
}

func TestExpectedArgRangeVariadic(t *testing.T) {
	min, max := expectedArgRange(splitParams("a, ...rest"), model.LangGo)
	assert.Equal(t, 1, min)
	assert.Equal(t, 1<<30, max)
}

func TestExpectedArgRangeEmpty(t *testing.T) {
	min, max := expectedArgRange(splitParams(""), model.LangGo)
	assert.Equal(t, 0, min)
	assert.Equal(t, 0, max)
}
