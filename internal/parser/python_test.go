package parser

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPyFindFunctionsWithDocstring(t *testing.T) {
	src := []byte(`def greet(name):
    """Says hello."""
    return "hi " + name
`)
	funcs := For(model.LangPython).FindFunctions(src)
	require.Len(t, funcs, 1)
	assert.Equal(t, "greet", funcs[0].Name)
	assert.Equal(t, "name", funcs[0].Params)
	assert.Contains(t, funcs[0].Docstring, "Says hello")
}

func TestPyFindFunctionsMethodHasClassName(t *testing.T) {
	src := []byte(`class Widget:
    def render(self):
        return self.label
`)
	funcs := For(model.LangPython).FindFunctions(src)
	require.Len(t, funcs, 1)
	assert.Equal(t, "render", funcs[0].Name)
	assert.Equal(t, "Widget", funcs[0].ClassName)
	assert.True(t, funcs[0].IsMethod)
}

func TestPyFindCallsInCodeSameClassSelfCall(t *testing.T) {
	src := []byte(`class Widget:
    def a(self):
        self.b()

    def b(self):
        pass
`)
	calls := For(model.LangPython).FindCallsInCode(src)
	var selfCall *model.CallRecord
	for i := range calls {
		if calls[i].Name == "b" {
			selfCall = &calls[i]
		}
	}
	require.NotNil(t, selfCall)
	assert.Equal(t, "self", selfCall.Receiver)
	assert.True(t, selfCall.IsMethod)
}

func TestPyFindInstanceAttributeTypes(t *testing.T) {
	src := []byte(`class Widget:
    def __init__(self):
        self.repo = Repository()
`)
	adapter, ok := For(model.LangPython).(InstanceAttributeAdapter)
	require.True(t, ok)
	attrs := adapter.FindInstanceAttributeTypes(src)
	require.Contains(t, attrs, "Widget")
	assert.Equal(t, "Repository", attrs["Widget"]["repo"])
}
