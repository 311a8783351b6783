package parser

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoFindFunctionsWithDocComment(t *testing.T) {
	src := []byte(`package widget

// Greet returns a greeting for name.
func Greet(name string) string {
	return "hi " + name
}
`)
	funcs := For(model.LangGo).FindFunctions(src)
	require.Len(t, funcs, 1)
	assert.Equal(t, "Greet", funcs[0].Name)
	assert.Equal(t, "name string", funcs[0].Params)
	assert.Equal(t, "string", funcs[0].ReturnType)
	assert.Contains(t, funcs[0].Docstring, "Greet returns a greeting")
	assert.True(t, funcs[0].IsExported)
}

func TestGoFindFunctionsMethodReceiver(t *testing.T) {
	src := []byte(`package widget

type Client struct{}

func (c *Client) Send(msg string) error {
	return nil
}
`)
	funcs := For(model.LangGo).FindFunctions(src)
	require.Len(t, funcs, 1)
	assert.Equal(t, "Send", funcs[0].Name)
	assert.True(t, funcs[0].IsMethod)
	assert.Equal(t, "Client", funcs[0].ClassName)
	assert.Equal(t, "c *Client", funcs[0].Receiver)
}

func TestGoFindCallsInCodeSkipsBuiltins(t *testing.T) {
	src := []byte(`package widget

func process(items []int) {
	out := make([]int, 0, len(items))
	helper(out)
}
`)
	calls := For(model.LangGo).FindCallsInCode(src)
	var names []string
	for _, c := range calls {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "helper")
	assert.NotContains(t, names, "make")
	assert.NotContains(t, names, "len")
}

func TestGoUnexportedNameNotExported(t *testing.T) {
	src := []byte(`package widget

func helper() {}
`)
	funcs := For(model.LangGo).FindFunctions(src)
	require.Len(t, funcs, 1)
	assert.False(t, funcs[0].IsExported)
}
