package parser

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSFindFunctionsRoundTrip(t *testing.T) {
	src := []byte(`/**
 * Greets someone.
 */
function greet(name) {
  return 'hi ' + name;
}
`)
	funcs := For(model.LangJavaScript).FindFunctions(src)
	require.Len(t, funcs, 1)
	assert.Equal(t, "greet", funcs[0].Name)
	assert.Equal(t, "name", funcs[0].Params)
	assert.Contains(t, funcs[0].Docstring, "Greets someone")
}

func TestJSFindCallsInCodeBasic(t *testing.T) {
	src := []byte(`function main() {
  helper(1, 2);
}
`)
	calls := For(model.LangJavaScript).FindCallsInCode(src)
	require.Len(t, calls, 1)
	assert.Equal(t, "helper", calls[0].Name)
	assert.Equal(t, 2, calls[0].ArgCount)
}

func TestJSFindCallsInCodeSkipsBuiltins(t *testing.T) {
	src := []byte(`function main() {
  console.log('hi');
  JSON.stringify({});
}
`)
	calls := For(model.LangJavaScript).FindCallsInCode(src)
	assert.Empty(t, calls)
}

func TestJSCallbackPositionDetectsInlineArrow(t *testing.T) {
	src := []byte(`function main() {
  fetchData().then(res => res.json());
}
`)
	calls := For(model.LangJavaScript).FindCallsInCode(src)
	var then *model.CallRecord
	for i := range calls {
		if calls[i].Name == "then" {
			then = &calls[i]
		}
	}
	require.NotNil(t, then)
	assert.True(t, then.IsFunctionReference)
	assert.True(t, then.IsPotentialCallback)
}

func TestJSCallbackPositionDetectsNamedHandler(t *testing.T) {
	src := []byte(`function onClick() {}
function main() {
  el.addEventListener('click', onClick);
}
`)
	calls := For(model.LangJavaScript).FindCallsInCode(src)
	var ael *model.CallRecord
	for i := range calls {
		if calls[i].Name == "addEventListener" {
			ael = &calls[i]
		}
	}
	require.NotNil(t, ael)
	assert.True(t, ael.IsPotentialCallback)
}

func TestJSCallbackPositionIgnoresNonCallbackArg(t *testing.T) {
	src := []byte(`function main() {
  items.map(1);
}
`)
	calls := For(model.LangJavaScript).FindCallsInCode(src)
	require.Len(t, calls, 1)
	assert.False(t, calls[0].IsPotentialCallback)
}

func TestJSFindCallsInCodeJSXAttributeCallback(t *testing.T) {
	src := []byte(`function App() {
  return <Child onClick={handleClick} />;
}
`)
	calls := For(model.LangJavaScript).FindCallsInCode(src)
	var onClick *model.CallRecord
	for i := range calls {
		if calls[i].Name == "handleClick" {
			onClick = &calls[i]
		}
	}
	require.NotNil(t, onClick)
	assert.True(t, onClick.IsPotentialCallback)
}

func TestJSFindClassesWithHeritage(t *testing.T) {
	src := []byte(`class Widget extends Base {
  render() {}
}
`)
	classes := For(model.LangJavaScript).FindClasses(src)
	require.Len(t, classes, 1)
	assert.Equal(t, "Widget", classes[0].Name)
	assert.Equal(t, "Base", classes[0].Extends)
}
