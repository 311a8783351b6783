package parser

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTSFindFunctionsKeepsTypeAnnotations(t *testing.T) {
	src := []byte(`/** Formats a count. */
function f(x: number): string {
  return String(x);
}
`)
	funcs := For(model.LangTypeScript).FindFunctions(src)
	require.Len(t, funcs, 1)
	assert.Equal(t, "f", funcs[0].Name)
	assert.Equal(t, "x: number", funcs[0].Params)
	assert.Equal(t, "string", funcs[0].ReturnType)
	assert.Contains(t, funcs[0].Docstring, "Formats a count")
}

func TestTSFindClassesWithExtendsAndImplements(t *testing.T) {
	src := []byte(`class Widget extends Base implements Drawable {
  render(): void {}
}
`)
	classes := For(model.LangTypeScript).FindClasses(src)
	require.Len(t, classes, 1)
	assert.Equal(t, "Base", classes[0].Extends)
	assert.Equal(t, "Drawable", classes[0].Implements)
}

func TestTSXSharesJSCallExtraction(t *testing.T) {
	src := []byte(`function App(): JSX.Element {
  return <Child onClick={handleClick} />;
}
`)
	calls := For(model.LangTSX).FindCallsInCode(src)
	var found bool
	for _, c := range calls {
		if c.Name == "handleClick" {
			found = true
			assert.True(t, c.IsPotentialCallback)
		}
	}
	assert.True(t, found, "expected handleClick callback to be reported")
}

func TestTSAdapterLanguageTags(t *testing.T) {
	assert.Equal(t, model.LangTypeScript, For(model.LangTypeScript).Language())
	assert.Equal(t, model.LangTSX, For(model.LangTSX).Language())
}
