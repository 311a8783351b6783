package parser

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavaFindFunctionsWithJavadoc(t *testing.T) {
	src := []byte(`public class Widget {
    /**
     * Renders the widget.
     */
    public String render() {
        return "widget";
    }
}
`)
	funcs := For(model.LangJava).FindFunctions(src)
	require.Len(t, funcs, 1)
	assert.Equal(t, "render", funcs[0].Name)
	assert.Equal(t, "Widget", funcs[0].ClassName)
	assert.Contains(t, funcs[0].Docstring, "Renders the widget")
	assert.True(t, funcs[0].IsExported)
}

func TestJavaMainNeverCountedAsExportedOnly(t *testing.T) {
	src := []byte(`public class App {
    public static void main(String[] args) {
        System.out.println("hi");
    }
}
`)
	funcs := For(model.LangJava).FindFunctions(src)
	require.Len(t, funcs, 1)
	assert.Contains(t, funcs[0].Modifiers, "entry-point")
}

func TestJavaFindCallsInCodeMethodInvocation(t *testing.T) {
	src := []byte(`public class App {
    void run() {
        widget.render();
    }
}
`)
	calls := For(model.LangJava).FindCallsInCode(src)
	require.Len(t, calls, 1)
	assert.Equal(t, "render", calls[0].Name)
	assert.Equal(t, "widget", calls[0].Receiver)
	assert.True(t, calls[0].IsMethod)
}

func TestJavaConstructorDeduped(t *testing.T) {
	src := []byte(`public class Widget {
    public Widget() {}
}
`)
	funcs := For(model.LangJava).FindFunctions(src)
	var ctors int
	for _, f := range funcs {
		if f.Kind == model.KindConstructor {
			ctors++
		}
	}
	assert.Equal(t, 1, ctors)
}
