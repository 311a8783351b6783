package query

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsEntryPointGo(t *testing.T) {
	assert.True(t, isEntryPoint(&model.Symbol{Name: "main"}, model.LangGo))
	assert.True(t, isEntryPoint(&model.Symbol{Name: "init"}, model.LangGo))
	assert.False(t, isEntryPoint(&model.Symbol{Name: "helper"}, model.LangGo))
}

func TestIsEntryPointPython(t *testing.T) {
	assert.True(t, isEntryPoint(&model.Symbol{Name: "__init__"}, model.LangPython))
	assert.True(t, isEntryPoint(&model.Symbol{Name: "test_foo"}, model.LangPython))
	assert.True(t, isEntryPoint(&model.Symbol{Name: "pytest_configure"}, model.LangPython))
	assert.False(t, isEntryPoint(&model.Symbol{Name: "compute"}, model.LangPython))
}

func TestIsEntryPointJava(t *testing.T) {
	pubStatic := &model.Symbol{Name: "main", Modifiers: []string{"public", "static"}}
	assert.True(t, isEntryPoint(pubStatic, model.LangJava))

	notStatic := &model.Symbol{Name: "main", Modifiers: []string{"public"}}
	assert.False(t, isEntryPoint(notStatic, model.LangJava))

	overridden := &model.Symbol{Name: "toString", Decorators: []string{"Override"}}
	assert.True(t, isEntryPoint(overridden, model.LangJava))
}

func TestIsEntryPointRust(t *testing.T) {
	assert.True(t, isEntryPoint(&model.Symbol{Name: "main"}, model.LangRust))
	assert.True(t, isEntryPoint(&model.Symbol{Name: "check", Decorators: []string{"test"}}, model.LangRust))
	assert.False(t, isEntryPoint(&model.Symbol{Name: "helper"}, model.LangRust))
}

func TestIsDecoratedPython(t *testing.T) {
	assert.True(t, isDecorated(&model.Symbol{Decorators: []string{"app.route"}}, model.LangPython))
	assert.False(t, isDecorated(&model.Symbol{Decorators: []string{"staticmethod"}}, model.LangPython))
}

func TestIsDecoratedRustTraitImpl(t *testing.T) {
	s := &model.Symbol{IsMethod: true, ClassName: "Display for Shape"}
	assert.True(t, isDecorated(s, model.LangRust))

	plain := &model.Symbol{IsMethod: true, ClassName: "Shape"}
	assert.False(t, isDecorated(plain, model.LangRust))
}

func TestContains(t *testing.T) {
	assert.True(t, contains([]string{"a", "b"}, "b"))
	assert.False(t, contains([]string{"a", "b"}, "c"))
	assert.False(t, contains(nil, "a"))
}
