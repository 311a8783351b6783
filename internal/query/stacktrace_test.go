package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrameLineNodeStyle(t *testing.T) {
	frame, ok := parseFrameLine("    at Foo.bar (src/widget.js:12:5)")
	require.True(t, ok)
	assert.Equal(t, "Foo.bar", frame.Function)
	assert.Equal(t, "src/widget.js", frame.FilePath)
	assert.Equal(t, 12, frame.Line)
	assert.Equal(t, 5, frame.Column)
}

func TestParseFrameLineNodeStyleNoFunction(t *testing.T) {
	frame, ok := parseFrameLine("    at src/widget.js:12:5")
	require.True(t, ok)
	assert.Equal(t, "src/widget.js", frame.FilePath)
	assert.Equal(t, 12, frame.Line)
}

func TestParseFrameLineFirefoxStyle(t *testing.T) {
	frame, ok := parseFrameLine("renderWidget@src/widget.js:20:3")
	require.True(t, ok)
	assert.Equal(t, "renderWidget", frame.Function)
	assert.Equal(t, "src/widget.js", frame.FilePath)
	assert.Equal(t, 20, frame.Line)
	assert.Equal(t, 3, frame.Column)
}

func TestParseFrameLineRejectsGarbage(t *testing.T) {
	_, ok := parseFrameLine("not a stack frame at all")
	assert.False(t, ok)
}

func TestCommonSuffixLen(t *testing.T) {
	a := []string{"a", "b", "src", "widget.js"}
	b := []string{"project", "src", "widget.js"}
	assert.Equal(t, 2, commonSuffixLen(a, b))

	assert.Equal(t, 0, commonSuffixLen([]string{"x"}, []string{"y"}))
}
