package uout

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestIsTTYFalseForBuffer(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTTY(&buf))
}

func TestGetTerminalWidthDefaultsForNonFile(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 80, GetTerminalWidth(&buf))
}

func TestTruncateLabelLeavesShortLabelAlone(t *testing.T) {
	var buf bytes.Buffer
	got := TruncateLabel(&buf, "internal/query/find.go")
	assert.Equal(t, "internal/query/find.go", got)
}

func TestTruncateLabelKeepsPathTail(t *testing.T) {
	var buf bytes.Buffer
	long := "internal/parser/adapters/deeply/nested/package/tree/javascript_adapter_impl.go"
	got := TruncateLabel(&buf, long)

	assert.True(t, strings.HasPrefix(got, "…"))
	assert.True(t, strings.HasSuffix(got, "javascript_adapter_impl.go"))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 80-progressChrome)
}
