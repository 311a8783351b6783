package discover

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsTestFileMatchesPerLanguageConventions(t *testing.T) {
	cases := []struct {
		path string
		lang model.Language
	}{
		{"src/__tests__/foo.js", model.LangJavaScript},
		{"foo.test.ts", model.LangTypeScript},
		{"foo.spec.tsx", model.LangTSX},
		{"tests/test_foo.py", model.LangPython},
		{"tests/foo_test.py", model.LangPython},
		{"pkg/widget_test.go", model.LangGo},
		{"tests/foo.rs", model.LangRust},
		{"src/test/java/FooTest.java", model.LangJava},
		{"src/test/java/FooTests.java", model.LangJava},
	}
	for _, c := range cases {
		assert.True(t, IsTestFile(c.path, c.lang), "expected %s to be a test file", c.path)
	}
}

func TestIsTestFileRejectsNonTestPaths(t *testing.T) {
	assert.False(t, IsTestFile("src/widget.go", model.LangGo))
	assert.False(t, IsTestFile("pkg/main.py", model.LangPython))
	assert.False(t, IsTestFile("src/Widget.java", model.LangJava))
}

func TestIsTestFileNormalizesBackslashes(t *testing.T) {
	assert.True(t, IsTestFile(`pkg\widget_test.go`, model.LangGo))
}
