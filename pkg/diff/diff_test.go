package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	content := []byte("<button>\n<span>Save</span>\n</button>\n")
	assert.Empty(t, GenerateUnifiedDiff(content, content, "expected", "actual"))
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	expected := []byte("line1\nline2\nline3\n")
	actual := []byte("line1\nmodified\nline3\n")

	result := GenerateUnifiedDiff(expected, actual, "expected", "actual")

	want := "--- expected\n" +
		"+++ actual\n" +
		"@@ -1,3 +1,3 @@\n" +
		" line1\n" +
		"-line2\n" +
		"+modified\n" +
		" line3\n"
	assert.Equal(t, want, result)
}

func TestGenerateUnifiedDiff_SeparateHunks(t *testing.T) {
	var expected, actual []string
	for i := range 20 {
		line := "line" + string(rune('a'+i))
		expected = append(expected, line)
		switch i {
		case 1:
			actual = append(actual, "changed-b")
		case 18:
			actual = append(actual, "changed-s")
		default:
			actual = append(actual, line)
		}
	}

	result := GenerateUnifiedDiff(
		[]byte(strings.Join(expected, "\n")+"\n"),
		[]byte(strings.Join(actual, "\n")+"\n"),
		"a", "b")

	assert.Equal(t, 2, strings.Count(result, "@@ -"))
	assert.Contains(t, result, "@@ -1,5 +1,5 @@")
	assert.Contains(t, result, "@@ -16,5 +16,5 @@")
	assert.NotContains(t, result, " linek")
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	var expectedLines, actualLines []string
	for i := range 11000 {
		expectedLines = append(expectedLines, "expected line")
		if i%2 == 0 {
			actualLines = append(actualLines, "actual line")
		} else {
			actualLines = append(actualLines, "expected line")
		}
	}

	result := GenerateUnifiedDiff(
		[]byte(strings.Join(expectedLines, "\n")),
		[]byte(strings.Join(actualLines, "\n")),
		"expected", "actual")

	require.NotEmpty(t, result)
	assert.Contains(t, result, "truncated")
	assert.LessOrEqual(t, strings.Count(result, "\n"), 10001)
}

func TestGenerateUnifiedDiff_EmptyExpected(t *testing.T) {
	result := GenerateUnifiedDiff(nil, []byte("new content\n"), "expected", "actual")

	assert.Contains(t, result, "@@ -0,0 +1,1 @@")
	assert.Contains(t, result, "+new content")
}

func TestGenerateUnifiedDiff_Labels(t *testing.T) {
	result := GenerateUnifiedDiff([]byte("old"), []byte("new"), "cta.html", "cta.html (rendered)")

	assert.True(t, strings.HasPrefix(result, "--- cta.html\n+++ cta.html (rendered)\n"))
	assert.Contains(t, result, "-old\n+new\n")
}
