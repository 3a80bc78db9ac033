package html_parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello world", "hello world"},
		{"tags removed", "<p>Hello <strong>there</strong></p><p>friend</p>", "Hello there friend"},
		{"script skipped", "<p>a</p><script>var x = 1;</script><p>b</p>", "a b"},
		{"entities decoded", "<p>Tom &amp; Jerry</p>", "Tom & Jerry"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "日本", Truncate("日本語", 2))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestPlainSummary(t *testing.T) {
	long := "<p>" + strings.Repeat("a", 600) + "</p>"
	got := PlainSummary(long, 500)
	assert.Len(t, got, 500)
	assert.NotContains(t, got, "<p>")
}
