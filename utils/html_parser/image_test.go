package html_parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstImageURL(t *testing.T) {
	tests := []struct {
		name    string
		content string
		base    string
		want    string
	}{
		{
			name:    "first absolute image",
			content: `<p>x</p><img src="https://cdn.example.com/a.jpg"><img src="https://cdn.example.com/b.jpg">`,
			want:    "https://cdn.example.com/a.jpg",
		},
		{
			name:    "skips data uri",
			content: `<img src="data:image/png;base64,AAAA"><img src="http://example.com/b.png">`,
			want:    "http://example.com/b.png",
		},
		{
			name:    "resolves relative against base",
			content: `<img src="/img/c.png">`,
			base:    "https://blog.example.com/posts/1",
			want:    "https://blog.example.com/img/c.png",
		},
		{
			name:    "relative without base is rejected",
			content: `<img src="/img/c.png">`,
			want:    "",
		},
		{
			name:    "no image",
			content: `<p>text only</p>`,
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstImageURL(tt.content, tt.base))
		})
	}
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://example.com/x.png"))
	assert.False(t, IsHTTPURL("ftp://example.com/x.png"))
	assert.False(t, IsHTTPURL("javascript:alert(1)"))
	assert.False(t, IsHTTPURL(""))
}
