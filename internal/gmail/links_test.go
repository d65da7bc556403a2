package gmail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "plain article links",
			body: `Check out https://example.com/post-1 and https://blog.example.org/deep-dive`,
			want: []string{"https://example.com/post-1", "https://blog.example.org/deep-dive"},
		},
		{
			name: "html attributes",
			body: `<a href="https://example.com/article">read</a>`,
			want: []string{"https://example.com/article"},
		},
		{
			name: "unsubscribe links dropped",
			body: `https://example.com/article https://news.example.com/unsubscribe?u=123`,
			want: []string{"https://example.com/article"},
		},
		{
			name: "list-manage links dropped",
			body: `https://example.us1.list-manage.com/track/click?u=abc https://example.com/keep`,
			want: []string{"https://example.com/keep"},
		},
		{
			name: "tracking pixels dropped",
			body: `<img src="https://cdn.example.com/pixel.gif"> <img src="https://t.example.com/beacon?id=1"> https://example.com/real`,
			want: []string{"https://example.com/real"},
		},
		{
			name: "duplicates collapse to first occurrence",
			body: `https://example.com/a https://example.com/b https://example.com/a`,
			want: []string{"https://example.com/a", "https://example.com/b"},
		},
		{
			name: "noise match is case-sensitive",
			body: `https://example.com/UNSUBSCRIBE https://example.com/fine`,
			want: []string{"https://example.com/UNSUBSCRIBE", "https://example.com/fine"},
		},
		{
			name: "http scheme accepted",
			body: `http://legacy.example.com/post`,
			want: []string{"http://legacy.example.com/post"},
		},
		{
			name: "no links",
			body: `just text, no urls here`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLinks(tt.body))
		})
	}
}
