package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		body     string
		contains []string
	}{
		{
			name:     "heading gets an id",
			body:     "## Why it works",
			contains: []string{`<h2 id="why-it-works">Why it works</h2>`},
		},
		{
			name:     "paragraph and emphasis",
			body:     "Close **high-ticket** deals.",
			contains: []string{"<p>Close <strong>high-ticket</strong> deals.</p>"},
		},
		{
			name:     "gfm table",
			body:     "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "image",
			body:     "![team](/images/uploads/team.jpg)",
			contains: []string{`<img src="/images/uploads/team.jpg" alt="team" />`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.RenderHTML(tt.body)
			require.NoError(t, err)
			for _, want := range tt.contains {
				require.Contains(t, html, want)
			}
		})
	}
}

func TestRenderHTML_Empty(t *testing.T) {
	html, err := NewRenderer().RenderHTML("")
	require.NoError(t, err)
	require.Empty(t, html)
}

func TestRenderHTML_OmitsRawHTML(t *testing.T) {
	html, err := NewRenderer().RenderHTML("<script>alert(1)</script>\n\ntext")
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
	require.True(t, strings.Contains(html, "<p>text</p>"))
}
