package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDFromFilename(t *testing.T) {
	tests := map[string]string{
		"sales-mastery.md":            "sales-mastery",
		"content/blog/Digital-Ads.md": "digital-ads",
		"notes.backup.md":             "notes.backup",
		"cafe\u0301.md":               "caf\u00e9",
		"README":                      "readme",
	}
	for in, want := range tests {
		require.Equal(t, want, IDFromFilename(in), "input %q", in)
	}
}

func TestParse_SplitsAndReassembles(t *testing.T) {
	raw := []byte("---\ntitle: Heritage Foods\nmetric: \"+40% revenue\"\n---\n\nThe story.\n")
	doc := Parse(Document{Kind: KindCaseStudy, ID: "heritage-foods", Raw: raw})

	require.True(t, doc.HadFrontmatter())
	require.Equal(t, "Heritage Foods", doc.Metadata["title"])
	require.Equal(t, "+40% revenue", doc.Metadata["metric"])
	require.Equal(t, "\nThe story.\n", doc.Body)
	require.Equal(t, raw, doc.Reassemble())
}

func TestParse_NoFrontmatter(t *testing.T) {
	raw := []byte("Plain body only.")
	doc := Parse(Document{Kind: KindService, ID: "plain", Raw: raw})

	require.False(t, doc.HadFrontmatter())
	require.Empty(t, doc.Metadata)
	require.Equal(t, string(raw), doc.Body)
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	a := Parse(Document{Kind: KindBlogPost, ID: "a", Raw: []byte("---\ntitle: A\n---\nbody")})
	b := Parse(Document{Kind: KindBlogPost, ID: "a", Raw: []byte("---\ntitle: B\n---\nbody")})
	a2 := Parse(Document{Kind: KindBlogPost, ID: "a", Raw: []byte("---\ntitle: A\n---\nbody")})

	require.NotEmpty(t, a.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	require.Equal(t, a.Fingerprint(), a2.Fingerprint())
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"blog": KindBlogPost, "blogPost": KindBlogPost, "Cases": KindCaseStudy, "event": KindEvent} {
		got, err := ParseKind(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseKind("podcasts")
	require.Error(t, err)
	require.Equal(t, "blog", KindBlogPost.Folder())
}
