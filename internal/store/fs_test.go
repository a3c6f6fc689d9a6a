package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/punchlinehub/sitecontent/internal/content"
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestFSStore_ListsMarkdownSortedByName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "courses", "sales-mastery.md"), "---\ntitle: Sales\n---\n")
	writeFile(t, filepath.Join(root, "courses", "Growth-Marketing.md"), "---\ntitle: Growth\n---\n")
	writeFile(t, filepath.Join(root, "courses", ".draft.md"), "hidden")
	writeFile(t, filepath.Join(root, "courses", "notes.txt"), "ignored")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "courses", "nested.md"), 0o755))

	s := NewFSStore(root, nil, 4)
	listing, err := s.List(content.KindCourse)
	require.NoError(t, err)

	require.Len(t, listing.Documents, 2)
	require.Equal(t, "growth-marketing", listing.Documents[0].ID)
	require.Equal(t, "sales-mastery", listing.Documents[1].ID)
	require.Equal(t, content.KindCourse, listing.Documents[0].Kind)
	require.Equal(t, "---\ntitle: Growth\n---\n", string(listing.Documents[0].Raw))
}

func TestFSStore_ExplicitFilesFixOrderAndReportMissing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "journal", "a.md"), "A")
	writeFile(t, filepath.Join(root, "journal", "b.md"), "B")

	s := NewFSStore(root, map[content.Kind]Layout{
		content.KindBlogPost: {Folder: "journal", Files: []string{"b", "gone", "a.md"}},
	}, 1)
	listing, err := s.List(content.KindBlogPost)
	require.NoError(t, err)

	require.Len(t, listing.Documents, 2)
	require.Equal(t, "b", listing.Documents[0].ID)
	require.Equal(t, "a", listing.Documents[1].ID)
	require.Equal(t, []string{"gone"}, listing.Missing)
}

func TestFSStore_MissingFolderIsEmpty(t *testing.T) {
	s := NewFSStore(t.TempDir(), nil, 2)

	listing, err := s.List(content.KindEvent)
	require.NoError(t, err)
	require.True(t, listing.FolderMissing)
	require.Empty(t, listing.Documents)
}

func TestFSStore_MissingRootIsUnavailable(t *testing.T) {
	s := NewFSStore(filepath.Join(t.TempDir(), "nope"), nil, 2)

	_, err := s.List(content.KindService)
	require.ErrorIs(t, err, ErrStoreUnavailable)
	require.True(t, errors.HasCategory(err, errors.CategoryStore))
}

func TestMemoryStore_CountsCalls(t *testing.T) {
	m := NewMemoryStore().Add(content.KindService, "training", "x")

	listing, err := m.List(content.KindService)
	require.NoError(t, err)
	require.Len(t, listing.Documents, 1)
	require.Equal(t, 1, m.Calls(content.KindService))
	require.Zero(t, m.Calls(content.KindEvent))
}
