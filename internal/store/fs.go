package store

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/punchlinehub/sitecontent/internal/content"
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
	"github.com/punchlinehub/sitecontent/internal/logfields"
)

const documentExt = ".md"

// Layout locates one kind inside the content root.
type Layout struct {
	// Folder overrides the kind's default folder name.
	Folder string
	// Files fixes the enumeration order by document id. Empty means every
	// *.md file in the folder, sorted by name.
	Files []string
}

// FSStore reads documents from <root>/<folder>/<id>.md.
type FSStore struct {
	root        string
	layouts     map[content.Kind]Layout
	concurrency int
}

// NewFSStore creates a filesystem store. concurrency bounds parallel file
// reads within one kind; values below 1 mean sequential reads.
func NewFSStore(root string, layouts map[content.Kind]Layout, concurrency int) *FSStore {
	if concurrency < 1 {
		concurrency = 1
	}
	return &FSStore{root: root, layouts: layouts, concurrency: concurrency}
}

// Root returns the content root directory.
func (s *FSStore) Root() string { return s.root }

// Dir returns the folder holding kind's documents.
func (s *FSStore) Dir(kind content.Kind) string {
	folder := kind.Folder()
	if l, ok := s.layouts[kind]; ok && l.Folder != "" {
		folder = l.Folder
	}
	return filepath.Join(s.root, folder)
}

// List implements Store.
func (s *FSStore) List(kind content.Kind) (Listing, error) {
	info, err := os.Stat(s.root)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = fs.ErrInvalid
		}
		return Listing{}, errors.WrapError(ErrStoreUnavailable, errors.CategoryStore, "content root is not a readable directory").
			Fatal().
			WithContext("path", s.root).
			WithContext("cause", err.Error()).
			Build()
	}

	dir := s.Dir(kind)
	if _, err := os.Stat(dir); err != nil {
		slog.Warn("Collection folder not found", logfields.Kind(kind.String()), logfields.Path(dir))
		return Listing{FolderMissing: true}, nil
	}

	names, err := s.enumerate(kind, dir)
	if err != nil {
		return Listing{}, errors.WrapError(ErrStoreUnavailable, errors.CategoryStore, "failed to list collection folder").
			Fatal().
			WithContext("path", dir).
			WithContext("cause", err.Error()).
			Build()
	}

	return s.readAll(kind, dir, names), nil
}

func (s *FSStore) enumerate(kind content.Kind, dir string) ([]string, error) {
	if l, ok := s.layouts[kind]; ok && len(l.Files) > 0 {
		names := make([]string, len(l.Files))
		for i, id := range l.Files {
			names[i] = strings.TrimSuffix(id, documentExt) + documentExt
		}
		return names, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), documentExt) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// readAll reads files concurrently; results keep enumeration order.
func (s *FSStore) readAll(kind content.Kind, dir string, names []string) Listing {
	type slot struct {
		doc content.Document
		err error
	}
	slots := make([]slot, len(names))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, name string) {
			defer wg.Done()
			defer func() { <-sem }()

			path := filepath.Join(dir, name)
			// #nosec G304 -- path is built from the configured content root.
			raw, err := os.ReadFile(path)
			slots[i] = slot{
				doc: content.Document{Kind: kind, ID: content.IDFromFilename(name), Raw: raw},
				err: err,
			}
		}(i, name)
	}
	wg.Wait()

	var out Listing
	for i, sl := range slots {
		if sl.err != nil {
			slog.Warn("Document could not be read",
				logfields.Kind(kind.String()),
				logfields.Path(filepath.Join(dir, names[i])),
				logfields.Error(sl.err))
			out.Missing = append(out.Missing, sl.doc.ID)
			continue
		}
		out.Documents = append(out.Documents, sl.doc)
	}
	return out
}
