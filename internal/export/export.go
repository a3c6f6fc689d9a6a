// Package export writes a finished build's collections to JSON for the site.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/punchlinehub/sitecontent/internal/content"
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
	"github.com/punchlinehub/sitecontent/internal/logfields"
	"github.com/punchlinehub/sitecontent/internal/markdown"
	"github.com/punchlinehub/sitecontent/internal/site"
)

// Output file names.
const (
	ServicesFile       = "services.json"
	CoursesFile        = "courses.json"
	EventsFile         = "events.json"
	UpcomingEventsFile = "events-upcoming.json"
	BlogFile           = "blog.json"
	CasesFile          = "cases.json"
	ManifestFile       = "manifest.json"
)

// Manifest describes one exported build.
type Manifest struct {
	BuildID     string                 `json:"buildId"`
	GeneratedAt time.Time              `json:"generatedAt"`
	Timezone    string                 `json:"timezone"`
	Files       []string               `json:"files"`
	Counts      map[content.Kind]int   `json:"counts"`
	Documents   []site.DocumentInfo    `json:"documents"`
	Skipped     []site.SkippedDocument `json:"skipped"`
	Warnings    []site.Warning         `json:"warnings"`
}

// Options configures an Exporter.
type Options struct {
	// Clean removes previously exported JSON files before writing.
	Clean  bool
	Logger *slog.Logger
}

// Exporter writes collections into one output directory.
type Exporter struct {
	dir      string
	clean    bool
	renderer *markdown.Renderer
	log      *slog.Logger
}

func New(dir string, opts Options) *Exporter {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{dir: dir, clean: opts.Clean, renderer: markdown.NewRenderer(), log: log}
}

// Dir is the output directory.
func (e *Exporter) Dir() string { return e.dir }

// Export builds every collection of b and writes them with the manifest.
// The manifest is written last, so its presence marks a complete export.
func (e *Exporter) Export(b *site.Build) (*Manifest, error) {
	if err := b.LoadAll(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.dir, 0o750); err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", e.dir).
			Build()
	}
	if e.clean {
		if err := e.removeStale(); err != nil {
			return nil, err
		}
	}

	services, _ := b.Services()
	courses, _ := b.Courses()
	events, _ := b.Events()
	posts, _ := b.BlogPosts()
	cases, _ := b.CaseStudies()
	upcoming, err := b.UpcomingEvents()
	if err != nil {
		return nil, err
	}

	files := []struct {
		name string
		recs func() ([]json.RawMessage, error)
	}{
		{ServicesFile, func() ([]json.RawMessage, error) { return withHTML(e.renderer, services.All()) }},
		{CoursesFile, func() ([]json.RawMessage, error) { return withHTML(e.renderer, courses.All()) }},
		{EventsFile, func() ([]json.RawMessage, error) { return withHTML(e.renderer, events.All()) }},
		{UpcomingEventsFile, func() ([]json.RawMessage, error) { return withHTML(e.renderer, upcoming) }},
		{BlogFile, func() ([]json.RawMessage, error) { return withHTML(e.renderer, posts.All()) }},
		{CasesFile, func() ([]json.RawMessage, error) { return withHTML(e.renderer, cases.All()) }},
	}

	written := make([]string, 0, len(files)+1)
	for _, f := range files {
		recs, err := f.recs()
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryBuild, "failed to render records").
				WithContext("file", f.name).
				Build()
		}
		if err := e.writeJSON(f.name, recs); err != nil {
			return nil, err
		}
		e.log.Debug("Wrote collection", logfields.Path(f.name), logfields.Count(len(recs)))
		written = append(written, f.name)
	}

	report := b.Report()
	m := &Manifest{
		BuildID:     b.ID(),
		GeneratedAt: b.Now(),
		Timezone:    b.Location().String(),
		Files:       written,
		Counts:      report.Counts,
		Documents:   report.Documents,
		Skipped:     report.Skipped,
		Warnings:    report.Warnings,
	}
	if err := e.writeJSON(ManifestFile, m); err != nil {
		return nil, err
	}

	e.log.Info("Export complete",
		logfields.Path(e.dir),
		logfields.Count(len(report.Documents)),
		slog.Int("skipped", len(report.Skipped)),
		slog.Int("warnings", len(report.Warnings)))
	return m, nil
}

// withHTML encodes each record with an added bodyHtml field.
func withHTML[T content.Record](r *markdown.Renderer, recs []T) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(recs))
	for _, rec := range recs {
		html, err := r.RenderHTML(rec.RecordBody())
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", rec.RecordKind(), rec.RecordID(), err)
		}
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		if fields["bodyHtml"], err = json.Marshal(html); err != nil {
			return nil, err
		}
		enc, err := json.Marshal(fields)
		if err != nil {
			return nil, err
		}
		out = append(out, enc)
	}
	return out, nil
}

// writeJSON writes v to name through a temp file and rename.
func (e *Exporter) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode "+name).Build()
	}
	path := filepath.Join(e.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write temp file").
			WithContext("path", tmp).
			Build()
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to replace output file").
			WithContext("path", path).
			Build()
	}
	return nil
}

// removeStale deletes JSON and leftover temp files from the output
// directory. Other files are left alone.
func (e *Exporter) removeStale() error {
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to read output directory").
			WithContext("path", e.dir).
			Build()
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.tmp")) {
			continue
		}
		if err := os.Remove(filepath.Join(e.dir, name)); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to remove stale output").
				WithContext("path", name).
				Build()
		}
	}
	return nil
}
