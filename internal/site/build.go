// Package site runs one content build cycle and caches its collections.
//
// A Build is the per-build Collection Cache: the first request for a kind
// reads, parses, coerces and orders that kind's documents; every later
// request in the same build returns the memoized collection. A new build
// cycle is a new Build.
package site

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/punchlinehub/sitecontent/internal/collection"
	"github.com/punchlinehub/sitecontent/internal/content"
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
	"github.com/punchlinehub/sitecontent/internal/logfields"
	"github.com/punchlinehub/sitecontent/internal/metrics"
	"github.com/punchlinehub/sitecontent/internal/store"
)

// Options configures a Build.
type Options struct {
	// Location anchors dates without a zone and the "today" of upcoming
	// events. Nil means UTC.
	Location *time.Location
	// Now is the reference clock. Nil means time.Now.
	Now      func() time.Time
	Recorder metrics.Recorder
	Logger   *slog.Logger
}

// entry is one kind's cache slot, written exactly once.
type entry[T content.Record] struct {
	once sync.Once
	coll collection.Collection[T]
	err  error
}

// Build is one build cycle over a Document Store snapshot.
type Build struct {
	id      string
	store   store.Store
	coercer content.Coercer
	loc     *time.Location
	now     func() time.Time
	rec     metrics.Recorder
	log     *slog.Logger

	services entry[content.Service]
	courses  entry[content.Course]
	events   entry[content.Event]
	posts    entry[content.BlogPost]
	cases    entry[content.CaseStudy]

	reports reportLog
}

// NewBuild starts a build cycle with an empty cache.
func NewBuild(s store.Store, opts Options) *Build {
	b := &Build{
		id:    uuid.NewString(),
		store: s,
		loc:   opts.Location,
		now:   opts.Now,
		rec:   opts.Recorder,
		log:   opts.Logger,
	}
	if b.loc == nil {
		b.loc = time.UTC
	}
	if b.now == nil {
		b.now = time.Now
	}
	if b.rec == nil {
		b.rec = metrics.NoopRecorder{}
	}
	if b.log == nil {
		b.log = slog.Default()
	}
	b.log = b.log.With(logfields.BuildID(b.id))
	b.coercer = content.Coercer{Location: b.loc}
	return b
}

// ID identifies this build cycle.
func (b *Build) ID() string { return b.id }

// Location is the zone used for dates and "today".
func (b *Build) Location() *time.Location { return b.loc }

// Now returns the build's reference time.
func (b *Build) Now() time.Time { return b.now() }

func (b *Build) Services() (collection.Collection[content.Service], error) {
	return load(b, &b.services, collection.ServicePolicy(b.coercer))
}

func (b *Build) Courses() (collection.Collection[content.Course], error) {
	return load(b, &b.courses, collection.CoursePolicy(b.coercer))
}

// Events returns every event, soonest first.
func (b *Build) Events() (collection.Collection[content.Event], error) {
	return load(b, &b.events, collection.EventPolicy(b.coercer))
}

// BlogPosts returns every post, most recent first.
func (b *Build) BlogPosts() (collection.Collection[content.BlogPost], error) {
	return load(b, &b.posts, collection.BlogPostPolicy(b.coercer))
}

func (b *Build) CaseStudies() (collection.Collection[content.CaseStudy], error) {
	return load(b, &b.cases, collection.CaseStudyPolicy(b.coercer))
}

// GetCollection returns kind's full collection as records.
func (b *Build) GetCollection(kind content.Kind) ([]content.Record, error) {
	switch kind {
	case content.KindService:
		return records[content.Service](b.Services())
	case content.KindCourse:
		return records[content.Course](b.Courses())
	case content.KindEvent:
		return records[content.Event](b.Events())
	case content.KindBlogPost:
		return records[content.BlogPost](b.BlogPosts())
	case content.KindCaseStudy:
		return records[content.CaseStudy](b.CaseStudies())
	default:
		return nil, errors.ValidationError(fmt.Sprintf("unknown collection kind %q", kind)).Build()
	}
}

// UpcomingEvents returns events dated today or later, soonest first.
func (b *Build) UpcomingEvents() ([]content.Event, error) {
	events, err := b.Events()
	if err != nil {
		return nil, err
	}
	return collection.Upcoming(events, b.now(), b.loc), nil
}

// CoursesByType filters courses by type; content.CourseAll returns all.
func (b *Build) CoursesByType(t content.CourseType) ([]content.Course, error) {
	courses, err := b.Courses()
	if err != nil {
		return nil, err
	}
	return collection.FilterByType(courses, t), nil
}

// EventsByCategory returns events in category cat, soonest first.
func (b *Build) EventsByCategory(cat content.EventCategory) ([]content.Event, error) {
	events, err := b.Events()
	if err != nil {
		return nil, err
	}
	return collection.ByCategory(events, cat), nil
}

// LoadAll builds every kind concurrently and records the build outcome.
// It returns the first store failure in content.Kinds order.
func (b *Build) LoadAll() error {
	start := time.Now()

	errs := make([]error, len(content.Kinds))
	var wg sync.WaitGroup
	for i, kind := range content.Kinds {
		wg.Add(1)
		go func(i int, kind content.Kind) {
			defer wg.Done()
			_, errs[i] = b.GetCollection(kind)
		}(i, kind)
	}
	wg.Wait()

	b.rec.ObserveBuildDuration(time.Since(start))
	for _, err := range errs {
		if err != nil {
			b.rec.IncBuildOutcome("failed")
			return err
		}
	}
	if b.Report().Degraded() {
		b.rec.IncBuildOutcome("degraded")
	} else {
		b.rec.IncBuildOutcome("success")
	}
	return nil
}

// Report returns what has been built so far.
func (b *Build) Report() Report {
	return b.reports.snapshot()
}

func records[T content.Record](c collection.Collection[T], err error) ([]content.Record, error) {
	if err != nil {
		return nil, err
	}
	all := c.All()
	out := make([]content.Record, len(all))
	for i, r := range all {
		out[i] = r
	}
	return out, nil
}

func load[T content.Record](b *Build, e *entry[T], p collection.Policy[T]) (collection.Collection[T], error) {
	e.once.Do(func() {
		e.coll, e.err = run(b, p)
	})
	return e.coll, e.err
}

// run is the read, parse, coerce and build pipeline for one kind.
func run[T content.Record](b *Build, p collection.Policy[T]) (collection.Collection[T], error) {
	kind := p.Kind
	start := time.Now()
	log := b.log.With(logfields.Kind(kind.String()))

	listing, err := b.store.List(kind)
	if err != nil {
		return collection.Collection[T]{}, storeFailure(kind, err)
	}

	var kr kindReport
	if listing.FolderMissing {
		kr.warnings = append(kr.warnings, Warning{Kind: kind, Code: WarnMissingFolder, Message: "collection folder not found"})
	}
	for _, id := range listing.Missing {
		kr.warnings = append(kr.warnings, Warning{Kind: kind, ID: id, Code: WarnMissingDoc, Message: "document could not be read"})
	}

	parsed := make([]content.ParsedDocument, len(listing.Documents))
	for i, doc := range listing.Documents {
		parsed[i] = content.Parse(doc)
		kr.documents = append(kr.documents, DocumentInfo{Kind: kind, ID: doc.ID, Fingerprint: parsed[i].Fingerprint()})
	}

	res := collection.Build(parsed, p)

	for _, s := range res.Skipped {
		sd := SkippedDocument{Kind: kind, ID: s.ID, Reason: s.Err.Error()}
		var malformed *content.MalformedRecordError
		if stderrors.As(s.Err, &malformed) {
			sd.Field = malformed.Field
			sd.Reason = malformed.Reason
		}
		kr.skipped = append(kr.skipped, sd)
		log.Warn("Skipping malformed document", logfields.DocID(s.ID), logfields.Field(sd.Field), logfields.Reason(sd.Reason))
	}
	for _, d := range res.Duplicates {
		kr.warnings = append(kr.warnings, Warning{
			Kind:    kind,
			ID:      d.ID,
			Code:    WarnDuplicateID,
			Message: fmt.Sprintf("%d documents share this id; the last one was kept", d.Occurrences),
		})
		log.Warn("Duplicate document id, keeping the last one", logfields.DocID(d.ID), logfields.Count(d.Occurrences))
	}
	for _, id := range res.Undated {
		kr.warnings = append(kr.warnings, Warning{Kind: kind, ID: id, Code: WarnUndated, Message: "date missing or unparsable; kept in place"})
		log.Debug("Record has no usable date", logfields.DocID(id))
	}

	kr.count = res.Collection.Len()
	b.reports.put(kind, kr)

	dupDropped := 0
	for _, d := range res.Duplicates {
		dupDropped += d.Occurrences - 1
	}
	k := kind.String()
	b.rec.ObserveCollectionDuration(k, time.Since(start))
	b.rec.IncDocumentResult(k, metrics.DocumentOK, res.Collection.Len())
	b.rec.IncDocumentResult(k, metrics.DocumentSkipped, len(res.Skipped))
	b.rec.IncDocumentResult(k, metrics.DocumentDuplicate, dupDropped)
	b.rec.IncDocumentResult(k, metrics.DocumentMissing, len(listing.Missing))
	b.rec.SetCollectionSize(k, res.Collection.Len())

	log.Info("Collection built",
		logfields.Count(res.Collection.Len()),
		slog.Int("skipped", len(res.Skipped)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))

	return res.Collection, nil
}

func storeFailure(kind content.Kind, err error) error {
	if errors.HasCategory(err, errors.CategoryStore) {
		return err
	}
	if !stderrors.Is(err, store.ErrStoreUnavailable) {
		err = fmt.Errorf("%w: %w", store.ErrStoreUnavailable, err)
	}
	return errors.WrapError(err, errors.CategoryStore, "failed to list documents").
		Fatal().
		WithContext("kind", kind.String()).
		Build()
}
