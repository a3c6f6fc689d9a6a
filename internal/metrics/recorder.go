package metrics

import "time"

// DocumentResult enumerates per-document outcomes for counters.
type DocumentResult string

const (
	DocumentOK        DocumentResult = "ok"
	DocumentSkipped   DocumentResult = "skipped"
	DocumentDuplicate DocumentResult = "duplicate"
	DocumentMissing   DocumentResult = "missing"
)

// Recorder defines observability hooks for a content build. Implementations
// must be safe for concurrent use across kinds.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome string) // success|degraded|failed
	ObserveCollectionDuration(kind string, d time.Duration)
	IncDocumentResult(kind string, result DocumentResult, n int)
	SetCollectionSize(kind string, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration)              {}
func (NoopRecorder) IncBuildOutcome(string)                          {}
func (NoopRecorder) ObserveCollectionDuration(string, time.Duration) {}
func (NoopRecorder) IncDocumentResult(string, DocumentResult, int)   {}
func (NoopRecorder) SetCollectionSize(string, int)                   {}
