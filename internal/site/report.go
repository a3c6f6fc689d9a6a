package site

import (
	"slices"
	"sync"

	"github.com/punchlinehub/sitecontent/internal/content"
)

// Warning codes for soft conditions. None of them stop the build.
const (
	WarnDuplicateID   = "duplicate_id"
	WarnUndated       = "undated"
	WarnMissingDoc    = "missing_document"
	WarnMissingFolder = "missing_folder"
)

// SkippedDocument is a document left out of its collection because its
// record was malformed.
type SkippedDocument struct {
	Kind   content.Kind `json:"kind"`
	ID     string       `json:"id"`
	Field  string       `json:"field,omitempty"`
	Reason string       `json:"reason"`
}

// Warning is a soft condition found while building.
type Warning struct {
	Kind    content.Kind `json:"kind"`
	ID      string       `json:"id,omitempty"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
}

// DocumentInfo describes one document that was read.
type DocumentInfo struct {
	Kind        content.Kind `json:"kind"`
	ID          string       `json:"id"`
	Fingerprint string       `json:"fingerprint"`
}

// Report summarizes what the build did with every document.
type Report struct {
	Skipped   []SkippedDocument    `json:"skipped"`
	Warnings  []Warning            `json:"warnings"`
	Documents []DocumentInfo       `json:"documents"`
	Counts    map[content.Kind]int `json:"counts"`
}

// Degraded reports whether any document was skipped or any warning raised.
func (r Report) Degraded() bool {
	return len(r.Skipped) > 0 || len(r.Warnings) > 0
}

type kindReport struct {
	skipped   []SkippedDocument
	warnings  []Warning
	documents []DocumentInfo
	count     int
}

// reportLog collects per-kind reports. Kinds finish in any order; Report
// assembles them in content.Kinds order.
type reportLog struct {
	mu    sync.Mutex
	kinds map[content.Kind]kindReport
}

func (l *reportLog) put(kind content.Kind, kr kindReport) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.kinds == nil {
		l.kinds = map[content.Kind]kindReport{}
	}
	l.kinds[kind] = kr
}

func (l *reportLog) snapshot() Report {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := Report{
		Skipped:   []SkippedDocument{},
		Warnings:  []Warning{},
		Documents: []DocumentInfo{},
		Counts:    map[content.Kind]int{},
	}
	for _, kind := range content.Kinds {
		kr, ok := l.kinds[kind]
		if !ok {
			continue
		}
		r.Skipped = append(r.Skipped, slices.Clone(kr.skipped)...)
		r.Warnings = append(r.Warnings, slices.Clone(kr.warnings)...)
		r.Documents = append(r.Documents, slices.Clone(kr.documents)...)
		r.Counts[kind] = kr.count
	}
	return r
}
