package collection

import (
	"slices"
	"time"

	"github.com/punchlinehub/sitecontent/internal/content"
)

// Order selects a kind's ordering rule.
type Order int

const (
	// OrderEnumeration keeps document store order.
	OrderEnumeration Order = iota
	// OrderDateAscending puts the soonest date first.
	OrderDateAscending
	// OrderDateDescending puts the most recent date first.
	OrderDateDescending
)

// Policy holds everything that differs between kinds: how a parsed document
// becomes a record and how records are ordered.
type Policy[T content.Record] struct {
	Kind   content.Kind
	Decode func(content.ParsedDocument) (T, error)
	Order  Order
	// Date is required for the date orders.
	Date func(T) (time.Time, bool)
}

// Skipped is a document left out of the collection.
type Skipped struct {
	ID  string
	Err error
}

// Duplicate records an id seen more than once. Occurrences counts every
// document that resolved to ID; only the last one is kept.
type Duplicate struct {
	ID          string
	Occurrences int
}

// Result is the outcome of building one kind.
type Result[T content.Record] struct {
	Collection Collection[T]
	Skipped    []Skipped
	Duplicates []Duplicate
	// Undated lists records whose ordering date was missing or unparsable.
	Undated []string
}

// Build decodes docs in enumeration order, drops the ones that fail, applies
// last-write-wins on duplicate ids and orders the survivors.
func Build[T content.Record](docs []content.ParsedDocument, p Policy[T]) Result[T] {
	var res Result[T]

	records := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, err := p.Decode(doc)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{ID: doc.ID, Err: err})
			continue
		}
		records = append(records, rec)
	}

	records, res.Duplicates = Dedupe(records)

	if p.Order != OrderEnumeration && p.Date != nil {
		for _, rec := range records {
			if _, ok := p.Date(rec); !ok {
				res.Undated = append(res.Undated, rec.RecordID())
			}
		}
		SortByDate(records, p.Date, p.Order == OrderDateDescending)
	}

	res.Collection = New(p.Kind, records)
	return res
}

// Dedupe keeps the last record for each id, at the position of that last
// occurrence.
func Dedupe[T content.Record](records []T) ([]T, []Duplicate) {
	last := make(map[string]int, len(records))
	counts := make(map[string]int, len(records))
	for i, rec := range records {
		last[rec.RecordID()] = i
		counts[rec.RecordID()]++
	}
	if len(last) == len(records) {
		return records, nil
	}

	out := make([]T, 0, len(last))
	var dups []Duplicate
	for i, rec := range records {
		id := rec.RecordID()
		if last[id] != i {
			continue
		}
		out = append(out, rec)
		if counts[id] > 1 {
			dups = append(dups, Duplicate{ID: id, Occurrences: counts[id]})
		}
	}
	return out, dups
}

// SortByDate orders dated records in place by date. Records without a date
// compare equal to everything, so they keep their slots and the dated
// records are stably sorted through the remaining slots.
func SortByDate[T content.Record](records []T, date func(T) (time.Time, bool), descending bool) {
	slots := make([]int, 0, len(records))
	dated := make([]T, 0, len(records))
	for i, rec := range records {
		if _, ok := date(rec); ok {
			slots = append(slots, i)
			dated = append(dated, rec)
		}
	}

	slices.SortStableFunc(dated, func(a, b T) int {
		ta, _ := date(a)
		tb, _ := date(b)
		if descending {
			return tb.Compare(ta)
		}
		return ta.Compare(tb)
	})

	for i, slot := range slots {
		records[slot] = dated[i]
	}
}
