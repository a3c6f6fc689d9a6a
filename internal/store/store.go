// Package store enumerates raw content documents per collection kind.
package store

import (
	"errors"

	"github.com/punchlinehub/sitecontent/internal/content"
)

// ErrStoreUnavailable indicates the store cannot be listed at all. No
// collection can be produced and the build must stop.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Listing is one kind's snapshot of the store.
type Listing struct {
	Documents []content.Document
	// Missing holds ids that were expected but could not be read.
	Missing []string
	// FolderMissing is set when the kind has no folder; Documents is empty.
	FolderMissing bool
}

// Store lists the documents of one kind in a stable enumeration order.
// Implementations must be safe for concurrent calls with different kinds.
type Store interface {
	List(kind content.Kind) (Listing, error)
}
