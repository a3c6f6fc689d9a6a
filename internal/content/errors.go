package content

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord matches any *MalformedRecordError with errors.Is.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports a document whose metadata cannot be coerced
// into its kind's record. The document is skipped; the rest of the
// collection still builds.
type MalformedRecordError struct {
	Kind   Kind
	ID     string
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed %s record %q: %s", e.Kind, e.ID, e.Reason)
	}
	return fmt.Sprintf("malformed %s record %q: field %q: %s", e.Kind, e.ID, e.Field, e.Reason)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
