package history

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInputData means the host supplied no result set. Callers treat
	// it as "nothing to render" and do not report it.
	ErrMissingInputData = errors.New("history: no result data supplied")
	// ErrNoSuchSeries means no series group carries the requested name.
	ErrNoSuchSeries = errors.New("history: no such series")
	// ErrAmbiguousSeries means more than one series group carries the requested name.
	ErrAmbiguousSeries = errors.New("history: ambiguous series name")
	// ErrInvalidRecord is matched by every *InvalidRecordError.
	ErrInvalidRecord = errors.New("history: invalid record")
)

// InvalidRecordError reports a malformed record inside a series group
type InvalidRecordError struct {
	Series string
	Index  int
	Field  string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("history: invalid record %d in series %q: bad %s", e.Index, e.Series, e.Field)
}

func (e *InvalidRecordError) Unwrap() error {
	return ErrInvalidRecord
}
