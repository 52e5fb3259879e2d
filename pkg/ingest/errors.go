package ingest

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for tabular formats other than CSV and XLSX.
var ErrUnsupportedFormat = errors.New("unsupported import format")

// InputError reports a rejected manual entry. It never reaches the selectors.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s %q %s", e.Field, e.Value, e.Reason)
}

// ImportError reports a tabular source that cannot be turned into records.
// Row is 1-based and counts the header; it is 0 for source level failures.
type ImportError struct {
	Row    int
	Column string
	Err    error
}

func (e *ImportError) Error() string {
	switch {
	case e.Row == 0 && e.Column != "":
		return fmt.Sprintf("import: column %q: %v", e.Column, e.Err)
	case e.Row == 0:
		return fmt.Sprintf("import: %v", e.Err)
	case e.Column != "":
		return fmt.Sprintf("import: row %d column %q: %v", e.Row, e.Column, e.Err)
	default:
		return fmt.Sprintf("import: row %d: %v", e.Row, e.Err)
	}
}

func (e *ImportError) Unwrap() error { return e.Err }

// ErrMissingColumn is wrapped by ImportError when a header lacks a column.
var ErrMissingColumn = errors.New("missing column")
