package stats

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSchemaMismatch matches every *SchemaMismatchError via errors.Is.
var ErrSchemaMismatch = errors.New("schema mismatch")

// RequestError is returned when the endpoint answers with a non-2xx status.
type RequestError struct {
	StatusCode int
	URL        string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("unexpected status code: %d %s (%s)", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// SchemaMismatchError reports a response that does not have the shape the
// extractors rely on.
type SchemaMismatchError struct {
	ResultSet string
	Column    string
	Row       int
	Reason    string
}

func (e *SchemaMismatchError) Error() string {
	msg := fmt.Sprintf("schema mismatch in result set %q", e.ResultSet)
	if e.Column != "" {
		msg += fmt.Sprintf(", column %q", e.Column)
	}
	if e.Row >= 0 {
		msg += fmt.Sprintf(", row %d", e.Row)
	}
	return msg + ": " + e.Reason
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}

func mismatch(set, column string, row int, format string, args ...any) *SchemaMismatchError {
	return &SchemaMismatchError{
		ResultSet: set,
		Column:    column,
		Row:       row,
		Reason:    fmt.Sprintf(format, args...),
	}
}
