package eaql

import "errors"

// Errors reported before a query reaches the parser
var (
	// ErrEmptyQuery is returned when the input holds no tokens at all.
	ErrEmptyQuery = errors.New("empty query")
	// ErrMissingDelimiter is returned when a query does not end with '.', '!' or ';'.
	ErrMissingDelimiter = errors.New("query must end with '.', '!' or ';'")
)
