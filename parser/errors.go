package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery is the root of every parse error.
var ErrInvalidQuery = errors.New("invalid query")

var (
	ErrUnknownAction        = fmt.Errorf("%w: could not determine requested action", ErrInvalidQuery)
	ErrInvalidTarget        = fmt.Errorf("%w: received an action keyword, but an invalid target keyword", ErrInvalidQuery)
	ErrUnexpectedToken      = fmt.Errorf("%w: unexpected token", ErrInvalidQuery)
	ErrExpectedIdentifier   = fmt.Errorf("%w: expected identifier", ErrInvalidQuery)
	ErrInvalidList          = fmt.Errorf("%w: invalid list", ErrInvalidQuery)
	ErrInvalidComparator    = fmt.Errorf("%w: invalid comparator", ErrInvalidQuery)
	ErrInvalidLiteral       = fmt.Errorf("%w: invalid literal", ErrInvalidQuery)
	ErrUnclosedParentheses  = fmt.Errorf("%w: found end of conditional, but there are unclosed parentheses", ErrInvalidQuery)
	ErrUnmatchedParenthesis = fmt.Errorf("%w: found closing parenthesis without a matching opening one", ErrInvalidQuery)
	ErrEmptyCondition       = fmt.Errorf("%w: empty condition", ErrInvalidQuery)
	ErrExpectedEndOfQuery   = fmt.Errorf("%w: query does not end here", ErrInvalidQuery)
	ErrTrailingTokens       = fmt.Errorf("%w: tokens after end of query", ErrInvalidQuery)
	ErrUnexpectedEnd        = fmt.Errorf("%w: unexpected end of input", ErrInvalidQuery)
	ErrLimitNotInteger      = fmt.Errorf("%w: limit post-processor expects 32-bit integer", ErrInvalidQuery)
	ErrDuplicateClause      = fmt.Errorf("%w: duplicate clause", ErrInvalidQuery)
	ErrLexical              = fmt.Errorf("%w: unrecognized input", ErrInvalidQuery)
)

// ParseError reports where a query stopped being valid.
type ParseError struct {
	Err        error
	Message    string
	ValidUntil string // source text accepted before the failure
	Position   int    // index of the offending token
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.ValidUntil != "" {
		msg += fmt.Sprintf(" (query valid until after %q)", e.ValidUntil)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
