// Package formatter rewrites EAQL queries into their canonical spelling.
package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shibukawa/eaql/parser"
	"github.com/shibukawa/eaql/tokenizer"
)

// ErrUnreadableQuery is returned when a query has lexical errors.
var ErrUnreadableQuery = errors.New("query cannot be tokenized")

var canonical = map[tokenizer.TokenKind]string{
	tokenizer.Get:                   "get",
	tokenizer.From:                  "from",
	tokenizer.And:                   "and",
	tokenizer.Or:                    "or",
	tokenizer.Not:                   "not",
	tokenizer.Database:              "database",
	tokenizer.CreateKeyword:         "create",
	tokenizer.DeleteKeyword:         "delete",
	tokenizer.UseKeyword:            "use",
	tokenizer.ShowKeyword:           "show",
	tokenizer.WildcardKeyword:       "all",
	tokenizer.FilterKeyword:         "where",
	tokenizer.PostProcessorEntrance: "then",
	tokenizer.LimitKeyword:          "limit",
	tokenizer.Equal:                 "=",
	tokenizer.EndOfQuery:            ";",
}

// QueryFormatter formats single queries
type QueryFormatter struct {
	options tokenizer.Options
}

// NewQueryFormatter creates a new query formatter
func NewQueryFormatter(options tokenizer.Options) *QueryFormatter {
	return &QueryFormatter{options: options}
}

// Format rewrites every keyword to its main synonym, drops filler words and
// normalizes spacing. Only queries that parse are formatted.
func (f *QueryFormatter) Format(query string) (string, error) {
	tokens, lexErrors := tokenizer.Tokenize(strings.TrimSpace(query), f.options)
	if len(lexErrors) > 0 {
		return "", fmt.Errorf("%w: %w", ErrUnreadableQuery, errors.Join(lexErrors...))
	}

	q, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}

	plural := false
	if stmt, ok := q.Database(); ok {
		switch op := stmt.Operation.(type) {
		case *parser.ShowDatabases:
			plural = true
		case *parser.DestroyDatabase:
			plural = len(op.Names) > 1
		}
	}

	formatted := make([]tokenizer.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == tokenizer.Null {
			continue
		}
		if word, ok := canonical[token.Kind]; ok {
			token.Lexeme = word
			if token.Kind == tokenizer.Database && plural {
				token.Lexeme = "databases"
			}
		}
		formatted = append(formatted, token)
	}

	return tokenizer.Join(formatted), nil
}
