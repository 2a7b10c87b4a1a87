package parser

import (
	"fmt"
	"slices"

	"github.com/shibukawa/eaql/tokenizer"
)

// Parse builds the syntax tree of a single query. Filler tokens are dropped
// first, so spans index the remaining tokens.
//
// Every error returned is a *ParseError wrapping one of the sentinel errors
// of this package.
func Parse(tokens []tokenizer.Token) (*Query, error) {
	p := newParser(tokens)
	return p.parseQuery()
}

// JoinLexemes renders tokens back into query text.
func JoinLexemes(tokens []tokenizer.Token) string {
	return tokenizer.Join(tokens)
}

type parser struct {
	tokens []tokenizer.Token
	pos    int
}

func newParser(tokens []tokenizer.Token) *parser {
	filtered := make([]tokenizer.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind != tokenizer.Null {
			filtered = append(filtered, token)
		}
	}
	return &parser{tokens: filtered}
}

func (p *parser) parseQuery() (*Query, error) {
	if p.atEnd() {
		return nil, p.errorf(ErrUnexpectedEnd, "no tokens to parse")
	}

	var (
		stmt Statement
		err  error
	)
	switch kind := p.current().Kind; {
	case kind == tokenizer.Get:
		stmt, err = p.parseGet()
	case kind.IsAction():
		stmt, err = p.parseDatabase()
	default:
		return nil, p.unexpected(ErrUnknownAction, "an action such as 'get', 'create', 'delete', 'use' or 'show'")
	}
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(ErrExpectedEndOfQuery, "'.', '!' or ';'", tokenizer.EndOfQuery); err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.errorf(ErrTrailingTokens, "only one query is allowed, found %q", JoinLexemes(p.tokens[p.pos:]))
	}

	return &Query{Span: p.span(0), Statement: stmt}, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// current returns the token under the cursor. Callers check atEnd first.
func (p *parser) current() tokenizer.Token {
	return p.tokens[p.pos]
}

func (p *parser) is(kinds ...tokenizer.TokenKind) bool {
	return !p.atEnd() && slices.Contains(kinds, p.tokens[p.pos].Kind)
}

// expect consumes the current token when it has one of the given kinds.
func (p *parser) expect(sentinel error, what string, kinds ...tokenizer.TokenKind) (tokenizer.Token, error) {
	if !p.is(kinds...) {
		return tokenizer.Token{}, p.unexpected(sentinel, what)
	}
	token := p.current()
	p.pos++
	return token, nil
}

// unexpected reports the current token as not matching what was expected.
func (p *parser) unexpected(sentinel error, what string) error {
	if p.atEnd() {
		return p.errorf(ErrUnexpectedEnd, "expected %s; possible unfinished query?", what)
	}
	token := p.current()
	if token.Kind == tokenizer.Unknown {
		return p.errorf(ErrLexical, "could not read %q where %s was expected", token.Lexeme, what)
	}
	return p.errorf(sentinel, "expected %s, got %q", what, token.Lexeme)
}

func (p *parser) errorf(sentinel error, format string, args ...any) *ParseError {
	return &ParseError{
		Err:        sentinel,
		Message:    fmt.Sprintf(format, args...),
		ValidUntil: JoinLexemes(p.tokens[:min(p.pos, len(p.tokens))]),
		Position:   p.pos,
	}
}

// span covers the tokens from start up to the cursor.
func (p *parser) span(start int) Span {
	return Span{Start: start, End: p.pos, Source: JoinLexemes(p.tokens[start:p.pos])}
}
