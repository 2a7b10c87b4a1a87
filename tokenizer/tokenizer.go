package tokenizer

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// TokenIterator yields tokens together with the lexing error, if any, that
// produced them.
type TokenIterator iter.Seq2[Token, error]

// Options are options for the tokenizer
type Options struct {
	// CaseInsensitive folds words before the keyword lookup so "GET" and
	// "Get" resolve like "get".
	CaseInsensitive bool
}

// Tokenizer scans an EAQL query. Whitespace is skipped; every other token is
// yielded in source order.
type Tokenizer struct {
	input   string
	options Options
}

// New creates a new Tokenizer
func New(input string, options ...Options) *Tokenizer {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}
	return &Tokenizer{input: input, options: opts}
}

// Tokens returns an iterator of tokens
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tk := newTokenizer(t.input, t.options)
		for tk.position < len(tk.input) {
			token, err := tk.nextToken()
			if token.Kind == Whitespace {
				continue
			}
			if !yield(token, err) {
				return
			}
		}
	}
}

// Tokenize converts a query into tokens. It never fails: fragments it cannot
// classify become Unknown tokens and the matching diagnostics are returned in
// the second result.
func Tokenize(input string, options ...Options) ([]Token, []error) {
	tokens := make([]Token, 0, 16)
	var errs []error
	for token, err := range New(input, options...).Tokens() {
		tokens = append(tokens, token)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return tokens, errs
}

// Join renders tokens back into query text. Tokens are separated by single
// spaces, except after "(" and before ")", "," and end-of-query markers.
func Join(tokens []Token) string {
	var b strings.Builder
	for i, token := range tokens {
		if i > 0 && tokens[i-1].Kind != OpenParen {
			switch token.Kind {
			case CloseParen, Comma, EndOfQuery:
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString(token.Lexeme)
	}
	return b.String()
}

// Internal tokenizer implementation
type tokenizer struct {
	input    string
	position int
	folder   *cases.Caser
}

func newTokenizer(input string, options Options) *tokenizer {
	t := &tokenizer{input: input}
	if options.CaseInsensitive {
		folder := cases.Fold()
		t.folder = &folder
	}
	return t
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	ch := t.input[t.position]

	switch ch {
	case '(':
		return t.single(OpenParen), nil
	case ')':
		return t.single(CloseParen), nil
	case ',':
		return t.single(Comma), nil
	case '.', '!', ';':
		return t.single(EndOfQuery), nil
	case '=':
		return t.single(Equal), nil
	case '<':
		if t.peekChar() == '=' {
			return t.operator(Lte), nil
		}
		return t.single(Lt), nil
	case '>':
		if t.peekChar() == '=' {
			return t.operator(Gte), nil
		}
		return t.single(Gt), nil
	case '"':
		return t.readString()
	}

	if isWhitespace(ch) {
		return t.readWhitespace(), nil
	}
	if isDigit(ch) || (ch == '-' && isDigit(t.peekChar())) {
		return t.readNumber(), nil
	}
	return t.readWord(), nil
}

// peekChar looks ahead at the next character
func (t *tokenizer) peekChar() byte {
	if t.position+1 >= len(t.input) {
		return 0
	}
	return t.input[t.position+1]
}

func (t *tokenizer) single(kind TokenKind) Token {
	lexeme := t.input[t.position : t.position+1]
	t.position++
	return Token{Kind: kind, Lexeme: lexeme}
}

func (t *tokenizer) operator(kind TokenKind) Token {
	lexeme := t.input[t.position : t.position+2]
	t.position += 2
	return Token{Kind: kind, Lexeme: lexeme}
}

// readWhitespace reads whitespace characters
func (t *tokenizer) readWhitespace() Token {
	start := t.position
	for t.position < len(t.input) && isWhitespace(t.input[t.position]) {
		t.position++
	}
	return Token{Kind: Whitespace, Lexeme: t.input[start:t.position]}
}

// readString reads string literals. The literal drops the surrounding quotes.
func (t *tokenizer) readString() (Token, error) {
	start := t.position
	closing := strings.IndexByte(t.input[start+1:], '"')
	if closing < 0 {
		fragment := t.input[start:]
		t.position = len(t.input)
		return Token{Kind: Unknown, Lexeme: fragment},
			fmt.Errorf("%w: %s (offset %d)", ErrUnterminatedString, fragment, start)
	}
	end := start + closing + 2
	lexeme := t.input[start:end]
	t.position = end
	return Token{Kind: StringLiteral, Literal: lexeme[1 : len(lexeme)-1], Lexeme: lexeme}, nil
}

// readNumber reads numeric literals. The scan keeps extending while the text
// is still a valid float, so a second decimal point ends the literal. A dot
// that is not followed by a digit is left for the end-of-query marker.
func (t *tokenizer) readNumber() Token {
	start := t.position
	end := start + 1
	if t.input[start] == '-' {
		end++
	}
	for end < len(t.input) {
		ch := t.input[end]
		if ch == '.' {
			if end+1 >= len(t.input) || !isDigit(t.input[end+1]) {
				break
			}
			if _, err := strconv.ParseFloat(t.input[start:end+2], 64); err != nil {
				break
			}
		} else if !isDigit(ch) {
			break
		}
		end++
	}
	lexeme := t.input[start:end]
	t.position = end
	return Token{Kind: NumberLiteral, Literal: lexeme, Lexeme: lexeme}
}

// readWord reads words (identifiers and keywords)
func (t *tokenizer) readWord() Token {
	start := t.position
	for t.position < len(t.input) && !isStopChar(t.input[t.position]) {
		t.position++
	}
	word := t.input[start:t.position]
	if kind, ok := t.lookup(word); ok {
		return Token{Kind: kind, Lexeme: word}
	}
	return Token{Kind: Identifier, Literal: word, Lexeme: word}
}

func (t *tokenizer) lookup(word string) (TokenKind, bool) {
	if kind, ok := LookupKeyword(word); ok {
		return kind, true
	}
	if t.folder != nil {
		return LookupKeyword(t.folder.String(word))
	}
	return Unknown, false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isStopChar(ch byte) bool {
	switch ch {
	case '(', ')', ',', '.', '!', ';', '<', '>', '=', '"':
		return true
	}
	return isWhitespace(ch)
}
