package tokenizer

import "errors"

// Sentinel errors
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
)

// TokenKind represents the kind of a token
type TokenKind int

const (
	// Unknown marks input the lexer could not classify (an unterminated string).
	Unknown TokenKind = iota
	Whitespace
	Null // filler words such as "me", "the", "to"

	// Punctuation
	OpenParen  // (
	CloseParen // )
	Comma      // ,
	EndOfQuery // . ! ;

	// Comparators
	Equal // =, is, equals
	Lt    // <
	Lte   // <=
	Gt    // >
	Gte   // >=

	// Values
	Identifier
	StringLiteral
	NumberLiteral

	// Keywords
	Get
	From
	And
	Or
	Not
	Database
	CreateKeyword
	DeleteKeyword
	UseKeyword
	ShowKeyword
	WildcardKeyword
	FilterKeyword
	PostProcessorEntrance
	LimitKeyword
	SortHelper
	SortType
)

// String returns the string representation of TokenKind
func (k TokenKind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Whitespace:
		return "Whitespace"
	case Null:
		return "Null"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case Comma:
		return "Comma"
	case EndOfQuery:
		return "EndOfQuery"
	case Equal:
		return "Equal"
	case Lt:
		return "Lt"
	case Lte:
		return "Lte"
	case Gt:
		return "Gt"
	case Gte:
		return "Gte"
	case Identifier:
		return "Identifier"
	case StringLiteral:
		return "StringLiteral"
	case NumberLiteral:
		return "NumberLiteral"
	case Get:
		return "Get"
	case From:
		return "From"
	case And:
		return "And"
	case Or:
		return "Or"
	case Not:
		return "Not"
	case Database:
		return "Database"
	case CreateKeyword:
		return "CreateKeyword"
	case DeleteKeyword:
		return "DeleteKeyword"
	case UseKeyword:
		return "UseKeyword"
	case ShowKeyword:
		return "ShowKeyword"
	case WildcardKeyword:
		return "WildcardKeyword"
	case FilterKeyword:
		return "FilterKeyword"
	case PostProcessorEntrance:
		return "PostProcessorEntrance"
	case LimitKeyword:
		return "LimitKeyword"
	case SortHelper:
		return "SortHelper"
	case SortType:
		return "SortType"
	default:
		return "Unknown"
	}
}

// IsComparator reports whether the kind is one of the comparison operators.
func (k TokenKind) IsComparator() bool {
	switch k {
	case Equal, Lt, Lte, Gt, Gte:
		return true
	}
	return false
}

// IsAction reports whether the kind starts a database statement.
func (k TokenKind) IsAction() bool {
	switch k {
	case CreateKeyword, DeleteKeyword, UseKeyword, ShowKeyword:
		return true
	}
	return false
}

// Token represents a lexical token.
//
// Literal carries the decoded value for identifiers, string literals
// (without quotes) and number literals. Lexeme is always the exact
// source slice the token was read from.
type Token struct {
	Kind    TokenKind
	Literal string
	Lexeme  string
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Lexeme + ")"
}
