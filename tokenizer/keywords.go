package tokenizer

import (
	"maps"
	"slices"
)

// keywords is the vocabulary of the language. Several surface forms map to
// the same kind so queries can read like English sentences.
var keywords = map[string]TokenKind{
	// actions
	"get":      Get,
	"find":     Get,
	"retrieve": Get,
	"create":   CreateKeyword,
	"make":     CreateKeyword,
	"add":      CreateKeyword,
	"delete":   DeleteKeyword,
	"remove":   DeleteKeyword,
	"use":      UseKeyword,
	"enter":    UseKeyword,
	"show":     ShowKeyword,
	"list":     ShowKeyword,

	// targets
	"database":  Database,
	"databases": Database,

	// clauses
	"from":       From,
	"all":        WildcardKeyword,
	"any":        WildcardKeyword,
	"everything": WildcardKeyword,
	"where":      FilterKeyword,
	"whenever":   FilterKeyword,
	"wherever":   FilterKeyword,
	"then":       PostProcessorEntrance,
	"afterwords": PostProcessorEntrance,
	"after":      PostProcessorEntrance,
	"limit":      LimitKeyword,

	// connectives
	"and": And,
	"or":  Or,
	"not": Not,

	// comparators
	"is": Equal,
	"=":  Equal,

	// filler
	"me":  Null,
	"the": Null,
	"it":  Null,
	"in":  Null,
	"to":  Null,
}

// LookupKeyword returns the kind of a reserved word.
func LookupKeyword(word string) (TokenKind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

// Keywords returns a copy of the keyword table.
func Keywords() map[string]TokenKind {
	return maps.Clone(keywords)
}

// KeywordsByKind groups the surface forms of every keyword kind, sorted
// alphabetically.
func KeywordsByKind() map[TokenKind][]string {
	result := make(map[TokenKind][]string)
	for word, kind := range keywords {
		result[kind] = append(result[kind], word)
	}
	for kind := range result {
		slices.Sort(result[kind])
	}
	return result
}
