package parser

import (
	"slices"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/shibukawa/eaql/tokenizer"
)

var (
	identifier    = primitiveType("identifier", tokenizer.Identifier)
	listSeparator = primitiveType("separator", tokenizer.Comma, tokenizer.And)
	numberLiteral = primitiveType("number", tokenizer.NumberLiteral)
	limitKeyword  = primitiveType("limit", tokenizer.LimitKeyword)

	// nameList matches "a", "a, b", "a and b", "a, b and c", ...
	nameList = pc.Seq(
		identifier,
		pc.ZeroOrMore("more names", pc.Seq(listSeparator, identifier)),
	)

	// limitClause matches "limit <number>"
	limitClause = pc.Seq(limitKeyword, numberLiteral)
)

func primitiveType(typeName string, kinds ...tokenizer.TokenKind) pc.Parser[tokenizer.Token] {
	return func(pctx *pc.ParseContext[tokenizer.Token], tokens []pc.Token[tokenizer.Token]) (int, []pc.Token[tokenizer.Token], error) {
		if len(tokens) > 0 && slices.Contains(kinds, tokens[0].Val.Kind) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

func toParserTokens(tokens []tokenizer.Token, offset int) []pc.Token[tokenizer.Token] {
	results := make([]pc.Token[tokenizer.Token], len(tokens))
	for i, token := range tokens {
		results[i] = pc.Token[tokenizer.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  1,
				Col:   offset + i + 1,
				Index: offset + i,
			},
			Val: token,
			Raw: token.Lexeme,
		}
	}
	return results
}

// match runs a combinator at the cursor. On success the cursor moves past
// the matched tokens.
func (p *parser) match(pattern pc.Parser[tokenizer.Token]) ([]tokenizer.Token, bool) {
	pctx := pc.NewParseContext[tokenizer.Token]()
	consumed, matched, err := pattern(pctx, toParserTokens(p.tokens[p.pos:], p.pos))
	if err != nil {
		return nil, false
	}
	p.pos += consumed
	result := make([]tokenizer.Token, 0, len(matched))
	for _, token := range matched {
		result = append(result, token.Val)
	}
	return result, true
}

// parseNameList parses identifiers separated by "," or "and" in any mix.
func (p *parser) parseNameList(what string) ([]string, error) {
	matched, ok := p.match(nameList)
	if !ok {
		return nil, p.unexpected(ErrExpectedIdentifier, what)
	}

	names := make([]string, 0, (len(matched)+1)/2)
	for _, token := range matched {
		if token.Kind == tokenizer.Identifier {
			names = append(names, token.Literal)
		}
	}

	if p.is(tokenizer.Comma, tokenizer.And) {
		p.pos++
		return nil, p.unexpected(ErrInvalidList, what+" after the list separator")
	}
	return names, nil
}
