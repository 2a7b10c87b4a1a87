package parser

import (
	"github.com/shopspring/decimal"

	"github.com/shibukawa/eaql/tokenizer"
)

// parseCondition parses a filter condition:
//
//	Condition  := OrExpr
//	OrExpr     := AndExpr ( "or" AndExpr )*
//	AndExpr    := Primary ( "and" Primary )*
//	Primary    := "(" OrExpr ")" | Expression | <empty>
//	Expression := Identifier ComparisonOp (StringLiteral | NumberLiteral)
//
// The condition ends in front of "then" or the end-of-query marker.
func (p *parser) parseCondition() (Condition, error) {
	condition, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	switch {
	case p.is(tokenizer.CloseParen):
		return nil, p.errorf(ErrUnmatchedParenthesis, "found ')' without a matching '('")
	case !hasComparison(condition):
		return nil, p.errorf(ErrEmptyCondition, "a filter needs at least one comparison")
	case !p.is(tokenizer.EndOfQuery, tokenizer.PostProcessorEntrance):
		return nil, p.unexpected(ErrUnexpectedToken, "'and', 'or', a post-processor or the end of the query")
	}
	return condition, nil
}

// parseOr returns nil when no operand was found at all.
func (p *parser) parseOr() (Condition, error) {
	start := p.pos
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.is(tokenizer.Or) {
		if left == nil {
			left = emptyOperand(start, false)
		}
		p.pos++
		rightStart := p.pos
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		if right == nil {
			right = emptyOperand(rightStart, false)
		}
		left = &OrCondition{conditionBase: conditionBase{Span: p.span(start)}, Left: left, Right: right}
	}
	return left, nil
}

// parseAnd returns nil when no operand was found at all.
func (p *parser) parseAnd() (Condition, error) {
	start := p.pos
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.is(tokenizer.And) {
		if left == nil {
			left = emptyOperand(start, true)
		}
		p.pos++
		rightStart := p.pos
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if right == nil {
			right = emptyOperand(rightStart, true)
		}
		left = &AndCondition{conditionBase: conditionBase{Span: p.span(start)}, Left: left, Right: right}
	}
	return left, nil
}

// hasComparison reports whether c holds at least one expression. Trees made
// only of empty operands, such as the one for "or" alone, do not.
func hasComparison(c Condition) bool {
	switch c := c.(type) {
	case *Expression:
		return true
	case *OrCondition:
		return hasComparison(c.Left) || hasComparison(c.Right)
	case *AndCondition:
		return hasComparison(c.Left) || hasComparison(c.Right)
	}
	return false
}

func emptyOperand(pos int, value bool) *BoolCondition {
	return &BoolCondition{conditionBase: conditionBase{Span: Span{Start: pos, End: pos}}, Value: value}
}

func (p *parser) parsePrimary() (Condition, error) {
	if p.atEnd() {
		return nil, p.unexpected(ErrUnexpectedEnd, "a comparison")
	}

	switch p.current().Kind {
	case tokenizer.OpenParen:
		return p.parseGroup()
	case tokenizer.Identifier:
		return p.parseExpression()
	case tokenizer.And, tokenizer.Or, tokenizer.CloseParen, tokenizer.EndOfQuery, tokenizer.PostProcessorEntrance:
		return nil, nil
	default:
		return nil, p.unexpected(ErrUnexpectedToken, "a comparison or '('")
	}
}

func (p *parser) parseGroup() (Condition, error) {
	start := p.pos
	p.pos++
	inner, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	switch {
	case p.atEnd(), p.is(tokenizer.EndOfQuery, tokenizer.PostProcessorEntrance):
		return nil, p.errorf(ErrUnclosedParentheses, "missing ')'")
	case !p.is(tokenizer.CloseParen):
		return nil, p.unexpected(ErrUnexpectedToken, "'and', 'or' or ')'")
	}
	p.pos++

	if !hasComparison(inner) {
		return nil, p.errorf(ErrEmptyCondition, "parentheses need at least one comparison")
	}
	inner.group(p.span(start))
	return inner, nil
}

func (p *parser) parseExpression() (Condition, error) {
	start := p.pos
	identifier := p.current()
	p.pos++

	if p.atEnd() {
		return nil, p.unexpected(ErrUnexpectedEnd, "a comparator")
	}
	operator := p.current()
	comparator, ok := comparatorOf(operator.Kind)
	if !ok {
		return nil, p.errorf(ErrInvalidComparator, "expected one of =, <, <=, >, >= after %q, got %q", identifier.Lexeme, operator.Lexeme)
	}
	p.pos++

	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	return &Expression{
		conditionBase: conditionBase{Span: p.span(start)},
		Identifier:    identifier.Literal,
		Comparator:    comparator,
		Value:         value,
	}, nil
}

func (p *parser) parseLiteral() (Literal, error) {
	if p.atEnd() {
		return Literal{}, p.unexpected(ErrUnexpectedEnd, "a string or number literal")
	}

	token := p.current()
	switch token.Kind {
	case tokenizer.StringLiteral:
		p.pos++
		return Literal{Kind: StringValue, Text: token.Literal, Lexeme: token.Lexeme}, nil
	case tokenizer.NumberLiteral:
		number, err := decimal.NewFromString(token.Literal)
		if err != nil {
			return Literal{}, p.errorf(ErrInvalidLiteral, "%q is not a number", token.Lexeme)
		}
		p.pos++
		return Literal{Kind: NumberValue, Text: token.Literal, Lexeme: token.Lexeme, Number: number}, nil
	default:
		return Literal{}, p.unexpected(ErrInvalidLiteral, "a string or number literal")
	}
}

func comparatorOf(kind tokenizer.TokenKind) (Comparator, bool) {
	switch kind {
	case tokenizer.Equal:
		return Equal, true
	case tokenizer.Lt:
		return Less, true
	case tokenizer.Lte:
		return LessOrEqual, true
	case tokenizer.Gt:
		return Greater, true
	case tokenizer.Gte:
		return GreaterOrEqual, true
	}
	return Equal, false
}
