package parser

import (
	"strconv"

	"github.com/shibukawa/eaql/tokenizer"
)

// parsePostProcessor parses the clause chain after "then". "and" only
// separates clauses.
func (p *parser) parsePostProcessor() (*PostProcessor, error) {
	start := p.pos
	p.pos++
	postProcessor := &PostProcessor{}

	for !p.is(tokenizer.EndOfQuery) {
		if p.atEnd() {
			return nil, p.unexpected(ErrUnexpectedEnd, "a post-processor clause")
		}

		switch p.current().Kind {
		case tokenizer.And:
			p.pos++
		case tokenizer.LimitKeyword:
			if postProcessor.Limit != nil {
				return nil, p.errorf(ErrDuplicateClause, "limit is already set to %d", postProcessor.Limit.Count)
			}
			limit, err := p.parseLimit()
			if err != nil {
				return nil, err
			}
			postProcessor.Limit = limit
		default:
			return nil, p.unexpected(ErrUnexpectedToken, "a post-processor clause ('limit') or the end of the query")
		}
	}

	postProcessor.Span = p.span(start)
	return postProcessor, nil
}

func (p *parser) parseLimit() (*LimitClause, error) {
	start := p.pos
	matched, ok := p.match(limitClause)
	if !ok {
		p.pos++
		return nil, p.unexpected(ErrUnexpectedToken, "a number after 'limit'")
	}

	operand := matched[1]
	count, err := strconv.ParseInt(operand.Literal, 10, 32)
	if err != nil {
		p.pos--
		return nil, p.errorf(ErrLimitNotInteger, "got %q", operand.Lexeme)
	}
	return &LimitClause{Span: p.span(start), Count: int32(count)}, nil
}
