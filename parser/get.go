package parser

import "github.com/shibukawa/eaql/tokenizer"

// parseGet parses
//
//	get <columns> from <table> [where <condition>] [then <post-processors>]
//
// and stops in front of the end-of-query marker.
func (p *parser) parseGet() (*GetStatement, error) {
	start := p.pos
	p.pos++
	stmt := &GetStatement{Verb: p.span(start)}

	columns, err := p.parseColumns()
	if err != nil {
		return nil, err
	}
	stmt.Columns = columns

	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	stmt.Table = table

	if p.is(tokenizer.FilterKeyword) {
		filter, err := p.parseFilter()
		if err != nil {
			return nil, err
		}
		stmt.Filter = filter
	}

	if p.is(tokenizer.PostProcessorEntrance) {
		postProcessor, err := p.parsePostProcessor()
		if err != nil {
			return nil, err
		}
		stmt.PostProcessor = postProcessor
	}

	if !p.is(tokenizer.EndOfQuery) {
		return nil, p.unexpected(ErrExpectedEndOfQuery, "a filter ('where'), a post-processor ('then') or the end of the query")
	}

	stmt.Span = p.span(start)
	return stmt, nil
}

func (p *parser) parseColumns() (ColumnSelection, error) {
	start := p.pos
	if p.is(tokenizer.WildcardKeyword) {
		p.pos++
		return ColumnSelection{Span: p.span(start), Wildcard: true}, nil
	}

	names, err := p.parseNameList("column name")
	if err != nil {
		return ColumnSelection{}, err
	}
	return ColumnSelection{Span: p.span(start), Names: names}, nil
}

func (p *parser) parseTable() (TableReference, error) {
	start := p.pos
	if _, err := p.expect(ErrUnexpectedToken, "from-like keyword for table selection", tokenizer.From); err != nil {
		return TableReference{}, err
	}
	name, err := p.expect(ErrExpectedIdentifier, "table name", tokenizer.Identifier)
	if err != nil {
		return TableReference{}, err
	}
	return TableReference{Span: p.span(start), Name: name.Literal}, nil
}

func (p *parser) parseFilter() (*Filter, error) {
	start := p.pos
	p.pos++
	condition, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	return &Filter{Span: p.span(start), Condition: condition}, nil
}
