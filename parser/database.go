package parser

import "github.com/shibukawa/eaql/tokenizer"

// parseDatabase parses "<action> database <operands>". Only databases are
// valid targets today.
func (p *parser) parseDatabase() (*DatabaseStatement, error) {
	start := p.pos
	action := p.current()
	p.pos++

	if p.atEnd() {
		return nil, p.unexpected(ErrUnexpectedEnd, "a target keyword ('database')")
	}
	if !p.is(tokenizer.Database) {
		return nil, p.errorf(ErrInvalidTarget, "%q cannot be applied to %q; valid targets are: database", action.Lexeme, p.current().Lexeme)
	}
	p.pos++
	stmt := &DatabaseStatement{Action: p.span(start)}

	var err error
	switch action.Kind {
	case tokenizer.CreateKeyword:
		stmt.Operation, err = p.parseCreateDatabase()
	case tokenizer.DeleteKeyword:
		stmt.Operation, err = p.parseDestroyDatabase()
	case tokenizer.UseKeyword:
		stmt.Operation, err = p.parseUseDatabase()
	case tokenizer.ShowKeyword:
		stmt.Operation = &ShowDatabases{Span: p.span(p.pos)}
	}
	if err != nil {
		return nil, err
	}

	stmt.Span = p.span(start)
	return stmt, nil
}

func (p *parser) parseCreateDatabase() (*CreateDatabase, error) {
	start := p.pos
	name, err := p.expect(ErrExpectedIdentifier, "database name", tokenizer.Identifier)
	if err != nil {
		return nil, err
	}
	return &CreateDatabase{Span: p.span(start), Name: name.Literal}, nil
}

func (p *parser) parseDestroyDatabase() (*DestroyDatabase, error) {
	start := p.pos
	names, err := p.parseNameList("database name")
	if err != nil {
		return nil, err
	}
	return &DestroyDatabase{Span: p.span(start), Names: names}, nil
}

func (p *parser) parseUseDatabase() (*UseDatabase, error) {
	start := p.pos
	name, err := p.expect(ErrExpectedIdentifier, "database name", tokenizer.Identifier)
	if err != nil {
		return nil, err
	}
	return &UseDatabase{Span: p.span(start), Name: name.Literal}, nil
}
