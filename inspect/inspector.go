package inspect

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shibukawa/eaql"
	"github.com/shibukawa/eaql/parser"
	"github.com/shibukawa/eaql/tokenizer"
)

// Inspect parses a query and returns a summarized view. Unless opt.Strict is
// set, a query that does not parse still yields a result whose notes explain
// the failure.
func Inspect(r io.Reader, opt InspectOptions) (InspectResult, error) {
	var res InspectResult

	b, err := io.ReadAll(r)
	if err != nil {
		return res, fmt.Errorf("read input: %w", err)
	}

	tokens, lexErrors := tokenizer.Tokenize(strings.TrimSpace(string(b)), tokenizer.Options{CaseInsensitive: opt.CaseInsensitive})
	if len(lexErrors) > 0 && opt.Strict {
		return res, fmt.Errorf("tokenize: %w", errors.Join(lexErrors...))
	}
	for _, lexErr := range lexErrors {
		res.Notes = append(res.Notes, lexErr.Error())
	}

	q, err := parse(tokens)
	if err != nil {
		if opt.Strict {
			return res, fmt.Errorf("parse: %w", err)
		}
		res.Statement = "invalid"
		res.Notes = append(res.Notes, err.Error())
		return res, nil
	}

	summary := Summarize(q)
	summary.Notes = append(res.Notes, summary.Notes...)
	return summary, nil
}

func parse(tokens []tokenizer.Token) (*parser.Query, error) {
	if err := eaql.CheckDelimiter(tokens); err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Summarize flattens a parsed query.
func Summarize(q *parser.Query) InspectResult {
	var res InspectResult

	switch stmt := q.Statement.(type) {
	case *parser.GetStatement:
		res.Statement = "get"
		res.Tables = []string{stmt.Table.Name}
		res.Wildcard = stmt.Columns.Wildcard
		for _, name := range stmt.Columns.Names {
			res.Columns = appendColumn(res.Columns, name, "select")
		}
		if stmt.Filter != nil {
			res.Columns, res.Notes = walkCondition(stmt.Filter.Condition, res.Columns, res.Notes)
		}
		if stmt.PostProcessor != nil && stmt.PostProcessor.Limit != nil {
			limit := stmt.PostProcessor.Limit.Count
			res.Limit = &limit
			if limit < 0 {
				res.Notes = append(res.Notes, "negative limit is passed through to SQL")
			}
		}
	case *parser.DatabaseStatement:
		switch op := stmt.Operation.(type) {
		case *parser.CreateDatabase:
			res.Statement = "create"
			res.Databases = []string{op.Name}
		case *parser.DestroyDatabase:
			res.Statement = "destroy"
			res.Databases = append([]string(nil), op.Names...)
		case *parser.UseDatabase:
			res.Statement = "use"
			res.Databases = []string{op.Name}
		case *parser.ShowDatabases:
			res.Statement = "show"
		}
	}

	return res
}

func walkCondition(c parser.Condition, columns []ColumnRef, notes []string) ([]ColumnRef, []string) {
	switch c := c.(type) {
	case *parser.OrCondition:
		columns, notes = walkCondition(c.Left, columns, notes)
		return walkCondition(c.Right, columns, notes)
	case *parser.AndCondition:
		columns, notes = walkCondition(c.Left, columns, notes)
		return walkCondition(c.Right, columns, notes)
	case *parser.Expression:
		return appendColumn(columns, c.Identifier, "filter"), notes
	case *parser.BoolCondition:
		return columns, append(notes, fmt.Sprintf("empty operand treated as %s", c))
	}
	return columns, notes
}

// appendColumn adds a reference unless the same name and usage is present.
func appendColumn(columns []ColumnRef, name, usage string) []ColumnRef {
	for _, column := range columns {
		if column.Name == name && column.Usage == usage {
			return columns
		}
	}
	return append(columns, ColumnRef{Name: name, Usage: usage})
}
