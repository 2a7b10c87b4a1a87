package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/shibukawa/eaql/tokenizer"
)

func parse(t *testing.T, query string) (*Query, error) {
	t.Helper()
	tokens, _ := tokenizer.Tokenize(query)
	return Parse(tokens)
}

func mustParse(t *testing.T, query string) *Query {
	t.Helper()
	q, err := parse(t, query)
	assert.NoError(t, err)
	return q
}

func mustGet(t *testing.T, query string) *GetStatement {
	t.Helper()
	stmt, ok := mustParse(t, query).Get()
	assert.True(t, ok)
	return stmt
}

func TestGetStatement(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		stmt := mustGet(t, "get all from db_1!")
		assert.True(t, stmt.Columns.Wildcard)
		assert.Equal(t, 0, len(stmt.Columns.Names))
		assert.Equal(t, "db_1", stmt.Table.Name)
		assert.Zero(t, stmt.Filter)
		assert.Zero(t, stmt.PostProcessor)
		assert.Equal(t, "get all from db_1", stmt.Source)
	})

	t.Run("mixed list separators", func(t *testing.T) {
		stmt := mustGet(t, "get id, cost and name, price from t;")
		assert.False(t, stmt.Columns.Wildcard)
		assert.Equal(t, []string{"id", "cost", "name", "price"}, stmt.Columns.Names)
		assert.Equal(t, "id, cost and name, price", stmt.Columns.Source)
	})

	t.Run("filler words are ignored", func(t *testing.T) {
		stmt := mustGet(t, "get me all from the orders;")
		assert.Equal(t, "orders", stmt.Table.Name)
		assert.Equal(t, "from orders", stmt.Table.Source)
	})

	t.Run("synonyms", func(t *testing.T) {
		for _, query := range []string{
			"find everything from t whenever id = 1 afterwords limit 1;",
			"retrieve any from t wherever id = 1 after limit 1;",
		} {
			stmt := mustGet(t, query)
			assert.True(t, stmt.Columns.Wildcard)
			assert.Equal(t, "id = 1", stmt.Filter.Condition.String())
			assert.Equal(t, int32(1), stmt.PostProcessor.Limit.Count)
		}
	})

	t.Run("spans", func(t *testing.T) {
		q := mustParse(t, `get all from test_table where id = 3 or (price <= 2 and name is "3")!`)
		stmt, _ := q.Get()
		assert.Equal(t, `get all from test_table where id = 3 or (price <= 2 and name is "3")!`, q.Source)
		assert.Equal(t, "get", stmt.Verb.Source)
		assert.Equal(t, "all", stmt.Columns.Source)
		assert.Equal(t, `where id = 3 or (price <= 2 and name is "3")`, stmt.Filter.Source)

		or, ok := stmt.Filter.Condition.(*OrCondition)
		assert.True(t, ok)
		assert.Equal(t, `(price <= 2 and name is "3")`, or.Right.SourceSpan().Source)
		assert.Equal(t, 1, or.Right.Grouping())
		assert.Equal(t, 0, or.Left.Grouping())
	})
}

func TestConditionPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		expected  string
	}{
		{"single expression", "id = 3", "id = 3"},
		{"and binds tighter than or", "a = 1 and b = 2 or c = 3", "Or(And(a = 1, b = 2), c = 3)"},
		{"and on the right", "a = 1 or b = 2 and c = 3", "Or(a = 1, And(b = 2, c = 3))"},
		{"parentheses override", "(a = 1 or b = 2) and c = 3", "And(Or(a = 1, b = 2), c = 3)"},
		{"left associative and", "a = 1 and b = 2 and c = 3", "And(And(a = 1, b = 2), c = 3)"},
		{"left associative or", "a = 1 or b = 2 or c = 3", "Or(Or(a = 1, b = 2), c = 3)"},
		{"nested group", `id = 3 or (price <= 2 and name is "3")`, `Or(id = 3, And(price <= 2, name = "3"))`},
		{"all comparators", "a < 1 and b <= 2 and c > 3 and d >= 4", "And(And(And(a < 1, b <= 2), c > 3), d >= 4)"},
		{"empty operand under and", "a = 1 and", "And(a = 1, TRUE)"},
		{"empty operand under or", "or a = 1", "Or(FALSE, a = 1)"},
		{"empty operand in group", "(a = 1 or) and b = 2", "And(Or(a = 1, FALSE), b = 2)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stmt := mustGet(t, "get all from t where "+test.condition+";")
			assert.Equal(t, test.expected, stmt.Filter.Condition.String())
		})
	}
}

func TestConditionGrouping(t *testing.T) {
	stmt := mustGet(t, "get all from t where ((a = 1));")
	condition := stmt.Filter.Condition
	assert.Equal(t, 2, condition.Grouping())
	assert.Equal(t, "((a = 1))", condition.SourceSpan().Source)
}

func TestExpressionLiterals(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		stmt := mustGet(t, "get all from orders where price >= 2.43;")
		expression, ok := stmt.Filter.Condition.(*Expression)
		assert.True(t, ok)
		assert.Equal(t, "price", expression.Identifier)
		assert.Equal(t, GreaterOrEqual, expression.Comparator)
		assert.Equal(t, NumberValue, expression.Value.Kind)
		assert.True(t, expression.Value.Number.Equal(decimal.RequireFromString("2.43")))
		assert.Equal(t, "2.43", expression.Value.String())
	})

	t.Run("string", func(t *testing.T) {
		stmt := mustGet(t, `get all from users where name is "john doe";`)
		expression := stmt.Filter.Condition.(*Expression)
		assert.Equal(t, Equal, expression.Comparator)
		assert.Equal(t, StringValue, expression.Value.Kind)
		assert.Equal(t, "john doe", expression.Value.Text)
		assert.Equal(t, `"john doe"`, expression.Value.String())
	})

	t.Run("synthesized", func(t *testing.T) {
		assert.Equal(t, `"x"`, Literal{Kind: StringValue, Text: "x"}.String())
		assert.Equal(t, "7", Literal{Kind: NumberValue, Number: decimal.NewFromInt(7)}.String())
	})
}

func TestPostProcessor(t *testing.T) {
	t.Run("limit", func(t *testing.T) {
		stmt := mustGet(t, "get all from t then limit 5;")
		assert.Equal(t, int32(5), stmt.PostProcessor.Limit.Count)
		assert.Equal(t, "limit 5", stmt.PostProcessor.Limit.Source)
		assert.Equal(t, "then limit 5", stmt.PostProcessor.Source)
	})

	t.Run("filler words", func(t *testing.T) {
		stmt := mustGet(t, "get all from test_table then limit it to 5;")
		assert.Equal(t, int32(5), stmt.PostProcessor.Limit.Count)
	})

	t.Run("and separators", func(t *testing.T) {
		stmt := mustGet(t, "get all from t then and limit 3 and;")
		assert.Equal(t, int32(3), stmt.PostProcessor.Limit.Count)
	})

	t.Run("empty chain", func(t *testing.T) {
		stmt := mustGet(t, "get all from t then;")
		assert.NotZero(t, stmt.PostProcessor)
		assert.Zero(t, stmt.PostProcessor.Limit)
	})

	t.Run("negative", func(t *testing.T) {
		stmt := mustGet(t, "get all from t then limit -1;")
		assert.Equal(t, int32(-1), stmt.PostProcessor.Limit.Count)
	})

	t.Run("after filter", func(t *testing.T) {
		stmt := mustGet(t, "get all from t where a = 1 then limit 2;")
		assert.Equal(t, "a = 1", stmt.Filter.Condition.String())
		assert.Equal(t, "where a = 1", stmt.Filter.Source)
		assert.Equal(t, int32(2), stmt.PostProcessor.Limit.Count)
	})
}

func TestDatabaseStatement(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		stmt, ok := mustParse(t, "create database test;").Database()
		assert.True(t, ok)
		op, ok := stmt.Operation.(*CreateDatabase)
		assert.True(t, ok)
		assert.Equal(t, "test", op.Name)
		assert.Equal(t, "create database", stmt.Action.Source)
	})

	t.Run("destroy list", func(t *testing.T) {
		stmt, _ := mustParse(t, "delete databases db1, db2 and db3;").Database()
		op, ok := stmt.Operation.(*DestroyDatabase)
		assert.True(t, ok)
		assert.Equal(t, []string{"db1", "db2", "db3"}, op.Names)
		assert.Equal(t, "delete databases", stmt.Action.Source)
		assert.Equal(t, "db1, db2 and db3", op.Source)
	})

	t.Run("use", func(t *testing.T) {
		stmt, _ := mustParse(t, "enter the database sales.").Database()
		op, ok := stmt.Operation.(*UseDatabase)
		assert.True(t, ok)
		assert.Equal(t, "sales", op.Name)
	})

	t.Run("show", func(t *testing.T) {
		for _, query := range []string{"show database;", "list databases."} {
			stmt, _ := mustParse(t, query).Database()
			op, ok := stmt.Operation.(*ShowDatabases)
			assert.True(t, ok)
			assert.Equal(t, "", op.Source)
		}
	})

	t.Run("not a get statement", func(t *testing.T) {
		_, ok := mustParse(t, "show databases;").Get()
		assert.False(t, ok)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		expected   error
		validUntil string
	}{
		{"missing delimiter", "get all from t", ErrUnexpectedEnd, "get all from t"},
		{"empty", "", ErrUnexpectedEnd, ""},
		{"unknown action", "fetch all from t;", ErrUnknownAction, ""},
		{"invalid target", "create table t;", ErrInvalidTarget, "create"},
		{"missing from", "get all t;", ErrUnexpectedToken, "get all"},
		{"missing table", "get all from;", ErrExpectedIdentifier, "get all from"},
		{"missing column", "get from t;", ErrExpectedIdentifier, "get"},
		{"dangling separator", "get id, from t;", ErrInvalidList, "get id,"},
		{"dangling and", "delete databases a and;", ErrInvalidList, "delete databases a and"},
		{"identifier as value", "get all from t where id is equal to 3;", ErrInvalidLiteral, "get all from t where id is"},
		{"missing comparator", "get all from t where id 3;", ErrInvalidComparator, "get all from t where id"},
		{"double comparator", "get all from t where id <== 3;", ErrInvalidLiteral, "get all from t where id <="},
		{"unclosed parenthesis", "get all from t where (id = 3;", ErrUnclosedParentheses, "get all from t where (id = 3"},
		{"unclosed before post processor", "get all from t where (id = 3 then limit 1;", ErrUnclosedParentheses, "get all from t where (id = 3"},
		{"unmatched parenthesis", "get all from t where id = 3);", ErrUnmatchedParenthesis, "get all from t where id = 3"},
		{"empty filter", "get all from t where;", ErrEmptyCondition, "get all from t where"},
		{"empty parentheses", "get all from t where ();", ErrEmptyCondition, "get all from t where ()"},
		{"only or", "get all from t where or;", ErrEmptyCondition, "get all from t where or"},
		{"only and", "get all from t where and;", ErrEmptyCondition, "get all from t where and"},
		{"only connectives", "get all from t where and or and then limit 1;", ErrEmptyCondition, "get all from t where and or and"},
		{"connective in parentheses", "get all from t where (or);", ErrEmptyCondition, "get all from t where (or)"},
		{"connective group beside comparison", "get all from t where a = 1 and (and);", ErrEmptyCondition, "get all from t where a = 1 and (and)"},
		{"missing connective", "get all from t where a = 1 b = 2;", ErrUnexpectedToken, "get all from t where a = 1"},
		{"fractional limit", "get all from t then limit 2.5;", ErrLimitNotInteger, "get all from t then limit"},
		{"limit overflow", "get all from t then limit 99999999999;", ErrLimitNotInteger, "get all from t then limit"},
		{"limit without number", "get all from t then limit five;", ErrUnexpectedToken, "get all from t then limit"},
		{"duplicate limit", "get all from t then limit 5 and limit 6;", ErrDuplicateClause, "get all from t then limit 5 and"},
		{"unknown post processor", "get all from t then sort;", ErrUnexpectedToken, "get all from t then"},
		{"clause out of place", "get all from t limit 5;", ErrExpectedEndOfQuery, "get all from t"},
		{"trailing tokens", "get all from t; get all from u;", ErrTrailingTokens, "get all from t;"},
		{"extra database operand", "show database x;", ErrExpectedEndOfQuery, "show database"},
		{"unterminated string", `get all from t where name is "bob;`, ErrLexical, "get all from t where name is"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parse(t, test.query)
			assert.Error(t, err)
			assert.IsError(t, err, test.expected)
			assert.IsError(t, err, ErrInvalidQuery)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
			assert.Equal(t, test.validUntil, parseErr.ValidUntil)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := parse(t, "get all from t where id 3;")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `query valid until after "get all from t where id"`))
	assert.True(t, strings.HasPrefix(err.Error(), "invalid query: invalid comparator"))

	_, err = parse(t, "show database x;")
	assert.Equal(t, `invalid query: query does not end here: expected '.', '!' or ';', got "x" (query valid until after "show database")`, err.Error())

	_, err = parse(t, "fetch all;")
	assert.False(t, strings.Contains(err.Error(), "valid until"))
}

func TestParseIsDeterministic(t *testing.T) {
	query := `get id, name from users where (age >= 18 or vip = "yes") and id < 100 then limit 10;`
	first := mustParse(t, query)
	second := mustParse(t, query)
	assert.Equal(t, first, second)
}
