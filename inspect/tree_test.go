package inspect

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"gopkg.in/yaml.v3"

	"github.com/shibukawa/eaql/parser"
	"github.com/shibukawa/eaql/tokenizer"
)

func mustParse(t *testing.T, query string) *parser.Query {
	t.Helper()
	tokens, errs := tokenizer.Tokenize(query)
	assert.Equal(t, 0, len(errs))
	q, err := parser.Parse(tokens)
	assert.NoError(t, err)
	return q
}

func renderMap(t *testing.T, query string) map[string]any {
	t.Helper()
	out, err := Render(mustParse(t, query))
	assert.NoError(t, err)
	var decoded map[string]any
	assert.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	return decoded
}

func child(t *testing.T, m map[string]any, keys ...string) map[string]any {
	t.Helper()
	for _, key := range keys {
		next, ok := m[key].(map[string]any)
		assert.True(t, ok, "missing mapping %q", key)
		m = next
	}
	return m
}

func TestRenderDatabaseStatements(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "use",
			query: "use database sales;",
			want: "node: Query\n" +
				"source: use database sales;\n" +
				"statement:\n" +
				"  node: Database\n" +
				"  source: use database sales\n" +
				"  action: use database\n" +
				"  operation:\n" +
				"    node: Use\n" +
				"    source: sales\n" +
				"    name: sales\n",
		},
		{
			name:  "show",
			query: "show databases!",
			want: "node: Query\n" +
				"source: show databases!\n" +
				"statement:\n" +
				"  node: Database\n" +
				"  source: show databases\n" +
				"  action: show databases\n" +
				"  operation:\n" +
				"    node: Show\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(mustParse(t, tt.query))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderGetStatement(t *testing.T) {
	tree := renderMap(t, "get id, name from orders where price > 10 then limit 5;")
	assert.Equal(t, "Query", tree["node"])

	stmt := child(t, tree, "statement")
	assert.Equal(t, "Get", stmt["node"])
	assert.Equal(t, "get id, name from orders where price > 10 then limit 5", stmt["source"])

	columns := child(t, stmt, "columns")
	assert.Equal(t, false, columns["wildcard"])
	names, ok := columns["names"].([]any)
	assert.True(t, ok)
	assert.Equal(t, []any{"id", "name"}, names)

	table := child(t, stmt, "table")
	assert.Equal(t, "orders", table["name"])
	assert.Equal(t, "from orders", table["source"])

	condition := child(t, stmt, "filter", "condition")
	assert.Equal(t, "Expression", condition["node"])
	assert.Equal(t, "price", condition["identifier"])
	assert.Equal(t, ">", condition["comparator"])
	assert.Equal(t, "10", condition["number"])

	post := child(t, stmt, "postprocessor")
	assert.Equal(t, 5, post["limit"])
}

func TestRenderConditionTree(t *testing.T) {
	tree := renderMap(t, `get all from t where a = 1 and (b = "x" or c = 3);`)
	columns := child(t, tree, "statement", "columns")
	assert.Equal(t, true, columns["wildcard"])
	_, hasNames := columns["names"]
	assert.False(t, hasNames)

	condition := child(t, tree, "statement", "filter", "condition")
	assert.Equal(t, "And", condition["node"])
	_, hasParens := condition["parens"]
	assert.False(t, hasParens)

	right := child(t, condition, "right")
	assert.Equal(t, "Or", right["node"])
	assert.Equal(t, 1, right["parens"])
	assert.Equal(t, "x", child(t, right, "left")["string"])
}

func TestRenderEmptyOperand(t *testing.T) {
	tree := renderMap(t, "get all from t where or a = 1;")
	condition := child(t, tree, "statement", "filter", "condition")
	assert.Equal(t, "Or", condition["node"])

	left := child(t, condition, "left")
	assert.Equal(t, "Bool", left["node"])
	assert.Equal(t, false, left["value"])
}

func TestTreeKeyOrder(t *testing.T) {
	node := Tree(mustParse(t, "create database shop;"))
	assert.Equal(t, yaml.MappingNode, node.Kind)

	var keys []string
	for i := 0; i < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	assert.Equal(t, []string{"node", "source", "statement"}, keys)
}
