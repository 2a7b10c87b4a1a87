package inspect

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/shibukawa/eaql/parser"
)

// Tree builds an ordered YAML mapping of a parsed query. Every node carries
// a "node" key naming its type and, when it covers any tokens, the "source"
// text it was parsed from.
func Tree(q *parser.Query) *yaml.Node {
	root := newNode("Query", q.Source)
	switch stmt := q.Statement.(type) {
	case *parser.GetStatement:
		addChild(root, "statement", getTree(stmt))
	case *parser.DatabaseStatement:
		addChild(root, "statement", databaseTree(stmt))
	}
	return root
}

// Render encodes the tree of q as YAML with two-space indentation.
func Render(q *parser.Query) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(Tree(q)); err != nil {
		return "", fmt.Errorf("failed to encode query tree: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to encode query tree: %w", err)
	}
	return buf.String(), nil
}

func getTree(stmt *parser.GetStatement) *yaml.Node {
	node := newNode("Get", stmt.Source)

	columns := newNode("Columns", stmt.Columns.Source)
	addScalar(columns, "wildcard", "!!bool", strconv.FormatBool(stmt.Columns.Wildcard))
	if len(stmt.Columns.Names) > 0 {
		addChild(columns, "names", stringSequence(stmt.Columns.Names))
	}
	addChild(node, "columns", columns)

	table := newNode("Table", stmt.Table.Source)
	addString(table, "name", stmt.Table.Name)
	addChild(node, "table", table)

	if stmt.Filter != nil {
		filter := newNode("Filter", stmt.Filter.Source)
		addChild(filter, "condition", conditionTree(stmt.Filter.Condition))
		addChild(node, "filter", filter)
	}

	if stmt.PostProcessor != nil {
		post := newNode("PostProcessor", stmt.PostProcessor.Source)
		if stmt.PostProcessor.Limit != nil {
			addScalar(post, "limit", "!!int", strconv.FormatInt(int64(stmt.PostProcessor.Limit.Count), 10))
		}
		addChild(node, "postprocessor", post)
	}

	return node
}

func conditionTree(c parser.Condition) *yaml.Node {
	var node *yaml.Node
	switch c := c.(type) {
	case *parser.OrCondition:
		node = newNode("Or", c.Source)
		addChild(node, "left", conditionTree(c.Left))
		addChild(node, "right", conditionTree(c.Right))
	case *parser.AndCondition:
		node = newNode("And", c.Source)
		addChild(node, "left", conditionTree(c.Left))
		addChild(node, "right", conditionTree(c.Right))
	case *parser.Expression:
		node = newNode("Expression", c.Source)
		addString(node, "identifier", c.Identifier)
		addString(node, "comparator", c.Comparator.String())
		if c.Value.Kind == parser.NumberValue {
			addString(node, "number", c.Value.Number.String())
		} else {
			addString(node, "string", c.Value.Text)
		}
	case *parser.BoolCondition:
		node = newNode("Bool", "")
		addScalar(node, "value", "!!bool", strconv.FormatBool(c.Value))
	default:
		panic(fmt.Sprintf("inspect: unsupported condition %T", c))
	}
	if parens := c.Grouping(); parens > 0 {
		addScalar(node, "parens", "!!int", strconv.Itoa(parens))
	}
	return node
}

func databaseTree(stmt *parser.DatabaseStatement) *yaml.Node {
	node := newNode("Database", stmt.Source)
	addString(node, "action", stmt.Action.Source)

	var operation *yaml.Node
	switch op := stmt.Operation.(type) {
	case *parser.CreateDatabase:
		operation = newNode("Create", op.Source)
		addString(operation, "name", op.Name)
	case *parser.DestroyDatabase:
		operation = newNode("Destroy", op.Source)
		addChild(operation, "names", stringSequence(op.Names))
	case *parser.UseDatabase:
		operation = newNode("Use", op.Source)
		addString(operation, "name", op.Name)
	case *parser.ShowDatabases:
		operation = newNode("Show", op.Source)
	}
	if operation != nil {
		addChild(node, "operation", operation)
	}
	return node
}

func newNode(kind, source string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addString(node, "node", kind)
	if source != "" {
		addString(node, "source", source)
	}
	return node
}

func addChild(parent *yaml.Node, key string, child *yaml.Node) {
	parent.Content = append(parent.Content, stringScalar(key), child)
}

func addString(parent *yaml.Node, key, value string) {
	addChild(parent, key, stringScalar(value))
}

func addScalar(parent *yaml.Node, key, tag, value string) {
	addChild(parent, key, &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value})
}

func stringScalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func stringSequence(values []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, value := range values {
		seq.Content = append(seq.Content, stringScalar(value))
	}
	return seq
}
