package parser

import "github.com/shopspring/decimal"

// Span is the [Start, End) token range a node was built from, together with
// the source text rebuilt from those tokens.
type Span struct {
	Start  int
	End    int
	Source string
}

// SourceSpan returns the span itself. Embedding Span gives every node this
// method.
func (s Span) SourceSpan() Span {
	return s
}

// Query is the root of a parsed query. Statement is either a *GetStatement
// or a *DatabaseStatement.
type Query struct {
	Span
	Statement Statement
}

// Get returns the statement when the query retrieves rows.
func (q *Query) Get() (*GetStatement, bool) {
	stmt, ok := q.Statement.(*GetStatement)
	return stmt, ok
}

// Database returns the statement when the query manages databases.
func (q *Query) Database() (*DatabaseStatement, bool) {
	stmt, ok := q.Statement.(*DatabaseStatement)
	return stmt, ok
}

// Statement is implemented by *GetStatement and *DatabaseStatement only.
type Statement interface {
	SourceSpan() Span
	statementNode()
}

// GetStatement retrieves columns from a table.
type GetStatement struct {
	Span
	Verb          Span // the get keyword
	Columns       ColumnSelection
	Table         TableReference
	Filter        *Filter
	PostProcessor *PostProcessor
}

func (*GetStatement) statementNode() {}

// ColumnSelection is either the wildcard or a non-empty list of names.
type ColumnSelection struct {
	Span
	Wildcard bool
	Names    []string
}

type TableReference struct {
	Span
	Name string
}

type Filter struct {
	Span
	Condition Condition
}

// PostProcessor holds the clauses that follow "then".
type PostProcessor struct {
	Span
	Limit *LimitClause
}

type LimitClause struct {
	Span
	Count int32
}

// Condition is a boolean filter tree.
type Condition interface {
	SourceSpan() Span
	// Grouping is the number of parenthesis pairs wrapping the node in the
	// source.
	Grouping() int
	String() string
	group(span Span)
}

type conditionBase struct {
	Span
	Parens int
}

func (c *conditionBase) Grouping() int {
	return c.Parens
}

func (c *conditionBase) group(span Span) {
	c.Span = span
	c.Parens++
}

type OrCondition struct {
	conditionBase
	Left  Condition
	Right Condition
}

func (c *OrCondition) String() string {
	return "Or(" + c.Left.String() + ", " + c.Right.String() + ")"
}

type AndCondition struct {
	conditionBase
	Left  Condition
	Right Condition
}

func (c *AndCondition) String() string {
	return "And(" + c.Left.String() + ", " + c.Right.String() + ")"
}

// Expression compares a column with a literal.
type Expression struct {
	conditionBase
	Identifier string
	Comparator Comparator
	Value      Literal
}

func (c *Expression) String() string {
	return c.Identifier + " " + c.Comparator.String() + " " + c.Value.String()
}

// BoolCondition stands in for an empty operand: true under AND, false
// under OR.
type BoolCondition struct {
	conditionBase
	Value bool
}

func (c *BoolCondition) String() string {
	if c.Value {
		return "TRUE"
	}
	return "FALSE"
}

// Comparator is a comparison operator.
type Comparator int

const (
	Equal Comparator = iota
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
)

func (c Comparator) String() string {
	switch c {
	case Equal:
		return "="
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	case Greater:
		return ">"
	case GreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

type LiteralKind int

const (
	StringValue LiteralKind = iota
	NumberValue
)

// Literal is the right-hand side of an expression.
type Literal struct {
	Kind   LiteralKind
	Text   string          // decoded string contents or numeric text
	Lexeme string          // source form, quotes included
	Number decimal.Decimal // set for NumberValue
}

// String returns the literal in its source form.
func (l Literal) String() string {
	if l.Lexeme != "" {
		return l.Lexeme
	}
	if l.Kind == NumberValue {
		return l.Number.String()
	}
	return `"` + l.Text + `"`
}

// DatabaseStatement manages databases. Action covers the action keyword and
// its target, e.g. "create database".
type DatabaseStatement struct {
	Span
	Action    Span
	Operation DatabaseOperation
}

func (*DatabaseStatement) statementNode() {}

// DatabaseOperation is implemented by *CreateDatabase, *DestroyDatabase,
// *UseDatabase and *ShowDatabases.
type DatabaseOperation interface {
	SourceSpan() Span
	databaseOperation()
}

type CreateDatabase struct {
	Span
	Name string
}

type DestroyDatabase struct {
	Span
	Names []string
}

type UseDatabase struct {
	Span
	Name string
}

type ShowDatabases struct {
	Span
}

func (*CreateDatabase) databaseOperation()  {}
func (*DestroyDatabase) databaseOperation() {}
func (*UseDatabase) databaseOperation()     {}
func (*ShowDatabases) databaseOperation()   {}
