package transpiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shibukawa/eaql/parser"
)

// Role tells a presenter which part of the query a segment came from.
type Role int

const (
	RoleSelection Role = iota
	RoleTable
	RoleFilter
	RolePostProcessor
	RoleAction
	RoleTarget
)

func (r Role) String() string {
	switch r {
	case RoleSelection:
		return "selection"
	case RoleTable:
		return "table"
	case RoleFilter:
		return "filter"
	case RolePostProcessor:
		return "post-processor"
	case RoleAction:
		return "action"
	case RoleTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Segment is one piece of generated text.
type Segment struct {
	Role Role
	Text string
}

// Output holds both renditions of a query. Echo is the part of the source the
// parser understood, SQL is the equivalent statement without a terminating
// semicolon.
type Output struct {
	Echo         string
	SQL          string
	EchoSegments []Segment
	SQLSegments  []Segment
}

// Generate renders a parsed query. It is a pure function of the tree.
func Generate(q *parser.Query) Output {
	g := &generator{}
	switch stmt := q.Statement.(type) {
	case *parser.GetStatement:
		g.get(stmt)
	case *parser.DatabaseStatement:
		g.database(stmt)
	default:
		panic(fmt.Sprintf("transpiler: unsupported statement %T", stmt))
	}
	return Output{
		Echo:         join(g.echo),
		SQL:          join(g.sql),
		EchoSegments: g.echo,
		SQLSegments:  g.sql,
	}
}

type generator struct {
	echo []Segment
	sql  []Segment
}

func (g *generator) add(role Role, echo, sql string) {
	if echo != "" {
		g.echo = append(g.echo, Segment{Role: role, Text: echo})
	}
	if sql != "" {
		g.sql = append(g.sql, Segment{Role: role, Text: sql})
	}
}

func (g *generator) get(stmt *parser.GetStatement) {
	g.add(RoleSelection, stmt.Verb.Source+" "+stmt.Columns.Source, "SELECT "+Columns(stmt.Columns))
	g.add(RoleTable, stmt.Table.Source, "FROM "+stmt.Table.Name)
	if stmt.Filter != nil {
		g.add(RoleFilter, stmt.Filter.Source, "WHERE "+Condition(stmt.Filter.Condition))
	}
	if stmt.PostProcessor != nil {
		g.add(RolePostProcessor, stmt.PostProcessor.Source, PostProcessor(stmt.PostProcessor))
	}
}

func (g *generator) database(stmt *parser.DatabaseStatement) {
	switch op := stmt.Operation.(type) {
	case *parser.CreateDatabase:
		g.add(RoleAction, stmt.Action.Source, "CREATE DATABASE")
		g.add(RoleTarget, op.Source, op.Name)
	case *parser.DestroyDatabase:
		g.add(RoleAction, stmt.Action.Source, "DROP DATABASE")
		g.add(RoleTarget, op.Source, strings.Join(op.Names, ", "))
	case *parser.UseDatabase:
		g.add(RoleAction, stmt.Action.Source, "USE DATABASE")
		g.add(RoleTarget, op.Source, op.Name)
	case *parser.ShowDatabases:
		g.add(RoleAction, stmt.Action.Source, "SHOW DATABASES")
	default:
		panic(fmt.Sprintf("transpiler: unsupported database operation %T", op))
	}
}

// Columns renders a column selection.
func Columns(columns parser.ColumnSelection) string {
	if columns.Wildcard {
		return "*"
	}
	return strings.Join(columns.Names, ", ")
}

// PostProcessor renders the post-processing clauses. An empty chain renders
// as an empty string.
func PostProcessor(postProcessor *parser.PostProcessor) string {
	var clauses []string
	if postProcessor.Limit != nil {
		clauses = append(clauses, "LIMIT "+strconv.FormatInt(int64(postProcessor.Limit.Count), 10))
	}
	return strings.Join(clauses, " ")
}

func join(segments []Segment) string {
	texts := make([]string, 0, len(segments))
	for _, segment := range segments {
		texts = append(texts, segment.Text)
	}
	return strings.Join(texts, " ")
}
