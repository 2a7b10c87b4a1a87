package transpiler

import (
	"fmt"
	"strings"

	"github.com/shibukawa/eaql/parser"
)

type operator int

const (
	operatorNone operator = iota
	operatorAnd
	operatorOr
)

// Condition renders a filter condition as SQL. Parentheses written in the
// query are kept, and more are added where the tree would otherwise read
// with a different precedence.
func Condition(condition parser.Condition) string {
	return renderCondition(condition, operatorNone, false)
}

func renderCondition(condition parser.Condition, parent operator, right bool) string {
	var (
		text  string
		group bool
	)

	switch c := condition.(type) {
	case *parser.OrCondition:
		text = renderCondition(c.Left, operatorOr, false) + " or " + renderCondition(c.Right, operatorOr, true)
		group = parent == operatorAnd || (parent == operatorOr && right)
	case *parser.AndCondition:
		text = renderCondition(c.Left, operatorAnd, false) + " and " + renderCondition(c.Right, operatorAnd, true)
		group = parent == operatorAnd && right
	case *parser.Expression:
		text = c.Identifier + " " + c.Comparator.String() + " " + c.Value.String()
	case *parser.BoolCondition:
		text = c.String()
	default:
		panic(fmt.Sprintf("transpiler: unsupported condition %T", c))
	}

	parens := condition.Grouping()
	if group && parens == 0 {
		parens = 1
	}
	return strings.Repeat("(", parens) + text + strings.Repeat(")", parens)
}
