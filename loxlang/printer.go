package loxlang

import (
	"fmt"
	"strings"
)

// Sprint renders an expression tree in prefix form, e.g. ( + 1 ( group 2 ) ).
func Sprint(expr Expr) string {
	var sb strings.Builder
	printExpr(&sb, expr)
	return sb.String()
}

func printExpr(sb *strings.Builder, expr Expr) {
	switch expr := expr.(type) {

	case *Literal:
		sb.WriteString(expr.Lit.String())

	case *Unary:
		sb.WriteString("( ")
		sb.WriteString(expr.Sign.String())
		sb.WriteString(" ")
		printExpr(sb, expr.Operand)
		sb.WriteString(" )")

	case *Binary:
		sb.WriteString("( ")
		sb.WriteString(expr.Op.String())
		sb.WriteString(" ")
		printExpr(sb, expr.Left)
		sb.WriteString(" ")
		printExpr(sb, expr.Right)
		sb.WriteString(" )")

	case *Grouping:
		sb.WriteString("( group ")
		printExpr(sb, expr.Inner)
		sb.WriteString(" )")

	default:
		panic(fmt.Errorf("unknown expression: %T", expr))
	}
}
