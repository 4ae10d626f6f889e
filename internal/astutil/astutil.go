// Package astutil provides debugging helpers for model.Ast trees.
package astutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/fabian2000/exath-go/internal/model"
)

// Print writes a human-readable, indented tree of node to w. It is intended
// for debugging a parse, not for machine consumption.
func Print(w io.Writer, node model.Ast, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *model.Number:
		fmt.Fprintf(w, "%sNumber: %v\n", prefix, n.Value)
	case *model.Var:
		fmt.Fprintf(w, "%sVar: %s\n", prefix, n.Name)
	case *model.BinExpr:
		fmt.Fprintf(w, "%sBinExpr: %s\n", prefix, n.Op)
		Print(w, n.Left, indent+1)
		Print(w, n.Right, indent+1)
	case *model.UnaryNeg:
		fmt.Fprintf(w, "%sUnaryNeg\n", prefix)
		Print(w, n.Inner, indent+1)
	case *model.UnaryNot:
		fmt.Fprintf(w, "%sUnaryNot\n", prefix)
		Print(w, n.Inner, indent+1)
	case *model.Factorial:
		fmt.Fprintf(w, "%sFactorial\n", prefix)
		Print(w, n.Inner, indent+1)
	case *model.Call:
		fmt.Fprintf(w, "%sCall: %s\n", prefix, n.Name)
		for _, arg := range n.Args {
			Print(w, arg, indent+1)
		}
	default:
		fmt.Fprintf(w, "%s%T\n", prefix, node)
	}
}

// Dump returns Print's output as a string.
func Dump(node model.Ast) string {
	var sb strings.Builder
	Print(&sb, node, 0)
	return sb.String()
}

// CollectVars returns the set of free variable names referenced anywhere in
// node, in first-occurrence order. User-function parameter names bound by a
// Call are not distinguished here — that resolution happens at eval time.
func CollectVars(node model.Ast) []string {
	seen := map[string]bool{}
	var order []string
	var walk func(model.Ast)
	walk = func(n model.Ast) {
		switch v := n.(type) {
		case *model.Number:
		case *model.Var:
			if !seen[v.Name] {
				seen[v.Name] = true
				order = append(order, v.Name)
			}
		case *model.BinExpr:
			walk(v.Left)
			walk(v.Right)
		case *model.UnaryNeg:
			walk(v.Inner)
		case *model.UnaryNot:
			walk(v.Inner)
		case *model.Factorial:
			walk(v.Inner)
		case *model.Call:
			for _, arg := range v.Args {
				walk(arg)
			}
		}
	}
	walk(node)
	return order
}
