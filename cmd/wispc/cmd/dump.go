package cmd

import (
	"fmt"

	"github.com/wisp-lang/wispc/pkg/ast"
)

// dumpProgram prints a debug tree of a parsed program, in the style
// of a recursive AST dumper: one node per line, indented by depth.
func dumpProgram(prog *ast.Program) {
	fmt.Printf("Program (%d statements)\n", len(prog.Statements))
	for _, stmt := range prog.Statements {
		dumpNode(stmt, 1)
	}
}

func dumpNode(node any, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.VariableDefinition:
		fmt.Printf("%sVariableDefinition %s type=%q\n", pad, n.Name, n.Type)
		if n.Initializer != nil {
			dumpNode(n.Initializer, indent+1)
		}
	case *ast.FunctionDefinition:
		fmt.Printf("%sFunctionDefinition %s params=%d return=%q\n", pad, n.Name, len(n.Parameters), n.ReturnType)
		for _, stmt := range n.Body {
			dumpNode(stmt, indent+1)
		}
	case *ast.Return:
		fmt.Printf("%sReturn\n", pad)
		dumpNode(n.Value, indent+1)
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", pad)
		dumpNode(n.Expression, indent+1)
	case *ast.Block:
		fmt.Printf("%sBlock (%d statements)\n", pad, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpNode(stmt, indent+1)
		}
	case *ast.BinaryOperation:
		fmt.Printf("%sBinaryOperation (%s)\n", pad, n.Operator)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.FunctionCall:
		fmt.Printf("%sFunctionCall %s (%d args)\n", pad, n.Callee, len(n.Arguments))
		for _, arg := range n.Arguments {
			dumpNode(arg, indent+1)
		}
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Name)
	case *ast.Number:
		fmt.Printf("%sNumber: %d\n", pad, n.Value)
	case *ast.String:
		fmt.Printf("%sString: %q\n", pad, n.Value)
	default:
		fmt.Printf("%s%T: %v\n", pad, node, node)
	}
}
