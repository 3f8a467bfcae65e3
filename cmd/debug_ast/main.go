package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gosuda/flatscript/ast"
	"github.com/gosuda/flatscript/parser"
	"github.com/gosuda/flatscript/tokenize"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/debug_ast <script>")
		os.Exit(2)
	}
	b, err := os.ReadFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	tokens, err := tokenize.Split(string(b))
	if err != nil {
		panic(err)
	}
	prog, err := parser.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("tokens=%d stmts=%d\n", len(tokens), len(prog.Body))
	dump(prog.Body, 0)
}

func dump(stmts []ast.Statement, depth int) {
	pad := strings.Repeat("  ", depth)
	for i, st := range stmts {
		switch s := st.(type) {
		case ast.DeclareStmt:
			fmt.Printf("%s%d Declare %s = %s\n", pad, i, s.Name, expr(s.Value))
		case ast.AssignStmt:
			fmt.Printf("%s%d Assign %s = %s\n", pad, i, s.Name, expr(s.Value))
		case ast.PrintStmt:
			fmt.Printf("%s%d Print %s\n", pad, i, s.Token)
		case ast.ReadStmt:
			fmt.Printf("%s%d Read %s\n", pad, i, s.Name)
		case ast.IfStmt:
			fmt.Printf("%s%d If %s %s %s elseNil=%v\n", pad, i, s.Cond.Left, s.Cond.Op, s.Cond.Right, s.Else == nil)
			dump(s.Then, depth+1)
			if s.Else != nil {
				fmt.Printf("%s  else\n", pad)
				dump(s.Else, depth+1)
			}
		case ast.WhileStmt:
			fmt.Printf("%s%d While %s %s %s\n", pad, i, s.Cond.Left, s.Cond.Op, s.Cond.Right)
			dump(s.Body, depth+1)
		case ast.ForStmt:
			fmt.Printf("%s%d For %s %s %s\n", pad, i, s.Cond.Left, s.Cond.Op, s.Cond.Right)
			dump([]ast.Statement{s.Init, s.Inc}, depth+2)
			dump(s.Body, depth+1)
		case ast.FunctionStmt:
			fmt.Printf("%s%d Function %s(%s)\n", pad, i, s.Name, strings.Join(s.Params, ", "))
			dump(s.Body, depth+1)
		case ast.CallStmt:
			fmt.Printf("%s%d Call %s(%s)\n", pad, i, s.Name, strings.Join(s.Args, ", "))
		case ast.ReturnStmt:
			fmt.Printf("%s%d Return %s\n", pad, i, expr(s.Value))
		default:
			fmt.Printf("%s%d %T\n", pad, i, st)
		}
	}
}

func expr(e ast.Expr) string {
	switch x := e.(type) {
	case ast.IntLit:
		return fmt.Sprintf("%d", x.Value)
	case ast.StringLit:
		return fmt.Sprintf("%q", x.Value)
	case ast.BinaryExpr:
		return x.Left + " " + x.Op + " " + x.Right
	case ast.CallExpr:
		return x.Name + "(" + strings.Join(x.Args, ", ") + ")"
	}
	return fmt.Sprintf("%T", e)
}
