package fsruntime

import (
	"fmt"

	"github.com/gosuda/flatscript/ast"
)

func (vm *VM) evalExpr(e ast.Expr, env *Environment) (Value, error) {
	switch ex := e.(type) {
	case ast.IntLit:
		return Number(float64(ex.Value)), nil
	case ast.StringLit:
		return Text(ex.Value), nil
	case ast.CallExpr:
		return vm.callFunction(ex.Name, ex.Args, env)
	case ast.BinaryExpr:
		return evalBinary(ex.Op, Resolve(ex.Left, env), Resolve(ex.Right, env)), nil
	default:
		return Value{}, fmt.Errorf("unsupported expression %T", e)
	}
}

func (vm *VM) evalCond(c ast.Condition, env *Environment) bool {
	return compare(c.Op, Resolve(c.Left, env), Resolve(c.Right, env))
}

// resolveArg is Resolve plus string literals, which bind as their text.
func resolveArg(token string, caller *Environment) Value {
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		return Text(token[1 : len(token)-1])
	}
	return Resolve(token, caller)
}

// evalBinary never fails: "+" with a text side concatenates, every other
// combination that is not number op number yields undefined, and so does
// division by zero.
func evalBinary(op string, left, right Value) Value {
	if op == "+" && (left.kind == TextKind || right.kind == TextKind) {
		return Text(left.String() + right.String())
	}
	l, lok := left.Float64()
	r, rok := right.Float64()
	if !lok || !rok {
		return Undefined()
	}
	switch op {
	case "+":
		return Number(l + r)
	case "-":
		return Number(l - r)
	case "*":
		return Number(l * r)
	case "/":
		if r == 0 {
			return Undefined()
		}
		return Number(l / r)
	}
	return Undefined()
}

// compare orders numbers numerically and text lexically. Mixed kinds are
// never equal or ordered; undefined equals only undefined.
func compare(op string, left, right Value) bool {
	if left.kind != right.kind {
		return false
	}
	switch left.kind {
	case NumberKind:
		switch op {
		case "<":
			return left.n < right.n
		case ">":
			return left.n > right.n
		case "==":
			return left.n == right.n
		}
	case TextKind:
		switch op {
		case "<":
			return left.s < right.s
		case ">":
			return left.s > right.s
		case "==":
			return left.s == right.s
		}
	default:
		return op == "=="
	}
	return false
}
