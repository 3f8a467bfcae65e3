package fsruntime

import (
	"context"
	"fmt"
	"strings"

	"github.com/edwingeng/deque"
	"github.com/gosuda/flatscript/ast"
)

const (
	DefaultPrompt = "Enter the value of {name}: "
	maxCallDepth  = 4096
)

type Output struct {
	Text  string `json:"text"`
	Input bool   `json:"input,omitempty"`
}

// ReturnMode selects what if/while/for do with a return signal raised in
// their body.
type ReturnMode int

const (
	// ReturnDiscard stops the current pass through the block and drops the
	// signal; loops go on to re-check their condition.
	ReturnDiscard ReturnMode = iota
	// ReturnPropagate hands the signal up to the enclosing function call.
	ReturnPropagate
)

func (m ReturnMode) String() string {
	if m == ReturnPropagate {
		return "propagate"
	}
	return "discard"
}

func ParseReturnMode(raw string) (ReturnMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "discard":
		return ReturnDiscard, nil
	case "propagate":
		return ReturnPropagate, nil
	}
	return ReturnDiscard, fmt.Errorf("unknown return mode %q (want discard|propagate)", raw)
}

type VM struct {
	program       *ast.Program
	globals       *Environment
	functions     *FunctionTable
	depth         int
	outputs       []Output
	outputHook    func(Output)
	inputProvider InputProvider
	input         deque.Deque
	echoInput     bool
	returnMode    ReturnMode
	prompt        string
	ctx           context.Context
}

type resultKind int

const (
	resultNone resultKind = iota
	resultReturn
)

// execResult is the completion of a statement. A return carries its
// expression unevaluated; the call boundary evaluates it in the callee frame.
type execResult struct {
	kind  resultKind
	value ast.Expr
}

func New(program *ast.Program) (*VM, error) {
	if program == nil {
		return nil, fmt.Errorf("nil program")
	}
	return &VM{
		program:   program,
		globals:   NewEnvironment(),
		functions: NewFunctionTable(),
		input:     deque.NewDeque(),
		prompt:    DefaultPrompt,
	}, nil
}

func (vm *VM) SetOutputHook(hook func(Output)) {
	vm.outputHook = hook
}

func (vm *VM) SetReturnMode(mode ReturnMode) {
	vm.returnMode = mode
}

// SetPrompt replaces the read prompt; "{name}" expands to the variable name.
func (vm *VM) SetPrompt(tmpl string) {
	if tmpl == "" {
		tmpl = DefaultPrompt
	}
	vm.prompt = tmpl
}

// Run executes the top-level statements in a fresh global frame and function
// table. Nothing a top-level return carries escapes.
func (vm *VM) Run(ctx context.Context) ([]Output, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	vm.ctx = ctx
	vm.outputs = vm.outputs[:0]
	vm.globals = NewEnvironment()
	vm.functions = NewFunctionTable()
	vm.depth = 0
	for _, stmt := range vm.program.Body {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := vm.runStatement(stmt, vm.globals); err != nil {
			return nil, err
		}
	}
	return append([]Output(nil), vm.outputs...), nil
}

func (vm *VM) Globals() map[string]Value {
	return vm.globals.snapshot()
}

func (vm *VM) Functions() []string {
	return vm.functions.Names()
}

func (vm *VM) emitOutput(out Output) {
	vm.outputs = append(vm.outputs, out)
	if vm.outputHook != nil {
		vm.outputHook(out)
	}
}

func (vm *VM) runBlock(stmts []ast.Statement, env *Environment) (execResult, error) {
	for _, stmt := range stmts {
		if err := vm.ctx.Err(); err != nil {
			return execResult{}, err
		}
		res, err := vm.runStatement(stmt, env)
		if err != nil {
			return execResult{}, err
		}
		if res.kind == resultReturn {
			return res, nil
		}
	}
	return execResult{kind: resultNone}, nil
}

// nested decides what an if/while/for body's completion turns into.
func (vm *VM) nested(res execResult) (execResult, bool) {
	if res.kind == resultReturn && vm.returnMode == ReturnPropagate {
		return res, true
	}
	return execResult{kind: resultNone}, false
}

func (vm *VM) runStatement(stmt ast.Statement, env *Environment) (execResult, error) {
	switch s := stmt.(type) {
	case ast.DeclareStmt:
		v, err := vm.evalExpr(s.Value, env)
		if err != nil {
			return execResult{}, err
		}
		env.Set(s.Name, v)
	case ast.AssignStmt:
		v, err := vm.evalExpr(s.Value, env)
		if err != nil {
			return execResult{}, err
		}
		env.Set(s.Name, v)
	case ast.PrintStmt:
		text := s.Token
		if v, ok := env.Get(s.Token); ok {
			text = v.String()
		}
		vm.emitOutput(Output{Text: text})
	case ast.ReadStmt:
		raw, err := vm.resolveInput(InputRequest{Name: s.Name, Prompt: vm.promptFor(s.Name)})
		if err != nil {
			return execResult{}, fmt.Errorf("read %s: %w", s.Name, err)
		}
		env.Set(s.Name, ParseInput(raw))
	case ast.IfStmt:
		body := s.Else
		if vm.evalCond(s.Cond, env) {
			body = s.Then
		}
		if body == nil {
			return execResult{kind: resultNone}, nil
		}
		res, err := vm.runBlock(body, env)
		if err != nil {
			return execResult{}, err
		}
		res, _ = vm.nested(res)
		return res, nil
	case ast.WhileStmt:
		for vm.evalCond(s.Cond, env) {
			res, err := vm.runBlock(s.Body, env)
			if err != nil {
				return execResult{}, err
			}
			if res, ok := vm.nested(res); ok {
				return res, nil
			}
			if err := vm.ctx.Err(); err != nil {
				return execResult{}, err
			}
		}
	case ast.ForStmt:
		if _, err := vm.runStatement(s.Init, env); err != nil {
			return execResult{}, err
		}
		for vm.evalCond(s.Cond, env) {
			res, err := vm.runBlock(s.Body, env)
			if err != nil {
				return execResult{}, err
			}
			if res, ok := vm.nested(res); ok {
				return res, nil
			}
			if err := vm.ctx.Err(); err != nil {
				return execResult{}, err
			}
			if _, err := vm.runStatement(s.Inc, env); err != nil {
				return execResult{}, err
			}
		}
	case ast.FunctionStmt:
		vm.functions.Define(s)
	case ast.CallStmt:
		if _, err := vm.callFunction(s.Name, s.Args, env); err != nil {
			return execResult{}, err
		}
	case ast.ReturnStmt:
		return execResult{kind: resultReturn, value: s.Value}, nil
	default:
		return execResult{}, fmt.Errorf("unsupported statement %T", stmt)
	}
	return execResult{kind: resultNone}, nil
}

func (vm *VM) callFunction(name string, args []string, caller *Environment) (Value, error) {
	fn, ok := vm.functions.Lookup(name)
	if !ok {
		return Value{}, &FunctionNotFoundError{Name: name}
	}
	if vm.depth >= maxCallDepth {
		return Value{}, fmt.Errorf("%s: %w", name, ErrCallDepth)
	}
	vm.depth++
	defer func() { vm.depth-- }()

	frame := NewEnvironment()
	for i, param := range fn.Params {
		if i < len(args) {
			frame.Set(param, resolveArg(args[i], caller))
		}
	}
	res, err := vm.runBlock(fn.Body, frame)
	if err != nil {
		return Value{}, err
	}
	if res.kind == resultReturn {
		return vm.evalExpr(res.value, frame)
	}
	return Undefined(), nil
}

func (vm *VM) promptFor(name string) string {
	return strings.ReplaceAll(vm.prompt, "{name}", name)
}
