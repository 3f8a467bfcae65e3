package fsruntime

import (
	"sort"

	"github.com/gosuda/flatscript/ast"
)

// Environment is a single frame of bindings. Frames never chain: a function
// body sees its parameters and locals only.
type Environment struct {
	vars map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{vars: map[string]Value{}}
}

func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, v Value) {
	e.vars[name] = v
}

func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (e *Environment) snapshot() map[string]Value {
	cp := make(map[string]Value, len(e.vars))
	for k, v := range e.vars {
		cp[k] = v
	}
	return cp
}

// FunctionTable is the single global function namespace; the last
// definition of a name wins.
type FunctionTable struct {
	funcs map[string]*ast.FunctionStmt
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{funcs: map[string]*ast.FunctionStmt{}}
}

func (t *FunctionTable) Define(fn ast.FunctionStmt) {
	t.funcs[fn.Name] = &fn
}

func (t *FunctionTable) Lookup(name string) (*ast.FunctionStmt, bool) {
	fn, ok := t.funcs[name]
	return fn, ok
}

func (t *FunctionTable) Names() []string {
	names := make([]string, 0, len(t.funcs))
	for k := range t.funcs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
