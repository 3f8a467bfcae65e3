package flatscript

import (
	"github.com/gosuda/flatscript/ast"
	"github.com/gosuda/flatscript/parser"
	fsruntime "github.com/gosuda/flatscript/runtime"
)

// Compile parses a token sequence and builds a VM instance for it.
func Compile(tokens []string) (*fsruntime.VM, error) {
	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return fsruntime.New(program)
}

// Parse only returns AST program for tooling use.
func Parse(tokens []string) (*ast.Program, error) {
	return parser.Parse(tokens)
}
