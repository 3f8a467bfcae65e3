package main

import (
	"fmt"
	"os"

	"github.com/gosuda/flatscript"
	fsruntime "github.com/gosuda/flatscript/runtime"
	"github.com/gosuda/flatscript/tokenize"
)

func loadScript(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tokens, err := tokenize.Split(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tokens, nil
}

func compileScript(app appConfig) (*fsruntime.VM, error) {
	tokens, err := loadScript(app.path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	vm, err := flatscript.Compile(tokens)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	app.cfg.Apply(vm)
	return vm, nil
}
