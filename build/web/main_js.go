//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"

	"github.com/gosuda/flatscript"
	fsruntime "github.com/gosuda/flatscript/runtime"
	"github.com/gosuda/flatscript/tokenize"
)

type runResult struct {
	Outputs []fsruntime.Output `json:"outputs"`
	Error   string             `json:"error,omitempty"`
}

type inputRequestPayload struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

const abortSentinel = "__FLATSCRIPT_ABORT__"

// inputPrompt asks the page through flatscriptInputNext(payloadJSON) once the
// queued inputs run out.
func inputPrompt(ctx context.Context, req fsruntime.InputRequest) (string, error) {
	fn := js.Global().Get("flatscriptInputNext")
	if fn.Type() != js.TypeFunction {
		return "", fsruntime.ErrInputUnavailable
	}
	b, _ := json.Marshal(inputRequestPayload{Name: req.Name, Prompt: req.Prompt})
	v := fn.Invoke(string(b))
	if v.IsUndefined() || v.IsNull() {
		return "", fsruntime.ErrInputUnavailable
	}
	out := v.String()
	if strings.TrimSpace(out) == abortSentinel {
		return "", fmt.Errorf("input aborted for %s", req.Name)
	}
	return out, nil
}

func runScript(this js.Value, args []js.Value) any {
	result := runResult{Outputs: nil}
	if len(args) < 1 {
		result.Error = "flatscriptRun requires source text"
		b, _ := json.Marshal(result)
		return string(b)
	}

	tokens, err := tokenize.Split(args[0].String())
	if err != nil {
		result.Error = fmt.Sprintf("tokenize: %v", err)
		b, _ := json.Marshal(result)
		return string(b)
	}

	var queued []string
	if len(args) > 1 {
		if strings.TrimSpace(args[1].String()) != "" {
			if err := json.Unmarshal([]byte(args[1].String()), &queued); err != nil {
				result.Error = fmt.Sprintf("invalid inputs json: %v", err)
				b, _ := json.Marshal(result)
				return string(b)
			}
		}
	}

	mode := fsruntime.ReturnDiscard
	if len(args) > 2 {
		m, err := fsruntime.ParseReturnMode(args[2].String())
		if err != nil {
			result.Error = err.Error()
			b, _ := json.Marshal(result)
			return string(b)
		}
		mode = m
	}

	vm, err := flatscript.Compile(tokens)
	if err != nil {
		result.Error = fmt.Sprintf("compile: %v", err)
		b, _ := json.Marshal(result)
		return string(b)
	}
	vm.SetReturnMode(mode)
	vm.SetEchoInput(true)
	vm.EnqueueInput(queued...)
	vm.SetInputProvider(inputPrompt)

	out, err := vm.Run(context.Background())
	if err != nil {
		result.Error = fmt.Sprintf("runtime: %v", err)
	} else {
		result.Outputs = out
	}

	b, _ := json.Marshal(result)
	return string(b)
}

func main() {
	js.Global().Set("flatscriptRun", js.FuncOf(runScript))
	select {}
}
