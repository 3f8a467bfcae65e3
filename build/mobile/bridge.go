package mobile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuda/flatscript"
	fsruntime "github.com/gosuda/flatscript/runtime"
	"github.com/gosuda/flatscript/tokenize"
)

type runResult struct {
	Outputs []fsruntime.Output `json:"outputs"`
	Error   string             `json:"error,omitempty"`
}

// Run executes script source and returns a JSON result.
// inputsJSON format: ["1","hello", ...], answered to read statements in order.
// returnMode is "discard" (default) or "propagate".
func Run(source, inputsJSON, returnMode string) string {
	result := runResult{Outputs: nil}

	if strings.TrimSpace(source) == "" {
		result.Error = "no source provided"
		return encode(result)
	}

	var queued []string
	if strings.TrimSpace(inputsJSON) != "" {
		if err := json.Unmarshal([]byte(inputsJSON), &queued); err != nil {
			result.Error = fmt.Sprintf("invalid inputs json: %v", err)
			return encode(result)
		}
	}

	mode, err := fsruntime.ParseReturnMode(returnMode)
	if err != nil {
		result.Error = err.Error()
		return encode(result)
	}

	tokens, err := tokenize.Split(source)
	if err != nil {
		result.Error = fmt.Sprintf("tokenize: %v", err)
		return encode(result)
	}
	vm, err := flatscript.Compile(tokens)
	if err != nil {
		result.Error = fmt.Sprintf("compile: %v", err)
		return encode(result)
	}
	vm.SetReturnMode(mode)
	vm.SetEchoInput(true)
	vm.EnqueueInput(queued...)

	out, err := vm.Run(context.Background())
	if err != nil {
		result.Error = fmt.Sprintf("runtime: %v", err)
	} else {
		result.Outputs = out
	}
	return encode(result)
}

func encode(result runResult) string {
	b, _ := json.Marshal(result)
	return string(b)
}
