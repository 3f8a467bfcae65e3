package fsruntime

import (
	"errors"
	"fmt"
)

var (
	ErrInputUnavailable = errors.New("no input available")
	ErrCallDepth        = errors.New("call depth limit exceeded")
)

// FunctionNotFoundError aborts a run when a call names no definition.
type FunctionNotFoundError struct {
	Name string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("function %s not found", e.Name)
}
