package fsruntime

import "context"

type InputRequest struct {
	Name   string
	Prompt string
}

// InputProvider blocks until a line is available for req. The returned
// text must not include the line terminator.
type InputProvider func(ctx context.Context, req InputRequest) (string, error)

func (vm *VM) SetInputProvider(p InputProvider) {
	vm.inputProvider = p
}

// SetEchoInput records queued answers in the output stream as
// "<prompt><value>" lines so a transcript shows what was read.
func (vm *VM) SetEchoInput(on bool) {
	vm.echoInput = on
}

// EnqueueInput queues answers that are consumed before the provider is
// asked, in FIFO order.
func (vm *VM) EnqueueInput(values ...string) {
	for _, v := range values {
		vm.input.PushBack(v)
	}
}

func (vm *VM) PendingInput() int {
	return vm.input.Len()
}

func (vm *VM) consumeQueuedInput() (string, bool) {
	if vm.input.Empty() {
		return "", false
	}
	return vm.input.PopFront().(string), true
}

func (vm *VM) resolveInput(req InputRequest) (string, error) {
	if raw, ok := vm.consumeQueuedInput(); ok {
		if vm.echoInput {
			vm.emitOutput(Output{Text: req.Prompt + raw, Input: true})
		}
		return raw, nil
	}
	if vm.inputProvider == nil {
		return "", ErrInputUnavailable
	}
	return vm.inputProvider(vm.ctx, req)
}
