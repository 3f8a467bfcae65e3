package main

import (
	"context"

	fsruntime "github.com/gosuda/flatscript/runtime"
)

// runVM executes the script on its own goroutine and reports everything it
// does as messages on events. A read blocks until the UI answers on the
// prompt's resp channel or ctx is cancelled.
func runVM(ctx context.Context, app appConfig, events chan<- any) {
	defer close(events)
	vm, err := compileScript(app)
	if err != nil {
		events <- vmDoneMsg{err: err}
		return
	}

	vm.SetOutputHook(func(out fsruntime.Output) {
		select {
		case events <- vmOutputMsg{out: out}:
		case <-ctx.Done():
		}
	})
	vm.SetInputProvider(func(ctx context.Context, req fsruntime.InputRequest) (string, error) {
		resp := make(chan string, 1)
		select {
		case events <- vmPromptMsg{req: req, resp: resp}:
		case <-ctx.Done():
			return "", ctx.Err()
		}
		select {
		case v := <-resp:
			return v, nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})

	_, err = vm.Run(ctx)
	select {
	case events <- vmDoneMsg{err: err}:
	case <-ctx.Done():
	}
}
