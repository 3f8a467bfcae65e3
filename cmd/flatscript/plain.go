package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	fsruntime "github.com/gosuda/flatscript/runtime"
)

func runPlain(ctx context.Context, app appConfig, in io.Reader, out io.Writer) error {
	vm, err := compileScript(app)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(in)

	vm.SetOutputHook(func(o fsruntime.Output) {
		fmt.Fprintln(out, o.Text)
	})

	vm.SetInputProvider(func(ctx context.Context, req fsruntime.InputRequest) (string, error) {
		fmt.Fprint(out, req.Prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", err
			}
			if line == "" {
				return "", fsruntime.ErrInputUnavailable
			}
		}
		return strings.TrimRight(line, "\r\n"), nil
	})

	if _, err := vm.Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
