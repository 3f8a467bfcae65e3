package main

import (
	"context"

	"github.com/gosuda/flatscript/config"
	fsruntime "github.com/gosuda/flatscript/runtime"
)

type appConfig struct {
	path string
	cfg  config.Config
}

type vmStartedMsg struct {
	events <-chan any
	cancel context.CancelFunc
}

type vmOutputMsg struct {
	out fsruntime.Output
}

type vmDoneMsg struct {
	err error
}

type vmPromptMsg struct {
	req  fsruntime.InputRequest
	resp chan string
}

type pendingInput struct {
	req  fsruntime.InputRequest
	resp chan string
}
