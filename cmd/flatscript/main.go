package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/gosuda/flatscript/config"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	mode := flag.String("mode", "", "frontend: auto|plain|tui (default auto)")
	returnMode := flag.String("return", "", "return inside if/while/for: discard|propagate (default discard)")
	prompt := flag.String("prompt", "", "read prompt template, {name} is replaced by the variable")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: flatscript [flags] <script>")
		flag.PrintDefaults()
	}
	flag.Parse()

	color.NoColor = !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fail(err)
		}
		cfg = loaded
	}
	if *mode != "" {
		if err := cfg.SetMode(*mode); err != nil {
			fail(err)
		}
	}
	if *returnMode != "" {
		if err := cfg.SetReturnMode(*returnMode); err != nil {
			fail(err)
		}
	}
	if *prompt != "" {
		cfg.Prompt = *prompt
	}

	app := appConfig{path: flag.Arg(0), cfg: cfg}
	if err := run(app); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fail(err)
	}
}

func run(app appConfig) error {
	if useTUI(app.cfg.Mode) {
		return runTUI(app)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runPlain(ctx, app, os.Stdin, os.Stdout)
}

func useTUI(mode string) bool {
	switch mode {
	case config.ModeTUI:
		return true
	case config.ModePlain:
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func fail(err error) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
