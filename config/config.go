// Package config loads optional flatscript settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	fsruntime "github.com/gosuda/flatscript/runtime"
)

const (
	ModeAuto  = "auto"
	ModePlain = "plain"
	ModeTUI   = "tui"
)

type Config struct {
	ReturnMode fsruntime.ReturnMode
	Prompt     string
	Mode       string
}

type file struct {
	ReturnMode string `yaml:"return_mode"`
	Prompt     string `yaml:"prompt"`
	Mode       string `yaml:"mode"`
}

func Default() Config {
	return Config{
		ReturnMode: fsruntime.ReturnDiscard,
		Prompt:     fsruntime.DefaultPrompt,
		Mode:       ModeAuto,
	}
}

// Load reads path; an empty file yields the defaults. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw file
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	cfg := Default()
	if err := cfg.SetReturnMode(raw.ReturnMode); err != nil {
		return Config{}, err
	}
	if raw.Prompt != "" {
		cfg.Prompt = raw.Prompt
	}
	if err := cfg.SetMode(raw.Mode); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) SetReturnMode(raw string) error {
	mode, err := fsruntime.ParseReturnMode(raw)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.ReturnMode = mode
	return nil
}

func (c *Config) SetMode(raw string) error {
	switch m := strings.ToLower(strings.TrimSpace(raw)); m {
	case "":
		return nil
	case ModeAuto, ModePlain, ModeTUI:
		c.Mode = m
		return nil
	}
	return fmt.Errorf("config: unknown mode %q (want auto|plain|tui)", raw)
}

// Apply copies the interpreter settings onto vm.
func (c Config) Apply(vm *fsruntime.VM) {
	vm.SetReturnMode(c.ReturnMode)
	vm.SetPrompt(c.Prompt)
}
