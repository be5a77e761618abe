package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DataDrake/waterlog"
	"github.com/GZGavinZhao/cargo2anda/cargo"
	"github.com/GZGavinZhao/cargo2anda/config"
	"github.com/GZGavinZhao/cargo2anda/dnf"
	"github.com/GZGavinZhao/cargo2anda/progress"
	"github.com/GZGavinZhao/cargo2anda/runner"
	"github.com/fatih/color"
)

var (
	quiet      bool
	verbose    bool
	projectDir string
	configPath string
)

// env is what every command needs to talk to the project and the tools.
type env struct {
	dir    string
	cfg    config.Cargo2AndaConfig
	runner runner.Runner
}

func setup() (e env, err error) {
	if projectDir == "" {
		e.dir, err = os.Getwd()
	} else {
		e.dir, err = filepath.Abs(projectDir)
	}
	if err != nil {
		err = fmt.Errorf("failed to resolve the project directory: %w", err)
		return
	}

	path := configPath
	if path == "" {
		path = filepath.Join(e.dir, config.Filename)
		e.cfg, err = config.LoadOptional(path)
	} else {
		e.cfg, err = config.Load(path)
	}
	if err != nil {
		err = fmt.Errorf("failed to load config %s: %w", path, err)
		return
	}

	e.runner = runner.Exec{}
	return
}

func mustSetup() env {
	e, err := setup()
	if err != nil {
		waterlog.Fatalf("%s\n", err)
	}
	return e
}

func (e env) lister() *cargo.Lister {
	probe := dnf.NewProbe(e.runner, e.cfg.Tools.Dnf)
	return cargo.NewLister(e.runner, probe, e.cfg.Tools.Cargo, e.dir, e.cfg.Ignore)
}

func reporter() progress.Reporter {
	if quiet {
		return progress.Nop{}
	} else if color.NoColor {
		return progress.Plain{W: os.Stdout}
	}
	return progress.NewSpinner(os.Stdout)
}
