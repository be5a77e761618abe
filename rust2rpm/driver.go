// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package rust2rpm

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/DataDrake/waterlog"
	"github.com/GZGavinZhao/cargo2anda/anda"
	"github.com/GZGavinZhao/cargo2anda/common"
	"github.com/GZGavinZhao/cargo2anda/runner"
	"github.com/GZGavinZhao/cargo2anda/utils"
)

var (
	generated = regexp.MustCompile(`Generated: (.+\.spec)`)

	ErrNoSpecs = errors.New("No specs generated")
)

// Driver runs rust2rpm for each dependency and records the generated specs
// into an aggregate configuration.
type Driver struct {
	runner  runner.Runner
	conf    *anda.Config
	program string
	dir     string

	// BuildDeps are recorded as the build_deps of the matching crate.
	BuildDeps map[string][]string
}

// NewDriver returns a Driver that generates specs under dir and records
// them in conf.
func NewDriver(r runner.Runner, conf *anda.Config, program string, dir string) *Driver {
	if program == "" {
		program = "rust2rpm"
	}
	return &Driver{runner: r, conf: conf, program: program, dir: dir}
}

// Generate produces the spec of dep and returns its file name. The root
// project is generated in place, every other crate in a directory named after
// it.
func (d *Driver) Generate(dep common.Dependency) (specfile string, err error) {
	var argv []string
	cwd := d.dir

	if dep.IsRoot() {
		argv = []string{d.program, "."}
	} else {
		cwd = filepath.Join(d.dir, dep.Name)
		if err = utils.EnsureDir(cwd); err != nil {
			err = fmt.Errorf("rust2rpm.Generate: failed to prepare directory for %s: %w", dep.Name, err)
			return
		}
		argv = []string{d.program, dep.Name, dep.Version}
	}

	output, err := d.runner.FullRun(argv, cwd)
	if err != nil {
		err = fmt.Errorf("rust2rpm.Generate: failed to generate spec for %s: %w", dep.Name, err)
		return
	}

	specfile, err = ParseGenerated(output)
	if err != nil {
		err = fmt.Errorf("rust2rpm.Generate: %s: %w", dep.Name, err)
		return
	}

	waterlog.Debugf("rust2rpm: %s -> %s\n", dep.Name, specfile)
	d.conf.Add(dep.Name, specfile, d.BuildDeps[dep.Name])
	return
}

// ParseGenerated extracts the spec file name from rust2rpm's output.
func ParseGenerated(output string) (string, error) {
	m := generated.FindStringSubmatch(output)
	if m == nil {
		return "", ErrNoSpecs
	}
	return filepath.Base(m[1]), nil
}
