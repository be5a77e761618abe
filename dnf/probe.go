// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package dnf

import (
	"fmt"
	"regexp"

	"github.com/DataDrake/waterlog"
	"github.com/GZGavinZhao/cargo2anda/runner"
)

var (
	// A line made only of characters allowed in an NEVRA is a package.
	pkgLine = regexp.MustCompile(`(?m)^[\w\-:.]+$`)
)

// Probe asks the configured repositories whether a crate is already packaged.
type Probe struct {
	runner  runner.Runner
	program string
}

// NewProbe returns a Probe running program, dnf by default.
func NewProbe(r runner.Runner, program string) *Probe {
	if program == "" {
		program = "dnf"
	}
	return &Probe{runner: r, program: program}
}

// Exists reports whether any package provides crate(name) = version.
func (p *Probe) Exists(name, version string) (bool, error) {
	out, err := p.runner.Run(p.argv(name, version), ".")
	if err != nil {
		return false, fmt.Errorf("dnf.Exists: failed to query %s %s: %w", name, version, err)
	}

	found := HasPackage(out)
	if found {
		waterlog.Debugf("dnf: %s %s is already packaged\n", name, version)
	}
	return found, nil
}

func (p *Probe) argv(name, version string) []string {
	return []string{p.program, "repoquery", "--whatprovides", Provide(name, version)}
}

// Provide is the RPM provide a crate is packaged under.
func Provide(name, version string) string {
	return fmt.Sprintf("crate(%s) = %s", name, version)
}

// HasPackage reports whether repoquery output names at least one package.
func HasPackage(out string) bool {
	return pkgLine.MatchString(out)
}
