// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"errors"
	"fmt"
	"slices"

	"github.com/DataDrake/waterlog"
	"github.com/GZGavinZhao/cargo2anda/anda"
	"github.com/GZGavinZhao/cargo2anda/common"
	"github.com/GZGavinZhao/cargo2anda/progress"
	"github.com/GZGavinZhao/cargo2anda/utils"
)

var (
	ErrRootNotLast = errors.New("pipeline: root project is not the last dependency to build")
)

type Lister interface {
	List() (common.DependencyList, error)
}

type Generator interface {
	Generate(dep common.Dependency) (string, error)
}

// Pipeline lists the project's unpackaged dependencies, generates a spec for
// each one, deepest first, and writes the aggregate configuration.
type Pipeline struct {
	Lister    Lister
	Generator Generator
	// Config receives the generated projects. Generator must record into it.
	Config   *anda.Config
	Output   string
	Progress progress.Reporter
}

func (p *Pipeline) Run() (err error) {
	if p.Progress == nil {
		p.Progress = progress.Nop{}
	}

	p.Progress.Println("Gathering deps")
	deps, err := p.Lister.List()
	if err != nil {
		return
	}
	deps.SortByDepth()

	// A workspace has one root per member; only the first is generated.
	if root := deps.Root(); root != -1 && slices.ContainsFunc(deps[root:], notRoot) {
		return ErrRootNotLast
	}

	p.Progress.Println("Will build:")
	for _, dep := range deps {
		p.Progress.Println(" " + dep.Show(false))
	}

	for i, dep := range deps {
		p.Progress.Status(fmt.Sprintf("[%d/%d] Generating specs: %s", i+1, len(deps), dep.Name))

		if _, err = p.Generator.Generate(dep); err != nil {
			p.Progress.Done(false, fmt.Sprintf("Failed to generate spec for %s", dep.Name))
			return
		}

		if dep.IsRoot() {
			break
		}
	}
	p.Progress.Done(true, fmt.Sprintf("Generated %d spec(s)", p.Config.Len()))

	p.Progress.Println("Generating Andaman cfg")
	p.reportChanges()
	return p.Config.Emit(p.Output)
}

func notRoot(dep common.Dependency) bool {
	return !dep.IsRoot()
}

// reportChanges logs how the new configuration differs from the one being
// replaced, if any.
func (p *Pipeline) reportChanges() {
	if !utils.PathExists(p.Output) {
		return
	}

	old, err := anda.Load(p.Output)
	if err != nil {
		waterlog.Warnf("Replacing unreadable %s: %s\n", p.Output, err)
		return
	}

	for _, diff := range anda.Differences(old, p.Config) {
		switch diff.Kind {
		case anda.Added:
			waterlog.Infof("New: %s: %s\n", diff.Name, diff.New.Spec)
		case anda.Removed:
			waterlog.Infof("Removed: %s: %s\n", diff.Name, diff.Old.Spec)
		default:
			waterlog.Infof("Changed: %s: %s -> %s\n", diff.Name, diff.Old.Spec, diff.New.Spec)
		}
	}
}
