// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"fmt"

	"github.com/DataDrake/waterlog"
	"github.com/GZGavinZhao/cargo2anda/common"
	"github.com/GZGavinZhao/cargo2anda/runner"
	"github.com/GZGavinZhao/cargo2anda/utils"
	"github.com/Masterminds/semver/v3"
	mapset "github.com/deckarep/golang-set/v2"
)

// Prober reports whether a crate version is already packaged.
type Prober interface {
	Exists(name, version string) (bool, error)
}

// Lister turns the project's dependency tree into the list of crates that
// still need packaging.
type Lister struct {
	runner  runner.Runner
	probe   Prober
	program string
	dir     string
	ignore  mapset.Set[string]

	// OnVisit, if set, is called for every crate considered.
	OnVisit func(name, version string)
	// OnKeep, if set, is called for every crate added to the list.
	OnKeep func(dep common.Dependency)
}

// NewLister returns a Lister running program (cargo by default) in dir.
// Crates named in ignore are never listed.
func NewLister(r runner.Runner, probe Prober, program string, dir string, ignore []string) *Lister {
	if program == "" {
		program = "cargo"
	}
	return &Lister{
		runner:  r,
		probe:   probe,
		program: program,
		dir:     dir,
		ignore:  mapset.NewThreadUnsafeSet(ignore...),
	}
}

// Tree runs cargo and parses its depth-prefixed output.
func (l *Lister) Tree() (entries []Entry, err error) {
	text, err := l.runner.Run(TreeArgs(l.program), l.dir)
	if err != nil {
		err = fmt.Errorf("cargo.Tree: failed to list dependencies: %w", err)
		return
	}

	return ParseTree(text)
}

// List returns the dependencies that are not yet packaged, deepest first.
func (l *Lister) List() (deps common.DependencyList, err error) {
	entries, err := l.Tree()
	if err != nil {
		return
	}
	waterlog.Debugf("cargo: dependency graph hash %s\n", NewGraph(entries).Hash())

	return l.Filter(entries)
}

// Filter drops repeated, duplicate, ignored and already packaged entries and
// sorts the rest by descending depth.
func (l *Lister) Filter(entries []Entry) (deps common.DependencyList, err error) {
	seen := mapset.NewThreadUnsafeSet[string]()
	versions := make(map[string]string)

	for _, e := range utils.Filter(entries, fresh) {
		if l.OnVisit != nil {
			l.OnVisit(e.Name, e.Version)
		}

		if !seen.Add(e.Name) {
			warnDivergence(e, versions[e.Name])
			continue
		}
		versions[e.Name] = e.Version

		if l.ignore.Contains(e.Name) {
			waterlog.Debugf("cargo: ignoring %s by configuration\n", e.Name)
			continue
		}

		// The root is always regenerated.
		if e.Depth > 0 {
			var packaged bool
			if packaged, err = l.probe.Exists(e.Name, e.Version); err != nil {
				return
			}
			if packaged {
				continue
			}
		}

		dep := common.Dependency{Depth: e.Depth, Name: e.Name, Version: e.Version}
		deps = append(deps, dep)
		if l.OnKeep != nil {
			l.OnKeep(dep)
		}
	}

	deps.SortByDepth()
	return
}

// fresh reports whether e is not a repetition of an already expanded subtree.
func fresh(e Entry) bool {
	return !e.Repeated()
}

func warnDivergence(e Entry, recorded string) {
	if recorded == "" || recorded == e.Version {
		return
	}

	cur, err1 := semver.NewVersion(e.Version)
	prev, err2 := semver.NewVersion(recorded)
	if err1 != nil || err2 != nil {
		waterlog.Warnf("%s is required as both %s and %s, only %s will be packaged\n", e.Name, recorded, e.Version, recorded)
		return
	}

	if cur.Major() != prev.Major() || (cur.Major() == 0 && cur.Minor() != prev.Minor()) {
		waterlog.Warnf("%s is required at incompatible versions %s and %s, only %s will be packaged\n", e.Name, recorded, e.Version, recorded)
	} else {
		waterlog.Debugf("cargo: %s %s is also required as %s\n", e.Name, recorded, e.Version)
	}
}
