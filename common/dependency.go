// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package common

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jwalton/gchalk"
)

// PackagePrefix is prepended to a crate name to form its RPM package name.
const PackagePrefix = "rust-"

type Dependency struct {
	Depth   int
	Name    string
	Version string
}

// IsRoot reports whether the dependency is the project being packaged.
func (d Dependency) IsRoot() bool {
	return d.Depth == 0
}

// Package is the RPM package name the dependency is built as.
func (d Dependency) Package() string {
	return PackagePrefix + d.Name
}

// Show is the toString method for a dependency.
//
// When `color` is true, the version and depth are shown in gray.
func (d Dependency) Show(color bool) string {
	if color {
		return d.Name + gchalk.Gray(fmt.Sprintf("@%s(%d)", d.Version, d.Depth))
	}
	return fmt.Sprintf("%s@%s(%d)", d.Name, d.Version, d.Depth)
}

// DependencyList is ordered so that deeper dependencies are built first.
type DependencyList []Dependency

// SortByDepth sorts the list by descending depth, keeping the relative order
// of dependencies at the same depth.
func (l DependencyList) SortByDepth() {
	slices.SortStableFunc(l, func(a, b Dependency) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

func (l DependencyList) Names() []string {
	names := make([]string, len(l))
	for i, dep := range l {
		names[i] = dep.Name
	}
	return names
}

// Root returns the index of the root dependency, or -1.
func (l DependencyList) Root() int {
	return slices.IndexFunc(l, Dependency.IsRoot)
}
