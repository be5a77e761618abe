// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package anda

import "slices"

type DiffKind int

const (
	Added DiffKind = iota
	Removed
	Changed
)

func (k DiffKind) String() string {
	switch k {
	case Added:
		return "New"
	case Removed:
		return "Removed"
	default:
		return "Changed"
	}
}

type Diff struct {
	Name string
	Kind DiffKind
	Old  RpmBuild
	New  RpmBuild
}

// Differences compares two configurations project by project. Changed
// projects are reported in the order of cur, removed ones last.
func Differences(old *Config, cur *Config) (res []Diff) {
	for _, p := range cur.Projects() {
		oldP, found := old.Get(p.Name)

		if !found {
			res = append(res, Diff{Name: p.Name, Kind: Added, New: p.RpmBuild})
		} else if !oldP.RpmBuild.Equal(p.RpmBuild) {
			res = append(res, Diff{Name: p.Name, Kind: Changed, Old: oldP.RpmBuild, New: p.RpmBuild})
		}
	}

	for _, p := range old.Projects() {
		if _, found := cur.Get(p.Name); !found {
			res = append(res, Diff{Name: p.Name, Kind: Removed, Old: p.RpmBuild})
		}
	}

	return
}

func (r RpmBuild) Equal(o RpmBuild) bool {
	return r.Spec == o.Spec && r.Package == o.Package && slices.Equal(r.BuildDeps, o.BuildDeps)
}
