// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package anda

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/GZGavinZhao/cargo2anda/common"
	"github.com/GZGavinZhao/cargo2anda/utils"
	"github.com/charlievieth/fastwalk"
)

// Problem is an entry of an aggregate configuration that cannot be built.
type Problem struct {
	Name   string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Name, p.Reason)
}

type Report struct {
	Problems []Problem
	// Orphans are spec files under the root that no project refers to.
	Orphans []string
}

func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Verify checks every project of cfg against the spec files found under root.
func Verify(cfg *Config, root string) (report Report, err error) {
	specs, err := findSpecs(root)
	if err != nil {
		err = fmt.Errorf("anda.Verify: failed to walk %s: %w", root, err)
		return
	}

	referenced := make(map[string]bool)
	for _, p := range cfg.Projects() {
		rpm := p.RpmBuild
		referenced[filepath.Clean(rpm.Spec)] = true

		if rpm.Package != common.PackagePrefix+p.Name {
			report.Problems = append(report.Problems, Problem{p.Name, fmt.Sprintf("package %q should be %q", rpm.Package, common.PackagePrefix+p.Name)})
		}
		if !strings.HasPrefix(rpm.Spec, p.Name+"/") {
			report.Problems = append(report.Problems, Problem{p.Name, fmt.Sprintf("spec %q is not under %s/", rpm.Spec, p.Name)})
		}
		if !utils.PathExists(filepath.Join(root, rpm.Spec)) {
			report.Problems = append(report.Problems, Problem{p.Name, fmt.Sprintf("spec %s does not exist", rpm.Spec)})
		}
	}

	for _, spec := range specs {
		if !referenced[spec] {
			report.Orphans = append(report.Orphans, spec)
		}
	}
	return
}

// findSpecs returns the .spec files under root, relative to it and sorted.
func findSpecs(root string) (specs []string, err error) {
	walkConf := fastwalk.Config{
		Follow: false,
	}
	var mutex sync.Mutex

	err = fastwalk.Walk(&walkConf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".spec" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		mutex.Lock()
		specs = append(specs, rel)
		mutex.Unlock()
		return nil
	})

	slices.Sort(specs)
	return
}
