// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"

	"github.com/DataDrake/waterlog"
	"github.com/GZGavinZhao/cargo2anda/anda"
	"github.com/spf13/cobra"
)

var (
	cmdCheck = &cobra.Command{
		Use:   "check [path-to-anda.hcl]",
		Short: "Check that an Andaman config matches the generated specs",
		Long: `Load an anda.hcl written by cargo2anda and check every project against the
project directory: the package must be rust-<name>, the spec must live in the
directory named after the crate and must exist. Spec files that no project
refers to are reported as well.`,
		Run:  runCheck,
		Args: cobra.MaximumNArgs(1),
	}
)

func runCheck(cmd *cobra.Command, args []string) {
	e := mustSetup()

	path := filepath.Join(e.dir, anda.Filename)
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := anda.Load(path)
	if err != nil {
		waterlog.Fatalf("Failed to load %s: %s\n", path, err)
	}
	waterlog.Goodf("Successfully parsed %s with %d project(s)!\n", path, cfg.Len())

	report, err := anda.Verify(cfg, filepath.Dir(path))
	if err != nil {
		waterlog.Fatalf("Failed to verify %s: %s\n", path, err)
	}

	for _, orphan := range report.Orphans {
		waterlog.Warnf("Spec %s is not referenced by any project\n", orphan)
	}
	for _, problem := range report.Problems {
		waterlog.Errorf("%s\n", problem)
	}

	if !report.OK() {
		waterlog.Fatalf("%d problem(s) found\n", len(report.Problems))
	}
	waterlog.Goodln("All projects are buildable!")
}
