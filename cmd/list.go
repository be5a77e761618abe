// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/DataDrake/waterlog"
	"github.com/spf13/cobra"
)

var (
	namesOnly bool

	cmdList = &cobra.Command{
		Use:   "list",
		Short: "List the crates that would be packaged, in build order",
		Long: `List the crates of the dependency tree that are not provided by the
configured repositories, deepest first, without generating anything.

Every crate is queried with dnf repoquery, so this takes as long as the
listing phase of a full run.`,
		Run:  runList,
		Args: cobra.NoArgs,
	}
)

func init() {
	cmdList.Flags().BoolVar(&namesOnly, "names", false, "only print crate names")
}

func runList(cmd *cobra.Command, args []string) {
	e := mustSetup()

	deps, err := e.lister().List()
	if err != nil {
		waterlog.Fatalf("Failed to list dependencies: %s\n", err)
	}

	if namesOnly {
		for _, dep := range deps {
			fmt.Println(dep.Name)
		}
		return
	}

	waterlog.Goodf("%d crate(s) to package:\n", len(deps))
	for i, dep := range deps {
		fmt.Printf("%4d %s\n", i+1, dep.Show(true))
	}
}
