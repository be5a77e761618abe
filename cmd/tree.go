// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/DataDrake/waterlog"
	"github.com/GZGavinZhao/cargo2anda/cargo"
	"github.com/GZGavinZhao/cargo2anda/utils"
	"github.com/spf13/cobra"
)

var (
	dotPath  string
	tiers    bool
	rdeps    string
	maxDepth int

	cmdTree = &cobra.Command{
		Use:   "tree",
		Short: "Show the build order implied by the crate dependency graph",
		Long: `Parse the output of cargo tree into a dependency graph and print a
topological build order. Unlike a full run, no crate is filtered out.

For example: cargo2anda tree --tiers --rdeps memchr`,
		Run:  runTree,
		Args: cobra.NoArgs,
	}
)

func init() {
	cmdTree.Flags().StringVar(&dotPath, "dot", "", "store the dependency graph at the specified location in the DOT format")
	cmdTree.Flags().BoolVarP(&tiers, "tiers", "t", false, "output tier-ed build order")
	cmdTree.Flags().StringVar(&rdeps, "rdeps", "", "list the crates that depend on the given crate")
	cmdTree.Flags().IntVar(&maxDepth, "depth", 0, "maximum distance for --rdeps, 0 for no limit")
}

func runTree(cmd *cobra.Command, args []string) {
	e := mustSetup()

	entries, err := e.lister().Tree()
	if err != nil {
		waterlog.Fatalf("Failed to read dependency tree: %s\n", err)
	}
	g := cargo.NewGraph(entries)
	waterlog.Debugf("Dependency graph of %d crates, hash %s\n", g.Order(), g.Hash())

	if dotPath != "" {
		if err = writeDOT(g, dotPath); err != nil {
			waterlog.Fatalf("Failed to write DOT graph: %s\n", err)
		}
		waterlog.Goodf("Wrote dependency graph to %s\n", dotPath)
	}

	if rdeps != "" {
		printDependents(g)
		return
	}

	order, err := g.Tiers()
	if err != nil {
		var cerr cargo.QueryHasCyclesErr
		if errors.As(err, &cerr) {
			waterlog.Errorln("Graph contains cycles:")
			for cycleIdx, cycle := range cerr.Cycles {
				waterlog.Errorf("Cycle %d: %s\n", cycleIdx+1, strings.Join(cycle, " "))
			}
		}
		waterlog.Fatalf("Failed to compute build order: %s\n", err)
	}

	if tiers {
		for tierIdx, tier := range order {
			waterlog.Goodf("Tier %d: ", tierIdx+1)
			fmt.Println(strings.Join(tier, " "))
		}
	} else {
		waterlog.Good("Build order: ")
		fmt.Println(strings.Join(utils.Flatten(order), " "))
	}
}

func writeDOT(g *cargo.Graph, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return g.WriteDOT(f)
}

func printDependents(g *cargo.Graph) {
	deps, err := g.Dependents(rdeps, maxDepth)
	if err != nil {
		waterlog.Fatalf("%s\n", err)
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(deps[a], deps[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	waterlog.Goodf("%d crate(s) depend on %s:\n", len(names), rdeps)
	for _, name := range names {
		fmt.Printf("%s%s\n", strings.Repeat("  ", deps[name]), name)
	}
}
