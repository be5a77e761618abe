// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"runtime/debug"

	"github.com/DataDrake/waterlog"
	"github.com/DataDrake/waterlog/format"
	"github.com/GZGavinZhao/cargo2anda/config"
	"github.com/spf13/cobra"
)

var (
	GitCommit = func() string {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					return setting.Value
				}
			}
		}
		return ""
	}()

	rootCmd = &cobra.Command{
		Use:   "cargo2anda",
		Short: "Generate RPM specs and an Andaman config for a crate's dependencies.",
		Long: `Run inside a Rust project. Every crate in the project's dependency tree
that the configured repositories do not already provide gets a spec generated
by rust2rpm in a directory named after it; the project itself is generated in
place. The result is described in anda.hcl, deepest dependencies first.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			waterlog.SetFormat(format.Min)
			if quiet {
				waterlog.SetLevel(0)
			} else if verbose {
				waterlog.SetLevel(7)
			} else {
				waterlog.SetLevel(6)
			}
		},
		Run:     runGenerate,
		Args:    cobra.NoArgs,
		Version: "0.0.0+" + GitCommit,
	}
)

func init() {
	rootCmd.AddCommand(cmdList)
	rootCmd.AddCommand(cmdTree)
	rootCmd.AddCommand(cmdCheck)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", "", "project directory (default: current directory)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to "+config.Filename+" (default: inside the project directory)")
}

func Execute() {
	// cobra has already printed the error
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
