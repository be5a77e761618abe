// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/DataDrake/waterlog"
	"github.com/GZGavinZhao/cargo2anda/anda"
	"github.com/GZGavinZhao/cargo2anda/pipeline"
	"github.com/GZGavinZhao/cargo2anda/progress"
	"github.com/GZGavinZhao/cargo2anda/rust2rpm"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string) {
	e := mustSetup()
	rep := reporter()

	lister := e.lister()
	if s, ok := rep.(*progress.Spinner); ok {
		lister.OnVisit = func(name, version string) {
			s.Status(fmt.Sprintf("%s %s", name, version))
		}
	}

	conf := anda.New()
	driver := rust2rpm.NewDriver(e.runner, conf, e.cfg.Tools.Rust2rpm, e.dir)
	driver.BuildDeps = e.cfg.BuildDeps

	p := pipeline.Pipeline{
		Lister:    lister,
		Generator: driver,
		Config:    conf,
		Output:    filepath.Join(e.dir, anda.Filename),
		Progress:  rep,
	}
	if err := p.Run(); err != nil {
		waterlog.Fatalf("Failed to generate %s: %s\n", anda.Filename, err)
	}

	waterlog.Goodf("Wrote %d project(s) to %s\n", conf.Len(), p.Output)
}
