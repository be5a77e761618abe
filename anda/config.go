// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package anda

import (
	"fmt"
	"os"
	"path"
	"slices"

	"github.com/GZGavinZhao/cargo2anda/common"
	"github.com/GZGavinZhao/cargo2anda/utils"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Filename is the name the downstream orchestrator looks for.
const Filename = "anda.hcl"

type RpmBuild struct {
	Spec      string   `hcl:"spec"`
	Package   string   `hcl:"package"`
	BuildDeps []string `hcl:"build_deps"`
}

type Project struct {
	Name     string   `hcl:"name,label"`
	RpmBuild RpmBuild `hcl:"rpmbuild,block"`
}

type file struct {
	Projects []Project `hcl:"project,block"`
}

// Config maps crate names to how their generated spec is built. Projects are
// kept in insertion order.
type Config struct {
	order    []string
	projects map[string]Project
}

// New returns an empty configuration.
func New() *Config {
	return &Config{projects: make(map[string]Project)}
}

// Add inserts or replaces the project for name, whose spec file specfile was
// generated in the directory named after it.
func (c *Config) Add(name string, specfile string, buildDeps []string) {
	if _, ok := c.projects[name]; !ok {
		c.order = append(c.order, name)
	}
	if buildDeps == nil {
		buildDeps = []string{}
	}

	c.projects[name] = Project{
		Name: name,
		RpmBuild: RpmBuild{
			Spec:      path.Join(name, specfile),
			Package:   common.PackagePrefix + name,
			BuildDeps: buildDeps,
		},
	}
}

func (c *Config) Get(name string) (p Project, ok bool) {
	p, ok = c.projects[name]
	return
}

func (c *Config) Len() int {
	return len(c.order)
}

// Names returns the project names in insertion order.
func (c *Config) Names() []string {
	return slices.Clone(c.order)
}

func (c *Config) Projects() []Project {
	return utils.Map(c.order, func(name string) Project { return c.projects[name] })
}

// Bytes renders the configuration as HCL.
func (c *Config) Bytes() []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for i, p := range c.Projects() {
		if i > 0 {
			root.AppendNewline()
		}

		block := root.AppendNewBlock("project", []string{p.Name})
		rpm := block.Body().AppendNewBlock("rpmbuild", nil).Body()
		rpm.SetAttributeValue("spec", cty.StringVal(p.RpmBuild.Spec))
		rpm.SetAttributeValue("package", cty.StringVal(p.RpmBuild.Package))
		rpm.SetAttributeValue("build_deps", stringList(p.RpmBuild.BuildDeps))
	}

	return hclwrite.Format(f.Bytes())
}

// Emit writes the configuration to path, replacing any existing content.
func (c *Config) Emit(path string) error {
	if err := os.WriteFile(path, c.Bytes(), 0o644); err != nil {
		return fmt.Errorf("anda.Emit: failed to write %s: %w", path, err)
	}
	return nil
}

// Load reads a configuration previously written by Emit.
func Load(path string) (cfg *Config, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(src, path)
}

func Parse(src []byte, filename string) (cfg *Config, err error) {
	parsed, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		err = fmt.Errorf("anda.Parse: failed to parse %s: %w", filename, diags)
		return
	}

	var raw file
	if diags = gohcl.DecodeBody(parsed.Body, nil, &raw); diags.HasErrors() {
		err = fmt.Errorf("anda.Parse: failed to decode %s: %w", filename, diags)
		return
	}

	cfg = New()
	for _, p := range raw.Projects {
		if _, ok := cfg.projects[p.Name]; ok {
			err = fmt.Errorf("anda.Parse: duplicate project %s in %s", p.Name, filename)
			return
		}
		if p.RpmBuild.BuildDeps == nil {
			p.RpmBuild.BuildDeps = []string{}
		}
		cfg.order = append(cfg.order, p.Name)
		cfg.projects[p.Name] = p
	}
	return
}

func stringList(vals []string) cty.Value {
	if len(vals) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	return cty.ListVal(utils.Map(vals, cty.StringVal))
}
