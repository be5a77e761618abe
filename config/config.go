// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"io"
	"os"

	"github.com/GZGavinZhao/cargo2anda/utils"
	"gopkg.in/yaml.v3"
)

// Filename is looked up in the project directory when no path is given.
const Filename = "cargo2anda.yml"

type Cargo2AndaConfig struct {
	Ignore    []string            `yaml:"ignore"`
	BuildDeps map[string][]string `yaml:"build_deps"`
	Tools     ToolsConfig         `yaml:"tools"`
}

func Load(path string) (cfg Cargo2AndaConfig, err error) {
	raw, err := os.Open(path)
	if err != nil {
		return
	}
	defer raw.Close()
	dec := yaml.NewDecoder(raw)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); errors.Is(err, io.EOF) {
		err = nil
	}
	cfg.Tools.setDefaults()
	return
}

// LoadOptional loads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (cfg Cargo2AndaConfig, err error) {
	if !utils.PathExists(path) {
		cfg.Tools.setDefaults()
		return
	}
	return Load(path)
}
