// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package config

// ToolsConfig names the external programs to invoke.
type ToolsConfig struct {
	Cargo    string `yaml:"cargo"`
	Rust2rpm string `yaml:"rust2rpm"`
	Dnf      string `yaml:"dnf"`
}

func (t *ToolsConfig) setDefaults() {
	if t.Cargo == "" {
		t.Cargo = "cargo"
	}
	if t.Rust2rpm == "" {
		t.Rust2rpm = "rust2rpm"
	}
	if t.Dnf == "" {
		t.Dnf = "dnf"
	}
}
