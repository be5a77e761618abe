package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, []byte(`
ignore:
  - windows-sys
build_deps:
  openssl-sys: [openssl-devel, pkgconfig]
tools:
  dnf: dnf5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"windows-sys"}, cfg.Ignore)
	assert.Equal(t, []string{"openssl-devel", "pkgconfig"}, cfg.BuildDeps["openssl-sys"])
	assert.Equal(t, ToolsConfig{Cargo: "cargo", Rust2rpm: "rust2rpm", Dnf: "dnf5"}, cfg.Tools)
}

func TestLoadUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, []byte("ignroe: [a]\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), Filename))
	require.NoError(t, err)
	assert.Empty(t, cfg.Ignore)
	assert.Equal(t, "cargo", cfg.Tools.Cargo)
	assert.Equal(t, "rust2rpm", cfg.Tools.Rust2rpm)
	assert.Equal(t, "dnf", cfg.Tools.Dnf)
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dnf", cfg.Tools.Dnf)
}
