package rust2rpm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GZGavinZhao/cargo2anda/anda"
	"github.com/GZGavinZhao/cargo2anda/common"
	"github.com/GZGavinZhao/cargo2anda/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDependency(t *testing.T) {
	dir := t.TempDir()
	s := runner.NewScript().On([]string{"rust2rpm", "libA", "1.0.0"}, filepath.Join(dir, "libA"),
		runner.Response{Stdout: "Downloading libA 1.0.0\n", Stderr: "Generated: rust-libA.spec\n"})
	conf := anda.New()

	spec, err := NewDriver(s, conf, "", dir).Generate(common.Dependency{Depth: 1, Name: "libA", Version: "1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "rust-libA.spec", spec)
	assert.DirExists(t, filepath.Join(dir, "libA"))

	p, ok := conf.Get("libA")
	require.True(t, ok)
	assert.Equal(t, anda.RpmBuild{Spec: "libA/rust-libA.spec", Package: "rust-libA", BuildDeps: []string{}}, p.RpmBuild)

	require.Len(t, s.Calls, 1)
	assert.True(t, s.Calls[0].Full)
}

func TestGenerateReusesDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "libA"), 0o755))
	s := runner.NewScript().On([]string{"rust2rpm", "libA", "1.0.0"}, filepath.Join(dir, "libA"),
		runner.Response{Stdout: "Generated: rust-libA.spec"})

	_, err := NewDriver(s, anda.New(), "", dir).Generate(common.Dependency{Depth: 3, Name: "libA", Version: "1.0.0"})
	assert.NoError(t, err)
}

func TestGenerateDirectoryIsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "libA"), nil, 0o644))
	s := runner.NewScript()

	_, err := NewDriver(s, anda.New(), "", dir).Generate(common.Dependency{Depth: 1, Name: "libA", Version: "1.0.0"})
	assert.ErrorContains(t, err, "not a directory")
	assert.Empty(t, s.Calls)
}

func TestGenerateRoot(t *testing.T) {
	dir := t.TempDir()
	s := runner.NewScript().On([]string{"rust2rpm", "."}, dir,
		runner.Response{Stdout: "Generated: rust-root.spec\n"})
	conf := anda.New()

	spec, err := NewDriver(s, conf, "", dir).Generate(common.Dependency{Depth: 0, Name: "root", Version: "0.1.0"})
	require.NoError(t, err)
	assert.Equal(t, "rust-root.spec", spec)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	p, _ := conf.Get("root")
	assert.Equal(t, "root/rust-root.spec", p.RpmBuild.Spec)
}

func TestGenerateBuildDeps(t *testing.T) {
	dir := t.TempDir()
	s := runner.NewScript().On([]string{"rust2rpm", "openssl-sys", "0.9.95"}, "",
		runner.Response{Stdout: "Generated: rust-openssl-sys.spec"})
	conf := anda.New()

	d := NewDriver(s, conf, "", dir)
	d.BuildDeps = map[string][]string{"openssl-sys": {"openssl-devel"}}
	_, err := d.Generate(common.Dependency{Depth: 2, Name: "openssl-sys", Version: "0.9.95"})
	require.NoError(t, err)

	p, _ := conf.Get("openssl-sys")
	assert.Equal(t, []string{"openssl-devel"}, p.RpmBuild.BuildDeps)
}

func TestGenerateNoSpecs(t *testing.T) {
	dir := t.TempDir()
	s := runner.NewScript().On([]string{"rust2rpm", "libA", "1.0.0"}, "",
		runner.Response{Stdout: "something went sideways\n"})
	conf := anda.New()

	_, err := NewDriver(s, conf, "", dir).Generate(common.Dependency{Depth: 1, Name: "libA", Version: "1.0.0"})
	assert.ErrorIs(t, err, ErrNoSpecs)
	assert.Equal(t, 0, conf.Len())
}

func TestGenerateFailure(t *testing.T) {
	dir := t.TempDir()
	boom := &runner.ExitError{Argv: []string{"rust2rpm"}, Code: 1}
	s := runner.NewScript().On([]string{"rust2rpm", "libA", "1.0.0"}, "", runner.Response{Err: boom})

	_, err := NewDriver(s, anda.New(), "", dir).Generate(common.Dependency{Depth: 1, Name: "libA", Version: "1.0.0"})
	assert.True(t, errors.Is(err, boom))
}

func TestParseGenerated(t *testing.T) {
	spec, err := ParseGenerated("Generated: /tmp/work/rust-libA.spec\n")
	require.NoError(t, err)
	assert.Equal(t, "rust-libA.spec", spec)

	_, err = ParseGenerated("Generated: rust-libA.txt")
	assert.ErrorIs(t, err, ErrNoSpecs)
}
