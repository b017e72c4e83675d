// internal/config/profile_test.go
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"msat/internal/cli"
)

func writeProfile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func parse(t *testing.T, args ...string) *cli.Options {
	t.Helper()
	var out, errBuf bytes.Buffer
	opts, err := cli.Parse(args, &out, &errBuf)
	require.NoError(t, err)
	require.NotNil(t, opts)
	return opts
}

func TestLoadFullProfile(t *testing.T) {
	path := writeProfile(t, `
input: runs.ms
ancestral: 20
loci: 3
thetas: [0.2, 0.3, 0.5]
individuals: true
seed: 42
`)
	p, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "runs.ms", *p.Input)
	require.Equal(t, 20, *p.Ancestral)
	require.Equal(t, 3, *p.Loci)
	require.Equal(t, []float64{0.2, 0.3, 0.5}, p.Thetas)
	require.True(t, *p.Individuals)
	require.Equal(t, int64(42), *p.Seed)
}

func TestLoadEmptyProfile(t *testing.T) {
	p, err := Load(writeProfile(t, ""))
	require.NoError(t, err)
	require.Nil(t, p.Input)
	require.Nil(t, p.Loci)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeProfile(t, "ancestral: 20\nancestrul: 21\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestApplyFillsUnsetFlags(t *testing.T) {
	opts := parse(t, "--loci", "4")

	loci, anc, ind := 2, 30, true
	p := &Profile{Loci: &loci, Ancestral: &anc, Individuals: &ind, Thetas: []float64{0.5, 0.5}}
	p.Apply(opts)

	require.Equal(t, 4, opts.Loci, "explicit flag beats profile")
	require.Equal(t, 30, opts.Ancestral)
	require.True(t, opts.Individuals)
	require.Equal(t, []float64{0.5, 0.5}, opts.Thetas)
}

func TestApplyInputPrecedence(t *testing.T) {
	prof := "profile.ms"

	opts := parse(t)
	(&Profile{Input: &prof}).Apply(opts)
	require.Equal(t, "profile.ms", opts.Input, "profile fills default input")

	opts = parse(t, "cli.ms")
	(&Profile{Input: &prof}).Apply(opts)
	require.Equal(t, "cli.ms", opts.Input, "positional beats profile")
}
