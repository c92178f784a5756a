package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
generator: walker
seed: 7
params:
  w: 64
  target_open_fraction: 0.5
  despeckle: true
  spawn_strategy: clone
  seed: 3
`

func TestParseAndFlatten(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "walker", f.Generator)

	flat := f.Flatten()
	assert.Equal(t, map[string]string{
		"w":                    "64",
		"target_open_fraction": "0.5",
		"despeckle":            "true",
		"spawn_strategy":       "clone",
		"seed":                 "7",
	}, flat)
}

func TestParseRejectsNestedValues(t *testing.T) {
	_, err := Parse([]byte("params:\n  w: [1, 2]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"w"`)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cave.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: cellular\nparams:\n  iterations: 6\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cellular", f.Generator)
	assert.Nil(t, f.Seed)
	assert.Equal(t, map[string]string{"iterations": "6"}, f.Flatten())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOverridesAndMerge(t *testing.T) {
	over, err := ParseOverrides([]string{"w=10", " h = 12 ", "w=11"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"w": "11", "h": "12"}, over)

	_, err = ParseOverrides([]string{"oops"})
	assert.Error(t, err)
	_, err = ParseOverrides([]string{"=3"})
	assert.Error(t, err)

	merged := Merge(map[string]string{"w": "1", "seed": "2"}, over, nil)
	assert.Equal(t, map[string]string{"w": "11", "h": "12", "seed": "2"}, merged)
	assert.Equal(t, []string{"h", "seed", "w"}, Keys(merged))
}
