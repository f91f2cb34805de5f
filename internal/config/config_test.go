// SPDX-License-Identifier: MIT

package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "icosphere", cfg.Mesh.Shape)
	require.Equal(t, 1000.0, cfg.Decimate.BoundaryWeight)
	require.Equal(t, "optimal", cfg.Decimate.Placement)
	require.True(t, cfg.Decimate.PreserveTopology)
	require.Len(t, cfg.DecimateOptions(), 7)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propslim.yaml")
	content := `
mesh:
  shape: grid
  param: 8
  texcoords: true
  protect: [0, 8]
decimate:
  target: 40
  texture: true
  placement: line
output:
  merge_quads: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(&Flags{ConfigPath: path, Param: -1})
	require.NoError(t, err)

	require.Equal(t, "grid", cfg.Mesh.Shape)
	require.Equal(t, 8, cfg.Mesh.Param)
	require.Equal(t, []int{0, 8}, cfg.Mesh.Protect)
	require.Equal(t, 40, cfg.Decimate.Target)
	require.Equal(t, "line", cfg.Decimate.Placement)
	require.True(t, cfg.Output.MergeQuads)
	require.Equal(t, "debug", cfg.Logging.Level)

	// Defaults survive for keys the file omits.
	require.Equal(t, 1.0, cfg.Mesh.Scale)
	require.Equal(t, "area", cfg.Decimate.Weighting)
	require.Equal(t, 10.0, cfg.Output.QuadAngle)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propslim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decimate:\n  target: 40\n"), 0o644))

	fs := flag.NewFlagSet("propslim", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-config", path, "-shape", "cube", "-param", "0", "-target", "6", "-debug", "-out", "report.yaml",
	}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	require.Equal(t, "cube", cfg.Mesh.Shape)
	require.Equal(t, 0, cfg.Mesh.Param)
	require.Equal(t, 6, cfg.Decimate.Target)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "report.yaml", cfg.Output.Report)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(&Flags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Mesh.Shape = "torus"
	cfg.Mesh.Scale = 0
	cfg.Decimate.Ratio = 2
	cfg.Decimate.Placement = "nearest"
	cfg.Decimate.Texture = true
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	require.Len(t, multierr.Errors(err), 6)
}

func TestTargetFaces(t *testing.T) {
	d := DecimateConfig{Ratio: 0.25}
	require.Equal(t, 320, d.TargetFaces(1280))
	require.Equal(t, 2, d.TargetFaces(5))
	require.Equal(t, 1, DecimateConfig{Ratio: 0.0001}.TargetFaces(8))

	d.Target = 100
	require.Equal(t, 100, d.TargetFaces(1280))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "propslim.yaml")
	cfg := Default()
	cfg.Mesh.Protect = []int{3, 5}
	cfg.Decimate.DeterministicTies = true
	require.NoError(t, cfg.SaveTo(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
