// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/propslim/internal/config"
	"github.com/katalvlaran/propslim/mesh"
)

func decode(t *testing.T, data []byte) Report {
	t.Helper()
	var rep Report
	require.NoError(t, yaml.Unmarshal(data, &rep))

	return rep
}

func TestRunOctahedronToStdout(t *testing.T) {
	cfg := config.Default()
	cfg.Mesh.Shape = "octahedron"
	cfg.Decimate.Target = 4
	cfg.Output.IncludeMesh = true
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t), &out))

	rep := decode(t, out.Bytes())
	require.Equal(t, "done", rep.State)
	require.Equal(t, Counts{Vertices: 6, Faces: 8}, rep.Input)
	require.Equal(t, Counts{Vertices: 4, Faces: 4}, rep.Output)
	require.Equal(t, 2, rep.Contractions)
	require.True(t, rep.ClosedManifold)
	require.False(t, rep.Cancelled)
	require.Positive(t, rep.MaxError)
	require.NotNil(t, rep.Mesh)
	require.Len(t, rep.Mesh.Positions, 4)
	require.Len(t, rep.Mesh.Faces, 4)
	require.Empty(t, rep.Mesh.TexCoords)
}

func TestRunGridReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	cfg := config.Default()
	cfg.Mesh.Shape = "grid"
	cfg.Mesh.Param = 4
	cfg.Mesh.TexCoords = true
	cfg.Decimate.Texture = true
	cfg.Decimate.Ratio = 0.5
	cfg.Output.Report = path
	cfg.Output.MergeQuads = true
	require.NoError(t, cfg.Validate())

	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rep := decode(t, data)
	require.Equal(t, 32, rep.Input.Faces)
	require.Equal(t, 16, rep.Target)
	require.LessOrEqual(t, rep.Output.Faces, 16)
	require.False(t, rep.ClosedManifold)
	require.NotEmpty(t, rep.Polygons)

	faces := 0
	for _, p := range rep.Polygons {
		require.Contains(t, []int{3, 4}, len(p.V))
		faces += len(p.V) - 2
	}
	require.Equal(t, rep.Output.Faces, faces)
}

func TestRunCancelledStillReports(t *testing.T) {
	cfg := config.Default()
	cfg.Mesh.Param = 2
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, zaptest.NewLogger(t), &out))

	rep := decode(t, out.Bytes())
	require.True(t, rep.Cancelled)
	require.Equal(t, "initialized", rep.State)
	require.Equal(t, 320, rep.Output.Faces)
	require.Zero(t, rep.Contractions)
}

func TestRunRejectsProtectOutOfRange(t *testing.T) {
	cfg := config.Default()
	cfg.Mesh.Shape = "tetrahedron"
	cfg.Mesh.Protect = []int{4}

	err := run(context.Background(), cfg, zaptest.NewLogger(t), &bytes.Buffer{})
	require.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}
