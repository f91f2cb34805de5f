// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/propslim/builder"
	"github.com/katalvlaran/propslim/decimate"
	"github.com/katalvlaran/propslim/internal/config"
	"github.com/katalvlaran/propslim/mesh"
)

// run builds the configured mesh, decimates it and writes the report to
// stdout or to cfg.Output.Report. A cancelled run still writes a report of
// the partial result.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger, stdout io.Writer) error {
	start := time.Now()

	model, err := buildMesh(cfg.Mesh)
	if err != nil {
		return err
	}
	for _, v := range cfg.Mesh.Protect {
		if v >= model.VertexCount() {
			return fmt.Errorf("protect vertex %d: %w", v, mesh.ErrIndexOutOfRange)
		}
	}

	rep := &Report{
		Shape:  cfg.Mesh.Shape,
		Target: cfg.Decimate.TargetFaces(model.ValidFaceCount()),
		Input:  Counts{Vertices: model.ValidVertexCount(), Faces: model.ValidFaceCount()},
	}
	log.Info("mesh built",
		zap.String("shape", cfg.Mesh.Shape),
		zap.Int("vertices", rep.Input.Vertices),
		zap.Int("faces", rep.Input.Faces),
		zap.Int("target", rep.Target),
	)

	opts := append(cfg.DecimateOptions(),
		decimate.WithLogger(log),
		decimate.WithProtect(func(m *mesh.Model) {
			for _, v := range cfg.Mesh.Protect {
				_ = m.Protect(v) // range checked above
			}
		}),
		decimate.WithOnContract(func(ev decimate.Event) {
			if ev.Error > rep.MaxError {
				rep.MaxError = ev.Error
			}
		}),
	)
	dec, err := decimate.New(model, opts...)
	if err != nil {
		return err
	}

	res, err := dec.Decimate(ctx, rep.Target)
	rep.setResult(res)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		rep.Cancelled = true
		log.Warn("decimation interrupted", zap.Int("faces", res.Faces))
	case err != nil:
		return err
	}

	rep.ClosedManifold = model.IsClosedManifold()
	compacted := model.Compact()
	if cfg.Output.IncludeMesh {
		rep.Mesh = newMeshReport(compacted)
	}
	if cfg.Output.MergeQuads {
		rep.Polygons = newPolyReports(mesh.MergeQuads(compacted, mgl64.DegToRad(cfg.Output.QuadAngle)))
	}
	rep.Elapsed = time.Since(start).Round(time.Millisecond).String()

	return writeReport(cfg.Output.Report, rep, stdout)
}

func buildMesh(mc config.MeshConfig) (*mesh.Model, error) {
	ctor, err := builder.ShapeByName(mc.Shape, mc.Param)
	if err != nil {
		return nil, err
	}
	opts := []builder.Option{builder.WithScale(mc.Scale)}
	if mc.TexCoords {
		opts = append(opts, builder.WithTexCoords())
	}

	return builder.Build(opts, ctor)
}

func writeReport(path string, rep *Report, stdout io.Writer) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if path == "-" {
		_, err = stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
