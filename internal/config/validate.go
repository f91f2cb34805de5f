// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/katalvlaran/propslim/builder"
	"github.com/katalvlaran/propslim/decimate"
	"github.com/katalvlaran/propslim/internal/logger"
)

// ErrInvalid marks every problem reported by Validate.
var ErrInvalid = errors.New("config: invalid")

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var err error
	bad := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...))
	}

	if _, e := builder.ShapeByName(c.Mesh.Shape, c.Mesh.Param); e != nil {
		bad("mesh.shape %q", c.Mesh.Shape)
	}
	if c.Mesh.Param < 0 {
		bad("mesh.param %d < 0", c.Mesh.Param)
	}
	if !(c.Mesh.Scale > 0) || math.IsInf(c.Mesh.Scale, 0) {
		bad("mesh.scale %v must be finite and positive", c.Mesh.Scale)
	}
	for _, v := range c.Mesh.Protect {
		if v < 0 {
			bad("mesh.protect index %d < 0", v)
		}
	}

	d := c.Decimate
	if d.Target < 0 {
		bad("decimate.target %d < 0", d.Target)
	}
	if d.Target == 0 && !(d.Ratio > 0 && d.Ratio <= 1) {
		bad("decimate.ratio %v must be in (0, 1] without a target", d.Ratio)
	}
	if !(d.BoundaryWeight >= 0) || math.IsInf(d.BoundaryWeight, 0) {
		bad("decimate.boundary_weight %v must be finite and >= 0", d.BoundaryWeight)
	}
	if !(d.FlipPenalty >= 0) || math.IsInf(d.FlipPenalty, 0) {
		bad("decimate.flip_penalty %v must be finite and >= 0", d.FlipPenalty)
	}
	if _, e := decimate.ParsePlacement(d.Placement); e != nil {
		bad("decimate.placement %q", d.Placement)
	}
	if _, e := decimate.ParseWeighting(d.Weighting); e != nil {
		bad("decimate.weighting %q", d.Weighting)
	}
	if d.Texture && !c.Mesh.TexCoords {
		bad("decimate.texture requires mesh.texcoords")
	}

	if c.Output.Report == "" {
		bad("output.report is empty")
	}
	if c.Output.QuadAngle < 0 || c.Output.QuadAngle > 180 {
		bad("output.quad_angle %v outside [0, 180]", c.Output.QuadAngle)
	}

	if _, e := logger.ParseLevel(c.Logging.Level); e != nil {
		bad("logging.level %q", c.Logging.Level)
	}

	return err
}

// DecimateOptions converts the decimate section into decimate options.
// c must have passed Validate.
func (c *Config) DecimateOptions() []decimate.Option {
	d := c.Decimate
	placement, _ := decimate.ParsePlacement(d.Placement)
	weighting, _ := decimate.ParseWeighting(d.Weighting)

	return []decimate.Option{
		decimate.WithBoundaryWeight(d.BoundaryWeight),
		decimate.WithTexture(d.Texture),
		decimate.WithPlacement(placement),
		decimate.WithWeighting(weighting),
		decimate.WithPreserveTopology(d.PreserveTopology),
		decimate.WithFlipPenalty(d.FlipPenalty),
		decimate.WithDeterministicTies(d.DeterministicTies),
	}
}
