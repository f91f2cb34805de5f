// SPDX-License-Identifier: MIT
// Package: propslim/builder
//
// options.go: functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	scale  float64    // uniform scale applied before translation, > 0
	center mgl64.Vec3 // translation applied after scaling
	uv     bool       // emit per-vertex texture coordinates
	tag    int        // tag stamped on every emitted face
}

const defaultScale = 1.0

// newBuilderConfig returns the defaults with opts applied in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a canonical (unit-size, origin-centred) position to model space.
func (c builderConfig) place(p mgl64.Vec3) mgl64.Vec3 {
	return p.Mul(c.scale).Add(c.center)
}

// Option customizes constructors by mutating builderConfig before use.
type Option func(*builderConfig)

// WithScale scales canonical shapes uniformly. Panics unless s is finite and > 0.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale requires a finite s > 0")
	}

	return func(c *builderConfig) { c.scale = s }
}

// WithCenter translates canonical shapes so their centre lands on p.
func WithCenter(p mgl64.Vec3) Option {
	return func(c *builderConfig) { c.center = p }
}

// WithTexCoords makes every constructor emit texture coordinates.
func WithTexCoords() Option {
	return func(c *builderConfig) { c.uv = true }
}

// WithTag stamps tag on every emitted face.
func WithTag(tag int) Option {
	return func(c *builderConfig) { c.tag = tag }
}
