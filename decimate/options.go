// SPDX-License-Identifier: MIT

package decimate

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/propslim/mesh"
)

// DefaultBoundaryWeight is the QSlim default penalty on boundary motion.
const DefaultBoundaryWeight = 1000.0

// Options configures a Decimator.
//
// BoundaryWeight    – scale of boundary constraint quadrics; 0 disables them.
// Texture           – run in 5-D (position + texcoord) instead of 3-D.
// Placement         – target placement policy.
// Weighting         – face quadric weighting policy.
// PreserveTopology  – reject contractions that break the link condition.
// FlipPenalty       – error added per face whose normal would flip; 0 disables.
// DeterministicTies – order equal-cost edges by their endpoint pair.
// Protect           – called once with the model before Initialize builds state.
// OnContract        – called after every applied contraction.
// Logger            – structured logger; never nil after DefaultOptions.
type Options struct {
	BoundaryWeight    float64
	Texture           bool
	Placement         Placement
	Weighting         Weighting
	PreserveTopology  bool
	FlipPenalty       float64
	DeterministicTies bool
	Protect           func(*mesh.Model)
	OnContract        func(Event)
	Logger            *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: boundary weight 1000, 3-D quadrics,
// optimal placement, area weighting, topology preservation on, no flip
// penalty, insertion-order ties and a no-op logger.
func DefaultOptions() Options {
	return Options{
		BoundaryWeight:   DefaultBoundaryWeight,
		Placement:        PlaceOptimal,
		Weighting:        WeightArea,
		PreserveTopology: true,
		Logger:           zap.NewNop(),
	}
}

// WithBoundaryWeight sets the boundary constraint weight.
// Panics if w is negative, NaN or infinite.
func WithBoundaryWeight(w float64) Option {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic("decimate: WithBoundaryWeight requires a finite w >= 0")
	}

	return func(o *Options) { o.BoundaryWeight = w }
}

// WithTexture enables 5-D quadrics that also preserve texture coordinates.
func WithTexture(on bool) Option {
	return func(o *Options) { o.Texture = on }
}

// WithPlacement selects the placement policy.
// Panics on an unknown policy.
func WithPlacement(p Placement) Option {
	if p < PlaceOptimal || p > PlaceEndpoints {
		panic("decimate: unknown placement policy")
	}

	return func(o *Options) { o.Placement = p }
}

// WithWeighting selects the face quadric weighting policy.
// Panics on an unknown policy.
func WithWeighting(w Weighting) Option {
	if w != WeightArea && w != WeightUniform {
		panic("decimate: unknown weighting policy")
	}

	return func(o *Options) { o.Weighting = w }
}

// WithPreserveTopology toggles the link-condition check.
func WithPreserveTopology(on bool) Option {
	return func(o *Options) { o.PreserveTopology = on }
}

// WithFlipPenalty adds p to an edge's error for every face the contraction
// would fold over. Panics if p is negative, NaN or infinite.
func WithFlipPenalty(p float64) Option {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		panic("decimate: WithFlipPenalty requires a finite p >= 0")
	}

	return func(o *Options) { o.FlipPenalty = p }
}

// WithDeterministicTies breaks equal-cost ties by the sorted endpoint pair
// instead of heap insertion order, making runs reproducible across vertex
// orderings that produce the same pairs.
func WithDeterministicTies(on bool) Option {
	return func(o *Options) { o.DeterministicTies = on }
}

// WithProtect registers a hook that pins vertices before initialization.
func WithProtect(fn func(*mesh.Model)) Option {
	return func(o *Options) { o.Protect = fn }
}

// WithOnContract registers a per-contraction observer.
func WithOnContract(fn func(Event)) Option {
	return func(o *Options) { o.OnContract = fn }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
