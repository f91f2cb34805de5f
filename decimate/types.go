// SPDX-License-Identifier: MIT

package decimate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/propslim/quadric"
)

// Sentinel errors returned by the decimate package.
var (
	// ErrNilModel indicates New was called without a mesh.
	ErrNilModel = errors.New("decimate: model is nil")

	// ErrBadTarget indicates a non-positive target face count.
	ErrBadTarget = errors.New("decimate: target face count must be positive")

	// ErrState indicates an operation that is illegal in the current state.
	ErrState = errors.New("decimate: illegal state transition")

	// ErrUnknownPolicy indicates a placement or weighting name that does not parse.
	ErrUnknownPolicy = errors.New("decimate: unknown policy name")
)

// State is the lifecycle state of a Decimator.
type State int

const (
	// StateUninitialized: constructed, no quadrics or edges yet.
	StateUninitialized State = iota
	// StateInitialized: quadrics, edges and heap built; no contraction yet.
	StateInitialized
	// StateRunning: inside Decimate.
	StateRunning
	// StateDone: the last Decimate call reached its target.
	StateDone
	// StateFailed: the last Decimate call ran out of candidate edges.
	StateFailed
)

// String returns a lower-case name of s.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Placement selects how the merged vertex position is chosen.
type Placement int

const (
	// PlaceOptimal solves for the quadric minimum, falling back to Line.
	PlaceOptimal Placement = iota
	// PlaceLine minimizes along the edge segment, falling back to EndOrMid.
	PlaceLine
	// PlaceEndOrMid picks the best of both endpoints and the midpoint.
	PlaceEndOrMid
	// PlaceEndpoints picks the better endpoint.
	PlaceEndpoints
)

// String returns the configuration name of p.
func (p Placement) String() string {
	switch p {
	case PlaceOptimal:
		return "optimal"
	case PlaceLine:
		return "line"
	case PlaceEndOrMid:
		return "end-or-mid"
	case PlaceEndpoints:
		return "endpoints"
	default:
		return "unknown"
	}
}

// ParsePlacement returns the Placement whose String is name.
func ParsePlacement(name string) (Placement, error) {
	for p := PlaceOptimal; p <= PlaceEndpoints; p++ {
		if p.String() == name {
			return p, nil
		}
	}

	return PlaceOptimal, fmt.Errorf("ParsePlacement(%q): %w", name, ErrUnknownPolicy)
}

// Weighting selects how face quadrics are scaled before accumulation.
type Weighting int

const (
	// WeightArea scales every face quadric by the face area.
	WeightArea Weighting = iota
	// WeightUniform adds face quadrics unscaled.
	WeightUniform
)

// String returns the configuration name of w.
func (w Weighting) String() string {
	switch w {
	case WeightArea:
		return "area"
	case WeightUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// ParseWeighting returns the Weighting whose String is name.
func ParseWeighting(name string) (Weighting, error) {
	switch name {
	case WeightArea.String():
		return WeightArea, nil
	case WeightUniform.String():
		return WeightUniform, nil
	default:
		return WeightArea, fmt.Errorf("ParseWeighting(%q): %w", name, ErrUnknownPolicy)
	}
}

// Result summarises a Decimate call.
type Result struct {
	State        State
	Faces        int // valid faces after the call
	Vertices     int // valid vertices after the call
	Contractions int // contractions applied by this call
	Skipped      int // heap entries popped and rejected by this call
}

// Event describes one applied contraction; see WithOnContract.
type Event struct {
	Edge   int           // registry ID of the contracted edge
	V1, V2 int           // survivor and merged vertex
	Target quadric.Point // new position (and texcoord) of V1
	Error  float64       // cost the edge was selected with
	Killed int           // faces invalidated
	Faces  int           // valid faces afterwards
}
