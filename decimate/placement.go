// SPDX-License-Identifier: MIT

package decimate

import (
	"github.com/katalvlaran/propslim/quadric"
)

// place chooses the merged-vertex target for an edge p1–p2 under quadric q
// according to the configured policy and returns it with its error.
// Each policy falls back to the next cheaper one when its solve fails:
// optimal → line → end-or-mid.
func (d *Decimator) place(q *quadric.Quadric, p1, p2 quadric.Point) (quadric.Point, float64) {
	switch d.opts.Placement {
	case PlaceOptimal:
		if p, ok := q.Optimize(); ok {
			return p, q.Evaluate(p)
		}
		fallthrough
	case PlaceLine:
		if p, ok := q.OptimizeOnSegment(p1, p2); ok {
			return p, q.Evaluate(p)
		}
		fallthrough
	case PlaceEndOrMid:
		return cheapest(q, p1, p2, p1.Lerp(p2, 0.5))
	default:
		return cheapest(q, p1, p2)
	}
}

// cheapest returns the candidate with the lowest error; earlier ones win ties.
func cheapest(q *quadric.Quadric, candidates ...quadric.Point) (quadric.Point, float64) {
	best, bestErr := candidates[0], q.Evaluate(candidates[0])
	for _, p := range candidates[1:] {
		if e := q.Evaluate(p); e < bestErr {
			best, bestErr = p, e
		}
	}

	return best, bestErr
}
