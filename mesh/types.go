// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors returned by the mesh package.
var (
	// ErrIndexOutOfRange indicates a vertex or face index outside the arena.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrDegenerateFace indicates a face that repeats a corner index.
	ErrDegenerateFace = errors.New("mesh: face repeats a vertex")

	// ErrLengthMismatch indicates parallel input arrays of different lengths.
	ErrLengthMismatch = errors.New("mesh: parallel array length mismatch")

	// ErrSameVertex indicates a contraction of a vertex with itself.
	ErrSameVertex = errors.New("mesh: contraction endpoints are equal")

	// ErrStaleVertex indicates a contraction touching a merged vertex.
	ErrStaleVertex = errors.New("mesh: vertex is no longer live")

	// ErrProtectedVertex indicates a contraction touching a protected vertex.
	ErrProtectedVertex = errors.New("mesh: vertex is protected")
)

// flags is the per-element state bit set.
type flags uint8

const (
	flagValid     flags = 1 << iota // element is live
	flagProtected                   // vertex must never be contracted
)

// Vertex is one arena entry of the vertex array.
type Vertex struct {
	Pos   mgl64.Vec3 // position
	Tex   [2]float64 // texture coordinate; meaningful when the model has texcoords
	flags flags
}

// Valid reports whether the vertex is live.
func (v Vertex) Valid() bool { return v.flags&flagValid != 0 }

// Protected reports whether the vertex is pinned.
func (v Vertex) Protected() bool { return v.flags&flagProtected != 0 }

// Face is one arena entry of the face array.
type Face struct {
	V     [3]int // corner vertex indices, counter-clockwise
	Tag   int    // material / group tag carried through to export
	flags flags
}

// Valid reports whether the face is live.
func (f Face) Valid() bool { return f.flags&flagValid != 0 }

// Has reports whether v is a corner of f.
func (f Face) Has(v int) bool { return f.V[0] == v || f.V[1] == v || f.V[2] == v }

// Opposite returns the corner of f that is neither a nor b, or -1.
func (f Face) Opposite(a, b int) int {
	for _, c := range f.V {
		if c != a && c != b {
			return c
		}
	}

	return -1
}

// Contraction describes the topological effect of merging V2 into V1.
type Contraction struct {
	V1, V2     int   // survivor and victim
	DeadFaces  []int // faces containing both V1 and V2
	DeltaFaces []int // faces of V2 that survive, rewritten to reference V1
}
