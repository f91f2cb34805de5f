// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/propslim/decimate"
	"github.com/katalvlaran/propslim/mesh"
)

// Report is the YAML document written after a run.
type Report struct {
	Shape          string       `yaml:"shape"`
	State          string       `yaml:"state"`
	Cancelled      bool         `yaml:"cancelled,omitempty"`
	Target         int          `yaml:"target"`
	Input          Counts       `yaml:"input"`
	Output         Counts       `yaml:"output"`
	Contractions   int          `yaml:"contractions"`
	Skipped        int          `yaml:"skipped"`
	MaxError       float64      `yaml:"max_error"`
	ClosedManifold bool         `yaml:"closed_manifold"`
	Elapsed        string       `yaml:"elapsed"`
	Mesh           *MeshReport  `yaml:"mesh,omitempty"`
	Polygons       []PolyReport `yaml:"polygons,omitempty"`
}

// Counts is a vertex/face pair.
type Counts struct {
	Vertices int `yaml:"vertices"`
	Faces    int `yaml:"faces"`
}

// MeshReport is the compacted simplified mesh.
type MeshReport struct {
	Positions [][3]float64 `yaml:"positions,flow"`
	TexCoords [][2]float64 `yaml:"texcoords,omitempty,flow"`
	Faces     [][3]int     `yaml:"faces,flow"`
}

// PolyReport is one exported triangle or quad.
type PolyReport struct {
	V   []int `yaml:"v,flow"`
	Tag int   `yaml:"tag,omitempty"`
}

func newMeshReport(c *mesh.Compacted) *MeshReport {
	out := &MeshReport{
		Positions: make([][3]float64, len(c.Positions)),
		TexCoords: c.TexCoords,
		Faces:     c.Faces,
	}
	for i, p := range c.Positions {
		out.Positions[i] = [3]float64(p)
	}

	return out
}

func newPolyReports(polys []mesh.Polygon) []PolyReport {
	out := make([]PolyReport, len(polys))
	for i, p := range polys {
		out[i] = PolyReport{V: p.V, Tag: p.Tag}
	}

	return out
}

func (r *Report) setResult(res decimate.Result) {
	r.State = res.State.String()
	r.Contractions += res.Contractions
	r.Skipped += res.Skipped
	r.Output = Counts{Vertices: res.Vertices, Faces: res.Faces}
}
