// SPDX-License-Identifier: MIT

// Package config holds the propslim command configuration.
//
// Values are resolved as defaults < YAML file < command-line flags.
package config

import (
	"math"

	"github.com/katalvlaran/propslim/decimate"
)

// Config is the complete command configuration.
type Config struct {
	Mesh     MeshConfig     `yaml:"mesh"`
	Decimate DecimateConfig `yaml:"decimate"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// MeshConfig selects the input mesh.
type MeshConfig struct {
	Shape     string  `yaml:"shape"`     // builder shape name
	Param     int     `yaml:"param"`     // subdivisions or grid cells
	Scale     float64 `yaml:"scale"`     // uniform scale
	TexCoords bool    `yaml:"texcoords"` // generate texture coordinates
	Protect   []int   `yaml:"protect"`   // vertex indices that must survive
}

// DecimateConfig configures the simplifier.
type DecimateConfig struct {
	Target            int     `yaml:"target"`       // absolute face target; 0 uses Ratio
	Ratio             float64 `yaml:"ratio"`        // fraction of input faces to keep
	BoundaryWeight    float64 `yaml:"boundary_weight"`
	Texture           bool    `yaml:"texture"`
	Placement         string  `yaml:"placement"` // optimal | line | end-or-mid | endpoints
	Weighting         string  `yaml:"weighting"` // area | uniform
	PreserveTopology  bool    `yaml:"preserve_topology"`
	FlipPenalty       float64 `yaml:"flip_penalty"`
	DeterministicTies bool    `yaml:"deterministic_ties"`
}

// OutputConfig configures the report.
type OutputConfig struct {
	Report      string  `yaml:"report"`       // report path; "-" is stdout
	IncludeMesh bool    `yaml:"include_mesh"` // embed the simplified mesh
	MergeQuads  bool    `yaml:"merge_quads"`  // pair triangles into quads
	QuadAngle   float64 `yaml:"quad_angle"`   // max normal deviation in degrees
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Shape: "icosphere",
			Param: 3,
			Scale: 1,
		},
		Decimate: DecimateConfig{
			Ratio:            0.25,
			BoundaryWeight:   decimate.DefaultBoundaryWeight,
			Placement:        decimate.PlaceOptimal.String(),
			Weighting:        decimate.WeightArea.String(),
			PreserveTopology: true,
		},
		Output: OutputConfig{
			Report:    "-",
			QuadAngle: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// TargetFaces resolves the face target for a mesh of faces faces.
// An explicit Target wins; otherwise Ratio is applied and rounded up.
func (c DecimateConfig) TargetFaces(faces int) int {
	if c.Target > 0 {
		return c.Target
	}
	n := int(math.Ceil(float64(faces) * c.Ratio))
	if n < 1 {
		n = 1
	}

	return n
}
