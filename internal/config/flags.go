// SPDX-License-Identifier: MIT

package config

import "flag"

// Flags holds the command-line overrides. Zero values leave the
// configuration untouched.
type Flags struct {
	ConfigPath string
	Shape      string
	Param      int
	Target     int
	Ratio      float64
	Report     string
	Texture    bool
	Debug      bool
	LogFile    string
}

// RegisterFlags binds Flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to YAML config file")
	fs.StringVar(&f.Shape, "shape", "", "Input shape name")
	fs.IntVar(&f.Param, "param", -1, "Shape parameter (subdivisions or grid cells)")
	fs.IntVar(&f.Target, "target", 0, "Target face count")
	fs.Float64Var(&f.Ratio, "ratio", 0, "Fraction of faces to keep when no target is set")
	fs.StringVar(&f.Report, "out", "", "Report path, - for stdout")
	fs.BoolVar(&f.Texture, "texture", false, "Generate texcoords and decimate in 5-D")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log", "", "Log file path")

	return f
}

func (f *Flags) apply(cfg *Config) {
	if f.Shape != "" {
		cfg.Mesh.Shape = f.Shape
	}
	if f.Param >= 0 {
		cfg.Mesh.Param = f.Param
	}
	if f.Target > 0 {
		cfg.Decimate.Target = f.Target
	}
	if f.Ratio > 0 {
		cfg.Decimate.Ratio = f.Ratio
	}
	if f.Report != "" {
		cfg.Output.Report = f.Report
	}
	if f.Texture {
		cfg.Mesh.TexCoords = true
		cfg.Decimate.Texture = true
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
