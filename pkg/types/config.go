// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GeneratorConfig holds settings for turning deck files into LaTeX output.
// Values come from slidesmith.yaml or SLIDESMITH_* environment variables.
type GeneratorConfig struct {
	// Theme is the default beamer theme used when a deck does not name one.
	Theme string `json:"theme" yaml:"theme"`

	// OutputDir is the directory where generated .tex files are written
	// (default "output/tex").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Defaults returns the generator configuration used when nothing is
// configured.
func Defaults() GeneratorConfig {
	return GeneratorConfig{
		OutputDir: "output/tex",
	}
}
