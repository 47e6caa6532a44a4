package ledwand

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultBias is the dither threshold, the middle of the brightness range.
const DefaultBias = 127

// Config toggles the stages of a Pipeline. The zero value runs every stage
// with a DitherBias of 0; start from DefaultConfig for the usual bias.
type Config struct {
	DisableHistogram          bool `yaml:"disable_histogram"`
	DisableBlur               bool `yaml:"disable_blur"`
	DisableSharpen            bool `yaml:"disable_sharpen"`
	DisableDither             bool `yaml:"disable_dither"`
	DisableSpacerRemoval      bool `yaml:"disable_spacer_removal"`
	DisableAspectPreservation bool `yaml:"disable_aspect_preservation"`

	// DitherBias is the brightness above which a pixel is lit while dithering.
	DitherBias uint8 `yaml:"dither_bias"`
	// Invert flips the finished bitmap.
	Invert bool `yaml:"invert"`
}

// DefaultConfig enables every stage.
func DefaultConfig() Config {
	return Config{DitherBias: DefaultBias}
}

// File is the layout of a YAML configuration file.
//
//	geometry:
//	  tiles_x: 56
//	  tiles_y: 20
//	pipeline:
//	  disable_blur: true
//	  dither_bias: 100
type File struct {
	Geometry Geometry `yaml:"geometry"`
	Pipeline Config   `yaml:"pipeline"`
}

// LoadFile reads a YAML configuration. Missing keys keep their defaults.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return ParseFile(data)
}

// ParseFile decodes a YAML configuration. Missing keys keep their defaults.
func ParseFile(data []byte) (File, error) {
	f := File{
		Geometry: DefaultGeometry,
		Pipeline: DefaultConfig(),
	}
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return File{}, fmt.Errorf("ledwand: config: %w", err)
	}
	if err := f.Geometry.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}
