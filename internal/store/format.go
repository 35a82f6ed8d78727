package store

import (
	"path/filepath"
	"strings"
)

// Format represents the config file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML is the default format
	FormatTOML

	// FormatYAML is selected for .yaml and .yml files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DetectFormat determines the format from the file extension.
// Anything that is not YAML is treated as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// resolve turns FormatAuto into a concrete format for path
func (f Format) resolve(path string) Format {
	if f == FormatAuto {
		return DetectFormat(path)
	}
	return f
}
