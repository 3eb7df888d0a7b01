package declaration

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a declaration file format.
type Format string

// Supported formats.
const (
	FormatLua  Format = "lua"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatLua, FormatYAML, FormatTOML, FormatJSON}
}

// FormatNames returns the names of the supported formats.
func FormatNames() []string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat converts a format name. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lua":
		return FormatLua, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DetectFormat determines the format from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return f, nil
}

// IsData reports whether the format is a data document rather than a script.
func (f Format) IsData() bool {
	return f == FormatYAML || f == FormatTOML || f == FormatJSON
}
