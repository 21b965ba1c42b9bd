package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInputNotFound is returned when the input document cannot be read.
var ErrInputNotFound = errors.New("input not found")

// Format identifies the encoding of an input document.
type Format string

// Supported input formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. An empty name yields "" so the
// caller can fall back to DetectFormat.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "":
		return "", nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown input format %q (want toml or yaml)", name)
	}
}

// DetectFormat picks the format from a file extension.
// Anything other than .yaml or .yml is treated as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Document is a decoded input file.
type Document struct {
	Path   string
	Config *Config
	// Unknown lists keys the schema does not recognize (TOML only).
	Unknown []string
}

// Load reads and decodes the document at path. An empty format is
// detected from the file extension.
func Load(path string, format Format) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
	}

	if format == "" {
		format = DetectFormat(path)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes document bytes in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	var (
		raw     *RawConfig
		unknown []string
		err     error
	)

	switch format {
	case FormatYAML:
		raw, err = ParseYAML(data)
	case FormatTOML, "":
		raw, unknown, err = ParseTOML(data)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, err
	}

	cfg, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return &Document{Config: cfg, Unknown: unknown}, nil
}
