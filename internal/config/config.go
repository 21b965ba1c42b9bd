// Package config loads the optional YAML settings file for yasunori.
//
// A settings file supplies defaults for the render flags:
//
//	ids: auto          # auto | always | never
//	weekday: false
//	fence: true
//	header_file: header.md
//	color: auto        # auto | always | never
//
// Flags given on the command line win over the file. A relative
// header_file is resolved against the settings file's directory.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the render defaults read from a settings file.
// Nil pointers and empty strings mean "not set".
type Settings struct {
	IDs        string `yaml:"ids"`
	Weekday    *bool  `yaml:"weekday"`
	Fence      *bool  `yaml:"fence"`
	HeaderFile string `yaml:"header_file"`
	Color      string `yaml:"color"`
}

// Load reads the settings file at path. Unknown keys are rejected so typos
// surface instead of being ignored.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	settings, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if settings.HeaderFile != "" && !filepath.IsAbs(settings.HeaderFile) {
		settings.HeaderFile = filepath.Join(filepath.Dir(path), settings.HeaderFile)
	}
	return settings, nil
}

// Parse decodes settings YAML. An empty document yields empty settings.
func Parse(data []byte) (*Settings, error) {
	var settings Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	return &settings, nil
}
