// Package project loads a framing plan (regional loads and beams) from a
// TOML or YAML project file and converts it into the calculation model.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/emrekoc/gotrib/internal/trib"
)

// File is the on-disk description of a framing plan.
type File struct {
	Name  string `toml:"name" yaml:"name"`
	Loads []Load `toml:"loads" yaml:"loads"`
	Beams []Beam `toml:"beams" yaml:"beams"`
}

// Load describes one regional load entry.
type Load struct {
	Name      string  `toml:"name" yaml:"name"`
	Intensity float64 `toml:"intensity" yaml:"intensity"`
	YStart    float64 `toml:"y_start" yaml:"y_start"`
	YEnd      float64 `toml:"y_end" yaml:"y_end"`
	Length    float64 `toml:"length" yaml:"length"`
	Kind      string  `toml:"kind" yaml:"kind"`
	Color     string  `toml:"color" yaml:"color"`
}

// Beam describes one beam entry.
type Beam struct {
	Name     string  `toml:"name" yaml:"name"`
	Position float64 `toml:"position" yaml:"position"`
	Length   float64 `toml:"length" yaml:"length"`
}

// Read parses the project file at path. The format is chosen by file
// extension: .toml, or .yaml/.yml.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported project file extension %q (want .toml, .yaml or .yml)", ext)
	}

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

func (f *File) validate() error {
	if len(f.Loads) == 0 && len(f.Beams) == 0 {
		return fmt.Errorf("project defines no loads and no beams")
	}
	for i, l := range f.Loads {
		if l.Name == "" {
			return fmt.Errorf("loads[%d]: missing name", i)
		}
		if l.YEnd < l.YStart {
			return fmt.Errorf("load %q: y_end (%g) is before y_start (%g)", l.Name, l.YEnd, l.YStart)
		}
		switch trib.LoadKind(l.Kind) {
		case "", trib.KindDead, trib.KindLive, trib.KindRoof, trib.KindWind, trib.KindEarthquake, trib.KindRain:
		default:
			return fmt.Errorf("load %q: unknown kind %q", l.Name, l.Kind)
		}
	}
	for i, b := range f.Beams {
		if b.Name == "" {
			return fmt.Errorf("beams[%d]: missing name", i)
		}
	}
	return nil
}

// Model converts the file entries into calculation types.
func (f *File) Model() ([]trib.RegionalLoad, []trib.Beam) {
	loads := make([]trib.RegionalLoad, len(f.Loads))
	for i, l := range f.Loads {
		loads[i] = trib.RegionalLoad{
			Name:      l.Name,
			Intensity: l.Intensity,
			YStart:    l.YStart,
			YEnd:      l.YEnd,
			Length:    l.Length,
			Kind:      trib.LoadKind(l.Kind),
			Color:     l.Color,
		}
	}
	beams := make([]trib.Beam, len(f.Beams))
	for i, b := range f.Beams {
		beams[i] = trib.Beam{Name: b.Name, Position: b.Position, Length: b.Length}
	}
	return loads, beams
}
