// Package formats parses level files.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk shape of a level file.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Size      YAMLSize          `yaml:"size"`
	Moves     int               `yaml:"moves"`
	Target    int               `yaml:"target"`
	TypeCount int               `yaml:"types,omitempty"`
	Layout    []string          `yaml:"layout,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize is the board size. Omitted dimensions default to 8, or to the
// layout's size when a layout is given.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Level is a parsed level file.
type Level struct {
	ID          string
	Name        string
	Width       int
	Height      int
	Moves       int
	TargetScore int
	TypeCount   int
	Layout      []string
	Metadata    map[string]string
}

const defaultSide = 8

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	w, h := yl.Size.W, yl.Size.H
	if len(yl.Layout) > 0 {
		if h == 0 {
			h = len(yl.Layout)
		}
		if w == 0 {
			w = len(yl.Layout[0])
		}
	}
	if w == 0 {
		w = defaultSide
	}
	if h == 0 {
		h = defaultSide
	}

	return Level{
		ID:          yl.ID,
		Name:        yl.Name,
		Width:       w,
		Height:      h,
		Moves:       yl.Moves,
		TargetScore: yl.Target,
		TypeCount:   yl.TypeCount,
		Layout:      yl.Layout,
		Metadata:    yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
