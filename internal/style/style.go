// Package style holds the geometric primitives and the default visual
// parameters used by the layout engine and the renderers. An optional
// .piuml.toml file overrides the defaults.
package style

import (
	"github.com/BurntSushi/toml"
)

// Pos is a point on the diagram canvas, in points.
type Pos struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Size is the width and height of a diagram item.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Area is four-sided spacing around or inside a diagram item.
type Area struct {
	Top    float64 `json:"top" toml:"top"`
	Right  float64 `json:"right" toml:"right"`
	Bottom float64 `json:"bottom" toml:"bottom"`
	Left   float64 `json:"left" toml:"left"`
}

// Font approximates text extents for a monospace-ish rendering font.
// The layout engine never touches a real font; it measures with these.
type Font struct {
	// CharWidth is the width of one terminal cell, in points.
	CharWidth float64 `toml:"char_width"`
	// LineHeight is the height of one text line, in points.
	LineHeight float64 `toml:"line_height"`
}

// Sheet is the complete set of style values the layout engine reads.
type Sheet struct {
	Margin  Area `toml:"margin"`
	Padding Area `toml:"padding"`
	// MinSize is the smallest box any element may occupy.
	MinSize Size `toml:"min_size"`
	// IconSize is the box used for folded interface markers.
	IconSize Size `toml:"icon_size"`
	// MinLineLength keeps connected boxes apart.
	MinLineLength float64 `toml:"min_line_length"`
	Font          Font    `toml:"font"`
}

// Default returns the stock sheet used when no .piuml.toml is present.
func Default() *Sheet {
	return &Sheet{
		Margin:        Area{Top: 10, Right: 10, Bottom: 10, Left: 10},
		Padding:       Area{Top: 5, Right: 10, Bottom: 5, Left: 10},
		MinSize:       Size{Width: 80, Height: 40},
		IconSize:      Size{Width: 20, Height: 20},
		MinLineLength: 100,
		Font:          Font{CharWidth: 7, LineHeight: 14},
	}
}

// Load reads a TOML sheet from path on top of the defaults. Values the
// file does not mention keep their stock setting.
func Load(path string) (*Sheet, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, err
	}
	return s, nil
}
