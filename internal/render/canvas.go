// Package render draws a laid-out diagram. Drawing goes through a
// small canvas interface with one backend per output format.
package render

import (
	"fmt"
	"io"

	"piuml/internal/style"
)

// Format selects the output backend.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
	PDF Format = "pdf"
)

// ParseFormat maps a user supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case SVG, PNG, PDF:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// Ext returns the file extension for the format.
func (f Format) Ext() string { return "." + string(f) }

// Pen carries the stroke options for one drawing call.
type Pen struct {
	Dashed bool
	// Filled paints the shape solid instead of outlined.
	Filled bool
}

// Canvas is the drawing surface the painter targets. Coordinates are
// in points with the origin at the top left.
type Canvas interface {
	Start(size style.Size)
	Polyline(pts []style.Pos, pen Pen)
	Rect(pos style.Pos, size style.Size, pen Pen)
	Polygon(pts []style.Pos, pen Pen)
	Ellipse(center style.Pos, rx, ry float64, pen Pen)
	// Text draws a string centered on pos.
	Text(pos style.Pos, s string)
	// TextLeft draws a string with pos as its left midpoint.
	TextLeft(pos style.Pos, s string)
	End() error
}

func newCanvas(format Format, out io.Writer) (Canvas, error) {
	switch format {
	case SVG:
		return newSVGCanvas(out), nil
	case PNG:
		return newPNGCanvas(out), nil
	case PDF:
		return newPDFCanvas(out), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

func line(a, b style.Pos) []style.Pos { return []style.Pos{a, b} }
