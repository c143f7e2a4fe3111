package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"piuml/internal/style"
)

type svgCanvas struct {
	s *svg.SVG
}

func newSVGCanvas(out io.Writer) *svgCanvas {
	return &svgCanvas{s: svg.New(out)}
}

func (c *svgCanvas) Start(size style.Size) {
	c.s.Start(int(size.Width), int(size.Height))
	c.s.Rect(0, 0, int(size.Width), int(size.Height), "fill:white")
}

func (c *svgCanvas) stroke(pen Pen) string {
	st := "stroke:black;fill:none"
	if pen.Filled {
		st = "stroke:black;fill:black"
	}
	if pen.Dashed {
		st += ";stroke-dasharray:4,4"
	}
	return st
}

func (c *svgCanvas) Polyline(pts []style.Pos, pen Pen) {
	xs, ys := coords(pts)
	c.s.Polyline(xs, ys, c.stroke(pen))
}

func (c *svgCanvas) Rect(pos style.Pos, size style.Size, pen Pen) {
	st := c.stroke(pen)
	if !pen.Filled {
		st = "stroke:black;fill:white"
	}
	c.s.Rect(int(pos.X), int(pos.Y), int(size.Width), int(size.Height), st)
}

func (c *svgCanvas) Polygon(pts []style.Pos, pen Pen) {
	xs, ys := coords(pts)
	st := c.stroke(pen)
	if !pen.Filled {
		st = "stroke:black;fill:white"
	}
	c.s.Polygon(xs, ys, st)
}

func (c *svgCanvas) Ellipse(center style.Pos, rx, ry float64, pen Pen) {
	c.s.Ellipse(int(center.X), int(center.Y), int(rx), int(ry), "stroke:black;fill:white")
}

func (c *svgCanvas) Text(pos style.Pos, s string) {
	c.s.Text(int(pos.X), int(pos.Y)+4, s,
		"font-family:sans-serif;font-size:11px;text-anchor:middle")
}

func (c *svgCanvas) TextLeft(pos style.Pos, s string) {
	c.s.Text(int(pos.X), int(pos.Y)+4, s,
		"font-family:sans-serif;font-size:11px;text-anchor:start")
}

func (c *svgCanvas) End() error {
	c.s.End()
	return nil
}

func coords(pts []style.Pos) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i] = int(p.X)
		ys[i] = int(p.Y)
	}
	return xs, ys
}
