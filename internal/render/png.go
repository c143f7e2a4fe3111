package render

import (
	"io"

	"github.com/fogleman/gg"

	"piuml/internal/style"
)

type pngCanvas struct {
	out io.Writer
	ctx *gg.Context
}

func newPNGCanvas(out io.Writer) *pngCanvas {
	return &pngCanvas{out: out}
}

func (c *pngCanvas) Start(size style.Size) {
	c.ctx = gg.NewContext(int(size.Width)+1, int(size.Height)+1)
	c.ctx.SetRGB(1, 1, 1)
	c.ctx.Clear()
	c.ctx.SetRGB(0, 0, 0)
	c.ctx.SetLineWidth(1)
}

func (c *pngCanvas) pen(pen Pen) {
	if pen.Dashed {
		c.ctx.SetDash(4, 4)
	} else {
		c.ctx.SetDash()
	}
}

func (c *pngCanvas) Polyline(pts []style.Pos, pen Pen) {
	c.pen(pen)
	c.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.ctx.LineTo(p.X, p.Y)
	}
	c.ctx.Stroke()
}

func (c *pngCanvas) Rect(pos style.Pos, size style.Size, pen Pen) {
	c.pen(pen)
	c.ctx.DrawRectangle(pos.X, pos.Y, size.Width, size.Height)
	c.fillStroke(pen)
}

func (c *pngCanvas) Polygon(pts []style.Pos, pen Pen) {
	c.pen(pen)
	c.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.ctx.LineTo(p.X, p.Y)
	}
	c.ctx.ClosePath()
	c.fillStroke(pen)
}

func (c *pngCanvas) Ellipse(center style.Pos, rx, ry float64, pen Pen) {
	c.pen(pen)
	c.ctx.DrawEllipse(center.X, center.Y, rx, ry)
	c.fillStroke(Pen{})
}

func (c *pngCanvas) fillStroke(pen Pen) {
	if pen.Filled {
		c.ctx.SetRGB(0, 0, 0)
	} else {
		c.ctx.SetRGB(1, 1, 1)
	}
	c.ctx.FillPreserve()
	c.ctx.SetRGB(0, 0, 0)
	c.ctx.Stroke()
}

func (c *pngCanvas) Text(pos style.Pos, s string) {
	c.ctx.DrawStringAnchored(s, pos.X, pos.Y, 0.5, 0.5)
}

func (c *pngCanvas) TextLeft(pos style.Pos, s string) {
	c.ctx.DrawStringAnchored(s, pos.X, pos.Y, 0, 0.5)
}

func (c *pngCanvas) End() error {
	return c.ctx.EncodePNG(c.out)
}
