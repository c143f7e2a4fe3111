package render

import (
	"io"

	"github.com/go-pdf/fpdf"

	"piuml/internal/style"
)

type pdfCanvas struct {
	out io.Writer
	doc *fpdf.Fpdf
}

func newPDFCanvas(out io.Writer) *pdfCanvas {
	return &pdfCanvas{out: out}
}

func (c *pdfCanvas) Start(size style.Size) {
	c.doc = fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	c.doc.SetMargins(0, 0, 0)
	c.doc.SetAutoPageBreak(false, 0)
	c.doc.AddPage()
	c.doc.SetFont("Helvetica", "", 9)
	c.doc.SetDrawColor(0, 0, 0)
	c.doc.SetLineWidth(0.8)
}

func (c *pdfCanvas) pen(pen Pen) {
	if pen.Dashed {
		c.doc.SetDashPattern([]float64{4, 4}, 0)
	} else {
		c.doc.SetDashPattern([]float64{}, 0)
	}
}

func (c *pdfCanvas) Polyline(pts []style.Pos, pen Pen) {
	c.pen(pen)
	for i := 0; i+1 < len(pts); i++ {
		c.doc.Line(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
	}
}

func (c *pdfCanvas) Rect(pos style.Pos, size style.Size, pen Pen) {
	c.pen(pen)
	c.doc.SetFillColor(255, 255, 255)
	c.doc.Rect(pos.X, pos.Y, size.Width, size.Height, "FD")
}

func (c *pdfCanvas) Polygon(pts []style.Pos, pen Pen) {
	c.pen(pen)
	points := make([]fpdf.PointType, len(pts))
	for i, p := range pts {
		points[i] = fpdf.PointType{X: p.X, Y: p.Y}
	}
	if pen.Filled {
		c.doc.SetFillColor(0, 0, 0)
	} else {
		c.doc.SetFillColor(255, 255, 255)
	}
	c.doc.Polygon(points, "FD")
}

func (c *pdfCanvas) Ellipse(center style.Pos, rx, ry float64, pen Pen) {
	c.pen(pen)
	c.doc.SetFillColor(255, 255, 255)
	c.doc.Ellipse(center.X, center.Y, rx, ry, 0, "FD")
}

func (c *pdfCanvas) Text(pos style.Pos, s string) {
	w := c.doc.GetStringWidth(s)
	c.doc.Text(pos.X-w/2, pos.Y+3, s)
}

func (c *pdfCanvas) TextLeft(pos style.Pos, s string) {
	c.doc.Text(pos.X, pos.Y+3, s)
}

func (c *pdfCanvas) End() error {
	return c.doc.Output(c.out)
}
