package render

import (
	"io"
	"math"
	"strings"

	"piuml/internal/ast"
	"piuml/internal/layout"
	"piuml/internal/style"
	"piuml/internal/uml"
)

// Render draws the laid-out diagram to out in the given format.
func Render(d *uml.Diagram, res *layout.Result, format Format, out io.Writer, sheet *style.Sheet) error {
	if sheet == nil {
		sheet = style.Default()
	}
	c, err := newCanvas(format, out)
	if err != nil {
		return err
	}
	p := &painter{c: c, res: res, sheet: sheet}

	c.Start(style.Size{
		Width:  res.Canvas.Size.Width + sheet.Margin.Right,
		Height: res.Canvas.Size.Height + sheet.Margin.Bottom,
	})
	for _, el := range d.Elements() {
		p.element(el)
	}
	for _, e := range res.Edges {
		p.edge(e)
	}
	return c.End()
}

type painter struct {
	c     Canvas
	res   *layout.Result
	sheet *style.Sheet
}

func (p *painter) element(el *uml.Element) {
	b := p.res.Nodes[el.ID]
	if b == nil {
		return
	}
	switch el.Kind {
	case uml.KFoldedIface:
		r := p.sheet.IconSize.Width / 2
		center := style.Pos{X: b.Pos.X + b.Size.Width/2, Y: b.Pos.Y + b.Size.Height/2}
		p.c.Ellipse(center, r, r, Pen{})
		p.c.Text(style.Pos{X: center.X, Y: b.Pos.Y + b.Size.Height + p.sheet.Font.LineHeight}, el.Name)
	case uml.KUsecase:
		center := style.Pos{X: b.Pos.X + b.Size.Width/2, Y: b.Pos.Y + b.Size.Height/2}
		p.c.Ellipse(center, b.Size.Width/2, b.Size.Height/2, Pen{})
		p.c.Text(center, el.Name)
	case uml.KActor:
		p.actor(el, b)
	case uml.KComment:
		p.note(el, b)
	case uml.KPackage, uml.KProfile:
		p.tabbedBox(b)
		p.head(el, b)
	case uml.KNode, uml.KDevice:
		p.box3d(b)
		p.head(el, b)
		p.compartments(el, b)
	default:
		p.c.Rect(b.Pos, b.Size, Pen{})
		if el.Kind == uml.KComponent {
			p.componentIcon(b)
		}
		if el.Kind == uml.KArtifact {
			p.artifactIcon(b)
		}
		p.head(el, b)
		p.compartments(el, b)
	}
}

// head draws the stereotype and name lines of the first compartment.
func (p *painter) head(el *uml.Element, b *layout.Box) {
	font := p.sheet.Font
	cx := b.Pos.X + b.Size.Width/2
	y := b.Pos.Y + b.Padding.Top + font.LineHeight/2
	if len(el.Stereotypes) > 0 {
		p.c.Text(style.Pos{X: cx, Y: y}, "«"+strings.Join(el.Stereotypes, ", ")+"»")
		y += font.LineHeight
	}
	p.c.Text(style.Pos{X: cx, Y: y}, el.Name)
}

// compartments draws the feature lines below the head, one compartment
// per stereotype group, separated by full-width rules.
func (p *painter) compartments(el *uml.Element, b *layout.Box) {
	if len(el.Features) == 0 {
		return
	}
	font := p.sheet.Font
	pad := b.Padding
	x := b.Pos.X + pad.Left
	y := b.Pos.Y + b.Compartments[0]

	group := ""
	for i, f := range el.Features {
		if i == 0 || f.Group != group {
			group = f.Group
			p.c.Polyline(line(
				style.Pos{X: b.Pos.X, Y: y},
				style.Pos{X: b.Pos.X + b.Size.Width, Y: y},
			), Pen{})
			y += pad.Top
			if group != "" {
				p.c.Text(style.Pos{X: b.Pos.X + b.Size.Width/2, Y: y + font.LineHeight/2}, "«"+group+"»")
				y += font.LineHeight
			}
		}
		p.c.TextLeft(style.Pos{X: x, Y: y + font.LineHeight/2}, featureLine(f))
		y += font.LineHeight
		if next := i + 1; next == len(el.Features) || el.Features[next].Group != group {
			y += pad.Bottom
		}
	}
}

func featureLine(f uml.Feature) string {
	if f.Raw != "" {
		return f.Raw
	}
	s := f.Name
	if f.Type != "" {
		s += ": " + f.Type
	}
	if f.Default != "" {
		s += " = " + f.Default
	}
	return s
}

func (p *painter) tabbedBox(b *layout.Box) {
	tabW, tabH := 50.0, 20.0
	p.c.Rect(style.Pos{X: b.Pos.X, Y: b.Pos.Y + tabH},
		style.Size{Width: b.Size.Width, Height: b.Size.Height - tabH}, Pen{})
	p.c.Rect(b.Pos, style.Size{Width: tabW, Height: tabH}, Pen{})
}

func (p *painter) box3d(b *layout.Box) {
	const d = 10
	x, y := b.Pos.X, b.Pos.Y
	w, h := b.Size.Width, b.Size.Height
	p.c.Rect(b.Pos, b.Size, Pen{})
	p.c.Polyline([]style.Pos{
		{X: x, Y: y},
		{X: x + d, Y: y - d},
		{X: x + w + d, Y: y - d},
		{X: x + w + d, Y: y + h - d},
		{X: x + w, Y: y + h},
	}, Pen{})
	p.c.Polyline(line(style.Pos{X: x + w, Y: y}, style.Pos{X: x + w + d, Y: y - d}), Pen{})
}

func (p *painter) note(el *uml.Element, b *layout.Box) {
	const ear = 15
	x, y := b.Pos.X, b.Pos.Y
	w, h := x+b.Size.Width, y+b.Size.Height
	p.c.Polyline([]style.Pos{
		{X: w - ear, Y: y},
		{X: w - ear, Y: y + ear},
		{X: w, Y: y + ear},
		{X: w - ear, Y: y},
		{X: x, Y: y},
		{X: x, Y: h},
		{X: w, Y: h},
		{X: w, Y: y + ear},
	}, Pen{})
	p.c.TextLeft(style.Pos{X: x + b.Padding.Left, Y: y + b.Size.Height/2}, el.Name)
}

func (p *painter) actor(el *uml.Element, b *layout.Box) {
	font := p.sheet.Font
	figH := b.Size.Height - font.LineHeight
	cx := b.Pos.X + b.Size.Width/2
	headR := figH / 5

	y := b.Pos.Y
	p.c.Ellipse(style.Pos{X: cx, Y: y + headR}, headR, headR, Pen{})
	// torso
	p.c.Polyline(line(style.Pos{X: cx, Y: y + 2*headR}, style.Pos{X: cx, Y: y + 3.5*headR}), Pen{})
	// arms
	p.c.Polyline(line(
		style.Pos{X: cx - 1.5*headR, Y: y + 2.5*headR},
		style.Pos{X: cx + 1.5*headR, Y: y + 2.5*headR}), Pen{})
	// legs
	p.c.Polyline([]style.Pos{
		{X: cx - 1.5*headR, Y: y + figH},
		{X: cx, Y: y + 3.5*headR},
		{X: cx + 1.5*headR, Y: y + figH},
	}, Pen{})
	p.c.Text(style.Pos{X: cx, Y: b.Pos.Y + b.Size.Height - font.LineHeight/2}, el.Name)
}

func (p *painter) componentIcon(b *layout.Box) {
	x := b.Pos.X + b.Size.Width - 18
	y := b.Pos.Y + 4
	p.c.Rect(style.Pos{X: x, Y: y}, style.Size{Width: 12, Height: 14}, Pen{})
	p.c.Rect(style.Pos{X: x - 3, Y: y + 3}, style.Size{Width: 6, Height: 3}, Pen{})
	p.c.Rect(style.Pos{X: x - 3, Y: y + 8}, style.Size{Width: 6, Height: 3}, Pen{})
}

func (p *painter) artifactIcon(b *layout.Box) {
	const ear = 5
	x := b.Pos.X + b.Size.Width - 20
	y := b.Pos.Y + 4
	p.c.Polyline([]style.Pos{
		{X: x + 12 - ear, Y: y},
		{X: x + 12 - ear, Y: y + ear},
		{X: x + 12, Y: y + ear},
		{X: x + 12 - ear, Y: y},
		{X: x, Y: y},
		{X: x, Y: y + 14},
		{X: x + 12, Y: y + 14},
		{X: x + 12, Y: y + ear},
	}, Pen{})
}

func (p *painter) edge(e layout.Edge) {
	if len(e.Points) < 2 {
		return
	}
	rel := e.Rel
	pen := Pen{Dashed: rel.Kind == uml.Dependency || rel.Kind == uml.CommentLine}
	p.c.Polyline(e.Points, pen)

	tailTip, tailFrom := e.Points[0], e.Points[1]
	headTip, headFrom := e.Points[len(e.Points)-1], e.Points[len(e.Points)-2]
	supplierTip, supplierFrom := headTip, headFrom
	if rel.Supplier == rel.TailID {
		supplierTip, supplierFrom = tailTip, tailFrom
	}

	switch rel.Kind {
	case uml.Generalization:
		p.triangle(supplierTip, supplierFrom, false)
	case uml.Extension:
		p.triangle(headTip, headFrom, true)
	case uml.Dependency:
		p.openArrow(supplierTip, supplierFrom)
	case uml.Association:
		p.associationEnds(rel, tailTip, tailFrom, headTip, headFrom)
	}

	label := strings.Join(relStereotypes(rel), " ")
	if rel.Name != "" {
		if label != "" {
			label += " "
		}
		label += rel.Name
	}
	if label != "" {
		mid := midpoint(e.Points)
		p.c.Text(style.Pos{X: mid.X, Y: mid.Y - p.sheet.Font.LineHeight/2}, label)
	}
}

func relStereotypes(rel *uml.Relationship) []string {
	out := make([]string, 0, len(rel.Stereotypes))
	for _, s := range rel.Stereotypes {
		out = append(out, "«"+s+"»")
	}
	return out
}

func (p *painter) associationEnds(rel *uml.Relationship, tailTip, tailFrom, headTip, headFrom style.Pos) {
	p.adorn(rel.TailEnd.Adorn, tailTip, tailFrom)
	p.adorn(rel.HeadEnd.Adorn, headTip, headFrom)
	if rel.Dir == ast.DirHead {
		p.openArrow(headTip, headFrom)
	}
	if rel.Dir == ast.DirTail {
		p.openArrow(tailTip, tailFrom)
	}
	p.endLabel(rel.TailEnd, tailTip, tailFrom)
	p.endLabel(rel.HeadEnd, headTip, headFrom)
}

func (p *painter) adorn(a ast.EndAdorn, tip, from style.Pos) {
	switch a {
	case ast.EndShared:
		p.diamond(tip, from, false)
	case ast.EndComposite:
		p.diamond(tip, from, true)
	case ast.EndNavigable:
		p.openArrow(tip, from)
	}
}

func (p *painter) endLabel(end uml.End, tip, from style.Pos) {
	label := end.Name
	if end.Mult != "" {
		if label != "" {
			label += " "
		}
		label += "[" + end.Mult + "]"
	}
	if label == "" {
		return
	}
	// nudge the label off the line toward the neighbouring point
	dx, dy := unit(tip, from)
	p.c.Text(style.Pos{
		X: tip.X + dx*14 - dy*10,
		Y: tip.Y + dy*14 + dx*10,
	}, label)
}

func (p *painter) openArrow(tip, from style.Pos) {
	l, r := arrowWings(tip, from, 12, 5)
	p.c.Polyline(line(l, tip), Pen{})
	p.c.Polyline(line(tip, r), Pen{})
}

func (p *painter) triangle(tip, from style.Pos, filled bool) {
	l, r := arrowWings(tip, from, 14, 7)
	p.c.Polygon([]style.Pos{tip, l, r}, Pen{Filled: filled})
}

func (p *painter) diamond(tip, from style.Pos, filled bool) {
	dx, dy := unit(tip, from)
	mid := style.Pos{X: tip.X + dx*10, Y: tip.Y + dy*10}
	back := style.Pos{X: tip.X + dx*20, Y: tip.Y + dy*20}
	p.c.Polygon([]style.Pos{
		tip,
		{X: mid.X - dy*6, Y: mid.Y + dx*6},
		back,
		{X: mid.X + dy*6, Y: mid.Y - dx*6},
	}, Pen{Filled: filled})
}

// arrowWings returns the two base points of an arrow head at tip,
// pointing away from the neighbour point.
func arrowWings(tip, from style.Pos, length, width float64) (style.Pos, style.Pos) {
	dx, dy := unit(tip, from)
	base := style.Pos{X: tip.X + dx*length, Y: tip.Y + dy*length}
	return style.Pos{X: base.X - dy*width, Y: base.Y + dx*width},
		style.Pos{X: base.X + dy*width, Y: base.Y - dx*width}
}

// unit is the normalized direction from tip toward its neighbour.
func unit(tip, from style.Pos) (float64, float64) {
	dx, dy := from.X-tip.X, from.Y-tip.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 1, 0
	}
	return dx / d, dy / d
}

func midpoint(pts []style.Pos) style.Pos {
	a, b := pts[len(pts)/2-1], pts[len(pts)/2]
	return style.Pos{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
