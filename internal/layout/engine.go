// Package layout computes concrete geometry for a validated diagram.
// Every element becomes a rectangle constraint variable; alignment
// groups, containment and line lengths become constraints over those
// rectangles, solved iteratively.
package layout

import (
	"fmt"

	"piuml/internal/align"
	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/source"
	"piuml/internal/style"
	"piuml/internal/uml"
)

type Options struct {
	// Reporter receives layout diagnostics. Nil disables reporting.
	Reporter diag.Reporter
	// Sheet overrides the default style values.
	Sheet *style.Sheet
}

// Edge is the routed polyline of one relationship.
type Edge struct {
	Rel    *uml.Relationship `json:"-" msgpack:"-"`
	Points []style.Pos       `json:"points"`
}

// Result holds the solved geometry: one box per element plus the
// canvas bounding box and routed relationship lines.
type Result struct {
	Canvas *Box            `json:"canvas"`
	Nodes  map[string]*Box `json:"nodes"`
	Edges  []Edge          `json:"edges"`
}

// Compute lays out the diagram under the resolved alignment state. ok
// is false when the constraints cannot be satisfied; the partial
// geometry is still returned.
func Compute(d *uml.Diagram, ar *align.Result, opts Options) (*Result, bool) {
	if opts.Sheet == nil {
		opts.Sheet = style.Default()
	}
	e := &engine{
		diagram:  d,
		aligned:  ar,
		opts:     opts,
		solver:   NewSolver(),
		boxes:    make(map[string]*Box),
		lines:    make(map[[2]string]float64),
		byParent: make(map[*uml.Element][]align.Group),
	}
	e.makeBoxes()
	e.cacheLines()
	for _, g := range ar.Groups {
		if el, ok := d.Element(g.Members[0]); ok {
			e.byParent[el.Parent] = append(e.byParent[el.Parent], g)
		}
	}

	e.constrainLevel(e.canvas, nil, d.Roots)
	for i := len(d.Roots) - 1; i >= 0; i-- {
		e.visit(d.Roots[i], e.canvas)
	}

	ok := true
	if err := e.solver.Solve(); err != nil {
		e.report(diag.AlignUnsatisfiable, source.Span{}, err.Error())
		ok = false
	}
	if ok && !e.verifyGroups() {
		ok = false
	}

	res := &Result{Canvas: e.canvas, Nodes: e.boxes}
	for _, rel := range d.Relationships {
		res.Edges = append(res.Edges, Edge{
			Rel:    rel,
			Points: route(e.boxes[rel.TailID], e.boxes[rel.HeadID]),
		})
	}
	return res, ok
}

type engine struct {
	diagram  *uml.Diagram
	aligned  *align.Result
	opts     Options
	solver   *Solver
	canvas   *Box
	boxes    map[string]*Box
	lines    map[[2]string]float64
	byParent map[*uml.Element][]align.Group
}

func (e *engine) makeBoxes() {
	sheet := e.opts.Sheet
	e.canvas = &Box{Compartments: []float64{0}}
	for _, el := range e.diagram.Elements() {
		b := &Box{
			ID:      el.ID,
			Margin:  sheet.Margin,
			Padding: sheet.Padding,
		}
		sizeBox(el, b, sheet)
		e.boxes[el.ID] = b
	}
}

// cacheLines records the minimum distance each relationship demands
// between the sibling boxes its ends roll up to.
func (e *engine) cacheLines() {
	min := e.opts.Sheet.MinLineLength
	for _, rel := range e.diagram.Relationships {
		t, h, ok := siblingPair(rel.Tail, rel.Head)
		if !ok {
			continue
		}
		e.bumpLine(t.ID, h.ID, min)
	}
}

func (e *engine) bumpLine(a, b string, length float64) {
	if cur := e.lines[[2]string{a, b}]; cur < length {
		e.lines[[2]string{a, b}] = length
	}
	if cur := e.lines[[2]string{b, a}]; cur < length {
		e.lines[[2]string{b, a}] = length
	}
}

// visit adds constraints for one element, depth first with siblings in
// reverse source order so line constraints settle before flow ones.
func (e *engine) visit(el *uml.Element, parent *Box) {
	b := e.boxes[el.ID]
	e.solver.Add(&MinSize{R: b})
	e.solver.Add(&Within{Kid: b, Parent: parent, Pad: e.containPad(b, parent)})

	if el.Kind == uml.KFoldedIface {
		e.constrainIface(el, b)
		return
	}
	if el.Kind.IsPackaging() {
		e.constrainLevel(b, el, el.Children)
	}
	for i := len(el.Children) - 1; i >= 0; i-- {
		e.visit(el.Children[i], b)
	}
}

// containPad keeps children below the parent's head compartment and
// inside its padding.
func (e *engine) containPad(kid, parent *Box) style.Area {
	pad := parent.Padding
	top := parent.Compartments[0] + pad.Top + pad.Bottom
	bottom := parent.MinSize.Height - (top + pad.Bottom)
	return style.Area{
		Top:    max(kid.Margin.Top, top),
		Right:  max(kid.Margin.Right, pad.Right),
		Bottom: max(kid.Margin.Bottom, bottom),
		Left:   max(kid.Margin.Left, pad.Left),
	}
}

// constrainLevel applies alignment groups to the children of one
// packaging node: the user groups for this level plus a default
// middle-aligned row over children no directive claimed.
func (e *engine) constrainLevel(parent *Box, owner *uml.Element, children []*uml.Element) {
	groups := e.byParent[owner]

	used := make(map[string]bool)
	for _, g := range groups {
		members := g.Members
		if !anyUsed(used, members) {
			// the first member keeps anchoring the default flow
			members = members[1:]
		}
		for _, id := range members {
			used[id] = true
		}
	}

	var lost []string
	for _, k := range children {
		if k.Kind != uml.KFoldedIface && !used[k.ID] {
			lost = append(lost, k.ID)
		}
	}
	if len(lost) > 1 {
		e.applyGroup(ast.AlignMiddle, lost)
	}
	for _, g := range groups {
		e.applyGroup(g.Op, g.Members)
	}
}

func anyUsed(used map[string]bool, ids []string) bool {
	for _, id := range ids {
		if used[id] {
			return true
		}
	}
	return false
}

// applyGroup emits the edge-equality constraint plus the spacing span
// for each adjacent member pair.
func (e *engine) applyGroup(op ast.AlignOp, ids []string) {
	for i := 0; i+1 < len(ids); i++ {
		a, b := e.boxes[ids[i]], e.boxes[ids[i+1]]
		p := Pair{A: a, B: b}
		switch op {
		case ast.AlignTop:
			e.solver.Add(&TopEq{p})
		case ast.AlignMiddle:
			e.solver.Add(&MiddleEq{p})
		case ast.AlignBottom:
			e.solver.Add(&BottomEq{p})
		case ast.AlignLeft:
			e.solver.Add(&LeftEq{p})
		case ast.AlignCenter:
			e.solver.Add(&CenterEq{p})
		case ast.AlignRight:
			e.solver.Add(&RightEq{p})
		}
		switch op {
		case ast.AlignTop, ast.AlignMiddle, ast.AlignBottom:
			dist := max(e.lines[[2]string{ids[i], ids[i+1]}], a.Margin.Right+b.Margin.Left)
			e.solver.Add(&MinHDist{Pair: p, Dist: dist})
		default:
			dist := max(e.lines[[2]string{ids[i], ids[i+1]}], a.Margin.Bottom+b.Margin.Top)
			e.solver.Add(&MinVDist{Pair: p, Dist: dist})
		}
	}
}

// constrainIface keeps a folded interface between the elements its
// connectors touch and spaces those elements far enough apart for both
// line halves.
func (e *engine) constrainIface(el *uml.Element, b *Box) {
	min := e.opts.Sheet.MinLineLength
	var others []*Box
	var left, right *uml.Element
	lLen, rLen := 0.0, 0.0
	for _, rel := range e.diagram.Relationships {
		if rel.Tail == el && rel.Head != el {
			if left == nil {
				left = rel.Head
			}
			lLen = max(lLen, min)
			others = append(others, e.boxes[rel.HeadID])
		}
		if rel.Head == el && rel.Tail != el {
			if right == nil {
				right = rel.Tail
			}
			rLen = max(rLen, min)
			others = append(others, e.boxes[rel.TailID])
		}
	}
	if len(others) == 0 {
		return
	}
	if left != nil && right != nil {
		if t, h, ok := siblingPair(left, right); ok {
			e.bumpLine(t.ID, h.ID, lLen+rLen)
		}
	}
	e.solver.Add(&Between{A: b, Others: others})
}

// verifyGroups confirms every alignment group ended up sharing its
// coordinate after solving.
func (e *engine) verifyGroups() bool {
	const eps = 0.5
	ok := true
	for _, g := range e.aligned.Groups {
		ref := e.coord(g.Op, g.Members[0])
		for _, id := range g.Members[1:] {
			v := e.coord(g.Op, id)
			if v-ref > eps || ref-v > eps {
				e.report(diag.AlignUnsatisfiable, e.span(id), fmt.Sprintf(
					"alignment directive %d: %q and %q do not share the %s coordinate",
					g.Index, g.Members[0], id, g.Op))
				ok = false
			}
		}
	}
	return ok
}

func (e *engine) coord(op ast.AlignOp, id string) float64 {
	b := e.boxes[id]
	switch op {
	case ast.AlignTop:
		return b.Pos.Y
	case ast.AlignMiddle:
		return b.middleY()
	case ast.AlignBottom:
		return b.bottom()
	case ast.AlignLeft:
		return b.Pos.X
	case ast.AlignRight:
		return b.right()
	default:
		return b.centerX()
	}
}

func (e *engine) span(id string) source.Span {
	if el, ok := e.diagram.Element(id); ok {
		return el.Span
	}
	return source.Span{}
}

func (e *engine) report(code diag.Code, sp source.Span, msg string) {
	if e.opts.Reporter != nil {
		e.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// siblingPair lifts two elements to the children of their lowest
// common ancestor. ok is false when one contains the other.
func siblingPair(a, b *uml.Element) (*uml.Element, *uml.Element, bool) {
	for depth(a) > depth(b) {
		a = a.Parent
	}
	for depth(b) > depth(a) {
		b = b.Parent
	}
	if a == b {
		return nil, nil, false
	}
	for a.Parent != b.Parent {
		a, b = a.Parent, b.Parent
	}
	return a, b, true
}

func depth(el *uml.Element) int {
	d := 0
	for p := el.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}
