package ast

import (
	"piuml/internal/source"
)

// AlignAxis distinguishes the two directive families.
type AlignAxis uint8

const (
	AxisHorizontal AlignAxis = iota // top, center, bottom
	AxisVertical                    // left, middle, right
)

func (a AlignAxis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// AlignOp is a canonical alignment operator.
type AlignOp uint8

const (
	AlignTop AlignOp = iota
	AlignCenter
	AlignBottom
	AlignLeft
	AlignMiddle
	AlignRight
)

var alignOpNames = [...]string{
	AlignTop:    "top",
	AlignCenter: "center",
	AlignBottom: "bottom",
	AlignLeft:   "left",
	AlignMiddle: "middle",
	AlignRight:  "right",
}

func (op AlignOp) String() string {
	if int(op) < len(alignOpNames) {
		return alignOpNames[op]
	}
	return "unknown"
}

// Axis returns the directive family the operator belongs to.
func (op AlignOp) Axis() AlignAxis {
	switch op {
	case AlignLeft, AlignMiddle, AlignRight:
		return AxisVertical
	default:
		return AxisHorizontal
	}
}

// ParseAlignOp maps an operator word to its canonical value.
func ParseAlignOp(text string) (AlignOp, bool) {
	for op, name := range alignOpNames {
		if name == text {
			return AlignOp(op), true
		}
	}
	return 0, false
}

// AlignStmt is one directive line, from either the `:layout:` block form
// (`center: a b`) or the inline form (`align=center: a b`).
type AlignStmt struct {
	Op      AlignOp
	OpSpan  source.Span
	IDs     []string
	IDSpans []source.Span
	Span    source.Span
}

func (s *Stmts) NewAlign(al AlignStmt) StmtID {
	payload := PayloadID(s.Aligns.Allocate(al))
	return s.New(StmtAlign, al.Span, payload)
}

func (s *Stmts) Align(id StmtID) (*AlignStmt, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAlign || !stmt.Payload.IsValid() {
		return nil, false
	}
	return s.Aligns.Get(uint32(stmt.Payload)), true
}

// LayoutBlockStmt is a `:layout:` section: an ordered run of AlignStmt ids.
type LayoutBlockStmt struct {
	Directives []StmtID
	Span       source.Span
}

func (s *Stmts) NewLayoutBlock(lb LayoutBlockStmt) StmtID {
	payload := PayloadID(s.LayoutBlocks.Allocate(lb))
	return s.New(StmtLayoutBlock, lb.Span, payload)
}

func (s *Stmts) LayoutBlock(id StmtID) (*LayoutBlockStmt, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLayoutBlock || !stmt.Payload.IsValid() {
		return nil, false
	}
	return s.LayoutBlocks.Get(uint32(stmt.Payload)), true
}
