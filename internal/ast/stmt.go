package ast

import (
	"piuml/internal/source"
)

type StmtKind uint8

const (
	StmtElement StmtKind = iota
	StmtFeature
	StmtRelation
	StmtAlign
	StmtLayoutBlock
)

// Stmt is one statement line. Kind selects which payload arena the
// Payload index points into.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type Stmts struct {
	Arena        *Arena[Stmt]
	Elements     *Arena[ElementStmt]
	Features     *Arena[FeatureStmt]
	Relations    *Arena[RelationStmt]
	Aligns       *Arena[AlignStmt]
	LayoutBlocks *Arena[LayoutBlockStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:        NewArena[Stmt](capHint),
		Elements:     NewArena[ElementStmt](capHint),
		Features:     NewArena[FeatureStmt](capHint),
		Relations:    NewArena[RelationStmt](capHint),
		Aligns:       NewArena[AlignStmt](capHint),
		LayoutBlocks: NewArena[LayoutBlockStmt](capHint),
	}
}

func (s *Stmts) New(kind StmtKind, span source.Span, payloadID PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payloadID,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}
