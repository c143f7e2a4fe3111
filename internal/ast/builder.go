package ast

import (
	"piuml/internal/source"
)

type Hints struct{ Files, Stmts uint }

type Builder struct {
	Files *Files
	Stmts *Stmts
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 4
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Stmts: NewStmts(hints.Stmts),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	b.Files.Get(file).Stmts = append(b.Files.Get(file).Stmts, stmt)
}
