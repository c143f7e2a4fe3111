package ast

import (
	"piuml/internal/source"
	"piuml/internal/token"
)

// ElementStmt is a declaration line: `keyword id <<stereotypes>> 'name'`.
// Indented child statements (features, nested elements, relationships
// between children) hang off Children in source order.
type ElementStmt struct {
	Keyword     token.Kind
	ID          string
	IDSpan      source.Span
	Name        string
	NameSpan    source.Span
	Stereotypes []string
	Children    []StmtID
	Span        source.Span
}

func (s *Stmts) NewElement(el ElementStmt) StmtID {
	payload := PayloadID(s.Elements.Allocate(el))
	return s.New(StmtElement, el.Span, payload)
}

func (s *Stmts) Element(id StmtID) (*ElementStmt, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtElement || !stmt.Payload.IsValid() {
		return nil, false
	}
	return s.Elements.Get(uint32(stmt.Payload)), true
}

// AddChild appends child to the element statement parent.
func (s *Stmts) AddChild(parent, child StmtID) {
	if el, ok := s.Element(parent); ok {
		el.Children = append(el.Children, child)
	}
}
