package ast

import (
	"piuml/internal/source"
)

type FeatureKind uint8

const (
	// FeatureAttribute is `: name: type [= default]` under a classifier.
	FeatureAttribute FeatureKind = iota
	// FeatureOperation is `: name(...) [: type]` under a classifier.
	FeatureOperation
	// FeatureMultiplicity is `: name [m..n]` under a relationship; the
	// double colon form attaches to the head end instead of the tail.
	FeatureMultiplicity
	// FeatureStereotypeAttrs is a `: <<tag>> :` compartment header; the
	// attribute lines that follow belong to the tagged group.
	FeatureStereotypeAttrs
)

// FeatureStmt is one `:` or `::` line, already split into its parts.
// Raw keeps the payload exactly as written for compartment rendering.
type FeatureStmt struct {
	Kind    FeatureKind
	Head    bool // `::` form
	Raw     string
	Name    string
	Type    string
	Default string
	Mult    string
	Span    source.Span
}

func (s *Stmts) NewFeature(f FeatureStmt) StmtID {
	payload := PayloadID(s.Features.Allocate(f))
	return s.New(StmtFeature, f.Span, payload)
}

func (s *Stmts) Feature(id StmtID) (*FeatureStmt, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFeature || !stmt.Payload.IsValid() {
		return nil, false
	}
	return s.Features.Get(uint32(stmt.Payload)), true
}
