package ast

import (
	"piuml/internal/source"
)

type RelKind uint8

const (
	RelAssociation RelKind = iota
	RelDependency
	RelGeneralization
	RelCommentLine
	RelAssembly
	// RelIfaceDep is a folded interface with a component on one side
	// only, e.g. `c o) 'Mgmt'`; it renders as a use or realization
	// dependency between the component and the interface.
	RelIfaceDep
)

var relKindNames = map[RelKind]string{
	RelAssociation:    "association",
	RelDependency:     "dependency",
	RelGeneralization: "generalization",
	RelCommentLine:    "comment line",
	RelAssembly:       "assembly",
	RelIfaceDep:       "interface dependency",
}

func (k RelKind) String() string {
	if name, ok := relKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// EndAdorn is the decoration on one association end, taken from the
// first or last operator character.
type EndAdorn uint8

const (
	EndUnknown     EndAdorn = iota // =
	EndNone                        // x
	EndShared                      // O, hollow diamond
	EndComposite                   // *, filled diamond
	EndNavigable                   // < or >
)

// Direction is the reading-direction arrow from the operator middle
// (=<= points at the tail, =>= at the head).
type Direction uint8

const (
	DirNone Direction = iota
	DirTail
	DirHead
)

// Ref is a relationship endpoint as written in source.
type Ref struct {
	Text string
	Span source.Span
}

// RelationStmt is one relationship line. Tail is the left operand and
// Head the right one. Multiplicity feature lines indented under the
// statement land in Features.
//
// Assembly and folded interface lines keep every component id per side
// in AsmTail/AsmHead and the interface display name in IfaceName.
type RelationStmt struct {
	Kind        RelKind
	Op          string
	Tail        Ref
	Head        Ref
	Name        string
	NameSpan    source.Span
	Stereotypes []string
	TailAdorn   EndAdorn
	HeadAdorn   EndAdorn
	Dir         Direction
	DepLetter   byte // urime letter on dependency operators, 0 if absent
	IfaceName   string
	IfaceSymbol string // `o)` or `(o`
	AsmTail     []Ref
	AsmHead     []Ref
	Features    []StmtID
	Span        source.Span
}

func (s *Stmts) NewRelation(rel RelationStmt) StmtID {
	payload := PayloadID(s.Relations.Allocate(rel))
	return s.New(StmtRelation, rel.Span, payload)
}

func (s *Stmts) Relation(id StmtID) (*RelationStmt, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtRelation || !stmt.Payload.IsValid() {
		return nil, false
	}
	return s.Relations.Get(uint32(stmt.Payload)), true
}

// AddRelationFeature appends a multiplicity feature to the relationship rel.
func (s *Stmts) AddRelationFeature(rel, feature StmtID) {
	if r, ok := s.Relation(rel); ok {
		r.Features = append(r.Features, feature)
	}
}
