package uml

import (
	"piuml/internal/ast"
	"piuml/internal/source"
)

// Feature is one compartment line of a classifier.
type Feature struct {
	Kind    ast.FeatureKind `json:"kind"`
	Name    string          `json:"name"`
	Type    string          `json:"type,omitempty"`
	Default string          `json:"default,omitempty"`
	Raw     string          `json:"raw"`
	// Group names the `<<tag>>` compartment the line belongs to; empty
	// for the plain attribute/operation compartments.
	Group string      `json:"group,omitempty"`
	Span  source.Span `json:"-"`
}

// Element is one declared UML element inside the containment forest.
type Element struct {
	ID          string      `json:"id"`
	Kind        Kind        `json:"kind"`
	Name        string      `json:"name"`
	Stereotypes []string    `json:"stereotypes,omitempty"`
	Features    []Feature   `json:"features,omitempty"`
	Symbol      string      `json:"symbol,omitempty"` // folded interface: `o)` or `(o`
	Parent      *Element    `json:"-" msgpack:"-"`
	Children    []*Element  `json:"children,omitempty"`
	Span        source.Span `json:"-"`
}

// RelKind is the semantic relationship kind after validation. An
// association between a stereotype and a metaclass is promoted to an
// extension; folded interface lines become dependencies or connectors.
type RelKind uint8

const (
	Association RelKind = iota
	Extension
	Dependency
	Generalization
	CommentLine
	Connector
)

var relKindNames = [...]string{
	Association:    "association",
	Extension:      "extension",
	Dependency:     "dependency",
	Generalization: "generalization",
	CommentLine:    "commentline",
	Connector:      "connector",
}

func (k RelKind) String() string {
	if int(k) < len(relKindNames) {
		return relKindNames[k]
	}
	return "unknown"
}

// End is one association end.
type End struct {
	Name  string       `json:"name,omitempty"`
	Mult  string       `json:"mult,omitempty"`
	Adorn ast.EndAdorn `json:"adorn"`
}

// Relationship is one validated edge between two elements.
type Relationship struct {
	Kind        RelKind       `json:"kind"`
	Tail        *Element      `json:"-" msgpack:"-"`
	Head        *Element      `json:"-" msgpack:"-"`
	TailID      string        `json:"tail"`
	HeadID      string        `json:"head"`
	Name        string        `json:"name,omitempty"`
	Stereotypes []string      `json:"stereotypes,omitempty"`
	TailEnd     End           `json:"tailEnd,omitempty"`
	HeadEnd     End           `json:"headEnd,omitempty"`
	Dir         ast.Direction `json:"dir,omitempty"`
	// Supplier is the element id playing the supplier role for
	// dependencies and generalizations.
	Supplier string      `json:"supplier,omitempty"`
	Span     source.Span `json:"-"`
}

// Directive is one alignment directive in source order.
type Directive struct {
	Op    ast.AlignOp   `json:"op"`
	IDs   []string      `json:"ids"`
	Index int           `json:"index"`
	Span  source.Span   `json:"-"`
	Spans []source.Span `json:"-"`
}

// Diagram is the validated model: the containment forest, the flat edge
// set and the alignment directives, all in source order.
type Diagram struct {
	Roots         []*Element      `json:"roots"`
	Relationships []*Relationship `json:"relationships"`
	Directives    []Directive     `json:"directives,omitempty"`

	elements map[string]*Element
}

// Element resolves a declared element id.
func (d *Diagram) Element(id string) (*Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

// Elements returns every element of the diagram in declaration order.
func (d *Diagram) Elements() []*Element {
	out := make([]*Element, 0, len(d.elements))
	var walk func(els []*Element)
	walk = func(els []*Element) {
		for _, el := range els {
			out = append(out, el)
			walk(el.Children)
		}
	}
	walk(d.Roots)
	return out
}
