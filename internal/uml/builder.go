package uml

import (
	"github.com/google/uuid"

	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/source"
)

type Options struct {
	// Reporter receives semantic diagnostics. Nil disables reporting.
	Reporter diag.Reporter
	// IfaceID generates ids for folded interface nodes; defaults to
	// random UUIDs.
	IfaceID func() string
}

// Build walks a parsed file and produces the validated diagram. ok is
// false when any semantic error was reported; the partial diagram is
// still returned for tooling.
func Build(arenas *ast.Builder, file ast.FileID, opts Options) (*Diagram, bool) {
	if opts.IfaceID == nil {
		opts.IfaceID = uuid.NewString
	}
	b := &builder{
		arenas: arenas,
		opts:   opts,
		diagram: &Diagram{
			elements: make(map[string]*Element),
		},
	}

	f := arenas.Files.Get(file)
	for _, id := range f.Stmts {
		b.statement(id, nil)
	}
	return b.diagram, b.errs == 0
}

type builder struct {
	arenas   *ast.Builder
	opts     Options
	diagram  *Diagram
	errs     uint
}

func (b *builder) statement(id ast.StmtID, parent *Element) {
	stmt := b.arenas.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtElement:
		el, _ := b.arenas.Stmts.Element(id)
		b.element(el, parent)
	case ast.StmtRelation:
		rel, _ := b.arenas.Stmts.Relation(id)
		b.relation(rel)
	case ast.StmtAlign:
		al, _ := b.arenas.Stmts.Align(id)
		b.directive(al)
	case ast.StmtLayoutBlock:
		lb, _ := b.arenas.Stmts.LayoutBlock(id)
		if len(lb.Directives) == 0 {
			b.report(diag.SynEmptyLayoutBlock, diag.SevWarning, lb.Span,
				":layout: block has no directives", nil)
		}
		for _, dir := range lb.Directives {
			b.statement(dir, nil)
		}
	}
}

func (b *builder) element(st *ast.ElementStmt, parent *Element) {
	kind, ok := KindOf(st.Keyword)
	if !ok {
		return
	}

	el := &Element{
		ID:     st.ID,
		Kind:   kind,
		Name:   st.Name,
		Parent: parent,
		Span:   st.Span,
	}
	// UML keywords show up as an implicit leading stereotype
	if kind.IsKeyword() {
		el.Stereotypes = append(el.Stereotypes, kind.String())
	}
	el.Stereotypes = append(el.Stereotypes, st.Stereotypes...)

	b.diagram.elements[st.ID] = el
	if parent == nil {
		b.diagram.Roots = append(b.diagram.Roots, el)
	} else {
		parent.Children = append(parent.Children, el)
	}

	group := ""
	for _, childID := range st.Children {
		child := b.arenas.Stmts.Get(childID)
		if child.Kind == ast.StmtFeature {
			f, _ := b.arenas.Stmts.Feature(childID)
			group = b.feature(el, f, group)
			continue
		}
		if child.Kind == ast.StmtElement && !kind.IsPackaging() {
			b.report(diag.UmlNotPackaging, diag.SevError, child.Span,
				"element kind \""+kind.String()+"\" cannot contain other elements", nil)
			continue
		}
		b.statement(childID, el)
	}
}

// feature validates one compartment line and returns the group tag
// active for the following lines.
func (b *builder) feature(el *Element, f *ast.FeatureStmt, group string) string {
	if !el.Kind.HasCompartments() {
		b.report(diag.UmlNoCompartments, diag.SevError, f.Span,
			"element kind \""+el.Kind.String()+"\" takes no compartment lines", nil)
		return group
	}
	if f.Kind == ast.FeatureStereotypeAttrs {
		return f.Name
	}
	el.Features = append(el.Features, Feature{
		Kind:    f.Kind,
		Name:    f.Name,
		Type:    f.Type,
		Default: f.Default,
		Raw:     f.Raw,
		Group:   group,
		Span:    f.Span,
	})
	return group
}

func (b *builder) directive(al *ast.AlignStmt) {
	b.diagram.Directives = append(b.diagram.Directives, Directive{
		Op:    al.Op,
		IDs:   al.IDs,
		Index: len(b.diagram.Directives),
		Span:  al.Span,
		Spans: al.IDSpans,
	})
}

func (b *builder) resolve(ref ast.Ref) (*Element, bool) {
	el, ok := b.diagram.elements[ref.Text]
	if !ok {
		b.report(diag.UmlUnknownID, diag.SevError, ref.Span,
			"unknown element id \""+ref.Text+"\"", nil)
		return nil, false
	}
	return el, true
}

func (b *builder) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	if sev == diag.SevError {
		b.errs++
	}
	if b.opts.Reporter != nil {
		b.opts.Reporter.Report(code, sev, sp, msg, notes)
	}
}
