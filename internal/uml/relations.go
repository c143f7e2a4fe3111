package uml

import (
	"piuml/internal/ast"
	"piuml/internal/diag"
)

func (b *builder) relation(rel *ast.RelationStmt) {
	switch rel.Kind {
	case ast.RelAssociation:
		b.association(rel)
	case ast.RelDependency:
		b.dependency(rel)
	case ast.RelGeneralization:
		b.generalization(rel)
	case ast.RelCommentLine:
		b.commentLine(rel)
	case ast.RelAssembly:
		b.assembly(rel)
	case ast.RelIfaceDep:
		b.ifaceDependency(rel)
	}
}

func (b *builder) association(rel *ast.RelationStmt) {
	tail, ok1 := b.resolve(rel.Tail)
	head, ok2 := b.resolve(rel.Head)
	if !ok1 || !ok2 {
		return
	}

	r := &Relationship{
		Kind:        Association,
		Tail:        tail,
		Head:        head,
		TailID:      tail.ID,
		HeadID:      head.ID,
		Name:        rel.Name,
		Stereotypes: rel.Stereotypes,
		TailEnd:     End{Adorn: rel.TailAdorn},
		HeadEnd:     End{Adorn: rel.HeadAdorn},
		Dir:         rel.Dir,
		Span:        rel.Span,
	}
	b.associationEnds(rel, r)

	// a stereotype applied to a metaclass is an extension
	pair := [2]Kind{tail.Kind, head.Kind}
	if pair == [2]Kind{KStereotype, KMetaclass} || pair == [2]Kind{KMetaclass, KStereotype} {
		r.Kind = Extension
	}
	b.diagram.Relationships = append(b.diagram.Relationships, r)
}

func (b *builder) associationEnds(rel *ast.RelationStmt, r *Relationship) {
	for _, fid := range rel.Features {
		f, ok := b.arenas.Stmts.Feature(fid)
		if !ok || f.Kind != ast.FeatureMultiplicity {
			continue
		}
		if f.Head {
			r.HeadEnd.Name = f.Name
			r.HeadEnd.Mult = f.Mult
		} else {
			r.TailEnd.Name = f.Name
			r.TailEnd.Mult = f.Mult
		}
	}
}

// dependencyStereotypes maps the unconstrained operator letters to
// their stereotype; `i`, `m` and `e` carry end-kind checks and are
// handled case by case.
var dependencyStereotypes = map[byte]string{
	'u': "use",
	'r': "realization",
}

func (b *builder) dependency(rel *ast.RelationStmt) {
	tail, ok1 := b.resolve(rel.Tail)
	head, ok2 := b.resolve(rel.Head)
	if !ok1 || !ok2 {
		return
	}

	var stereotypes []string
	switch rel.DepLetter {
	case 0:
	case 'i':
		switch {
		case tail.Kind == KPackage && head.Kind == KPackage:
			stereotypes = append(stereotypes, "import")
		case tail.Kind == KUsecase && head.Kind == KUsecase:
			stereotypes = append(stereotypes, "include")
		default:
			b.report(diag.UmlBadDependency, diag.SevError, rel.Span,
				"dependency -i> (package import or use case inclusion) can be"+
					" specified only between two packages or two use cases", nil)
			return
		}
	case 'm':
		if tail.Kind != KPackage || head.Kind != KPackage {
			b.report(diag.UmlBadDependency, diag.SevError, rel.Span,
				"dependency -m> (package merge) can be specified only between two packages", nil)
			return
		}
		stereotypes = append(stereotypes, "merge")
	case 'e':
		if tail.Kind != KUsecase || head.Kind != KUsecase {
			b.report(diag.UmlBadDependency, diag.SevError, rel.Span,
				"dependency -e> (use case extension) can be specified only between two use cases", nil)
			return
		}
		stereotypes = append(stereotypes, "extend")
	default:
		stereotypes = append(stereotypes, dependencyStereotypes[rel.DepLetter])
	}
	stereotypes = append(stereotypes, rel.Stereotypes...)

	supplier := head.ID
	if len(rel.Op) > 0 && rel.Op[0] == '<' {
		supplier = tail.ID
	}
	b.diagram.Relationships = append(b.diagram.Relationships, &Relationship{
		Kind:        Dependency,
		Tail:        tail,
		Head:        head,
		TailID:      tail.ID,
		HeadID:      head.ID,
		Stereotypes: stereotypes,
		Supplier:    supplier,
		Span:        rel.Span,
	})
}

func (b *builder) generalization(rel *ast.RelationStmt) {
	tail, ok1 := b.resolve(rel.Tail)
	head, ok2 := b.resolve(rel.Head)
	if !ok1 || !ok2 {
		return
	}
	supplier := head.ID
	if rel.Op == "<=" {
		supplier = tail.ID
	}
	b.diagram.Relationships = append(b.diagram.Relationships, &Relationship{
		Kind:     Generalization,
		Tail:     tail,
		Head:     head,
		TailID:   tail.ID,
		HeadID:   head.ID,
		Supplier: supplier,
		Span:     rel.Span,
	})
}

func (b *builder) commentLine(rel *ast.RelationStmt) {
	tail, ok1 := b.resolve(rel.Tail)
	head, ok2 := b.resolve(rel.Head)
	if !ok1 || !ok2 {
		return
	}
	if (tail.Kind == KComment) == (head.Kind == KComment) {
		b.report(diag.UmlBadCommentLine, diag.SevError, rel.Span,
			"one of comment line ends shall be a comment", nil)
		return
	}
	b.diagram.Relationships = append(b.diagram.Relationships, &Relationship{
		Kind:   CommentLine,
		Tail:   tail,
		Head:   head,
		TailID: tail.ID,
		HeadID: head.ID,
		Span:   rel.Span,
	})
}

// newIface creates the interface node behind a folded interface symbol.
func (b *builder) newIface(rel *ast.RelationStmt) *Element {
	iface := &Element{
		ID:     b.opts.IfaceID(),
		Kind:   KFoldedIface,
		Name:   rel.IfaceName,
		Symbol: rel.IfaceSymbol,
		Span:   rel.Span,
	}
	b.diagram.elements[iface.ID] = iface
	b.diagram.Roots = append(b.diagram.Roots, iface)
	return iface
}

func (b *builder) assembly(rel *ast.RelationStmt) {
	all := make([]*Element, 0, len(rel.AsmTail)+len(rel.AsmHead))
	ok := true
	for _, ref := range append(append([]ast.Ref{}, rel.AsmTail...), rel.AsmHead...) {
		el, found := b.resolve(ref)
		if !found {
			ok = false
			continue
		}
		if el.Kind != KComponent {
			b.report(diag.UmlBadAssembly, diag.SevError, ref.Span,
				"invalid id \""+el.ID+"\" - component assembly allowed between components only", nil)
			ok = false
			continue
		}
		all = append(all, el)
	}
	if !ok {
		return
	}

	iface := b.newIface(rel)
	for i, el := range all {
		tail, head := el, iface
		if i >= len(rel.AsmTail) {
			tail, head = iface, el
		}
		b.diagram.Relationships = append(b.diagram.Relationships, &Relationship{
			Kind:   Connector,
			Tail:   tail,
			Head:   head,
			TailID: tail.ID,
			HeadID: head.ID,
			Span:   rel.Span,
		})
	}
}

func (b *builder) ifaceDependency(rel *ast.RelationStmt) {
	idFirst := len(rel.AsmTail) == 1
	var ref ast.Ref
	if idFirst {
		ref = rel.AsmTail[0]
	} else {
		ref = rel.AsmHead[0]
	}
	el, found := b.resolve(ref)
	if !found {
		return
	}

	// use/realization depends on which side of the symbol the id is
	stereo := map[[2]bool]string{
		{true, true}:   "realize", // id o)
		{true, false}:  "use",     // id (o
		{false, true}:  "use",     // o) id
		{false, false}: "realize", // (o id
	}[[2]bool{idFirst, rel.IfaceSymbol == "o)"}]

	iface := b.newIface(rel)
	tail, head := iface, el
	if !idFirst {
		tail, head = el, iface
	}
	b.diagram.Relationships = append(b.diagram.Relationships, &Relationship{
		Kind:        Dependency,
		Tail:        tail,
		Head:        head,
		TailID:      tail.ID,
		HeadID:      head.ID,
		Stereotypes: []string{stereo},
		Supplier:    iface.ID,
		Span:        rel.Span,
	})
}
