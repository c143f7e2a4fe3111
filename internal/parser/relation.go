package parser

import (
	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/token"
)

// parseRelation parses the line forms connecting declared elements:
//
//	id OP id                       association, dependency, ...
//	id OP 'name' <<st>> id         association extras
//	id... o) 'name' id...          component assembly
//	id o) 'name'                   folded interface dependency
//	o) 'name' id                   folded interface dependency
//
// A folded interface is the symbol and a quoted name in either order,
// with ids on either side. `(o` stands in for `o)` throughout.
func (p *Parser) parseRelation() (ast.StmtID, bool) {
	tail := make([]ast.Ref, 0, 1)
	for p.at(token.Ident) {
		tok := p.advance()
		tail = append(tail, ast.Ref{Text: tok.Text, Span: tok.Span})
	}

	switch tok := p.lx.Peek(); tok.Kind {
	case token.FoldedIfaceL, token.FoldedIfaceR:
		return p.parseIfaceSymbolFirst(tail)
	case token.Name:
		return p.parseIfaceNameFirst(tail)
	case token.Assoc, token.Dependency, token.Generalization, token.CommentLine:
		if len(tail) != 1 {
			p.err(diag.SynUnexpectedToken,
				"expected exactly one element id before \""+tok.Text+"\"")
			return ast.NoStmtID, false
		}
		return p.parseEdge(tail[0])
	default:
		p.err(diag.SynUnexpectedToken,
			"expected relationship operator, got \""+tok.Text+"\"")
		return ast.NoStmtID, false
	}
}

// parseEdge finishes `tail OP ['name'] [<<st>>] head`.
func (p *Parser) parseEdge(tail ast.Ref) (ast.StmtID, bool) {
	op := p.advance()
	info := decodeOp(op.Kind, op.Text)

	rel := ast.RelationStmt{
		Kind:      info.Kind,
		Op:        op.Text,
		Tail:      tail,
		TailAdorn: info.TailAdorn,
		HeadAdorn: info.HeadAdorn,
		Dir:       info.Dir,
		DepLetter: info.DepLetter,
		Span:      tail.Span.Cover(op.Span),
	}

	if p.at(token.Name) {
		if rel.Kind != ast.RelAssociation {
			p.err(diag.SynUnexpectedToken,
				"only associations take an inline name")
			return ast.NoStmtID, false
		}
		tok := p.advance()
		rel.Name = token.Unquote(tok.Text)
		rel.NameSpan = tok.Span
	}
	if p.at(token.Stereotype) {
		if rel.Kind != ast.RelAssociation && rel.Kind != ast.RelDependency {
			p.err(diag.SynUnexpectedToken,
				"this relationship kind takes no stereotype")
			return ast.NoStmtID, false
		}
		tok := p.advance()
		rel.Stereotypes = token.SplitStereotypes(tok.Text)
	}

	head, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected element id after \""+op.Text+"\"")
	if !ok {
		return ast.NoStmtID, false
	}
	rel.Head = ast.Ref{Text: head.Text, Span: head.Span}
	rel.Span = rel.Span.Cover(head.Span)

	return p.arenas.Stmts.NewRelation(rel), true
}

// parseIfaceSymbolFirst finishes `tail... o) 'name' [head...]` and its
// `(o` counterpart.
func (p *Parser) parseIfaceSymbolFirst(tail []ast.Ref) (ast.StmtID, bool) {
	op := p.advance()
	symbol := "(o"
	if op.Kind == token.FoldedIfaceR {
		symbol = "o)"
	}
	name, ok := p.expect(token.Name, diag.SynExpectName,
		"expected interface name after \""+symbol+"\"")
	if !ok {
		return ast.NoStmtID, false
	}

	head := make([]ast.Ref, 0)
	for p.at(token.Ident) {
		tok := p.advance()
		head = append(head, ast.Ref{Text: tok.Text, Span: tok.Span})
	}
	return p.newFoldedIface(tail, head, symbol, op, name)
}

// parseIfaceNameFirst finishes `tail... 'name' (o [head...]` and its
// `o)` counterpart.
func (p *Parser) parseIfaceNameFirst(tail []ast.Ref) (ast.StmtID, bool) {
	name := p.advance()
	op := p.lx.Peek()
	if op.Kind != token.FoldedIfaceL && op.Kind != token.FoldedIfaceR {
		p.err(diag.SynUnexpectedToken,
			"expected \"o)\" or \"(o\" after interface name")
		return ast.NoStmtID, false
	}
	p.advance()
	symbol := "(o"
	if op.Kind == token.FoldedIfaceR {
		symbol = "o)"
	}

	head := make([]ast.Ref, 0)
	for p.at(token.Ident) {
		tok := p.advance()
		head = append(head, ast.Ref{Text: tok.Text, Span: tok.Span})
	}
	return p.newFoldedIface(tail, head, symbol, op, name)
}

// newFoldedIface classifies a folded interface line as an assembly or a
// single-side interface dependency.
func (p *Parser) newFoldedIface(tail, head []ast.Ref, symbol string, op, name token.Token) (ast.StmtID, bool) {
	rel := ast.RelationStmt{
		Op:          symbol,
		IfaceName:   token.Unquote(name.Text),
		IfaceSymbol: symbol,
		AsmTail:     tail,
		AsmHead:     head,
		Span:        op.Span.Cover(name.Span),
	}
	if len(tail) > 0 {
		rel.Span = rel.Span.Cover(tail[0].Span)
	}
	if len(head) > 0 {
		rel.Span = rel.Span.Cover(head[len(head)-1].Span)
	}

	switch {
	case len(tail) > 0 && len(head) > 0:
		rel.Kind = ast.RelAssembly
	case len(tail) == 1 && len(head) == 0, len(tail) == 0 && len(head) == 1:
		rel.Kind = ast.RelIfaceDep
	default:
		p.report(diag.SynUnexpectedToken, diag.SevError, rel.Span,
			"folded interface needs a component on at least one side")
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewRelation(rel), true
}
