package parser

import (
	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/token"
)

// parseElement parses a declaration line:
//
//	keyword id [<<stereotypes>>] ['name']
//
// Stereotypes and the display name may appear in either order.
func (p *Parser) parseElement() (ast.StmtID, bool) {
	kw := p.advance()

	idTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected element identifier after \""+kw.Text+"\"")
	if !ok {
		return ast.NoStmtID, false
	}

	if first, dup := p.declared[idTok.Text]; dup {
		p.reportNotes(diag.SynDuplicateID, diag.SevError, idTok.Span,
			"element id \""+idTok.Text+"\" is already declared",
			[]diag.Note{{Span: first, Msg: "first declared here"}})
		return ast.NoStmtID, false
	}
	p.declared[idTok.Text] = idTok.Span

	el := ast.ElementStmt{
		Keyword: kw.Kind,
		ID:      idTok.Text,
		IDSpan:  idTok.Span,
		Span:    kw.Span,
	}

	seenName := false
	seenStereo := false
	for {
		switch tok := p.lx.Peek(); tok.Kind {
		case token.Name:
			if seenName {
				p.err(diag.SynUnexpectedToken, "element already has a name")
				return ast.NoStmtID, false
			}
			seenName = true
			p.advance()
			el.Name = token.Unquote(tok.Text)
			el.NameSpan = tok.Span
			el.Span = el.Span.Cover(tok.Span)

		case token.Stereotype:
			if seenStereo {
				p.err(diag.SynUnexpectedToken, "element already has a stereotype list")
				return ast.NoStmtID, false
			}
			seenStereo = true
			p.advance()
			el.Stereotypes = token.SplitStereotypes(tok.Text)
			el.Span = el.Span.Cover(tok.Span)

		case token.Newline, token.EOF:
			if !seenName {
				// ids double as display names for anonymous declarations
				el.Name = el.ID
				el.NameSpan = el.IDSpan
			}
			return p.arenas.Stmts.NewElement(el), true

		default:
			p.err(diag.SynUnexpectedToken,
				"unexpected \""+tok.Text+"\" in element declaration")
			return ast.NoStmtID, false
		}
	}
}
