package parser

import (
	"strings"

	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/source"
	"piuml/internal/token"
)

// parseLayoutBlock opens a `:layout:` section. The indented operator
// lines that follow attach through the containment stack.
func (p *Parser) parseLayoutBlock() (ast.StmtID, bool) {
	tok := p.advance()
	return p.arenas.Stmts.NewLayoutBlock(ast.LayoutBlockStmt{
		Span: tok.Span,
	}), true
}

// parseAlignLine parses one alignment directive:
//
//	center: a b c          block form, inside :layout: only
//	align=center: a b c    inline form, anywhere
//
// The axis word may also name the family directly (horizontal=,
// vertical=), which must then agree with the operator.
func (p *Parser) parseAlignLine() (ast.StmtID, bool) {
	tok := p.advance()
	opWord, axisWord, hasAxis := splitAlignPrefix(tok.Text)

	ownerKind, hasOwner := p.currentOwnerKind()
	if !hasAxis && (!hasOwner || ownerKind != ast.StmtLayoutBlock) {
		p.report(diag.SynBadAlignOperator, diag.SevError, tok.Span,
			"bare alignment operator outside a :layout: block")
		return ast.NoStmtID, false
	}

	op, ok := ast.ParseAlignOp(opWord)
	if !ok {
		p.report(diag.SynBadAlignOperator, diag.SevError, tok.Span,
			"unknown alignment operator \""+opWord+"\"")
		return ast.NoStmtID, false
	}
	if hasAxis && !axisAllows(axisWord, op) {
		p.report(diag.SynBadAlignOperator, diag.SevError, tok.Span,
			"operator \""+opWord+"\" does not belong to axis \""+axisWord+"\"")
		return ast.NoStmtID, false
	}

	al := ast.AlignStmt{
		Op:      op,
		OpSpan:  tok.Span,
		IDs:     make([]string, 0, 2),
		IDSpans: make([]source.Span, 0, 2),
		Span:    tok.Span,
	}
	for p.at(token.Ident) {
		id := p.advance()
		al.IDs = append(al.IDs, id.Text)
		al.IDSpans = append(al.IDSpans, id.Span)
		al.Span = al.Span.Cover(id.Span)
	}
	if len(al.IDs) < 2 {
		p.report(diag.SynExpectIdentifier, diag.SevError, al.Span,
			"alignment directive needs at least two element ids")
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewAlign(al), true
}

// splitAlignPrefix takes the raw `op:` or `axis=op:` token text apart.
func splitAlignPrefix(text string) (op, axis string, hasAxis bool) {
	text = strings.TrimSuffix(text, ":")
	if axisWord, opWord, found := strings.Cut(text, "="); found {
		return opWord, axisWord, true
	}
	return text, "", false
}

// axisAllows checks the axis word against the operator family.
func axisAllows(axis string, op ast.AlignOp) bool {
	switch axis {
	case "align":
		return true
	case "horizontal":
		return op.Axis() == ast.AxisHorizontal
	case "vertical":
		return op.Axis() == ast.AxisVertical
	default:
		return false
	}
}
