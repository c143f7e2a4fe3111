package lexer

import (
	"piuml/internal/token"
)

// scanRelationOp scans a relationship operator. Greediness mirrors the
// operator mini-grammar:
//
//	association     [xO*<]?=(<|>)?=[xO*>]?
//	dependency      <[urime]?-  |  -[urime]>
//	generalization  <=  |  =>
//	comment line    --
//	folded iface    (o
func (lx *Lexer) scanRelationOp() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	// the association pattern subsumes several two-char operators, so it is
	// tried first and rolled back on failure
	if lx.tryAssociation() {
		return emit(token.Assoc)
	}

	switch b := lx.cursor.Peek(); b {
	case '(':
		lx.cursor.Bump()
		if lx.cursor.Eat('o') {
			return emit(token.FoldedIfaceL)
		}

	case '<':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return emit(token.Generalization)
		}
		if isDependencyLetter(lx.cursor.Peek()) && lx.cursor.PeekAt(1) == '-' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return emit(token.Dependency)
		}
		if lx.cursor.Eat('-') {
			return emit(token.Dependency)
		}

	case '=':
		lx.cursor.Bump()
		if lx.cursor.Eat('>') {
			return emit(token.Generalization)
		}

	case '-':
		lx.cursor.Bump()
		if lx.cursor.Eat('-') {
			return emit(token.CommentLine)
		}
		if isDependencyLetter(lx.cursor.Peek()) && lx.cursor.PeekAt(1) == '>' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return emit(token.Dependency)
		}
		if lx.cursor.Eat('>') {
			return emit(token.Dependency)
		}

	default:
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diagUnknownChar, sp, "malformed relationship operator")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// tryAssociation consumes an association operator, or leaves the cursor
// untouched and returns false.
func (lx *Lexer) tryAssociation() bool {
	start := lx.cursor.Mark()

	switch lx.cursor.Peek() {
	case 'x', 'O', '*', '<':
		lx.cursor.Bump()
	}
	if !lx.cursor.Eat('=') {
		lx.cursor.Reset(start)
		return false
	}
	switch lx.cursor.Peek() {
	case '<', '>':
		lx.cursor.Bump()
	}
	if !lx.cursor.Eat('=') {
		lx.cursor.Reset(start)
		return false
	}
	switch lx.cursor.Peek() {
	case 'x', 'O', '*', '>':
		lx.cursor.Bump()
	}
	return true
}
