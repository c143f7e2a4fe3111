package lexer

import (
	"piuml/internal/token"
)

// scanName reads a quoted display name. Both '...' and "..." forms are
// accepted; \q escapes the quote character inside.
func (lx *Lexer) scanName() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Name, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diagUnterminatedString, sp, "unterminated name string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanStereotype reads a `<<a, b>>` stereotype list as one token.
func (lx *Lexer) scanStereotype() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '<'
	lx.cursor.Bump() // '<'
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		if lx.cursor.Peek() == '>' && lx.cursor.PeekAt(1) == '>' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Stereotype, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diagUnterminatedStereotyp, sp, "unterminated stereotype list")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
