package lexer

import (
	"piuml/internal/token"
)

// scanIdentOrKeyword reads an identifier and classifies it. A few one-word
// forms fall through to other token kinds:
//
//	o)          folded interface, right form
//	x==... O==  association operators with an end adornment letter
//	top: a b    layout operator line
//	align=top:  inline layout directive
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	// `o)` is the folded interface symbol, not an identifier
	if text == "o" && lx.cursor.Peek() == ')' {
		lx.cursor.Bump()
		sp = lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.FoldedIfaceR, Span: sp, Text: lx.text(sp)}
	}

	// `x==`, `O==`: the letter is an association end adornment
	if (text == "x" || text == "O") && lx.cursor.Peek() == '=' {
		lx.cursor.Reset(start)
		return lx.scanRelationOp()
	}

	next := lx.cursor.Peek()

	// `top: a b` — alignment operator line
	if next == ':' {
		lx.cursor.Bump()
		sp = lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.LayoutInline, Span: sp, Text: lx.text(sp)}
	}

	// `align=top:` / `vertical=left:` — inline directive
	if next == '=' && isIdentStartByte(lx.cursor.PeekAt(1)) {
		rewind := lx.cursor.Mark()
		lx.cursor.Bump() // '='
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() == ':' {
			lx.cursor.Bump()
			sp = lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.LayoutInline, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Reset(rewind)
	}

	if kw := token.LookupKeyword(text); kw != token.Ident {
		return token.Token{Kind: kw, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
