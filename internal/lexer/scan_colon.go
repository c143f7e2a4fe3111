package lexer

import (
	"strings"

	"piuml/internal/token"
)

// scanColonLine handles the statement forms that open with a colon:
//
//	:layout:         layout section header
//	:: payload       head association end
//	: payload        feature line (attribute, operation, multiplicity)
//
// Feature payloads stay opaque at this level; the parser interprets them.
func (lx *Lexer) scanColonLine() token.Token {
	start := lx.cursor.Mark()

	if lx.isLayoutHeader() {
		for i := 0; i < len(":layout:"); i++ {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.LayoutBlockKw, Span: sp, Text: lx.text(sp)}
	}

	kind := token.Feature
	lx.cursor.Bump() // ':'
	if lx.cursor.Peek() == ':' {
		lx.cursor.Bump()
		kind = token.FeatureHead
	}

	payloadStart := lx.cursor.Off
	lx.skipToLineEnd()
	sp := lx.cursor.SpanFrom(start)

	raw := string(lx.file.Content[payloadStart:sp.End])
	return token.Token{Kind: kind, Span: sp, Text: stripLineComment(raw)}
}

func (lx *Lexer) isLayoutHeader() bool {
	const header = ":layout:"
	for i := 0; i < len(header); i++ {
		if lx.cursor.PeekAt(uint32(i)) != header[i] {
			return false
		}
	}
	tail := lx.cursor.PeekAt(uint32(len(header)))
	return tail == '\n' || tail == ' ' || tail == '\t' || tail == 0
}

// stripLineComment removes an unescaped `#` comment tail and trims the
// payload.
func stripLineComment(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && (i == 0 || s[i-1] != '\\') {
			s = s[:i]
			break
		}
	}
	s = strings.ReplaceAll(s, `\#`, "#")
	return strings.TrimSpace(s)
}
