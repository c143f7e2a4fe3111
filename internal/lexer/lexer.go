package lexer

import (
	"piuml/internal/source"
	"piuml/internal/token"
)

// Lexer turns piUML source text into a stream of tokens.
//
// The language is line oriented: every non-blank, non-comment line starts
// with an Indent token and ends with a Newline token. Blank lines and `#`
// comment lines never produce tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	// look buffers a token scanned ahead by Peek.
	look *token.Token
	// pending holds the colon-line token stashed by beginLine while its
	// Indent token is being returned. Kept apart from look so peeking an
	// Indent cannot clobber the stash.
	pending  *token.Token
	atLine   bool // cursor stands at the start of a fresh line
	produced bool // at least one token emitted for the current line
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		atLine: true,
	}
}

// Next returns the next token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.scan()
}

func (lx *Lexer) scan() token.Token {
	if lx.pending != nil {
		tok := *lx.pending
		lx.pending = nil
		return tok
	}

	if lx.atLine {
		if tok, ok := lx.beginLine(); ok {
			return tok
		}
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	lx.skipSpaces()

	b := lx.cursor.Peek()
	switch {
	case lx.cursor.EOF():
		lx.atLine = true
		if lx.produced {
			// unterminated last line still closes its statement
			lx.produced = false
			return token.Token{Kind: token.Newline, Span: lx.emptySpan()}
		}
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}

	case b == '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.atLine = true
		lx.produced = false
		return token.Token{Kind: token.Newline, Span: lx.cursor.SpanFrom(start)}

	case b == '#':
		lx.skipToLineEnd()
		return lx.scan()

	case b == '\'' || b == '"':
		return lx.emit(lx.scanName())

	case b == '<' && lx.cursor.PeekAt(1) == '<':
		return lx.emit(lx.scanStereotype())

	case isIdentStartByte(b):
		return lx.emit(lx.scanIdentOrKeyword())

	case isOpStartByte(b):
		return lx.emit(lx.scanRelationOp())

	default:
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diagUnknownChar, sp, "unknown character")
		return lx.emit(token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)})
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.scan()
		lx.look = &t
	}
	return *lx.look
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return lx.emptySpan()
}

// beginLine positions the cursor on the first meaningful line and emits its
// Indent token. Returns false at EOF.
func (lx *Lexer) beginLine() (token.Token, bool) {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()

		for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
			lx.cursor.Bump()
		}

		switch lx.cursor.Peek() {
		case '\n':
			// blank line
			lx.cursor.Bump()
			continue
		case '#':
			lx.skipToLineEnd()
			if lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			continue
		case 0:
			if lx.cursor.EOF() {
				return token.Token{}, false
			}
		}

		sp := lx.cursor.SpanFrom(start)
		lx.atLine = false
		lx.produced = true
		tok := token.Token{Kind: token.Indent, Span: sp, Text: lx.text(sp)}

		// feature lines and the layout header swallow the line remainder
		if lx.cursor.Peek() == ':' {
			rest := lx.scanColonLine()
			lx.pending = &rest
		}
		return tok, true
	}
	return token.Token{}, false
}

func (lx *Lexer) emit(tok token.Token) token.Token {
	lx.produced = true
	return tok
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) skipSpaces() {
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			return
		}
		lx.cursor.Bump()
	}
}

// skipToLineEnd consumes everything up to (not including) the newline.
func (lx *Lexer) skipToLineEnd() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}
