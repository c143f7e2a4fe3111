package parser

import (
	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/lexer"
	"piuml/internal/source"
	"piuml/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the per-file parsing state.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span

	// frames is the open containment stack driven by line indentation.
	// frames[0] is the file level.
	frames []frame
	// last is the most recent statement, the owner candidate for a
	// deeper-indented line.
	last     ast.StmtID
	lastKind ast.StmtKind

	// declared maps element ids to their declaration spans; a second
	// declaration of an id is rejected here, not in the model builder.
	declared map[string]source.Span
}

// frame is one open nesting level. indent is the indentation shared by
// every line at this level; the first line establishes it.
type frame struct {
	owner  ast.StmtID // NoStmtID means file level
	kind   ast.StmtKind
	indent string
	set    bool
}

// ParseFile parses one file into the shared arenas. The lexer must be
// positioned at the start of its file.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
		frames:   []frame{{owner: ast.NoStmtID}},
		declared: make(map[string]source.Span),
	}

	p.parseStatements()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// parseStatements is the top loop: one statement per source line.
func (p *Parser) parseStatements() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		indent, ok := p.expect(token.Indent, diag.SynUnexpectedToken, "expected start of line")
		if !ok {
			p.resyncLine()
			continue
		}
		if !p.enterLevel(indent.Text, indent.Span) {
			p.resyncLine()
			continue
		}
		stmtID, ok := p.parseStatement()
		if !ok {
			p.resyncLine()
			continue
		}
		p.attach(stmtID)
		p.endLine()
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

// parseStatement dispatches on the first content token of the line.
func (p *Parser) parseStatement() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.IsElementKeyword():
		return p.parseElement()
	case tok.Kind == token.Feature || tok.Kind == token.FeatureHead:
		return p.parseFeature()
	case tok.Kind == token.LayoutBlockKw:
		return p.parseLayoutBlock()
	case tok.Kind == token.LayoutInline:
		return p.parseAlignLine()
	case tok.Kind == token.Ident || tok.Kind == token.Name,
		tok.Kind == token.FoldedIfaceL || tok.Kind == token.FoldedIfaceR:
		return p.parseRelation()
	default:
		p.err(diag.SynUnexpectedToken, "unexpected token \""+tok.Text+"\"")
		return ast.NoStmtID, false
	}
}

// enterLevel adjusts the containment stack for a line indented with text.
func (p *Parser) enterLevel(indent string, sp source.Span) bool {
	top := &p.frames[len(p.frames)-1]
	if !top.set {
		top.indent = indent
		top.set = true
		return true
	}
	if indent == top.indent {
		return true
	}
	if len(indent) > len(top.indent) && hasIndentPrefix(indent, top.indent) {
		return p.push(indent, sp)
	}
	// dedent: unwind to a previously established level
	for len(p.frames) > 1 {
		p.frames = p.frames[:len(p.frames)-1]
		if p.frames[len(p.frames)-1].indent == indent {
			return true
		}
	}
	p.report(diag.SynBadIndent, diag.SevError, sp,
		"line indentation matches no enclosing level")
	return false
}

// push opens a nesting level under the previous statement.
func (p *Parser) push(indent string, sp source.Span) bool {
	if !p.last.IsValid() {
		p.report(diag.SynBadIndent, diag.SevError, sp,
			"indented line without a statement to nest under")
		return false
	}
	switch p.lastKind {
	case ast.StmtElement, ast.StmtRelation, ast.StmtLayoutBlock:
	default:
		p.report(diag.SynStatementNotNestable, diag.SevError, sp,
			"this statement cannot own nested lines")
		return false
	}
	p.frames = append(p.frames, frame{
		owner:  p.last,
		kind:   p.lastKind,
		indent: indent,
		set:    true,
	})
	return true
}

// attach hands a finished statement to the owner of the current level.
func (p *Parser) attach(id ast.StmtID) {
	stmt := p.arenas.Stmts.Get(id)
	top := p.frames[len(p.frames)-1]

	switch {
	case !top.owner.IsValid():
		if stmt.Kind == ast.StmtFeature {
			p.report(diag.SynFeatureOutsideElement, diag.SevError, stmt.Span,
				"feature line outside any element")
			return
		}
		p.arenas.PushStmt(p.file, id)

	case top.kind == ast.StmtElement:
		if stmt.Kind == ast.StmtLayoutBlock || stmt.Kind == ast.StmtAlign {
			// layout directives always apply diagram-wide
			p.arenas.PushStmt(p.file, id)
			break
		}
		p.arenas.Stmts.AddChild(top.owner, id)

	case top.kind == ast.StmtRelation:
		if f, ok := p.arenas.Stmts.Feature(id); ok && f.Kind == ast.FeatureMultiplicity {
			p.addRelationEnd(top.owner, id, f)
			break
		}
		p.report(diag.SynStatementNotNestable, diag.SevError, stmt.Span,
			"only multiplicity lines may nest under a relationship")

	case top.kind == ast.StmtLayoutBlock:
		if stmt.Kind == ast.StmtAlign {
			if lb, ok := p.arenas.Stmts.LayoutBlock(top.owner); ok {
				lb.Directives = append(lb.Directives, id)
			}
			break
		}
		p.report(diag.SynUnexpectedToken, diag.SevError, stmt.Span,
			"only alignment lines may appear inside :layout:")
	}

	p.last = id
	p.lastKind = stmt.Kind
}

// addRelationEnd attaches an end feature. Plain `:` lines fill the
// tail first and then the head; `::` always targets the head.
func (p *Parser) addRelationEnd(rel, id ast.StmtID, f *ast.FeatureStmt) {
	r, ok := p.arenas.Stmts.Relation(rel)
	if !ok {
		return
	}
	tailTaken, headTaken := false, false
	for _, prev := range r.Features {
		if pf, ok := p.arenas.Stmts.Feature(prev); ok {
			if pf.Head {
				headTaken = true
			} else {
				tailTaken = true
			}
		}
	}
	switch {
	case !f.Head && !tailTaken:
	case !headTaken:
		f.Head = true
	default:
		p.report(diag.SynTooManyAssociationEnds, diag.SevError, f.Span,
			"too many association ends")
		return
	}
	p.arenas.Stmts.AddRelationFeature(rel, id)
}

// endLine consumes the statement terminator.
func (p *Parser) endLine() {
	if p.at(token.Newline) {
		p.advance()
		return
	}
	if p.at(token.EOF) {
		return
	}
	p.err(diag.SynUnexpectedToken, "expected end of line, got \""+p.lx.Peek().Text+"\"")
	p.resyncLine()
}

// resyncLine recovers from an error by skipping to the next line.
func (p *Parser) resyncLine() {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			return
		}
		p.advance()
		if tok.Kind == token.Newline {
			return
		}
	}
}

// hasIndentPrefix reports whether indent begins with prefix byte for
// byte, so mixing tabs and spaces across levels is rejected.
func hasIndentPrefix(indent, prefix string) bool {
	return len(indent) >= len(prefix) && indent[:len(prefix)] == prefix
}
