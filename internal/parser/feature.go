package parser

import (
	"strings"

	"piuml/internal/ast"
	"piuml/internal/token"
)

// parseFeature parses a `:` / `::` line. What the payload means depends
// on the statement it nests under: classifier compartment lines under an
// element, association end lines under a relationship.
func (p *Parser) parseFeature() (ast.StmtID, bool) {
	tok := p.advance()
	f := ast.FeatureStmt{
		Head: tok.Kind == token.FeatureHead,
		Raw:  tok.Text,
		Span: tok.Span,
	}

	if kind, ok := p.currentOwnerKind(); ok && kind == ast.StmtRelation {
		parseAssociationEnd(&f)
	} else {
		parseCompartment(&f)
	}
	return p.arenas.Stmts.NewFeature(f), true
}

// currentOwnerKind reports the statement kind owning the current level;
// ok is false at file level.
func (p *Parser) currentOwnerKind() (ast.StmtKind, bool) {
	top := p.frames[len(p.frames)-1]
	if !top.owner.IsValid() {
		return 0, false
	}
	return top.kind, true
}

// parseAssociationEnd splits `name [m..n]`; both parts are optional.
func parseAssociationEnd(f *ast.FeatureStmt) {
	f.Kind = ast.FeatureMultiplicity
	rest := strings.TrimSpace(f.Raw)

	if i := strings.IndexByte(rest, '['); i >= 0 {
		if j := strings.IndexByte(rest, ']'); j > i {
			f.Mult = strings.TrimSpace(rest[i+1 : j])
		}
		rest = strings.TrimSpace(rest[:i])
	}
	f.Name = rest
}

// parseCompartment classifies an element feature line:
//
//	<<tag>> :         stereotype attribute group header
//	name(...) : type  operation
//	name: type = def  attribute
func parseCompartment(f *ast.FeatureStmt) {
	raw := strings.TrimSpace(f.Raw)

	if tag, ok := stereotypeGroup(raw); ok {
		f.Kind = ast.FeatureStereotypeAttrs
		f.Name = tag
		return
	}

	if name, rest, ok := operationSplit(raw); ok {
		f.Kind = ast.FeatureOperation
		f.Name = name
		f.Type = rest
		return
	}

	f.Kind = ast.FeatureAttribute
	rest := raw
	if i := strings.IndexByte(rest, '='); i >= 0 {
		f.Default = strings.TrimSpace(rest[i+1:])
		rest = strings.TrimSpace(rest[:i])
	}
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		f.Type = strings.TrimSpace(rest[i+1:])
		rest = strings.TrimSpace(rest[:i])
	}
	f.Name = rest
}

// stereotypeGroup matches `<<tag>>` optionally followed by a colon.
func stereotypeGroup(raw string) (string, bool) {
	rest, ok := strings.CutPrefix(raw, "<<")
	if !ok {
		return "", false
	}
	tag, rest, ok := strings.Cut(rest, ">>")
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if rest != "" && rest != ":" {
		return "", false
	}
	return strings.TrimSpace(tag), true
}

// operationSplit detects `name(...)` and returns the signature up to
// the closing paren plus the return type after a trailing colon.
func operationSplit(raw string) (name, typ string, ok bool) {
	open := strings.IndexByte(raw, '(')
	if open <= 0 {
		return "", "", false
	}
	for i := 0; i < open; i++ {
		b := raw[i]
		if !(b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9') {
			return "", "", false
		}
	}
	closing := strings.LastIndexByte(raw, ')')
	if closing < open {
		return "", "", false
	}
	name = raw[:closing+1]
	rest := strings.TrimSpace(raw[closing+1:])
	if t, found := strings.CutPrefix(rest, ":"); found {
		typ = strings.TrimSpace(t)
	}
	return name, typ, true
}
