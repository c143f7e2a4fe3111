package token

import (
	"strings"

	"piuml/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsElementKeyword reports whether the token names a UML element kind.
func (t Token) IsElementKeyword() bool {
	return t.Kind >= KwActor && t.Kind <= KwUsecase
}

// IsRelationOp reports whether the token is a relationship operator.
func (t Token) IsRelationOp() bool {
	switch t.Kind {
	case Assoc, Dependency, Generalization, CommentLine, FoldedIfaceL, FoldedIfaceR:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Unquote strips the surrounding quotes from a Name token text and resolves
// the escapes the language supports.
func Unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	inner := text[1 : len(text)-1]
	r := strings.NewReplacer(
		`\"`, `"`,
		`\'`, `'`,
		`\\`, `\`,
		`\#`, `#`,
	)
	return r.Replace(inner)
}

// SplitStereotypes parses a raw `<<a, b>>` token text into trimmed names.
func SplitStereotypes(text string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "<<"), ">>")
	parts := strings.Split(inner, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
