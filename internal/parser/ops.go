package parser

import (
	"piuml/internal/ast"
	"piuml/internal/token"
)

// opInfo is the structured reading of one relationship operator token.
type opInfo struct {
	Kind      ast.RelKind
	TailAdorn ast.EndAdorn
	HeadAdorn ast.EndAdorn
	Dir       ast.Direction
	DepLetter byte
	// Supplier marks which end plays the supplier role for dependency
	// and generalization operators.
	SupplierAtTail bool
}

// decodeOp reads an operator token character by character instead of
// pattern matching whole strings, so every adornment combination stays
// inspectable on its own.
func decodeOp(kind token.Kind, text string) opInfo {
	switch kind {
	case token.Assoc:
		return decodeAssociation(text)
	case token.Dependency:
		return decodeDependency(text)
	case token.Generalization:
		return opInfo{
			Kind: ast.RelGeneralization,
			// <= reads "tail is the general classifier"
			SupplierAtTail: text == "<=",
		}
	case token.CommentLine:
		return opInfo{Kind: ast.RelCommentLine}
	default:
		return opInfo{Kind: ast.RelCommentLine}
	}
}

func decodeAssociation(text string) opInfo {
	info := opInfo{
		Kind:      ast.RelAssociation,
		TailAdorn: endAdorn(text[0]),
		HeadAdorn: endAdorn(text[len(text)-1]),
	}
	for i := 1; i < len(text)-1; i++ {
		switch text[i] {
		case '<':
			info.Dir = ast.DirTail
		case '>':
			info.Dir = ast.DirHead
		}
	}
	return info
}

func decodeDependency(text string) opInfo {
	info := opInfo{
		Kind:           ast.RelDependency,
		SupplierAtTail: text[0] == '<',
	}
	for i := 0; i < len(text); i++ {
		switch b := text[i]; b {
		case 'u', 'r', 'i', 'm', 'e':
			info.DepLetter = b
		}
	}
	return info
}

func endAdorn(b byte) ast.EndAdorn {
	switch b {
	case 'x':
		return ast.EndNone
	case 'O':
		return ast.EndShared
	case '*':
		return ast.EndComposite
	case '<', '>':
		return ast.EndNavigable
	default:
		return ast.EndUnknown
	}
}
