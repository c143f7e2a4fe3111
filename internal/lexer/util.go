package lexer

import "piuml/internal/diag"

// diag code aliases keep scanner call sites short
const (
	diagUnknownChar           = diag.LexUnknownChar
	diagUnterminatedString    = diag.LexUnterminatedString
	diagUnterminatedStereotyp = diag.LexUnterminatedStereotype
)

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

// isOpStartByte reports whether b can open a relationship operator.
// x and O are handled by the identifier scanner, which falls through to the
// operator scanner when an `=` follows immediately.
func isOpStartByte(b byte) bool {
	switch b {
	case '=', '<', '>', '-', '*', '(':
		return true
	default:
		return false
	}
}

func isDependencyLetter(b byte) bool {
	switch b {
	case 'u', 'r', 'i', 'm', 'e':
		return true
	default:
		return false
	}
}
