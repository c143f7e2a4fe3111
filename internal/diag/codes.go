package diag

import (
	"fmt"
)

type Code uint16

// Class groups codes into the three error families of the language:
// parser errors, UML semantic errors and alignment errors.
type Class uint8

const (
	ClassUnknown Class = iota
	// ClassParser covers lexical and syntactic problems, including
	// duplicate identifier declarations.
	ClassParser
	// ClassUML covers semantic violations of the UML model.
	ClassUML
	// ClassAlignment covers alignment resolution and geometry problems.
	ClassAlignment
)

func (c Class) String() string {
	switch c {
	case ClassParser:
		return "ParserError"
	case ClassUML:
		return "UMLError"
	case ClassAlignment:
		return "AlignmentError"
	}
	return "UnknownError"
}

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo                   Code = 1000
	LexUnknownChar            Code = 1001
	LexUnterminatedString     Code = 1002
	LexUnterminatedStereotype Code = 1003
	LexBadMultiplicity        Code = 1004

	// Syntactic.
	SynInfo                    Code = 2000
	SynUnexpectedToken         Code = 2001
	SynBadIndent               Code = 2002
	SynExpectIdentifier        Code = 2003
	SynExpectName              Code = 2004
	SynFeatureOutsideElement   Code = 2005
	SynBadAlignOperator        Code = 2006
	SynDuplicateID             Code = 2007
	SynTooManyAssociationEnds  Code = 2008
	SynEmptyLayoutBlock        Code = 2009
	SynStatementNotNestable    Code = 2010

	// UML semantics.
	UmlInfo           Code = 3000
	UmlUnknownID      Code = 3001
	UmlNotPackaging   Code = 3002
	UmlNoCompartments Code = 3003
	UmlBadDependency  Code = 3004
	UmlBadCommentLine Code = 3005
	UmlBadAssembly    Code = 3006

	// Alignment and layout.
	AlignInfo             Code = 4000
	AlignUnknownID        Code = 4001
	AlignBadOperator      Code = 4002
	AlignCrossContainment Code = 4003
	AlignUnsatisfiable    Code = 4004

	// Driver / IO.
	IOLoadFileError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:               "Unknown error",
	LexInfo:                   "Lexical information",
	LexUnknownChar:            "Unknown character",
	LexUnterminatedString:     "Unterminated name string",
	LexUnterminatedStereotype: "Unterminated stereotype list",
	LexBadMultiplicity:        "Malformed multiplicity",

	SynInfo:                   "Syntax information",
	SynUnexpectedToken:        "Unexpected token",
	SynBadIndent:              "Inconsistent indentation",
	SynExpectIdentifier:       "Expected identifier",
	SynExpectName:             "Expected quoted name",
	SynFeatureOutsideElement:  "Feature line outside any element",
	SynBadAlignOperator:       "Unknown alignment operator",
	SynDuplicateID:            "Identifier already defined",
	SynTooManyAssociationEnds: "Too many association ends",
	SynEmptyLayoutBlock:       "Empty layout block",
	SynStatementNotNestable:   "Statement cannot be nested here",

	UmlInfo:           "UML information",
	UmlUnknownID:      "Identifier is not defined",
	UmlNotPackaging:   "Element cannot package other elements",
	UmlNoCompartments: "Element cannot have compartments",
	UmlBadDependency:  "Invalid dependency for element kinds",
	UmlBadCommentLine: "Invalid comment line ends",
	UmlBadAssembly:    "Assembly allowed between components only",

	AlignInfo:             "Alignment information",
	AlignUnknownID:        "Alignment target is not defined",
	AlignBadOperator:      "Operator does not match alignment axis",
	AlignCrossContainment: "Alignment group crosses containment boundaries",
	AlignUnsatisfiable:    "Layout constraints cannot be satisfied",

	IOLoadFileError: "I/O load file error",
}

// Class reports which error family the code belongs to.
func (c Code) Class() Class {
	switch ic := int(c); {
	case ic >= 1000 && ic < 3000:
		return ClassParser
	case ic >= 3000 && ic < 4000:
		return ClassUML
	case ic >= 4000 && ic < 5000:
		return ClassAlignment
	}
	return ClassUnknown
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("UML%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("ALN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
