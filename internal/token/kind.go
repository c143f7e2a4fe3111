package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline terminates a statement line.
	Newline
	// Indent carries the leading whitespace of a non-blank line.
	Indent

	// Ident represents an element identifier.
	Ident
	// Name represents a quoted display name ('...' or "...").
	Name
	// Stereotype represents a stereotype list (<<a, b>>).
	Stereotype

	// Feature carries the raw payload of a `: ...` feature line.
	Feature
	// FeatureHead carries the raw payload of a `:: ...` head-end line.
	FeatureHead
	// LayoutBlockKw represents the `:layout:` section header.
	LayoutBlockKw
	// LayoutInline represents an inline `axis=operator:` directive prefix.
	LayoutInline

	// Assoc represents an association operator ([xO*<]?=(<|>)?=[xO*>]?).
	Assoc
	// Dependency represents a dependency operator (<[urime]?- or -[urime]>).
	Dependency
	// Generalization represents a generalization operator (<= or =>).
	Generalization
	// CommentLine represents the comment line operator (--).
	CommentLine
	// FoldedIfaceL represents the left folded interface symbol ((o).
	FoldedIfaceL
	// FoldedIfaceR represents the right folded interface symbol (o)).
	FoldedIfaceR

	// KwActor represents the 'actor' element keyword.
	KwActor // actor
	// KwArtifact represents the 'artifact' element keyword.
	KwArtifact // artifact
	// KwComment represents the 'comment' element keyword.
	KwComment // comment
	// KwClass represents the 'class' element keyword.
	KwClass // class
	// KwComponent represents the 'component' element keyword.
	KwComponent // component
	// KwDevice represents the 'device' element keyword.
	KwDevice // device
	// KwInterface represents the 'interface' element keyword.
	KwInterface // interface
	// KwInstance represents the 'instance' element keyword.
	KwInstance // instance
	// KwMetaclass represents the 'metaclass' element keyword.
	KwMetaclass // metaclass
	// KwNode represents the 'node' element keyword.
	KwNode // node
	// KwPackage represents the 'package' element keyword.
	KwPackage // package
	// KwProfile represents the 'profile' element keyword.
	KwProfile // profile
	// KwStereotype represents the 'stereotype' element keyword.
	KwStereotype // stereotype
	// KwSubsystem represents the 'subsystem' element keyword.
	KwSubsystem // subsystem
	// KwUsecase represents the 'usecase' element keyword.
	KwUsecase // usecase
)

var kindNames = map[Kind]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Newline:        "Newline",
	Indent:         "Indent",
	Ident:          "Ident",
	Name:           "Name",
	Stereotype:     "Stereotype",
	Feature:        "Feature",
	FeatureHead:    "FeatureHead",
	LayoutBlockKw:  "LayoutBlockKw",
	LayoutInline:   "LayoutInline",
	Assoc:          "Assoc",
	Dependency:     "Dependency",
	Generalization: "Generalization",
	CommentLine:    "CommentLine",
	FoldedIfaceL:   "FoldedIfaceL",
	FoldedIfaceR:   "FoldedIfaceR",
	KwActor:        "KwActor",
	KwArtifact:     "KwArtifact",
	KwComment:      "KwComment",
	KwClass:        "KwClass",
	KwComponent:    "KwComponent",
	KwDevice:       "KwDevice",
	KwInterface:    "KwInterface",
	KwInstance:     "KwInstance",
	KwMetaclass:    "KwMetaclass",
	KwNode:         "KwNode",
	KwPackage:      "KwPackage",
	KwProfile:      "KwProfile",
	KwStereotype:   "KwStereotype",
	KwSubsystem:    "KwSubsystem",
	KwUsecase:      "KwUsecase",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
