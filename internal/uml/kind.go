package uml

import (
	"piuml/internal/token"
)

// Kind is the UML element kind behind a declaration keyword.
type Kind uint8

const (
	KActor Kind = iota
	KArtifact
	KComment
	KClass
	KComponent
	KDevice
	KInterface
	KInstance
	KMetaclass
	KNode
	KPackage
	KProfile
	KStereotype
	KSubsystem
	KUsecase
	// KFoldedIface is the interface node behind `o)`/`(o` symbols; it
	// has no declaration keyword and gets a generated id.
	KFoldedIface
)

var kindNames = [...]string{
	KActor:       "actor",
	KArtifact:    "artifact",
	KComment:     "comment",
	KClass:       "class",
	KComponent:   "component",
	KDevice:      "device",
	KInterface:   "interface",
	KInstance:    "instance",
	KMetaclass:   "metaclass",
	KNode:        "node",
	KPackage:     "package",
	KProfile:     "profile",
	KStereotype:  "stereotype",
	KSubsystem:   "subsystem",
	KUsecase:     "usecase",
	KFoldedIface: "fdiface",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindOf maps a declaration keyword token to its element kind.
func KindOf(kw token.Kind) (Kind, bool) {
	switch kw {
	case token.KwActor:
		return KActor, true
	case token.KwArtifact:
		return KArtifact, true
	case token.KwComment:
		return KComment, true
	case token.KwClass:
		return KClass, true
	case token.KwComponent:
		return KComponent, true
	case token.KwDevice:
		return KDevice, true
	case token.KwInterface:
		return KInterface, true
	case token.KwInstance:
		return KInstance, true
	case token.KwMetaclass:
		return KMetaclass, true
	case token.KwNode:
		return KNode, true
	case token.KwPackage:
		return KPackage, true
	case token.KwProfile:
		return KProfile, true
	case token.KwStereotype:
		return KStereotype, true
	case token.KwSubsystem:
		return KSubsystem, true
	case token.KwUsecase:
		return KUsecase, true
	default:
		return 0, false
	}
}

// IsPackaging reports whether elements of this kind may own children.
func (k Kind) IsPackaging() bool {
	switch k {
	case KArtifact, KClass, KComponent, KDevice, KNode,
		KInstance, KPackage, KProfile, KSubsystem:
		return true
	default:
		return false
	}
}

// HasCompartments reports whether attribute and operation lines may be
// declared on this kind.
func (k Kind) HasCompartments() bool {
	switch k {
	case KArtifact, KClass, KComponent, KDevice, KInterface,
		KInstance, KMetaclass, KNode, KStereotype:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the kind name doubles as a UML keyword shown
// as an implicit first stereotype.
func (k Kind) IsKeyword() bool {
	switch k {
	case KArtifact, KMetaclass, KComponent, KDevice, KInterface,
		KProfile, KStereotype, KSubsystem:
		return true
	default:
		return false
	}
}
