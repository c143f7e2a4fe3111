package token

// elementKeywords maps a source word to its element keyword kind.
var elementKeywords = map[string]Kind{
	"actor":      KwActor,
	"artifact":   KwArtifact,
	"comment":    KwComment,
	"class":      KwClass,
	"component":  KwComponent,
	"device":     KwDevice,
	"interface":  KwInterface,
	"instance":   KwInstance,
	"metaclass":  KwMetaclass,
	"node":       KwNode,
	"package":    KwPackage,
	"profile":    KwProfile,
	"stereotype": KwStereotype,
	"subsystem":  KwSubsystem,
	"usecase":    KwUsecase,
}

// LookupKeyword returns the element keyword kind for the word, or Ident when
// the word is not a keyword.
func LookupKeyword(word string) Kind {
	if k, ok := elementKeywords[word]; ok {
		return k
	}
	return Ident
}

// KeywordText returns the source spelling of an element keyword kind.
func KeywordText(k Kind) string {
	for text, kind := range elementKeywords {
		if kind == k {
			return text
		}
	}
	return ""
}
