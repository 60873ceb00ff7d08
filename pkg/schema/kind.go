package schema

// Kind identifies the syntactic variant of a schema component.
type Kind uint8

const (
	// KindUnknown is the zero value and never a valid component kind.
	KindUnknown Kind = iota
	KindComplexType
	KindSimpleType
	KindElementDecl
	KindAttributeGroupDecl
	KindModelGroupDecl
	KindAttributeDecl
	KindAttributeUse
	KindFacet
	KindNotation
	KindIdentityConstraint
	KindXPath
	KindParticle
	KindWildcard
	KindEmpty
	KindModelGroup
	KindAnnotation
	KindSchema
)

var kindNames = [...]string{
	KindUnknown:            "unknown",
	KindComplexType:        "complexType",
	KindSimpleType:         "simpleType",
	KindElementDecl:        "elementDecl",
	KindAttributeGroupDecl: "attributeGroupDecl",
	KindModelGroupDecl:     "modelGroupDecl",
	KindAttributeDecl:      "attributeDecl",
	KindAttributeUse:       "attributeUse",
	KindFacet:              "facet",
	KindNotation:           "notation",
	KindIdentityConstraint: "identityConstraint",
	KindXPath:              "xpath",
	KindParticle:           "particle",
	KindWildcard:           "wildcard",
	KindEmpty:              "empty",
	KindModelGroup:         "modelGroup",
	KindAnnotation:         "annotation",
	KindSchema:             "schema",
}

// String returns the component kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if Kind(i) == KindUnknown {
			continue
		}
		if name == s {
			return Kind(i), true
		}
	}
	return KindUnknown, false
}

// IsDeclaration reports whether components of this kind are named declarations.
func (k Kind) IsDeclaration() bool {
	switch k {
	case KindComplexType, KindSimpleType, KindElementDecl, KindAttributeDecl,
		KindAttributeGroupDecl, KindModelGroupDecl, KindNotation, KindIdentityConstraint:
		return true
	default:
		return false
	}
}

// IsType reports whether the kind is a complex or simple type definition.
func (k Kind) IsType() bool {
	return k == KindComplexType || k == KindSimpleType
}
