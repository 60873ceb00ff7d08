package schema

// Schema is the set of components sharing one target namespace.
// Components of the same namespace must share the same *Schema value.
type Schema struct {
	TargetNamespace string
}

// Document is a single schema source document.
type Document struct {
	TargetNamespace string
	SystemID        string
}

// Component is a node of the parsed schema graph.
type Component struct {
	Owner     *Schema
	Source    *Document
	Namespace string
	Name      string
	Kind      Kind
	// Local marks components that cannot be referenced from outside their
	// defining context, such as anonymous types and local element declarations.
	Local bool
}

// IsDeclaration reports whether c is a declaration component.
func (c *Component) IsDeclaration() bool {
	return c != nil && c.Kind.IsDeclaration()
}

// OwnerNamespace returns the target namespace of the owning schema.
func (c *Component) OwnerNamespace() string {
	switch {
	case c == nil:
		return ""
	case c.Owner == nil:
		return c.Namespace
	default:
		return c.Owner.TargetNamespace
	}
}

// String returns the component in {namespace}name form with its kind.
func (c *Component) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.Namespace == "" {
		return c.Kind.String() + " " + c.Name
	}
	return c.Kind.String() + " {" + c.Namespace + "}" + c.Name
}
