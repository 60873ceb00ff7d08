package schema

type declKey struct {
	namespace string
	name      string
}

// Set indexes the global components of a schema set and interns one Schema
// value per target namespace.
type Set struct {
	schemas     map[string]*Schema
	attrGroups  map[declKey]*Component
	modelGroups map[declKey]*Component
	order       []*Schema
}

// NewSet returns an empty schema set.
func NewSet() *Set {
	return &Set{
		schemas:     make(map[string]*Schema),
		attrGroups:  make(map[declKey]*Component),
		modelGroups: make(map[declKey]*Component),
	}
}

// Schema returns the schema for namespace, creating it on first use.
func (s *Set) Schema(namespace string) *Schema {
	if sc, ok := s.schemas[namespace]; ok {
		return sc
	}
	sc := &Schema{TargetNamespace: namespace}
	s.schemas[namespace] = sc
	s.order = append(s.order, sc)
	return sc
}

// Schemas returns the schemas in creation order.
func (s *Set) Schemas() []*Schema {
	if s == nil {
		return nil
	}
	out := make([]*Schema, len(s.order))
	copy(out, s.order)
	return out
}

// Add registers a global component. Attribute group and model group
// declarations become visible to the lookup methods; the component's owner
// is set to the interned schema for its namespace when missing.
func (s *Set) Add(c *Component) {
	if c == nil {
		return
	}
	if c.Owner == nil {
		c.Owner = s.Schema(c.Namespace)
	}
	if c.Local {
		return
	}
	key := declKey{namespace: c.Namespace, name: c.Name}
	switch c.Kind {
	case KindAttributeGroupDecl:
		s.attrGroups[key] = c
	case KindModelGroupDecl:
		s.modelGroups[key] = c
	}
}

// AttributeGroupDecl returns the global attribute group declaration {namespace}name.
func (s *Set) AttributeGroupDecl(namespace, name string) *Component {
	if s == nil {
		return nil
	}
	return s.attrGroups[declKey{namespace: namespace, name: name}]
}

// ModelGroupDecl returns the global model group declaration {namespace}name.
func (s *Set) ModelGroupDecl(namespace, name string) *Component {
	if s == nil {
		return nil
	}
	return s.modelGroups[declKey{namespace: namespace, name: name}]
}
