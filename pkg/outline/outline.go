// Package outline is the host compiler's model of generated types, as seen by
// the episode generator.
package outline

import (
	"github.com/mklemm/jaxb2-episode-ext/pkg/resource"
	"github.com/mklemm/jaxb2-episode-ext/pkg/schema"
)

// Class is a generated class mapped from a schema component.
type Class struct {
	Component *schema.Component
	// FullName is the fully qualified generated type name.
	FullName string
	Package  string
	// Interface marks classes rendered as interfaces for a group declaration.
	Interface bool
}

// Enum is a generated type-safe enum mapped from a simple type.
type Enum struct {
	Component *schema.Component
	FullName  string
	Package   string
}

// Package is a generated package with the namespace most of its types map to.
type Package struct {
	Name                 string
	MostUsedNamespaceURI string
}

// Outline is the host compiler's result for one invocation.
type Outline struct {
	Schemas       *schema.Set
	Resources     *resource.Tree
	PrologComment string
	Classes       []Class
	Enums         []Enum
	Packages      []Package
}

// New returns an outline with an empty schema set and resource tree.
func New() *Outline {
	return &Outline{
		Schemas:   schema.NewSet(),
		Resources: resource.NewTree(),
	}
}
