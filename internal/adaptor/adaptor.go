// Package adaptor normalizes generated classes and enums into a uniform record
// carrying the originating schema component.
package adaptor

import (
	"github.com/mklemm/jaxb2-episode-ext/pkg/outline"
	"github.com/mklemm/jaxb2-episode-ext/pkg/schema"
)

// Kind is the generated type kind; it selects the binding element.
type Kind uint8

const (
	KindClass Kind = iota
	KindEnum
	KindInterface
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// Adaptor is one generated type and the schema component it was mapped from.
type Adaptor struct {
	Component   *schema.Component
	ImplName    string
	PackageName string
	Kind        Kind
}

// Config controls adaptor construction.
type Config struct {
	// Interfaces enables the interface path for classes the host rendered as
	// interfaces of attribute group or model group declarations.
	Interfaces bool
}

// FromOutline converts the outline's classes, then its enums, preserving host order.
func FromOutline(o *outline.Outline, cfg Config) []Adaptor {
	if o == nil {
		return nil
	}
	out := make([]Adaptor, 0, len(o.Classes)+len(o.Enums))
	for _, c := range o.Classes {
		out = append(out, fromClass(o.Schemas, c, cfg))
	}
	for _, e := range o.Enums {
		out = append(out, Adaptor{
			Component:   e.Component,
			Kind:        KindEnum,
			ImplName:    e.FullName,
			PackageName: e.Package,
		})
	}
	return out
}

func fromClass(set *schema.Set, c outline.Class, cfg Config) Adaptor {
	if cfg.Interfaces && c.Interface {
		return Adaptor{
			Component:   FindGroupDeclaration(set, c.Component),
			Kind:        KindInterface,
			ImplName:    c.FullName,
			PackageName: c.Package,
		}
	}
	return Adaptor{
		Component:   c.Component,
		Kind:        KindClass,
		ImplName:    c.FullName,
		PackageName: c.Package,
	}
}

// FindGroupDeclaration returns the attribute group declaration sharing the
// name of derived, or the model group declaration when no attribute group
// exists. It returns nil when neither is declared.
func FindGroupDeclaration(set *schema.Set, derived *schema.Component) *schema.Component {
	if derived == nil {
		return nil
	}
	if decl := set.AttributeGroupDecl(derived.Namespace, derived.Name); decl != nil {
		return decl
	}
	return set.ModelGroupDecl(derived.Namespace, derived.Name)
}
