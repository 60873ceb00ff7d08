// Package scd computes Schema Component Designators for the component kinds
// that can be bound to generated types.
package scd

import (
	"fmt"

	xsderrors "github.com/mklemm/jaxb2-episode-ext/errors"
	"github.com/mklemm/jaxb2-episode-ext/internal/xmlnames"
	"github.com/mklemm/jaxb2-episode-ext/pkg/schema"
)

// Policy selects how component namespaces are abbreviated in designators.
type Policy uint8

const (
	// PolicyXMLAware maps the XML core namespace to the xml prefix and any
	// other non-empty namespace to tns.
	PolicyXMLAware Policy = iota
	// PolicyBaseline distinguishes only the empty namespace from tns.
	PolicyBaseline
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyBaseline:
		return "baseline"
	case PolicyXMLAware:
		return "xml"
	default:
		return fmt.Sprintf("Policy(%d)", p)
	}
}

// ParsePolicy parses a policy configuration name.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "xml":
		return PolicyXMLAware, nil
	case "baseline":
		return PolicyBaseline, nil
	default:
		return 0, fmt.Errorf("unknown scd policy %q (want baseline or xml)", s)
	}
}

// SchemaPrefix returns the prefix that designates a schema with the given
// target namespace: empty for no namespace, xml or tns otherwise.
func (p Policy) SchemaPrefix(namespace string) string {
	switch {
	case namespace == "":
		return ""
	case p == PolicyXMLAware && xmlnames.IsXMLNamespace(namespace):
		return xmlnames.XMLPrefix
	default:
		return xmlnames.TNSPrefix
	}
}

// UnsupportedKindError reports a component kind that has no designator.
// It indicates a caller defect: only declarations mapped to generated types
// are ever resolved.
type UnsupportedKindError struct {
	Component *schema.Component
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("[%s] no SCD for %s", xsderrors.ErrUnsupportedComponent, e.Component)
}

// Resolver maps schema components to designators.
type Resolver struct {
	policy Policy
}

// New returns a resolver using policy.
func New(policy Policy) Resolver {
	return Resolver{policy: policy}
}

// Policy returns the resolver's namespace policy.
func (r Resolver) Policy() Policy {
	return r.policy
}

// Resolve returns the designator of c relative to its schema.
func (r Resolver) Resolve(c *schema.Component) (string, error) {
	if c == nil {
		return "", &UnsupportedKindError{}
	}
	switch c.Kind {
	case schema.KindComplexType, schema.KindSimpleType:
		return "~" + r.name(c), nil
	case schema.KindElementDecl:
		return r.name(c), nil
	case schema.KindAttributeGroupDecl:
		return "attributeGroup::" + r.name(c), nil
	case schema.KindModelGroupDecl:
		return "group::" + r.name(c), nil
	case schema.KindAttributeDecl, schema.KindAttributeUse, schema.KindFacet,
		schema.KindNotation, schema.KindIdentityConstraint, schema.KindXPath,
		schema.KindParticle, schema.KindWildcard, schema.KindEmpty,
		schema.KindModelGroup, schema.KindAnnotation, schema.KindSchema:
		return "", &UnsupportedKindError{Component: c}
	default:
		return "", &UnsupportedKindError{Component: c}
	}
}

func (r Resolver) name(c *schema.Component) string {
	prefix := r.policy.SchemaPrefix(c.Namespace)
	if prefix == "" {
		return c.Name
	}
	return prefix + ":" + c.Name
}
