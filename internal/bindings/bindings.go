// Package bindings builds the episode binding document from grouped adaptors.
package bindings

import (
	"fmt"

	"github.com/mklemm/jaxb2-episode-ext/internal/adaptor"
	"github.com/mklemm/jaxb2-episode-ext/internal/grouping"
	"github.com/mklemm/jaxb2-episode-ext/internal/scd"
	"github.com/mklemm/jaxb2-episode-ext/internal/xmlnames"
	"github.com/mklemm/jaxb2-episode-ext/internal/xmltree"
)

// Element local names of the binding language.
const (
	ElemBindings          = "bindings"
	ElemSchemaBindings    = "schemaBindings"
	ElemPackage           = "package"
	ElemClass             = "class"
	ElemTypesafeEnumClass = "typesafe-enum-class"
	ElemInterface         = "interface"

	AttrVersion  = "version"
	AttrSCD      = "scd"
	AttrIfExists = "if-exists"
	AttrMap      = "map"
	AttrName     = "name"
	AttrRef      = "ref"

	// SchemaSelectorPrefix starts every binding group selector.
	SchemaSelectorPrefix = "x-schema::"
)

// Config controls document construction.
type Config struct {
	Resolver      scd.Resolver
	PrologComment string
}

// Build returns the episode document for res. It fails only when a grouped
// component has no designator.
func Build(res *grouping.Result, cfg Config) (*xmltree.Element, error) {
	root := jaxb(ElemBindings)
	if res.HasNoNamespace() {
		// unqualified designators need the default namespace to stay empty
		root.Declare(xmlnames.JAXBPrefix, xmlnames.JAXBNamespace)
	} else {
		root.Declare("", xmlnames.JAXBNamespace)
	}
	root.SetAttr(AttrVersion, xmlnames.JAXBVersion)
	root.AppendComment("\n\n" + cfg.PrologComment + "\n  ")

	policy := cfg.Resolver.Policy()
	for _, g := range res.Groups() {
		group, err := buildGroup(g, policy, cfg.Resolver)
		if err != nil {
			return nil, err
		}
		root.Append(group)
	}
	return root, nil
}

func buildGroup(g *grouping.Group, policy scd.Policy, r scd.Resolver) (*xmltree.Element, error) {
	tns := g.Namespace()
	prefix := policy.SchemaPrefix(tns)

	group := jaxb(ElemBindings)
	if prefix != "" {
		group.Declare(prefix, tns)
	}
	group.SetAttr(AttrSCD, SchemaSelectorPrefix+prefix)
	group.SetAttr(AttrIfExists, "true")

	schemaBindings := jaxb(ElemSchemaBindings).SetAttr(AttrMap, "false")
	if pkg, ok := g.SinglePackage(); ok {
		schemaBindings.Append(jaxb(ElemPackage).SetAttr(AttrName, pkg))
	}
	group.Append(schemaBindings)

	for _, a := range g.Adaptors() {
		designator, err := r.Resolve(a.Component)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", a.ImplName, err)
		}
		child := jaxb(ElemBindings).SetAttr(AttrSCD, designator)
		child.Append(reference(a))
		group.Append(child)
	}
	return group, nil
}

func reference(a adaptor.Adaptor) *xmltree.Element {
	switch a.Kind {
	case adaptor.KindEnum:
		return jaxb(ElemTypesafeEnumClass).SetAttr(AttrRef, a.ImplName)
	case adaptor.KindInterface:
		return xmltree.NewElement(xmlnames.InterfaceNamespace, ElemInterface).
			Declare(xmlnames.InterfacePrefix, xmlnames.InterfaceNamespace).
			SetAttr(AttrRef, a.ImplName)
	default:
		return jaxb(ElemClass).SetAttr(AttrRef, a.ImplName)
	}
}

func jaxb(local string) *xmltree.Element {
	return xmltree.NewElement(xmlnames.JAXBNamespace, local)
}
