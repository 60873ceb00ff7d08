package episode

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mklemm/jaxb2-episode-ext/internal/bindings"
	"github.com/mklemm/jaxb2-episode-ext/internal/xmlnames"
	"github.com/mklemm/jaxb2-episode-ext/internal/xmltree"
)

// BindingKind is the kind of generated type a binding refers to.
type BindingKind string

const (
	BindingClass     BindingKind = "class"
	BindingEnum      BindingKind = "enum"
	BindingInterface BindingKind = "interface"
)

// Descriptor is the content of an episode file.
type Descriptor struct {
	Version string
	Prolog  string
	Groups  []Group
}

// Group is the binding customization of one schema.
type Group struct {
	SCD       string
	Prefix    string
	Namespace string
	// Package is the package name customization, empty when none was written.
	Package  string
	Bindings []Binding
	IfExists bool
}

// Binding maps one schema component to a generated type.
type Binding struct {
	SCD  string
	Kind BindingKind
	Ref  string
}

// Len returns the number of bindings across all groups.
func (d *Descriptor) Len() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Bindings)
	}
	return n
}

// ReadFile reads the episode file at path.
func ReadFile(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open episode: %w", err)
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read episode %s: %w", path, err)
	}
	return d, nil
}

// Read parses an episode document.
func Read(r io.Reader) (*Descriptor, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse episode: %w", err)
	}
	if root.Name != (xmltree.Name{Space: xmlnames.JAXBNamespace, Local: bindings.ElemBindings}) {
		return nil, fmt.Errorf("unexpected root element {%s}%s", root.Name.Space, root.Name.Local)
	}

	d := &Descriptor{}
	d.Version, _ = root.Attr(bindings.AttrVersion)
	if comments := root.Comments(); len(comments) > 0 {
		d.Prolog = strings.TrimSpace(comments[0])
	}
	for _, el := range root.ElementsNamed(xmlnames.JAXBNamespace, bindings.ElemBindings) {
		g, err := readGroup(el)
		if err != nil {
			return nil, err
		}
		d.Groups = append(d.Groups, g)
	}
	return d, nil
}

func readGroup(el *xmltree.Element) (Group, error) {
	var g Group
	g.SCD, _ = el.Attr(bindings.AttrSCD)
	prefix, ok := strings.CutPrefix(g.SCD, bindings.SchemaSelectorPrefix)
	if !ok {
		return Group{}, fmt.Errorf("binding group selector %q does not select a schema", g.SCD)
	}
	g.Prefix = prefix
	if prefix != "" {
		ns, ok := el.LookupNamespace(prefix)
		if !ok {
			return Group{}, fmt.Errorf("binding group %q: prefix %s is not declared", g.SCD, prefix)
		}
		g.Namespace = ns
	}
	ifExists, _ := el.Attr(bindings.AttrIfExists)
	g.IfExists = ifExists == "true"

	if sb := el.FirstElement(xmlnames.JAXBNamespace, bindings.ElemSchemaBindings); sb != nil {
		if pkg := sb.FirstElement(xmlnames.JAXBNamespace, bindings.ElemPackage); pkg != nil {
			g.Package, _ = pkg.Attr(bindings.AttrName)
		}
	}

	for _, child := range el.ElementsNamed(xmlnames.JAXBNamespace, bindings.ElemBindings) {
		b, err := readBinding(child)
		if err != nil {
			return Group{}, fmt.Errorf("binding group %q: %w", g.SCD, err)
		}
		g.Bindings = append(g.Bindings, b)
	}
	return g, nil
}

func readBinding(el *xmltree.Element) (Binding, error) {
	var b Binding
	b.SCD, _ = el.Attr(bindings.AttrSCD)
	for _, ref := range el.Elements() {
		switch ref.Name {
		case xmltree.Name{Space: xmlnames.JAXBNamespace, Local: bindings.ElemClass}:
			b.Kind = BindingClass
		case xmltree.Name{Space: xmlnames.JAXBNamespace, Local: bindings.ElemTypesafeEnumClass}:
			b.Kind = BindingEnum
		case xmltree.Name{Space: xmlnames.InterfaceNamespace, Local: bindings.ElemInterface}:
			b.Kind = BindingInterface
		default:
			continue
		}
		b.Ref, _ = ref.Attr(bindings.AttrRef)
		return b, nil
	}
	return Binding{}, fmt.Errorf("binding %q has no type reference", b.SCD)
}
