// Package manifest loads a YAML dump of the host compiler's model into an
// outline. The dump is the command-line stand-in for an in-process host.
package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	xsderrors "github.com/mklemm/jaxb2-episode-ext/errors"
	"github.com/mklemm/jaxb2-episode-ext/pkg/outline"
	"github.com/mklemm/jaxb2-episode-ext/pkg/schema"
)

// Manifest is the document layout of a model dump.
type Manifest struct {
	Prolog     string      `yaml:"prolog"`
	Documents  []Document  `yaml:"documents"`
	Components []Component `yaml:"components"`
	Classes    []Class     `yaml:"classes"`
	Enums      []Enum      `yaml:"enums"`
	Packages   []Package   `yaml:"packages"`
}

// Document is a schema source document.
type Document struct {
	ID              string `yaml:"id"`
	TargetNamespace string `yaml:"targetNamespace"`
	SystemID        string `yaml:"systemId"`
	line            int
}

// Component is a schema component. Document refers to a Document ID.
type Component struct {
	ID        string `yaml:"id"`
	Kind      string `yaml:"kind"`
	Namespace string `yaml:"namespace"`
	Name      string `yaml:"name"`
	Document  string `yaml:"document"`
	Local     bool   `yaml:"local"`
	line      int
}

// Class is a generated class. Component refers to a Component ID and may be
// empty for classes that were not mapped from a schema component.
type Class struct {
	Name      string `yaml:"name"`
	Package   string `yaml:"package"`
	Component string `yaml:"component"`
	Interface bool   `yaml:"interface"`
	line      int
}

// Enum is a generated type-safe enum.
type Enum struct {
	Name      string `yaml:"name"`
	Package   string `yaml:"package"`
	Component string `yaml:"component"`
	line      int
}

// Package is a generated package.
type Package struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`
}

func (d *Document) UnmarshalYAML(n *yaml.Node) error {
	type plain Document
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.line = n.Line
	return nil
}

func (c *Component) UnmarshalYAML(n *yaml.Node) error {
	type plain Component
	if err := n.Decode((*plain)(c)); err != nil {
		return err
	}
	c.line = n.Line
	return nil
}

func (c *Class) UnmarshalYAML(n *yaml.Node) error {
	type plain Class
	if err := n.Decode((*plain)(c)); err != nil {
		return err
	}
	c.line = n.Line
	return nil
}

func (e *Enum) UnmarshalYAML(n *yaml.Node) error {
	type plain Enum
	if err := n.Decode((*plain)(e)); err != nil {
		return err
	}
	e.line = n.Line
	return nil
}

// LoadFile reads and converts the dump at path.
func LoadFile(path string) (*outline.Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()
	return Load(f, path)
}

// Load decodes a dump from r. name is used in diagnostics.
func Load(r io.Reader, name string) (*outline.Outline, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return outline.New(), nil
		}
		return nil, xsderrors.Wrap(xsderrors.ErrManifestInvalid, err, name, "decode model")
	}
	return m.Outline(name)
}

// Outline resolves the manifest's references and builds the host model.
// All unresolved references are reported together.
func (m *Manifest) Outline(name string) (*outline.Outline, error) {
	o := outline.New()
	o.PrologComment = m.Prolog

	var diags xsderrors.DiagnosticList
	report := func(line int, format string, args ...any) {
		d := xsderrors.NewDiagnosticf(xsderrors.ErrManifestInvalid, name, format, args...)
		d.Line = line
		diags = append(diags, *d)
	}

	docs := make(map[string]*schema.Document, len(m.Documents))
	for _, d := range m.Documents {
		if d.ID == "" {
			report(d.line, "document without id")
			continue
		}
		if _, dup := docs[d.ID]; dup {
			report(d.line, "duplicate document %q", d.ID)
			continue
		}
		docs[d.ID] = &schema.Document{TargetNamespace: d.TargetNamespace, SystemID: d.SystemID}
	}

	comps := make(map[string]*schema.Component, len(m.Components))
	for _, c := range m.Components {
		if c.ID == "" {
			report(c.line, "component without id")
			continue
		}
		if _, dup := comps[c.ID]; dup {
			report(c.line, "duplicate component %q", c.ID)
			continue
		}
		kind, ok := schema.ParseKind(c.Kind)
		if !ok {
			report(c.line, "component %q has unknown kind %q", c.ID, c.Kind)
			continue
		}
		comp := &schema.Component{
			Namespace: c.Namespace,
			Name:      c.Name,
			Kind:      kind,
			Local:     c.Local,
		}
		if c.Document != "" {
			doc, ok := docs[c.Document]
			if !ok {
				report(c.line, "component %q references unknown document %q", c.ID, c.Document)
				continue
			}
			comp.Source = doc
		}
		o.Schemas.Add(comp)
		comps[c.ID] = comp
	}

	lookup := func(line int, owner, id string) *schema.Component {
		if id == "" {
			return nil
		}
		comp, ok := comps[id]
		if !ok {
			report(line, "%s references unknown component %q", owner, id)
		}
		return comp
	}

	for _, c := range m.Classes {
		o.Classes = append(o.Classes, outline.Class{
			Component: lookup(c.line, "class "+c.Name, c.Component),
			FullName:  c.Name,
			Package:   c.Package,
			Interface: c.Interface,
		})
	}
	for _, e := range m.Enums {
		o.Enums = append(o.Enums, outline.Enum{
			Component: lookup(e.line, "enum "+e.Name, e.Component),
			FullName:  e.Name,
			Package:   e.Package,
		})
	}
	for _, p := range m.Packages {
		o.Packages = append(o.Packages, outline.Package{Name: p.Name, MostUsedNamespaceURI: p.Namespace})
	}

	if len(diags) > 0 {
		return nil, diags
	}
	return o, nil
}
