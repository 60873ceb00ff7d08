package manifest

import (
	"strings"
	"testing"

	xsderrors "github.com/mklemm/jaxb2-episode-ext/errors"
	"github.com/mklemm/jaxb2-episode-ext/pkg/schema"
)

func TestLoadFile(t *testing.T) {
	o, err := LoadFile("testdata/orders.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got, want := o.PrologComment, "This file was generated by the XML binding compiler."; got != want {
		t.Fatalf("PrologComment = %q, want %q", got, want)
	}
	if len(o.Classes) != 4 || len(o.Enums) != 1 || len(o.Packages) != 2 {
		t.Fatalf("counts = %d classes, %d enums, %d packages, want 4, 1, 2",
			len(o.Classes), len(o.Enums), len(o.Packages))
	}

	order := o.Classes[0].Component
	if order == nil || order.Kind != schema.KindComplexType || order.Name != "Order" {
		t.Fatalf("Classes[0].Component = %v, want complexType Order", order)
	}
	if order.Owner != o.Schemas.Schema("urn:orders") {
		t.Fatalf("Order owner is not the interned urn:orders schema")
	}
	if order.Source == nil || !strings.HasSuffix(order.Source.SystemID, "orders.xsd") {
		t.Fatalf("Order source = %v, want orders.xsd", order.Source)
	}
	if o.Classes[0].Component.Source != o.Classes[1].Component.Source {
		t.Fatalf("components of one document do not share a Document")
	}
	if !o.Classes[2].Component.Local {
		t.Fatalf("Line component should be local")
	}
	if !o.Classes[3].Interface {
		t.Fatalf("Audit class should be flagged as interface")
	}
	if o.Schemas.AttributeGroupDecl("urn:orders", "Audit") == nil {
		t.Fatalf("Audit attribute group not indexed")
	}
	if got := o.Packages[1].MostUsedNamespaceURI; got != "" {
		t.Fatalf("Packages[1].MostUsedNamespaceURI = %q, want empty", got)
	}
}

func TestLoadEmpty(t *testing.T) {
	o, err := Load(strings.NewReader(""), "empty.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(o.Classes) != 0 || o.Resources == nil || o.Schemas == nil {
		t.Fatalf("Load() = %+v, want empty outline", o)
	}
}

func TestLoadUnmappedClass(t *testing.T) {
	src := `
classes:
  - name: com.example.Helper
    package: com.example
`
	o, err := Load(strings.NewReader(src), "m.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if o.Classes[0].Component != nil {
		t.Fatalf("Component = %v, want nil", o.Classes[0].Component)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    string
		line    int
		entries int
	}{
		{
			name: "unknown field",
			src:  "bogus: 1\n",
			want: "decode model",
		},
		{
			name: "unknown kind",
			src: `components:
  - id: a
    kind: complex
`,
			want:    `unknown kind "complex"`,
			line:    2,
			entries: 1,
		},
		{
			name: "unknown document",
			src: `components:
  - id: a
    kind: complexType
    document: nope
`,
			want:    `unknown document "nope"`,
			line:    2,
			entries: 1,
		},
		{
			name: "unknown component references are all reported",
			src: `classes:
  - name: A
    component: x
enums:
  - name: B
    component: y
`,
			want:    `class A references unknown component "x"`,
			line:    2,
			entries: 2,
		},
		{
			name: "duplicate document",
			src: `documents:
  - id: d
  - id: d
`,
			want:    `duplicate document "d"`,
			line:    3,
			entries: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src), "m.yaml")
			if err == nil {
				t.Fatalf("Load() error = nil, want %q", tt.want)
			}
			if !xsderrors.HasCode(err, xsderrors.ErrManifestInvalid) {
				t.Fatalf("Load() error = %v, want code %s", err, xsderrors.ErrManifestInvalid)
			}
			diags := xsderrors.AsDiagnostics(err)
			if !strings.Contains(diags[0].Error(), tt.want) {
				t.Fatalf("Load() error = %v, want %q", diags[0].Error(), tt.want)
			}
			if tt.entries > 0 && len(diags) != tt.entries {
				t.Fatalf("len(diagnostics) = %d, want %d", len(diags), tt.entries)
			}
			if tt.line > 0 && diags[0].Line != tt.line {
				t.Fatalf("diagnostic line = %d, want %d", diags[0].Line, tt.line)
			}
		})
	}
}
