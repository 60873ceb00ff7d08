package xmltree

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	nsA = "urn:a"
	nsB = "urn:b"
)

func TestRenderDefaultAndPrefixedNamespaces(t *testing.T) {
	root := NewElement(nsA, "root").Declare("", nsA).SetAttr("version", "1")
	child := NewElement(nsA, "child").Declare("b", nsB).SetAttr("ref", `a<"b">&c`)
	child.Append(NewElement(nsB, "leaf").AppendText("x & y"))
	root.AppendComment(" note ").Append(child, NewElement(nsA, "empty"))

	var buf bytes.Buffer
	if err := Render(&buf, root, RenderOptions{Indent: "  "}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := Declaration + "\n" +
		`<root xmlns="urn:a" version="1">` + "\n" +
		`  <!-- note -->` + "\n" +
		`  <child xmlns:b="urn:b" ref="a&lt;&#34;b&#34;&gt;&amp;c">` + "\n" +
		`    <b:leaf>x &amp; y</b:leaf>` + "\n" +
		`  </child>` + "\n" +
		`  <empty/>` + "\n" +
		`</root>` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCompact(t *testing.T) {
	root := NewElement(nsA, "r").Declare("p", nsA).Append(NewElement(nsA, "c"))
	var buf bytes.Buffer
	if err := Render(&buf, root, RenderOptions{OmitDeclaration: true}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got, want := buf.String(), `<p:r xmlns:p="urn:a"><p:c/></p:r>`; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderShadowedPrefix(t *testing.T) {
	root := NewElement(nsA, "r").Declare("p", nsA)
	inner := NewElement(nsB, "i").Declare("p", nsB)
	inner.Append(NewElement(nsB, "leaf"))
	root.Append(inner)
	var buf bytes.Buffer
	if err := Render(&buf, root, RenderOptions{OmitDeclaration: true}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := `<p:r xmlns:p="urn:a"><p:i xmlns:p="urn:b"><p:leaf/></p:i></p:r>`
	if got := buf.String(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}

	// urn:a is no longer reachable through p inside the shadowing element
	inner.Append(NewElement(nsA, "lost"))
	if err := Render(io.Discard, root, RenderOptions{}); err == nil {
		t.Fatalf("Render() error = nil, want undeclared namespace error")
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		root *Element
	}{
		{name: "nil root"},
		{name: "undeclared namespace", root: NewElement(nsA, "r")},
		{name: "unqualified under default", root: NewElement(nsA, "r").Declare("", nsA).Append(NewElement("", "x"))},
		{name: "attribute needs prefix", root: &Element{Name: Name{Local: "r"}, Namespaces: []Namespace{{URI: nsA}}, Attrs: []Attr{{Name: Name{Space: nsB, Local: "x"}}}}},
		{name: "bad comment", root: NewElement("", "r").AppendComment("a -- b")},
		{name: "comment trailing dash", root: NewElement("", "r").AppendComment("a-")},
		{name: "misbound xml prefix", root: NewElement("", "r").Declare("xml", nsA)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Render(io.Discard, tt.root, RenderOptions{}); err == nil {
				t.Fatalf("Render() error = nil, want error")
			}
		})
	}
}

func TestRenderXMLNamespace(t *testing.T) {
	root := NewElement("", "r").Declare("xml", "http://www.w3.org/XML/1998/namespace")
	root.Attrs = append(root.Attrs, Attr{Name: Name{Space: "http://www.w3.org/XML/1998/namespace", Local: "lang"}, Value: "en"})
	var buf bytes.Buffer
	if err := Render(&buf, root, RenderOptions{OmitDeclaration: true}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := buf.String(); !strings.Contains(got, `xml:lang="en"`) {
		t.Fatalf("Render() = %q, want xml:lang attribute", got)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRenderPropagatesWriterError(t *testing.T) {
	errDisk := errors.New("disk full")
	root := NewElement("", "r")
	err := Render(failingWriter{err: errDisk}, root, RenderOptions{})
	if !errors.Is(err, errDisk) {
		t.Fatalf("Render() error = %v, want %v", err, errDisk)
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	root := NewElement(nsA, "root").Declare("a", nsA).SetAttr("k", "v")
	root.AppendComment("\n\n  banner\n  ")
	root.Append(
		NewElement(nsA, "x").Declare("b", nsB).Append(NewElement(nsB, "y").SetAttr("ref", "T")),
		NewElement(nsA, "z").AppendText("text"),
	)

	var buf bytes.Buffer
	if err := Render(&buf, root, RenderOptions{Indent: "  "}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(root, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
