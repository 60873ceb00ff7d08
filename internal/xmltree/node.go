package xmltree

import "strings"

// Name is a namespace-qualified name. Prefixes are not part of a name; the
// serializer derives them from in-scope namespace declarations.
type Name struct {
	Space string
	Local string
}

// Attr is an attribute of an element.
type Attr struct {
	Name  Name
	Value string
}

// Namespace is a namespace declaration. An empty Prefix declares the default namespace.
type Namespace struct {
	Prefix string
	URI    string
}

// Node is an element, comment, or text node.
type Node interface {
	isNode()
}

// Comment is a comment node.
type Comment string

// Text is a character data node.
type Text string

func (Comment) isNode() {}
func (Text) isNode()    {}

// Element is an element node.
type Element struct {
	Name       Name
	Namespaces []Namespace
	Attrs      []Attr
	Children   []Node
}

func (*Element) isNode() {}

// NewElement returns an element named {space}local.
func NewElement(space, local string) *Element {
	return &Element{Name: Name{Space: space, Local: local}}
}

// Declare adds a namespace declaration and returns e.
func (e *Element) Declare(prefix, uri string) *Element {
	e.Namespaces = append(e.Namespaces, Namespace{Prefix: prefix, URI: uri})
	return e
}

// SetAttr sets an unqualified attribute, replacing an existing value, and returns e.
func (e *Element) SetAttr(local, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name.Space == "" && e.Attrs[i].Name.Local == local {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: Name{Local: local}, Value: value})
	return e
}

// Attr returns the value of the unqualified attribute local.
func (e *Element) Attr(local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds child elements and returns e.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		e.Children = append(e.Children, c)
	}
	return e
}

// AppendComment adds a comment node and returns e.
func (e *Element) AppendComment(text string) *Element {
	e.Children = append(e.Children, Comment(text))
	return e
}

// AppendText adds a text node and returns e.
func (e *Element) AppendText(text string) *Element {
	e.Children = append(e.Children, Text(text))
	return e
}

// Elements returns the child elements in document order.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, n := range e.Children {
		if el, ok := n.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// ElementsNamed returns the child elements named {space}local.
func (e *Element) ElementsNamed(space, local string) []*Element {
	var out []*Element
	for _, el := range e.Elements() {
		if el.Name.Space == space && el.Name.Local == local {
			out = append(out, el)
		}
	}
	return out
}

// FirstElement returns the first child element named {space}local.
func (e *Element) FirstElement(space, local string) *Element {
	for _, el := range e.Elements() {
		if el.Name.Space == space && el.Name.Local == local {
			return el
		}
	}
	return nil
}

// Comments returns the text of the direct comment children.
func (e *Element) Comments() []string {
	var out []string
	for _, n := range e.Children {
		if c, ok := n.(Comment); ok {
			out = append(out, string(c))
		}
	}
	return out
}

// LookupNamespace returns the URI e itself declares for prefix.
func (e *Element) LookupNamespace(prefix string) (string, bool) {
	for _, ns := range e.Namespaces {
		if ns.Prefix == prefix {
			return ns.URI, true
		}
	}
	return "", false
}

// TextContent returns the concatenated text content of the element subtree.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.collectText(&sb)
	return sb.String()
}

func (e *Element) collectText(sb *strings.Builder) {
	for _, n := range e.Children {
		switch v := n.(type) {
		case Text:
			sb.WriteString(string(v))
		case *Element:
			v.collectText(sb)
		}
	}
}
