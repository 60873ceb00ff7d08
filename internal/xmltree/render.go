package xmltree

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/mklemm/jaxb2-episode-ext/internal/xmlnames"
)

// Declaration is the XML declaration written before the root element.
const Declaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// RenderOptions controls serialization.
type RenderOptions struct {
	// Indent is repeated once per nesting level; empty writes no line breaks.
	Indent string
	// OmitDeclaration suppresses the XML declaration.
	OmitDeclaration bool
}

// Render writes root as a well-formed document. It fails when an element or
// attribute namespace has no in-scope prefix, when a reserved prefix is
// misbound, or when a comment cannot be represented. Errors from w abort
// rendering and are returned.
func Render(w io.Writer, root *Element, opts RenderOptions) error {
	if root == nil {
		return fmt.Errorf("render: nil root element")
	}
	p := &printer{w: bufio.NewWriter(w), indent: opts.Indent}
	if !opts.OmitDeclaration {
		p.writeString(Declaration)
		p.newline()
	}
	err := p.element(root, 0)
	p.newline()
	if p.err != nil {
		return fmt.Errorf("render: %w", p.err)
	}
	if err != nil {
		return err
	}
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

type printer struct {
	w      *bufio.Writer
	err    error
	indent string
	scopes [][]Namespace
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	p.err = err
	return n, err
}

func (p *printer) writeString(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.WriteString(s)
}

func (p *printer) escape(s string) {
	if p.err != nil {
		return
	}
	if err := xml.EscapeText(p, []byte(s)); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *printer) newline() {
	if p.indent != "" {
		p.writeString("\n")
	}
}

func (p *printer) pad(depth int) {
	if p.indent != "" {
		p.writeString(strings.Repeat(p.indent, depth))
	}
}

func (p *printer) element(e *Element, depth int) error {
	for _, ns := range e.Namespaces {
		if err := xmlnames.ValidatePrefixBinding(ns.Prefix, ns.URI); err != nil {
			return fmt.Errorf("render %s: %w", e.Name.Local, err)
		}
	}
	p.scopes = append(p.scopes, e.Namespaces)
	defer func() { p.scopes = p.scopes[:len(p.scopes)-1] }()

	qname, err := p.elementName(e.Name)
	if err != nil {
		return err
	}
	p.writeString("<")
	p.writeString(qname)
	for _, ns := range e.Namespaces {
		if ns.Prefix == "" {
			p.writeString(` xmlns="`)
		} else {
			p.writeString(" xmlns:" + ns.Prefix + `="`)
		}
		p.escape(ns.URI)
		p.writeString(`"`)
	}
	for _, a := range e.Attrs {
		name, err := p.attrName(a.Name)
		if err != nil {
			return err
		}
		p.writeString(" " + name + `="`)
		p.escape(a.Value)
		p.writeString(`"`)
	}
	if len(e.Children) == 0 {
		p.writeString("/>")
		return p.err
	}
	p.writeString(">")

	block := !hasText(e)
	for _, child := range e.Children {
		if block {
			p.newline()
			p.pad(depth + 1)
		}
		switch c := child.(type) {
		case *Element:
			if err := p.element(c, depth+1); err != nil {
				return err
			}
		case Comment:
			if err := p.comment(string(c)); err != nil {
				return err
			}
		case Text:
			p.escape(string(c))
		}
	}
	if block {
		p.newline()
		p.pad(depth)
	}
	p.writeString("</" + qname + ">")
	return p.err
}

func (p *printer) comment(text string) error {
	if strings.Contains(text, "--") || strings.HasSuffix(text, "-") {
		return fmt.Errorf("render: comment %q contains \"--\" or ends with \"-\"", text)
	}
	p.writeString("<!--")
	p.writeString(text)
	p.writeString("-->")
	return nil
}

func hasText(e *Element) bool {
	for _, c := range e.Children {
		if _, ok := c.(Text); ok {
			return true
		}
	}
	return false
}

// resolve returns the URI bound to prefix in the current scope.
func (p *printer) resolve(prefix string) (string, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		for _, ns := range p.scopes[i] {
			if ns.Prefix == prefix {
				return ns.URI, true
			}
		}
	}
	if prefix == xmlnames.XMLPrefix {
		return xmlnames.XMLNamespace, true
	}
	return "", prefix == ""
}

// prefixFor returns an in-scope, unshadowed prefix bound to uri.
func (p *printer) prefixFor(uri string, allowDefault bool) (string, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		for _, ns := range p.scopes[i] {
			if ns.URI != uri || (ns.Prefix == "" && !allowDefault) {
				continue
			}
			if bound, _ := p.resolve(ns.Prefix); bound == uri {
				return ns.Prefix, true
			}
		}
	}
	if uri == xmlnames.XMLNamespace {
		return xmlnames.XMLPrefix, true
	}
	return "", false
}

func (p *printer) elementName(n Name) (string, error) {
	if n.Space == "" {
		if def, _ := p.resolve(""); def != "" {
			return "", fmt.Errorf("render: element %s has no namespace but default namespace %s is in scope", n.Local, def)
		}
		return n.Local, nil
	}
	prefix, ok := p.prefixFor(n.Space, true)
	if !ok {
		return "", fmt.Errorf("render: namespace %s of element %s is not declared", n.Space, n.Local)
	}
	if prefix == "" {
		return n.Local, nil
	}
	return prefix + ":" + n.Local, nil
}

func (p *printer) attrName(n Name) (string, error) {
	if n.Space == "" {
		return n.Local, nil
	}
	prefix, ok := p.prefixFor(n.Space, false)
	if !ok {
		return "", fmt.Errorf("render: namespace %s of attribute %s is not declared", n.Space, n.Local)
	}
	return prefix + ":" + n.Local, nil
}
