package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"unicode"

	"github.com/mklemm/jaxb2-episode-ext/internal/xmlnames"
)

// Parse reads a document into a tree. Namespace declarations are kept on the
// element that declares them; whitespace-only text between elements is
// dropped.
func Parse(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)

	var stack []*Element
	var root *Element
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			elem := &Element{Name: Name{Space: t.Name.Space, Local: t.Name.Local}}
			convertAttrs(elem, t.Attr)
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if isWhitespace(string(t)) {
				continue
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected character data outside root element")
			}
			stack[len(stack)-1].Children = append(stack[len(stack)-1].Children, Text(string(t)))

		case xml.Comment:
			if len(stack) > 0 {
				stack[len(stack)-1].Children = append(stack[len(stack)-1].Children, Comment(string(t)))
			}
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

func isWhitespace(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func convertAttrs(e *Element, xmlAttrs []xml.Attr) {
	for _, a := range xmlAttrs {
		switch {
		case a.Name.Space == xmlnames.XMLNSPrefix:
			e.Namespaces = append(e.Namespaces, Namespace{Prefix: a.Name.Local, URI: a.Value})
		case a.Name.Space == "" && a.Name.Local == xmlnames.XMLNSPrefix:
			e.Namespaces = append(e.Namespaces, Namespace{URI: a.Value})
		default:
			e.Attrs = append(e.Attrs, Attr{Name: Name{Space: a.Name.Space, Local: a.Name.Local}, Value: a.Value})
		}
	}
}
