// Package xmlnames holds the namespace URIs and reserved prefixes used by
// episode documents.
package xmlnames

import "fmt"

const (
	// XMLPrefix is the reserved prefix for the XML namespace.
	XMLPrefix = "xml"
	// XMLNSPrefix is the reserved prefix for namespace declarations.
	XMLNSPrefix = "xmlns"
	// XMLNamespace is the XML namespace URI.
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	// XMLNSNamespace is the XMLNS namespace URI.
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"

	// JAXBNamespace is the JAXB binding customization namespace used by episode files.
	JAXBNamespace = "http://java.sun.com/xml/ns/jaxb"
	// JAXBPrefix is the prefix bound to JAXBNamespace when the default namespace is unavailable.
	JAXBPrefix = "jaxb"
	// JAXBVersion is the binding language version written to episode files.
	JAXBVersion = "2.1"

	// InterfaceNamespace is the extension namespace for interface bindings.
	InterfaceNamespace = "http://www.kscs.com/util/jaxb/bindings"
	// InterfacePrefix is the prefix bound to InterfaceNamespace.
	InterfacePrefix = "kscs"

	// TNSPrefix is the prefix bound to a schema's target namespace inside a binding group.
	TNSPrefix = "tns"
)

// IsXMLNamespace reports whether ns is the XML core namespace.
func IsXMLNamespace(ns string) bool {
	return ns == XMLNamespace
}

// ValidatePrefixBinding verifies that the reserved xml and xmlns prefixes are bound correctly.
func ValidatePrefixBinding(prefix, uri string) error {
	switch prefix {
	case XMLPrefix:
		if uri != XMLNamespace {
			return fmt.Errorf("prefix %s must be bound to %s", XMLPrefix, XMLNamespace)
		}
	case XMLNSPrefix:
		return fmt.Errorf("prefix %s must not be declared", XMLNSPrefix)
	default:
		if uri == XMLNamespace {
			return fmt.Errorf("namespace %s must be bound to prefix %s", XMLNamespace, XMLPrefix)
		}
		if uri == XMLNSNamespace {
			return fmt.Errorf("namespace %s must not be declared", XMLNSNamespace)
		}
	}
	return nil
}
