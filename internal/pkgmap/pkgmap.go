// Package pkgmap writes the package to namespace mapping properties file.
package pkgmap

import (
	"bytes"
	"fmt"

	"github.com/magiconair/properties"

	"github.com/mklemm/jaxb2-episode-ext/pkg/outline"
)

// DefaultFileName is the mapping file name registered with the host.
const DefaultFileName = "jaxb-packages.properties"

// Build returns the properties file mapping every package to its most used
// namespace URI, in host order. Packages without a namespace map to "".
func Build(packages []outline.Package) ([]byte, error) {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, pkg := range packages {
		if _, _, err := p.Set(pkg.Name, pkg.MostUsedNamespaceURI); err != nil {
			return nil, fmt.Errorf("package mapping %s: %w", pkg.Name, err)
		}
	}
	var buf bytes.Buffer
	if _, err := p.Write(&buf, properties.ISO_8859_1); err != nil {
		return nil, fmt.Errorf("package mapping: %w", err)
	}
	return buf.Bytes(), nil
}
