// Package catalog writes an XML catalog mapping schema namespaces to the
// classpath-relative location of their source documents.
package catalog

import (
	"strings"

	"github.com/mklemm/jaxb2-episode-ext/internal/adaptor"
)

const (
	// DefaultFileName is the catalog file name registered with the host.
	DefaultFileName = "default.catalog"
	// DefaultMarker separates the project layout from the classpath-relative path.
	DefaultMarker = "src/main/resources/"
)

// Entry is one PUBLIC catalog line.
type Entry struct {
	Namespace string
	Path      string
}

// Result is the catalog plus the namespaces whose system id lacked the marker.
type Result struct {
	Entries  []Entry
	Unmapped []string
}

// Bytes renders the catalog text.
func (r Result) Bytes() []byte {
	var b strings.Builder
	for _, e := range r.Entries {
		b.WriteString(`PUBLIC "`)
		b.WriteString(e.Namespace)
		b.WriteString(`" "`)
		b.WriteString(e.Path)
		b.WriteString("\"\n")
	}
	return []byte(b.String())
}

// Build collects one entry per distinct source document namespace, in the
// order namespaces are first seen. The first system id seen for a namespace
// wins. Adaptors without a source document are ignored.
func Build(adaptors []adaptor.Adaptor, marker string) Result {
	if marker == "" {
		marker = DefaultMarker
	}
	var res Result
	seen := make(map[string]struct{})
	for _, a := range adaptors {
		if a.Component == nil || a.Component.Source == nil {
			continue
		}
		doc := a.Component.Source
		if _, ok := seen[doc.TargetNamespace]; ok {
			continue
		}
		seen[doc.TargetNamespace] = struct{}{}

		pos := strings.Index(doc.SystemID, marker)
		if pos < 0 {
			res.Unmapped = append(res.Unmapped, doc.TargetNamespace)
			continue
		}
		res.Entries = append(res.Entries, Entry{
			Namespace: doc.TargetNamespace,
			Path:      doc.SystemID[pos+len(marker):],
		})
	}
	return res
}
