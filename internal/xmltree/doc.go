// Package xmltree is a small namespace-aware document model: documents are
// built as a tree of nodes first and rendered by a separate serializer, so
// structure can be asserted without parsing output text.
package xmltree
