// Package schema describes the parsed schema components a host compiler hands
// to the episode generator. Only the facets the generator queries are modeled:
// kind, name, target namespace, locality, owning schema and source document.
package schema
