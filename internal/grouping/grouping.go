// Package grouping partitions adaptors by owning schema, preserving the order
// in which schemas and adaptors are first seen.
package grouping

import (
	"github.com/mklemm/jaxb2-episode-ext/internal/adaptor"
	"github.com/mklemm/jaxb2-episode-ext/pkg/schema"
)

// SkipReason explains why an adaptor was left out of every group.
type SkipReason string

const (
	SkipNoComponent    SkipReason = "no-component"
	SkipNotDeclaration SkipReason = "not-declaration"
	SkipLocal          SkipReason = "local"
)

// Group is the set of adaptors owned by one schema.
type Group struct {
	schema   *schema.Schema
	adaptors []adaptor.Adaptor
	packages []string
	seenPkg  map[string]struct{}
}

// Schema returns the owning schema.
func (g *Group) Schema() *schema.Schema {
	return g.schema
}

// Namespace returns the owning schema's target namespace.
func (g *Group) Namespace() string {
	return g.schema.TargetNamespace
}

// Adaptors returns the group's adaptors in discovery order.
func (g *Group) Adaptors() []adaptor.Adaptor {
	out := make([]adaptor.Adaptor, len(g.adaptors))
	copy(out, g.adaptors)
	return out
}

// Packages returns the distinct package names in first-seen order.
func (g *Group) Packages() []string {
	out := make([]string, len(g.packages))
	copy(out, g.packages)
	return out
}

// SinglePackage returns the package name when the group maps to exactly one
// distinct, non-empty package.
func (g *Group) SinglePackage() (string, bool) {
	if len(g.packages) != 1 || g.packages[0] == "" {
		return "", false
	}
	return g.packages[0], true
}

func (g *Group) add(a adaptor.Adaptor) {
	g.adaptors = append(g.adaptors, a)
	if _, ok := g.seenPkg[a.PackageName]; ok {
		return
	}
	g.seenPkg[a.PackageName] = struct{}{}
	g.packages = append(g.packages, a.PackageName)
}

// Result is the immutable outcome of grouping.
type Result struct {
	skipped        map[SkipReason]int
	groups         []*Group
	hasNoNamespace bool
}

// Groups returns the groups in the order their schemas were first seen.
func (r *Result) Groups() []*Group {
	out := make([]*Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// Len returns the number of groups.
func (r *Result) Len() int {
	return len(r.groups)
}

// HasNoNamespace reports whether any grouped component has no target namespace.
func (r *Result) HasNoNamespace() bool {
	return r.hasNoNamespace
}

// Skipped returns how many adaptors were excluded for reason.
func (r *Result) Skipped(reason SkipReason) int {
	return r.skipped[reason]
}

// Builder accumulates adaptors into groups keyed by the owning schema's
// target namespace. The zero value is not usable; call NewBuilder.
type Builder struct {
	bySchema map[string]*Group
	result   *Result
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		bySchema: make(map[string]*Group),
		result:   &Result{skipped: make(map[SkipReason]int)},
	}
}

// Add groups a when its component is a global declaration and reports whether
// it was kept.
func (b *Builder) Add(a adaptor.Adaptor) bool {
	c := a.Component
	switch {
	case c == nil:
		b.result.skipped[SkipNoComponent]++
		return false
	case !c.IsDeclaration():
		b.result.skipped[SkipNotDeclaration]++
		return false
	case c.Local:
		// local components cannot be referenced from outside their schema
		b.result.skipped[SkipLocal]++
		return false
	}

	ns := c.OwnerNamespace()
	g, ok := b.bySchema[ns]
	if !ok {
		owner := c.Owner
		if owner == nil {
			owner = &schema.Schema{TargetNamespace: ns}
		}
		g = &Group{schema: owner, seenPkg: make(map[string]struct{})}
		b.bySchema[ns] = g
		b.result.groups = append(b.result.groups, g)
	}
	g.add(a)

	if c.Namespace == "" {
		b.result.hasNoNamespace = true
	}
	return true
}

// Result returns the grouping and invalidates the builder.
func (b *Builder) Result() *Result {
	r := b.result
	b.bySchema = nil
	b.result = nil
	return r
}

// Build groups adaptors in order.
func Build(adaptors []adaptor.Adaptor) *Result {
	b := NewBuilder()
	for _, a := range adaptors {
		b.Add(a)
	}
	return b.Result()
}
