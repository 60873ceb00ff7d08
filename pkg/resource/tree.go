// Package resource models the host's output package tree: resource files
// registered under dotted package names and flushed to a filesystem.
package resource

import (
	"fmt"
	"path"
	"strings"
)

// File is a resource file with its final contents.
type File struct {
	Name string
	Data []byte
}

// Package holds the resource files registered under one package name.
type Package struct {
	name  string
	files []File
}

// Name returns the dotted package name; the empty string is the root package.
func (p *Package) Name() string {
	return p.name
}

// Dir returns the slash-separated directory for the package.
func (p *Package) Dir() string {
	return strings.ReplaceAll(p.name, ".", "/")
}

// Files returns the registered files in registration order.
func (p *Package) Files() []File {
	out := make([]File, len(p.files))
	copy(out, p.files)
	return out
}

// AddResourceFile registers f, replacing an earlier file with the same name.
func (p *Package) AddResourceFile(f File) error {
	if f.Name == "" || strings.ContainsAny(f.Name, `/\`) {
		return fmt.Errorf("resource %q: invalid file name", f.Name)
	}
	for i := range p.files {
		if p.files[i].Name == f.Name {
			p.files[i] = f
			return nil
		}
	}
	p.files = append(p.files, f)
	return nil
}

// Tree is the set of packages resources were registered under.
type Tree struct {
	byName map[string]*Package
	order  []*Package
}

// NewTree returns an empty resource tree.
func NewTree() *Tree {
	return &Tree{byName: make(map[string]*Package)}
}

// Package returns the package named name, creating it on first use.
func (t *Tree) Package(name string) *Package {
	if p, ok := t.byName[name]; ok {
		return p
	}
	p := &Package{name: name}
	t.byName[name] = p
	t.order = append(t.order, p)
	return p
}

// Lookup returns the file registered as name under pkg.
func (t *Tree) Lookup(pkg, name string) (File, bool) {
	p, ok := t.byName[pkg]
	if !ok {
		return File{}, false
	}
	for _, f := range p.files {
		if f.Name == name {
			return f, true
		}
	}
	return File{}, false
}

// Paths returns the slash-separated relative path of every registered file.
func (t *Tree) Paths() []string {
	var out []string
	for _, p := range t.order {
		for _, f := range p.files {
			out = append(out, path.Join(p.Dir(), f.Name))
		}
	}
	return out
}

// Len returns the number of registered files.
func (t *Tree) Len() int {
	n := 0
	for _, p := range t.order {
		n += len(p.files)
	}
	return n
}
