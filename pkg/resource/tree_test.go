package resource

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"
)

func TestTreeRegistration(t *testing.T) {
	tree := NewTree()
	meta := tree.Package("META-INF")
	if tree.Package("META-INF") != meta {
		t.Fatalf("Package() returned a different value for the same name")
	}
	if err := meta.AddResourceFile(File{Name: "sun-jaxb.episode", Data: []byte("a")}); err != nil {
		t.Fatalf("AddResourceFile() error = %v", err)
	}
	if err := tree.Package("").AddResourceFile(File{Name: "default.catalog", Data: []byte("c")}); err != nil {
		t.Fatalf("AddResourceFile() error = %v", err)
	}
	if err := meta.AddResourceFile(File{Name: "sun-jaxb.episode", Data: []byte("b")}); err != nil {
		t.Fatalf("AddResourceFile(replace) error = %v", err)
	}

	if got := tree.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	f, ok := tree.Lookup("META-INF", "sun-jaxb.episode")
	if !ok || string(f.Data) != "b" {
		t.Fatalf("Lookup() = %q, %v, want replaced contents", f.Data, ok)
	}
	if _, ok := tree.Lookup("com.example", "x"); ok {
		t.Fatalf("Lookup(missing package) ok = true")
	}
	want := []string{"META-INF/sun-jaxb.episode", "default.catalog"}
	if got := tree.Paths(); !slices.Equal(got, want) {
		t.Fatalf("Paths() = %v, want %v", got, want)
	}
}

func TestAddResourceFileRejectsInvalidNames(t *testing.T) {
	p := NewTree().Package("x")
	for _, name := range []string{"", "a/b", `a\b`} {
		if err := p.AddResourceFile(File{Name: name}); err == nil {
			t.Fatalf("AddResourceFile(%q) error = nil, want error", name)
		}
	}
}

func TestPackageDir(t *testing.T) {
	tree := NewTree()
	if got := tree.Package("com.example.meta").Dir(); got != "com/example/meta" {
		t.Fatalf("Dir() = %q, want com/example/meta", got)
	}
	if got := tree.Package("").Dir(); got != "" {
		t.Fatalf("Dir() = %q, want empty", got)
	}
}

func TestWriteTo(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree.Package("META-INF"), File{Name: "sun-jaxb.episode", Data: []byte("<bindings/>")})
	mustAdd(t, tree.Package("com.example"), File{Name: "jaxb.index", Data: []byte("Foo\n")})

	fsys := afero.NewMemMapFs()
	written, err := tree.WriteTo(fsys, "/out")
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	want := []string{
		filepath.Join("/out", "META-INF", "sun-jaxb.episode"),
		filepath.Join("/out", "com", "example", "jaxb.index"),
	}
	if !slices.Equal(written, want) {
		t.Fatalf("WriteTo() = %v, want %v", written, want)
	}
	data, err := afero.ReadFile(fsys, want[0])
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "<bindings/>" {
		t.Fatalf("contents = %q", data)
	}
	entries, err := afero.ReadDir(fsys, filepath.Join("/out", "META-INF"))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("META-INF has %d entries, want 1 (temporary file left behind?)", len(entries))
	}
}

func TestWriteToFailure(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree.Package("META-INF"), File{Name: "sun-jaxb.episode", Data: []byte("x")})

	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	written, err := tree.WriteTo(fsys, "/out")
	if err == nil {
		t.Fatalf("WriteTo() error = nil, want error")
	}
	if len(written) != 0 {
		t.Fatalf("WriteTo() written = %v, want none", written)
	}
	if _, err := tree.WriteTo(nil, "/out"); err == nil {
		t.Fatalf("WriteTo(nil) error = nil, want error")
	}
}

func mustAdd(t *testing.T, p *Package, f File) {
	t.Helper()
	if err := p.AddResourceFile(f); err != nil {
		t.Fatalf("AddResourceFile() error = %v", err)
	}
}
