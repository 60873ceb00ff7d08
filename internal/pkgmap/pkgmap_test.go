package pkgmap

import (
	"slices"
	"testing"

	"github.com/magiconair/properties"

	"github.com/mklemm/jaxb2-episode-ext/pkg/outline"
)

func TestBuild(t *testing.T) {
	data, err := Build([]outline.Package{
		{Name: "com.example.b", MostUsedNamespaceURI: "http://ex/b"},
		{Name: "com.example.a", MostUsedNamespaceURI: "urn:a:ns=1"},
		{Name: "com.example.none"},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	p, err := properties.Load(data, properties.ISO_8859_1)
	if err != nil {
		t.Fatalf("properties.Load() error = %v\n%s", err, data)
	}
	wantKeys := []string{"com.example.b", "com.example.a", "com.example.none"}
	if got := p.Keys(); !slices.Equal(got, wantKeys) {
		t.Fatalf("Keys() = %v, want %v", got, wantKeys)
	}
	for key, want := range map[string]string{
		"com.example.b":    "http://ex/b",
		"com.example.a":    "urn:a:ns=1",
		"com.example.none": "",
	} {
		got, ok := p.Get(key)
		if !ok || got != want {
			t.Fatalf("Get(%q) = %q, %v, want %q", key, got, ok, want)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	data, err := Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("Build(nil) = %q, want empty", data)
	}
}
