package episode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mklemm/jaxb2-episode-ext/internal/catalog"
	"github.com/mklemm/jaxb2-episode-ext/internal/logging"
	"github.com/mklemm/jaxb2-episode-ext/internal/logging/logfields"
	"github.com/mklemm/jaxb2-episode-ext/internal/pkgmap"
	"github.com/mklemm/jaxb2-episode-ext/internal/scd"
)

// Default resource locations.
const (
	DefaultEpisodeFile    = "sun-jaxb.episode"
	DefaultEpisodePackage = "META-INF"
	DefaultMappingFile    = pkgmap.DefaultFileName
	DefaultMappingPackage = "META-INF"
	DefaultCatalogFile    = catalog.DefaultFileName
	DefaultCatalogPackage = ""
	DefaultCatalogMarker  = catalog.DefaultMarker
)

// SCDPolicy selects how component designators qualify names.
type SCDPolicy string

const (
	// SCDPolicyXML qualifies names in the XML core namespace with xml: and
	// all other namespaced names with tns:.
	SCDPolicyXML SCDPolicy = "xml"
	// SCDPolicyBaseline only distinguishes the empty namespace from tns:.
	SCDPolicyBaseline SCDPolicy = "baseline"
)

// Sink receives the serialized episode document.
type Sink interface {
	io.Writer
	String() string
}

type stringOption struct {
	value string
	set   bool
}

func (o stringOption) resolved(def string) string {
	if !o.set {
		return def
	}
	return o.value
}

type boolOption struct {
	value bool
	set   bool
}

func (o boolOption) resolved(def bool) bool {
	if !o.set {
		return def
	}
	return o.value
}

// Options configures episode generation. The zero value is valid and
// selects the defaults.
type Options struct {
	logger         logrus.FieldLogger
	sink           func() Sink
	episodeFile    stringOption
	episodePackage stringOption
	mappingFile    stringOption
	mappingPackage stringOption
	catalogFile    stringOption
	catalogPackage stringOption
	catalogMarker  stringOption
	policy         stringOption
	auxFiles       boolOption
	interfaces     boolOption
}

type resolvedOptions struct {
	logger         logrus.FieldLogger
	sink           func() Sink
	episodeFile    string
	episodePackage string
	mappingFile    string
	mappingPackage string
	catalogFile    string
	catalogPackage string
	catalogMarker  string
	policy         scd.Policy
	auxFiles       bool
	interfaces     bool
}

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// Validate validates option values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithEpisodeFile sets the episode resource file name.
func (o Options) WithEpisodeFile(name string) Options {
	o.episodeFile = stringOption{value: name, set: true}
	return o
}

// WithEpisodePackage sets the package the episode file is registered under.
func (o Options) WithEpisodePackage(name string) Options {
	o.episodePackage = stringOption{value: name, set: true}
	return o
}

// WithMappingFile sets the package-mapping properties file name.
func (o Options) WithMappingFile(name string) Options {
	o.mappingFile = stringOption{value: name, set: true}
	return o
}

// WithMappingPackage sets the package the properties file is registered under.
func (o Options) WithMappingPackage(name string) Options {
	o.mappingPackage = stringOption{value: name, set: true}
	return o
}

// WithCatalogFile sets the catalog file name.
func (o Options) WithCatalogFile(name string) Options {
	o.catalogFile = stringOption{value: name, set: true}
	return o
}

// WithCatalogPackage sets the package the catalog is registered under ("" is the root package).
func (o Options) WithCatalogPackage(name string) Options {
	o.catalogPackage = stringOption{value: name, set: true}
	return o
}

// WithCatalogMarker sets the system id segment that precedes classpath-relative paths.
func (o Options) WithCatalogMarker(marker string) Options {
	o.catalogMarker = stringOption{value: marker, set: true}
	return o
}

// WithSCDPolicy sets the designator namespace policy.
func (o Options) WithSCDPolicy(policy SCDPolicy) Options {
	o.policy = stringOption{value: string(policy), set: true}
	return o
}

// WithAuxiliaryFiles controls whether the properties file and catalog are emitted.
func (o Options) WithAuxiliaryFiles(value bool) Options {
	o.auxFiles = boolOption{value: value, set: true}
	return o
}

// WithInterfaces enables interface bindings for classes generated from group declarations.
func (o Options) WithInterfaces(value bool) Options {
	o.interfaces = boolOption{value: value, set: true}
	return o
}

// WithLogger sets the logger (nil uses the package default).
func (o Options) WithLogger(logger logrus.FieldLogger) Options {
	o.logger = logger
	return o
}

// WithSink sets the constructor of the buffer the episode is rendered into.
func (o Options) WithSink(newSink func() Sink) Options {
	o.sink = newSink
	return o
}

func (o Options) withDefaults() (resolvedOptions, error) {
	r := resolvedOptions{
		logger:         o.logger,
		sink:           o.sink,
		episodeFile:    o.episodeFile.resolved(DefaultEpisodeFile),
		episodePackage: o.episodePackage.resolved(DefaultEpisodePackage),
		mappingFile:    o.mappingFile.resolved(DefaultMappingFile),
		mappingPackage: o.mappingPackage.resolved(DefaultMappingPackage),
		catalogFile:    o.catalogFile.resolved(DefaultCatalogFile),
		catalogPackage: o.catalogPackage.resolved(DefaultCatalogPackage),
		catalogMarker:  o.catalogMarker.resolved(DefaultCatalogMarker),
		auxFiles:       o.auxFiles.resolved(true),
		interfaces:     o.interfaces.resolved(false),
	}
	if r.logger == nil {
		r.logger = logging.DefaultLogger.WithField(logfields.LogSubsys, "episode")
	}
	if r.sink == nil {
		r.sink = func() Sink { return new(bytes.Buffer) }
	}

	policy, err := scd.ParsePolicy(o.policy.value)
	if err != nil {
		return resolvedOptions{}, fmt.Errorf("scd policy: %w", err)
	}
	r.policy = policy

	files := []struct {
		option string
		value  string
	}{
		{"episode file", r.episodeFile},
		{"mapping file", r.mappingFile},
		{"catalog file", r.catalogFile},
	}
	for _, f := range files {
		if err := validateFileName(f.value); err != nil {
			return resolvedOptions{}, fmt.Errorf("%s: %w", f.option, err)
		}
	}
	if r.catalogMarker == "" {
		return resolvedOptions{}, fmt.Errorf("catalog marker must not be empty")
	}
	return r, nil
}

func validateFileName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("file name must not be empty")
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("file name %q must not contain a path separator", name)
	default:
		return nil
	}
}
