package episode

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	xsderrors "github.com/mklemm/jaxb2-episode-ext/errors"
	"github.com/mklemm/jaxb2-episode-ext/internal/adaptor"
	"github.com/mklemm/jaxb2-episode-ext/internal/bindings"
	"github.com/mklemm/jaxb2-episode-ext/internal/catalog"
	"github.com/mklemm/jaxb2-episode-ext/internal/grouping"
	"github.com/mklemm/jaxb2-episode-ext/internal/logging/logfields"
	"github.com/mklemm/jaxb2-episode-ext/internal/pkgmap"
	"github.com/mklemm/jaxb2-episode-ext/internal/scd"
	"github.com/mklemm/jaxb2-episode-ext/internal/xmltree"
	"github.com/mklemm/jaxb2-episode-ext/pkg/outline"
	"github.com/mklemm/jaxb2-episode-ext/pkg/resource"
)

const (
	// OptionName is the plugin option without its leading dash.
	OptionName = "Xepisode-ext"
	// EpisodeFileArg precedes the episode file name override.
	EpisodeFileArg = "-episode-file="

	usage = "  -" + OptionName + " [" + EpisodeFileArg + "<FILE>]    :  generate the episode file for separate compilation." +
		" <FILE> is relative to the episode package of the resulting source tree."
)

var skipReasons = []grouping.SkipReason{
	grouping.SkipNoComponent,
	grouping.SkipNotDeclaration,
	grouping.SkipLocal,
}

// ErrorHandler receives diagnostics for recoverable failures.
type ErrorHandler interface {
	Report(d *xsderrors.Diagnostic)
}

// ErrorHandlerFunc adapts a function to ErrorHandler.
type ErrorHandlerFunc func(d *xsderrors.Diagnostic)

// Report calls f(d).
func (f ErrorHandlerFunc) Report(d *xsderrors.Diagnostic) {
	f(d)
}

// Result summarizes one run.
type Result struct {
	// Bindings counts type bindings by kind (class, enum, interface).
	Bindings map[string]int
	// Skipped counts generated types left out of the episode by reason.
	Skipped map[string]int
	// EpisodePath is the slash-separated path of the registered episode file.
	EpisodePath string
	// Resources lists the paths of all resources registered by the run.
	Resources []string
	// Unmapped lists namespaces whose system id had no catalog marker.
	Unmapped []string
	Groups   int
}

// Plugin generates episode files from a host outline. It is not safe for
// concurrent use.
type Plugin struct {
	opts      resolvedOptions
	log       logrus.FieldLogger
	activated bool
}

// New returns a plugin configured by opts.
func New(opts Options) (*Plugin, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("episode options: %w", err)
	}
	return &Plugin{opts: resolved, log: resolved.logger}, nil
}

// OptionName returns the option that activates the plugin, without its leading dash.
func (p *Plugin) OptionName() string {
	return OptionName
}

// Usage returns the option help line.
func (p *Plugin) Usage() string {
	return usage
}

// Activated reports whether the activation option was parsed.
func (p *Plugin) Activated() bool {
	return p.activated
}

// EpisodeFile returns the current episode file name.
func (p *Plugin) EpisodeFile() string {
	return p.opts.episodeFile
}

// ParseArgument inspects args[i] and returns how many tokens it consumed:
// 1 for the activation option, 2 when it is followed by an episode file
// override, and 0 for tokens that belong to someone else.
func (p *Plugin) ParseArgument(args []string, i int) (int, error) {
	if i < 0 || i >= len(args) || args[i] != "-"+OptionName {
		return 0, nil
	}
	p.activated = true
	if i+1 >= len(args) || !strings.HasPrefix(args[i+1], EpisodeFileArg) {
		return 1, nil
	}
	name := strings.TrimPrefix(args[i+1], EpisodeFileArg)
	if err := validateFileName(name); err != nil {
		return 0, xsderrors.Wrap(xsderrors.ErrBadCommandLine, err, "", "invalid %s value", EpisodeFileArg)
	}
	p.opts.episodeFile = name
	return 2, nil
}

// Run writes the episode file for o and registers it with o's resource tree,
// followed by the package mapping and catalog when auxiliary files are
// enabled. A failure to write the episode is reported to h and returned;
// nothing is registered in that case. Component designator failures are
// returned without being reported.
func (p *Plugin) Run(o *outline.Outline, h ErrorHandler) (Result, error) {
	if o == nil {
		return Result{}, fmt.Errorf("run: nil outline")
	}
	if o.Resources == nil {
		o.Resources = resource.NewTree()
	}
	if h == nil {
		h = ErrorHandlerFunc(func(*xsderrors.Diagnostic) {})
	}

	adaptors := adaptor.FromOutline(o, adaptor.Config{Interfaces: p.opts.interfaces})
	grouped := grouping.Build(adaptors)

	res := Result{
		Groups:   grouped.Len(),
		Bindings: make(map[string]int),
		Skipped:  make(map[string]int),
	}
	for _, reason := range skipReasons {
		if n := grouped.Skipped(reason); n > 0 {
			res.Skipped[string(reason)] = n
		}
	}
	var qualifying []adaptor.Adaptor
	for _, g := range grouped.Groups() {
		for _, a := range g.Adaptors() {
			res.Bindings[a.Kind.String()]++
			qualifying = append(qualifying, a)
		}
		p.logGroup(g)
	}

	doc, err := bindings.Build(grouped, bindings.Config{
		Resolver:      scd.New(p.opts.policy),
		PrologComment: o.PrologComment,
	})
	if err != nil {
		return Result{}, fmt.Errorf("build episode: %w", err)
	}

	sink := p.opts.sink()
	if err := xmltree.Render(sink, doc, xmltree.RenderOptions{Indent: "  "}); err != nil {
		d := xsderrors.Wrap(xsderrors.ErrEpisodeWrite, err, p.opts.episodeFile, "failed to write to %s", p.opts.episodeFile)
		h.Report(d)
		return Result{}, d
	}

	episodePath, err := p.register(o.Resources, h, p.opts.episodePackage, p.opts.episodeFile, []byte(sink.String()))
	if err != nil {
		return Result{}, err
	}
	res.EpisodePath = episodePath
	res.Resources = append(res.Resources, episodePath)

	if p.opts.auxFiles {
		mappingPath, err := p.writePackageMapping(o, h)
		if err != nil {
			return res, err
		}
		res.Resources = append(res.Resources, mappingPath)

		cat := catalog.Build(qualifying, p.opts.catalogMarker)
		for _, ns := range cat.Unmapped {
			p.log.WithField(logfields.Namespace, ns).
				Warningf("Schema system id does not contain %q, no catalog entry written", p.opts.catalogMarker)
		}
		res.Unmapped = cat.Unmapped
		catalogPath, err := p.register(o.Resources, h, p.opts.catalogPackage, p.opts.catalogFile, cat.Bytes())
		if err != nil {
			return res, err
		}
		res.Resources = append(res.Resources, catalogPath)
	}

	p.log.WithFields(logrus.Fields{
		logfields.File:     episodePath,
		logfields.Groups:   res.Groups,
		logfields.Bindings: res.bindingCount(),
		logfields.Skipped:  len(adaptors) - res.bindingCount(),
	}).Info("Generated episode file")
	return res, nil
}

func (p *Plugin) writePackageMapping(o *outline.Outline, h ErrorHandler) (string, error) {
	data, err := pkgmap.Build(o.Packages)
	if err != nil {
		d := xsderrors.Wrap(xsderrors.ErrResourceWrite, err, p.opts.mappingFile, "failed to write to %s", p.opts.mappingFile)
		h.Report(d)
		return "", d
	}
	return p.register(o.Resources, h, p.opts.mappingPackage, p.opts.mappingFile, data)
}

func (p *Plugin) register(tree *resource.Tree, h ErrorHandler, pkg, name string, data []byte) (string, error) {
	target := tree.Package(pkg)
	if err := target.AddResourceFile(resource.File{Name: name, Data: data}); err != nil {
		d := xsderrors.Wrap(xsderrors.ErrResourceWrite, err, name, "failed to register %s", name)
		h.Report(d)
		return "", d
	}
	p.log.WithFields(logrus.Fields{
		logfields.Package: pkg,
		logfields.File:    name,
	}).Debug("Registered resource file")
	if target.Dir() == "" {
		return name, nil
	}
	return target.Dir() + "/" + name, nil
}

func (p *Plugin) logGroup(g *grouping.Group) {
	scopedLog := p.log.WithFields(logrus.Fields{
		logfields.Namespace: g.Namespace(),
		logfields.Bindings:  len(g.Adaptors()),
	})
	if _, ok := g.SinglePackage(); !ok && len(g.Packages()) > 1 {
		scopedLog.WithField(logfields.Packages, g.Packages()).
			Warning("Schema maps to several packages, no package customization written")
		return
	}
	scopedLog.Debug("Collected schema bindings")
}

func (r Result) bindingCount() int {
	n := 0
	for _, c := range r.Bindings {
		n += c
	}
	return n
}

// Generate runs a plugin configured by opts against o without an error handler.
func Generate(o *outline.Outline, opts Options) (Result, error) {
	p, err := New(opts)
	if err != nil {
		return Result{}, err
	}
	return p.Run(o, nil)
}
