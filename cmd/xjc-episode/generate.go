package main

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	episode "github.com/mklemm/jaxb2-episode-ext"
	xsderrors "github.com/mklemm/jaxb2-episode-ext/errors"
	"github.com/mklemm/jaxb2-episode-ext/internal/logging/logfields"
	"github.com/mklemm/jaxb2-episode-ext/internal/manifest"
	"github.com/mklemm/jaxb2-episode-ext/internal/metrics"
)

func newCmdGenerate(vp *viper.Viper, fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate --model <model.yaml> --out <dir> [-- -Xepisode-ext [-episode-file=<FILE>]]",
		Short: "Write episode resources for a compiler model",
		Long: `Reads a YAML dump of the binding compiler model, runs the episode plugin
on it and writes the registered resources below the output directory.

Plugin options follow "--" in the form the binding compiler accepts them.
Without -Xepisode-ext nothing is generated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(vp, fsys, args)
		},
	}

	flags := cmd.Flags()
	flags.String(keyModel, "", "Compiler model dump (yaml)")
	flags.String(keyOut, ".", "Output directory for generated resources")
	flags.String(keyMetricsFile, "", "Write run metrics in prometheus text format to this file")
	flags.String(flagName(keyEpisodeFile), episode.DefaultEpisodeFile, "Episode file name")
	flags.String(flagName(keyEpisodePackage), episode.DefaultEpisodePackage, "Package the episode file is written to")
	flags.String(flagName(keyMappingFile), episode.DefaultMappingFile, "Package mapping file name")
	flags.String(flagName(keyMappingPackage), episode.DefaultMappingPackage, "Package the package mapping is written to")
	flags.String(flagName(keyCatalogFile), episode.DefaultCatalogFile, "XML catalog file name")
	flags.String(flagName(keyCatalogPackage), episode.DefaultCatalogPackage, "Package the XML catalog is written to")
	flags.String(flagName(keyCatalogMarker), episode.DefaultCatalogMarker, "System id segment preceding classpath-relative schema paths")
	flags.String(flagName(keySCDPolicy), string(episode.SCDPolicyXML), "Component designator policy (xml or baseline)")
	flags.Bool(keyAuxFiles, true, "Write the package mapping and XML catalog")
	flags.Bool(keyInterfaces, false, "Bind interfaces generated for attribute and model groups")
	bindFlags(vp, flags,
		keyModel, keyOut, keyMetricsFile,
		keyEpisodeFile, keyEpisodePackage,
		keyMappingFile, keyMappingPackage,
		keyCatalogFile, keyCatalogPackage, keyCatalogMarker,
		keySCDPolicy, keyAuxFiles, keyInterfaces,
	)
	return cmd
}

func runGenerate(vp *viper.Viper, fsys afero.Fs, pluginArgs []string) error {
	modelPath := vp.GetString(keyModel)
	if modelPath == "" {
		return usagef("--%s is required", keyModel)
	}

	p, err := episode.New(pluginOptions(vp))
	if err != nil {
		return usageError{err: err}
	}
	for i := 0; i < len(pluginArgs); {
		n, err := p.ParseArgument(pluginArgs, i)
		if err != nil {
			return usageError{err: err}
		}
		if n == 0 {
			return usagef("unrecognized plugin option %q", pluginArgs[i])
		}
		i += n
	}
	if !p.Activated() {
		log.Warningf("-%s not given, nothing to generate", p.OptionName())
		return nil
	}

	data, err := afero.ReadFile(fsys, modelPath)
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}
	o, err := manifest.Load(bytes.NewReader(data), modelPath)
	if err != nil {
		for _, d := range xsderrors.AsDiagnostics(err) {
			log.WithField(logfields.File, d.File).Error(d.Error())
		}
		return fmt.Errorf("load model: %w", err)
	}

	res, err := p.Run(o, episode.ErrorHandlerFunc(func(d *xsderrors.Diagnostic) {
		log.WithFields(logrus.Fields{
			logfields.File: d.File,
			"code":         d.Code,
		}).Error(d.Message)
	}))
	if err != nil {
		return fmt.Errorf("generate episode: %w", err)
	}

	out := vp.GetString(keyOut)
	written, err := o.Resources.WriteTo(fsys, out)
	if err != nil {
		return fmt.Errorf("write resources: %w", err)
	}
	for _, path := range written {
		log.WithField(logfields.File, path).Info("Wrote resource")
	}

	if path := vp.GetString(keyMetricsFile); path != "" {
		m := metrics.New()
		m.Observe(res.Groups, res.Bindings, res.Skipped, len(res.Resources))
		if err := m.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
