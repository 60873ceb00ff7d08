package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	episode "github.com/mklemm/jaxb2-episode-ext"
)

// EnvPrefix is prepended to the environment variable of every key.
const EnvPrefix = "XJC_EPISODE"

// Configuration keys. Flags carry the same names with dots replaced by dashes.
const (
	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"

	keyModel       = "model"
	keyOut         = "out"
	keyMetricsFile = "metrics-file"

	keyEpisodeFile    = "episode.file"
	keyEpisodePackage = "episode.package"
	keyMappingFile    = "mapping.file"
	keyMappingPackage = "mapping.package"
	keyCatalogFile    = "catalog.file"
	keyCatalogPackage = "catalog.package"
	keyCatalogMarker  = "catalog.marker"
	keySCDPolicy      = "scd.policy"
	keyAuxFiles       = "aux-files"
	keyInterfaces     = "interfaces"
)

func newViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	vp.AutomaticEnv()
	return vp
}

func flagName(key string) string {
	return strings.ReplaceAll(key, ".", "-")
}

// bindFlags binds each key to the flag of the same name.
func bindFlags(vp *viper.Viper, flags *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		if err := vp.BindPFlag(key, flags.Lookup(flagName(key))); err != nil {
			// only reachable when a flag was not registered
			panic(fmt.Sprintf("bind flag %s: %v", key, err))
		}
	}
}

func readConfig(vp *viper.Viper, fsys afero.Fs) error {
	path := vp.GetString(keyConfig)
	if path == "" {
		return nil
	}
	vp.SetFs(fsys)
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	log.WithField("file", vp.ConfigFileUsed()).Debug("Loaded configuration")
	return nil
}

// pluginOptions maps configuration onto plugin options. Unset keys keep the
// plugin defaults.
func pluginOptions(vp *viper.Viper) episode.Options {
	opts := episode.NewOptions().
		WithSCDPolicy(episode.SCDPolicy(vp.GetString(keySCDPolicy))).
		WithAuxiliaryFiles(vp.GetBool(keyAuxFiles)).
		WithInterfaces(vp.GetBool(keyInterfaces))

	strs := []struct {
		key  string
		with func(episode.Options, string) episode.Options
	}{
		{keyEpisodeFile, episode.Options.WithEpisodeFile},
		{keyEpisodePackage, episode.Options.WithEpisodePackage},
		{keyMappingFile, episode.Options.WithMappingFile},
		{keyMappingPackage, episode.Options.WithMappingPackage},
		{keyCatalogFile, episode.Options.WithCatalogFile},
		{keyCatalogPackage, episode.Options.WithCatalogPackage},
		{keyCatalogMarker, episode.Options.WithCatalogMarker},
	}
	for _, s := range strs {
		if vp.IsSet(s.key) {
			opts = s.with(opts, vp.GetString(s.key))
		}
	}
	return opts
}
