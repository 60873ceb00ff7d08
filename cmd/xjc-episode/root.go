package main

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mklemm/jaxb2-episode-ext/internal/logging"
	"github.com/mklemm/jaxb2-episode-ext/internal/logging/logfields"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "cli")

func newRootCmd(fsys afero.Fs) *cobra.Command {
	vp := newViper()

	cmd := &cobra.Command{
		Use:   "xjc-episode",
		Short: "Generate JAXB episode files from a binding compiler model",
		Long: `xjc-episode writes the episode file, package mapping and XML catalog
for the types a binding compiler generated, so that dependent schemas can be
compiled separately against them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(vp, fsys); err != nil {
				return err
			}
			logging.SetupLogging(logging.LogOptions{
				logging.LevelOpt:  vp.GetString(keyLogLevel),
				logging.FormatOpt: vp.GetString(keyLogFormat),
			}, cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	flags := cmd.PersistentFlags()
	flags.String(keyConfig, "", "Configuration file (yaml, json or toml)")
	flags.String(keyLogLevel, "info", "Log level (trace, debug, info, warning, error)")
	flags.String(keyLogFormat, string(logging.LogFormatText), "Log format (text or json)")
	bindFlags(vp, flags, keyConfig, keyLogLevel, keyLogFormat)

	cmd.AddCommand(
		newCmdGenerate(vp, fsys),
		newCmdInspect(fsys),
		newCmdVersion(),
	)
	return cmd
}

// isFlagError reports whether err came from cobra's own argument validation.
func isFlagError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "requires ")
}
