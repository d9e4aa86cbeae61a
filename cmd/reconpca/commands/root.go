// SPDX-License-Identifier: MIT

// Package commands wires the reconpca CLI: cobra commands, flags bound into
// viper (config file, RECONPCA_* environment) and a zerolog console logger.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. RECONPCA_CONTAMINATION.
const envPrefix = "RECONPCA"

// Keys shared by flags, config file and environment.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"
)

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "reconpca",
		Short: "Reconstruction-error outlier detection",
		Long: `reconpca scores samples by how poorly low-rank projections reconstruct
them and labels the worst-reconstructed fraction as anomalies.

Values resolve in order: flag, RECONPCA_* environment, config file, default.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
	}

	root.PersistentFlags().String(keyConfig, "", "YAML config file")
	root.PersistentFlags().String(keyLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error)")

	root.AddCommand(newDetectCmd(v))
	root.AddCommand(newCompareCmd(v))
	root.AddCommand(newVersionCmd())

	return root
}

// initConfig binds every flag of cmd into v, then layers the environment and
// the optional config file underneath them.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return nil
}

// newLogger returns a console logger on cmd's stderr at the configured level,
// tagging every event with runID. Writes are serialized so concurrent
// commands may share it.
func newLogger(v *viper.Viper, cmd *cobra.Command, runID string) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("--%s: %w", keyLogLevel, err)
	}

	out := zerolog.SyncWriter(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen})

	return zerolog.New(out).Level(level).With().Timestamp().Str("run_id", runID).Logger(), nil
}
