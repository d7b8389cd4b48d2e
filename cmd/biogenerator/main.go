// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the biogenerator CLI. It loads a
// scenario world, sends interaction and dump triggers to a produce
// extractor and reports the material credited to its ledger.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/biogenerator/internal/logging"
	"github.com/pdiddy/biogenerator/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	appConfig types.AppConfig
	logger    = zap.NewNop().Sugar()
)

// rootCmd is the base command for the biogenerator CLI.
var rootCmd = &cobra.Command{
	Use:   "biogenerator",
	Short: "Turn produce into stored material",
	Long: `biogenerator drives produce material extractors in a scenario world.

Use interact to put a single item (or a bag of produce) into an extractor,
dump to empty a container into it, and ledger to inspect the material
credited to each extractor's storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(&appConfig); err != nil {
			return errors.Wrap(err, "decoding configuration")
		}
		l, err := logging.New(appConfig.Log)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./biogenerator.yaml or ~/.config/biogenerator/config.yaml)")
	pf.String("scenario", "scenario.yaml", "scenario file describing the world")
	pf.String("ledger-dir", "ledger", "directory holding the material ledger database")
	pf.Int("max-history", 50, "default number of ledger credits shown by history")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Bool("log-json", false, "emit JSON logs")
	pf.String("lang", "en", "language for player messages (en, de)")
	pf.Bool("dry-run", false, "do not write scenario changes back to disk")

	bindFlag("scenario.path", "scenario")
	bindFlag("scenario.dry_run", "dry-run")
	bindFlag("ledger.dir", "ledger-dir")
	bindFlag("ledger.max_history", "max-history")
	bindFlag("log.level", "log-level")
	bindFlag("log.json", "log-json")
	bindFlag("locale.language", "lang")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("biogenerator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "biogenerator"))
		}
	}

	viper.SetEnvPrefix("BIOGENERATOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		if hint := errors.FlattenHints(err); hint != "" {
			pterm.Info.Println(hint)
		}
		os.Exit(1)
	}
}
