// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slidesmith CLI: the host glue
// around the pkg/tex and pkg/beamer builder library. Deck descriptions go
// in, beamer LaTeX source comes out.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidesmith/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the slidesmith CLI.
var rootCmd = &cobra.Command{
	Use:   "slidesmith",
	Short: "Generate beamer presentations from deck descriptions",
	Long: `slidesmith turns YAML deck descriptions into LaTeX/beamer source. A deck
file lists metadata, preamble extras, and frames; slidesmith builds the
document tree and serializes it, injecting support packages (such as
listings) only when the deck content needs them.

Use build to produce a .tex file, validate to check a deck without
generating anything, and inspect to dump the parsed description.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidesmith.yaml or ~/.config/slidesmith/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidesmith")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidesmith"))
		}
	}

	viper.SetEnvPrefix("SLIDESMITH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// generatorConfig merges the built-in defaults with whatever viper found.
func generatorConfig() types.GeneratorConfig {
	cfg := types.Defaults()
	if v := viper.GetString("theme"); v != "" {
		cfg.Theme = v
	}
	if v := viper.GetString("output_dir"); v != "" {
		cfg.OutputDir = v
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
