// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidesmith/internal/deck"
)

var buildCmd = &cobra.Command{
	Use:   "build <deck.yaml>",
	Short: "Render a deck description to LaTeX",
	Long: `Build loads a deck file, validates it, assembles the beamer document
tree, and writes the serialized LaTeX source. The output lands in the
configured output directory under the deck's base name unless --output
names a file ("-" writes to stdout).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deck.Load(args[0])
		if err != nil {
			return err
		}
		if problems := deck.Validate(d); len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintln(os.Stderr, "deck:", p)
			}
			return fmt.Errorf("deck has %d problem(s)", len(problems))
		}

		cfg := generatorConfig()
		source := deck.Build(d, cfg).Render()

		out, _ := cmd.Flags().GetString("output")
		if out == "-" {
			fmt.Print(source)
			return nil
		}
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			out = filepath.Join(cfg.OutputDir, base+".tex")
		}
		if err := os.WriteFile(out, []byte(source), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintln(os.Stderr, "Wrote", out)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", `output file ("-" for stdout; default <output-dir>/<deck>.tex)`)

	rootCmd.AddCommand(buildCmd)
}
