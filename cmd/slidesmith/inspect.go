// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidesmith/internal/deck"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <deck.yaml>",
	Short: "Dump the parsed deck description",
	Long: `Inspect loads a deck file and prints the normalized description as
YAML (default) or JSON. Useful for checking what slidesmith actually parsed
out of a deck before building it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deck.Load(args[0])
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			data, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output JSON instead of YAML")

	rootCmd.AddCommand(inspectCmd)
}
