// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidesmith/internal/deck"
)

var validateCmd = &cobra.Command{
	Use:   "validate <deck.yaml>",
	Short: "Check a deck description without generating output",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deck.Load(args[0])
		if err != nil {
			return err
		}
		problems := deck.Validate(d)
		if len(problems) == 0 {
			fmt.Fprintln(os.Stderr, "Deck is well formed.")
			return nil
		}
		for _, p := range problems {
			fmt.Println(p)
		}
		return fmt.Errorf("deck has %d problem(s)", len(problems))
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
