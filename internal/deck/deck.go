// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck loads and validates deck description files and turns them
// into presentations through the builder API in pkg/beamer.
package deck

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidesmith/pkg/types"
)

// Load reads a deck YAML file.
func Load(path string) (*types.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	var d types.Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing deck: %w", err)
	}
	return &d, nil
}

// Validate checks a deck description and returns a list of human-readable
// problems. An empty slice means the deck is well formed. A missing deck
// title is deliberately not a problem: the generated document simply has no
// title frame.
func Validate(d *types.Deck) []string {
	var problems []string
	if len(d.Frames) == 0 {
		problems = append(problems, "deck has no frames")
	}
	for i, f := range d.Frames {
		where := fmt.Sprintf("frame %d", i+1)
		if f.Title == "" {
			problems = append(problems, where+": missing title")
		} else {
			where = fmt.Sprintf("frame %d (%s)", i+1, f.Title)
		}
		problems = append(problems, validateBlocks(where, f.Blocks)...)
	}
	for i, p := range d.Packages {
		if p.Name == "" {
			problems = append(problems, fmt.Sprintf("package %d: missing name", i+1))
		}
	}
	return problems
}

// validateBlocks checks each block sets exactly one content variant, and
// recurses into nested beamer blocks.
func validateBlocks(where string, blocks []types.BlockSpec) []string {
	var problems []string
	for j, b := range blocks {
		loc := fmt.Sprintf("%s, block %d", where, j+1)
		switch n := variantCount(b); {
		case n == 0:
			problems = append(problems, loc+": empty block")
		case n > 1:
			problems = append(problems, loc+": more than one content variant set")
		}
		for _, items := range [][]types.ItemSpec{b.Items, b.Numbered} {
			for k, it := range items {
				if it.Text == "" {
					problems = append(problems, fmt.Sprintf("%s, item %d: empty text", loc, k+1))
				}
			}
		}
		if b.Code != nil && b.Code.Source == "" {
			problems = append(problems, loc+": code block without source")
		}
		if b.Block != nil {
			if b.Block.Title == "" {
				problems = append(problems, loc+": named block without title")
			}
			problems = append(problems, validateBlocks(loc, b.Block.Blocks)...)
		}
	}
	return problems
}

// variantCount counts how many content variants a block sets.
func variantCount(b types.BlockSpec) int {
	n := 0
	if b.Text != "" {
		n++
	}
	if b.Raw != "" {
		n++
	}
	if len(b.Items) > 0 {
		n++
	}
	if len(b.Numbered) > 0 {
		n++
	}
	if b.Code != nil {
		n++
	}
	if b.Block != nil {
		n++
	}
	return n
}
