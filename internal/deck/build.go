// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"github.com/pdiddy/slidesmith/pkg/beamer"
	"github.com/pdiddy/slidesmith/pkg/tex"
	"github.com/pdiddy/slidesmith/pkg/types"
)

// Build maps a deck description onto the presentation builder. The config
// supplies the theme when the deck does not name one; everything else comes
// from the deck.
func Build(d *types.Deck, cfg types.GeneratorConfig) *beamer.Presentation {
	p := beamer.New().WithMeta(beamer.Meta{
		Title:     d.Title,
		Subtitle:  d.Subtitle,
		Author:    d.Author,
		Institute: d.Institute,
		Date:      d.Date,
	})

	theme := d.Theme
	if theme == "" {
		theme = cfg.Theme
	}
	if theme != "" {
		p.WithTheme(theme)
	}
	if d.TOC {
		p.WithTOC()
	}
	for _, pkg := range d.Packages {
		p.UsePackage(pkg.Name, pkg.Options...)
	}
	for _, line := range d.Header {
		p.Header(line)
	}

	for _, fs := range d.Frames {
		p.Frame(fs.Title, func(f *beamer.Frame) {
			addBlocks(&f.Container, fs.Blocks)
		})
	}
	return p
}

// addBlocks appends block content to c, recursing into nested named blocks.
func addBlocks(c *tex.Container, blocks []types.BlockSpec) {
	for _, b := range blocks {
		switch {
		case b.Text != "":
			c.Text(b.Text)
		case b.Raw != "":
			c.Raw(b.Raw)
		case len(b.Items) > 0:
			c.Itemize(itemBuilder(b.Items))
		case len(b.Numbered) > 0:
			c.Enumerate(itemBuilder(b.Numbered))
		case b.Code != nil:
			c.Code(b.Code.Language, b.Code.Source)
		case b.Block != nil:
			e := c.Env("block", nil)
			e.Args = []string{b.Block.Title}
			addBlocks(&e.Container, b.Block.Blocks)
		}
	}
}

// itemBuilder returns a list populator for the given item specs.
func itemBuilder(items []types.ItemSpec) func(*tex.List) {
	return func(l *tex.List) {
		for _, it := range items {
			l.Item(it.Text).OnSlides(it.Slide)
		}
	}
}
