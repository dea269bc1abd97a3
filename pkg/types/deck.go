// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Deck describes a presentation in a deck YAML file. It is the on-disk
// counterpart of beamer.Presentation: metadata, preamble extras, and an
// ordered list of frames.
type Deck struct {
	// Title is the presentation title. When empty, no title frame is
	// generated.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Subtitle is an optional second title line.
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	// Author is the speaker's display name.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Institute is the speaker's affiliation.
	Institute string `json:"institute,omitempty" yaml:"institute,omitempty"`

	// Date is free-form; beamer accepts any text here.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Theme is the beamer theme name. Falls back to the generator config
	// default when empty.
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`

	// TOC requests a table-of-contents frame after the title frame.
	TOC bool `json:"toc,omitempty" yaml:"toc,omitempty"`

	// Header lists raw preamble lines emitted after the package block.
	Header []string `json:"header,omitempty" yaml:"header,omitempty"`

	// Packages lists extra \usepackage declarations.
	Packages []PackageSpec `json:"packages,omitempty" yaml:"packages,omitempty"`

	// Frames lists the slides in presentation order.
	Frames []FrameSpec `json:"frames" yaml:"frames"`
}

// PackageSpec is one \usepackage declaration.
type PackageSpec struct {
	// Name is the LaTeX package name.
	Name string `json:"name" yaml:"name"`

	// Options are the bracketed package options.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// FrameSpec describes one slide.
type FrameSpec struct {
	// Title becomes the \frametitle.
	Title string `json:"title" yaml:"title"`

	// Blocks lists the frame's content in order.
	Blocks []BlockSpec `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}

// BlockSpec is one content element of a frame. Exactly one field must be
// set; Validate rejects anything else.
type BlockSpec struct {
	// Text is prose subject to the inline substitution rules.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Raw is passthrough LaTeX emitted unchanged.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`

	// Items is a bulleted list.
	Items []ItemSpec `json:"items,omitempty" yaml:"items,omitempty"`

	// Numbered is a numbered list.
	Numbered []ItemSpec `json:"numbered,omitempty" yaml:"numbered,omitempty"`

	// Code is a verbatim source listing.
	Code *CodeSpec `json:"code,omitempty" yaml:"code,omitempty"`

	// Block is a titled beamer block with nested content.
	Block *NamedBlockSpec `json:"block,omitempty" yaml:"block,omitempty"`
}

// ItemSpec is one list entry.
type ItemSpec struct {
	// Text is the entry's prose.
	Text string `json:"text" yaml:"text"`

	// Slide is the overlay qualifier: positive shows the item from that
	// slide onward, negative shows it only on that one slide, zero always.
	Slide int `json:"slide,omitempty" yaml:"slide,omitempty"`
}

// CodeSpec is a verbatim source listing.
type CodeSpec struct {
	// Language selects lstlisting syntax highlighting (optional).
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// Source is the listing body, emitted verbatim.
	Source string `json:"source" yaml:"source"`
}

// NamedBlockSpec is a titled beamer block environment.
type NamedBlockSpec struct {
	// Title is the block heading.
	Title string `json:"title" yaml:"title"`

	// Blocks lists the nested content.
	Blocks []BlockSpec `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}
