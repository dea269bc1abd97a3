// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package beamer assembles complete beamer presentations on top of the
// document tree in pkg/tex. A Presentation collects preamble settings and a
// body of frames; Render produces the final LaTeX source in one pass:
// document class, theme, packages, custom header, metadata, then the
// document environment.
package beamer

import (
	"fmt"

	"github.com/pdiddy/slidesmith/pkg/tex"
)

// Meta holds the title-page metadata. Empty fields are omitted from the
// preamble; an empty Title suppresses the title frame entirely.
type Meta struct {
	Title     string
	Subtitle  string
	Author    string
	Institute string
	Date      string
}

// pkgDecl is one \usepackage declaration.
type pkgDecl struct {
	name string
	opts []string
}

// Presentation is the document assembler. Frames are appended through
// Frame; preamble content accumulates through the With* and UsePackage
// methods. The zero value is usable.
type Presentation struct {
	Meta      Meta
	theme     string
	classOpts []string
	packages  []pkgDecl
	header    []string
	toc       bool
	body      tex.Container
}

// New returns an empty presentation with the given document class options.
func New(classOpts ...string) *Presentation {
	return &Presentation{classOpts: classOpts}
}

// WithMeta sets the title-page metadata.
func (p *Presentation) WithMeta(m Meta) *Presentation {
	p.Meta = m
	return p
}

// WithTheme sets the beamer theme emitted as \usetheme.
func (p *Presentation) WithTheme(name string) *Presentation {
	p.theme = name
	return p
}

// WithTOC requests a table-of-contents frame right after the title frame.
func (p *Presentation) WithTOC() *Presentation {
	p.toc = true
	return p
}

// UsePackage declares a \usepackage line in the preamble.
func (p *Presentation) UsePackage(name string, opts ...string) *Presentation {
	p.packages = append(p.packages, pkgDecl{name: name, opts: opts})
	return p
}

// Header appends one raw line to the custom header block, emitted after the
// package declarations and before the metadata commands.
func (p *Presentation) Header(line string) *Presentation {
	p.header = append(p.header, line)
	return p
}

// Frame is a single slide: a frame environment whose first rendered child
// is its \frametitle.
type Frame struct {
	tex.Environment
}

// Block appends a titled beamer block environment, populated by build.
func (f *Frame) Block(title string, build func(*tex.Environment)) *tex.Environment {
	b := &tex.Environment{Name: "block", Args: []string{title}}
	f.Append(b)
	if build != nil {
		build(b)
	}
	return b
}

// Frame appends a slide with the given title, passes it to build for
// population, and returns it.
func (p *Presentation) Frame(title string, build func(*Frame)) *Frame {
	f := &Frame{Environment: tex.Environment{Name: "frame"}}
	if title != "" {
		f.Command("frametitle", title)
	}
	p.body.Append(f)
	if build != nil {
		build(f)
	}
	return f
}

// Body exposes the frame container for structural queries and direct
// appends of pre-built nodes.
func (p *Presentation) Body() *tex.Container {
	return &p.body
}

// Render assembles and serializes the presentation. The body is copied
// into a fresh document node each call, so rendering twice yields the same
// text and never duplicates the generated title or contents frames.
func (p *Presentation) Render() string {
	var root tex.Container

	cls := root.Command("documentclass", "beamer")
	cls.Opts = p.classOpts
	if p.theme != "" {
		root.Command("usetheme", p.theme)
	}
	for _, decl := range p.packages {
		pkg := root.Command("usepackage", decl.name)
		pkg.Opts = decl.opts
	}
	// Support packages are injected only when something in the body needs
	// them, decided by a structural search over the whole tree.
	if p.body.Has(tex.KindCode) {
		root.Command("usepackage", "listings")
	}
	for _, line := range p.header {
		root.Raw(line)
	}
	p.metaCommands(&root)

	doc := &tex.Environment{Name: "document"}
	for _, n := range p.body.Children() {
		doc.Append(n)
	}
	if p.toc {
		doc.Prepend(p.contentsFrame())
	}
	if p.Meta.Title != "" {
		doc.Prepend(p.titleFrame())
	}
	root.Append(doc)

	return tex.Render(root.Children()...)
}

// metaCommands emits the preamble commands for whichever metadata fields
// are set.
func (p *Presentation) metaCommands(root *tex.Container) {
	fields := []struct {
		name  string
		value string
	}{
		{"title", p.Meta.Title},
		{"subtitle", p.Meta.Subtitle},
		{"author", p.Meta.Author},
		{"institute", p.Meta.Institute},
		{"date", p.Meta.Date},
	}
	for _, f := range fields {
		if f.value != "" {
			root.Command(f.name, f.value)
		}
	}
}

func (p *Presentation) titleFrame() *tex.Environment {
	f := &tex.Environment{Name: "frame"}
	f.Command("titlepage")
	return f
}

func (p *Presentation) contentsFrame() *tex.Environment {
	f := &tex.Environment{Name: "frame"}
	f.Command("tableofcontents")
	return f
}

// String implements fmt.Stringer for convenience in examples and logs.
func (p *Presentation) String() string {
	return p.Render()
}

var _ fmt.Stringer = (*Presentation)(nil)
