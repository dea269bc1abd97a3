// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tex builds an in-memory tree of LaTeX document nodes and
// serializes it to source text. Trees are assembled through the builder
// methods on Container and rendered with Render; the package never touches
// the filesystem.
package tex

// Kind discriminates node variants so subtrees can be searched structurally
// without runtime type inspection.
type Kind int

const (
	KindRaw Kind = iota
	KindText
	KindCommand
	KindItem
	KindEnvironment
	KindCode
)

// Node is a single element of a document tree: either a leaf holding text
// or a container holding an ordered list of children. The node set is
// sealed; composite node types in other packages embed Environment instead
// of implementing Node from scratch.
type Node interface {
	Kind() Kind
	render(*renderer)
}

// parent is implemented by nodes that hold children.
type parent interface {
	Children() []Node
}

// RawText is an opaque passthrough leaf. Its text is emitted exactly as
// given: no indentation, no substitutions. Use it for preamble lines and
// pre-formatted content.
type RawText struct {
	Text string
}

func (*RawText) Kind() Kind { return KindRaw }

// Text is a prose leaf. The inline substitution rules (see Substitute) are
// applied when the tree is rendered, and the result is indented to the
// enclosing nesting level.
type Text struct {
	Text string
}

func (*Text) Kind() Kind { return KindText }

// Command is a single control sequence: \Name<slides>[opts]{arg}{arg}.
// Opts render comma-joined in one bracket pair; each Arg gets its own brace
// pair. A non-empty Comment is appended after a % marker.
type Command struct {
	Name    string
	Opts    []string
	Args    []string
	Slides  int
	Comment string
}

func (*Command) Kind() Kind { return KindCommand }

// OnSlides sets the overlay qualifier. Positive n shows the command from
// slide n onward; negative n shows it only on slide -n.
func (c *Command) OnSlides(n int) *Command {
	c.Slides = n
	return c
}

// WithComment attaches an end-of-line comment.
func (c *Command) WithComment(s string) *Command {
	c.Comment = s
	return c
}

// Item is a list entry: \item<slides> followed by its text, which is
// subject to the substitution rules.
type Item struct {
	Text   string
	Slides int
}

func (*Item) Kind() Kind { return KindItem }

// OnSlides sets the overlay qualifier, with the same sign convention as
// Command.OnSlides.
func (i *Item) OnSlides(n int) *Item {
	i.Slides = n
	return i
}

// CodeBlock is a verbatim source listing. It renders as a lstlisting
// environment; the source is emitted without indentation so the listing
// survives round-tripping through a LaTeX compiler.
type CodeBlock struct {
	Language string
	Source   string
}

func (*CodeBlock) Kind() Kind { return KindCode }

// Container accumulates child nodes. Insertion order is serialization
// order, and a child belongs to exactly one parent: builder methods create
// fresh nodes rather than sharing them between trees.
type Container struct {
	children []Node
}

// Children returns the child list in insertion order.
func (c *Container) Children() []Node { return c.children }

// Append adds a node at the end of the child list.
func (c *Container) Append(n Node) {
	c.children = append(c.children, n)
}

// Prepend inserts a node ahead of all existing children. This is how a
// late-built title frame ends up rendering before frames that were added
// earlier.
func (c *Container) Prepend(n Node) {
	c.children = append([]Node{n}, c.children...)
}

// Has reports whether the subtree below c contains at least one node of
// the given kind, searching nested containers recursively.
func (c *Container) Has(k Kind) bool {
	return hasKind(c.children, k)
}

func hasKind(nodes []Node, k Kind) bool {
	for _, n := range nodes {
		if n.Kind() == k {
			return true
		}
		if p, ok := n.(parent); ok && hasKind(p.Children(), k) {
			return true
		}
	}
	return false
}

// Text appends a prose leaf and returns it.
func (c *Container) Text(s string) *Text {
	t := &Text{Text: s}
	c.Append(t)
	return t
}

// Raw appends a passthrough leaf and returns it.
func (c *Container) Raw(s string) *RawText {
	r := &RawText{Text: s}
	c.Append(r)
	return r
}

// Command appends a control sequence with the given required arguments and
// returns it for chained configuration.
func (c *Container) Command(name string, args ...string) *Command {
	cmd := &Command{Name: name, Args: args}
	c.Append(cmd)
	return cmd
}

// Code appends a verbatim source listing and returns it.
func (c *Container) Code(language, source string) *CodeBlock {
	cb := &CodeBlock{Language: language, Source: source}
	c.Append(cb)
	return cb
}

// Environment wraps its children in a \begin{Name}...\end{Name} pair and
// renders them one indent level deeper.
type Environment struct {
	Container
	Name string
	Opts []string
	Args []string
}

func (*Environment) Kind() Kind { return KindEnvironment }

// Env appends a named environment, passes it to build for population, and
// returns it.
func (c *Container) Env(name string, build func(*Environment)) *Environment {
	e := &Environment{Name: name}
	c.Append(e)
	if build != nil {
		build(e)
	}
	return e
}

// List is an itemize or enumerate environment.
type List struct {
	Environment
}

// Item appends a list entry and returns it.
func (l *List) Item(text string) *Item {
	i := &Item{Text: text}
	l.Append(i)
	return i
}

// Itemize appends a bulleted list, populated by build.
func (c *Container) Itemize(build func(*List)) *List {
	return c.list("itemize", build)
}

// Enumerate appends a numbered list, populated by build.
func (c *Container) Enumerate(build func(*List)) *List {
	return c.list("enumerate", build)
}

func (c *Container) list(name string, build func(*List)) *List {
	l := &List{Environment: Environment{Name: name}}
	c.Append(l)
	if build != nil {
		build(l)
	}
	return l
}
