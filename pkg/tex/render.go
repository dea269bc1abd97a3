// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tex

import (
	"fmt"
	"regexp"
	"strings"
)

// indentStep is the indentation added per nesting level.
const indentStep = "    "

// italicPattern matches text between two slashes with no slash inside.
var italicPattern = regexp.MustCompile(`/([^/]+)/`)

// monoPattern matches text between two pipes with no pipe inside.
var monoPattern = regexp.MustCompile(`\|([^|]+)\|`)

// Substitute applies the inline markup rules to prose text, in fixed order:
// a literal "..." becomes \ldots, /text/ becomes \textit{text}, and |text|
// becomes \texttt{text}. Matches are leftmost and non-overlapping; an
// unmatched delimiter simply fails to match and passes through unchanged.
// The produced markup contains no delimiter characters, so applying
// Substitute to its own output changes nothing.
func Substitute(s string) string {
	s = strings.ReplaceAll(s, "...", `\ldots`)
	s = italicPattern.ReplaceAllString(s, `\textit{$1}`)
	s = monoPattern.ReplaceAllString(s, `\texttt{$1}`)
	return s
}

// FormatSlides renders an overlay qualifier. Positive n selects slide n and
// all later slides ("<n->"); negative n selects exactly slide -n ("<n>");
// zero yields no qualifier at all.
func FormatSlides(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("<%d->", n)
	case n < 0:
		return fmt.Sprintf("<%d>", -n)
	default:
		return ""
	}
}

// Render serializes nodes depth first and returns the LaTeX source. The
// tree is not modified, so rendering the same tree again reproduces the
// same text.
func Render(nodes ...Node) string {
	var r renderer
	for _, n := range nodes {
		n.render(&r)
	}
	return r.sb.String()
}

// renderer carries the output buffer and current nesting level through the
// traversal.
type renderer struct {
	sb     strings.Builder
	indent int
}

// line writes one indented line.
func (r *renderer) line(s string) {
	r.sb.WriteString(strings.Repeat(indentStep, r.indent))
	r.sb.WriteString(s)
	r.sb.WriteString("\n")
}

func (t *RawText) render(r *renderer) {
	r.sb.WriteString(t.Text)
	r.sb.WriteString("\n")
}

func (t *Text) render(r *renderer) {
	r.line(Substitute(t.Text))
}

func (i *Item) render(r *renderer) {
	r.line(`\item` + FormatSlides(i.Slides) + " " + Substitute(i.Text))
}

func (c *Command) render(r *renderer) {
	var b strings.Builder
	b.WriteString(`\`)
	b.WriteString(c.Name)
	b.WriteString(FormatSlides(c.Slides))
	if len(c.Opts) > 0 {
		b.WriteString("[")
		b.WriteString(strings.Join(c.Opts, ","))
		b.WriteString("]")
	}
	for _, a := range c.Args {
		b.WriteString("{")
		b.WriteString(a)
		b.WriteString("}")
	}
	if c.Comment != "" {
		b.WriteString(" % ")
		b.WriteString(c.Comment)
	}
	r.line(b.String())
}

func (e *Environment) render(r *renderer) {
	var b strings.Builder
	b.WriteString(`\begin{`)
	b.WriteString(e.Name)
	b.WriteString("}")
	if len(e.Opts) > 0 {
		b.WriteString("[")
		b.WriteString(strings.Join(e.Opts, ","))
		b.WriteString("]")
	}
	for _, a := range e.Args {
		b.WriteString("{")
		b.WriteString(a)
		b.WriteString("}")
	}
	r.line(b.String())

	r.indent++
	for _, child := range e.children {
		child.render(r)
	}
	r.indent--

	r.line(`\end{` + e.Name + "}")
}

// render emits a lstlisting environment. The source lines stay unindented
// so the listing content is reproduced verbatim.
func (c *CodeBlock) render(r *renderer) {
	open := `\begin{lstlisting}`
	if c.Language != "" {
		open += "[language=" + c.Language + "]"
	}
	r.line(open)
	r.sb.WriteString(c.Source)
	if !strings.HasSuffix(c.Source, "\n") {
		r.sb.WriteString("\n")
	}
	r.line(`\end{lstlisting}`)
}
