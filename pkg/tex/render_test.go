// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tex

import (
	"strings"
	"testing"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "all three rules",
			in:   "/foo/ and |bar| and ...",
			want: `\textit{foo} and \texttt{bar} and \ldots`,
		},
		{
			name: "ellipsis before delimiters",
			in:   "wait.../go/",
			want: `wait\ldots\textit{go}`,
		},
		{
			name: "unmatched slash passes through",
			in:   "either/or",
			want: "either/or",
		},
		{
			name: "unmatched pipe passes through",
			in:   "a | b",
			want: "a | b",
		},
		{
			name: "three slashes match leftmost pair",
			in:   "/a/b/",
			want: `\textit{a}b/`,
		},
		{
			name: "empty delimiters do not match",
			in:   "// and ||",
			want: "// and ||",
		},
		{
			name: "plain text untouched",
			in:   "nothing special here",
			want: "nothing special here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(tt.in)
			if got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubstituteIdempotent(t *testing.T) {
	inputs := []string{
		"/foo/ and |bar| and ...",
		"text with... trailing /emphasis/",
		"plain",
	}
	for _, in := range inputs {
		once := Substitute(in)
		twice := Substitute(once)
		if once != twice {
			t.Errorf("Substitute not idempotent on %q: %q != %q", in, once, twice)
		}
	}
}

func TestFormatSlides(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{3, "<3->"},
		{-3, "<3>"},
		{1, "<1->"},
		{-1, "<1>"},
		{0, ""},
	}
	for _, tt := range tests {
		if got := FormatSlides(tt.n); got != tt.want {
			t.Errorf("FormatSlides(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	cmd := &Command{
		Name: "usepackage",
		Opts: []string{"russian", "english"},
		Args: []string{"babel"},
	}
	got := Render(cmd)
	want := "\\usepackage[russian,english]{babel}\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderCommandWithSlidesAndComment(t *testing.T) {
	cmd := (&Command{Name: "only", Args: []string{"later"}}).OnSlides(2).WithComment("reveal")
	got := Render(cmd)
	want := "\\only<2->{later} % reveal\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderRawTextUnchanged(t *testing.T) {
	raw := &RawText{Text: "  /not italics/ |not mono| ..."}
	got := Render(raw)
	want := "  /not italics/ |not mono| ...\n"
	if got != want {
		t.Errorf("raw text must pass through untouched: got %q, want %q", got, want)
	}
}

func TestRenderNestedEnvironments(t *testing.T) {
	var c Container
	c.Env("frame", func(f *Environment) {
		f.Command("frametitle", "Demo")
		f.Itemize(func(l *List) {
			l.Item("plain point")
			l.Item("later point").OnSlides(2)
			l.Item("flash point").OnSlides(-3)
		})
	})

	got := Render(c.Children()...)
	want := strings.Join([]string{
		`\begin{frame}`,
		`    \frametitle{Demo}`,
		`    \begin{itemize}`,
		`        \item plain point`,
		`        \item<2-> later point`,
		`        \item<3> flash point`,
		`    \end{itemize}`,
		`\end{frame}`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEnvironmentOptsAndArgs(t *testing.T) {
	e := &Environment{Name: "columns", Opts: []string{"t"}, Args: []string{"0.5"}}
	got := Render(e)
	want := "\\begin{columns}[t]{0.5}\n\\end{columns}\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderCodeBlockVerbatim(t *testing.T) {
	var c Container
	c.Env("frame", func(f *Environment) {
		f.Code("go", "func main() {\n\tfmt.Println(\"hi\")\n}\n")
	})

	got := Render(c.Children()...)
	want := strings.Join([]string{
		`\begin{frame}`,
		`    \begin{lstlisting}[language=go]`,
		"func main() {",
		"\tfmt.Println(\"hi\")",
		"}",
		`    \end{lstlisting}`,
		`\end{frame}`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

// TestRenderLineCount checks the structural round trip: every leaf and every
// open/close marker contributes exactly one line (code sources aside).
func TestRenderLineCount(t *testing.T) {
	var c Container
	c.Text("one")
	c.Env("outer", func(o *Environment) {
		o.Text("two")
		o.Env("inner", func(i *Environment) {
			i.Text("three")
		})
	})

	got := Render(c.Children()...)
	// 3 text leaves + 2 begin + 2 end markers.
	if n := strings.Count(got, "\n"); n != 7 {
		t.Errorf("rendered %d lines, want 7:\n%s", n, got)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	var c Container
	c.Text("stable /output/")
	c.Env("frame", func(f *Environment) {
		f.Text("body ...")
	})

	first := Render(c.Children()...)
	second := Render(c.Children()...)
	if first != second {
		t.Errorf("repeated render differs:\n%s\nvs:\n%s", first, second)
	}
}
