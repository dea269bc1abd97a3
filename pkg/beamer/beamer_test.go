// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package beamer

import (
	"strings"
	"testing"

	"github.com/pdiddy/slidesmith/pkg/tex"
)

func TestRenderFullPresentation(t *testing.T) {
	p := New().
		WithMeta(Meta{Title: "Talk", Author: "A. Speaker", Date: "2026-03-01"}).
		WithTheme("Warsaw")
	p.UsePackage("babel", "english")
	p.Header(`\setbeamertemplate{navigation symbols}{}`)

	p.Frame("Intro", func(f *Frame) {
		f.Text("hello /world/ ...")
		f.Itemize(func(l *tex.List) {
			l.Item("first").OnSlides(1)
			l.Item("second").OnSlides(2)
		})
	})

	got := p.Render()
	want := strings.Join([]string{
		`\documentclass{beamer}`,
		`\usetheme{Warsaw}`,
		`\usepackage[english]{babel}`,
		`\setbeamertemplate{navigation symbols}{}`,
		`\title{Talk}`,
		`\author{A. Speaker}`,
		`\date{2026-03-01}`,
		`\begin{document}`,
		`    \begin{frame}`,
		`        \titlepage`,
		`    \end{frame}`,
		`    \begin{frame}`,
		`        \frametitle{Intro}`,
		`        hello \textit{world} \ldots`,
		`        \begin{itemize}`,
		`            \item<1-> first`,
		`            \item<2-> second`,
		`        \end{itemize}`,
		`    \end{frame}`,
		`\end{document}`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

func TestListingsInjectedOnlyForCode(t *testing.T) {
	plain := New()
	plain.Frame("No code", func(f *Frame) {
		f.Text("prose only")
	})
	if strings.Contains(plain.Render(), `\usepackage{listings}`) {
		t.Error("listings package injected without a code block")
	}

	withCode := New()
	withCode.Frame("Code", func(f *Frame) {
		f.Block("deep", func(b *tex.Environment) {
			b.Code("go", "package main\n")
		})
	})
	if !strings.Contains(withCode.Render(), `\usepackage{listings}`) {
		t.Error("listings package missing although a nested code block exists")
	}
}

func TestTitleFrameComesFirst(t *testing.T) {
	p := New().WithMeta(Meta{Title: "Ordering"})
	p.Frame("Early", nil)
	p.Frame("Late", nil)

	got := p.Render()
	title := strings.Index(got, `\titlepage`)
	early := strings.Index(got, `\frametitle{Early}`)
	late := strings.Index(got, `\frametitle{Late}`)
	if title < 0 || early < 0 || late < 0 {
		t.Fatalf("missing expected markers in:\n%s", got)
	}
	if !(title < early && early < late) {
		t.Errorf("order wrong: titlepage@%d early@%d late@%d", title, early, late)
	}
}

func TestContentsFrameAfterTitle(t *testing.T) {
	p := New().WithMeta(Meta{Title: "Ordering"}).WithTOC()
	p.Frame("Body", nil)

	got := p.Render()
	title := strings.Index(got, `\titlepage`)
	toc := strings.Index(got, `\tableofcontents`)
	body := strings.Index(got, `\frametitle{Body}`)
	if !(title >= 0 && title < toc && toc < body) {
		t.Errorf("order wrong: titlepage@%d toc@%d body@%d in:\n%s", title, toc, body, got)
	}
}

func TestNoTitleMeansNoTitleFrame(t *testing.T) {
	p := New()
	p.Frame("Only", nil)

	got := p.Render()
	if strings.Contains(got, `\titlepage`) {
		t.Error("title frame generated without a title")
	}
	if strings.Contains(got, `\title{`) {
		t.Error("title command generated without a title")
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	p := New().WithMeta(Meta{Title: "Twice"}).WithTOC()
	p.Frame("Body", func(f *Frame) {
		f.Text("stable")
	})

	first := p.Render()
	second := p.Render()
	if first != second {
		t.Errorf("second render differs:\n%s\nvs:\n%s", first, second)
	}
	if strings.Count(second, `\titlepage`) != 1 {
		t.Errorf("title frame duplicated across renders:\n%s", second)
	}
}
