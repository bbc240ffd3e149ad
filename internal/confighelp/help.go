// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package confighelp renders configuration metadata trees as command-line help.
//
// Output for an object with a map property looks like:
//
//	# Type: example.com/app.ServerConfig
//	# Server settings
//	server:
//	      # Type: Map
//	      listeners:
//	            # Keys type: String
//	            # Values type: example.com/app.Listener
//	            <string>:
//	                  # Type: int
//	                  port: <int>
package confighelp

import (
	"io"
	"sort"

	"grimm.is/confhelp/internal/console"
	"grimm.is/confhelp/internal/meta"
)

// DefaultTitle heads the help section.
const DefaultTitle = "CONFIGURATION"

// Options controls a full help rendering.
type Options struct {
	// Width is the column limit; below 1 selects console.DefaultWidth.
	Width int
	// Title heads the section. Empty omits the heading.
	Title string
	Style console.Style
}

// HelpGenerator renders several configuration roots under one heading.
type HelpGenerator struct {
	Title string
	roots []meta.Node
}

// NewHelpGenerator collects roots, ordered by name. Roots sharing a name keep
// their relative order.
func NewHelpGenerator(roots ...meta.Node) *HelpGenerator {
	sorted := make([]meta.Node, 0, len(roots))
	for _, r := range roots {
		if r != nil {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})
	return &HelpGenerator{Title: DefaultTitle, roots: sorted}
}

// Roots returns the roots in rendering order.
func (h *HelpGenerator) Roots() []meta.Node {
	return h.roots
}

// Append writes the heading and every root section to out. Nothing is written
// when there are no roots.
func (h *HelpGenerator) Append(out *console.Appender) error {
	if len(h.roots) == 0 {
		return nil
	}

	if h.Title != "" {
		out.Println(h.Title)
		out.Blank()
		out.PushIndent(console.DefaultOffset)
		defer out.PopIndent()
	}

	gen := NewSectionGenerator(out)
	for i, root := range h.roots {
		if i > 0 {
			out.Blank()
		}
		if err := gen.Generate(root); err != nil {
			return err
		}
	}
	return out.Err()
}

// Render writes the help for roots to w.
func Render(w io.Writer, opts Options, roots ...meta.Node) error {
	out := console.New(w, opts.Width)
	if opts.Style != nil {
		out.WithStyle(opts.Style)
	}
	h := NewHelpGenerator(roots...)
	h.Title = opts.Title
	return h.Append(out)
}
