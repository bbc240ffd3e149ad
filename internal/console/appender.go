// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package console writes indented, column-limited help text.
package console

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
)

const (
	// DefaultWidth is the column limit used when the terminal size is unknown.
	DefaultWidth = 80
	// DefaultOffset is one indentation unit.
	DefaultOffset = 6

	// Comments are never wrapped narrower than this, however deep the indent.
	minWrapWidth = 20
	commentMark  = "# "
)

// LineKind tells a Style what kind of line it decorates.
type LineKind int

const (
	LineStructural LineKind = iota
	LineComment
)

// Style decorates the content of a finished line (indentation excluded).
// It runs after wrapping, so escape sequences never count against the width.
type Style func(kind LineKind, content string) string

// Appender is a line-oriented writer that tracks the current indentation and
// wraps comment text at a fixed width. Structural lines are written as-is.
//
// The first write error is kept and every later call becomes a no-op; check
// Err once the output is complete.
type Appender struct {
	w      io.Writer
	width  int
	offset int
	stack  []int
	style  Style
	err    error
}

// New returns an Appender writing to w. A width below 1 selects DefaultWidth.
func New(w io.Writer, width int) *Appender {
	if width < 1 {
		width = DefaultWidth
	}
	return &Appender{w: w, width: width}
}

// WithStyle installs a line decorator and returns the Appender.
func (a *Appender) WithStyle(s Style) *Appender {
	a.style = s
	return a
}

// Width returns the column limit.
func (a *Appender) Width() int { return a.width }

// Offset returns the current indentation in columns.
func (a *Appender) Offset() int { return a.offset }

// PushIndent adds n columns of indentation until the matching PopIndent.
func (a *Appender) PushIndent(n int) {
	a.stack = append(a.stack, n)
	a.offset += n
}

// PopIndent undoes the most recent PushIndent.
func (a *Appender) PopIndent() {
	if len(a.stack) == 0 {
		return
	}
	last := len(a.stack) - 1
	a.offset -= a.stack[last]
	a.stack = a.stack[:last]
}

// Err returns the first error reported by the underlying writer.
func (a *Appender) Err() error { return a.err }

// Println writes one structural line at the current indentation.
func (a *Appender) Println(text string) {
	a.line(a.offset, "", LineStructural, strings.TrimRight(text, " "))
}

// Blank writes an empty separator line.
func (a *Appender) Blank() {
	a.write("\n")
}

// Comment writes text as "# " lines, wrapping it to the column limit.
// Embedded newlines start new comment lines.
func (a *Appender) Comment(text string) {
	a.Bullet("", text)
}

// Bullet writes a comment introduced by lead (for example "- "). Wrapped
// continuation lines are aligned under the comment text.
func (a *Appender) Bullet(lead, text string) {
	leadWidth := runewidth.StringWidth(lead)
	limit := a.width - a.offset - leadWidth - runewidth.StringWidth(commentMark)
	if limit < minWrapWidth {
		limit = minWrapWidth
	}

	first := true
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		var lines []string
		if para == "" {
			lines = []string{""}
		} else {
			lines = strings.Split(wordwrap.WrapString(para, uint(limit)), "\n")
		}
		for _, l := range lines {
			content := strings.TrimRight(commentMark+l, " ")
			if first {
				a.line(a.offset, lead, LineComment, content)
				first = false
				continue
			}
			a.line(a.offset+leadWidth, "", LineComment, content)
		}
	}
}

func (a *Appender) line(indent int, lead string, kind LineKind, content string) {
	if a.style != nil {
		content = a.style(kind, content)
	}
	a.write(strings.Repeat(" ", indent) + lead + content + "\n")
}

func (a *Appender) write(s string) {
	if a.err != nil {
		return
	}
	_, a.err = io.WriteString(a.w, s)
}
