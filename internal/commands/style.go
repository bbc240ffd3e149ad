// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package commands

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"grimm.is/confhelp/internal/console"
)

// helpStyle colors help text: comments dimmed, property keys bold.
// Color is forced when requested, even if w is not a terminal.
func helpStyle(w io.Writer) console.Style {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	comment := r.NewStyle().Foreground(lipgloss.Color("244"))
	key := r.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))

	return func(kind console.LineKind, content string) string {
		if kind == console.LineComment {
			return comment.Render(content)
		}
		idx := strings.Index(content, ":")
		if idx <= 0 {
			return content
		}
		return key.Render(content[:idx+1]) + content[idx+1:]
	}
}
