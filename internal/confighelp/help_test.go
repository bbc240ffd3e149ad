// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package confighelp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/confhelp/internal/console"
	"grimm.is/confhelp/internal/meta"
)

func helpRoots() []meta.Node {
	b := meta.NewMap("b").Values(value("", meta.Bool)).MustBuild()
	a := meta.NewObject("a").Type(meta.Named("A")).AddProperty(value("x", meta.Int)).MustBuild()
	return []meta.Node{b, a}
}

func TestHelpGeneratorSortsRoots(t *testing.T) {
	h := NewHelpGenerator(append(helpRoots(), nil)...)

	require.Len(t, h.Roots(), 2)
	assert.Equal(t, "a", h.Roots()[0].Name())
	assert.Equal(t, "b", h.Roots()[1].Name())
	assert.Equal(t, DefaultTitle, h.Title)
}

func TestHelpGeneratorAppend(t *testing.T) {
	var sb strings.Builder
	err := NewHelpGenerator(helpRoots()...).Append(console.New(&sb, 80))
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"CONFIGURATION",
		"",
		"      # Type: A",
		"      a:",
		"            # Type: int",
		"            x: <int>",
		"",
		"      # Type: Map",
		"      b:",
		"            # Keys type: String",
		"            # Values type: boolean",
		"            <string>: <true|false>",
	}, "\n")+"\n", sb.String())
}

func TestHelpGeneratorWithoutRoots(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, NewHelpGenerator().Append(console.New(&sb, 80)))
	assert.Empty(t, sb.String())
}

func TestRenderWithoutTitle(t *testing.T) {
	var sb strings.Builder
	err := Render(&sb, Options{}, helpRoots()...)
	require.NoError(t, err)

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "# Type: A\na:\n"), out)
	assert.Contains(t, out, "\n\n# Type: Map\nb:\n")
}

func TestRenderAppliesStyle(t *testing.T) {
	var sb strings.Builder
	opts := Options{
		Title: "CONFIG",
		Style: func(kind console.LineKind, s string) string {
			if kind == console.LineComment {
				return strings.ToUpper(s)
			}
			return s
		},
	}
	require.NoError(t, Render(&sb, opts, value("debug", meta.Bool)))

	assert.Equal(t, "CONFIG\n\n      # TYPE: BOOLEAN\n      debug: <true|false>\n", sb.String())
}

func TestRenderIsDeterministic(t *testing.T) {
	var first, second strings.Builder
	require.NoError(t, Render(&first, Options{Title: DefaultTitle}, helpRoots()...))
	require.NoError(t, Render(&second, Options{Title: DefaultTitle}, helpRoots()...))
	assert.Equal(t, first.String(), second.String())
}

func TestRenderReportsWriteError(t *testing.T) {
	err := Render(brokenWriter{}, Options{Title: DefaultTitle}, helpRoots()...)
	assert.EqualError(t, err, "closed pipe")
}
