// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package commands

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"grimm.is/confhelp/internal/configdoc"
	"grimm.is/confhelp/internal/confighelp"
	"grimm.is/confhelp/internal/errors"
	"grimm.is/confhelp/internal/meta"
	"grimm.is/confhelp/internal/schemafile"
	"grimm.is/confhelp/internal/settings"
)

// inputFlags select where configuration trees come from.
type inputFlags struct {
	schemas []string
	source  string
	root    string
	name    string
	pkg     string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.schemas, "schema", nil, "YAML or HCL schema file (repeatable)")
	cmd.Flags().StringVar(&f.source, "source", "", "Directory of Go sources to discover a root struct in")
	cmd.Flags().StringVar(&f.root, "root", "", "Root struct name for --source")
	cmd.Flags().StringVar(&f.name, "name", "", "Property name of the discovered root (default: lowercased struct name)")
	cmd.Flags().StringVar(&f.pkg, "package", "", "Package prefix for discovered type names (default: Go package name)")
}

// load collects every requested root.
func (f *inputFlags) load() ([]meta.Node, error) {
	if len(f.schemas) == 0 && f.source == "" {
		return nil, errors.New(errors.KindValidation, "no input: use --schema or --source")
	}

	var roots []meta.Node
	for _, path := range f.schemas {
		nodes, err := schemafile.Load(path)
		if err != nil {
			return nil, err
		}
		roots = append(roots, nodes...)
	}

	if f.source != "" {
		if f.root == "" {
			return nil, errors.New(errors.KindValidation, "--source requires --root")
		}
		p := configdoc.NewParser()
		if err := p.ParseDir(f.source); err != nil {
			return nil, err
		}
		node, err := p.Discover(f.root, configdoc.DiscoverOptions{Name: f.name, Package: f.pkg})
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)
	}
	return roots, nil
}

// outputFlags override rendering settings for one invocation.
type outputFlags struct {
	width int
	color bool
	title string
}

func (f *outputFlags) register(cmd *cobra.Command, withColor bool) {
	cmd.Flags().IntVar(&f.width, "width", 0, "Column limit (default: settings, then terminal width)")
	cmd.Flags().StringVar(&f.title, "title", confighelp.DefaultTitle, "Section heading; empty omits it")
	if withColor {
		cmd.Flags().BoolVar(&f.color, "color", false, "Colorize comments and keys")
	}
}

// apply layers explicitly set flags over s.
func (f *outputFlags) apply(cmd *cobra.Command, s settings.Settings) (settings.Settings, error) {
	if cmd.Flags().Changed("width") {
		s.Width = f.width
	}
	if cmd.Flags().Changed("color") {
		s.Color = f.color
	}
	if cmd.Flags().Changed("title") {
		s.Title = f.title
	}
	return s, s.Validate()
}

// fd returns the descriptor behind w for terminal detection, or -1.
func fd(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}

// renderTo writes help for roots to w using s.
func renderTo(w io.Writer, s settings.Settings, roots []meta.Node) error {
	opts := confighelp.Options{
		Width: s.EffectiveWidth(fd(w)),
		Title: s.Title,
	}
	if s.Color {
		opts.Style = helpStyle(w)
	}
	return confighelp.Render(w, opts, roots...)
}

// renderString renders without color, for comparisons.
func renderString(s settings.Settings, roots []meta.Node) (string, error) {
	s.Color = false
	var buf bytes.Buffer
	if err := renderTo(&buf, s, roots); err != nil {
		return "", err
	}
	return buf.String(), nil
}
