// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package commands

import (
	"os"

	"github.com/spf13/cobra"

	"grimm.is/confhelp/internal/errors"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		out    outputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render configuration help",
		Long: `Render annotated, YAML-like help for one or more configuration roots.

Roots come from schema files (YAML or HCL) and/or a Go struct discovered in
a source directory. Roots are printed in name order under a common heading.`,
		Example: `  # Render a schema file
  confhelp render --schema config.yaml

  # Discover the Config struct of a package
  confhelp render --source ./internal/config --root Config --package example.com/app/config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			s, err := out.apply(cmd, a.settings)
			if err != nil {
				return err
			}
			roots, err := in.load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, cerr := os.Create(output)
				if cerr != nil {
					return errors.Attr(errors.Wrap(cerr, errors.KindIO, "create output"), "path", output)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = errors.Attr(errors.Wrap(cerr, errors.KindIO, "close output"), "path", output)
					}
				}()
				w = f
			}

			if err := renderTo(w, s, roots); err != nil {
				return err
			}
			a.log.Info("rendered help", "roots", len(roots), "output", output)
			return nil
		},
	}

	in.register(cmd)
	out.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}
