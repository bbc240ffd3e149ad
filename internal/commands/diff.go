// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package commands

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"grimm.is/confhelp/internal/errors"
)

func newDiffCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		out    outputFlags
		golden string
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare rendered help with a golden file",
		Long: `Render help without color and print a unified diff against a golden file.
The command fails when the two differ. An unset width renders at 80 columns
whatever the terminal size.`,
		Example: `  confhelp diff --schema config.yaml --golden testdata/config.txt`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := out.apply(cmd, a.settings)
			if err != nil {
				return err
			}
			roots, err := in.load()
			if err != nil {
				return err
			}

			want, err := os.ReadFile(golden)
			if err != nil {
				return errors.Attr(errors.Wrap(err, errors.KindIO, "read golden file"), "path", golden)
			}
			got, err := renderString(s, roots)
			if err != nil {
				return err
			}

			text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(string(want)),
				B:        difflib.SplitLines(got),
				FromFile: golden,
				ToFile:   "rendered",
				Context:  3,
			})
			if err != nil {
				return errors.Wrap(err, errors.KindInternal, "diff")
			}
			if text == "" {
				a.log.Info("golden file matches", "path", golden)
				return nil
			}
			if _, err := fmt.Fprint(cmd.OutOrStdout(), text); err != nil {
				return err
			}
			return errors.Attr(errors.New(errors.KindValidation, "rendered help differs from golden file"), "path", golden)
		},
	}

	in.register(cmd)
	out.register(cmd, false)
	cmd.Flags().StringVar(&golden, "golden", "", "Golden file holding the expected help")
	_ = cmd.MarkFlagRequired("golden")
	return cmd
}
