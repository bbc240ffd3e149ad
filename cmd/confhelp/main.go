// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// confhelp renders configuration schemas as annotated, YAML-like help text.
//
// Usage:
//
//	confhelp render --schema config.yaml
//	confhelp render --source ./internal/config --root Config --package example.com/app/config
//	confhelp diff --schema config.yaml --golden docs/config-help.txt
//	confhelp version
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"grimm.is/confhelp/internal/commands"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Getenv, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the CLI with its OS dependencies passed in.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	root := commands.NewRootCmd(getenv)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}
