// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/confhelp/internal/testutil"
)

func TestRun(t *testing.T) {
	testutil.KeepLogger(t)
	schema := testutil.WriteFile(t, "schema.hcl", `root "debug" {
  type        = "bool"
  description = "Verbose output"
}
`)

	var stdout, stderr bytes.Buffer
	env := map[string]string{"CONFHELP_TITLE": "-"}
	err := run(context.Background(), []string{"render", "--schema", schema}, func(k string) string { return env[k] }, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "# Type: boolean\n# Verbose output\ndebug: <true|false>\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"explode"}, func(string) string { return "" }, &stdout, &stderr)
	assert.Error(t, err)
}
