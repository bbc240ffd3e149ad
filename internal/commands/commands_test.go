// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/confhelp/internal/brand"
	"grimm.is/confhelp/internal/errors"
	"grimm.is/confhelp/internal/testutil"
)

const serverSchema = `roots:
  - name: server
    type: example.com/app.Server
    properties:
      - name: port
        type: int
`

const serverHelp = `CONFIGURATION

      # Type: example.com/app.Server
      server:
            # Type: int
            port: <int>
`

const serverSource = "package app\n\n// Server settings.\ntype Server struct {\n\tPort int `yaml:\"port\"`\n}\n"

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, env map[string]string, args ...string) result {
	t.Helper()
	testutil.KeepLogger(t)

	cmd := NewRootCmd(func(k string) string { return env[k] })
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRenderSchema(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)

	r := execute(t, nil, "render", "--schema", schema)
	require.NoError(t, r.err)
	assert.Equal(t, serverHelp, r.stdout)
}

func TestRenderWithoutTitle(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)

	r := execute(t, nil, "render", "--schema", schema, "--title", "")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "# Type: example.com/app.Server\nserver:\n"), r.stdout)
}

func TestRenderTitlePrecedence(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)
	settingsFile := testutil.WriteFile(t, "confhelp.hcl", `title = "FROM FILE"`)

	r := execute(t, nil, "render", "--settings", settingsFile, "--schema", schema)
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "FROM FILE\n\n"), r.stdout)

	r = execute(t, map[string]string{"CONFHELP_TITLE": "FROM ENV"}, "render", "--settings", settingsFile, "--schema", schema)
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "FROM ENV\n\n"), r.stdout)

	r = execute(t, map[string]string{"CONFHELP_TITLE": "FROM ENV"}, "render", "--schema", schema, "--title", "FROM FLAG")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "FROM FLAG\n\n"), r.stdout)
}

func TestRenderToFile(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)
	output := filepath.Join(t.TempDir(), "help.txt")

	r := execute(t, nil, "render", "--schema", schema, "-o", output)
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, serverHelp, string(data))
}

func TestRenderColor(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)

	r := execute(t, nil, "render", "--schema", schema, "--color")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "\x1b[")
	assert.Contains(t, r.stdout, "<int>")
}

func TestRenderSource(t *testing.T) {
	dir := testutil.WriteDir(t, map[string]string{"server.go": serverSource})

	r := execute(t, nil, "render", "--source", dir, "--root", "Server", "--package", "example.com/app", "--title", "")
	require.NoError(t, r.err)
	assert.Equal(t, strings.Join([]string{
		"# Type: example.com/app.Server",
		"# Server settings.",
		"server:",
		"      # Type: int",
		"      port: <int>",
	}, "\n")+"\n", r.stdout)
}

func TestRenderInputErrors(t *testing.T) {
	r := execute(t, nil, "render")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "no input")

	r = execute(t, nil, "render", "--source", t.TempDir())
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "--source requires --root")

	r = execute(t, nil, "render", "--schema", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, r.err)
	assert.Equal(t, errors.KindNotFound, errors.GetKind(r.err))
}

func TestRenderRejectsNegativeWidth(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)

	r := execute(t, nil, "render", "--schema", schema, "--width", "-5")
	require.Error(t, r.err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(r.err))
}

func TestDiffMatches(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)
	golden := testutil.WriteFile(t, "golden.txt", serverHelp)

	r := execute(t, nil, "diff", "--schema", schema, "--golden", golden)
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)
}

func TestDiffReportsChanges(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)
	golden := testutil.WriteFile(t, "golden.txt", strings.Replace(serverHelp, "port: <int>", "port: <string>", 1))

	r := execute(t, nil, "diff", "--schema", schema, "--golden", golden)
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "differs from golden file")
	assert.Equal(t, golden, errors.GetAttributes(r.err)["path"])

	assert.Contains(t, r.stdout, "--- "+golden)
	assert.Contains(t, r.stdout, "+++ rendered")
	assert.Contains(t, r.stdout, "-            port: <string>")
	assert.Contains(t, r.stdout, "+            port: <int>")
}

func TestDiffRequiresGolden(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)

	r := execute(t, nil, "diff", "--schema", schema)
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "golden")
}

func TestVersion(t *testing.T) {
	r := execute(t, nil, "version")
	require.NoError(t, r.err)
	assert.Equal(t, brand.VersionString()+"\n"+brand.Notice()+"\n"+brand.Repository+"\n", r.stdout)
}

func TestDefaultSettingsFile(t *testing.T) {
	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)
	dir := testutil.WriteDir(t, map[string]string{brand.SettingsFileName: `title = "FROM CWD"`})
	t.Chdir(dir)

	r := execute(t, nil, "render", "--schema", schema)
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "FROM CWD\n\n"), r.stdout)

	other := testutil.WriteFile(t, "other.hcl", `title = "EXPLICIT"`)
	r = execute(t, nil, "render", "--settings", other, "--schema", schema)
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "EXPLICIT\n\n"), r.stdout)
}

func TestLogLevel(t *testing.T) {
	r := execute(t, nil, "--log-level", "loud", "version")
	require.Error(t, r.err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(r.err))

	schema := testutil.WriteFile(t, "schema.yaml", serverSchema)
	r = execute(t, nil, "--log-level", "debug", "render", "--schema", schema)
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "settings resolved")
	assert.Contains(t, r.stderr, "rendered help")
	assert.Equal(t, serverHelp, r.stdout, "logs never reach stdout")
}

func TestEnvironmentErrors(t *testing.T) {
	r := execute(t, map[string]string{"CONFHELP_WIDTH": "wide"}, "version")
	require.Error(t, r.err)
	assert.Equal(t, "CONFHELP_WIDTH", errors.GetAttributes(r.err)["env"])
}
