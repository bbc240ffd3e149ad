// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/confhelp/internal/console"
	"grimm.is/confhelp/internal/errors"
	"grimm.is/confhelp/internal/logging"
	"grimm.is/confhelp/internal/testutil"
)

func writeSettings(t *testing.T, content string) string {
	return testutil.WriteFile(t, "confhelp.hcl", content)
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 0, s.Width)
	assert.False(t, s.Color)
	assert.Equal(t, "CONFIGURATION", s.Title)
	assert.Equal(t, logging.LevelWarn, s.Level())
	require.NoError(t, s.Validate())
}

func TestLoad(t *testing.T) {
	path := writeSettings(t, `
width     = 100
color     = true
log_level = "debug"
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100, s.Width)
	assert.True(t, s.Color)
	assert.Equal(t, "CONFIGURATION", s.Title, "missing attributes keep defaults")
	assert.Equal(t, logging.LevelDebug, s.Level())
}

func TestLoadEmptyTitle(t *testing.T) {
	s, err := Load(writeSettings(t, `title = ""`))
	require.NoError(t, err)
	assert.Empty(t, s.Title)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    errors.Kind
	}{
		{"syntax", `width = `, errors.KindValidation},
		{"unknown attribute", `colour = true`, errors.KindValidation},
		{"wrong type", `width = "wide"`, errors.KindValidation},
		{"negative width", `width = -1`, errors.KindValidation},
		{"bad level", `log_level = "loud"`, errors.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.GetKind(err), "error: %v", err)
			assert.Equal(t, path, errors.GetAttributes(err)["path"])
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.GetKind(err))
}

func TestApplyEnv(t *testing.T) {
	s := Default()
	err := s.ApplyEnv(env(map[string]string{
		"CONFHELP_WIDTH":     "120",
		"CONFHELP_COLOR":     "true",
		"CONFHELP_TITLE":     "SETTINGS",
		"CONFHELP_LOG_LEVEL": "info",
	}))
	require.NoError(t, err)

	assert.Equal(t, Settings{Width: 120, Color: true, Title: "SETTINGS", LogLevel: "info"}, s)
}

func TestApplyEnvKeepsUnset(t *testing.T) {
	s := Settings{Width: 90, Title: "X", LogLevel: "error"}
	require.NoError(t, s.ApplyEnv(env(nil)))
	assert.Equal(t, Settings{Width: 90, Title: "X", LogLevel: "error"}, s)
}

func TestApplyEnvDashClearsTitle(t *testing.T) {
	s := Default()
	require.NoError(t, s.ApplyEnv(env(map[string]string{"CONFHELP_TITLE": "-"})))
	assert.Empty(t, s.Title)
}

func TestApplyEnvErrors(t *testing.T) {
	for key, val := range map[string]string{
		"CONFHELP_WIDTH":     "wide",
		"CONFHELP_COLOR":     "sometimes",
		"CONFHELP_LOG_LEVEL": "loud",
	} {
		t.Run(key, func(t *testing.T) {
			s := Default()
			err := s.ApplyEnv(env(map[string]string{key: val}))
			require.Error(t, err)
			assert.Equal(t, errors.KindValidation, errors.GetKind(err))
		})
	}
}

func TestEffectiveWidth(t *testing.T) {
	assert.Equal(t, 72, Settings{Width: 72}.EffectiveWidth(-1))
	// An invalid descriptor is never a terminal.
	assert.Equal(t, console.DefaultWidth, Settings{}.EffectiveWidth(-1))
}
