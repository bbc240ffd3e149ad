// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package settings holds the CLI rendering preferences.
//
// Values come from, in increasing precedence: built-in defaults, an HCL
// settings file, CONFHELP_* environment variables and command-line flags.
//
//	width     = 100
//	color     = true
//	title     = "CONFIGURATION"
//	log_level = "info"
package settings

import (
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"golang.org/x/term"

	"grimm.is/confhelp/internal/brand"
	"grimm.is/confhelp/internal/confighelp"
	"grimm.is/confhelp/internal/console"
	"grimm.is/confhelp/internal/errors"
	"grimm.is/confhelp/internal/logging"
)

// Settings are the rendering preferences.
type Settings struct {
	// Width is the column limit. 0 means the terminal width, or 80 when
	// output is not a terminal.
	Width    int    `hcl:"width,optional"`
	Color    bool   `hcl:"color,optional"`
	Title    string `hcl:"title,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Title:    confighelp.DefaultTitle,
		LogLevel: "warn",
	}
}

// Load reads an HCL settings file over the defaults. Attributes missing from
// the file keep their default.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		kind := errors.KindIO
		if os.IsNotExist(err) {
			kind = errors.KindNotFound
		}
		return s, errors.Attr(errors.Wrap(err, kind, "read settings"), "path", path)
	}
	if err := hclsimple.Decode(path, data, nil, &s); err != nil {
		return s, errors.Attr(errors.Wrap(err, errors.KindValidation, "failed to decode settings"), "path", path)
	}
	if err := s.Validate(); err != nil {
		return s, errors.Attr(err, "path", path)
	}
	return s, nil
}

// ApplyEnv overrides settings from CONFHELP_WIDTH, CONFHELP_COLOR,
// CONFHELP_TITLE and CONFHELP_LOG_LEVEL. Unset variables are ignored.
func (s *Settings) ApplyEnv(getenv func(string) string) error {
	if v := getenv(brand.EnvVar("WIDTH")); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return errors.Attr(errors.Wrap(err, errors.KindValidation, "invalid width"), "env", brand.EnvVar("WIDTH"))
		}
		s.Width = w
	}
	if v := getenv(brand.EnvVar("COLOR")); v != "" {
		c, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Attr(errors.Wrap(err, errors.KindValidation, "invalid color flag"), "env", brand.EnvVar("COLOR"))
		}
		s.Color = c
	}
	if v, ok := lookup(getenv, brand.EnvVar("TITLE")); ok {
		s.Title = v
	}
	if v := getenv(brand.EnvVar("LOG_LEVEL")); v != "" {
		s.LogLevel = v
	}
	return s.Validate()
}

// lookup treats the value "-" as an explicit empty string, since getenv
// cannot tell an empty variable from an unset one.
func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	switch v {
	case "":
		return "", false
	case "-":
		return "", true
	default:
		return v, true
	}
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if s.Width < 0 {
		return errors.Attr(errors.New(errors.KindValidation, "width must not be negative"), "width", s.Width)
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, falling back to warn.
func (s Settings) Level() logging.Level {
	l, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return logging.LevelWarn
	}
	return l
}

// EffectiveWidth resolves a zero Width against the terminal behind fd.
func (s Settings) EffectiveWidth(fd int) int {
	if s.Width > 0 {
		return s.Width
	}
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return console.DefaultWidth
}
