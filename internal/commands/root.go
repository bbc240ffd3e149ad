// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package commands contains the CLI command definitions.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"grimm.is/confhelp/internal/brand"
	"grimm.is/confhelp/internal/logging"
	"grimm.is/confhelp/internal/settings"
)

// app carries state shared by every command.
type app struct {
	getenv       func(string) string
	settingsPath string
	logLevel     string

	settings settings.Settings
	log      *logging.Logger
}

// NewRootCmd creates and returns the root command for the CLI. getenv supplies
// the CONFHELP_* overrides.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	a := &app{getenv: getenv, settings: settings.Default()}

	rootCmd := &cobra.Command{
		Use:               brand.BinaryName,
		Short:             brand.Description,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.preRun,
	}
	rootCmd.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "HCL settings file (default ./"+brand.SettingsFileName+" when present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newDiffCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// preRun resolves settings (file, then environment, then --log-level) and
// installs the logger. Without --settings, a settings file in the working
// directory is used when one exists.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	path := a.settingsPath
	if path == "" {
		if _, err := os.Stat(brand.SettingsFileName); err == nil {
			path = brand.SettingsFileName
		}
	}

	s := settings.Default()
	if path != "" {
		loaded, err := settings.Load(path)
		if err != nil {
			return err
		}
		s = loaded
	}
	if err := s.ApplyEnv(a.getenv); err != nil {
		return err
	}
	if a.logLevel != "" {
		s.LogLevel = a.logLevel
		if err := s.Validate(); err != nil {
			return err
		}
	}
	a.settings = s

	cfg := logging.DefaultConfig()
	cfg.Level = s.Level()
	cfg.Output = cmd.ErrOrStderr()
	logging.SetDefault(logging.New(cfg))
	a.log = logging.WithComponent("cli")
	a.log.Debug("settings resolved", "file", path, "width", s.Width, "color", s.Color, "log_level", s.LogLevel)
	return nil
}
