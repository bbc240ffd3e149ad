// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package brand provides the product identity shared by the CLI, settings
// and version output.
//
// The identity is loaded from brand.json at compile time via go:embed.
package brand

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed brand.json
var brandJSON []byte

// Brand holds all branding information
type Brand struct {
	Name             string `json:"name"`
	Repository       string `json:"repository"`
	Description      string `json:"description"`
	ConfigEnvPrefix  string `json:"configEnvPrefix"`
	BinaryName       string `json:"binaryName"`
	SettingsFileName string `json:"settingsFileName"`
	Copyright        string `json:"copyright"`
	License          string `json:"license"`
}

var b Brand

func init() {
	if err := json.Unmarshal(brandJSON, &b); err != nil {
		panic("failed to parse brand.json: " + err.Error())
	}

	Name = b.Name
	Repository = b.Repository
	Description = b.Description
	ConfigEnvPrefix = b.ConfigEnvPrefix
	BinaryName = b.BinaryName
	SettingsFileName = b.SettingsFileName
	Copyright = b.Copyright
	License = b.License
}

var (
	Name             string
	Repository       string
	Description      string
	ConfigEnvPrefix  string
	BinaryName       string
	SettingsFileName string
	Copyright        string
	License          string

	// Version is set at build time via -ldflags
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Get returns the full Brand struct
func Get() Brand {
	return b
}

// EnvVar returns the environment variable name for a setting, e.g. CONFHELP_WIDTH.
func EnvVar(key string) string {
	return ConfigEnvPrefix + "_" + key
}

// Notice is the copyright and license line printed with the version.
func Notice() string {
	return fmt.Sprintf("%s. Licensed under %s.", Copyright, License)
}

// VersionString describes the running build.
func VersionString() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, Version, GitCommit, BuildTime)
}
