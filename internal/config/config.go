// Package config resolves where the package's template assets live and which project
// they are installed into.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "copilot-install.toml"

// DefaultPackage is the package name this installer ships with.
const DefaultPackage = "square360/copilot-drupal-instructions"

// Config holds installer settings from a config file or command-line flags.
// Empty fields mean "not set" so layers can be merged.
type Config struct {
	ProjectRoot string `toml:"project_root"`
	VendorDir   string `toml:"vendor_dir"`
	Package     string `toml:"package"`
	PackageDir  string `toml:"package_dir"`
	Gitignore   *bool  `toml:"gitignore"`
}

// LoadConfig reads and strictly decodes a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	return ParseConfig(data, path)
}

// LoadOptionalConfig reads path when it exists and returns an empty Config otherwise.
func LoadOptionalConfig(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// ParseConfig decodes TOML data, rejecting keys the installer does not know.
// source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var strict Config
	if err := decoder.Decode(&strict); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnrecognizedKeys, source, err)
	}
	return &cfg, nil
}

// Merge returns base with every field set in override applied on top.
func Merge(base Config, override Config) Config {
	out := base
	if override.ProjectRoot != "" {
		out.ProjectRoot = override.ProjectRoot
	}
	if override.VendorDir != "" {
		out.VendorDir = override.VendorDir
	}
	if override.Package != "" {
		out.Package = override.Package
	}
	if override.PackageDir != "" {
		out.PackageDir = override.PackageDir
	}
	if override.Gitignore != nil {
		value := *override.Gitignore
		out.Gitignore = &value
	}
	return out
}
