// Package config loads nocap settings.
//
// Values are layered, later sources winning:
//
//  1. Built-in defaults
//  2. Config file: $NOCAP_CONFIG, or $XDG_CONFIG_HOME/nocap/config.toml
//     (falling back to ~/.config/nocap/config.toml)
//  3. Environment variables with the NOCAP_ prefix (NOCAP_MANIFEST, ...)
//
// Command-line flags are applied on top by the cli package.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/nocap/pkg/errors"
	"github.com/matzehuels/nocap/pkg/poetry"
	"github.com/matzehuels/nocap/pkg/pyproject"
)

const (
	appName   = "nocap"
	envPrefix = "NOCAP"
)

// Config holds nocap settings.
type Config struct {
	Manifest string `mapstructure:"manifest"` // path to pyproject.toml
	Poetry   string `mapstructure:"poetry"`   // poetry executable
	Pin      bool   `mapstructure:"pin"`      // default for --pin
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Manifest: pyproject.DefaultPath,
		Poetry:   poetry.DefaultBinary,
	}
}

// Load reads configuration from the config file and environment. A missing
// config file is not an error; an unreadable or malformed one is.
func Load() (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("manifest", def.Manifest)
	v.SetDefault("poetry", def.Poetry)
	v.SetDefault("pin", def.Pin)

	v.SetConfigType("toml")
	explicit := os.Getenv(envPrefix + "_CONFIG")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); explicit != "" || !missing {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "could not load config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "could not decode config")
	}
	return c, nil
}

// File returns the config file Load would read, or "" if none is set and the
// config directory cannot be determined.
func File() string {
	if explicit := os.Getenv(envPrefix + "_CONFIG"); explicit != "" {
		return explicit
	}
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// configDir returns the config directory using the XDG standard
// (~/.config/nocap/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
