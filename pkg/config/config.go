// Package config loads picker defaults from .datepick.yaml and the
// DATEPICK_* environment.
package config

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/datepick/pkg/datepicker/selection"
)

const (
	// Name is the config file name without its extension.
	Name = ".datepick"
	// EnvPrefix prefixes environment overrides, e.g. DATEPICK_MODE.
	EnvPrefix = "DATEPICK"
	// PathEnv names an extra directory searched first.
	PathEnv = "DATEPICK_CONFIG_PATH"
)

// Config holds the picker defaults.
type Config struct {
	// File is the config file in use; empty when none was found.
	File        string `json:"file,omitempty"`
	Mode        string `json:"mode"`
	Placeholder string `json:"placeholder,omitempty"`
	Reset       bool   `json:"reset"`
	Range       bool   `json:"range"`
	Width       int    `json:"width"`
}

// PickerMode parses Mode.
func (c Config) PickerMode() (selection.Mode, error) {
	return selection.ParseMode(c.Mode)
}

// Loader reads Config through a private viper instance.
type Loader struct {
	v *viper.Viper
}

// NewLoader prepares the search path: $DATEPICK_CONFIG_PATH, the home
// directory, then the working directory.
func NewLoader() *Loader {
	v := viper.New()
	v.SetDefault("mode", "duo")
	v.SetDefault("placeholder", "")
	v.SetDefault("reset", true)
	v.SetDefault("range", false)
	v.SetDefault("width", 32)
	v.SetConfigName(Name) // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if override := os.Getenv(PathEnv); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")
	return &Loader{v: v}
}

// Load reads the config. A missing file is not an error.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}
	return l.current()
}

func (l *Loader) current() (Config, error) {
	cfg := Config{
		File:        l.v.ConfigFileUsed(),
		Mode:        l.v.GetString("mode"),
		Placeholder: l.v.GetString("placeholder"),
		Reset:       l.v.GetBool("reset"),
		Range:       l.v.GetBool("range"),
		Width:       l.v.GetInt("width"),
	}
	if _, err := cfg.PickerMode(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Load is a convenience for NewLoader().Load().
func Load() (Config, error) {
	return NewLoader().Load()
}
