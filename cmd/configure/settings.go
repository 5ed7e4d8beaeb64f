// FILE: lixenwraith/configure/cmd/configure/settings.go
package main

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/configure"
)

const (
	// settingsEnvPrefix prefixes variables that configure the tool itself.
	settingsEnvPrefix = "CONFIGURE_"
	// overrideEnvPrefix prefixes variables that become document overrides.
	overrideEnvPrefix = "CONFIGURE_OVERRIDE_"
)

var errInvalidSettings = errors.New("invalid settings")

// Settings controls the tool, not the document being built.
type Settings struct {
	Format         string `env:"FORMAT"`
	LogLevel       string `env:"LOG_LEVEL"`
	DefaultDocRoot string `env:"DEFAULT_DOC_ROOT"`
}

func defaultSettings() Settings {
	return Settings{
		Format:         configure.FormatTOML,
		LogLevel:       zerolog.LevelInfoValue,
		DefaultDocRoot: configure.DefaultDocRoot,
	}
}

// settingsFromEnv reads CONFIGURE_* variables from environ
func settingsFromEnv(environ []string) (Settings, error) {
	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		if name, value, found := strings.Cut(entry, "="); found {
			vars[name] = value
		}
	}

	var s Settings
	err := env.ParseWithOptions(&s, env.Options{
		Prefix:      settingsEnvPrefix,
		Environment: vars,
	})
	if err != nil {
		return Settings{}, fmt.Errorf("error getting env settings: %w", err)
	}
	return s, nil
}

// mergeSettings layers settings in order: later layers override earlier
// non-empty fields, empty fields never erase.
func mergeSettings(layers ...Settings) (Settings, error) {
	merged := defaultSettings()
	for _, layer := range layers {
		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return Settings{}, fmt.Errorf("error merging settings: %w", err)
		}
	}
	return merged, merged.validate()
}

func (s Settings) validate() error {
	switch strings.ToLower(s.Format) {
	case configure.FormatTOML, configure.FormatJSON, configure.FormatYAML, "yml":
	default:
		return fmt.Errorf("%w: unsupported format %q", errInvalidSettings, s.Format)
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidSettings, err)
	}
	// The build diagnostic is logged at error level and must stay visible.
	if lvl > zerolog.ErrorLevel {
		return fmt.Errorf("%w: log level %q would hide build errors", errInvalidSettings, s.LogLevel)
	}
	return nil
}

// level returns the parsed log level; validate has already accepted it.
func (s Settings) level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
