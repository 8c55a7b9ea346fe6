package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
	"github.com/pilulerouge/latexcmd/pkg/constants"
	"github.com/pilulerouge/latexcmd/pkg/logger"
	"github.com/pilulerouge/latexcmd/pkg/sliceutil"
)

var settingsLog = logger.New("cli:settings")

// Settings are the tunables shared by every command. They are layered from
// built-in defaults, the settings file, LATEXCMD_* environment variables and
// finally command-line flags.
type Settings struct {
	// Pattern selects the documents scanned in a content directory.
	Pattern string `yaml:"pattern" env:"PATTERN"`
	// Builtins are command names accepted in documents without being
	// declared, in addition to begin and end.
	Builtins []string `yaml:"builtins" env:"BUILTINS" envSeparator:","`
	// Strict makes unknown commands in the content a failure.
	Strict bool `yaml:"strict" env:"STRICT"`
	// KeepGoing reports every tag rule violation instead of the first one.
	KeepGoing bool `yaml:"keepGoing" env:"KEEP_GOING"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{Pattern: constants.DefaultContentPattern}
}

// LoadSettings builds the settings from the defaults, the settings file at
// path and the environment. An empty path looks for the default settings
// file and silently skips it when absent; an explicit path must exist.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	explicit := path != ""
	if !explicit {
		path = constants.DefaultSettingsFile
	}
	if err := s.loadFile(path, explicit); err != nil {
		return s, err
	}

	if err := env.ParseWithOptions(&s, env.Options{Prefix: constants.EnvPrefix}); err != nil {
		return s, fmt.Errorf("failed to parse environment settings: %w", err)
	}

	s.Builtins = sliceutil.Normalize(s.Builtins)
	if s.Pattern == "" {
		s.Pattern = constants.DefaultContentPattern
	}
	settingsLog.Printf("Loaded settings: pattern=%s, builtins=%v, strict=%v, keepGoing=%v", s.Pattern, s.Builtins, s.Strict, s.KeepGoing)
	return s, nil
}

func (s *Settings) loadFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			settingsLog.Printf("No settings file at %s", path)
			return nil
		}
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.UnmarshalWithOptions(data, s, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("failed to parse settings file %s:\n%s", path, yaml.FormatError(err, false, true))
	}
	settingsLog.Printf("Read settings file: %s", path)
	return nil
}
