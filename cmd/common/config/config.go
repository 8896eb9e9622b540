// Package config provides configuration loading for dotdash.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gigurra/dotdash/cmd/morse"
	"github.com/gigurra/dotdash/cmd/morse/signal"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix for environment overrides, e.g. DOTDASH_WPM.
const EnvPrefix = "DOTDASH"

var validate = validator.New()

// Config represents the dotdash configuration file structure.
// Environment overrides use the field name, e.g. DOTDASH_WPM or DOTDASH_UNIT_MS.
type Config struct {
	WPM       int     `json:"wpm" validate:"min=5,max=60"`
	UnitMs    int     `json:"unit_ms" split_words:"true" validate:"omitempty,min=20,max=1000"`
	Frequency float64 `json:"frequency" validate:"min=200,max=2000"`
	Case      string  `json:"case" validate:"oneof=upper preserve lower sentence"`
	Sound     bool    `json:"sound"`
	Theme     string  `json:"theme" validate:"oneof=dark light"`
	Copy      bool    `json:"copy"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		WPM:       signal.DefaultWPM,
		Frequency: signal.DefaultFrequency,
		Case:      string(morse.CaseUpper),
		Theme:     "dark",
	}
}

// Dir returns the dotdash config directory ($DOTDASH_HOME or ~/.dotdash).
func Dir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvPrefix + "_HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dotdash")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.json")
}

// Load loads the config file, applies environment overrides and validates
// the result. A missing file yields the defaults.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom is Load with an explicit file path.
func LoadFrom(path string) (*Config, error) {
	config, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ReadFile loads the file over the defaults without environment overrides.
func ReadFile(path string) (*Config, error) {
	config, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func readFile(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err == nil {
		// Fields missing from the file keep their defaults.
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return config, nil
}

// SaveTo writes the config as indented JSON, creating parent directories.
func SaveTo(path string, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks every field against its allowed range.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Keys lists the settable keys in file order.
var Keys = []string{"wpm", "unit_ms", "frequency", "case", "sound", "theme", "copy"}

// Set assigns a single key from its string form and validates the result.
// The config is left unchanged on error.
func (c *Config) Set(key, value string) error {
	updated := *c
	var err error
	switch strings.ToLower(key) {
	case "wpm":
		updated.WPM, err = strconv.Atoi(value)
	case "unit_ms":
		updated.UnitMs, err = strconv.Atoi(value)
	case "frequency":
		updated.Frequency, err = strconv.ParseFloat(value, 64)
	case "case":
		updated.Case = strings.ToLower(value)
	case "sound":
		updated.Sound, err = strconv.ParseBool(value)
	case "theme":
		updated.Theme = strings.ToLower(value)
	case "copy":
		updated.Copy, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("unknown key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := updated.Validate(); err != nil {
		return err
	}
	*c = updated
	return nil
}

// Timing returns unit timing when unit_ms is set, otherwise WPM timing.
func (c *Config) Timing() signal.Timing {
	if c.UnitMs > 0 {
		return signal.UnitTiming(time.Duration(c.UnitMs) * time.Millisecond)
	}
	return signal.WPMTiming(c.WPM)
}

// CasePolicy returns the configured decode case policy.
func (c *Config) CasePolicy() morse.Case {
	policy, err := morse.ParseCase(c.Case)
	if err != nil {
		return morse.CaseUpper
	}
	return policy
}

// WithOverrides returns a copy with the non-zero playback values applied.
// Setting wpm clears a configured unit so the flag wins over the file.
func (c *Config) WithOverrides(wpm, unitMs int, frequency float64) *Config {
	out := *c
	if wpm > 0 {
		out.WPM = wpm
		out.UnitMs = 0
	}
	if unitMs > 0 {
		out.UnitMs = unitMs
	}
	if frequency > 0 {
		out.Frequency = frequency
	}
	return &out
}
