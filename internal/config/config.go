package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Settings holds the runtime settings that shape how a reconciliation is
// reported, as opposed to what is reconciled.
type Settings struct {
	// Verbose sets the verbosity level
	Verbose int

	// NoColor disables colored output
	NoColor bool

	// Output is the mismatch report format (text, json or yaml)
	Output string

	// LogFormat is the log encoding (json or console)
	LogFormat string
}

const (
	envPrefix      = "DIRGUARD"
	configFileName = ".dirguard"
	configFileType = "yaml"
)

// validOutputFormats contains the list of supported report formats
var validOutputFormats = map[string]bool{
	OutputText: true,
	OutputJSON: true,
	OutputYAML: true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Report formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// LoadSettings reads settings from defaults, an optional config file and
// environment variables, in increasing order of precedence. An empty
// configPath searches the working directory and the XDG config home.
func LoadSettings(configPath string) (Settings, error) {
	v := viper.New()

	v.SetDefault("verbose", 0)
	v.SetDefault("no_color", false)
	v.SetDefault("output", OutputText)
	v.SetDefault("log_format", "json")

	if err := readConfigFile(v, configPath); err != nil {
		return Settings{}, err
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.BindEnv("verbose")
	v.BindEnv("no_color")
	v.BindEnv("output")
	v.BindEnv("log_format")

	// DIRGUARD_VERBOSE accepts either a number or a run of 'v's
	if verbose := v.GetString("verbose"); verbose != "" && strings.Trim(verbose, "v") == "" {
		v.Set("verbose", strings.Count(verbose, "v"))
	}

	s := Settings{
		Verbose:   v.GetInt("verbose"),
		NoColor:   v.GetBool("no_color"),
		Output:    strings.ToLower(v.GetString("output")),
		LogFormat: strings.ToLower(v.GetString("log_format")),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func readConfigFile(v *viper.Viper, configPath string) error {
	v.SetConfigType(configFileType)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configPath, err)
		}
		return nil
	}

	v.SetConfigName(configFileName)
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, "dirguard"))
	v.AddConfigPath(xdg.ConfigHome)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	return nil
}

// Validate checks if the settings are valid
func (s Settings) Validate() error {
	if s.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	if !validOutputFormats[s.Output] {
		return fmt.Errorf("invalid output format: must be one of [text json yaml]")
	}

	if !validLogFormats[s.LogFormat] {
		return fmt.Errorf("invalid log format: must be one of [json console]")
	}

	return nil
}
