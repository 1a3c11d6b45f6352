// Package config handles loading and parsing of lazysurvey configuration.
// Configuration is loaded from ~/.lazysurvey/config.yaml or ./config.yaml,
// and every key can be overridden from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LAZYSURVEY_AUTH_USERNAME.
const EnvPrefix = "LAZYSURVEY"

// Config is the root configuration structure for lazysurvey.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Data   DataConfig   `mapstructure:"data"`
	Photos PhotosConfig `mapstructure:"photos"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
	Dedupe DedupeConfig `mapstructure:"dedupe"`
}

// UIConfig contains user interface configuration options.
type UIConfig struct {
	// NerdFontsVersion selects the icon set: "2", "3", or "" to disable icons
	NerdFontsVersion string      `mapstructure:"nerdFontsVersion"`
	ShowIcons        bool        `mapstructure:"showIcons"`
	Theme            ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig defines the color scheme for the terminal UI.
// Colors can be specified as:
//   - Named colors: "cyan", "blue", "red", "green", "yellow", "magenta", "white", "black", "default"
//   - Hex colors: "#ed8796"
//   - 256-color numbers: "0" to "255"
//   - Attributes: "bold", "underline", "reverse"
type ThemeConfig struct {
	// ActiveBorderColor is the color of the focused panel's border and title
	ActiveBorderColor []string `mapstructure:"activeBorderColor"`
	// InactiveBorderColor is the color of unfocused panel borders
	InactiveBorderColor []string `mapstructure:"inactiveBorderColor"`
	// FilterBorderColor is the border color of a panel with a committed search
	FilterBorderColor []string `mapstructure:"filterBorderColor"`
	// OptionsTextColor is the color of help text in the footer
	OptionsTextColor []string `mapstructure:"optionsTextColor"`
	// SelectedLineBgColor is the background color of the highlighted row
	SelectedLineBgColor []string `mapstructure:"selectedLineBgColor"`
	// ReferenceColor is the color of cross-reference links in record text
	ReferenceColor []string `mapstructure:"referenceColor"`
}

// DataConfig points at the feature document.
type DataConfig struct {
	// Source is a file path or an http(s) URL
	Source string `mapstructure:"source"`
}

// PhotosConfig controls photo URL resolution.
type PhotosConfig struct {
	// BaseURL is prefixed to every photo filename
	BaseURL string `mapstructure:"baseURL"`
}

// AuthConfig holds the credentials the sign-in screen expects.
type AuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DedupeConfig holds defaults for the dedupe command.
type DedupeConfig struct {
	Key string `mapstructure:"key"`
}

// legacyEnv maps config keys to the variable names the web build used.
var legacyEnv = map[string]string{
	"photos.baseURL": "VITE_PHOTO_LINK",
	"auth.username":  "VITE_AUTH_USERNAME",
	"auth.password":  "VITE_AUTH_PASSWORD",
}

// Dir returns the per-user configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lazysurvey")
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.nerdFontsVersion", "")
	v.SetDefault("ui.showIcons", false)
	v.SetDefault("ui.theme.activeBorderColor", []string{"cyan"})
	v.SetDefault("ui.theme.inactiveBorderColor", []string{"default"})
	v.SetDefault("ui.theme.filterBorderColor", []string{"yellow"})
	v.SetDefault("ui.theme.optionsTextColor", []string{"cyan"})
	v.SetDefault("ui.theme.selectedLineBgColor", []string{"blue"})
	v.SetDefault("ui.theme.referenceColor", []string{"cyan", "underline"})

	v.SetDefault("data.source", "features.json")
	v.SetDefault("photos.baseURL", "")
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "pompeii2025")

	logFile := ""
	if dir := Dir(); dir != "" {
		logFile = filepath.Join(dir, "lazysurvey.log")
	}
	v.SetDefault("log.file", logFile)
	v.SetDefault("log.level", "info")

	v.SetDefault("dedupe.key", "FEATURE_ID")
}

// LoadConfig loads configuration from file, environment, or defaults.
// When cfgFile is empty it searches for config.yaml in ~/.lazysurvey/ and
// the current directory; a missing file is not an error.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, errors.Wrapf(err, "bind %s", env)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgFile)
		}
	} else {
		// Create config directory if it doesn't exist
		if dir := Dir(); dir != "" {
			if err := os.MkdirAll(dir, 0755); err == nil {
				v.AddConfigPath(dir)
			}
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return config, nil
}
