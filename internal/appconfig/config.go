// Package appconfig provides configuration management for sshez using Viper.
package appconfig

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// AppName is the application name used for config directory naming.
const AppName = "sshez"

// Keys understood in config.yaml and, upper-cased with the SSHEZ_ prefix, in
// the environment.
const (
	KeySSHConfig   = "ssh_config"
	KeyVerbose     = "verbose"
	KeyPresetsFile = "presets_file"
	KeyColor       = "color"
)

// Config represents the sshez configuration.
type Config struct {
	// SSHConfig is the ssh client config file aliases are stored in.
	SSHConfig   string `mapstructure:"ssh_config" yaml:"ssh_config"`
	Verbose     bool   `mapstructure:"verbose" yaml:"verbose"`
	PresetsFile string `mapstructure:"presets_file" yaml:"presets_file"`
	Color       bool   `mapstructure:"color" yaml:"color"`
}

// Dir returns <XDG config home>/sshez.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix("SSHEZ")
	viper.AutomaticEnv()

	viper.SetDefault(KeySSHConfig, "~/.ssh/config")
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyPresetsFile, filepath.Join(Dir(), "presets.yaml"))
	viper.SetDefault(KeyColor, true)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file is
// an error. If path is empty, a missing file in the default location is not.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.SSHConfig) == "" {
		return errors.Newf("%s cannot be empty", KeySSHConfig)
	}
	return nil
}
