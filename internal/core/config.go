package core

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	oerrors "github.com/Fuabioo/obsidian-mcp/internal/errors"
)

// DefaultAPIURL is where the Obsidian Local REST API plugin listens for HTTPS.
const DefaultAPIURL = "https://127.0.0.1:27124"

// envPrefix maps config keys to environment variables: api.key -> OBSIDIAN_API_KEY.
const envPrefix = "OBSIDIAN"

// Config holds global configuration for obsidian-mcp.
type Config struct {
	API APIConfig `mapstructure:"api" json:"api" yaml:"api"`
	Log LogConfig `mapstructure:"log" json:"log" yaml:"log"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-" json:"-" yaml:"-"`
}

// APIConfig holds the connection settings for the local REST API.
type APIConfig struct {
	Key                string `mapstructure:"key" json:"key" yaml:"key"`
	URL                string `mapstructure:"url" json:"url" yaml:"url"`
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify" json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	CACert             string `mapstructure:"ca_cert" json:"ca_cert" yaml:"ca_cert"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

// LoadOptions controls where LoadConfig looks for values beyond defaults and env.
type LoadOptions struct {
	// ConfigFile is an explicit config file path. When empty, config.{yaml,json,toml}
	// is looked up in ConfigDir and silently skipped if absent.
	ConfigFile string
	// Flags are bound to config keys when they were set on the command line.
	Flags *pflag.FlagSet
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"api-url":    "api.url",
	"insecure":   "api.insecure_skip_verify",
	"ca-cert":    "api.ca_cert",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:                DefaultAPIURL,
			InsecureSkipVerify: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig resolves configuration from, in increasing precedence:
// defaults, the config file, OBSIDIAN_* environment variables and flags.
// It does not validate; call Validate before talking to the API.
func LoadConfig(opts LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, oerrors.InvalidConfig("config", err)
	}
	cfg.Source = v.ConfigFileUsed()

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv picks it up during Unmarshal.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("api.key", defaults.API.Key)
	v.SetDefault("api.url", defaults.API.URL)
	v.SetDefault("api.insecure_skip_verify", defaults.API.InsecureSkipVerify)
	v.SetDefault("api.ca_cert", defaults.API.CACert)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return oerrors.InvalidConfig("config file", err)
		}
		return nil
	}

	dir, err := ConfigDir()
	if err != nil {
		// No home directory: run on defaults and env only
		return nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return oerrors.InvalidConfig("config file", err)
	}
	return nil
}

// Validate checks the settings needed to reach the API.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return oerrors.MissingAPIKey()
	}

	u, err := url.Parse(c.API.URL)
	if err != nil {
		return oerrors.InvalidConfig("api.url", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return oerrors.InvalidConfig("api.url", fmt.Errorf("scheme must be http or https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return oerrors.InvalidConfig("api.url", fmt.Errorf("missing host"))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return oerrors.InvalidConfig("log.level", fmt.Errorf("must be one of debug, info, warn, error"))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return oerrors.InvalidConfig("log.format", fmt.Errorf("must be text or json"))
	}

	return nil
}

// Redacted returns a copy safe to print, with the API key masked.
func (c *Config) Redacted() *Config {
	out := *c
	if out.API.Key != "" {
		out.API.Key = "********"
	}
	return &out
}
