// Package config loads and validates tool configuration from an optional
// YAML file, RECIPEMD_* environment variables, and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all settings for one invocation.
type Config struct {
	// OutputDir is where saved markdown and image files land.
	OutputDir string `mapstructure:"directory"`
	// ShowYield and ShowTotalTime toggle the matching header lines.
	ShowYield     bool `mapstructure:"yield"`
	ShowTotalTime bool `mapstructure:"time"`
	// WildMode allows scraping hosts missing from the supported-site
	// registry, as long as the page carries structured recipe data.
	WildMode  bool          `mapstructure:"wild_mode"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`

	// Translation service settings (LibreTranslate-compatible endpoint).
	TranslateEndpoint string `mapstructure:"translate_endpoint"`
	TranslateTarget   string `mapstructure:"translate_target"`
	TranslateAPIKey   string `mapstructure:"translate_api_key"`

	// MetricsAddr, when non-empty, serves the Prometheus registry during
	// batch runs (e.g. ":9090").
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Default returns the settings used when no config file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		OutputDir:         defaultOutputDir(),
		ShowYield:         true,
		ShowTotalTime:     true,
		WildMode:          true,
		UserAgent:         "recipemd/1.0 (+https://github.com/recipemd/recipemd)",
		Timeout:           15 * time.Second,
		TranslateEndpoint: "https://libretranslate.com",
		TranslateTarget:   "en",
	}
}

// Load reads settings with viper. An explicit path must exist; the default
// location is optional. Environment variables use the RECIPEMD_ prefix
// (e.g. RECIPEMD_DIRECTORY, RECIPEMD_TRANSLATE_TARGET).
func Load(path string) (*Config, error) {
	defaults := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("directory", defaults.OutputDir)
	v.SetDefault("yield", defaults.ShowYield)
	v.SetDefault("time", defaults.ShowTotalTime)
	v.SetDefault("wild_mode", defaults.WildMode)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("translate_endpoint", defaults.TranslateEndpoint)
	v.SetDefault("translate_target", defaults.TranslateTarget)
	v.SetDefault("translate_api_key", "")
	v.SetDefault("metrics_addr", "")

	v.SetEnvPrefix("recipemd")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.TranslateEndpoint == "" {
		return fmt.Errorf("translate endpoint cannot be empty")
	}
	parsed, err := url.Parse(c.TranslateEndpoint)
	if err != nil {
		return fmt.Errorf("invalid translate endpoint: %w", err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("translate endpoint must include a host")
	}
	if c.TranslateTarget == "" {
		return fmt.Errorf("translate target language cannot be empty")
	}
	if len(c.TranslateTarget) > 5 {
		return fmt.Errorf("translate target must be a language code, got %q", c.TranslateTarget)
	}
	return nil
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "recipemd")
	}
	return "."
}

func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "recipes"
	}
	return filepath.Join(home, "recipes")
}
