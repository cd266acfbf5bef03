package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Keys map[string][]string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ASCIIGlyphs bool   `mapstructure:"ascii_glyphs"`
	Orientation string `mapstructure:"orientation"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// FIELDSET_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.ascii_glyphs", false)
	v.SetDefault("ui.orientation", "vertical")
	v.SetDefault("keys", map[string][]string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FIELDSET_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fieldset"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FIELDSET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Orientation() != "vertical" && c.Orientation() != "horizontal" {
		return Config{}, fmt.Errorf("ui.orientation: %q is not vertical or horizontal", c.UI.Orientation)
	}
	return c, nil
}

// Orientation returns the normalized layout default.
func (c Config) Orientation() string {
	return strings.ToLower(strings.TrimSpace(c.UI.Orientation))
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the demo to persist non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("FIELDSET_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "fieldset", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.ascii_glyphs", cfg.UI.ASCIIGlyphs)
	v.Set("ui.orientation", cfg.UI.Orientation)
	v.Set("keys", cfg.Keys)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
