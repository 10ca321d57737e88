package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "CHRONOS_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Cache   CacheConfig   `toml:"cache" yaml:"cache"`
	Store   StoreConfig   `toml:"store" yaml:"store"`

	// Source is the file the configuration was read from, if any
	Source string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	DataDir   string `toml:"data_dir" yaml:"data_dir"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// ParserConfig holds the default parser settings
type ParserConfig struct {
	Locale      string `toml:"locale" yaml:"locale"`
	RoundRanges bool   `toml:"round_ranges" yaml:"round_ranges"`
	UseUTC      *bool  `toml:"use_utc" yaml:"use_utc"`
}

// CacheConfig holds parse result cache settings
type CacheConfig struct {
	MaxItems int      `toml:"max_items" yaml:"max_items"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
}

// StoreConfig holds the settings database location
type StoreConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration string
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIOError).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.Source = path
	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultPaths returns the locations searched when no path is given
func DefaultPaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		"./chronos.toml",
		"./chronos.yaml",
		filepath.Join(home, ".config", "chronos", "config.toml"),
		filepath.Join(home, ".config", "chronos", "config.yaml"),
	}
}

// LoadFromEnv loads configuration from the CHRONOS_CONFIG environment
// variable or the first existing default path. Without any file the
// defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "chronos"
	}
	if c.General.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.General.DataDir = filepath.Join(home, ".local", "share", "chronos")
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Parser
	if c.Parser.Locale == "" {
		c.Parser.Locale = "en"
	}
	if c.Parser.UseUTC == nil {
		useUTC := true
		c.Parser.UseUTC = &useUTC
	}

	// Cache
	if c.Cache.MaxItems == 0 {
		c.Cache.MaxItems = 64
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 10 * time.Minute
	}

	// Store
	if c.Store.Path == "" {
		c.Store.Path = filepath.Join(c.General.DataDir, "settings.db")
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
	c.Store.Path = os.ExpandEnv(c.Store.Path)
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if c.Cache.MaxItems < 0 {
		return mdwerror.Newf("cache.max_items must not be negative: %d", c.Cache.MaxItems).
			WithCode(mdwerror.CodeInvalidConfig)
	}
	if c.Cache.TTL.Duration < 0 {
		return mdwerror.Newf("cache.ttl must not be negative: %s", c.Cache.TTL.Duration).
			WithCode(mdwerror.CodeInvalidConfig)
	}
	switch strings.ToLower(c.General.LogFormat) {
	case "json", "text", "console":
	default:
		return mdwerror.Newf("general.log_format must be json, text or console: %s", c.General.LogFormat).
			WithCode(mdwerror.CodeInvalidConfig)
	}
	return nil
}

// UsesUTC reports the effective use_utc setting
func (c *Config) UsesUTC() bool {
	return c.Parser.UseUTC == nil || *c.Parser.UseUTC
}
