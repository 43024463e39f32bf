package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	mdwerror "github.com/msto63/sable/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "SABLE_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Parser  ParserConfig  `toml:"parser"`
	Output  OutputConfig  `toml:"output"`
	Journal JournalConfig `toml:"journal"`
	Server  ServerConfig  `toml:"server"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	DataDir   string `toml:"data_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	// MaxTokens rejects larger token streams; 0 disables the limit
	MaxTokens int `toml:"max_tokens"`
}

// OutputConfig controls how parsed forms are printed
type OutputConfig struct {
	Format string `toml:"format"` // sexpr, tree, json or yaml
	Color  bool   `toml:"color"`
}

// JournalConfig holds the parse journal settings
type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// ServerConfig holds parse service settings
type ServerConfig struct {
	Host             string   `toml:"host"`
	Port             int      `toml:"port"`
	RequestTimeout   Duration `toml:"request_timeout"`
	EnableReflection bool     `toml:"enable_reflection"`
	CacheSize        int      `toml:"cache_size"`
	CacheTTL         Duration `toml:"cache_ttl"`
}

// Duration wraps time.Duration for TOML parsing
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

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.Journal.Enabled = true
	cfg.Output.Color = true
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load")
	}

	// Booleans that default to true must be set before decoding.
	cfg := Config{}
	cfg.Journal.Enabled = true
	cfg.Output.Color = true

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path).
			WithOperation("config.Load")
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from SABLE_CONFIG or the default locations
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set " + EnvConfigPath + " or create configs/sable.toml").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	return []string{
		"./configs/sable.toml",
		"./sable.toml",
		filepath.Join(os.Getenv("HOME"), ".config/sable/sable.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "sable"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Output.Format == "" {
		c.Output.Format = "sexpr"
	}

	if c.Journal.Path == "" {
		c.Journal.Path = filepath.Join(c.General.DataDir, "journal.db")
	}

	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 9470
	}
	if c.Server.RequestTimeout.Duration == 0 {
		c.Server.RequestTimeout = Duration{10 * time.Second}
	}
	if c.Server.CacheSize == 0 {
		c.Server.CacheSize = 1024
	}
	if c.Server.CacheTTL.Duration == 0 {
		c.Server.CacheTTL = Duration{5 * time.Minute}
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Journal.Path = os.ExpandEnv(c.Journal.Path)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var problems []string

	switch c.Output.Format {
	case "sexpr", "tree", "json", "yaml":
	default:
		problems = append(problems, fmt.Sprintf("output.format %q is not one of sexpr, tree, json, yaml", c.Output.Format))
	}
	switch c.General.LogFormat {
	case "json", "text", "console", "logfmt":
	default:
		problems = append(problems, fmt.Sprintf("general.log_format %q is not one of json, text, console, logfmt", c.General.LogFormat))
	}
	if c.Parser.MaxTokens < 0 {
		problems = append(problems, "parser.max_tokens must not be negative")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if c.Server.CacheSize < 0 {
		problems = append(problems, "server.cache_size must not be negative")
	}

	if len(problems) > 0 {
		return mdwerror.New("invalid configuration: "+strings.Join(problems, "; ")).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Validate")
	}
	return nil
}

// ServerAddress returns host:port of the parse service
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
