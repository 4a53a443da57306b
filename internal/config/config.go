// Package config loads and validates lexindex configuration.
//
// Configuration is layered, each layer overriding the one below:
//
//  1. Hardcoded defaults
//  2. User config (~/.config/lexindex/config.yaml)
//  3. Project config (.lexindex.yaml in project root)
//  4. Environment variables (LEXINDEX_*)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ordinalab/lexindex/pkg/lexindex"
)

// Config represents the complete lexindex configuration.
type Config struct {
	Version  int            `yaml:"version" json:"version"`
	Alphabet AlphabetConfig `yaml:"alphabet" json:"alphabet"`
	Output   OutputConfig   `yaml:"output" json:"output"`
	Server   ServerConfig   `yaml:"server" json:"server"`
	Check    CheckConfig    `yaml:"check" json:"check"`
	Play     PlayConfig     `yaml:"play" json:"play"`
}

// AlphabetConfig selects the symbol set used for key generation.
type AlphabetConfig struct {
	// Symbols is the ordered symbol set. Must hold at least three distinct
	// printable ASCII bytes in ascending order.
	Symbols string `yaml:"symbols" json:"symbols"`
}

// OutputConfig configures terminal output.
type OutputConfig struct {
	// NoColor disables ANSI styling even on a TTY.
	NoColor bool `yaml:"no_color" json:"no_color"`
	// Quiet suppresses status lines; only results are printed.
	Quiet bool `yaml:"quiet" json:"quiet"`
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	Transport string `yaml:"transport" json:"transport"`
	LogLevel  string `yaml:"log_level" json:"log_level"`
	// MetricsWindow is how many recent operations the stats tool keeps.
	MetricsWindow int `yaml:"metrics_window" json:"metrics_window"`
}

// CheckConfig configures key-file checking.
type CheckConfig struct {
	// Workers caps concurrent file checks. 0 means one per CPU.
	Workers int `yaml:"workers" json:"workers"`
	// MaxErrors stops a file scan after this many findings. 0 reports all.
	MaxErrors int `yaml:"max_errors" json:"max_errors"`
}

// PlayConfig configures the interactive playground.
type PlayConfig struct {
	// InitialCount seeds the playground with this many keys.
	InitialCount int `yaml:"initial_count" json:"initial_count"`
}

// NewConfig creates a new Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Alphabet: AlphabetConfig{
			Symbols: lexindex.StandardAlphabet,
		},
		Output: OutputConfig{
			NoColor: false,
			Quiet:   false,
		},
		Server: ServerConfig{
			Transport: "stdio",
			LogLevel:  "debug", // Debug by default to aid troubleshooting
			// 512 recent operations is plenty for the stats tool and cheap
			// to keep.
			MetricsWindow: 512,
		},
		Check: CheckConfig{
			Workers:   0, // One per CPU
			MaxErrors: 0, // Report everything
		},
		Play: PlayConfig{
			InitialCount: 4,
		},
	}
}

// GetUserConfigPath returns the path to the user/global configuration file.
// It follows XDG Base Directory specification:
//   - $XDG_CONFIG_HOME/lexindex/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/lexindex/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lexindex", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback - should rarely happen
		return filepath.Join(os.TempDir(), ".config", "lexindex", "config.yaml")
	}
	return filepath.Join(home, ".config", "lexindex", "config.yaml")
}

// GetUserConfigDir returns the directory containing the user configuration.
func GetUserConfigDir() string {
	return filepath.Dir(GetUserConfigPath())
}

// UserConfigExists returns true if the user configuration file exists.
func UserConfigExists() bool {
	return fileExists(GetUserConfigPath())
}

// loadUserConfig loads the user/global configuration file if it exists.
// Returns nil config and nil error if the file doesn't exist (that's OK).
func loadUserConfig() (*Config, error) {
	configPath := GetUserConfigPath()

	if !fileExists(configPath) {
		return nil, nil // No user config is fine
	}

	cfg := NewConfig()
	if err := cfg.loadYAML(configPath); err != nil {
		return nil, fmt.Errorf("failed to load user config from %s: %w", configPath, err)
	}

	return cfg, nil
}

// LoadUserConfig loads the user configuration file.
// Returns nil config and nil error if the file doesn't exist.
func LoadUserConfig() (*Config, error) {
	return loadUserConfig()
}

// Load loads configuration for the given project directory.
// It applies configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User/global config (~/.config/lexindex/config.yaml)
//  3. Project config (.lexindex.yaml in project root)
//  4. Environment variables (LEXINDEX_*)
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	// Step 1: Load user/global config (if exists)
	if userCfg, err := loadUserConfig(); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	} else if userCfg != nil {
		cfg.mergeWith(userCfg)
	}

	// Step 2: Load project config (overrides user config)
	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	// Step 3: Apply environment variable overrides (highest precedence)
	cfg.applyEnvOverrides()

	// Step 4: Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFromFile attempts to load configuration from .lexindex.yaml or .lexindex.yml.
func (c *Config) loadFromFile(dir string) error {
	// Try .yaml first (takes precedence)
	yamlPath := filepath.Join(dir, ".lexindex.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return c.loadYAML(yamlPath)
	}

	// Try .yml as fallback
	ymlPath := filepath.Join(dir, ".lexindex.yml")
	if _, err := os.Stat(ymlPath); err == nil {
		return c.loadYAML(ymlPath)
	}

	// No config file is fine - use defaults
	return nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Use a temporary struct for parsing to detect type errors
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Merge parsed values with defaults (only non-zero values)
	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}

	if other.Alphabet.Symbols != "" {
		c.Alphabet.Symbols = other.Alphabet.Symbols
	}

	// Output flags can only be switched on by lower layers; a file cannot
	// force color back on once the user disabled it.
	if other.Output.NoColor {
		c.Output.NoColor = true
	}
	if other.Output.Quiet {
		c.Output.Quiet = true
	}

	// Server
	if other.Server.Transport != "" {
		c.Server.Transport = other.Server.Transport
	}
	if other.Server.LogLevel != "" {
		c.Server.LogLevel = other.Server.LogLevel
	}
	if other.Server.MetricsWindow != 0 {
		c.Server.MetricsWindow = other.Server.MetricsWindow
	}

	// Check
	if other.Check.Workers != 0 {
		c.Check.Workers = other.Check.Workers
	}
	if other.Check.MaxErrors != 0 {
		c.Check.MaxErrors = other.Check.MaxErrors
	}

	// Play
	if other.Play.InitialCount != 0 {
		c.Play.InitialCount = other.Play.InitialCount
	}
}

// applyEnvOverrides applies LEXINDEX_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LEXINDEX_ALPHABET"); v != "" {
		c.Alphabet.Symbols = v
	}
	if v := os.Getenv("LEXINDEX_NO_COLOR"); v != "" {
		c.Output.NoColor = isTruthy(v)
	}
	if v := os.Getenv("LEXINDEX_QUIET"); v != "" {
		c.Output.Quiet = isTruthy(v)
	}
	if v := os.Getenv("LEXINDEX_LOG_LEVEL"); v != "" {
		c.Server.LogLevel = v
	}
	if v := os.Getenv("LEXINDEX_TRANSPORT"); v != "" {
		c.Server.Transport = v
	}
	if v := os.Getenv("LEXINDEX_METRICS_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Server.MetricsWindow = n
		}
	}
	if v := os.Getenv("LEXINDEX_CHECK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Check.Workers = n
		}
	}
	if v := os.Getenv("LEXINDEX_PLAY_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Play.InitialCount = n
		}
	}
}

// isTruthy interprets common boolean spellings used in environment variables.
func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	// The alphabet rules live in one place: the engine constructor.
	if _, err := lexindex.New(c.Alphabet.Symbols); err != nil {
		return fmt.Errorf("alphabet.symbols: %w", err)
	}

	// Validate transport
	if strings.ToLower(c.Server.Transport) != "stdio" {
		return fmt.Errorf("server.transport must be 'stdio', got %s", c.Server.Transport)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Server.LogLevel)] {
		return fmt.Errorf("server.log_level must be 'debug', 'info', 'warn', or 'error', got %s", c.Server.LogLevel)
	}

	if c.Server.MetricsWindow < 1 || c.Server.MetricsWindow > 100000 {
		return fmt.Errorf("server.metrics_window must be between 1 and 100000, got %d", c.Server.MetricsWindow)
	}

	if c.Check.Workers < 0 || c.Check.Workers > 1024 {
		return fmt.Errorf("check.workers must be between 0 and 1024, got %d", c.Check.Workers)
	}
	if c.Check.MaxErrors < 0 {
		return fmt.Errorf("check.max_errors must be non-negative, got %d", c.Check.MaxErrors)
	}

	if c.Play.InitialCount < 1 || c.Play.InitialCount > 100 {
		return fmt.Errorf("play.initial_count must be between 1 and 100, got %d", c.Play.InitialCount)
	}

	return nil
}

// Indexer builds the key generator selected by this configuration.
// Call after Validate; an invalid alphabet fails here the same way.
func (c *Config) Indexer() (*lexindex.Indexer, error) {
	return lexindex.New(c.Alphabet.Symbols)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindProjectRoot finds the project root directory.
// It looks for a .git directory or .lexindex.yaml/.yml file by walking up the
// directory tree, and falls back to the starting directory.
func FindProjectRoot(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	currentDir := absDir
	for {
		if dirExists(filepath.Join(currentDir, ".git")) {
			return currentDir, nil
		}

		if fileExists(filepath.Join(currentDir, ".lexindex.yaml")) ||
			fileExists(filepath.Join(currentDir, ".lexindex.yml")) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, return original directory
			return absDir, nil
		}
		currentDir = parentDir
	}
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// dirExists checks if a directory exists.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
