package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const appName = "animewatch"

var envKeyReplacer = strings.NewReplacer(".", "_")

// DataFileName is the default name of the watchlist file.
const DataFileName = "animewatch_data.json"

// Config holds all application configuration
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StoreConfig selects where the watchlist lives
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // "json", "bolt" or "sqlite"
	Path    string `mapstructure:"path"`    // Data file or database path
}

// UIConfig holds appearance settings remembered between sessions
type UIConfig struct {
	DarkMode    bool `mapstructure:"dark_mode"`
	Scale       int  `mapstructure:"scale"`        // Text scale, 8 and up
	ShowDetails bool `mapstructure:"show_details"` // Details panel visible on start
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "json",
			Path:    filepath.Join(defaultDataPath(), DataFileName),
		},
		UI: UIConfig{
			DarkMode:    false,
			Scale:       11,
			ShowDetails: false,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), appName+".log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the per-OS directory for the watchlist and log
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName)
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultConfigDir(), ".")
}

// LoadConfigFrom loads config.yaml from the first dir that has one.
// ANIMEWATCH_* environment variables override file values.
func LoadConfigFrom(dirs ...string) (*Config, error) {
	cfg := DefaultConfig()

	v := newViper(cfg)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Store.Path = ExpandHome(cfg.Store.Path)
	cfg.Logging.File = ExpandHome(cfg.Logging.File)
	return cfg, nil
}

// newViper returns a viper instance seeded with cfg as defaults, so that
// environment overrides apply to every known key.
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for key, value := range configValues(cfg) {
		v.SetDefault(key, value)
	}

	// Environment variable overrides, e.g. ANIMEWATCH_STORE_BACKEND
	v.SetEnvPrefix("ANIMEWATCH")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	return v
}

// configValues flattens cfg into snake_case viper keys
func configValues(cfg *Config) map[string]any {
	return map[string]any{
		"store.backend":   cfg.Store.Backend,
		"store.path":      cfg.Store.Path,
		"ui.dark_mode":    cfg.UI.DarkMode,
		"ui.scale":        cfg.UI.Scale,
		"ui.show_details": cfg.UI.ShowDetails,
		"logging.file":    cfg.Logging.File,
		"logging.level":   cfg.Logging.Level,
	}
}

// SaveConfig saves the configuration to config.yaml in the default config dir
func SaveConfig(cfg *Config) error {
	return SaveConfigTo(DefaultConfigDir(), cfg)
}

// SaveConfigTo writes cfg as dir/config.yaml
func SaveConfigTo(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v := viper.New()
	for key, value := range configValues(cfg) {
		v.Set(key, value)
	}

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
