package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jask/designplay/internal/scene"
)

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"

	DefaultSession = "default"
)

// Config holds application configuration.
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
}

// StoreConfig selects where the session snapshot lives.
type StoreConfig struct {
	Driver  string        `mapstructure:"driver"`
	Path    string        `mapstructure:"path"`
	Session string        `mapstructure:"session"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Theme overrides the persisted layout theme when set.
	Theme          string        `mapstructure:"theme"`
	Scale          float64       `mapstructure:"scale"`
	TrayCloseDelay time.Duration `mapstructure:"tray_close_delay"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "designplay")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "designplay")
}

// Path is the config file location: DESIGNPLAY_CONFIG or the user config dir.
func Path() string {
	if p := os.Getenv("DESIGNPLAY_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "designplay", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.path", filepath.Join(dataDir(), "designplay.db"))
	v.SetDefault("store.session", DefaultSession)
	v.SetDefault("store.ttl", 24*time.Hour)
	v.SetDefault("ui.theme", "")
	v.SetDefault("ui.scale", 0.75)
	v.SetDefault("ui.tray_close_delay", scene.TrayCloseDelay)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dataDir(), "designplay.log"))
}

// Load reads configuration from .env, file and env. Env var overrides use prefix DESIGNPLAY_.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("DESIGNPLAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverFile, DriverMemory:
	default:
		return fmt.Errorf("store.driver: unknown driver %q", c.Store.Driver)
	}
	if c.Store.Driver != DriverMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path: required for driver %q", c.Store.Driver)
	}
	if c.Store.Driver == DriverSQLite && c.Store.Session == "" {
		return fmt.Errorf("store.session: required for driver %q", c.Store.Driver)
	}
	if c.Store.TTL < 0 {
		return fmt.Errorf("store.ttl: must not be negative")
	}
	if c.UI.Theme != "" && !scene.Valid(scene.ThemeMode(c.UI.Theme), scene.ThemeModes) {
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}
	if c.UI.Scale <= 0 {
		return fmt.Errorf("ui.scale: must be positive")
	}
	if c.UI.TrayCloseDelay <= 0 {
		return fmt.Errorf("ui.tray_close_delay: must be positive")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("store.driver", cfg.Store.Driver)
	v.Set("store.path", cfg.Store.Path)
	v.Set("store.session", cfg.Store.Session)
	v.Set("store.ttl", cfg.Store.TTL.String())
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.scale", cfg.UI.Scale)
	v.Set("ui.tray_close_delay", cfg.UI.TrayCloseDelay.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
