package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled" yaml:"enabled"`
	Time     string   `mapstructure:"time" yaml:"time"`         // "20:00"
	Workdays []string `mapstructure:"workdays" yaml:"workdays"` // ["Mon",...,"Sun"]
	Holidays []string `mapstructure:"holidays" yaml:"holidays"` // ["2025-12-25"]
}

type StorageConfig struct {
	Key string `mapstructure:"key" yaml:"key"`
}

type QuotesConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

type NotificationsConfig struct {
	Desktop bool `mapstructure:"desktop" yaml:"desktop"`
}

type SentimentConfig struct {
	Positive []string `mapstructure:"positive" yaml:"positive"`
	Negative []string `mapstructure:"negative" yaml:"negative"`
}

type EncryptionConfig struct {
	Passphrase string `mapstructure:"passphrase" yaml:"passphrase"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

type Config struct {
	Theme         string              `mapstructure:"theme" yaml:"theme"`
	DataDir       string              `mapstructure:"data_dir" yaml:"data_dir"`
	Timezone      string              `mapstructure:"timezone" yaml:"timezone"` // e.g. "Asia/Kolkata" (optional)
	Storage       StorageConfig       `mapstructure:"storage" yaml:"storage"`
	Reminder      ReminderConfig      `mapstructure:"reminder" yaml:"reminder"`
	Quotes        QuotesConfig        `mapstructure:"quotes" yaml:"quotes"`
	Notifications NotificationsConfig `mapstructure:"notifications" yaml:"notifications"`
	Sentiment     SentimentConfig     `mapstructure:"sentiment" yaml:"sentiment"`
	Encryption    EncryptionConfig    `mapstructure:"encryption" yaml:"encryption"`
	Log           LogConfig           `mapstructure:"log" yaml:"log"`
}

func Default() Config {
	return Config{
		Theme:    "default",
		DataDir:  defaultDataDir(),
		Timezone: "",
		Storage:  StorageConfig{Key: "wellness-records"},
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "20:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Holidays: []string{},
		},
		Quotes:        QuotesConfig{Interval: 10 * time.Second},
		Notifications: NotificationsConfig{Desktop: false},
		Log:           LogConfig{Level: "info"},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".wellness")
	}
	return filepath.Join(home, ".local", "share", "wellness")
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "wellness")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Path is the default config file location.
func Path() (string, error) { return xdgConfigPath() }

// YAML renders c in config file form. A set passphrase is masked.
func (c Config) YAML() ([]byte, error) {
	if c.Encryption.Passphrase != "" {
		c.Encryption.Passphrase = "********"
	}
	return yaml.Marshal(c)
}

// WriteDefault writes the default config to path. An existing file is left
// alone and reported as an error.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	b, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Load reads ~/.config/wellness/config.yaml. A missing file yields defaults.
func Load() (Config, error) {
	path, err := xdgConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the YAML file at path, then applies WELLNESS_* environment
// overrides.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("WELLNESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("storage.key", cfg.Storage.Key)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("quotes.interval", cfg.Quotes.Interval)
	v.SetDefault("notifications.desktop", cfg.Notifications.Desktop)
	v.SetDefault("sentiment.positive", []string{})
	v.SetDefault("sentiment.negative", []string{})
	v.SetDefault("encryption.passphrase", "")
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", "")

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	days := c.Reminder.Workdays[:0]
	for _, d := range c.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) < 3 {
			continue
		}
		days = append(days, strings.ToUpper(d[:1])+strings.ToLower(d[1:3]))
	}
	c.Reminder.Workdays = days

	if strings.TrimSpace(c.Storage.Key) == "" {
		c.Storage.Key = Default().Storage.Key
	}
	if c.Quotes.Interval <= 0 {
		return fmt.Errorf("quotes.interval must be positive, got %s", c.Quotes.Interval)
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.DataDir, "wellness.log")
	}
	return nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// DatabasePath is the SQLite file holding the key-value store.
func (c Config) DatabasePath() string { return filepath.Join(c.DataDir, "wellness.db") }

// SaltPath is where the encryption salt lives, next to the database.
func (c Config) SaltPath() string { return filepath.Join(c.DataDir, "salt") }
