package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds Vitrine's application configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Gallery  GalleryConfig  `mapstructure:"gallery"`
	Speech   SpeechConfig   `mapstructure:"speech"`
	Log      LogConfig      `mapstructure:"log"`
	Announce AnnounceConfig `mapstructure:"announce"`
}

// APIConfig describes the collections search endpoint.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Query     string        `mapstructure:"query"`
	FetchSize int           `mapstructure:"fetch_size"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// GalleryConfig holds grid settings.
type GalleryConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// SpeechConfig selects the text-to-speech command. Empty auto-detects.
type SpeechConfig struct {
	Command string `mapstructure:"command"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// AnnounceConfig holds the live-region history location.
type AnnounceConfig struct {
	HistoryFile string `mapstructure:"history_file"`
}

// EnvPrefix prefixes environment overrides: VITRINE_API_QUERY and so on.
const EnvPrefix = "VITRINE"

const (
	defaultConfigPath  = "~/.config/vitrine/config.toml"
	defaultBaseURL     = "https://api.vam.ac.uk"
	defaultQuery       = "fashion"
	defaultFetchSize   = 30
	defaultTimeout     = 10 * time.Second
	defaultPageSize    = 12
	defaultLogLevel    = "info"
	defaultLogFile     = "~/.local/state/vitrine/vitrine.log"
	defaultHistoryFile = "~/.local/state/vitrine/announcements.log"
	maxFetchSize       = 100
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file or env override exists.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:   defaultBaseURL,
			Query:     defaultQuery,
			FetchSize: defaultFetchSize,
			Timeout:   defaultTimeout,
		},
		Gallery:  GalleryConfig{PageSize: defaultPageSize},
		Log:      LogConfig{Level: defaultLogLevel, File: mustExpand(defaultLogFile)},
		Announce: AnnounceConfig{HistoryFile: mustExpand(defaultHistoryFile)},
	}
}

// Load reads configuration from path (or the default location) and
// VITRINE_* environment variables. A missing file yields defaults; an
// unreadable file or an invalid value is an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(resolved)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q", c.API.BaseURL)
	}
	if c.API.FetchSize <= 0 || c.API.FetchSize > maxFetchSize {
		return fmt.Errorf("api.fetch_size must be between 1 and %d, got %d", maxFetchSize, c.API.FetchSize)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.Gallery.PageSize <= 0 {
		return fmt.Errorf("gallery.page_size must be positive, got %d", c.Gallery.PageSize)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", defaultBaseURL)
	v.SetDefault("api.query", defaultQuery)
	v.SetDefault("api.fetch_size", defaultFetchSize)
	v.SetDefault("api.timeout", defaultTimeout)
	v.SetDefault("gallery.page_size", defaultPageSize)
	v.SetDefault("speech.command", "")
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.file", defaultLogFile)
	v.SetDefault("announce.history_file", defaultHistoryFile)
}

func normalize(c *Config) {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	c.API.Query = strings.TrimSpace(c.API.Query)
	if c.API.Query == "" {
		c.API.Query = defaultQuery
	}
	c.Speech.Command = strings.TrimSpace(c.Speech.Command)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	c.Log.File = expandOrEmpty(c.Log.File)
	c.Announce.HistoryFile = expandOrEmpty(c.Announce.HistoryFile)
}

// expandOrEmpty keeps an explicitly blank path blank; it disables the file.
func expandOrEmpty(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	return mustExpand(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
