package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. HSKDECK_STORAGE_DRIVER.
const EnvPrefix = "HSKDECK"

// Config holds all configuration for our application
type Config struct {
	DataDir  string         `mapstructure:"data_dir"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Stats    StatsConfig    `mapstructure:"stats"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	Matching MatchingConfig `mapstructure:"matching"`
	Writing  WritingConfig  `mapstructure:"writing"`
	Log      LogConfig      `mapstructure:"log"`
}

// StorageConfig selects the key-value backend for persisted progress
type StorageConfig struct {
	Driver   string `mapstructure:"driver"`
	Path     string `mapstructure:"path"`
	DSN      string `mapstructure:"dsn"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// CatalogConfig points at an optional directory of hsk{N}.json files
type CatalogConfig struct {
	Dir string `mapstructure:"dir"`
}

// StatsConfig tunes the aggregate statistics engine
type StatsConfig struct {
	ScopeByLevel bool `mapstructure:"scope_by_level"`
}

// QuizConfig holds quiz screen settings
type QuizConfig struct {
	AutoAdvance time.Duration `mapstructure:"auto_advance"`
	OptionCount int           `mapstructure:"option_count"`
}

// MatchingConfig holds matching game settings
type MatchingConfig struct {
	Pairs int `mapstructure:"pairs"`
}

// WritingConfig holds writing practice settings
type WritingConfig struct {
	BatchSize int `mapstructure:"batch_size"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads configuration from .env, the config file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	if file := viper.GetString("config"); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("hskdeck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".hskdeck"))
		}
	}

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.normalize()

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("data_dir", defaultDataDir())

	// Storage defaults
	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.path", "")
	viper.SetDefault("storage.dsn", "")
	viper.SetDefault("storage.max_conns", 4)

	viper.SetDefault("catalog.dir", "")
	viper.SetDefault("stats.scope_by_level", false)

	// Practice defaults
	viper.SetDefault("quiz.auto_advance", time.Second)
	viper.SetDefault("quiz.option_count", 4)
	viper.SetDefault("matching.pairs", 4)
	viper.SetDefault("writing.batch_size", 10)

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("log.file", "")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hskdeck"
	}
	return filepath.Join(home, ".hskdeck")
}

func (c *Config) normalize() {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Quiz.OptionCount < 2 {
		c.Quiz.OptionCount = 2
	}
	if c.Quiz.AutoAdvance < 0 {
		c.Quiz.AutoAdvance = 0
	}
	if c.Matching.Pairs < 1 {
		c.Matching.Pairs = 1
	}
	if c.Writing.BatchSize < 0 {
		c.Writing.BatchSize = 0
	}
}

// StoragePath returns the file used by file-based backends, defaulting inside DataDir
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch c.Storage.Driver {
	case "sqlite", "sqlite3":
		return filepath.Join(c.DataDir, "hskdeck.db")
	default:
		return filepath.Join(c.DataDir, "progress.json")
	}
}

// LogPath returns the log file used while a terminal screen owns stdout
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, "hskdeck.log")
}
