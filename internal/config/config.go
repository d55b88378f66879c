// Package config loads the TOML configuration file. Every field is optional;
// a missing file yields pure defaults so the CLI works out of the box.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	DBPath string         `toml:"db_path"`
	Log    LogConfig      `toml:"log"`
	Kakao  KakaoConfig    `toml:"kakao"`
	AI     AIConfig       `toml:"ai"`
	Home   LocationConfig `toml:"home"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type KakaoConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

type AIConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// LocationConfig is the user's home location, used as the origin for nearby
// place lookup. Zero coordinates mean "not configured".
type LocationConfig struct {
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Address   string  `toml:"address"`
}

func (l LocationConfig) IsSet() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".stepquest.toml"), nil
}

// Load reads the config at path. A missing file is not an error; defaults
// are returned.
func Load(path string) (*Config, error) {
	var cfg Config
	cfg.Log.Level = "info"

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return &cfg, nil
}

// NewLogger builds a zap logger from the log config.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
