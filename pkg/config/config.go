// Package config loads the user-editable YAML configuration and applies
// environment variable overrides on top.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Env var overrides.
const (
	EnvBaseURL   = "KOMIK_BASE_URL"
	EnvTimeoutMs = "KOMIK_TIMEOUT_MS"
	EnvDBPath    = "KOMIK_DB_PATH"
	EnvLogLevel  = "KOMIK_LOG_LEVEL"
	EnvLogFile   = "KOMIK_LOG_FILE"
)

type Config struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMs int    `yaml:"timeout_ms"`
	DBPath    string `yaml:"db_path"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
}

func Defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		BaseURL:   "https://ubaya.xyz/react/160421125",
		TimeoutMs: 15000,
		DBPath:    filepath.Join(home, ".komik", "komik.db"),
		LogLevel:  "info",
		LogFile:   filepath.Join(home, ".komik", "komik.log"),
	}
}

// Path returns the per-user config file location.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "komik", "config.yaml")
}

// Load reads the config file if present, fills defaults, then applies env
// overrides. A missing or unreadable file is not an error.
func Load() Config {
	cfg := Defaults()
	if data, err := os.ReadFile(Path()); err == nil {
		var fileCfg Config
		if yaml.Unmarshal(data, &fileCfg) == nil {
			merge(&cfg, &fileCfg)
		}
	}
	applyEnv(&cfg)
	return cfg
}

// Save writes the config YAML, creating the directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutMs <= 0 {
		return time.Duration(Defaults().TimeoutMs) * time.Millisecond
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

func merge(dst, src *Config) {
	if strings.TrimSpace(src.BaseURL) != "" {
		dst.BaseURL = strings.TrimSpace(src.BaseURL)
	}
	if src.TimeoutMs > 0 {
		dst.TimeoutMs = src.TimeoutMs
	}
	if strings.TrimSpace(src.DBPath) != "" {
		dst.DBPath = src.DBPath
	}
	if strings.TrimSpace(src.LogLevel) != "" {
		dst.LogLevel = strings.ToLower(strings.TrimSpace(src.LogLevel))
	}
	if strings.TrimSpace(src.LogFile) != "" {
		dst.LogFile = src.LogFile
	}
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeoutMs)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
}
