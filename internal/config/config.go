// Package config resolves tutor settings from defaults, an optional TOML
// file, and TUTOR_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// LogConfig controls the slog output.
type LogConfig struct {
	Level string `toml:"level"`
	// File enables a per-run log file under Dir instead of stderr.
	File bool   `toml:"file"`
	Dir  string `toml:"dir"`
}

// DownloadConfig controls dataset downloads during corpus builds.
type DownloadConfig struct {
	TimeoutMs int `toml:"timeout_ms"`
	MaxItems  int `toml:"max_items"`
	// Sources maps a subject to extra source URLs.
	Sources map[string][]string `toml:"sources"`
}

// Config is the full tutor configuration.
type Config struct {
	DBPath              string         `toml:"db"`
	CorpusPaths         []string       `toml:"corpus"`
	User                string         `toml:"user"`
	SimilarityThreshold float64        `toml:"similarity_threshold"`
	SessionWindowMin    int            `toml:"session_window_min"`
	Log                 LogConfig      `toml:"log"`
	Download            DownloadConfig `toml:"download"`
}

// HomeDir returns the tutor state directory, ~/.tutor.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tutor"
	}
	return filepath.Join(home, ".tutor")
}

// DefaultConfig returns a Config with defaults rooted at HomeDir.
func DefaultConfig() Config {
	dir := HomeDir()
	user := os.Getenv("USER")
	if user == "" {
		user = "guest"
	}
	return Config{
		DBPath: filepath.Join(dir, "tutor.db"),
		CorpusPaths: []string{
			filepath.Join(dir, "corpus.db"),
			filepath.Join(dir, "corpus.json"),
		},
		User:                user,
		SimilarityThreshold: 0.3,
		SessionWindowMin:    60,
		Log: LogConfig{
			Level: "warn",
			Dir:   filepath.Join(dir, "logs"),
		},
		Download: DownloadConfig{
			TimeoutMs: 10000,
			MaxItems:  50,
		},
	}
}

// Path returns the config file location: TUTOR_CONFIG or ~/.tutor/config.toml.
func Path() string {
	if v := os.Getenv("TUTOR_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(HomeDir(), "config.toml")
}

// LoadConfig layers the config file and environment over the defaults.
// A missing config file is not an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := mergeFile(&cfg, Path()); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile merges the TOML file at path over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := mergeFile(&cfg, path); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	// Unmarshal only overwrites keys present in the file.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TUTOR_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TUTOR_CORPUS"); v != "" {
		var paths []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		cfg.CorpusPaths = paths
	}
	if v := os.Getenv("TUTOR_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("TUTOR_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TUTOR_LOG_FILE"); v != "" {
		cfg.Log.File, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TUTOR_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("TUTOR_SIMILARITY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.SimilarityThreshold = f
		}
	}
	if v := os.Getenv("TUTOR_SESSION_WINDOW_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SessionWindowMin = n
		}
	}
	if v := os.Getenv("TUTOR_DOWNLOAD_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Download.TimeoutMs = n
		}
	}
}

// Validate reports values no component can run with.
func (c Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: similarity_threshold %v outside [0,1]", ErrInvalidConfig, c.SimilarityThreshold)
	}
	if c.SessionWindowMin <= 0 {
		return fmt.Errorf("%w: session_window_min must be positive", ErrInvalidConfig)
	}
	if c.Download.TimeoutMs <= 0 {
		return fmt.Errorf("%w: download.timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.Download.MaxItems <= 0 {
		return fmt.Errorf("%w: download.max_items must be positive", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: db path is empty", ErrInvalidConfig)
	}
	return nil
}

func (c Config) SessionWindow() time.Duration {
	return time.Duration(c.SessionWindowMin) * time.Minute
}

func (c Config) DownloadTimeout() time.Duration {
	return time.Duration(c.Download.TimeoutMs) * time.Millisecond
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// Save writes c to path as TOML, creating the directory if needed.
func (c Config) Save(path string) error {
	data, err := c.Encode()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
