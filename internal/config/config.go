// Package config resolves settings from the environment and an optional
// .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDir         = "NASIYA_DIR"
	EnvBackend     = "NASIYA_BACKEND"
	EnvRedisURL    = "NASIYA_REDIS_URL"
	EnvRedisPrefix = "NASIYA_REDIS_PREFIX"
	EnvTheme       = "NASIYA_THEME"
	EnvNoColor     = "NASIYA_NO_COLOR"
	EnvColor       = "NASIYA_COLOR"
	EnvDebug       = "NASIYA_DEBUG"
)

// Backend names accepted by --backend.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var Backends = []string{BackendJSON, BackendSQLite, BackendRedis, BackendMemory}

type Config struct {
	Dir         string
	Backend     string
	RedisURL    string
	RedisPrefix string
	Theme       string
	NoColor     bool
	ForceColor  bool
	Debug       bool
}

// LoadDotEnv reads .env if present. Variables already set in the process
// environment win, as godotenv never overrides them.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads .env and then the environment.
func Load() (Config, error) {
	if err := LoadDotEnv(""); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Dir:         dir,
		Backend:     envOr(EnvBackend, BackendJSON),
		RedisURL:    envOr(EnvRedisURL, "redis://localhost:6379/0"),
		RedisPrefix: envOr(EnvRedisPrefix, "nasiya:"),
		Theme:       envOr(EnvTheme, "classic"),
		NoColor:     envBool(EnvNoColor),
		ForceColor:  envBool(EnvColor),
		Debug:       envBool(EnvDebug),
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}
	if v := strings.TrimSpace(os.Getenv("FORCE_COLOR")); v != "" && v != "0" {
		c.ForceColor = true
	}
	return c, c.Validate()
}

// Validate rejects an unknown backend name.
func (c Config) Validate() error {
	for _, b := range Backends {
		if c.Backend == b {
			return nil
		}
	}
	return fmt.Errorf("unknown backend %q (want one of %s)", c.Backend, strings.Join(Backends, ", "))
}

// DefaultDir is ~/.nasiya unless NASIYA_DIR is set.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".nasiya"), nil
}

// EnsureDir creates dir with owner-only permissions.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return nil
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func envBool(k string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(k)))
	return b
}
