package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds vuecrm settings. Paths are absolute after Load.
type Config struct {
	PrefsPath        string
	AppearanceFile   string
	LogFile          string
	LogLevel         string
	SeedFile         string // empty means the embedded sample data
	ContactsPageSize int
	CreatorsPageSize int
}

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "VUECRM_CONFIG"

const (
	defaultConfigPath       = "~/.config/vuecrm/config.toml"
	defaultPrefsPath        = "~/.config/vuecrm/prefs.toml"
	defaultAppearanceFile   = "~/.config/vuecrm/color-scheme"
	defaultLogFile          = "~/.local/state/vuecrm/vuecrm.log"
	defaultLogLevel         = "info"
	defaultContactsPageSize = 8
	defaultCreatorsPageSize = 9
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PrefsPath:        mustExpand(defaultPrefsPath),
		AppearanceFile:   mustExpand(defaultAppearanceFile),
		LogFile:          mustExpand(defaultLogFile),
		LogLevel:         defaultLogLevel,
		ContactsPageSize: defaultContactsPageSize,
		CreatorsPageSize: defaultCreatorsPageSize,
	}
}

// ResolvePath picks the config file: an explicit flag, then $VUECRM_CONFIG,
// then the default location.
func ResolvePath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPath)); v != "" {
		return v
	}
	return defaultConfigPath
}

// Load locates and parses the vuecrm config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PrefsPath        string `toml:"prefs_path"`
		AppearanceFile   string `toml:"appearance_file"`
		LogFile          string `toml:"log_file"`
		LogLevel         string `toml:"log_level"`
		SeedFile         string `toml:"seed_file"`
		ContactsPageSize int    `toml:"contacts_page_size"`
		CreatorsPageSize int    `toml:"creators_page_size"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.PrefsPath = pathOr(raw.PrefsPath, cfg.PrefsPath)
	cfg.AppearanceFile = pathOr(raw.AppearanceFile, cfg.AppearanceFile)
	cfg.LogFile = pathOr(raw.LogFile, cfg.LogFile)
	cfg.SeedFile = pathOr(raw.SeedFile, "")

	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}
	if raw.ContactsPageSize > 0 {
		cfg.ContactsPageSize = raw.ContactsPageSize
	}
	if raw.CreatorsPageSize > 0 {
		cfg.CreatorsPageSize = raw.CreatorsPageSize
	}

	return cfg, nil
}

func pathOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return mustExpand(value)
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
