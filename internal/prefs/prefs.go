// Package prefs handles vuecrm user preferences persistence.
// Preferences are stored in ~/.config/vuecrm/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/five82/vuecrm/internal/appearance"
)

// Prefs holds user preferences for vuecrm. An empty Theme means "follow the OS".
type Prefs struct {
	Theme string `toml:"theme,omitempty"`
}

const defaultPrefsPath = "~/.config/vuecrm/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(fs afero.Fs, path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}, nil
	}

	bytes, err := afero.ReadFile(fs, resolved)
	if err != nil {
		return Prefs{}, nil // Graceful degradation
	}

	var prefs Prefs
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{}, nil // Graceful degradation
	}
	prefs.Theme = strings.TrimSpace(prefs.Theme)

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(fs afero.Fs, path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := afero.WriteFile(fs, resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// Store exposes the persisted theme to the appearance resolver.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a Store for path on fs. A nil fs means the OS filesystem.
func NewStore(fs afero.Fs, path string) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs, path: path}
}

// Theme returns the stored theme. An unreadable or unrecognized value is
// reported as absent.
func (s *Store) Theme() (appearance.Mode, bool, error) {
	p, err := Load(s.fs, s.path)
	if err != nil || p.Theme == "" {
		return "", false, err
	}
	mode, err := appearance.ParseMode(p.Theme)
	if err != nil {
		return "", false, nil
	}
	return mode, true, nil
}

// SetTheme persists mode, keeping any other preferences in the file.
func (s *Store) SetTheme(mode appearance.Mode) error {
	p, _ := Load(s.fs, s.path)
	p.Theme = mode.String()
	return Save(s.fs, s.path, p)
}

// ClearTheme removes the stored theme.
func (s *Store) ClearTheme() error {
	resolved, err := resolvePath(s.path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := s.fs.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove prefs: %w", err)
	}
	return nil
}

// Path returns the resolved preferences file path.
func (s *Store) Path() string {
	resolved, err := resolvePath(s.path)
	if err != nil {
		return s.path
	}
	return resolved
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
