package appearance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileSource follows a color-scheme file, the kind desktop portals and
// dotfile scripts write ("dark", "prefer-dark", "light", "default"). A
// missing or unreadable file means fallback.
type FileSource struct {
	path     string
	fallback Mode
	logger   *zap.Logger

	mu        sync.RWMutex
	current   Mode
	running   bool
	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
	doneCh    chan struct{}
	listeners listeners[Mode]
}

// NewFileSource reads path once. Call Start to follow changes.
func NewFileSource(path string, fallback Mode, logger *zap.Logger) *FileSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &FileSource{
		path:     filepath.Clean(path),
		fallback: fallback,
		logger:   logger,
	}
	s.current = s.read()
	return s
}

func (s *FileSource) Current() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *FileSource) Subscribe(fn func(Mode)) func() {
	return s.listeners.add(fn)
}

// Start watches the file's directory. It is non-blocking and idempotent.
func (s *FileSource) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("create appearance dir: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		s.mu.Unlock()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	s.watcher = w
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.running = true
	go s.run(w, s.stopCh, s.doneCh)
	s.mu.Unlock()

	s.logger.Debug("watching color scheme", zap.String("path", s.path))
	// The file may have changed between construction and the watch.
	s.reload()
	return nil
}

// Close stops the watcher and waits for its goroutine.
func (s *FileSource) Close() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	w, stop, done := s.watcher, s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stop)
	<-done
	return w.Close()
}

func (s *FileSource) run(w *fsnotify.Watcher, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			s.reload()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.logger.Warn("color scheme watcher error", zap.Error(err))
		}
	}
}

func (s *FileSource) reload() {
	next := s.read()

	s.mu.Lock()
	changed := next != s.current
	s.current = next
	s.mu.Unlock()

	if changed {
		s.logger.Info("os appearance changed", zap.String("mode", next.String()))
		s.listeners.emit(next)
	}
}

func (s *FileSource) read() Mode {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("read color scheme", zap.String("path", s.path), zap.Error(err))
		}
		return s.fallback
	}
	mode, ok := parseScheme(string(data))
	if !ok {
		s.logger.Warn("unrecognized color scheme", zap.String("path", s.path), zap.String("value", strings.TrimSpace(string(data))))
		return s.fallback
	}
	return mode
}

// parseScheme maps freedesktop-style color-scheme values to a Mode.
func parseScheme(raw string) (Mode, bool) {
	v := strings.Trim(strings.ToLower(strings.TrimSpace(raw)), `'"`)
	switch v {
	case "dark", "prefer-dark":
		return Dark, true
	case "light", "default", "prefer-light":
		return Light, true
	default:
		return "", false
	}
}
