package appearance

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// PreferenceStore persists the user's explicit choice. Theme reports
// ok=false when nothing (valid) is stored.
type PreferenceStore interface {
	Theme() (mode Mode, ok bool, err error)
	SetTheme(Mode) error
	ClearTheme() error
}

// Origin says where the resolved mode came from.
type Origin string

const (
	OriginStored Origin = "stored"
	OriginOS     Origin = "os"
)

// Resolver owns the current theme mode.
type Resolver struct {
	store  PreferenceStore
	source Source
	logger *zap.Logger

	mu        sync.RWMutex
	mode      Mode
	origin    Origin
	cancel    func()
	listeners listeners[Mode]
}

// NewResolver picks the initial mode: a stored preference when present,
// otherwise the source's current mode.
func NewResolver(store PreferenceStore, source Source, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{store: store, source: source, logger: logger}
	if mode, ok := r.stored(); ok {
		r.mode, r.origin = mode, OriginStored
	} else {
		r.mode, r.origin = source.Current(), OriginOS
	}
	return r
}

// Mode returns the resolved mode.
func (r *Resolver) Mode() Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mode
}

// Origin reports whether Mode came from a stored choice or the OS.
func (r *Resolver) Origin() Origin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.origin
}

// OnChange registers fn to receive every mode applied to the presentation.
func (r *Resolver) OnChange(fn func(Mode)) (cancel func()) {
	return r.listeners.add(fn)
}

// Set applies mode immediately and then persists it. A persist failure is
// returned but the in-memory mode stays applied, and OS changes keep being
// ignored until Clear.
func (r *Resolver) Set(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("set theme: invalid mode %q", mode)
	}
	r.mu.Lock()
	r.mode, r.origin = mode, OriginStored
	r.mu.Unlock()

	r.listeners.emit(mode)

	if err := r.store.SetTheme(mode); err != nil {
		r.logger.Warn("persist theme failed", zap.String("mode", mode.String()), zap.Error(err))
		return fmt.Errorf("persist theme: %w", err)
	}
	r.logger.Info("theme set", zap.String("mode", mode.String()))
	return nil
}

// Toggle flips between light and dark and persists the result.
func (r *Resolver) Toggle() (Mode, error) {
	next := r.Mode().Opposite()
	return next, r.Set(next)
}

// Clear forgets the stored choice and follows the OS again.
func (r *Resolver) Clear() error {
	if err := r.store.ClearTheme(); err != nil {
		return fmt.Errorf("clear theme: %w", err)
	}
	next := r.source.Current()

	r.mu.Lock()
	changed := next != r.mode
	r.mode, r.origin = next, OriginOS
	r.mu.Unlock()

	if changed {
		r.listeners.emit(next)
	}
	return nil
}

// Start subscribes to OS appearance changes and catches up with any change
// the source saw before the subscription existed. Calling it twice is a no-op.
func (r *Resolver) Start() {
	r.mu.Lock()
	if r.cancel != nil {
		r.mu.Unlock()
		return
	}
	r.cancel = r.source.Subscribe(r.handleOSChange)
	r.mu.Unlock()

	r.handleOSChange(r.source.Current())
}

// Close cancels the OS subscription.
func (r *Resolver) Close() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// handleOSChange follows the OS only while no explicit choice is in force.
// The in-memory origin covers a Set whose save is still in flight or failed;
// the store covers a choice saved by another process.
func (r *Resolver) handleOSChange(mode Mode) {
	if r.Origin() == OriginStored {
		r.logger.Debug("os appearance ignored, explicit theme set", zap.String("os", mode.String()))
		return
	}

	_, ok, err := r.store.Theme()
	if err != nil {
		r.logger.Warn("read stored theme", zap.Error(err))
		return
	}
	if ok {
		r.logger.Debug("os appearance ignored, explicit theme stored", zap.String("os", mode.String()))
		return
	}

	r.mu.Lock()
	if r.origin == OriginStored {
		// Set ran while the store was being read.
		r.mu.Unlock()
		return
	}
	changed := mode != r.mode
	r.mode, r.origin = mode, OriginOS
	r.mu.Unlock()

	if changed {
		r.listeners.emit(mode)
	}
}

func (r *Resolver) stored() (Mode, bool) {
	mode, ok, err := r.store.Theme()
	if err != nil {
		r.logger.Warn("read stored theme", zap.Error(err))
		return "", false
	}
	return mode, ok && mode.Valid()
}
