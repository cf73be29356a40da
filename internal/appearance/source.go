package appearance

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Source reports the OS appearance and notifies when it changes.
type Source interface {
	Current() Mode
	Subscribe(fn func(Mode)) (cancel func())
}

// Static is a Source whose mode only changes through Set.
type Static struct {
	mu        sync.RWMutex
	mode      Mode
	listeners listeners[Mode]
}

// NewStatic returns a source fixed at mode.
func NewStatic(mode Mode) *Static {
	return &Static{mode: mode}
}

// NewTerminalSource samples the terminal background once.
func NewTerminalSource() *Static {
	return NewStatic(DetectTerminal())
}

// DetectTerminal reports Dark when the terminal background is dark.
func DetectTerminal() Mode {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

func (s *Static) Current() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Static) Subscribe(fn func(Mode)) func() {
	return s.listeners.add(fn)
}

// Set changes the mode and notifies subscribers when it differs.
func (s *Static) Set(mode Mode) {
	s.mu.Lock()
	changed := s.mode != mode
	s.mode = mode
	s.mu.Unlock()
	if changed {
		s.listeners.emit(mode)
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Static) Subscribers() int { return s.listeners.len() }
