// Package appearance resolves the light/dark theme: an explicit user choice
// wins, otherwise the OS (or terminal) appearance is followed.
package appearance

import (
	"fmt"
	"strings"
)

// Mode is a resolved theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(value string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(value))); m {
	case Light, Dark:
		return m, nil
	default:
		return "", fmt.Errorf("invalid theme %q (want light or dark)", value)
	}
}

// Valid reports whether m is Light or Dark.
func (m Mode) Valid() bool { return m == Light || m == Dark }

// Opposite returns the other mode. Anything that is not Dark flips to Dark.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string { return string(m) }
