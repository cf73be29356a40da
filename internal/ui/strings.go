package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// cell truncates then pads value to exactly width columns.
func cell(value string, width int) string {
	return padRight(truncate(value, width), width)
}

// orDash substitutes an em dash for a blank value.
func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

var countPrinter = message.NewPrinter(language.English)

// humanizeCount formats n with thousands separators: 125000 -> "125,000".
func humanizeCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}
