package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type toastVariant int

const (
	toastInfo toastVariant = iota
	toastSuccess
	toastWarning
	toastError
)

// toast is a transient notification shown above the bottom edge.
type toast struct {
	id      string
	variant toastVariant
	title   string
	message string
}

type toastExpiredMsg struct {
	id string
}

// pushToast queues a notification and schedules its expiry. Only the newest
// MaxToasts are kept.
func (m *Model) pushToast(variant toastVariant, title, message string) tea.Cmd {
	t := toast{
		id:      uuid.NewString(),
		variant: variant,
		title:   title,
		message: message,
	}
	m.toasts = append(m.toasts, t)
	if n := len(m.toasts); n > MaxToasts {
		m.toasts = append([]toast(nil), m.toasts[n-MaxToasts:]...)
	}
	id := t.id
	return tea.Tick(ToastTimeout, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// dismissToast removes the toast with id. Unknown ids are ignored.
func (m *Model) dismissToast(id string) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
			return
		}
	}
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		icon, iconStyle := "ℹ", styles.InfoText
		switch t.variant {
		case toastSuccess:
			icon, iconStyle = "✓", styles.SuccessText
		case toastWarning:
			icon, iconStyle = "!", styles.WarningText
		case toastError:
			icon, iconStyle = "✗", styles.DangerText
		}
		text := bg.Render(icon, iconStyle) + bg.Space() +
			bg.Render(t.title, styles.Text.Bold(true))
		if t.message != "" {
			text += bg.Spaces(2) + bg.Render(truncate(t.message, max(m.width-lipgloss.Width(t.title)-8, 10)), styles.MutedText)
		}
		lines = append(lines, bg.FillLine(" "+text, m.width))
	}
	return strings.Join(lines, "\n")
}
