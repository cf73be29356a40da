package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// formField is one labelled row of a form: either a text input or, when
// options is set, a left/right selector.
type formField struct {
	label   string
	input   textinput.Model
	options []string
	choice  int
}

func newTextField(label, placeholder string, limit int) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30
	ti.Prompt = ""
	return formField{label: label, input: ti}
}

func newChoiceField(label string, options []string) formField {
	return formField{label: label, options: options}
}

func (f formField) value() string {
	return strings.TrimSpace(f.input.Value())
}

// form is the focus-cycling machinery shared by the add dialogs.
type form struct {
	title  string
	hint   string
	fields []formField
	focus  int
	err    string
}

func (f *form) focusField(idx int) tea.Cmd {
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
	f.focus = idx
	if f.fields[idx].options == nil {
		return f.fields[idx].input.Focus()
	}
	return nil
}

// update handles navigation and editing. submit reports Enter.
func (f *form) update(msg tea.Msg, keys keyMap) (cmd tea.Cmd, submit, cancel bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if f.fields[f.focus].options == nil {
			f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
		}
		return cmd, false, false
	}

	current := &f.fields[f.focus]
	switch {
	case key.Matches(km, keys.Escape):
		return nil, false, true

	case key.Matches(km, keys.Confirm):
		return nil, true, false

	case key.Matches(km, keys.Tab), km.String() == "down":
		return f.focusField((f.focus + 1) % len(f.fields)), false, false

	case key.Matches(km, keys.ShiftTab), km.String() == "up":
		return f.focusField((f.focus - 1 + len(f.fields)) % len(f.fields)), false, false

	case current.options != nil && (key.Matches(km, keys.Right) || km.String() == " "):
		current.choice = (current.choice + 1) % len(current.options)
		return nil, false, false

	case current.options != nil && key.Matches(km, keys.Left):
		current.choice = (current.choice - 1 + len(current.options)) % len(current.options)
		return nil, false, false
	}

	if current.options == nil {
		current.input, cmd = current.input.Update(km)
		f.err = ""
	}
	return cmd, false, false
}

// view renders the form centered in the terminal.
func (f form) view(theme Theme, width, height int) string {
	styles := theme.Styles()

	labelWidth := 0
	for _, field := range f.fields {
		labelWidth = max(labelWidth, lipgloss.Width(field.label))
	}
	labelWidth += 2

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(f.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n\n")

	if f.hint != "" {
		b.WriteString(styles.MutedText.Render(f.hint))
		b.WriteString("\n\n")
	}

	for i, field := range f.fields {
		label := padRight(field.label+":", labelWidth)
		if i == f.focus {
			b.WriteString(styles.AccentText.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		if field.options != nil {
			b.WriteString(renderChoice(styles, field, i == f.focus))
		} else {
			b.WriteString(field.input.View())
		}
		b.WriteString("\n\n")
	}

	if f.err != "" {
		b.WriteString(styles.DangerText.Render(f.err))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render("Enter: Save  •  Tab: Next field  •  ←/→: Change  •  Esc: Cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(56)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func renderChoice(styles Styles, field formField, focused bool) string {
	opt := field.options[field.choice]
	if !focused {
		return styles.Text.Render(opt)
	}
	return styles.AccentText.Render("‹ ") + styles.Text.Bold(true).Render(opt) + styles.AccentText.Render(" ›")
}
