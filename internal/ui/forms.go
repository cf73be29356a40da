package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vuecrm/internal/crm"
)

type contactSubmittedMsg struct {
	input crm.NewContact
}

type creatorSubmittedMsg struct {
	input crm.NewCreator
}

// Contact form field order.
const (
	contactName = iota
	contactEmail
	contactCompany
	contactStatus
)

// contactForm collects a new contact. Name and email are required.
type contactForm struct {
	form
}

func newContactForm() contactForm {
	statuses := make([]string, len(crm.ContactStatuses))
	for i, s := range crm.ContactStatuses {
		statuses[i] = s.Label()
	}
	f := contactForm{form{
		title: "Add contact",
		fields: []formField{
			newTextField("Name", "Jane Doe", 80),
			newTextField("Email", "jane@example.com", 120),
			newTextField("Company", "optional", 80),
			newChoiceField("Status", statuses),
		},
	}}
	f.focusField(contactName)
	return f
}

// Init starts the cursor blinking in the first field.
func (f contactForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f contactForm) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	cmd, submit, cancel := f.update(msg, keys)
	switch {
	case cancel:
		return f, nil, true
	case submit:
		in, errMsg := f.input()
		if errMsg != "" {
			f.err = errMsg
			return f, nil, false
		}
		return f, submitCmd(contactSubmittedMsg{input: in}), true
	}
	return f, cmd, false
}

func (f contactForm) View(theme Theme, width, height int) string {
	return f.view(theme, width, height)
}

// input validates the form. A non-empty message means the submit is rejected.
func (f contactForm) input() (crm.NewContact, string) {
	in := crm.NewContact{
		Name:    f.fields[contactName].value(),
		Email:   f.fields[contactEmail].value(),
		Company: f.fields[contactCompany].value(),
		Status:  crm.ContactStatuses[f.fields[contactStatus].choice],
	}
	if in.Name == "" || in.Email == "" {
		return crm.NewContact{}, "Name and email are required."
	}
	return in, ""
}

// Creator form field order.
const (
	creatorName = iota
	creatorHandle
	creatorSubscribers
	creatorTier
)

// creatorForm collects a new creator. Name and handle are required;
// subscribers must be a non-negative whole number when given.
type creatorForm struct {
	form
}

func newCreatorForm() creatorForm {
	tiers := make([]string, len(crm.CreatorTiers))
	for i, t := range crm.CreatorTiers {
		tiers[i] = t.Label()
	}
	f := creatorForm{form{
		title: "Add creator",
		fields: []formField{
			newTextField("Name", "Jane Doe", 80),
			newTextField("Handle", "@janedoe", 40),
			newTextField("Subscribers", "0", 12),
			newChoiceField("Tier", tiers),
		},
	}}
	f.focusField(creatorName)
	return f
}

// Init starts the cursor blinking in the first field.
func (f creatorForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f creatorForm) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	cmd, submit, cancel := f.update(msg, keys)
	switch {
	case cancel:
		return f, nil, true
	case submit:
		in, errMsg := f.input()
		if errMsg != "" {
			f.err = errMsg
			return f, nil, false
		}
		return f, submitCmd(creatorSubmittedMsg{input: in}), true
	}
	return f, cmd, false
}

func (f creatorForm) View(theme Theme, width, height int) string {
	return f.view(theme, width, height)
}

func (f creatorForm) input() (crm.NewCreator, string) {
	in := crm.NewCreator{
		Name:   f.fields[creatorName].value(),
		Handle: crm.NormalizeHandle(f.fields[creatorHandle].value()),
		Tier:   crm.CreatorTiers[f.fields[creatorTier].choice],
	}
	if in.Name == "" || in.Handle == "" {
		return crm.NewCreator{}, "Name and handle are required."
	}
	if raw := strings.ReplaceAll(f.fields[creatorSubscribers].value(), ",", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return crm.NewCreator{}, "Subscribers must be a whole number."
		}
		in.Subscribers = n
	}
	return in, ""
}

func submitCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
