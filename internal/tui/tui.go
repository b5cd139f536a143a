// Package tui renders the registration form in a terminal.
//
// The bubbletea update loop is the single event thread: each keystroke is
// forwarded to the focused input and then to registration.Form.UpdateField,
// and submit/reset call straight into the same Form the web layer uses.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yanizio/userform/internal/form"
	"github.com/yanizio/userform/internal/registration"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	cardHeading = lipgloss.NewStyle().Bold(true)
)

// Model holds the terminal form state.
type Model struct {
	def    *form.FormDef
	form   *registration.Form
	fields []registration.Field
	inputs []textinput.Model
	focus  int
	status string
}

// New builds a Model whose inputs follow def's order and placeholders.
func New(def *form.FormDef) Model {
	m := Model{
		def:  def,
		form: registration.NewForm(),
	}
	for _, fd := range def.Fields {
		name, err := registration.ParseField(fd.Name)
		if err != nil {
			continue // FormDef validation guarantees known names
		}
		ti := textinput.New()
		ti.Placeholder = fd.Placeholder
		ti.Prompt = ""
		ti.Width = 32
		ti.CharLimit = 0 // unlimited, like the HTTP form
		m.fields = append(m.fields, name)
		m.inputs = append(m.inputs, ti)
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

// Form exposes the underlying state holder.
func (m Model) Form() *registration.Form { return m.form }

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			cmd := m.moveFocus(1)
			return m, cmd

		case "shift+tab", "up":
			cmd := m.moveFocus(-1)
			return m, cmd

		case "enter":
			if m.focus < len(m.inputs)-1 {
				cmd := m.moveFocus(1)
				return m, cmd
			}
			return m.submit()

		case "ctrl+s":
			return m.submit()

		case "ctrl+r":
			m.form.Reset()
			m.syncInputs()
			m.status = ""
			cmd := m.setFocus(0)
			return m, cmd
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	_ = m.form.UpdateField(m.fields[m.focus], m.inputs[m.focus].Value())
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	rec, ok := m.form.Submit()
	if !ok {
		m.status = ""
		cmd := m.setFocus(m.firstError())
		return *m, cmd
	}
	m.syncInputs()
	m.status = fmt.Sprintf("Added User #%d (%s %s)", m.form.SubmittedCount(), rec.FirstName, rec.LastName)
	cmd := m.setFocus(0)
	return *m, cmd
}

// firstError returns the index of the first failing input, or the current
// focus when none failed.
func (m *Model) firstError() int {
	errs := m.form.Errors()
	for i, f := range m.fields {
		if _, bad := errs[f]; bad {
			return i
		}
	}
	return m.focus
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.inputs)
	if n == 0 {
		return nil
	}
	return m.setFocus(((m.focus+delta)%n + n) % n)
}

func (m *Model) setFocus(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// syncInputs copies the draft back into the inputs after submit or reset.
func (m *Model) syncInputs() {
	d := m.form.Draft()
	for i, f := range m.fields {
		m.inputs[i].SetValue(d.Get(f))
	}
}

// View renders the form and the submitted list.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.def.Title))
	b.WriteString("\n")

	errs := m.form.Errors()
	for i, f := range m.fields {
		fd, _ := m.def.Field(string(f))
		label := labelStyle.Render(fd.Label)
		if i == m.focus {
			label = focusStyle.Render("> " + fd.Label)
		}
		b.WriteString(label + "\n")
		b.WriteString("  " + m.inputs[i].View() + "\n")
		if msg, bad := errs[f]; bad {
			b.WriteString("  " + errorStyle.Render(msg) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + okStyle.Render(m.status) + "\n")
	}

	b.WriteString(helpStyle.Render("tab/shift+tab move · enter next/submit · ctrl+s submit · ctrl+r reset · esc quit"))
	b.WriteString("\n")

	for i, r := range m.form.Submitted() {
		b.WriteString("\n")
		b.WriteString(cardStyle.Render(renderCard(i+1, r)))
	}
	return b.String()
}

func renderCard(n int, r registration.Record) string {
	lines := []string{
		cardHeading.Render(fmt.Sprintf("User #%d", n)),
		"First Name: " + r.FirstName,
		"Last Name:  " + r.LastName,
		"Age:        " + r.Age,
		"Email:      " + r.Email,
		"Phone:      " + r.Phone,
	}
	return strings.Join(lines, "\n")
}
