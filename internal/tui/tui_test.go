package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/userform/internal/form"
	"github.com/yanizio/userform/internal/registration"
)

func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(m Model, k tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(Model)
}

func fillJane(m Model) Model {
	for i, v := range []string{"Jane", "Doe", "30", "jane@doe.com", "1234567890"} {
		m = typeText(m, v)
		if i < 4 {
			m = press(m, tea.KeyTab)
		}
	}
	return m
}

func TestNew_FocusesFirstInput(t *testing.T) {
	m := New(form.Default())

	require.Len(t, m.inputs, 5)
	assert.Equal(t, 0, m.focus)
	assert.True(t, m.inputs[0].Focused())
	assert.Equal(t, registration.FirstName, m.fields[0])
}

func TestUpdate_TypingUpdatesDraft(t *testing.T) {
	m := New(form.Default())
	m = typeText(m, "Jane")

	assert.Equal(t, "Jane", m.Form().Draft().FirstName)
	assert.Empty(t, m.Form().Errors(), "typing must not validate")
}

func TestUpdate_LongInputNotTruncated(t *testing.T) {
	long := strings.Repeat("a", 400)
	m := typeText(New(form.Default()), long)

	assert.Equal(t, long, m.Form().Draft().FirstName)
}

func TestUpdate_TabCycles(t *testing.T) {
	m := New(form.Default())
	for i := 0; i < 5; i++ {
		m = press(m, tea.KeyTab)
	}
	assert.Equal(t, 0, m.focus, "tab wraps around")

	m = press(m, tea.KeyShiftTab)
	assert.Equal(t, 4, m.focus)
}

func TestUpdate_EnterOnLastFieldSubmits(t *testing.T) {
	m := fillJane(New(form.Default()))
	require.Equal(t, 4, m.focus)

	m = press(m, tea.KeyEnter)

	assert.Equal(t, 1, m.Form().SubmittedCount())
	assert.True(t, m.Form().Draft().IsZero())
	for _, in := range m.inputs {
		assert.Empty(t, in.Value(), "inputs cleared after accept")
	}
	assert.Equal(t, 0, m.focus)
	assert.Contains(t, m.View(), "User #1")
}

func TestUpdate_InvalidSubmitKeepsValues(t *testing.T) {
	m := New(form.Default())
	m = press(m, tea.KeyTab)
	m = typeText(m, "Doe")

	m = press(m, tea.KeyCtrlS)

	assert.Zero(t, m.Form().SubmittedCount())
	assert.Equal(t, "Doe", m.inputs[1].Value())
	assert.Len(t, m.Form().Errors(), 4)
	assert.Equal(t, 0, m.focus, "focus jumps to the first failing field")
	assert.Contains(t, m.View(), registration.MsgFirstName)
}

func TestUpdate_ResetClears(t *testing.T) {
	m := fillJane(New(form.Default()))
	m = press(m, tea.KeyCtrlR)

	assert.True(t, m.Form().Draft().IsZero())
	for _, in := range m.inputs {
		assert.Empty(t, in.Value())
	}
}

func TestProgram_QuitsAndKeepsRecords(t *testing.T) {
	tm := teatest.NewTestModel(t, New(form.Default()), teatest.WithInitialTermSize(100, 60))

	for i, v := range []string{"Ada", "Lovelace", "36", "ada@x.io", "1111111111"} {
		tm.Type(v)
		if i < 4 {
			tm.Send(tea.KeyMsg{Type: tea.KeyTab})
		}
	}
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	recs := final.Form().Submitted()
	require.Len(t, recs, 1)
	assert.Equal(t, "Ada", recs[0].FirstName)
	assert.True(t, strings.Contains(final.View(), "User #1"))
}
