// Package tui is a terminal rendition of the JSON input form.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"tokenform/api/internal/form"
	"tokenform/api/internal/types"
)

type focus int

const (
	focusInput focus = iota
	focusFilters
)

type submitDoneMsg struct {
	resp *types.Response
	err  error
}

type Model struct {
	textarea textarea.Model
	session  *form.Session
	styles   Styles
	timeout  time.Duration

	focus      focus
	cursor     int
	err        string
	submitting bool
}

func New(session *form.Session, timeout time.Duration) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter JSON data"
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(6)
	ta.Focus()

	return Model{
		textarea: ta,
		session:  session,
		styles:   DefaultStyles(),
		timeout:  timeout,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = form.UserMessage
			return m, nil
		}
		m.err = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		case "tab":
			return m.switchFocus(), nil
		}
		if m.focus == focusFilters {
			return m.updateFilters(msg), nil
		}
	}

	if m.focus != focusInput {
		return m, nil
	}
	prev := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if m.textarea.Value() != prev {
		m.err = ""
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	req, err := form.ParseInput(m.textarea.Value())
	if err != nil {
		m.err = form.UserMessage
		return m, nil
	}
	m.err = ""
	m.submitting = true

	session, timeout := m.session, m.timeout
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := session.Submit(ctx, req)
		return submitDoneMsg{resp: resp, err: err}
	}
}

func (m Model) switchFocus() Model {
	if m.focus == focusInput && m.session.Last() != nil {
		m.focus = focusFilters
		m.textarea.Blur()
		return m
	}
	m.focus = focusInput
	m.textarea.Focus()
	return m
}

func (m Model) updateFilters(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(form.Fields)-1 {
			m.cursor++
		}
	case " ", "enter", "x":
		m.session.Toggle(form.Fields[m.cursor])
	case "1", "2", "3":
		i := int(msg.String()[0] - '1')
		m.cursor = i
		m.session.Toggle(form.Fields[i])
	}
	return m
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("JSON Input Processor"))
	sb.WriteString("\n\n")
	sb.WriteString(m.textarea.View())
	sb.WriteString("\n")

	if m.err != "" {
		sb.WriteString(m.styles.Error.Render(m.err))
		sb.WriteString("\n")
	}
	if m.submitting {
		sb.WriteString("Submitting…\n")
	}

	if m.session.Last() != nil {
		sb.WriteString(m.styles.Header.Render("Select Filters:"))
		sb.WriteString("\n")
		sel := m.session.Selection()
		for i, f := range form.Fields {
			cursor := "  "
			if m.focus == focusFilters && i == m.cursor {
				cursor = m.styles.Cursor.Render("> ")
			}
			box := "[ ] "
			label := f.Label()
			if sel.Has(f) {
				box = "[x] "
				label = m.styles.Selected.Render(label)
			}
			sb.WriteString(cursor + box + label + "\n")
		}

		sb.WriteString(m.styles.Header.Render("Filtered Response:"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Output.Render(m.session.View()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("ctrl+s submit • tab switch to filters • 1/2/3 or space toggle • esc quit"))
	return sb.String()
}

// Run starts the program on the terminal.
func Run(session *form.Session, timeout time.Duration) error {
	_, err := tea.NewProgram(New(session, timeout)).Run()
	return err
}
