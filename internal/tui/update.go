package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case Msg:
		return m.handleMsg(msg)
	}

	return m, nil
}

// handleMsg applies the result of a use case command.
func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.err = nil
		m.clampCursor()
		return m, nil

	case MsgTaskAdded:
		m.status = fmt.Sprintf("Task added: %s", msg.Task.Description)
		return m, m.loadTasks()

	case MsgTaskDone:
		m.status = fmt.Sprintf("Task %d marked as done.", msg.Task.Index)
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		if errors.Is(msg.Err, domain.ErrInvalidIndex) {
			m.err = nil
			m.status = "Invalid task number."
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Done):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.markDone(task.Index)

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeInput
		m.status = ""
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Filter):
		m.filter = nextFilter(m.filter)
		m.cursor = 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.help.ShowAll = true
		return m, nil
	}

	return m, nil
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		description := strings.TrimSpace(m.input.Value())
		m.mode = ModeNormal
		m.input.Blur()
		if description == "" {
			return m, nil
		}
		return m, m.addTask(description)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.mode = ModeNormal
	m.help.ShowAll = false
	return m, nil
}
