package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Model is the bubbletea model for the task list.
type Model struct {
	// Dependencies
	container *app.Container
	err       error

	// State
	tasks  []domain.Task
	status string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Numeric state
	mode   Mode
	filter domain.StatusFilter
	cursor int
	width  int
	height int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 500
	ti.Prompt = "> "

	styles := DefaultStyles()
	if c != nil && c.AppConfig != nil && !c.AppConfig.UI.Color {
		styles = PlainStyles()
	}

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		input:     ti,
		mode:      ModeNormal,
	}
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(c *app.Container) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that loads tasks through the list use case.
func (m *Model) loadTasks() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{Filter: filter})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// addTask returns a command that appends a task.
func (m *Model) addTask(description string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Description: description})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{Task: out.Task}
	}
}

// markDone returns a command that marks the task with index done.
func (m *Model) markDone(index int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.MarkDoneUseCase().Execute(context.Background(), usecase.MarkDoneInput{Index: index})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDone{Task: out.Task, AlreadyDone: out.AlreadyDone}
	}
}

// SelectedTask returns the task under the cursor.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// clampCursor keeps the cursor inside the visible list.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// nextFilter cycles all -> pending -> done.
func nextFilter(f domain.StatusFilter) domain.StatusFilter {
	switch f {
	case domain.FilterAll:
		return domain.FilterPending
	case domain.FilterPending:
		return domain.FilterDone
	default:
		return domain.FilterAll
	}
}

func filterLabel(f domain.StatusFilter) string {
	switch f {
	case domain.FilterPending:
		return "pending"
	case domain.FilterDone:
		return "done"
	default:
		return "all"
	}
}
