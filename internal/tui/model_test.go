package tui

import (
	"errors"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
)

func newTestModel(t *testing.T, descriptions ...string) (*Model, *testutil.MockTaskRepository) {
	t.Helper()
	repo := testutil.NewMockTaskRepository(descriptions...)
	c := app.NewWithDeps(app.Config{WorkDir: t.TempDir()}, repo, slog.Default())
	m := New(c)
	m.styles = PlainStyles()
	return m, repo
}

// run executes cmd and feeds the resulting message back into the model.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, next := m.Update(msg)
	if next != nil {
		_, _ = m.Update(next())
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Init_LoadsTasks(t *testing.T) {
	m, _ := newTestModel(t, "a", "x:b")

	run(t, m, m.Init())

	require.Len(t, m.tasks, 2)
	assert.Equal(t, "a", m.tasks[0].Description)
	assert.True(t, m.tasks[1].Done)
}

func TestModel_Navigation(t *testing.T) {
	m, _ := newTestModel(t)
	m.tasks = []domain.Task{{Index: 1}, {Index: 2}, {Index: 3}}

	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))
	assert.Equal(t, 2, m.cursor, "cursor stops at last task")

	m.Update(keyRunes("k"))
	assert.Equal(t, 1, m.cursor)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stops at first task")
}

func TestModel_MarkDone(t *testing.T) {
	m, repo := newTestModel(t, "a", "b")
	run(t, m, m.Init())
	m.Update(keyRunes("j"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	run(t, m, cmd)

	assert.False(t, repo.Tasks[0].Done)
	assert.True(t, repo.Tasks[1].Done)
	assert.True(t, m.tasks[1].Done, "list is reloaded")
	assert.Equal(t, "Task 2 marked as done.", m.status)
}

func TestModel_MarkDone_EmptyList(t *testing.T) {
	m, repo := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Zero(t, repo.SaveCalls)
}

func TestModel_AddTask(t *testing.T) {
	m, repo := newTestModel(t)

	m.Update(keyRunes("a"))
	require.Equal(t, ModeInput, m.mode)

	m.Update(keyRunes("buy milk"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, m.mode)
	run(t, m, cmd)

	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, "buy milk", repo.Tasks[0].Description)
	assert.Equal(t, "Task added: buy milk", m.status)
	require.Len(t, m.tasks, 1)
}

func TestModel_AddTask_EmptyOrCancelled(t *testing.T) {
	m, repo := newTestModel(t)

	m.Update(keyRunes("a"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	m.Update(keyRunes("a"))
	m.Update(keyRunes("never mind"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)

	assert.Zero(t, repo.SaveCalls)
}

func TestModel_InputModeIgnoresShortcuts(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyRunes("a"))

	m.Update(keyRunes("q"))
	assert.Equal(t, ModeInput, m.mode)
	assert.Equal(t, "q", m.input.Value())
}

func TestModel_FilterCycle(t *testing.T) {
	m, _ := newTestModel(t, "a", "x:b", "c")

	_, cmd := m.Update(keyRunes("f"))
	run(t, m, cmd)
	assert.Equal(t, domain.FilterPending, m.filter)
	require.Len(t, m.tasks, 2)
	assert.Equal(t, 3, m.tasks[1].Index, "original indices are kept")

	_, cmd = m.Update(keyRunes("f"))
	run(t, m, cmd)
	assert.Equal(t, domain.FilterDone, m.filter)
	require.Len(t, m.tasks, 1)

	_, cmd = m.Update(keyRunes("f"))
	run(t, m, cmd)
	assert.Equal(t, domain.FilterAll, m.filter)
	assert.Len(t, m.tasks, 3)
}

func TestModel_Refresh(t *testing.T) {
	m, repo := newTestModel(t, "a")
	run(t, m, m.Init())

	repo.Tasks = append(repo.Tasks, domain.Task{Description: "added elsewhere"})
	_, cmd := m.Update(keyRunes("r"))
	run(t, m, cmd)

	assert.Len(t, m.tasks, 2)
}

func TestModel_Errors(t *testing.T) {
	m, repo := newTestModel(t, "a")
	repo.LoadErr = errors.New("permission denied")

	run(t, m, m.Init())
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "permission denied")

	m.Update(MsgError{Err: domain.ErrInvalidIndex})
	assert.NoError(t, m.err)
	assert.Equal(t, "Invalid task number.", m.status)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Help(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("?"))
	assert.Equal(t, ModeHelp, m.mode)
	assert.True(t, m.help.ShowAll)

	m.Update(keyRunes("x"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.False(t, m.help.ShowAll)
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "No tasks yet!")

	m.tasks = []domain.Task{{Index: 1, Description: "buy milk"}, {Index: 2, Description: "walk dog", Done: true}}
	view := m.View()
	assert.Contains(t, view, "> 1. [ ] buy milk")
	assert.Contains(t, view, "2. [x] walk dog")
	assert.Contains(t, view, "[all]")
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "normal", ModeNormal.String())
	assert.Equal(t, "input", ModeInput.String())
	assert.Equal(t, "help", ModeHelp.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestNew_RespectsColorSetting(t *testing.T) {
	c := app.NewWithDeps(app.Config{}, testutil.NewMockTaskRepository(), slog.Default())
	c.AppConfig.UI.Color = false

	m := New(c)
	assert.Equal(t, PlainStyles().Header.Render("x"), m.styles.Header.Render("x"))
}
