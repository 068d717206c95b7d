package tui

import (
	"strconv"
	"strings"

	"github.com/runoshun/todo/internal/domain"
)

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Todo"))
	b.WriteString(" ")
	b.WriteString(m.styles.Filter.Render("[" + filterLabel(m.filter) + "]"))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Empty.Render("No tasks yet!"))
		b.WriteString("\n")
	}
	for i, t := range m.tasks {
		b.WriteString(m.renderTask(t, i == m.cursor))
		b.WriteString("\n")
	}

	if m.mode == ModeInput {
		b.WriteString("\n")
		b.WriteString(m.styles.Input.Render(m.input.View()))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

func (m *Model) renderTask(t domain.Task, selected bool) string {
	cursor := "  "
	text := m.styles.Item
	if t.Done {
		text = m.styles.ItemDone
	}
	if selected {
		cursor = "> "
		text = m.styles.ItemSelected
	}

	marker := m.styles.MarkerPending.Render(t.Marker())
	if t.Done {
		marker = m.styles.MarkerDone.Render(t.Marker())
	}

	return cursor + text.Render(strconv.Itoa(t.Index)+".") + " " + marker + " " + text.Render(t.Description)
}
