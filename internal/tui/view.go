package tui

import (
	"fmt"
	"strings"

	"github.com/runoshun/todo/internal/domain"
)

// Section headings and empty texts.
const (
	pendingHeading   = "Pending Tasks"
	completedHeading = "Tasks Done"
	pendingEmpty     = "No tasks yet! Add one above."
	completedEmpty   = "No tasks completed yet."
)

// View renders the TUI.
func (m *Model) View() string {
	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInput, ModeNotice:
		content = m.viewMain()
	}
	return m.styles.App.Render(content)
}

// viewMain renders the input row and both sections.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Todo List"))
	b.WriteString("\n")
	b.WriteString(m.viewInputRow())
	b.WriteString("\n")

	if m.mode == ModeNotice {
		b.WriteString("\n")
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.viewSection(pendingHeading, pendingEmpty, m.pending, 0))
	b.WriteString(m.viewSection(completedHeading, completedEmpty, m.completed, len(m.pending)))

	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *Model) viewInputRow() string {
	prompt := m.styles.InputPrompt.Render("+ ")
	assignee := m.styles.AssigneeLabel.Render("  assign: ") +
		m.styles.Assignee.Render("< "+m.Assignee()+" >")
	return prompt + m.input.View() + assignee
}

// viewSection renders one heading with its tasks. offset is the cursor
// index of the section's first row.
func (m *Model) viewSection(heading, empty string, tasks []domain.Task, offset int) string {
	var b strings.Builder

	b.WriteString(m.styles.Section.Render(heading))
	b.WriteString(m.styles.SectionCount.Render(fmt.Sprintf(" (%d)", len(tasks))))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(m.styles.Empty.Render(empty))
		b.WriteString("\n")
		return b.String()
	}

	for i, t := range tasks {
		b.WriteString(m.viewTask(t, m.mode == ModeNormal && m.cursor == offset+i))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewTask(t domain.Task, selected bool) string {
	cursor := "  "
	check := "[ ]"
	if t.IsComplete {
		check = "[x]"
	}

	text := m.styles.TaskNormal.Render(t.Text)
	switch {
	case selected:
		cursor = m.styles.CursorSelected.Render("> ")
		text = m.styles.TaskSelected.Render(t.Text)
	case t.IsComplete:
		text = m.styles.TaskDone.Render(t.Text)
	}

	return cursor + check + " " +
		m.styles.TaskID.Render(fmt.Sprintf("#%d", t.ID)) +
		text + "  " +
		m.styles.TaskAssignee.Render("@"+t.AssignedTo)
}

func (m *Model) viewFooter() string {
	bindings := m.keys.ShortHelp()
	if m.mode == ModeInput {
		bindings = m.keys.inputHelp()
	}
	return m.styles.Footer.Render(m.help.ShortHelpView(bindings))
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("press any key to return"))
	return b.String()
}
