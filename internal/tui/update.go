package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-30, 10)
		return m, nil

	case MsgTasksLoaded:
		m.setList(msg.List)
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	if m.mode == ModeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNotice:
		// Any key dismisses the notice and returns to the input
		m.notice = ""
		return m, m.focusInput()
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		return m, m.addTask()
	case key.Matches(msg, m.keys.Assignee):
		m.nextAssignee()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		return m, m.focusInput()
	case key.Matches(msg, m.keys.Add):
		return m, m.addTask()
	case key.Matches(msg, m.keys.Assignee):
		m.nextAssignee()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if task := m.SelectedTask(); task != nil {
			m.toggleTask(task.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if task := m.SelectedTask(); task != nil {
			m.deleteTask(task.ID)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) focusInput() tea.Cmd {
	m.mode = ModeInput
	return m.input.Focus()
}

func (m *Model) nextAssignee() {
	m.assigneeIdx = (m.assigneeIdx + 1) % len(m.roster)
}

// addTask submits the input. A blank input raises the blocking notice and
// leaves the list alone; a successful add resets the input and the selector.
func (m *Model) addTask() tea.Cmd {
	_, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
		Text:       m.input.Value(),
		AssignedTo: m.Assignee(),
	})
	if errors.Is(err, domain.ErrEmptyText) {
		m.mode = ModeNotice
		m.notice = noticeEmptyText
		m.input.Blur()
		return nil
	}
	if err != nil {
		m.err = err
		return nil
	}

	m.err = nil
	m.input.Reset()
	m.assigneeIdx = 0
	m.refresh()
	return nil
}

func (m *Model) toggleTask(id int) {
	if _, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskID: id}); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

func (m *Model) deleteTask(id int) {
	if _, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
		m.err = err
		return
	}
	m.refresh()
}
