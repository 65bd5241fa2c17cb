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

// noticeEmptyText is shown when the user tries to add a blank task.
const noticeEmptyText = "Please enter a task!"

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices)
	pending   []domain.Task
	completed []domain.Task
	roster    []string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	notice string

	// Numeric state (smaller types last)
	mode        Mode
	width       int
	height      int
	cursor      int // Index into pending followed by completed
	assigneeIdx int // Index into roster
}

// New creates a new TUI Model with the given container.
// The model starts with the task input focused.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.Focus()

	roster := []string{domain.Unassigned}
	if c != nil && c.AppConfig != nil {
		roster = c.AppConfig.Roster()
	}

	return &Model{
		container: c,
		roster:    roster,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		input:     ti,
		mode:      ModeInput,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		textinput.Blink,
	)
}

// loadTasks returns a command that reads the partitioned list.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{List: out}
	}
}

// refresh re-reads the list synchronously after a mutation, so the next
// message always sees the state the last write produced.
func (m *Model) refresh() {
	out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
	if err != nil {
		m.err = err
		return
	}
	m.setList(out)
}

func (m *Model) setList(out *usecase.ListTasksOutput) {
	m.pending = out.Pending
	m.completed = out.Completed
	m.clampCursor()
}

func (m *Model) rowCount() int {
	return len(m.pending) + len(m.completed)
}

func (m *Model) clampCursor() {
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SelectedTask returns the task under the cursor, or nil if the list is empty.
func (m *Model) SelectedTask() *domain.Task {
	if m.rowCount() == 0 {
		return nil
	}
	if m.cursor < len(m.pending) {
		t := m.pending[m.cursor]
		return &t
	}
	t := m.completed[m.cursor-len(m.pending)]
	return &t
}

// Assignee returns the assignee currently chosen in the selector.
func (m *Model) Assignee() string {
	return m.roster[m.assigneeIdx]
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}
