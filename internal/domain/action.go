package domain

// Action is a state transition on the task list.
//
// go-sumtype:decl Action
type Action interface {
	sealed()
}

// AddAction appends a new task.
type AddAction struct {
	Text       string
	AssignedTo string
}

func (AddAction) sealed() {}

// DeleteAction removes the task with ID.
type DeleteAction struct {
	ID int
}

func (DeleteAction) sealed() {}

// ToggleAction flips the completion flag of the task with ID.
type ToggleAction struct {
	ID int
}

func (ToggleAction) sealed() {}

// Apply returns the list that results from applying action to tasks.
// Only AddAction can fail; delete and toggle of an unknown id are no-ops.
func Apply(tasks []Task, action Action) ([]Task, error) {
	switch a := action.(type) {
	case AddAction:
		next, _, err := AddTask(tasks, a.Text, a.AssignedTo)
		return next, err
	case DeleteAction:
		next, _ := DeleteTask(tasks, a.ID)
		return next, nil
	case ToggleAction:
		next, _ := ToggleTask(tasks, a.ID)
		return next, nil
	default:
		return tasks, ErrUnknownAction
	}
}
