package domain

import "strings"

// NextID returns the id for a new task: one greater than the current
// maximum, or 0 for an empty list.
func NextID(tasks []Task) int {
	maxID := -1
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// AddTask returns a new list with a task appended.
// The input list is not modified.
func AddTask(tasks []Task, text, assignee string) ([]Task, Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return tasks, Task{}, ErrEmptyText
	}

	task := Task{
		ID:         NextID(tasks),
		Text:       text,
		AssignedTo: NormalizeAssignee(assignee),
	}

	next := make([]Task, 0, len(tasks)+1)
	next = append(next, tasks...)
	next = append(next, task)
	return next, task, nil
}

// DeleteTask returns a new list without the task with the given id.
// The second result reports whether a task was removed.
func DeleteTask(tasks []Task, id int) ([]Task, bool) {
	next := make([]Task, 0, len(tasks))
	removed := false
	for _, t := range tasks {
		if t.ID == id {
			removed = true
			continue
		}
		next = append(next, t)
	}
	if !removed {
		return tasks, false
	}
	return next, true
}

// ToggleTask returns a new list in which the task with the given id has
// its completion flag flipped. Position and other fields are preserved.
func ToggleTask(tasks []Task, id int) ([]Task, bool) {
	idx := FindTask(tasks, id)
	if idx < 0 {
		return tasks, false
	}
	next := make([]Task, len(tasks))
	copy(next, tasks)
	next[idx].IsComplete = !next[idx].IsComplete
	return next, true
}

// FindTask returns the index of the task with the given id, or -1.
func FindTask(tasks []Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Partition splits tasks into pending and completed, keeping source order.
func Partition(tasks []Task) (pending, completed []Task) {
	pending = []Task{}
	completed = []Task{}
	for _, t := range tasks {
		if t.IsComplete {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}
