// Package domain contains core business entities and interfaces.
package domain

import (
	"encoding/json"
	"strings"
)

// Unassigned is the assignee of a task that nobody has picked up.
const Unassigned = "Unassigned"

// Task represents a single to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	Text       string `json:"text" yaml:"text"`             // Task text (trimmed, non-empty)
	AssignedTo string `json:"assignedTo" yaml:"assignedTo"` // Person responsible (Unassigned by default)
	ID         int    `json:"id" yaml:"id"`                 // Unique within the list
	IsComplete bool   `json:"isComplete" yaml:"isComplete"` // Completion flag
}

// taskJSON mirrors Task with optional fields so that records written
// before assignees and completion existed still decode.
type taskJSON struct {
	AssignedTo *string `json:"assignedTo"`
	IsComplete *bool   `json:"isComplete"`
	Text       string  `json:"text"`
	ID         int     `json:"id"`
}

// UnmarshalJSON decodes a task, defaulting fields that are missing.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.ID = raw.ID
	t.Text = raw.Text
	t.AssignedTo = Unassigned
	if raw.AssignedTo != nil {
		t.AssignedTo = NormalizeAssignee(*raw.AssignedTo)
	}
	t.IsComplete = false
	if raw.IsComplete != nil {
		t.IsComplete = *raw.IsComplete
	}
	return nil
}

// StatusLabel returns "complete" or "pending".
func (t Task) StatusLabel() string {
	if t.IsComplete {
		return "complete"
	}
	return "pending"
}

// NormalizeAssignee maps an empty or blank name to Unassigned.
func NormalizeAssignee(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return Unassigned
	}
	return name
}
