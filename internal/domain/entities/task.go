package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

// TaskStatuses lists every status in reporting order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskPending, TaskInProgress, TaskCompleted, TaskCancelled}
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func TaskPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

type Task struct {
	ID             uint
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Title          string
	Description    string
	Status         TaskStatus
	Priority       TaskPriority
	AssignedUserID uint
	ProjectID      *uint
	DueDate        *time.Time
}

func NewTask(title, description string, assignedUserID uint) *Task {
	now := time.Now()
	return &Task{
		CreatedAt:      now,
		UpdatedAt:      now,
		Title:          strings.TrimSpace(title),
		Description:    description,
		Status:         TaskPending,
		Priority:       PriorityMedium,
		AssignedUserID: assignedUserID,
	}
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return errors.New("title must not be empty")
	}
	if t.AssignedUserID == 0 {
		return errors.New("task must be assigned to a user")
	}
	if !t.Status.Valid() {
		return fmt.Errorf("invalid task status %q", t.Status)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("invalid task priority %q", t.Priority)
	}
	return nil
}

func (t *Task) Touch() {
	t.UpdatedAt = time.Now()
}
