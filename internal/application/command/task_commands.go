package command

import (
	"time"

	"workflowpro-api/internal/application/common"
	"workflowpro-api/internal/domain/entities"
)

type CreateTaskCommand struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Status         *entities.TaskStatus   `json:"status"`
	Priority       *entities.TaskPriority `json:"priority"`
	ProjectID      *uint                  `json:"project_id"`
	DueDate        *time.Time             `json:"due_date"`
	IdempotencyKey string                 `json:"-"`
}

// UpdateTaskCommand is a partial update; nil fields are left untouched.
type UpdateTaskCommand struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Status      *entities.TaskStatus   `json:"status"`
	Priority    *entities.TaskPriority `json:"priority"`
	ProjectID   *uint                  `json:"project_id"`
	DueDate     *time.Time             `json:"due_date"`
}

type TaskCommandResult struct {
	Result common.TaskResult `json:"result"`
}
