package repositories

import (
	"context"

	"workflowpro-api/internal/domain/entities"
)

// TaskRepository scopes every operation to the assigned user; a task id that
// exists but belongs to someone else behaves exactly like a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) (*entities.Task, error)
	FindByID(ctx context.Context, id, userID uint) (*entities.Task, error)
	ListByUser(ctx context.Context, userID uint, skip, limit int) ([]*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) (*entities.Task, error)
	Delete(ctx context.Context, id, userID uint) (bool, error)
	CountByProject(ctx context.Context, projectID uint) (int64, error)
}
