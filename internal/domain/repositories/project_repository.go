package repositories

import (
	"context"

	"workflowpro-api/internal/domain/entities"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) (*entities.Project, error)
	FindByID(ctx context.Context, id uint) (*entities.Project, error)
	// ListForUser returns projects the user owns or belongs to, de-duplicated.
	ListForUser(ctx context.Context, userID uint, skip, limit int) ([]*entities.Project, error)
	ListAll(ctx context.Context) ([]*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) (*entities.Project, error)
	// Delete removes the project only when ownerID owns it.
	Delete(ctx context.Context, id, ownerID uint) (bool, error)
}
