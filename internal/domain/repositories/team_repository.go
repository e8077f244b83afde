package repositories

import (
	"context"

	"workflowpro-api/internal/domain/entities"
)

type TeamRepository interface {
	Add(ctx context.Context, member *entities.TeamMember) (*entities.TeamMember, error)
	Find(ctx context.Context, projectID, userID uint) (*entities.TeamMember, error)
	ListByProject(ctx context.Context, projectID uint) ([]*entities.TeamMember, error)
	Remove(ctx context.Context, projectID, userID uint) (bool, error)
	CountByProject(ctx context.Context, projectID uint) (int64, error)
}
