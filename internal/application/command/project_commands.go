package command

import (
	"workflowpro-api/internal/application/common"
	"workflowpro-api/internal/domain/entities"
)

type CreateProjectCommand struct {
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Status         *entities.ProjectStatus `json:"status"`
	IdempotencyKey string                  `json:"-"`
}

type UpdateProjectCommand struct {
	Name        *string                 `json:"name"`
	Description *string                 `json:"description"`
	Status      *entities.ProjectStatus `json:"status"`
}

type ProjectCommandResult struct {
	Result common.ProjectResult `json:"result"`
}

type AddTeamMemberCommand struct {
	ProjectID uint              `json:"project_id"`
	UserID    uint              `json:"user_id"`
	Role      entities.TeamRole `json:"role"`
}

type TeamMemberCommandResult struct {
	Result common.TeamMemberResult `json:"result"`
}
