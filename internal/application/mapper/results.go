package mapper

import (
	"workflowpro-api/internal/application/common"
	"workflowpro-api/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) common.UserResult {
	return common.UserResult{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func NewTaskResultFromEntity(task *entities.Task) common.TaskResult {
	return common.TaskResult{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         task.Status,
		Priority:       task.Priority,
		AssignedUserID: task.AssignedUserID,
		ProjectID:      task.ProjectID,
		DueDate:        task.DueDate,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

func NewProjectResultFromEntity(project *entities.Project) common.ProjectResult {
	return common.ProjectResult{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		OwnerID:     project.OwnerID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func NewTeamMemberResultFromEntity(member *entities.TeamMember, user *entities.User) common.TeamMemberResult {
	out := common.TeamMemberResult{
		ID:        member.ID,
		ProjectID: member.ProjectID,
		UserID:    member.UserID,
		Role:      member.Role,
		JoinedAt:  member.JoinedAt,
	}
	if user != nil {
		u := NewUserResultFromEntity(user)
		out.User = &u
	}
	return out
}
