// Package common holds the serializable result shapes shared between the
// application services and the HTTP delivery layer.
package common

import (
	"time"

	"workflowpro-api/internal/domain/entities"
)

type UserResult struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TaskResult struct {
	ID             uint                  `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description,omitempty"`
	Status         entities.TaskStatus   `json:"status"`
	Priority       entities.TaskPriority `json:"priority"`
	AssignedUserID uint                  `json:"assigned_user_id"`
	ProjectID      *uint                 `json:"project_id,omitempty"`
	DueDate        *time.Time            `json:"due_date,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type ProjectResult struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Status      entities.ProjectStatus `json:"status"`
	OwnerID     uint                   `json:"owner_id"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type TeamMemberResult struct {
	ID        uint              `json:"id"`
	ProjectID uint              `json:"project_id"`
	UserID    uint              `json:"user_id"`
	Role      entities.TeamRole `json:"role"`
	JoinedAt  time.Time         `json:"joined_at"`
	User      *UserResult       `json:"user,omitempty"`
}

type ProjectWithTeamResult struct {
	ProjectResult
	TeamMembers []TeamMemberResult `json:"team_members"`
	TasksCount  int64              `json:"tasks_count"`
}
