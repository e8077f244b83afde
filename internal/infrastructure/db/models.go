package db

import (
	"time"
)

type UserModel struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"size:255;uniqueIndex;not null"`
	Username       string `gorm:"size:255;uniqueIndex;not null"`
	HashedPassword string `gorm:"size:255;not null"`
	FullName       string `gorm:"size:255"`
	IsActive       bool   `gorm:"default:true"`
	IsAdmin        bool   `gorm:"default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type ProjectModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:32;not null;default:planning"`
	OwnerID     uint   `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProjectModel) TableName() string {
	return "projects"
}

type TeamMemberModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID uint   `gorm:"not null;uniqueIndex:idx_team_project_user"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_team_project_user"`
	Role      string `gorm:"size:50;not null;default:member"`
	JoinedAt  time.Time
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}

type TaskModel struct {
	ID             uint   `gorm:"primaryKey"`
	Title          string `gorm:"size:255;not null"`
	Description    string `gorm:"type:text"`
	Status         string `gorm:"size:32;not null;default:pending;index"`
	Priority       string `gorm:"size:32;not null;default:medium;index"`
	AssignedUserID uint   `gorm:"index;not null"`
	ProjectID      *uint  `gorm:"index"`
	DueDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TaskModel) TableName() string {
	return "tasks"
}

type IdempotencyModel struct {
	ID         string `gorm:"size:36;primaryKey"`
	Key        string `gorm:"column:idempotency_key;size:255;uniqueIndex;not null"`
	Request    string `gorm:"type:text"`
	Response   string `gorm:"type:text"`
	StatusCode int
	CreatedAt  time.Time
}

func (IdempotencyModel) TableName() string {
	return "idempotency_records"
}
