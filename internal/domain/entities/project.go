package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

type Project struct {
	ID          uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	Status      ProjectStatus
	OwnerID     uint
}

func NewProject(name, description string, ownerID uint) *Project {
	now := time.Now()
	return &Project{
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        strings.TrimSpace(name),
		Description: description,
		Status:      ProjectPlanning,
		OwnerID:     ownerID,
	}
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return errors.New("name must not be empty")
	}
	if p.OwnerID == 0 {
		return errors.New("project must have an owner")
	}
	if !p.Status.Valid() {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	return nil
}

func (p *Project) Touch() {
	p.UpdatedAt = time.Now()
}
