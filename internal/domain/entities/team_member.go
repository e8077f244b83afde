package entities

import (
	"fmt"
	"time"
)

type TeamRole string

const (
	RoleOwner  TeamRole = "owner"
	RoleAdmin  TeamRole = "admin"
	RoleMember TeamRole = "member"
)

func (r TeamRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// CanManageTeam reports whether a member with this role may add or remove
// other members.
func (r TeamRole) CanManageTeam() bool {
	return r == RoleOwner || r == RoleAdmin
}

// TeamMember links a user to a project. One membership per (project, user).
type TeamMember struct {
	ID        uint
	ProjectID uint
	UserID    uint
	Role      TeamRole
	JoinedAt  time.Time
}

func NewTeamMember(projectID, userID uint, role TeamRole) *TeamMember {
	if role == "" {
		role = RoleMember
	}
	return &TeamMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		JoinedAt:  time.Now(),
	}
}

func (m *TeamMember) Validate() error {
	if m.ProjectID == 0 || m.UserID == 0 {
		return fmt.Errorf("team member must reference a project and a user")
	}
	if !m.Role.Valid() {
		return fmt.Errorf("invalid team role %q", m.Role)
	}
	return nil
}
