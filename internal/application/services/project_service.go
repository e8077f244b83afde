package services

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"workflowpro-api/internal/application/command"
	"workflowpro-api/internal/application/common"
	"workflowpro-api/internal/application/mapper"
	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
	"workflowpro-api/internal/infrastructure"
	"workflowpro-api/internal/messaging"
)

type ProjectService struct {
	projectRepo     repositories.ProjectRepository
	teamRepo        repositories.TeamRepository
	taskRepo        repositories.TaskRepository
	userRepo        repositories.UserRepository
	idempotencyRepo repositories.IdempotencyRepository
	mailer          *infrastructure.Mailer
	publisher       *messaging.Publisher
	logger          *zap.Logger
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	teamRepo repositories.TeamRepository,
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	idempotencyRepo repositories.IdempotencyRepository,
	mailer *infrastructure.Mailer,
	publisher *messaging.Publisher,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:     projectRepo,
		teamRepo:        teamRepo,
		taskRepo:        taskRepo,
		userRepo:        userRepo,
		idempotencyRepo: idempotencyRepo,
		mailer:          mailer,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *ProjectService) List(ctx context.Context, userID uint, skip, limit int) ([]common.ProjectResult, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}

	projects, err := s.projectRepo.ListForUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, err
	}

	out := make([]common.ProjectResult, 0, len(projects))
	for _, p := range projects {
		out = append(out, mapper.NewProjectResultFromEntity(p))
	}
	return out, nil
}

func (s *ProjectService) Create(ctx context.Context, userID uint, cmd *command.CreateProjectCommand) (*command.ProjectCommandResult, error) {
	if cmd.IdempotencyKey != "" {
		existingRecord, err := s.idempotencyRepo.FindByKey(ctx, cmd.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existingRecord != nil {
			var result command.ProjectCommandResult
			if err := json.Unmarshal([]byte(existingRecord.Response), &result); err != nil {
				return nil, err
			}
			return &result, nil
		}
	}

	project := entities.NewProject(cmd.Name, cmd.Description, userID)
	if cmd.Status != nil {
		project.Status = *cmd.Status
	}

	if err := project.Validate(); err != nil {
		return nil, NewError(http.StatusBadRequest, err.Error())
	}

	createdProject, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	// The creator joins their own project as its owner.
	ownerMembership := entities.NewTeamMember(createdProject.ID, userID, entities.RoleOwner)
	if _, err := s.teamRepo.Add(ctx, ownerMembership); err != nil {
		return nil, err
	}

	s.publisher.Publish(messaging.SubjectProjectCreated, map[string]interface{}{
		"project_id": createdProject.ID,
		"name":       createdProject.Name,
		"owner_id":   createdProject.OwnerID,
	})

	result := command.ProjectCommandResult{
		Result: mapper.NewProjectResultFromEntity(createdProject),
	}

	if cmd.IdempotencyKey != "" {
		s.storeIdempotencyRecord(ctx, cmd.IdempotencyKey, cmd, result)
	}

	return &result, nil
}

// GetWithTeam returns the project detail view: project fields, the team
// roster with user data, and the number of tasks attached to the project.
func (s *ProjectService) GetWithTeam(ctx context.Context, userID, projectID uint) (*common.ProjectWithTeamResult, error) {
	project, err := s.accessibleProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	members, err := s.listTeamWithUsers(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasksCount, err := s.taskRepo.CountByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &common.ProjectWithTeamResult{
		ProjectResult: mapper.NewProjectResultFromEntity(project),
		TeamMembers:   members,
		TasksCount:    tasksCount,
	}, nil
}

func (s *ProjectService) Update(ctx context.Context, userID, projectID uint, cmd *command.UpdateProjectCommand) (*command.ProjectCommandResult, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	// Only the owner may update; everyone else sees a 404, same as a
	// missing project.
	if project == nil || project.OwnerID != userID {
		return nil, NewError(http.StatusNotFound, "Project not found")
	}

	if cmd.Name != nil {
		project.Name = *cmd.Name
	}
	if cmd.Description != nil {
		project.Description = *cmd.Description
	}
	if cmd.Status != nil {
		project.Status = *cmd.Status
	}
	project.Touch()

	if err := project.Validate(); err != nil {
		return nil, NewError(http.StatusBadRequest, err.Error())
	}

	updatedProject, err := s.projectRepo.Update(ctx, project)
	if err != nil {
		return nil, err
	}

	return &command.ProjectCommandResult{Result: mapper.NewProjectResultFromEntity(updatedProject)}, nil
}

func (s *ProjectService) Delete(ctx context.Context, userID, projectID uint) error {
	deleted, err := s.projectRepo.Delete(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return NewError(http.StatusNotFound, "Project not found")
	}
	return nil
}

func (s *ProjectService) AddTeamMember(ctx context.Context, requesterID uint, cmd *command.AddTeamMemberCommand) (*command.TeamMemberCommandResult, error) {
	allowed, err := s.canManageTeam(ctx, cmd.ProjectID, requesterID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, NewError(http.StatusBadRequest,
			"Cannot add team member. User may already be in the team or you don't have permission.")
	}

	existingMember, err := s.teamRepo.Find(ctx, cmd.ProjectID, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if existingMember != nil {
		return nil, NewError(http.StatusBadRequest,
			"Cannot add team member. User may already be in the team or you don't have permission.")
	}

	user, err := s.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewError(http.StatusBadRequest, "User does not exist")
	}

	member := entities.NewTeamMember(cmd.ProjectID, cmd.UserID, cmd.Role)
	if err := member.Validate(); err != nil {
		return nil, NewError(http.StatusBadRequest, err.Error())
	}

	createdMember, err := s.teamRepo.Add(ctx, member)
	if err != nil {
		return nil, err
	}

	s.notifyInvite(ctx, user, cmd.ProjectID, createdMember.Role)

	s.publisher.Publish(messaging.SubjectTeamMemberAdded, map[string]interface{}{
		"project_id": createdMember.ProjectID,
		"user_id":    createdMember.UserID,
		"role":       createdMember.Role,
	})

	return &command.TeamMemberCommandResult{
		Result: mapper.NewTeamMemberResultFromEntity(createdMember, user),
	}, nil
}

func (s *ProjectService) RemoveTeamMember(ctx context.Context, requesterID, projectID, userID uint) error {
	allowed, err := s.canManageTeam(ctx, projectID, requesterID)
	if err != nil {
		return err
	}
	if !allowed {
		return NewError(http.StatusBadRequest,
			"Cannot remove team member. User may not exist or you don't have permission.")
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project != nil && project.OwnerID == userID {
		// The owner's membership is structural; it goes away with the project.
		return NewError(http.StatusBadRequest,
			"Cannot remove team member. User may not exist or you don't have permission.")
	}

	removed, err := s.teamRepo.Remove(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return NewError(http.StatusBadRequest,
			"Cannot remove team member. User may not exist or you don't have permission.")
	}
	return nil
}

func (s *ProjectService) ListTeam(ctx context.Context, userID, projectID uint) ([]common.TeamMemberResult, error) {
	if _, err := s.accessibleProject(ctx, userID, projectID); err != nil {
		return nil, NewError(http.StatusNotFound, "Project not found or access denied")
	}
	return s.listTeamWithUsers(ctx, projectID)
}

// accessibleProject loads a project the user owns or belongs to; everything
// else is reported as not found so project ids cannot be probed.
func (s *ProjectService) accessibleProject(ctx context.Context, userID, projectID uint) (*entities.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, NewError(http.StatusNotFound, "Project not found")
	}
	if project.OwnerID == userID {
		return project, nil
	}

	member, err := s.teamRepo.Find(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, NewError(http.StatusNotFound, "Project not found")
	}
	return project, nil
}

func (s *ProjectService) canManageTeam(ctx context.Context, projectID, requesterID uint) (bool, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return false, err
	}
	if project == nil {
		return false, nil
	}
	if project.OwnerID == requesterID {
		return true, nil
	}

	membership, err := s.teamRepo.Find(ctx, projectID, requesterID)
	if err != nil {
		return false, err
	}
	return membership != nil && membership.Role.CanManageTeam(), nil
}

func (s *ProjectService) listTeamWithUsers(ctx context.Context, projectID uint) ([]common.TeamMemberResult, error) {
	members, err := s.teamRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]common.TeamMemberResult, 0, len(members))
	for _, m := range members {
		user, err := s.userRepo.FindByID(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, mapper.NewTeamMemberResultFromEntity(m, user))
	}
	return out, nil
}

func (s *ProjectService) notifyInvite(ctx context.Context, user *entities.User, projectID uint, role entities.TeamRole) {
	if !s.mailer.Enabled() {
		return
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil || project == nil {
		return
	}

	// Mail delivery must never block or fail the request.
	go func() {
		name := user.FullName
		if name == "" {
			name = user.Username
		}
		if err := s.mailer.SendTeamInvite(user.Email, name, project.Name, string(role)); err != nil {
			s.logger.Warn("failed to send team invite", zap.Error(err))
		}
	}()
}

func (s *ProjectService) storeIdempotencyRecord(ctx context.Context, key string, request, response interface{}) {
	requestJSON, _ := json.Marshal(request)
	record := entities.NewIdempotencyRecord(key, string(requestJSON))
	responseJSON, _ := json.Marshal(response)
	record.SetResponse(string(responseJSON), http.StatusCreated)
	if _, err := s.idempotencyRepo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to store idempotency record", zap.Error(err))
	}
}
