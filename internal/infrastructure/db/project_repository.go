package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(gdb *gorm.DB) repositories.ProjectRepository {
	return &ProjectRepository{db: gdb}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) (*entities.Project, error) {
	projectModel := projectModelFromEntity(project)
	if err := r.db.WithContext(ctx).Create(projectModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, projectModel.ID)
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*entities.Project, error) {
	var projectModel ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&projectModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return projectEntityFromModel(&projectModel), nil
}

// ListForUser returns projects owned by the user plus projects where the
// user appears in team_members, de-duplicated in one query.
func (r *ProjectRepository) ListForUser(ctx context.Context, userID uint, skip, limit int) ([]*entities.Project, error) {
	var projectModels []ProjectModel
	if err := r.db.WithContext(ctx).
		Distinct("projects.*").
		Joins("LEFT JOIN team_members ON team_members.project_id = projects.id").
		Where("projects.owner_id = ? OR team_members.user_id = ?", userID, userID).
		Order("projects.id").
		Offset(skip).
		Limit(limit).
		Find(&projectModels).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.Project, 0, len(projectModels))
	for i := range projectModels {
		out = append(out, projectEntityFromModel(&projectModels[i]))
	}
	return out, nil
}

func (r *ProjectRepository) ListAll(ctx context.Context) ([]*entities.Project, error) {
	var projectModels []ProjectModel
	if err := r.db.WithContext(ctx).Order("id").Find(&projectModels).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.Project, 0, len(projectModels))
	for i := range projectModels {
		out = append(out, projectEntityFromModel(&projectModels[i]))
	}
	return out, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) (*entities.Project, error) {
	projectModel := projectModelFromEntity(project)
	if err := r.db.WithContext(ctx).Save(projectModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, projectModel.ID)
}

func (r *ProjectRepository) Delete(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&ProjectModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func projectModelFromEntity(project *entities.Project) *ProjectModel {
	return &ProjectModel{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		OwnerID:     project.OwnerID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func projectEntityFromModel(projectModel *ProjectModel) *entities.Project {
	return &entities.Project{
		ID:          projectModel.ID,
		Name:        projectModel.Name,
		Description: projectModel.Description,
		Status:      entities.ProjectStatus(projectModel.Status),
		OwnerID:     projectModel.OwnerID,
		CreatedAt:   projectModel.CreatedAt,
		UpdatedAt:   projectModel.UpdatedAt,
	}
}
