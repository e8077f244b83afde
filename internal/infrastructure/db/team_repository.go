package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(gdb *gorm.DB) repositories.TeamRepository {
	return &TeamRepository{db: gdb}
}

func (r *TeamRepository) Add(ctx context.Context, member *entities.TeamMember) (*entities.TeamMember, error) {
	memberModel := teamMemberModelFromEntity(member)
	if err := r.db.WithContext(ctx).Create(memberModel).Error; err != nil {
		return nil, err
	}

	return teamMemberEntityFromModel(memberModel), nil
}

func (r *TeamRepository) Find(ctx context.Context, projectID, userID uint) (*entities.TeamMember, error) {
	var memberModel TeamMemberModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&memberModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return teamMemberEntityFromModel(&memberModel), nil
}

func (r *TeamRepository) ListByProject(ctx context.Context, projectID uint) ([]*entities.TeamMember, error) {
	var memberModels []TeamMemberModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("joined_at").
		Find(&memberModels).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.TeamMember, 0, len(memberModels))
	for i := range memberModels {
		out = append(out, teamMemberEntityFromModel(&memberModels[i]))
	}
	return out, nil
}

func (r *TeamRepository) Remove(ctx context.Context, projectID, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&TeamMemberModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TeamRepository) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&TeamMemberModel{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func teamMemberModelFromEntity(member *entities.TeamMember) *TeamMemberModel {
	return &TeamMemberModel{
		ID:        member.ID,
		ProjectID: member.ProjectID,
		UserID:    member.UserID,
		Role:      string(member.Role),
		JoinedAt:  member.JoinedAt,
	}
}

func teamMemberEntityFromModel(memberModel *TeamMemberModel) *entities.TeamMember {
	return &entities.TeamMember{
		ID:        memberModel.ID,
		ProjectID: memberModel.ProjectID,
		UserID:    memberModel.UserID,
		Role:      entities.TeamRole(memberModel.Role),
		JoinedAt:  memberModel.JoinedAt,
	}
}
