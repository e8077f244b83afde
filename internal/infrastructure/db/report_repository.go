package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(gdb *gorm.DB) repositories.ReportRepository {
	return &ReportRepository{db: gdb}
}

func (r *ReportRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&count).Error
	return count, err
}

func (r *ReportRepository) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ProjectModel{}).Count(&count).Error
	return count, err
}

func (r *ReportRepository) GlobalTaskCounts(ctx context.Context) (repositories.TaskCounts, error) {
	return r.taskCounts(r.db.WithContext(ctx).Model(&TaskModel{}))
}

func (r *ReportRepository) TaskCountsForUser(ctx context.Context, userID uint) (repositories.TaskCounts, error) {
	return r.taskCounts(r.db.WithContext(ctx).Model(&TaskModel{}).Where("assigned_user_id = ?", userID))
}

func (r *ReportRepository) TaskCountsForProject(ctx context.Context, projectID uint) (repositories.TaskCounts, error) {
	return r.taskCounts(r.db.WithContext(ctx).Model(&TaskModel{}).Where("project_id = ?", projectID))
}

func (r *ReportRepository) CountTasksByPriority(ctx context.Context, priority entities.TaskPriority) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TaskModel{}).
		Where("priority = ?", string(priority)).
		Count(&count).Error
	return count, err
}

func (r *ReportRepository) CountRecentTasks(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TaskModel{}).
		Where("created_at >= ? OR updated_at >= ?", since, since).
		Count(&count).Error
	return count, err
}

// taskCounts rolls one grouped query into the per-status breakdown instead
// of issuing a count per status.
func (r *ReportRepository) taskCounts(tx *gorm.DB) (repositories.TaskCounts, error) {
	var rows []struct {
		Status string
		N      int64
	}
	if err := tx.Select("status, COUNT(*) AS n").Group("status").Scan(&rows).Error; err != nil {
		return repositories.TaskCounts{}, err
	}

	var counts repositories.TaskCounts
	for _, row := range rows {
		counts.Total += row.N
		switch entities.TaskStatus(row.Status) {
		case entities.TaskPending:
			counts.Pending = row.N
		case entities.TaskInProgress:
			counts.InProgress = row.N
		case entities.TaskCompleted:
			counts.Completed = row.N
		case entities.TaskCancelled:
			counts.Cancelled = row.N
		}
	}
	return counts, nil
}
