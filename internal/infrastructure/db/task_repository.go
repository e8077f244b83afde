package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(gdb *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: gdb}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	taskModel := taskModelFromEntity(task)
	if err := r.db.WithContext(ctx).Create(taskModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, taskModel.ID, task.AssignedUserID)
}

func (r *TaskRepository) FindByID(ctx context.Context, id, userID uint) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND assigned_user_id = ?", id, userID).
		First(&taskModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return taskEntityFromModel(&taskModel), nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint, skip, limit int) ([]*entities.Task, error) {
	var taskModels []TaskModel
	if err := r.db.WithContext(ctx).
		Where("assigned_user_id = ?", userID).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&taskModels).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		out = append(out, taskEntityFromModel(&taskModels[i]))
	}
	return out, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	taskModel := taskModelFromEntity(task)
	if err := r.db.WithContext(ctx).Save(taskModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, taskModel.ID, task.AssignedUserID)
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND assigned_user_id = ?", id, userID).
		Delete(&TaskModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TaskRepository) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&TaskModel{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func taskModelFromEntity(task *entities.Task) *TaskModel {
	return &TaskModel{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         string(task.Status),
		Priority:       string(task.Priority),
		AssignedUserID: task.AssignedUserID,
		ProjectID:      task.ProjectID,
		DueDate:        task.DueDate,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

func taskEntityFromModel(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		ID:             taskModel.ID,
		Title:          taskModel.Title,
		Description:    taskModel.Description,
		Status:         entities.TaskStatus(taskModel.Status),
		Priority:       entities.TaskPriority(taskModel.Priority),
		AssignedUserID: taskModel.AssignedUserID,
		ProjectID:      taskModel.ProjectID,
		DueDate:        taskModel.DueDate,
		CreatedAt:      taskModel.CreatedAt,
		UpdatedAt:      taskModel.UpdatedAt,
	}
}
