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
	"workflowpro-api/internal/messaging"
)

const defaultListLimit = 100

type TaskService struct {
	taskRepo        repositories.TaskRepository
	idempotencyRepo repositories.IdempotencyRepository
	publisher       *messaging.Publisher
	logger          *zap.Logger
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	idempotencyRepo repositories.IdempotencyRepository,
	publisher *messaging.Publisher,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:        taskRepo,
		idempotencyRepo: idempotencyRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *TaskService) List(ctx context.Context, userID uint, skip, limit int) ([]common.TaskResult, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}

	tasks, err := s.taskRepo.ListByUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, err
	}

	out := make([]common.TaskResult, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, mapper.NewTaskResultFromEntity(t))
	}
	return out, nil
}

func (s *TaskService) Create(ctx context.Context, userID uint, cmd *command.CreateTaskCommand) (*command.TaskCommandResult, error) {
	if cmd.IdempotencyKey != "" {
		existingRecord, err := s.idempotencyRepo.FindByKey(ctx, cmd.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existingRecord != nil {
			var result command.TaskCommandResult
			if err := json.Unmarshal([]byte(existingRecord.Response), &result); err != nil {
				return nil, err
			}
			return &result, nil
		}
	}

	task := entities.NewTask(cmd.Title, cmd.Description, userID)
	if cmd.Status != nil {
		task.Status = *cmd.Status
	}
	if cmd.Priority != nil {
		task.Priority = *cmd.Priority
	}
	task.ProjectID = cmd.ProjectID
	task.DueDate = cmd.DueDate

	if err := task.Validate(); err != nil {
		return nil, NewError(http.StatusBadRequest, err.Error())
	}

	createdTask, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(messaging.SubjectTaskCreated, map[string]interface{}{
		"task_id":          createdTask.ID,
		"title":            createdTask.Title,
		"assigned_user_id": createdTask.AssignedUserID,
	})

	result := command.TaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(createdTask),
	}

	if cmd.IdempotencyKey != "" {
		s.storeIdempotencyRecord(ctx, cmd.IdempotencyKey, cmd, result)
	}

	return &result, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint) (*command.TaskCommandResult, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NewError(http.StatusNotFound, "Task not found")
	}

	return &command.TaskCommandResult{Result: mapper.NewTaskResultFromEntity(task)}, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uint, cmd *command.UpdateTaskCommand) (*command.TaskCommandResult, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NewError(http.StatusNotFound, "Task not found")
	}

	if cmd.Title != nil {
		task.Title = *cmd.Title
	}
	if cmd.Description != nil {
		task.Description = *cmd.Description
	}
	if cmd.Status != nil {
		task.Status = *cmd.Status
	}
	if cmd.Priority != nil {
		task.Priority = *cmd.Priority
	}
	if cmd.ProjectID != nil {
		task.ProjectID = cmd.ProjectID
	}
	if cmd.DueDate != nil {
		task.DueDate = cmd.DueDate
	}
	task.Touch()

	if err := task.Validate(); err != nil {
		return nil, NewError(http.StatusBadRequest, err.Error())
	}

	updatedTask, err := s.taskRepo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	return &command.TaskCommandResult{Result: mapper.NewTaskResultFromEntity(updatedTask)}, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uint) error {
	deleted, err := s.taskRepo.Delete(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return NewError(http.StatusNotFound, "Task not found")
	}
	return nil
}

func (s *TaskService) storeIdempotencyRecord(ctx context.Context, key string, request, response interface{}) {
	requestJSON, _ := json.Marshal(request)
	record := entities.NewIdempotencyRecord(key, string(requestJSON))
	responseJSON, _ := json.Marshal(response)
	record.SetResponse(string(responseJSON), http.StatusCreated)
	if _, err := s.idempotencyRepo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to store idempotency record", zap.Error(err))
	}
}
