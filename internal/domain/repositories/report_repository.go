package repositories

import (
	"context"
	"time"

	"workflowpro-api/internal/domain/entities"
)

// TaskCounts is a per-status breakdown used by the reporting queries.
type TaskCounts struct {
	Total      int64
	Completed  int64
	InProgress int64
	Pending    int64
	Cancelled  int64
}

// Active counts tasks that still need attention.
func (c TaskCounts) Active() int64 {
	return c.Pending + c.InProgress
}

type ReportRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountProjects(ctx context.Context) (int64, error)
	GlobalTaskCounts(ctx context.Context) (TaskCounts, error)
	TaskCountsForUser(ctx context.Context, userID uint) (TaskCounts, error)
	TaskCountsForProject(ctx context.Context, projectID uint) (TaskCounts, error)
	CountTasksByPriority(ctx context.Context, priority entities.TaskPriority) (int64, error)
	// CountRecentTasks counts tasks created or updated since the cutoff.
	CountRecentTasks(ctx context.Context, since time.Time) (int64, error)
}
