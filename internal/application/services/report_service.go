package services

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"workflowpro-api/internal/application/query"
	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
	"workflowpro-api/internal/infrastructure"
)

const (
	recentActivityDays = 7
	reportCacheKey     = "report:comprehensive"
	reportCacheTTL     = 5 * time.Minute
)

type ReportService struct {
	reportRepo   repositories.ReportRepository
	userRepo     repositories.UserRepository
	projectRepo  repositories.ProjectRepository
	teamRepo     repositories.TeamRepository
	redisService *infrastructure.RedisService
	logger       *zap.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	teamRepo repositories.TeamRepository,
	redisService *infrastructure.RedisService,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		userRepo:     userRepo,
		projectRepo:  projectRepo,
		teamRepo:     teamRepo,
		redisService: redisService,
		logger:       logger,
	}
}

func (s *ReportService) SystemOverview(ctx context.Context) (*query.SystemOverview, error) {
	totalUsers, err := s.reportRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalProjects, err := s.reportRepo.CountProjects(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.reportRepo.GlobalTaskCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &query.SystemOverview{
		TotalUsers:     totalUsers,
		TotalProjects:  totalProjects,
		TotalTasks:     counts.Total,
		CompletedTasks: counts.Completed,
		ActiveTasks:    counts.Active(),
		CompletionRate: completionRate(counts.Completed, counts.Total),
	}, nil
}

func (s *ReportService) UserStats(ctx context.Context) ([]query.UserTaskStats, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]query.UserTaskStats, 0, len(users))
	for _, u := range users {
		counts, err := s.reportRepo.TaskCountsForUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}

		name := u.FullName
		if name == "" {
			name = u.Username
		}

		out = append(out, query.UserTaskStats{
			UserID:          u.ID,
			UserName:        name,
			UserEmail:       u.Email,
			TotalTasks:      counts.Total,
			CompletedTasks:  counts.Completed,
			InProgressTasks: counts.InProgress,
			PendingTasks:    counts.Pending,
			CancelledTasks:  counts.Cancelled,
			CompletionRate:  completionRate(counts.Completed, counts.Total),
		})
	}
	return out, nil
}

func (s *ReportService) ProjectStats(ctx context.Context) ([]query.ProjectTaskStats, error) {
	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]query.ProjectTaskStats, 0, len(projects))
	for _, p := range projects {
		counts, err := s.reportRepo.TaskCountsForProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		teamSize, err := s.teamRepo.CountByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		out = append(out, query.ProjectTaskStats{
			ProjectID:       p.ID,
			ProjectName:     p.Name,
			TotalTasks:      counts.Total,
			CompletedTasks:  counts.Completed,
			InProgressTasks: counts.InProgress,
			PendingTasks:    counts.Pending,
			CancelledTasks:  counts.Cancelled,
			CompletionRate:  completionRate(counts.Completed, counts.Total),
			TeamSize:        teamSize,
		})
	}
	return out, nil
}

func (s *ReportService) PriorityDistribution(ctx context.Context) ([]query.PriorityStat, error) {
	out := make([]query.PriorityStat, 0, len(entities.TaskPriorities()))
	for _, priority := range entities.TaskPriorities() {
		count, err := s.reportRepo.CountTasksByPriority(ctx, priority)
		if err != nil {
			return nil, err
		}
		out = append(out, query.PriorityStat{Priority: string(priority), Count: count})
	}
	return out, nil
}

func (s *ReportService) StatusDistribution(ctx context.Context) ([]query.StatusStat, error) {
	counts, err := s.reportRepo.GlobalTaskCounts(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := map[entities.TaskStatus]int64{
		entities.TaskPending:    counts.Pending,
		entities.TaskInProgress: counts.InProgress,
		entities.TaskCompleted:  counts.Completed,
		entities.TaskCancelled:  counts.Cancelled,
	}

	out := make([]query.StatusStat, 0, len(entities.TaskStatuses()))
	for _, status := range entities.TaskStatuses() {
		out = append(out, query.StatusStat{Status: string(status), Count: byStatus[status]})
	}
	return out, nil
}

func (s *ReportService) RecentActivityCount(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -recentActivityDays)
	return s.reportRepo.CountRecentTasks(ctx, cutoff)
}

// Comprehensive assembles the full report, cached briefly in Redis since it
// fans out to many aggregate queries.
func (s *ReportService) Comprehensive(ctx context.Context) (*query.Report, error) {
	var cached query.Report
	if found, err := s.redisService.GetJSON(ctx, reportCacheKey, &cached); err != nil {
		s.logger.Warn("report cache read failed", zap.Error(err))
	} else if found {
		return &cached, nil
	}

	overview, err := s.SystemOverview(ctx)
	if err != nil {
		return nil, err
	}
	userStats, err := s.UserStats(ctx)
	if err != nil {
		return nil, err
	}
	projectStats, err := s.ProjectStats(ctx)
	if err != nil {
		return nil, err
	}
	priorityDist, err := s.PriorityDistribution(ctx)
	if err != nil {
		return nil, err
	}
	statusDist, err := s.StatusDistribution(ctx)
	if err != nil {
		return nil, err
	}
	recentCount, err := s.RecentActivityCount(ctx)
	if err != nil {
		return nil, err
	}

	report := &query.Report{
		SystemOverview:           *overview,
		UserStats:                userStats,
		ProjectStats:             projectStats,
		TaskPriorityDistribution: priorityDist,
		TaskStatusDistribution:   statusDist,
		RecentActivityCount:      recentCount,
	}

	if err := s.redisService.SetJSON(ctx, reportCacheKey, report, reportCacheTTL); err != nil {
		s.logger.Warn("report cache write failed", zap.Error(err))
	}

	return report, nil
}

// completionRate is completed/total as a percentage rounded to two decimals,
// zero when there are no tasks.
func completionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(completed) / float64(total) * 100
	return math.Round(rate*100) / 100
}
