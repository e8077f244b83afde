package query

// Reporting shapes mirror the aggregates the reports endpoints expose.

type SystemOverview struct {
	TotalUsers     int64   `json:"total_users"`
	TotalProjects  int64   `json:"total_projects"`
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
	ActiveTasks    int64   `json:"active_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

type UserTaskStats struct {
	UserID          uint    `json:"user_id"`
	UserName        string  `json:"user_name"`
	UserEmail       string  `json:"user_email"`
	TotalTasks      int64   `json:"total_tasks"`
	CompletedTasks  int64   `json:"completed_tasks"`
	InProgressTasks int64   `json:"in_progress_tasks"`
	PendingTasks    int64   `json:"pending_tasks"`
	CancelledTasks  int64   `json:"cancelled_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
}

type ProjectTaskStats struct {
	ProjectID       uint    `json:"project_id"`
	ProjectName     string  `json:"project_name"`
	TotalTasks      int64   `json:"total_tasks"`
	CompletedTasks  int64   `json:"completed_tasks"`
	InProgressTasks int64   `json:"in_progress_tasks"`
	PendingTasks    int64   `json:"pending_tasks"`
	CancelledTasks  int64   `json:"cancelled_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
	TeamSize        int64   `json:"team_size"`
}

type PriorityStat struct {
	Priority string `json:"priority"`
	Count    int64  `json:"count"`
}

type StatusStat struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type Report struct {
	SystemOverview           SystemOverview     `json:"system_overview"`
	UserStats                []UserTaskStats    `json:"user_stats"`
	ProjectStats             []ProjectTaskStats `json:"project_stats"`
	TaskPriorityDistribution []PriorityStat     `json:"task_priority_distribution"`
	TaskStatusDistribution   []StatusStat       `json:"task_status_distribution"`
	RecentActivityCount      int64              `json:"recent_activity_count"`
}
