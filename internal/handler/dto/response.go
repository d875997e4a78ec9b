package dto

import (
	"time"

	"github.com/taskmeter/taskmeter/internal/analytics"
	"github.com/taskmeter/taskmeter/internal/domain"
)

// dateLayout is the wire format for calendar days in trend data.
const dateLayout = "2006-01-02"

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TasksListResponse represents the response for GET /tasks.
type TasksListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// UserStatsResponse represents the response for GET /analytics/user-stats/:userId.
type UserStatsResponse struct {
	UserID               string         `json:"user_id"`
	TotalTasks           int            `json:"total_tasks"`
	CompletedTasks       int            `json:"completed_tasks"`
	PendingTasks         int            `json:"pending_tasks"`
	InProgressTasks      int            `json:"in_progress_tasks"`
	CompletionRate       float64        `json:"completion_rate"`
	PriorityDistribution map[string]int `json:"priority_distribution"`
	StatusDistribution   map[string]int `json:"status_distribution"`
}

// DailyTrendEntry represents one calendar day's counts in the trend.
type DailyTrendEntry struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// ProductivityResponse represents the response for GET /analytics/productivity/:userId.
type ProductivityResponse struct {
	UserID               string            `json:"user_id"`
	PeriodDays           int               `json:"period_days"`
	StartDate            string            `json:"start_date"`
	EndDate              string            `json:"end_date"`
	TotalTasksCreated    int               `json:"total_tasks_created"`
	TotalTasksCompleted  int               `json:"total_tasks_completed"`
	OverdueTasks         int               `json:"overdue_tasks"`
	AvgTasksPerDay       float64           `json:"avg_tasks_per_day"`
	AvgCompletionsPerDay float64           `json:"avg_completions_per_day"`
	DailyTrend           []DailyTrendEntry `json:"daily_trend"`
	ProductivityScore    float64           `json:"productivity_score"`
}

// ServiceInfoResponse represents the response for GET /.
type ServiceInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// ToTaskResponse converts domain.Task to TaskResponse.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToUserStatsResponse maps a StatsSnapshot onto the wire shape. Pure field
// mapping, no computation.
func ToUserStatsResponse(userID string, snap analytics.StatsSnapshot) UserStatsResponse {
	priorities := make(map[string]int, len(snap.PriorityDistribution))
	for p, n := range snap.PriorityDistribution {
		priorities[string(p)] = n
	}
	statuses := make(map[string]int, len(snap.StatusDistribution))
	for s, n := range snap.StatusDistribution {
		statuses[string(s)] = n
	}

	return UserStatsResponse{
		UserID:               userID,
		TotalTasks:           snap.TotalTasks,
		CompletedTasks:       snap.CompletedTasks,
		PendingTasks:         snap.PendingTasks,
		InProgressTasks:      snap.InProgressTasks,
		CompletionRate:       snap.CompletionRate,
		PriorityDistribution: priorities,
		StatusDistribution:   statuses,
	}
}

// ToProductivityResponse maps a ProductivitySnapshot onto the wire shape.
func ToProductivityResponse(userID string, snap analytics.ProductivitySnapshot) ProductivityResponse {
	trend := make([]DailyTrendEntry, len(snap.DailyTrend))
	for i, b := range snap.DailyTrend {
		trend[i] = DailyTrendEntry{
			Date:      b.Date.Format(dateLayout),
			Created:   b.Created,
			Completed: b.Completed,
		}
	}

	return ProductivityResponse{
		UserID:               userID,
		PeriodDays:           snap.WindowDays,
		StartDate:            snap.WindowStart.Format(dateLayout),
		EndDate:              snap.WindowEnd.Format(dateLayout),
		TotalTasksCreated:    snap.TotalCreated,
		TotalTasksCompleted:  snap.TotalCompleted,
		OverdueTasks:         snap.OverdueTasks,
		AvgTasksPerDay:       snap.AvgCreatedPerDay,
		AvgCompletionsPerDay: snap.AvgCompletedPerDay,
		DailyTrend:           trend,
		ProductivityScore:    snap.ProductivityScore,
	}
}
