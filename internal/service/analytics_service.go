package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taskmeter/taskmeter/internal/analytics"
	"github.com/taskmeter/taskmeter/internal/repository"
)

// AnalyticsService fetches a user's task records and runs the analytics
// engine over them. The engine itself is pure; this service owns the only
// I/O in the pipeline. Fetch failures propagate untouched: no retries and no
// partial results, since analytics are supplementary to task management.
type AnalyticsService struct {
	taskRepo *repository.TaskRepository
	analyzer *analytics.Analyzer
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(taskRepo *repository.TaskRepository) *AnalyticsService {
	return &AnalyticsService{
		taskRepo: taskRepo,
		analyzer: analytics.NewAnalyzer(),
	}
}

// UserStats computes the current-state statistics snapshot for a user.
// An unknown user is indistinguishable from a user with no tasks and yields
// an all-zero snapshot.
func (s *AnalyticsService) UserStats(ctx context.Context, userID string) (analytics.StatsSnapshot, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, userID)
	if err != nil {
		return analytics.StatsSnapshot{}, fmt.Errorf("fetch task records: %w", err)
	}
	return analytics.ComputeStats(tasks), nil
}

// Productivity computes the windowed productivity snapshot for a user.
// now is taken as a parameter so the computation stays deterministic in tests.
func (s *AnalyticsService) Productivity(
	ctx context.Context,
	userID string,
	windowDays int,
	now time.Time,
) (analytics.ProductivitySnapshot, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, userID)
	if err != nil {
		return analytics.ProductivitySnapshot{}, fmt.Errorf("fetch task records: %w", err)
	}
	return s.analyzer.ComputeProductivity(tasks, windowDays, now)
}
