package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmeter/taskmeter/internal/analytics"
	"github.com/taskmeter/taskmeter/internal/domain"
)

// now is mid-afternoon so same-day timestamps fall on both sides of it.
var now = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func timedTask(status domain.TaskStatus, createdAt, updatedAt time.Time) domain.Task {
	return domain.Task{
		Priority:  domain.TaskPriorityMedium,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestComputeProductivity_InvalidWindow(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	for _, days := range []int{0, -1, -30} {
		_, err := analyzer.ComputeProductivity(nil, days, now)
		assert.ErrorIs(t, err, domain.ErrInvalidWindow)
	}
}

func TestComputeProductivity_EmptyInput(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	snap, err := analyzer.ComputeProductivity(nil, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 7, snap.WindowDays)
	assert.Len(t, snap.DailyTrend, 7)
	assert.Equal(t, 0, snap.TotalCreated)
	assert.Equal(t, 0, snap.TotalCompleted)
	assert.Equal(t, float64(0), snap.ProductivityScore)
	for _, b := range snap.DailyTrend {
		assert.Equal(t, 0, b.Created)
		assert.Equal(t, 0, b.Completed)
	}
}

func TestComputeProductivity_TrendDatesConsecutiveOldestFirst(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	snap, err := analyzer.ComputeProductivity(nil, 7, now)
	require.NoError(t, err)

	require.Len(t, snap.DailyTrend, 7)
	assert.Equal(t, snap.WindowStart, snap.DailyTrend[0].Date)
	assert.Equal(t, snap.WindowEnd, snap.DailyTrend[6].Date)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), snap.DailyTrend[6].Date)
	for i := 1; i < len(snap.DailyTrend); i++ {
		assert.Equal(t, snap.DailyTrend[i-1].Date.AddDate(0, 0, 1), snap.DailyTrend[i].Date)
	}
}

func TestComputeProductivity_TaskOutsideWindowExcluded(t *testing.T) {
	analyzer := analytics.NewAnalyzer()
	tasks := []domain.Task{
		timedTask(domain.TaskStatusTodo, daysAgo(10), daysAgo(10)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.TotalCreated)
	assert.Equal(t, 0, snap.TotalCompleted)
}

func TestComputeProductivity_WindowBoundaries(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	// Oldest included day is 6 calendar days before today for a 7-day window;
	// 7 days before today is just outside.
	tasks := []domain.Task{
		timedTask(domain.TaskStatusTodo, daysAgo(6), daysAgo(6)),
		timedTask(domain.TaskStatusTodo, daysAgo(7), daysAgo(7)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.TotalCreated)
	assert.Equal(t, 1, snap.DailyTrend[0].Created)
}

func TestComputeProductivity_CreatedAndCompletedToday(t *testing.T) {
	analyzer := analytics.NewAnalyzer()
	tasks := []domain.Task{
		timedTask(domain.TaskStatusCompleted, now.Add(-2*time.Hour), now.Add(-1*time.Hour)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	last := snap.DailyTrend[len(snap.DailyTrend)-1]
	assert.Equal(t, 1, last.Created)
	assert.Equal(t, 1, last.Completed)
	assert.Equal(t, 1, snap.TotalCreated)
	assert.Equal(t, 1, snap.TotalCompleted)
	assert.Equal(t, float64(100), snap.ProductivityScore)
}

func TestComputeProductivity_RecordContributesToTwoBuckets(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	// Created 3 days ago, completed today: one record, two different buckets.
	tasks := []domain.Task{
		timedTask(domain.TaskStatusCompleted, daysAgo(3), now.Add(-1*time.Hour)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.DailyTrend[3].Created)
	assert.Equal(t, 0, snap.DailyTrend[3].Completed)
	assert.Equal(t, 1, snap.DailyTrend[6].Completed)
	assert.Equal(t, 0, snap.DailyTrend[6].Created)
}

func TestComputeProductivity_CompletedOutsideWindowNotCounted(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	// Still Completed now, but the completing update happened before the
	// window opened.
	tasks := []domain.Task{
		timedTask(domain.TaskStatusCompleted, daysAgo(20), daysAgo(10)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.TotalCreated)
	assert.Equal(t, 0, snap.TotalCompleted)
	assert.Equal(t, float64(0), snap.ProductivityScore)
}

func TestComputeProductivity_NonCompletedUpdateNotCounted(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	// Updated today but only In Progress: no completed contribution.
	tasks := []domain.Task{
		timedTask(domain.TaskStatusInProgress, daysAgo(2), now.Add(-1*time.Hour)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.TotalCreated)
	assert.Equal(t, 0, snap.TotalCompleted)
}

func TestComputeProductivity_SumInvariant(t *testing.T) {
	analyzer := analytics.NewAnalyzer()
	tasks := []domain.Task{
		timedTask(domain.TaskStatusCompleted, daysAgo(1), daysAgo(1)),
		timedTask(domain.TaskStatusCompleted, daysAgo(5), daysAgo(2)),
		timedTask(domain.TaskStatusTodo, daysAgo(3), daysAgo(3)),
		timedTask(domain.TaskStatusInProgress, daysAgo(4), daysAgo(1)),
		timedTask(domain.TaskStatusCompleted, daysAgo(12), daysAgo(2)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	created, completed := 0, 0
	for _, b := range snap.DailyTrend {
		created += b.Created
		completed += b.Completed
	}
	assert.Equal(t, created, snap.TotalCreated)
	assert.Equal(t, completed, snap.TotalCompleted)
	assert.GreaterOrEqual(t, snap.ProductivityScore, float64(0))
	assert.LessOrEqual(t, snap.ProductivityScore, float64(100))
}

func TestComputeProductivity_ScoreCappedAt100(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	// More completions than creations inside the window: tasks created
	// before the window opened but completed within it.
	tasks := []domain.Task{
		timedTask(domain.TaskStatusCompleted, daysAgo(20), daysAgo(1)),
		timedTask(domain.TaskStatusCompleted, daysAgo(20), daysAgo(2)),
		timedTask(domain.TaskStatusTodo, daysAgo(1), daysAgo(1)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.TotalCreated)
	assert.Equal(t, 2, snap.TotalCompleted)
	assert.Equal(t, float64(100), snap.ProductivityScore)
}

func TestComputeProductivity_Averages(t *testing.T) {
	analyzer := analytics.NewAnalyzer()
	tasks := []domain.Task{
		timedTask(domain.TaskStatusTodo, daysAgo(1), daysAgo(1)),
		timedTask(domain.TaskStatusTodo, daysAgo(2), daysAgo(2)),
		timedTask(domain.TaskStatusCompleted, daysAgo(3), daysAgo(3)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 0.43, snap.AvgCreatedPerDay)
	assert.Equal(t, 0.14, snap.AvgCompletedPerDay)
}

func TestComputeProductivity_OverdueTasks(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	due := daysAgo(1)
	futureDue := now.AddDate(0, 0, 2)
	overdueTask := timedTask(domain.TaskStatusTodo, daysAgo(2), daysAgo(2))
	overdueTask.DueDate = &due
	onTimeTask := timedTask(domain.TaskStatusTodo, daysAgo(2), daysAgo(2))
	onTimeTask.DueDate = &futureDue
	completedTask := timedTask(domain.TaskStatusCompleted, daysAgo(2), daysAgo(1))
	completedTask.DueDate = &due

	snap, err := analyzer.ComputeProductivity([]domain.Task{overdueTask, onTimeTask, completedTask}, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.OverdueTasks)
}

func TestComputeProductivity_WindowClamped(t *testing.T) {
	analyzer := analytics.NewAnalyzer()

	snap, err := analyzer.ComputeProductivity(nil, analytics.MaxWindowDays+100, now)
	require.NoError(t, err)

	assert.Equal(t, analytics.MaxWindowDays, snap.WindowDays)
	assert.Len(t, snap.DailyTrend, analytics.MaxWindowDays)
}

func TestComputeProductivity_Idempotent(t *testing.T) {
	analyzer := analytics.NewAnalyzer()
	tasks := []domain.Task{
		timedTask(domain.TaskStatusCompleted, daysAgo(1), daysAgo(1)),
		timedTask(domain.TaskStatusTodo, daysAgo(4), daysAgo(4)),
	}

	first, err := analyzer.ComputeProductivity(tasks, 30, now)
	require.NoError(t, err)
	second, err := analyzer.ComputeProductivity(tasks, 30, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeProductivity_CustomScoreFunc(t *testing.T) {
	analyzer := &analytics.Analyzer{
		Score: func(created, completed int) float64 { return 42 },
	}
	tasks := []domain.Task{
		timedTask(domain.TaskStatusTodo, daysAgo(1), daysAgo(1)),
	}

	snap, err := analyzer.ComputeProductivity(tasks, 7, now)
	require.NoError(t, err)

	assert.Equal(t, float64(42), snap.ProductivityScore)
}

func TestCompletionRatioScore(t *testing.T) {
	tests := []struct {
		name      string
		created   int
		completed int
		want      float64
	}{
		{"nothing created", 0, 5, 0},
		{"none completed", 10, 0, 0},
		{"half completed", 4, 2, 50},
		{"all completed", 3, 3, 100},
		{"more completed than created", 1, 3, 100},
		{"rounded to integer", 3, 1, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.CompletionRatioScore(tt.created, tt.completed))
		})
	}
}
