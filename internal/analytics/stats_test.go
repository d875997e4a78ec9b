package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmeter/taskmeter/internal/analytics"
	"github.com/taskmeter/taskmeter/internal/domain"
)

func task(priority domain.TaskPriority, status domain.TaskStatus) domain.Task {
	return domain.Task{Priority: priority, Status: status}
}

func TestComputeStats_Empty(t *testing.T) {
	snap := analytics.ComputeStats(nil)

	assert.Equal(t, 0, snap.TotalTasks)
	assert.Equal(t, 0, snap.CompletedTasks)
	assert.Equal(t, 0, snap.PendingTasks)
	assert.Equal(t, float64(0), snap.CompletionRate)
	assert.Equal(t, map[domain.TaskPriority]int{
		domain.TaskPriorityLow:    0,
		domain.TaskPriorityMedium: 0,
		domain.TaskPriorityHigh:   0,
	}, snap.PriorityDistribution)
	assert.Equal(t, map[domain.TaskStatus]int{
		domain.TaskStatusTodo:       0,
		domain.TaskStatusInProgress: 0,
		domain.TaskStatusCompleted:  0,
	}, snap.StatusDistribution)
}

func TestComputeStats_MixedTasks(t *testing.T) {
	tasks := []domain.Task{
		task(domain.TaskPriorityHigh, domain.TaskStatusCompleted),
		task(domain.TaskPriorityHigh, domain.TaskStatusCompleted),
		task(domain.TaskPriorityLow, domain.TaskStatusTodo),
		task(domain.TaskPriorityMedium, domain.TaskStatusInProgress),
	}

	snap := analytics.ComputeStats(tasks)

	assert.Equal(t, 4, snap.TotalTasks)
	assert.Equal(t, 2, snap.CompletedTasks)
	assert.Equal(t, 2, snap.PendingTasks)
	assert.Equal(t, 1, snap.InProgressTasks)
	assert.Equal(t, 50.0, snap.CompletionRate)
	assert.Equal(t, map[domain.TaskPriority]int{
		domain.TaskPriorityLow:    1,
		domain.TaskPriorityMedium: 1,
		domain.TaskPriorityHigh:   2,
	}, snap.PriorityDistribution)
}

func TestComputeStats_CompletionRateRounding(t *testing.T) {
	tasks := []domain.Task{
		task(domain.TaskPriorityLow, domain.TaskStatusCompleted),
		task(domain.TaskPriorityLow, domain.TaskStatusTodo),
		task(domain.TaskPriorityLow, domain.TaskStatusTodo),
	}

	snap := analytics.ComputeStats(tasks)

	assert.Equal(t, 33.33, snap.CompletionRate)
}

func TestComputeStats_StatusDistributionSumsToTotal(t *testing.T) {
	tasks := []domain.Task{
		task(domain.TaskPriorityLow, domain.TaskStatusTodo),
		task(domain.TaskPriorityMedium, domain.TaskStatusInProgress),
		task(domain.TaskPriorityHigh, domain.TaskStatusCompleted),
		task(domain.TaskPriorityHigh, domain.TaskStatusCompleted),
		task(domain.TaskPriorityLow, domain.TaskStatusTodo),
	}

	snap := analytics.ComputeStats(tasks)

	sum := 0
	for _, n := range snap.StatusDistribution {
		sum += n
	}
	assert.Equal(t, snap.TotalTasks, sum)
	assert.GreaterOrEqual(t, snap.CompletionRate, float64(0))
	assert.LessOrEqual(t, snap.CompletionRate, float64(100))
}

func TestComputeStats_UnrecognizedEnumValues(t *testing.T) {
	// Defensive case: unknown values count toward the total but land in no
	// distribution bucket.
	tasks := []domain.Task{
		task(domain.TaskPriorityHigh, domain.TaskStatusCompleted),
		task("Urgent", "Archived"),
	}

	snap := analytics.ComputeStats(tasks)

	require.Equal(t, 2, snap.TotalTasks)
	assert.Equal(t, 1, snap.CompletedTasks)

	statusSum := 0
	for _, n := range snap.StatusDistribution {
		statusSum += n
	}
	assert.Equal(t, 1, statusSum)

	prioritySum := 0
	for _, n := range snap.PriorityDistribution {
		prioritySum += n
	}
	assert.Equal(t, 1, prioritySum)

	// The unknown-status record is still pending: it is not completed.
	assert.Equal(t, 1, snap.PendingTasks)
}

func TestComputeStats_Idempotent(t *testing.T) {
	tasks := []domain.Task{
		task(domain.TaskPriorityLow, domain.TaskStatusTodo),
		task(domain.TaskPriorityHigh, domain.TaskStatusCompleted),
	}

	first := analytics.ComputeStats(tasks)
	second := analytics.ComputeStats(tasks)

	assert.Equal(t, first, second)
}
