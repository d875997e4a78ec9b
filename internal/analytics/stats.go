package analytics

import (
	"math"

	"github.com/taskmeter/taskmeter/internal/domain"
)

// ComputeStats builds a StatsSnapshot from a user's task records in a single
// linear pass. An empty input is a valid case and yields all-zero counts with
// a completion rate of exactly 0.
//
// Records carrying a status or priority outside the closed enums are counted
// toward TotalTasks but land in no distribution bucket.
func ComputeStats(tasks []domain.Task) StatsSnapshot {
	snap := StatsSnapshot{
		PriorityDistribution: map[domain.TaskPriority]int{
			domain.TaskPriorityLow:    0,
			domain.TaskPriorityMedium: 0,
			domain.TaskPriorityHigh:   0,
		},
		StatusDistribution: map[domain.TaskStatus]int{
			domain.TaskStatusTodo:       0,
			domain.TaskStatusInProgress: 0,
			domain.TaskStatusCompleted:  0,
		},
	}

	for i := range tasks {
		snap.TotalTasks++
		if tasks[i].Status.IsValid() {
			snap.StatusDistribution[tasks[i].Status]++
		}
		if tasks[i].Priority.IsValid() {
			snap.PriorityDistribution[tasks[i].Priority]++
		}
	}

	snap.CompletedTasks = snap.StatusDistribution[domain.TaskStatusCompleted]
	snap.InProgressTasks = snap.StatusDistribution[domain.TaskStatusInProgress]
	snap.PendingTasks = snap.TotalTasks - snap.CompletedTasks

	if snap.TotalTasks > 0 {
		snap.CompletionRate = round2(float64(snap.CompletedTasks) / float64(snap.TotalTasks) * 100)
	}

	return snap
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
