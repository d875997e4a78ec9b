// Package analytics computes aggregate statistics and productivity trends
// from a user's task records. All computations are pure: they operate on a
// materialized snapshot slice passed in by the caller, never touch storage,
// and take the reference time as an explicit parameter. Snapshots carry no
// identity and are recomputed per request.
package analytics

import (
	"time"

	"github.com/taskmeter/taskmeter/internal/domain"
)

// StatsSnapshot is the point-in-time statistics for one user's tasks.
// Distribution maps are always zero-filled over the closed enums, so
// consumers can index them without existence checks.
type StatsSnapshot struct {
	TotalTasks           int
	CompletedTasks       int
	PendingTasks         int
	InProgressTasks      int
	CompletionRate       float64
	PriorityDistribution map[domain.TaskPriority]int
	StatusDistribution   map[domain.TaskStatus]int
}

// DayBucket holds one calendar day's created/completed counts within a window.
// Date is the day's UTC-normalized midnight.
type DayBucket struct {
	Date      time.Time
	Created   int
	Completed int
}

// ProductivitySnapshot is the windowed productivity analysis for one user.
// DailyTrend always has exactly WindowDays entries, oldest first, with days
// of zero activity present rather than omitted.
type ProductivitySnapshot struct {
	WindowDays         int
	WindowStart        time.Time
	WindowEnd          time.Time
	TotalCreated       int
	TotalCompleted     int
	OverdueTasks       int
	AvgCreatedPerDay   float64
	AvgCompletedPerDay float64
	DailyTrend         []DayBucket
	ProductivityScore  float64
}
