package analytics

import (
	"math"
	"time"

	"github.com/taskmeter/taskmeter/internal/domain"
)

// MaxWindowDays bounds the trend length so a single request cannot ask for an
// unbounded number of buckets. Requests above the cap are clamped, not rejected.
const MaxWindowDays = 365

// ScoreFunc derives the [0,100] productivity score from the window totals.
type ScoreFunc func(totalCreated, totalCompleted int) float64

// CompletionRatioScore is the default score: the share of tasks created in
// the window that were also completed in it, capped at 100. A window with no
// created tasks scores 0.
func CompletionRatioScore(totalCreated, totalCompleted int) float64 {
	if totalCreated == 0 {
		return 0
	}
	ratio := float64(totalCompleted) / float64(totalCreated) * 100
	return math.Min(100, math.Round(ratio))
}

// Analyzer computes windowed productivity trends. The score formula is a
// field rather than a constant so deployments can tune it without touching
// the bucketing.
type Analyzer struct {
	Score ScoreFunc
}

// NewAnalyzer returns an Analyzer with the default completion-ratio score.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Score: CompletionRatioScore}
}

// ComputeProductivity buckets a user's task records into the trailing window
// of windowDays calendar days ending at now's calendar day, inclusive.
//
// A record contributes to a bucket's Created count by the calendar day of
// CreatedAt, and to a bucket's Completed count by the calendar day of
// UpdatedAt when its status is Completed; a record may contribute to both.
// Totals are derived by summing the trend, so they always agree with it.
//
// Returns domain.ErrInvalidWindow when windowDays is not positive; it never
// silently substitutes a default, to avoid producing a misleading empty trend.
func (a *Analyzer) ComputeProductivity(tasks []domain.Task, windowDays int, now time.Time) (ProductivitySnapshot, error) {
	if windowDays <= 0 {
		return ProductivitySnapshot{}, domain.ErrInvalidWindow
	}
	if windowDays > MaxWindowDays {
		windowDays = MaxWindowDays
	}

	loc := now.Location()
	windowStart := calendarDay(now, loc).AddDate(0, 0, -(windowDays - 1))

	trend := make([]DayBucket, windowDays)
	for i := range trend {
		trend[i].Date = windowStart.AddDate(0, 0, i)
	}

	overdue := 0
	for i := range tasks {
		t := &tasks[i]
		createdIdx, createdInWindow := bucketIndex(windowStart, windowDays, t.CreatedAt, loc)
		if createdInWindow {
			trend[createdIdx].Created++
			if t.IsOverdue(now) {
				overdue++
			}
		}
		if t.IsCompleted() {
			if idx, ok := bucketIndex(windowStart, windowDays, t.UpdatedAt, loc); ok {
				trend[idx].Completed++
			}
		}
	}

	snap := ProductivitySnapshot{
		WindowDays:  windowDays,
		WindowStart: windowStart,
		WindowEnd:   trend[windowDays-1].Date,
		DailyTrend:  trend,
	}
	for _, b := range trend {
		snap.TotalCreated += b.Created
		snap.TotalCompleted += b.Completed
	}
	snap.OverdueTasks = overdue
	snap.AvgCreatedPerDay = round2(float64(snap.TotalCreated) / float64(windowDays))
	snap.AvgCompletedPerDay = round2(float64(snap.TotalCompleted) / float64(windowDays))

	score := a.Score
	if score == nil {
		score = CompletionRatioScore
	}
	snap.ProductivityScore = score(snap.TotalCreated, snap.TotalCompleted)

	return snap, nil
}

// calendarDay maps a timestamp to its civil date in loc, materialized at UTC
// midnight. Normalizing day keys to UTC keeps bucket arithmetic exact
// multiples of 24h regardless of DST in loc.
func calendarDay(ts time.Time, loc *time.Location) time.Time {
	y, m, d := ts.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// bucketIndex returns the trend index for a timestamp's calendar day, and
// whether that day falls inside the window.
func bucketIndex(windowStart time.Time, windowDays int, ts time.Time, loc *time.Location) (int, bool) {
	idx := int(calendarDay(ts, loc).Sub(windowStart) / (24 * time.Hour))
	if idx < 0 || idx >= windowDays {
		return 0, false
	}
	return idx, true
}
