package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/taskmeter/taskmeter/internal/domain"
)

// TaskListFilters holds all supported filters for the task list view.
type TaskListFilters struct {
	OwnerID    string   // Required: scope to one user
	Statuses   []string // Optional: filter by status
	Priorities []string // Optional: filter by priority
	Search     string   // Optional: substring match on title
	Sort       []string // Optional: sort fields (with - prefix for DESC)
	Limit      int      // Required: page size
	Offset     int      // Required: page offset
}

// sortableColumns restricts sort input to known columns.
var sortableColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"due_date":   true,
	"title":      true,
	"priority":   true,
	"status":     true,
}

// priorityOrder ranks priorities for sorting, since the column is textual.
const priorityOrder = "CASE priority WHEN 'High' THEN 1 WHEN 'Medium' THEN 2 WHEN 'Low' THEN 3 END"

// applyListFilters adds the shared WHERE clauses to a select or count builder.
func applyListFilters(qb sq.SelectBuilder, filters TaskListFilters) sq.SelectBuilder {
	qb = qb.Where(sq.Eq{"owner_id": filters.OwnerID})
	if len(filters.Statuses) > 0 {
		qb = qb.Where(sq.Eq{"status": filters.Statuses})
	}
	if len(filters.Priorities) > 0 {
		qb = qb.Where(sq.Eq{"priority": filters.Priorities})
	}
	if filters.Search != "" {
		qb = qb.Where(sq.ILike{"title": "%" + filters.Search + "%"})
	}
	return qb
}

// List retrieves a user's tasks with filters, sorting and pagination.
func (r *TaskRepository) List(ctx context.Context, filters TaskListFilters) ([]domain.Task, int, error) {
	qb := applyListFilters(psql.Select(taskColumns...).From("tasks"), filters)

	if len(filters.Sort) == 0 {
		qb = qb.OrderBy("created_at DESC")
	} else {
		for _, sort := range filters.Sort {
			field, dir := sort, "ASC"
			if strings.HasPrefix(sort, "-") {
				field, dir = sort[1:], "DESC"
			}
			if !sortableColumns[field] {
				continue
			}
			if field == "priority" {
				qb = qb.OrderBy(priorityOrder + " " + dir)
			} else {
				qb = qb.OrderBy(field + " " + dir)
			}
		}
	}

	qb = qb.Limit(uint64(filters.Limit)).Offset(uint64(filters.Offset))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query tasks: %w", err)
	}

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := applyListFilters(psql.Select("COUNT(*)").From("tasks"), filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	return tasks, total, nil
}
