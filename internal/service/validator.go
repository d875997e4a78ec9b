package service

import (
	"fmt"

	"github.com/taskmeter/taskmeter/internal/domain"
)

const (
	minTitleLength = 1
	maxTitleLength = 200
)

// ValidateTask checks field constraints on a task before it is persisted.
func ValidateTask(task *domain.Task) error {
	if len(task.Title) < minTitleLength || len(task.Title) > maxTitleLength {
		return fmt.Errorf("%w: title must be %d-%d characters", domain.ErrInvalidTitle, minTitleLength, maxTitleLength)
	}
	if task.Priority != "" && !task.Priority.IsValid() {
		return fmt.Errorf("%w: %q, must be one of Low, Medium, High", domain.ErrInvalidPriority, task.Priority)
	}
	if task.Status != "" && !task.Status.IsValid() {
		return fmt.Errorf("%w: %q, must be one of Todo, In Progress, Completed", domain.ErrInvalidStatus, task.Status)
	}
	return nil
}

// CanAccess validates that a user owns a task before reading or mutating it.
func CanAccess(task *domain.Task, userID string) error {
	if !task.IsOwnedBy(userID) {
		return fmt.Errorf("%w: task %s does not belong to user %s", domain.ErrNotTaskOwner, task.ID, userID)
	}
	return nil
}
