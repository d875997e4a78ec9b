package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Task errors
	ErrTaskNotFound = errors.New("task not found")
	ErrNotTaskOwner = errors.New("not task owner")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user is inactive")
	ErrInvalidToken = errors.New("invalid authentication token")

	// Validation errors
	ErrInvalidTitle    = errors.New("invalid task title")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidUserID   = errors.New("invalid user id")

	// Analytics errors
	ErrInvalidWindow = errors.New("window days must be a positive integer")
)
