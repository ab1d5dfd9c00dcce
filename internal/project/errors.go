package project

import "errors"

// Domain-specific errors for the project package.
var (
	ErrEmptyName     = errors.New("project name is empty")
	ErrNotFound      = errors.New("project not found")
	ErrTaskNotFound  = errors.New("task not found in project")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrInvalidTab    = errors.New("invalid category tab")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
	ErrPersistFailed = errors.New("failed to persist project")
)
