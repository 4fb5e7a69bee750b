package domain

import "errors"

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrEmptyToken           = errors.New("access token is empty")
	ErrUnknownCredentialKey = errors.New("unknown credential key")
	ErrMissingTeamID        = errors.New("workspace id is required")
	ErrMissingSpaceID       = errors.New("space id is required")
	ErrEmptyTaskName        = errors.New("task name is required")
	ErrEmptyID              = errors.New("identifier is empty")
	ErrInvalidPriority      = errors.New("priority must be between 1 (urgent) and 4 (low)")
	ErrInvalidID            = errors.New("identifier must be numeric")
)
