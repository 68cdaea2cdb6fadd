package entity

import "errors"

// Domain errors for the progress engine aggregates.
var (
	ErrInvalidLearnerID  = errors.New("invalid learner ID")
	ErrInvalidUnitType   = errors.New("invalid unit type")
	ErrInvalidUnitID     = errors.New("invalid unit ID")
	ErrInvalidSessionID  = errors.New("invalid session ID")
	ErrInvalidBatchTotal = errors.New("batch total must be positive")
	ErrInvalidAnswer     = errors.New("invalid answer event")
	ErrInvalidDedupeKey  = errors.New("invalid dedupe key")

	ErrDuplicateXpEvent   = errors.New("xp already awarded for this key today")
	ErrBadgeAlreadyEarned = errors.New("badge already earned")
	ErrBadgeNotFound      = errors.New("badge not found")
	ErrPackNotFound       = errors.New("vocabulary pack not found")
	ErrClusterNotFound    = errors.New("vocabulary cluster not found")
	ErrSenseNotFound      = errors.New("vocabulary sense not found")
	ErrVerbNotFound       = errors.New("irregular verb not found")
	ErrKnowledgeNotFound  = errors.New("unit knowledge not found")
	ErrUserXpNotFound     = errors.New("user xp not found")
)
