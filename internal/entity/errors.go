package entity

import "errors"

// Domain errors for the catalog, mastery tracking and practice sessions.
var (
	ErrInvalidLevel      = errors.New("invalid HSK level")
	ErrWordNotFound      = errors.New("word not found")
	ErrDuplicateWordID   = errors.New("duplicate word id")
	ErrLevelMismatch     = errors.New("word level does not match its partition")
	ErrUnknownPolicy     = errors.New("unknown mastery policy")
	ErrEmptyLevel        = errors.New("level has no words")
	ErrNotEnoughWords    = errors.New("not enough words for this level")
	ErrSessionCompleted  = errors.New("session already completed")
	ErrAlreadyAnswered   = errors.New("question already answered")
	ErrNotAnswered       = errors.New("question not answered yet")
	ErrInvalidTileIndex  = errors.New("invalid tile index")
	ErrUnknownStorage    = errors.New("unknown storage driver")
	ErrInvalidBackupFile = errors.New("invalid backup file")
)
