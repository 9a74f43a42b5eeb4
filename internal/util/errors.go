package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrChildNotFound       = errors.New("child not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrPackageDeleted      = errors.New("package deleted")
	ErrObjectiveNotFound   = errors.New("curriculum objective not found")
	ErrCollectibleNotFound = errors.New("collectible not found")
	ErrAlreadyUnlocked     = errors.New("collectible already unlocked")
	ErrInsufficientCoins   = errors.New("insufficient coins")
	ErrImportJobNotFound   = errors.New("import job not found")
	ErrImportJobFinished   = errors.New("import job already completed")
	ErrEmptyImportResult   = errors.New("recognition result contains no problems")
	ErrInvalidPIN          = errors.New("invalid family code or PIN")
)
